package bedrock

import (
	"testing"
	"time"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	controltypes "github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEvaluation_TopicBlocked(t *testing.T) {
	eval := ToEvaluation(&bedrockruntime.ApplyGuardrailOutput{
		Action:  types.GuardrailActionGuardrailIntervened,
		Outputs: []types.GuardrailOutputContent{{Text: aws.String("Sorry, I can't answer questions about heavy-metal music.")}},
		Assessments: []types.GuardrailAssessment{
			{
				TopicPolicy: &types.GuardrailTopicPolicyAssessment{
					Topics: []types.GuardrailTopic{
						{Name: aws.String("Heavy metal"), Action: "BLOCKED", Type: "DENY"},
					},
				},
				WordPolicy: &types.GuardrailWordPolicyAssessment{
					CustomWords: []types.GuardrailCustomWord{{Match: aws.String("metal"), Action: "BLOCKED"}},
				},
			},
		},
		Usage: &types.GuardrailUsage{TopicPolicyUnits: aws.Int32(1), WordPolicyUnits: aws.Int32(1)},
	})

	assert.True(t, eval.Intervened())
	assert.True(t, eval.Blocked())
	assert.Equal(t, []string{"Sorry, I can't answer questions about heavy-metal music."}, eval.Outputs)
	require.Len(t, eval.Violations, 2)
	assert.Equal(t, guardrail.Violation{
		Policy: guardrail.PolicyTopic,
		Name:   "Heavy metal",
		Action: "BLOCKED",
		Detail: "Topic 'Heavy metal' is not allowed",
	}, eval.Violations[0])
	assert.Equal(t, guardrail.PolicyWord, eval.Violations[1].Policy)
	assert.Equal(t, "metal", eval.Violations[1].Name)
	assert.Equal(t, int32(1), eval.Usage.TopicUnits)
	assert.Equal(t, int32(0), eval.Usage.ContentUnits)
}

func TestToEvaluation_AnonymizedAndFilters(t *testing.T) {
	eval := ToEvaluation(&bedrockruntime.ApplyGuardrailOutput{
		Action: types.GuardrailActionGuardrailIntervened,
		Assessments: []types.GuardrailAssessment{
			{
				ContentPolicy: &types.GuardrailContentPolicyAssessment{
					Filters: []types.GuardrailContentFilter{
						{Type: "HATE", Confidence: "LOW", Action: "NONE"},
						{Type: "PROMPT_ATTACK", Confidence: "HIGH", Action: "BLOCKED"},
					},
				},
				SensitiveInformationPolicy: &types.GuardrailSensitiveInformationPolicyAssessment{
					PiiEntities: []types.GuardrailPiiEntityFilter{
						{Type: "EMAIL", Match: aws.String("a@b.c"), Action: "ANONYMIZED"},
					},
					Regexes: []types.GuardrailRegexFilter{
						{Name: aws.String("BITCOIN_WALLET"), Match: aws.String("bc1qxyz"), Action: "ANONYMIZED"},
					},
				},
			},
		},
	})

	require.Len(t, eval.Violations, 3)
	assert.Equal(t, "PROMPT_ATTACK", eval.Violations[0].Name)
	assert.Equal(t, "confidence HIGH", eval.Violations[0].Detail)
	assert.Equal(t, guardrail.PolicyPII, eval.Violations[1].Policy)
	assert.Equal(t, "a@b.c", eval.Violations[1].Detail)
	assert.Equal(t, guardrail.PolicyRegex, eval.Violations[2].Policy)
	assert.Equal(t, "BITCOIN_WALLET", eval.Violations[2].Name)
}

func TestToEvaluation_GroundingScoresAlwaysReported(t *testing.T) {
	eval := ToEvaluation(&bedrockruntime.ApplyGuardrailOutput{
		Action: types.GuardrailActionNone,
		Assessments: []types.GuardrailAssessment{
			{
				ContextualGroundingPolicy: &types.GuardrailContextualGroundingPolicyAssessment{
					Filters: []types.GuardrailContextualGroundingFilter{
						{Type: "GROUNDING", Score: aws.Float64(0.93), Threshold: aws.Float64(0.8), Action: "NONE"},
						{Type: "RELEVANCE", Score: aws.Float64(0.41), Threshold: aws.Float64(0.5), Action: "BLOCKED"},
					},
				},
			},
		},
	})

	assert.False(t, eval.Intervened())
	require.NotNil(t, eval.Grounding)
	require.NotNil(t, eval.Relevance)
	assert.Equal(t, 0.93, eval.Grounding.Score)
	assert.Equal(t, 0.5, eval.Relevance.Threshold)
	require.Len(t, eval.Violations, 1)
	assert.Equal(t, "score 0.410 below threshold 0.500", eval.Violations[0].Detail)
}

func TestToEvaluation_Empty(t *testing.T) {
	eval := ToEvaluation(&bedrockruntime.ApplyGuardrailOutput{Action: types.GuardrailActionNone})
	assert.Empty(t, eval.Violations)
	assert.Nil(t, eval.Grounding)
	assert.False(t, eval.Blocked())
}

func TestSummaries(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	id := ToIdentifier(&bedrock.CreateGuardrailOutput{
		GuardrailId:  aws.String("a6w0gl4ttetz"),
		GuardrailArn: aws.String("arn:aws:bedrock:us-east-1:123456789012:guardrail/a6w0gl4ttetz"),
		Version:      aws.String("DRAFT"),
		CreatedAt:    &created,
	})
	assert.Equal(t, guardrail.Identifier{
		ID:        "a6w0gl4ttetz",
		ARN:       "arn:aws:bedrock:us-east-1:123456789012:guardrail/a6w0gl4ttetz",
		Version:   guardrail.DraftVersion,
		CreatedAt: created,
	}, id)

	s := FromSummary(controltypes.GuardrailSummary{
		Id:      aws.String("gr-1"),
		Name:    aws.String("demo"),
		Status:  controltypes.GuardrailStatusReady,
		Version: aws.String("1"),
	})
	assert.Equal(t, "READY", s.Status)
	assert.Equal(t, "1", s.Version)
	assert.True(t, s.CreatedAt.IsZero())

	got := FromGetGuardrail(&bedrock.GetGuardrailOutput{
		GuardrailId:   aws.String("gr-1"),
		Name:          aws.String("demo"),
		Version:       aws.String("DRAFT"),
		Status:        controltypes.GuardrailStatusReady,
		TopicPolicy:   &controltypes.GuardrailTopicPolicy{},
		WordPolicy:    &controltypes.GuardrailWordPolicy{},
		StatusReasons: []string{"ok"},
	})
	assert.Equal(t, []string{guardrail.PolicyTopic, guardrail.PolicyWord}, got.Policies)
	assert.Equal(t, []string{"ok"}, got.StatusReasons)
}
