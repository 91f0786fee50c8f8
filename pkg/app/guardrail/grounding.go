package guardrail

import (
	"context"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/sirupsen/logrus"
)

// GroundingCase is a model answer checked against a reference source and
// the question that produced it.
type GroundingCase struct {
	Label    string `json:"label"`
	Source   string `json:"source"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GroundingResult struct {
	Case       GroundingCase     `json:"case"`
	Evaluation domain.Evaluation `json:"evaluation"`
}

func DefaultGroundingCases() []GroundingCase {
	source := "Paris is the capital of France.\nBerlin is the capital of Germany.\n"
	question := "What is the capital of Germany?"
	return []GroundingCase{
		{Label: "grounded", Source: source, Question: question, Answer: "Berlin is the capital of Germany."},
		{Label: "hallucinate", Source: source, Question: question, Answer: "The capital of Germany is Munich."},
	}
}

type GroundingChecker interface {
	Check(ctx context.Context, guardrailID, version string, c GroundingCase) (GroundingResult, error)
}

type groundingChecker struct {
	logger *logrus.Logger
	client bedrock.Runtime
}

func NewGroundingChecker(logger *logrus.Logger, client bedrock.Runtime) GroundingChecker {
	return &groundingChecker{
		logger: logger,
		client: client,
	}
}

func (g *groundingChecker) Check(ctx context.Context, guardrailID, version string, c GroundingCase) (GroundingResult, error) {
	if guardrailID == "" {
		return GroundingResult{}, domain.ErrIdentifierRequired
	}
	if c.Answer == "" {
		return GroundingResult{}, domain.ErrEmptyContent
	}
	if version == "" {
		version = domain.DraftVersion
	}

	input := &bedrockruntime.ApplyGuardrailInput{
		GuardrailIdentifier: aws.String(guardrailID),
		GuardrailVersion:    aws.String(version),
		Source:              types.GuardrailContentSourceOutput,
		OutputScope:         types.GuardrailOutputScopeFull,
		Content: []types.GuardrailContentBlock{
			textBlock(c.Source, types.GuardrailContentQualifierGroundingSource),
			textBlock(c.Question, types.GuardrailContentQualifierQuery),
			textBlock(c.Answer, types.GuardrailContentQualifierGuardContent),
		},
	}

	g.logger.WithFields(logrus.Fields{
		"guardrail_id": guardrailID,
		"case":         c.Label,
	}).Debug("checking grounding and relevance")

	eval, err := apply(ctx, g.logger, g.client, input)
	if err != nil {
		return GroundingResult{}, err
	}
	return GroundingResult{Case: c, Evaluation: eval}, nil
}

func textBlock(text string, qualifier types.GuardrailContentQualifier) types.GuardrailContentBlock {
	return &types.GuardrailContentBlockMemberText{
		Value: types.GuardrailTextBlock{
			Text:       aws.String(text),
			Qualifiers: []types.GuardrailContentQualifier{qualifier},
		},
	}
}
