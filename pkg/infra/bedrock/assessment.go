package bedrock

import (
	"github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// ToEvaluation flattens the assessments of an ApplyGuardrail response.
// Entries the service evaluated without acting on are skipped, except
// grounding scores which are always reported.
func ToEvaluation(out *bedrockruntime.ApplyGuardrailOutput) guardrail.Evaluation {
	eval := guardrail.Evaluation{Action: string(out.Action)}

	for _, o := range out.Outputs {
		if text := aws.ToString(o.Text); text != "" {
			eval.Outputs = append(eval.Outputs, text)
		}
	}

	for _, assessment := range out.Assessments {
		collectViolations(&eval, assessment)
	}

	if out.Usage != nil {
		eval.Usage = guardrail.Usage{
			TopicUnits:     aws.ToInt32(out.Usage.TopicPolicyUnits),
			ContentUnits:   aws.ToInt32(out.Usage.ContentPolicyUnits),
			WordUnits:      aws.ToInt32(out.Usage.WordPolicyUnits),
			SensitiveUnits: aws.ToInt32(out.Usage.SensitiveInformationPolicyUnits),
			GroundingUnits: aws.ToInt32(out.Usage.ContextualGroundingPolicyUnits),
		}
	}

	return eval
}

func collectViolations(eval *guardrail.Evaluation, a types.GuardrailAssessment) {
	found := violations(eval.Violations)

	if a.TopicPolicy != nil {
		for _, topic := range a.TopicPolicy.Topics {
			found.topic(aws.ToString(topic.Name), string(topic.Action))
		}
	}
	if a.ContentPolicy != nil {
		for _, filter := range a.ContentPolicy.Filters {
			found.content(string(filter.Type), string(filter.Action), string(filter.Confidence))
		}
	}
	if a.WordPolicy != nil {
		for _, word := range a.WordPolicy.CustomWords {
			found.word(aws.ToString(word.Match), string(word.Action))
		}
		for _, word := range a.WordPolicy.ManagedWordLists {
			found.managedWord(string(word.Type), string(word.Action), aws.ToString(word.Match))
		}
	}
	if a.SensitiveInformationPolicy != nil {
		for _, entity := range a.SensitiveInformationPolicy.PiiEntities {
			found.pii(string(entity.Type), string(entity.Action), aws.ToString(entity.Match))
		}
		for _, regex := range a.SensitiveInformationPolicy.Regexes {
			found.regex(aws.ToString(regex.Name), string(regex.Action), aws.ToString(regex.Match))
		}
	}
	if a.ContextualGroundingPolicy != nil {
		for _, filter := range a.ContextualGroundingPolicy.Filters {
			score := &guardrail.Score{
				Score:     aws.ToFloat64(filter.Score),
				Threshold: aws.ToFloat64(filter.Threshold),
				Action:    string(filter.Action),
			}
			switch string(filter.Type) {
			case guardrail.GroundingTypeGrounding:
				eval.Grounding = score
			case guardrail.GroundingTypeRelevance:
				eval.Relevance = score
			}
			found.grounding(string(filter.Type), string(filter.Action), *score)
		}
	}

	eval.Violations = found
}
