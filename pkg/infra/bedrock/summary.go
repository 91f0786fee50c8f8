package bedrock

import (
	"github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrock/types"
)

func ToIdentifier(out *bedrock.CreateGuardrailOutput) guardrail.Identifier {
	return guardrail.Identifier{
		ID:        aws.ToString(out.GuardrailId),
		ARN:       aws.ToString(out.GuardrailArn),
		Version:   aws.ToString(out.Version),
		CreatedAt: aws.ToTime(out.CreatedAt),
	}
}

func FromSummary(s types.GuardrailSummary) guardrail.Summary {
	return guardrail.Summary{
		ID:          aws.ToString(s.Id),
		ARN:         aws.ToString(s.Arn),
		Name:        aws.ToString(s.Name),
		Description: aws.ToString(s.Description),
		Version:     aws.ToString(s.Version),
		Status:      string(s.Status),
		CreatedAt:   aws.ToTime(s.CreatedAt),
		UpdatedAt:   aws.ToTime(s.UpdatedAt),
	}
}

func FromGetGuardrail(out *bedrock.GetGuardrailOutput) guardrail.Summary {
	s := guardrail.Summary{
		ID:                      aws.ToString(out.GuardrailId),
		ARN:                     aws.ToString(out.GuardrailArn),
		Name:                    aws.ToString(out.Name),
		Description:             aws.ToString(out.Description),
		Version:                 aws.ToString(out.Version),
		Status:                  string(out.Status),
		CreatedAt:               aws.ToTime(out.CreatedAt),
		UpdatedAt:               aws.ToTime(out.UpdatedAt),
		BlockedInputMessaging:   aws.ToString(out.BlockedInputMessaging),
		BlockedOutputsMessaging: aws.ToString(out.BlockedOutputsMessaging),
		StatusReasons:           out.StatusReasons,
	}
	if out.TopicPolicy != nil {
		s.Policies = append(s.Policies, guardrail.PolicyTopic)
	}
	if out.ContentPolicy != nil {
		s.Policies = append(s.Policies, guardrail.PolicyContent)
	}
	if out.WordPolicy != nil {
		s.Policies = append(s.Policies, guardrail.PolicyWord)
	}
	if out.SensitiveInformationPolicy != nil {
		s.Policies = append(s.Policies, guardrail.PolicyPII)
	}
	if out.ContextualGroundingPolicy != nil {
		s.Policies = append(s.Policies, guardrail.PolicyGrounding)
	}
	return s
}
