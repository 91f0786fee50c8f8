package bedrock

import (
	domainagent "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
)

// ToGuardrailTrace keeps only the assessments that acted on the content.
func ToGuardrailTrace(t types.GuardrailTrace) domainagent.GuardrailTrace {
	trace := domainagent.GuardrailTrace{
		TraceID: aws.ToString(t.TraceId),
		Action:  string(t.Action),
	}
	for _, a := range t.InputAssessments {
		trace.Assessments = append(trace.Assessments, traceAssessment(domainagent.SideInput, a))
	}
	for _, a := range t.OutputAssessments {
		trace.Assessments = append(trace.Assessments, traceAssessment(domainagent.SideOutput, a))
	}
	return trace
}

func traceAssessment(side string, a types.GuardrailAssessment) domainagent.Assessment {
	var found violations

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

	return domainagent.Assessment{Side: side, Violations: found}
}
