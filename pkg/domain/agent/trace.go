package agent

import "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"

const (
	SideInput  = "INPUT"
	SideOutput = "OUTPUT"

	TraceActionIntervened = "INTERVENED"
)

// GuardrailTrace is what the guardrail attached to an agent reported for
// one step of an invocation.
type GuardrailTrace struct {
	TraceID     string       `json:"trace_id,omitempty"`
	Action      string       `json:"action"`
	Assessments []Assessment `json:"assessments,omitempty"`
}

// Assessment groups the violations found on one side of the exchange.
type Assessment struct {
	Side       string                `json:"side"`
	Violations []guardrail.Violation `json:"violations,omitempty"`
}

func (t GuardrailTrace) Intervened() bool {
	return t.Action == TraceActionIntervened
}

// TraceHandler receives guardrail traces while an invocation streams.
type TraceHandler func(GuardrailTrace)
