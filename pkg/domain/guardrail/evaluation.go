package guardrail

const (
	// Source values for ApplyGuardrail.
	SourceInput  = "INPUT"
	SourceOutput = "OUTPUT"

	ActionIntervened = "GUARDRAIL_INTERVENED"

	PolicyTopic     = "topic_policy"
	PolicyContent   = "content_policy"
	PolicyWord      = "word_policy"
	PolicyManaged   = "managed_word_policy"
	PolicyPII       = "sensitive_information"
	PolicyRegex     = "sensitive_information_regex"
	PolicyGrounding = "contextual_grounding"
)

// Evaluation is the service verdict for one piece of content.
type Evaluation struct {
	GuardrailID string      `json:"guardrail_id"`
	Version     string      `json:"version"`
	Source      string      `json:"source"`
	Action      string      `json:"action"`
	Outputs     []string    `json:"outputs,omitempty"`
	Violations  []Violation `json:"violations,omitempty"`
	Grounding   *Score      `json:"grounding,omitempty"`
	Relevance   *Score      `json:"relevance,omitempty"`
	Usage       Usage       `json:"usage"`
	LatencyMs   int64       `json:"latency_ms"`
}

// Intervened reports whether the service blocked or masked the content.
func (e *Evaluation) Intervened() bool {
	return e.Action == ActionIntervened
}

// Blocked reports whether any violation actually blocked the content, as
// opposed to only anonymizing parts of it.
func (e *Evaluation) Blocked() bool {
	for _, v := range e.Violations {
		if v.Action == "BLOCKED" {
			return true
		}
	}
	return false
}

type Violation struct {
	Policy string `json:"policy"`
	Name   string `json:"name"`
	Action string `json:"action"`
	Detail string `json:"detail,omitempty"`
}

type Score struct {
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold"`
	Action    string  `json:"action"`
}

type Usage struct {
	TopicUnits     int32 `json:"topic_units"`
	ContentUnits   int32 `json:"content_units"`
	WordUnits      int32 `json:"word_units"`
	SensitiveUnits int32 `json:"sensitive_units"`
	GroundingUnits int32 `json:"grounding_units"`
}
