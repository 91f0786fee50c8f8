package bedrock

import (
	"fmt"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
)

// violations turns assessment entries into domain violations. ApplyGuardrail
// and agent traces carry the same policies in different SDK types, so each
// walk reads its own fields and reports them here.
type violations []guardrail.Violation

func inactive(action string) bool {
	return action == "" || action == "NONE"
}

func (v *violations) add(policy, name, action, detail string) {
	if inactive(action) {
		return
	}
	*v = append(*v, guardrail.Violation{
		Policy: policy,
		Name:   name,
		Action: action,
		Detail: detail,
	})
}

func (v *violations) topic(name, action string) {
	v.add(guardrail.PolicyTopic, name, action, fmt.Sprintf("Topic '%s' is not allowed", name))
}

func (v *violations) content(filterType, action, confidence string) {
	v.add(guardrail.PolicyContent, filterType, action, "confidence "+confidence)
}

func (v *violations) word(match, action string) {
	v.add(guardrail.PolicyWord, match, action, "")
}

func (v *violations) managedWord(listType, action, match string) {
	v.add(guardrail.PolicyManaged, listType, action, match)
}

func (v *violations) pii(entityType, action, match string) {
	v.add(guardrail.PolicyPII, entityType, action, match)
}

func (v *violations) regex(name, action, match string) {
	v.add(guardrail.PolicyRegex, name, action, match)
}

func (v *violations) grounding(filterType, action string, score guardrail.Score) {
	v.add(guardrail.PolicyGrounding, filterType, action,
		fmt.Sprintf("score %.3f below threshold %.3f", score.Score, score.Threshold))
}
