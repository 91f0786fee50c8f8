package guardrail

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength    = 50
	maxMessageLength = 500
)

// Validate checks the shape of the definition before it is sent to the
// service. It does not evaluate any content.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid("name", "must be specified")
	}
	if utf8.RuneCountInString(d.Name) > maxNameLength {
		return invalid("name", "must be at most %d characters", maxNameLength)
	}
	if d.BlockedInputMessaging == "" {
		return invalid("blocked_input_messaging", "must be specified")
	}
	if d.BlockedOutputsMessaging == "" {
		return invalid("blocked_outputs_messaging", "must be specified")
	}
	if utf8.RuneCountInString(d.BlockedInputMessaging) > maxMessageLength ||
		utf8.RuneCountInString(d.BlockedOutputsMessaging) > maxMessageLength {
		return invalid("blocked_messaging", "must be at most %d characters", maxMessageLength)
	}
	if !d.HasPolicy() {
		return invalid("policies", "at least one policy must be configured")
	}

	seen := map[string]struct{}{}
	for i, t := range d.Topics {
		field := fmt.Sprintf("topics[%d]", i)
		if t.Name == "" || t.Definition == "" {
			return invalid(field, "name and definition are required")
		}
		if t.Type != "" && t.Type != TopicTypeDeny {
			return invalid(field, "unsupported type %q", t.Type)
		}
		if err := unique(seen, "topic:"+t.Name, field); err != nil {
			return err
		}
	}

	for i, f := range d.ContentFilters {
		field := fmt.Sprintf("content_filters[%d]", i)
		if err := oneOf(contentFilterTypes, f.Type, field+".type"); err != nil {
			return err
		}
		if err := oneOf(strengths, f.InputStrength, field+".input_strength"); err != nil {
			return err
		}
		if err := oneOf(strengths, f.OutputStrength, field+".output_strength"); err != nil {
			return err
		}
		if f.Type == FilterPromptAttack && f.OutputStrength != StrengthNone {
			return invalid(field, "PROMPT_ATTACK output strength must be NONE")
		}
		for _, m := range append(append([]string{}, f.InputModalities...), f.OutputModalities...) {
			if err := oneOf(modalities, m, field+".modalities"); err != nil {
				return err
			}
		}
		if err := f.Toggle.validate(blockActions, field); err != nil {
			return err
		}
		if err := unique(seen, "filter:"+f.Type, field); err != nil {
			return err
		}
	}

	for i, w := range d.Words {
		field := fmt.Sprintf("words[%d]", i)
		if strings.TrimSpace(w.Text) == "" {
			return invalid(field, "text is required")
		}
		if err := w.Toggle.validate(blockActions, field); err != nil {
			return err
		}
		if err := unique(seen, "word:"+strings.ToLower(w.Text), field); err != nil {
			return err
		}
	}

	for i, l := range d.ManagedWordLists {
		field := fmt.Sprintf("managed_word_lists[%d]", i)
		if err := oneOf(managedWordTypes, l.Type, field+".type"); err != nil {
			return err
		}
		if err := l.Toggle.validate(blockActions, field); err != nil {
			return err
		}
	}

	for i, p := range d.PIIEntities {
		field := fmt.Sprintf("pii_entities[%d]", i)
		if err := oneOf(piiEntityTypes, p.Type, field+".type"); err != nil {
			return err
		}
		if err := oneOf(piiActions, p.Action, field+".action"); err != nil {
			return err
		}
		if err := p.Toggle.validate(piiActions, field); err != nil {
			return err
		}
		if err := unique(seen, "pii:"+p.Type, field); err != nil {
			return err
		}
	}

	for i, r := range d.Regexes {
		field := fmt.Sprintf("regexes[%d]", i)
		// Patterns are compiled by the service, whose syntax is wider than RE2.
		if r.Name == "" || r.Pattern == "" {
			return invalid(field, "name and pattern are required")
		}
		if err := oneOf(piiActions, r.Action, field+".action"); err != nil {
			return err
		}
		if err := r.Toggle.validate(piiActions, field); err != nil {
			return err
		}
		if err := unique(seen, "regex:"+r.Name, field); err != nil {
			return err
		}
	}

	for i, g := range d.GroundingFilters {
		field := fmt.Sprintf("grounding_filters[%d]", i)
		if err := oneOf(groundingTypes, g.Type, field+".type"); err != nil {
			return err
		}
		if g.Threshold < 0 || g.Threshold >= 1 {
			return invalid(field+".threshold", "must be in [0, 1), got %v", g.Threshold)
		}
		if g.Action != "" {
			if err := oneOf(blockActions, g.Action, field+".action"); err != nil {
				return err
			}
		}
		if err := unique(seen, "grounding:"+g.Type, field); err != nil {
			return err
		}
	}

	return nil
}

func (t Toggle) validate(allowed map[string]struct{}, field string) error {
	if t.InputAction != "" {
		if err := oneOf(allowed, t.InputAction, field+".input_action"); err != nil {
			return err
		}
	}
	if t.OutputAction != "" {
		if err := oneOf(allowed, t.OutputAction, field+".output_action"); err != nil {
			return err
		}
	}
	return nil
}

func oneOf(allowed map[string]struct{}, value, field string) error {
	if _, ok := allowed[value]; !ok {
		return invalid(field, "unsupported value %q", value)
	}
	return nil
}

func unique(seen map[string]struct{}, key, field string) error {
	if _, ok := seen[key]; ok {
		return invalid(field, "duplicate entry")
	}
	seen[key] = struct{}{}
	return nil
}
