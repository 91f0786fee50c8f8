package bedrock

import (
	"sort"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrock/types"
)

// CreateGuardrailInput translates a definition into the control plane request.
// Policies without entries are left out of the request.
func CreateGuardrailInput(def guardrail.Definition) *bedrock.CreateGuardrailInput {
	input := &bedrock.CreateGuardrailInput{
		Name:                    aws.String(def.Name),
		BlockedInputMessaging:   aws.String(def.BlockedInputMessaging),
		BlockedOutputsMessaging: aws.String(def.BlockedOutputsMessaging),
	}
	if def.Description != "" {
		input.Description = aws.String(def.Description)
	}

	if len(def.Topics) > 0 {
		topics := make([]types.GuardrailTopicConfig, 0, len(def.Topics))
		for _, t := range def.Topics {
			topicType := t.Type
			if topicType == "" {
				topicType = guardrail.TopicTypeDeny
			}
			topics = append(topics, types.GuardrailTopicConfig{
				Name:       aws.String(t.Name),
				Definition: aws.String(t.Definition),
				Examples:   t.Examples,
				Type:       types.GuardrailTopicType(topicType),
			})
		}
		input.TopicPolicyConfig = &types.GuardrailTopicPolicyConfig{TopicsConfig: topics}
	}

	if len(def.ContentFilters) > 0 {
		filters := make([]types.GuardrailContentFilterConfig, 0, len(def.ContentFilters))
		for _, f := range def.ContentFilters {
			filters = append(filters, types.GuardrailContentFilterConfig{
				Type:             types.GuardrailContentFilterType(f.Type),
				InputStrength:    types.GuardrailFilterStrength(f.InputStrength),
				OutputStrength:   types.GuardrailFilterStrength(f.OutputStrength),
				InputModalities:  modalities(f.InputModalities),
				OutputModalities: modalities(f.OutputModalities),
				InputAction:      types.GuardrailContentFilterAction(f.InputAction),
				OutputAction:     types.GuardrailContentFilterAction(f.OutputAction),
				InputEnabled:     f.InputEnabled,
				OutputEnabled:    f.OutputEnabled,
			})
		}
		input.ContentPolicyConfig = &types.GuardrailContentPolicyConfig{FiltersConfig: filters}
	}

	if len(def.Words) > 0 || len(def.ManagedWordLists) > 0 {
		words := &types.GuardrailWordPolicyConfig{}
		for _, w := range def.Words {
			words.WordsConfig = append(words.WordsConfig, types.GuardrailWordConfig{
				Text:          aws.String(w.Text),
				InputAction:   types.GuardrailWordAction(w.InputAction),
				OutputAction:  types.GuardrailWordAction(w.OutputAction),
				InputEnabled:  w.InputEnabled,
				OutputEnabled: w.OutputEnabled,
			})
		}
		for _, l := range def.ManagedWordLists {
			words.ManagedWordListsConfig = append(words.ManagedWordListsConfig, types.GuardrailManagedWordsConfig{
				Type:          types.GuardrailManagedWordsType(l.Type),
				InputAction:   types.GuardrailWordAction(l.InputAction),
				OutputAction:  types.GuardrailWordAction(l.OutputAction),
				InputEnabled:  l.InputEnabled,
				OutputEnabled: l.OutputEnabled,
			})
		}
		input.WordPolicyConfig = words
	}

	if len(def.PIIEntities) > 0 || len(def.Regexes) > 0 {
		sensitive := &types.GuardrailSensitiveInformationPolicyConfig{}
		for _, p := range def.PIIEntities {
			sensitive.PiiEntitiesConfig = append(sensitive.PiiEntitiesConfig, types.GuardrailPiiEntityConfig{
				Type:          types.GuardrailPiiEntityType(p.Type),
				Action:        types.GuardrailSensitiveInformationAction(p.Action),
				InputAction:   types.GuardrailSensitiveInformationAction(p.InputAction),
				OutputAction:  types.GuardrailSensitiveInformationAction(p.OutputAction),
				InputEnabled:  p.InputEnabled,
				OutputEnabled: p.OutputEnabled,
			})
		}
		for _, r := range def.Regexes {
			regex := types.GuardrailRegexConfig{
				Name:          aws.String(r.Name),
				Pattern:       aws.String(r.Pattern),
				Action:        types.GuardrailSensitiveInformationAction(r.Action),
				InputAction:   types.GuardrailSensitiveInformationAction(r.InputAction),
				OutputAction:  types.GuardrailSensitiveInformationAction(r.OutputAction),
				InputEnabled:  r.InputEnabled,
				OutputEnabled: r.OutputEnabled,
			}
			if r.Description != "" {
				regex.Description = aws.String(r.Description)
			}
			sensitive.RegexesConfig = append(sensitive.RegexesConfig, regex)
		}
		input.SensitiveInformationPolicyConfig = sensitive
	}

	if len(def.GroundingFilters) > 0 {
		filters := make([]types.GuardrailContextualGroundingFilterConfig, 0, len(def.GroundingFilters))
		for _, g := range def.GroundingFilters {
			filters = append(filters, types.GuardrailContextualGroundingFilterConfig{
				Type:      types.GuardrailContextualGroundingFilterType(g.Type),
				Threshold: aws.Float64(g.Threshold),
				Action:    types.GuardrailContextualGroundingAction(g.Action),
				Enabled:   g.Enabled,
			})
		}
		input.ContextualGroundingPolicyConfig = &types.GuardrailContextualGroundingPolicyConfig{FiltersConfig: filters}
	}

	if len(def.Tags) > 0 {
		keys := make([]string, 0, len(def.Tags))
		for k := range def.Tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			input.Tags = append(input.Tags, types.Tag{Key: aws.String(k), Value: aws.String(def.Tags[k])})
		}
	}

	return input
}

func modalities(values []string) []types.GuardrailModality {
	if len(values) == 0 {
		return nil
	}
	out := make([]types.GuardrailModality, 0, len(values))
	for _, v := range values {
		out = append(out, types.GuardrailModality(v))
	}
	return out
}
