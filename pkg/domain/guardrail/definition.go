package guardrail

// Definition mirrors the guardrail configuration accepted by the managed
// service. Enum-like fields hold the service values verbatim (HIGH, BLOCK, ...).
type Definition struct {
	Name                    string            `mapstructure:"name" json:"name"`
	Description             string            `mapstructure:"description" json:"description,omitempty"`
	BlockedInputMessaging   string            `mapstructure:"blocked_input_messaging" json:"blocked_input_messaging"`
	BlockedOutputsMessaging string            `mapstructure:"blocked_outputs_messaging" json:"blocked_outputs_messaging"`
	Topics                  []Topic           `mapstructure:"topics" json:"topics,omitempty"`
	ContentFilters          []ContentFilter   `mapstructure:"content_filters" json:"content_filters,omitempty"`
	Words                   []Word            `mapstructure:"words" json:"words,omitempty"`
	ManagedWordLists        []ManagedWordList `mapstructure:"managed_word_lists" json:"managed_word_lists,omitempty"`
	PIIEntities             []PIIEntity       `mapstructure:"pii_entities" json:"pii_entities,omitempty"`
	Regexes                 []Regex           `mapstructure:"regexes" json:"regexes,omitempty"`
	GroundingFilters        []GroundingFilter `mapstructure:"grounding_filters" json:"grounding_filters,omitempty"`
	Tags                    map[string]string `mapstructure:"tags" json:"tags,omitempty"`
}

type Topic struct {
	Name       string   `mapstructure:"name" json:"name"`
	Definition string   `mapstructure:"definition" json:"definition"`
	Examples   []string `mapstructure:"examples" json:"examples,omitempty"`
	Type       string   `mapstructure:"type" json:"type"`
}

// Toggle carries the per-direction action and enabled flags shared by most
// policy entries.
type Toggle struct {
	InputAction   string `mapstructure:"input_action" json:"input_action,omitempty"`
	OutputAction  string `mapstructure:"output_action" json:"output_action,omitempty"`
	InputEnabled  *bool  `mapstructure:"input_enabled" json:"input_enabled,omitempty"`
	OutputEnabled *bool  `mapstructure:"output_enabled" json:"output_enabled,omitempty"`
}

type ContentFilter struct {
	Type             string   `mapstructure:"type" json:"type"`
	InputStrength    string   `mapstructure:"input_strength" json:"input_strength"`
	OutputStrength   string   `mapstructure:"output_strength" json:"output_strength"`
	InputModalities  []string `mapstructure:"input_modalities" json:"input_modalities,omitempty"`
	OutputModalities []string `mapstructure:"output_modalities" json:"output_modalities,omitempty"`
	Toggle           `mapstructure:",squash"`
}

type Word struct {
	Text   string `mapstructure:"text" json:"text"`
	Toggle `mapstructure:",squash"`
}

type ManagedWordList struct {
	Type   string `mapstructure:"type" json:"type"`
	Toggle `mapstructure:",squash"`
}

type PIIEntity struct {
	Type   string `mapstructure:"type" json:"type"`
	Action string `mapstructure:"action" json:"action"`
	Toggle `mapstructure:",squash"`
}

type Regex struct {
	Name        string `mapstructure:"name" json:"name"`
	Description string `mapstructure:"description" json:"description,omitempty"`
	Pattern     string `mapstructure:"pattern" json:"pattern"`
	Action      string `mapstructure:"action" json:"action"`
	Toggle      `mapstructure:",squash"`
}

type GroundingFilter struct {
	Type      string  `mapstructure:"type" json:"type"`
	Threshold float64 `mapstructure:"threshold" json:"threshold"`
	Action    string  `mapstructure:"action" json:"action,omitempty"`
	Enabled   *bool   `mapstructure:"enabled" json:"enabled,omitempty"`
}

func (d *Definition) HasPolicy() bool {
	return len(d.Topics) > 0 ||
		len(d.ContentFilters) > 0 ||
		len(d.Words) > 0 ||
		len(d.ManagedWordLists) > 0 ||
		len(d.PIIEntities) > 0 ||
		len(d.Regexes) > 0 ||
		len(d.GroundingFilters) > 0
}
