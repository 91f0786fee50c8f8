package guardrail

import "time"

// DraftVersion is the working version every guardrail starts with.
const DraftVersion = "DRAFT"

type Identifier struct {
	ID        string    `json:"guardrail_id"`
	ARN       string    `json:"guardrail_arn,omitempty"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Summary struct {
	ID          string    `json:"guardrail_id"`
	ARN         string    `json:"guardrail_arn,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Version     string    `json:"version"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`

	// Set by Get only.
	BlockedInputMessaging   string   `json:"blocked_input_messaging,omitempty"`
	BlockedOutputsMessaging string   `json:"blocked_outputs_messaging,omitempty"`
	Policies                []string `json:"policies,omitempty"`
	StatusReasons           []string `json:"status_reasons,omitempty"`
}
