package agent

import "errors"

const (
	StatusCreating    = "CREATING"
	StatusNotPrepared = "NOT_PREPARED"
	StatusPrepared    = "PREPARED"
	StatusFailed      = "FAILED"

	// NamePrefix is followed by six hex characters.
	NamePrefix = "demo-agent-guardrails"
)

var (
	ErrAgentFailed     = errors.New("agent failed to prepare")
	ErrAliasFailed     = errors.New("agent alias failed to prepare")
	ErrAgentIDRequired = errors.New("agent identifier is required")
)

type Agent struct {
	ID      string `json:"agent_id"`
	ARN     string `json:"agent_arn,omitempty"`
	Name    string `json:"agent_name"`
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type Alias struct {
	ID           string `json:"alias_id"`
	Name         string `json:"alias_name"`
	AgentID      string `json:"agent_id"`
	AgentVersion string `json:"agent_version"`
}

// Resources records everything a demo run created, in creation order.
// Zero fields were never created and are skipped on teardown.
type Resources struct {
	GuardrailID      string `json:"guardrail_id,omitempty"`
	GuardrailVersion string `json:"guardrail_version,omitempty"`
	RoleName         string `json:"role_name,omitempty"`
	RoleARN          string `json:"role_arn,omitempty"`
	PolicyName       string `json:"policy_name,omitempty"`
	AgentID          string `json:"agent_id,omitempty"`
	AliasID          string `json:"alias_id,omitempty"`
	AgentVersion     string `json:"agent_version,omitempty"`
}

type Role struct {
	Name       string `json:"role_name"`
	ARN        string `json:"role_arn,omitempty"`
	PolicyName string `json:"policy_name,omitempty"`
}
