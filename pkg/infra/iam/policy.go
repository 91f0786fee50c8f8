package iam

import (
	"encoding/json"
	"fmt"
)

const policyVersion = "2012-10-17"

type Document struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

type Statement struct {
	Sid       string                       `json:"Sid,omitempty"`
	Effect    string                       `json:"Effect"`
	Principal map[string]string            `json:"Principal,omitempty"`
	Action    any                          `json:"Action"`
	Resource  string                       `json:"Resource,omitempty"`
	Condition map[string]map[string]string `json:"Condition,omitempty"`
}

func GuardrailARN(region, account, guardrailID string) string {
	return fmt.Sprintf("arn:aws:bedrock:%s:%s:guardrail/%s", region, account, guardrailID)
}

func FoundationModelARN(region, model string) string {
	return fmt.Sprintf("arn:aws:bedrock:%s::foundation-model/%s", region, model)
}

// TrustPolicy lets Bedrock agents of the given account and region assume the role.
func TrustPolicy(account, region string) Document {
	return Document{
		Version: policyVersion,
		Statement: []Statement{{
			Effect:    "Allow",
			Principal: map[string]string{"Service": "bedrock.amazonaws.com"},
			Action:    "sts:AssumeRole",
			Condition: map[string]map[string]string{
				"StringEquals": {"aws:SourceAccount": account},
				"ArnLike":      {"AWS:SourceArn": fmt.Sprintf("arn:aws:bedrock:%s:%s:agent/*", region, account)},
			},
		}},
	}
}

// PermissionPolicy grants model invocation and guardrail application, nothing else.
func PermissionPolicy(modelARN, guardrailARN string) Document {
	return Document{
		Version: policyVersion,
		Statement: []Statement{
			{
				Sid:      "InvokeFoundationModels",
				Effect:   "Allow",
				Action:   []string{"bedrock:InvokeModel", "bedrock:InvokeModelWithResponseStream"},
				Resource: modelARN,
			},
			{
				Sid:      "ApplyGuardrail",
				Effect:   "Allow",
				Action:   "bedrock:ApplyGuardrail",
				Resource: guardrailARN,
			},
		},
	}
}

func (d Document) JSON() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to marshal policy document: %w", err)
	}
	return string(b), nil
}
