package bedrock

import (
	domainagent "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"
)

func ToAgent(a *types.Agent) domainagent.Agent {
	if a == nil {
		return domainagent.Agent{}
	}
	return domainagent.Agent{
		ID:      aws.ToString(a.AgentId),
		ARN:     aws.ToString(a.AgentArn),
		Name:    aws.ToString(a.AgentName),
		Status:  string(a.AgentStatus),
		Version: aws.ToString(a.AgentVersion),
	}
}

// ToAlias reports the first routed agent version, which is the only one
// for aliases created without an explicit routing configuration.
func ToAlias(a *types.AgentAlias) domainagent.Alias {
	if a == nil {
		return domainagent.Alias{}
	}
	alias := domainagent.Alias{
		ID:      aws.ToString(a.AgentAliasId),
		Name:    aws.ToString(a.AgentAliasName),
		AgentID: aws.ToString(a.AgentId),
	}
	if len(a.RoutingConfiguration) > 0 {
		alias.AgentVersion = aws.ToString(a.RoutingConfiguration[0].AgentVersion)
	}
	return alias
}
