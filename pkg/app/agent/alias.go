package agent

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=AliasCreator --dir=. --output=./mocks --filename=alias_creator_mock.go --case=underscore --with-expecter
// AliasCreator points a new alias at a fresh version of a prepared agent.
type AliasCreator interface {
	Create(ctx context.Context, agentID, aliasName string) (domain.Alias, error)
}

type aliasCreator struct {
	logger *logrus.Logger
	client bedrock.Agents
	opts   PollOptions
}

func NewAliasCreator(logger *logrus.Logger, client bedrock.Agents, opts PollOptions) AliasCreator {
	return &aliasCreator{
		logger: logger,
		client: client,
		opts:   opts,
	}
}

func (a *aliasCreator) Create(ctx context.Context, agentID, aliasName string) (domain.Alias, error) {
	if agentID == "" {
		return domain.Alias{}, domain.ErrAgentIDRequired
	}
	if aliasName == "" {
		return domain.Alias{}, fmt.Errorf("alias name is required")
	}

	out, err := a.client.CreateAgentAlias(ctx, &bedrockagent.CreateAgentAliasInput{
		AgentId:        aws.String(agentID),
		AgentAliasName: aws.String(aliasName),
	})
	if err != nil {
		a.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to create agent alias")
		return domain.Alias{}, fmt.Errorf("failed to create alias %s: %w", aliasName, err)
	}
	alias := bedrock.ToAlias(out.AgentAlias)
	aliasID := alias.ID

	err = poll(ctx, a.opts, func(ctx context.Context) (bool, error) {
		got, err := a.client.GetAgentAlias(ctx, &bedrockagent.GetAgentAliasInput{
			AgentId:      aws.String(agentID),
			AgentAliasId: aws.String(aliasID),
		})
		if err != nil {
			a.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to get agent alias")
			return false, fmt.Errorf("failed to get alias %s: %w", aliasID, err)
		}
		if got.AgentAlias == nil {
			return false, nil
		}

		status := string(got.AgentAlias.AgentAliasStatus)
		a.logger.WithFields(logrus.Fields{
			"alias_id": aliasID,
			"status":   status,
		}).Debug("alias status")
		switch status {
		case domain.StatusPrepared:
			alias = bedrock.ToAlias(got.AgentAlias)
			return true, nil
		case domain.StatusFailed:
			return false, fmt.Errorf("%w: %s", domain.ErrAliasFailed, strings.Join(got.AgentAlias.FailureReasons, "; "))
		}
		return false, nil
	})
	if err != nil {
		return domain.Alias{ID: aliasID, AgentID: agentID, Name: aliasName}, err
	}

	a.logger.WithFields(logrus.Fields{
		"alias_id":      alias.ID,
		"agent_version": alias.AgentVersion,
	}).Info("agent alias is ready")
	return alias, nil
}
