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

//go:generate mockery --name=Preparer --dir=. --output=./mocks --filename=preparer_mock.go --case=underscore --with-expecter
// Preparer builds the DRAFT version of an agent so it can be invoked.
type Preparer interface {
	Prepare(ctx context.Context, agentID string) (domain.Agent, error)
}

type preparer struct {
	logger *logrus.Logger
	client bedrock.Agents
	opts   PollOptions
}

func NewPreparer(logger *logrus.Logger, client bedrock.Agents, opts PollOptions) Preparer {
	return &preparer{
		logger: logger,
		client: client,
		opts:   opts,
	}
}

func (p *preparer) Prepare(ctx context.Context, agentID string) (domain.Agent, error) {
	if agentID == "" {
		return domain.Agent{}, domain.ErrAgentIDRequired
	}

	// A freshly created agent rejects PrepareAgent until it leaves CREATING.
	if _, err := p.waitFor(ctx, agentID, func(status string) bool { return status != domain.StatusCreating }); err != nil {
		return domain.Agent{}, err
	}

	if _, err := p.client.PrepareAgent(ctx, &bedrockagent.PrepareAgentInput{AgentId: aws.String(agentID)}); err != nil {
		p.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to prepare agent")
		return domain.Agent{}, fmt.Errorf("failed to prepare agent %s: %w", agentID, err)
	}

	agent, err := p.waitFor(ctx, agentID, func(status string) bool { return status == domain.StatusPrepared })
	if err != nil {
		return domain.Agent{}, err
	}
	p.logger.WithField("agent_id", agentID).Info("agent is ready")
	return agent, nil
}

func (p *preparer) waitFor(ctx context.Context, agentID string, ready func(status string) bool) (domain.Agent, error) {
	var agent domain.Agent
	err := poll(ctx, p.opts, func(ctx context.Context) (bool, error) {
		out, err := p.client.GetAgent(ctx, &bedrockagent.GetAgentInput{AgentId: aws.String(agentID)})
		if err != nil {
			p.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to get agent")
			return false, fmt.Errorf("failed to get agent %s: %w", agentID, err)
		}
		agent = bedrock.ToAgent(out.Agent)
		p.logger.WithFields(logrus.Fields{
			"agent_id": agentID,
			"status":   agent.Status,
		}).Debug("agent status")

		if agent.Status == domain.StatusFailed {
			var reasons []string
			if out.Agent != nil {
				reasons = out.Agent.FailureReasons
			}
			return false, fmt.Errorf("%w: %s", domain.ErrAgentFailed, strings.Join(reasons, "; "))
		}
		return ready(agent.Status), nil
	})
	return agent, err
}
