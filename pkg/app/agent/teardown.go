package agent

import (
	"context"
	"errors"
	"fmt"

	app "github.com/NeuralTrust/bedrock-guardrails/pkg/app/guardrail"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	infraiam "github.com/NeuralTrust/bedrock-guardrails/pkg/infra/iam"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/sirupsen/logrus"
)

const notFoundCode = "ResourceNotFoundException"

// Teardown removes everything a demo run created. Every step runs even when
// an earlier one fails.
type Teardown interface {
	Run(ctx context.Context, res domain.Resources) error
}

type teardown struct {
	logger     *logrus.Logger
	agents     bedrock.Agents
	iam        infraiam.Client
	guardrails app.Deleter
	opts       PollOptions
}

func NewTeardown(
	logger *logrus.Logger,
	agents bedrock.Agents,
	iamClient infraiam.Client,
	guardrails app.Deleter,
	opts PollOptions,
) Teardown {
	return &teardown{
		logger:     logger,
		agents:     agents,
		iam:        iamClient,
		guardrails: guardrails,
		opts:       opts,
	}
}

func (t *teardown) Run(ctx context.Context, res domain.Resources) error {
	var errs []error
	record := func(step string, err error) {
		if err == nil {
			return
		}
		t.logger.WithError(err).WithFields(awsx.ErrorFields(err)).WithField("step", step).Warn("teardown step failed")
		errs = append(errs, fmt.Errorf("%s: %w", step, err))
	}

	if res.AgentID != "" && res.AliasID != "" {
		_, err := t.agents.DeleteAgentAlias(ctx, &bedrockagent.DeleteAgentAliasInput{
			AgentId:      aws.String(res.AgentID),
			AgentAliasId: aws.String(res.AliasID),
		})
		record("delete agent alias", err)
	}

	if res.AgentID != "" {
		_, err := t.agents.DeleteAgent(ctx, &bedrockagent.DeleteAgentInput{AgentId: aws.String(res.AgentID)})
		if err == nil {
			// The guardrail cannot be deleted while an agent still references it.
			err = t.waitAgentGone(ctx, res.AgentID)
		}
		record("delete agent", err)
	}

	if res.RoleName != "" && res.PolicyName != "" {
		_, err := t.iam.DeleteRolePolicy(ctx, &iam.DeleteRolePolicyInput{
			RoleName:   aws.String(res.RoleName),
			PolicyName: aws.String(res.PolicyName),
		})
		record("delete role policy", err)
	}

	if res.RoleName != "" {
		_, err := t.iam.DeleteRole(ctx, &iam.DeleteRoleInput{RoleName: aws.String(res.RoleName)})
		record("delete role", err)
	}

	if res.GuardrailID != "" {
		record("delete guardrail", t.guardrails.Delete(ctx, res.GuardrailID, ""))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	t.logger.Info("demo resources removed")
	return nil
}

func (t *teardown) waitAgentGone(ctx context.Context, agentID string) error {
	return poll(ctx, t.opts, func(ctx context.Context) (bool, error) {
		_, err := t.agents.GetAgent(ctx, &bedrockagent.GetAgentInput{AgentId: aws.String(agentID)})
		if err == nil {
			return false, nil
		}
		if awsx.ErrorCode(err) == notFoundCode {
			return true, nil
		}
		return false, err
	})
}
