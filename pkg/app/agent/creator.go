package agent

import (
	"context"
	"fmt"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"
	"github.com/sirupsen/logrus"
)

type CreatorOptions struct {
	FoundationModel       string
	Instruction           string
	IdleSessionTTLSeconds int32
}

type CreateRequest struct {
	Name             string
	RoleARN          string
	GuardrailID      string
	GuardrailVersion string
}

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=agent_creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, req CreateRequest) (domain.Agent, error)
}

type creator struct {
	logger *logrus.Logger
	client bedrock.Agents
	opts   CreatorOptions
}

func NewCreator(logger *logrus.Logger, client bedrock.Agents, opts CreatorOptions) Creator {
	return &creator{
		logger: logger,
		client: client,
		opts:   opts,
	}
}

func (c *creator) Create(ctx context.Context, req CreateRequest) (domain.Agent, error) {
	if req.GuardrailID == "" {
		return domain.Agent{}, guardrail.ErrIdentifierRequired
	}
	if req.RoleARN == "" {
		return domain.Agent{}, fmt.Errorf("agent role arn is required")
	}
	name := req.Name
	if name == "" {
		name = guardrail.NewNameN(domain.NamePrefix, 6)
	}
	version := req.GuardrailVersion
	if version == "" {
		version = guardrail.DraftVersion
	}

	c.logger.WithFields(logrus.Fields{
		"agent_name":        name,
		"guardrail_id":      req.GuardrailID,
		"guardrail_version": version,
	}).Info("creating agent")

	input := &bedrockagent.CreateAgentInput{
		AgentName:            aws.String(name),
		FoundationModel:      aws.String(c.opts.FoundationModel),
		Instruction:          aws.String(c.opts.Instruction),
		AgentResourceRoleArn: aws.String(req.RoleARN),
		GuardrailConfiguration: &types.GuardrailConfiguration{
			GuardrailIdentifier: aws.String(req.GuardrailID),
			GuardrailVersion:    aws.String(version),
		},
	}
	if c.opts.IdleSessionTTLSeconds > 0 {
		input.IdleSessionTTLInSeconds = aws.Int32(c.opts.IdleSessionTTLSeconds)
	}

	out, err := c.client.CreateAgent(ctx, input)
	if err != nil {
		c.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to create agent")
		return domain.Agent{}, fmt.Errorf("failed to create agent %s: %w", name, err)
	}

	agent := bedrock.ToAgent(out.Agent)
	c.logger.WithField("agent_id", agent.ID).Info("agent created")
	return agent, nil
}
