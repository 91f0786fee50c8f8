package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/app/agent"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/app/guardrail"
	domainagent "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/sirupsen/logrus"
)

// Steps are the operations a demo run chains together.
type Steps struct {
	Guardrails guardrail.Creator
	Roles      agent.RoleProvisioner
	Agents     agent.Creator
	Preparer   agent.Preparer
	Aliases    agent.AliasCreator
	Invoker    agent.Invoker
}

type Options struct {
	Definition domain.Definition
	AliasName  string
	Output     io.Writer
	OnTrace    domainagent.TraceHandler
}

type Result struct {
	Resources domainagent.Resources `json:"resources"`
	Guardrail domain.Identifier     `json:"guardrail"`
	Agent     domainagent.Agent     `json:"agent"`
	Alias     domainagent.Alias     `json:"alias"`
	Invoke    agent.InvokeResult    `json:"invoke"`
}

// Runner creates a guardrail, attaches it to a fresh agent and chats with it.
type Runner interface {
	// Run always returns the resources created so far, also on error.
	Run(ctx context.Context, prompt string) (Result, error)
}

type runner struct {
	logger *logrus.Logger
	steps  Steps
	opts   Options
}

func NewRunner(logger *logrus.Logger, steps Steps, opts Options) Runner {
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	return &runner{
		logger: logger,
		steps:  steps,
		opts:   opts,
	}
}

func (r *runner) Run(ctx context.Context, prompt string) (Result, error) {
	var result Result
	res := &result.Resources

	def := r.opts.Definition
	if def.Name == "" {
		def = domain.DefaultDefinition()
	}

	id, err := r.steps.Guardrails.Create(ctx, def)
	if err != nil {
		return result, fmt.Errorf("create guardrail: %w", err)
	}
	result.Guardrail = id
	res.GuardrailID = id.ID
	res.GuardrailVersion = id.Version

	role, err := r.steps.Roles.Provision(ctx, id.ID)
	res.RoleName = role.Name
	res.RoleARN = role.ARN
	res.PolicyName = role.PolicyName
	if err != nil {
		return result, fmt.Errorf("provision role: %w", err)
	}

	created, err := r.steps.Agents.Create(ctx, agent.CreateRequest{
		RoleARN:          role.ARN,
		GuardrailID:      id.ID,
		GuardrailVersion: id.Version,
	})
	if err != nil {
		return result, fmt.Errorf("create agent: %w", err)
	}
	res.AgentID = created.ID

	prepared, err := r.steps.Preparer.Prepare(ctx, created.ID)
	if err != nil {
		return result, fmt.Errorf("prepare agent: %w", err)
	}
	if prepared.Name == "" {
		prepared.Name = created.Name
	}
	result.Agent = prepared

	alias, err := r.steps.Aliases.Create(ctx, created.ID, r.opts.AliasName)
	res.AliasID = alias.ID
	if err != nil {
		return result, fmt.Errorf("create alias: %w", err)
	}
	res.AgentVersion = alias.AgentVersion
	result.Alias = alias

	r.logger.WithFields(logrus.Fields{
		"guardrail_id": id.ID,
		"agent_id":     created.ID,
		"alias_id":     alias.ID,
	}).Info("demo agent ready, sending prompt")

	invoked, err := r.steps.Invoker.Invoke(ctx, agent.InvokeRequest{
		AgentID: created.ID,
		AliasID: alias.ID,
		Prompt:  prompt,
		OnTrace: r.opts.OnTrace,
	}, r.opts.Output)
	result.Invoke = invoked
	if err != nil {
		return result, fmt.Errorf("invoke agent: %w", err)
	}
	return result, nil
}
