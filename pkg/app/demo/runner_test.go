package demo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/app/agent"
	agentmocks "github.com/NeuralTrust/bedrock-guardrails/pkg/app/agent/mocks"
	guardrailmocks "github.com/NeuralTrust/bedrock-guardrails/pkg/app/guardrail/mocks"
	domainagent "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	guardrails *guardrailmocks.Creator
	roles      *agentmocks.RoleProvisioner
	agents     *agentmocks.Creator
	preparer   *agentmocks.Preparer
	aliases    *agentmocks.AliasCreator
	invoker    *agentmocks.Invoker
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		guardrails: guardrailmocks.NewCreator(t),
		roles:      agentmocks.NewRoleProvisioner(t),
		agents:     agentmocks.NewCreator(t),
		preparer:   agentmocks.NewPreparer(t),
		aliases:    agentmocks.NewAliasCreator(t),
		invoker:    agentmocks.NewInvoker(t),
	}
}

func (f *fixture) steps() Steps {
	return Steps{
		Guardrails: f.guardrails,
		Roles:      f.roles,
		Agents:     f.agents,
		Preparer:   f.preparer,
		Aliases:    f.aliases,
		Invoker:    f.invoker,
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRunner_Run(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer
	runner := NewRunner(quietLogger(), f.steps(), Options{AliasName: "demo", Output: &out})
	ctx := context.Background()

	f.guardrails.On("Create", ctx, mock.MatchedBy(func(def domain.Definition) bool {
		return len(def.Topics) == 1 && def.Topics[0].Name == "Heavy metal"
	})).Return(domain.Identifier{ID: "gr-1", Version: "DRAFT"}, nil)
	f.roles.On("Provision", ctx, "gr-1").
		Return(domainagent.Role{Name: "role", ARN: "role-arn", PolicyName: "BedrockAgentPermissions"}, nil)
	f.agents.On("Create", ctx, agent.CreateRequest{RoleARN: "role-arn", GuardrailID: "gr-1", GuardrailVersion: "DRAFT"}).
		Return(domainagent.Agent{ID: "agent-1", Name: "demo-agent-guardrails-abc123"}, nil)
	f.preparer.On("Prepare", ctx, "agent-1").Return(domainagent.Agent{ID: "agent-1", Status: "PREPARED"}, nil)
	f.aliases.On("Create", ctx, "agent-1", "demo").
		Return(domainagent.Alias{ID: "alias-1", AgentID: "agent-1", AgentVersion: "1"}, nil)
	f.invoker.On("Invoke", ctx, mock.MatchedBy(func(req agent.InvokeRequest) bool {
		return req.AgentID == "agent-1" && req.AliasID == "alias-1" && req.Prompt == "what type of music do you like?"
	}), &out).Return(agent.InvokeResult{SessionID: "s-1", Bytes: 12}, nil)

	result, err := runner.Run(ctx, "what type of music do you like?")

	require.NoError(t, err)
	assert.Equal(t, domainagent.Resources{
		GuardrailID:      "gr-1",
		GuardrailVersion: "DRAFT",
		RoleName:         "role",
		RoleARN:          "role-arn",
		PolicyName:       "BedrockAgentPermissions",
		AgentID:          "agent-1",
		AliasID:          "alias-1",
		AgentVersion:     "1",
	}, result.Resources)
	assert.Equal(t, "demo-agent-guardrails-abc123", result.Agent.Name)
	assert.Equal(t, "s-1", result.Invoke.SessionID)
}

func TestRunner_Run_ReturnsPartialResources(t *testing.T) {
	f := newFixture(t)
	runner := NewRunner(quietLogger(), f.steps(), Options{AliasName: "demo"})
	prepareErr := domainagent.ErrAgentFailed

	f.guardrails.On("Create", mock.Anything, mock.Anything).Return(domain.Identifier{ID: "gr-1", Version: "DRAFT"}, nil)
	f.roles.On("Provision", mock.Anything, "gr-1").Return(domainagent.Role{Name: "role", ARN: "role-arn", PolicyName: "p"}, nil)
	f.agents.On("Create", mock.Anything, mock.Anything).Return(domainagent.Agent{ID: "agent-1"}, nil)
	f.preparer.On("Prepare", mock.Anything, "agent-1").Return(domainagent.Agent{}, prepareErr)

	result, err := runner.Run(context.Background(), "hi")

	assert.ErrorIs(t, err, prepareErr)
	assert.Equal(t, "gr-1", result.Resources.GuardrailID)
	assert.Equal(t, "role", result.Resources.RoleName)
	assert.Equal(t, "agent-1", result.Resources.AgentID)
	assert.Empty(t, result.Resources.AliasID)
}

func TestRunner_Run_RoleFailureKeepsRoleName(t *testing.T) {
	f := newFixture(t)
	roleErr := errors.New("put policy denied")

	custom := domain.DefaultDefinition()
	custom.Name = "custom"
	runner := NewRunner(quietLogger(), f.steps(), Options{Definition: custom, AliasName: "demo"})

	f.guardrails.On("Create", mock.Anything, custom).Return(domain.Identifier{ID: "gr-1"}, nil)
	f.roles.On("Provision", mock.Anything, "gr-1").Return(domainagent.Role{Name: "role"}, roleErr)

	result, err := runner.Run(context.Background(), "hi")

	assert.ErrorIs(t, err, roleErr)
	assert.Equal(t, "role", result.Resources.RoleName)
	f.agents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
