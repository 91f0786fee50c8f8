package mocks

import (
	"context"

	infrabedrock "github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/stretchr/testify/mock"
)

var _ infrabedrock.Agents = (*Agents)(nil)

type Agents struct {
	mock.Mock
}

func NewAgents(t interface {
	mock.TestingT
	Cleanup(func())
}) *Agents {
	m := &Agents{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Agents) CreateAgent(ctx context.Context, params *bedrockagent.CreateAgentInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.CreateAgentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagent.CreateAgentOutput)
	return out, args.Error(1)
}

func (m *Agents) GetAgent(ctx context.Context, params *bedrockagent.GetAgentInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.GetAgentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagent.GetAgentOutput)
	return out, args.Error(1)
}

func (m *Agents) PrepareAgent(ctx context.Context, params *bedrockagent.PrepareAgentInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.PrepareAgentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagent.PrepareAgentOutput)
	return out, args.Error(1)
}

func (m *Agents) CreateAgentAlias(ctx context.Context, params *bedrockagent.CreateAgentAliasInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.CreateAgentAliasOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagent.CreateAgentAliasOutput)
	return out, args.Error(1)
}

func (m *Agents) GetAgentAlias(ctx context.Context, params *bedrockagent.GetAgentAliasInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.GetAgentAliasOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagent.GetAgentAliasOutput)
	return out, args.Error(1)
}

func (m *Agents) DeleteAgentAlias(ctx context.Context, params *bedrockagent.DeleteAgentAliasInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.DeleteAgentAliasOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagent.DeleteAgentAliasOutput)
	return out, args.Error(1)
}

func (m *Agents) DeleteAgent(ctx context.Context, params *bedrockagent.DeleteAgentInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.DeleteAgentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagent.DeleteAgentOutput)
	return out, args.Error(1)
}
