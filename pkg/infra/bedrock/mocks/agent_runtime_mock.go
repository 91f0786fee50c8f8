package mocks

import (
	"context"

	infrabedrock "github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/stretchr/testify/mock"
)

var _ infrabedrock.AgentRuntime = (*AgentRuntime)(nil)

type AgentRuntime struct {
	mock.Mock
}

func NewAgentRuntime(t interface {
	mock.TestingT
	Cleanup(func())
}) *AgentRuntime {
	m := &AgentRuntime{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AgentRuntime) InvokeAgent(ctx context.Context, params *bedrockagentruntime.InvokeAgentInput, optFns ...func(*bedrockagentruntime.Options)) (infrabedrock.CompletionStream, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(infrabedrock.CompletionStream)
	return out, args.Error(1)
}
