package mocks

import (
	"context"

	infrabedrock "github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/mock"
)

var _ infrabedrock.Runtime = (*Runtime)(nil)

type Runtime struct {
	mock.Mock
}

func NewRuntime(t interface {
	mock.TestingT
	Cleanup(func())
}) *Runtime {
	m := &Runtime{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Runtime) ApplyGuardrail(ctx context.Context, params *bedrockruntime.ApplyGuardrailInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ApplyGuardrailOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockruntime.ApplyGuardrailOutput)
	return out, args.Error(1)
}
