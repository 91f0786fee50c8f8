package mocks

import (
	"context"

	infrabedrock "github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/stretchr/testify/mock"
)

var _ infrabedrock.ControlPlane = (*ControlPlane)(nil)

type ControlPlane struct {
	mock.Mock
}

func NewControlPlane(t interface {
	mock.TestingT
	Cleanup(func())
}) *ControlPlane {
	m := &ControlPlane{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ControlPlane) CreateGuardrail(ctx context.Context, params *bedrock.CreateGuardrailInput, optFns ...func(*bedrock.Options)) (*bedrock.CreateGuardrailOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrock.CreateGuardrailOutput)
	return out, args.Error(1)
}

func (m *ControlPlane) GetGuardrail(ctx context.Context, params *bedrock.GetGuardrailInput, optFns ...func(*bedrock.Options)) (*bedrock.GetGuardrailOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrock.GetGuardrailOutput)
	return out, args.Error(1)
}

func (m *ControlPlane) ListGuardrails(ctx context.Context, params *bedrock.ListGuardrailsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListGuardrailsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrock.ListGuardrailsOutput)
	return out, args.Error(1)
}

func (m *ControlPlane) CreateGuardrailVersion(ctx context.Context, params *bedrock.CreateGuardrailVersionInput, optFns ...func(*bedrock.Options)) (*bedrock.CreateGuardrailVersionOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrock.CreateGuardrailVersionOutput)
	return out, args.Error(1)
}

func (m *ControlPlane) DeleteGuardrail(ctx context.Context, params *bedrock.DeleteGuardrailInput, optFns ...func(*bedrock.Options)) (*bedrock.DeleteGuardrailOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrock.DeleteGuardrailOutput)
	return out, args.Error(1)
}
