package mocks

import (
	"context"

	app "github.com/NeuralTrust/bedrock-guardrails/pkg/app/agent"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/stretchr/testify/mock"
)

var _ app.Creator = (*Creator)(nil)

type Creator struct {
	mock.Mock
}

func NewCreator(t interface {
	mock.TestingT
	Cleanup(func())
}) *Creator {
	m := &Creator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Creator) Create(ctx context.Context, req app.CreateRequest) (domain.Agent, error) {
	args := m.Called(ctx, req)
	agent, _ := args.Get(0).(domain.Agent)
	return agent, args.Error(1)
}
