package mocks

import (
	"context"

	app "github.com/NeuralTrust/bedrock-guardrails/pkg/app/agent"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/stretchr/testify/mock"
)

var _ app.Preparer = (*Preparer)(nil)

type Preparer struct {
	mock.Mock
}

func NewPreparer(t interface {
	mock.TestingT
	Cleanup(func())
}) *Preparer {
	m := &Preparer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Preparer) Prepare(ctx context.Context, agentID string) (domain.Agent, error) {
	args := m.Called(ctx, agentID)
	agent, _ := args.Get(0).(domain.Agent)
	return agent, args.Error(1)
}
