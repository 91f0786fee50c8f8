package mocks

import (
	"context"

	app "github.com/NeuralTrust/bedrock-guardrails/pkg/app/guardrail"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
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

func (m *Creator) Create(ctx context.Context, def domain.Definition) (domain.Identifier, error) {
	args := m.Called(ctx, def)
	id, _ := args.Get(0).(domain.Identifier)
	return id, args.Error(1)
}
