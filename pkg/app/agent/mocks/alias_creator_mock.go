package mocks

import (
	"context"

	app "github.com/NeuralTrust/bedrock-guardrails/pkg/app/agent"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/stretchr/testify/mock"
)

var _ app.AliasCreator = (*AliasCreator)(nil)

type AliasCreator struct {
	mock.Mock
}

func NewAliasCreator(t interface {
	mock.TestingT
	Cleanup(func())
}) *AliasCreator {
	m := &AliasCreator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AliasCreator) Create(ctx context.Context, agentID, aliasName string) (domain.Alias, error) {
	args := m.Called(ctx, agentID, aliasName)
	alias, _ := args.Get(0).(domain.Alias)
	return alias, args.Error(1)
}
