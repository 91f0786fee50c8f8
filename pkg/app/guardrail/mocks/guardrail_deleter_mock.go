package mocks

import (
	"context"

	app "github.com/NeuralTrust/bedrock-guardrails/pkg/app/guardrail"
	"github.com/stretchr/testify/mock"
)

var _ app.Deleter = (*Deleter)(nil)

type Deleter struct {
	mock.Mock
}

func NewDeleter(t interface {
	mock.TestingT
	Cleanup(func())
}) *Deleter {
	m := &Deleter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Deleter) Delete(ctx context.Context, guardrailID, version string) error {
	args := m.Called(ctx, guardrailID, version)
	return args.Error(0)
}
