package mocks

import (
	"context"
	"io"

	app "github.com/NeuralTrust/bedrock-guardrails/pkg/app/agent"
	"github.com/stretchr/testify/mock"
)

var _ app.Invoker = (*Invoker)(nil)

type Invoker struct {
	mock.Mock
}

func NewInvoker(t interface {
	mock.TestingT
	Cleanup(func())
}) *Invoker {
	m := &Invoker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Invoker) Invoke(ctx context.Context, req app.InvokeRequest, sink io.Writer) (app.InvokeResult, error) {
	args := m.Called(ctx, req, sink)
	result, _ := args.Get(0).(app.InvokeResult)
	return result, args.Error(1)
}
