package mocks

import (
	"context"

	app "github.com/NeuralTrust/bedrock-guardrails/pkg/app/agent"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/stretchr/testify/mock"
)

var _ app.RoleProvisioner = (*RoleProvisioner)(nil)

type RoleProvisioner struct {
	mock.Mock
}

func NewRoleProvisioner(t interface {
	mock.TestingT
	Cleanup(func())
}) *RoleProvisioner {
	m := &RoleProvisioner{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RoleProvisioner) Provision(ctx context.Context, guardrailID string) (domain.Role, error) {
	args := m.Called(ctx, guardrailID)
	role, _ := args.Get(0).(domain.Role)
	return role, args.Error(1)
}
