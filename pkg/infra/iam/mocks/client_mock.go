package mocks

import (
	"context"

	infraiam "github.com/NeuralTrust/bedrock-guardrails/pkg/infra/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/stretchr/testify/mock"
)

var _ infraiam.Client = (*Client)(nil)

type Client struct {
	mock.Mock
}

func NewClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *Client {
	m := &Client{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Client) CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*iam.CreateRoleOutput)
	return out, args.Error(1)
}

func (m *Client) PutRolePolicy(ctx context.Context, params *iam.PutRolePolicyInput, optFns ...func(*iam.Options)) (*iam.PutRolePolicyOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*iam.PutRolePolicyOutput)
	return out, args.Error(1)
}

func (m *Client) DeleteRolePolicy(ctx context.Context, params *iam.DeleteRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DeleteRolePolicyOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*iam.DeleteRolePolicyOutput)
	return out, args.Error(1)
}

func (m *Client) DeleteRole(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*iam.DeleteRoleOutput)
	return out, args.Error(1)
}
