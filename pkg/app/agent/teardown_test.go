package agent

import (
	"context"
	"errors"
	"testing"

	guardrailmocks "github.com/NeuralTrust/bedrock-guardrails/pkg/app/guardrail/mocks"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock/mocks"
	iammocks "github.com/NeuralTrust/bedrock-guardrails/pkg/infra/iam/mocks"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fullResources() domain.Resources {
	return domain.Resources{
		GuardrailID:      "gr-1",
		GuardrailVersion: "DRAFT",
		RoleName:         "BedrockAgentExecutionRole",
		RoleARN:          "role-arn",
		PolicyName:       PermissionPolicyName,
		AgentID:          "agent-1",
		AliasID:          "alias-1",
	}
}

func TestTeardown_Run_DeletesInOrder(t *testing.T) {
	agents := mocks.NewAgents(t)
	iamClient := iammocks.NewClient(t)
	guardrails := guardrailmocks.NewDeleter(t)
	teardown := NewTeardown(testLogger(), agents, iamClient, guardrails, fastPoll())

	var order []string
	step := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, name) }
	}
	notFound := &smithy.GenericAPIError{Code: "ResourceNotFoundException"}

	agents.On("DeleteAgentAlias", mock.Anything, &bedrockagent.DeleteAgentAliasInput{
		AgentId:      aws.String("agent-1"),
		AgentAliasId: aws.String("alias-1"),
	}).Run(step("alias")).Return(&bedrockagent.DeleteAgentAliasOutput{}, nil)
	agents.On("DeleteAgent", mock.Anything, &bedrockagent.DeleteAgentInput{AgentId: aws.String("agent-1")}).
		Run(step("agent")).Return(&bedrockagent.DeleteAgentOutput{}, nil)
	agents.On("GetAgent", mock.Anything, mock.Anything).Return(agentWithStatus("DELETING"), nil).Once()
	agents.On("GetAgent", mock.Anything, mock.Anything).Return(nil, notFound).Once()
	iamClient.On("DeleteRolePolicy", mock.Anything, &iam.DeleteRolePolicyInput{
		RoleName:   aws.String("BedrockAgentExecutionRole"),
		PolicyName: aws.String(PermissionPolicyName),
	}).Run(step("policy")).Return(&iam.DeleteRolePolicyOutput{}, nil)
	iamClient.On("DeleteRole", mock.Anything, &iam.DeleteRoleInput{RoleName: aws.String("BedrockAgentExecutionRole")}).
		Run(step("role")).Return(&iam.DeleteRoleOutput{}, nil)
	guardrails.On("Delete", mock.Anything, "gr-1", "").Run(step("guardrail")).Return(nil)

	require.NoError(t, teardown.Run(context.Background(), fullResources()))
	assert.Equal(t, []string{"alias", "agent", "policy", "role", "guardrail"}, order)
}

func TestTeardown_Run_ContinuesAfterFailures(t *testing.T) {
	agents := mocks.NewAgents(t)
	iamClient := iammocks.NewClient(t)
	guardrails := guardrailmocks.NewDeleter(t)
	teardown := NewTeardown(testLogger(), agents, iamClient, guardrails, fastPoll())

	aliasErr := errors.New("alias busy")
	roleErr := errors.New("role in use")

	agents.On("DeleteAgentAlias", mock.Anything, mock.Anything).Return(nil, aliasErr)
	agents.On("DeleteAgent", mock.Anything, mock.Anything).Return(&bedrockagent.DeleteAgentOutput{}, nil)
	agents.On("GetAgent", mock.Anything, mock.Anything).Return(nil, &smithy.GenericAPIError{Code: "ResourceNotFoundException"})
	iamClient.On("DeleteRolePolicy", mock.Anything, mock.Anything).Return(&iam.DeleteRolePolicyOutput{}, nil)
	iamClient.On("DeleteRole", mock.Anything, mock.Anything).Return(nil, roleErr)
	guardrails.On("Delete", mock.Anything, "gr-1", "").Return(nil)

	err := teardown.Run(context.Background(), fullResources())

	require.Error(t, err)
	assert.ErrorIs(t, err, aliasErr)
	assert.ErrorIs(t, err, roleErr)
	assert.ErrorContains(t, err, "delete agent alias")
}

func TestTeardown_Run_SkipsMissingResources(t *testing.T) {
	guardrails := guardrailmocks.NewDeleter(t)
	teardown := NewTeardown(testLogger(), mocks.NewAgents(t), iammocks.NewClient(t), guardrails, fastPoll())

	guardrails.On("Delete", mock.Anything, "gr-1", "").Return(nil)

	require.NoError(t, teardown.Run(context.Background(), domain.Resources{GuardrailID: "gr-1"}))
}
