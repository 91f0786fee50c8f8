package agent

import (
	"context"
	"testing"
	"time"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock/mocks"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func agentWithStatus(status types.AgentStatus, reasons ...string) *bedrockagent.GetAgentOutput {
	return &bedrockagent.GetAgentOutput{Agent: &types.Agent{
		AgentId:        aws.String("agent-1"),
		AgentStatus:    status,
		FailureReasons: reasons,
	}}
}

func TestPreparer_Prepare(t *testing.T) {
	client := mocks.NewAgents(t)
	preparer := NewPreparer(testLogger(), client, fastPoll())

	client.On("GetAgent", mock.Anything, mock.Anything).Return(agentWithStatus(types.AgentStatusCreating), nil).Once()
	client.On("GetAgent", mock.Anything, mock.Anything).Return(agentWithStatus(types.AgentStatusNotPrepared), nil).Once()
	client.On("PrepareAgent", mock.Anything, &bedrockagent.PrepareAgentInput{AgentId: aws.String("agent-1")}).
		Return(&bedrockagent.PrepareAgentOutput{AgentStatus: types.AgentStatusPreparing}, nil).Once()
	client.On("GetAgent", mock.Anything, mock.Anything).Return(agentWithStatus(types.AgentStatusPreparing), nil).Once()
	client.On("GetAgent", mock.Anything, mock.Anything).Return(agentWithStatus(types.AgentStatusPrepared), nil).Once()

	agent, err := preparer.Prepare(context.Background(), "agent-1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPrepared, agent.Status)
	client.AssertNumberOfCalls(t, "GetAgent", 4)
}

func TestPreparer_Prepare_Failed(t *testing.T) {
	client := mocks.NewAgents(t)
	preparer := NewPreparer(testLogger(), client, fastPoll())

	client.On("GetAgent", mock.Anything, mock.Anything).Return(agentWithStatus(types.AgentStatusNotPrepared), nil).Once()
	client.On("PrepareAgent", mock.Anything, mock.Anything).Return(&bedrockagent.PrepareAgentOutput{}, nil).Once()
	client.On("GetAgent", mock.Anything, mock.Anything).
		Return(agentWithStatus(types.AgentStatusFailed, "role cannot be assumed"), nil).Once()

	_, err := preparer.Prepare(context.Background(), "agent-1")

	assert.ErrorIs(t, err, domain.ErrAgentFailed)
	assert.ErrorContains(t, err, "role cannot be assumed")
}

func TestPreparer_Prepare_Timeout(t *testing.T) {
	client := mocks.NewAgents(t)
	preparer := NewPreparer(testLogger(), client, PollOptions{Interval: time.Millisecond, Timeout: 20 * time.Millisecond})

	client.On("GetAgent", mock.Anything, mock.Anything).Return(agentWithStatus(types.AgentStatusCreating), nil)

	_, err := preparer.Prepare(context.Background(), "agent-1")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	client.AssertNotCalled(t, "PrepareAgent", mock.Anything, mock.Anything)
}

func TestPreparer_Prepare_RequiresAgent(t *testing.T) {
	preparer := NewPreparer(testLogger(), mocks.NewAgents(t), fastPoll())

	_, err := preparer.Prepare(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrAgentIDRequired)
}
