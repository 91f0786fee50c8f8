package bedrock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	agentruntimetypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

//go:generate mockery --name=ControlPlane --dir=. --output=./mocks --filename=control_plane_mock.go --case=underscore --with-expecter
// ControlPlane is the subset of the Bedrock control plane used to manage guardrails.
type ControlPlane interface {
	CreateGuardrail(ctx context.Context, params *bedrock.CreateGuardrailInput, optFns ...func(*bedrock.Options)) (*bedrock.CreateGuardrailOutput, error)
	GetGuardrail(ctx context.Context, params *bedrock.GetGuardrailInput, optFns ...func(*bedrock.Options)) (*bedrock.GetGuardrailOutput, error)
	ListGuardrails(ctx context.Context, params *bedrock.ListGuardrailsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListGuardrailsOutput, error)
	CreateGuardrailVersion(ctx context.Context, params *bedrock.CreateGuardrailVersionInput, optFns ...func(*bedrock.Options)) (*bedrock.CreateGuardrailVersionOutput, error)
	DeleteGuardrail(ctx context.Context, params *bedrock.DeleteGuardrailInput, optFns ...func(*bedrock.Options)) (*bedrock.DeleteGuardrailOutput, error)
}

//go:generate mockery --name=Runtime --dir=. --output=./mocks --filename=runtime_mock.go --case=underscore --with-expecter
type Runtime interface {
	ApplyGuardrail(ctx context.Context, params *bedrockruntime.ApplyGuardrailInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ApplyGuardrailOutput, error)
}

//go:generate mockery --name=Agents --dir=. --output=./mocks --filename=agents_mock.go --case=underscore --with-expecter
type Agents interface {
	CreateAgent(ctx context.Context, params *bedrockagent.CreateAgentInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.CreateAgentOutput, error)
	GetAgent(ctx context.Context, params *bedrockagent.GetAgentInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.GetAgentOutput, error)
	PrepareAgent(ctx context.Context, params *bedrockagent.PrepareAgentInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.PrepareAgentOutput, error)
	CreateAgentAlias(ctx context.Context, params *bedrockagent.CreateAgentAliasInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.CreateAgentAliasOutput, error)
	GetAgentAlias(ctx context.Context, params *bedrockagent.GetAgentAliasInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.GetAgentAliasOutput, error)
	DeleteAgentAlias(ctx context.Context, params *bedrockagent.DeleteAgentAliasInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.DeleteAgentAliasOutput, error)
	DeleteAgent(ctx context.Context, params *bedrockagent.DeleteAgentInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.DeleteAgentOutput, error)
}

// CompletionStream is the event stream returned by InvokeAgent.
type CompletionStream interface {
	Events() <-chan agentruntimetypes.ResponseStream
	Close() error
	Err() error
}

//go:generate mockery --name=AgentRuntime --dir=. --output=./mocks --filename=agent_runtime_mock.go --case=underscore --with-expecter
type AgentRuntime interface {
	InvokeAgent(ctx context.Context, params *bedrockagentruntime.InvokeAgentInput, optFns ...func(*bedrockagentruntime.Options)) (CompletionStream, error)
}

var (
	_ ControlPlane     = (*bedrock.Client)(nil)
	_ Runtime          = (*bedrockruntime.Client)(nil)
	_ Agents           = (*bedrockagent.Client)(nil)
	_ AgentRuntime     = (*agentRuntime)(nil)
	_ CompletionStream = (*bedrockagentruntime.InvokeAgentEventStream)(nil)
)

// Clients groups every Bedrock API client built from one AWS configuration.
type Clients struct {
	ControlPlane ControlPlane
	Runtime      Runtime
	Agents       Agents
	AgentRuntime AgentRuntime
}

func NewClients(awsCfg aws.Config) *Clients {
	return &Clients{
		ControlPlane: bedrock.NewFromConfig(awsCfg),
		Runtime:      bedrockruntime.NewFromConfig(awsCfg),
		Agents:       bedrockagent.NewFromConfig(awsCfg),
		AgentRuntime: &agentRuntime{client: bedrockagentruntime.NewFromConfig(awsCfg)},
	}
}

type agentRuntime struct {
	client *bedrockagentruntime.Client
}

func (a *agentRuntime) InvokeAgent(
	ctx context.Context,
	params *bedrockagentruntime.InvokeAgentInput,
	optFns ...func(*bedrockagentruntime.Options),
) (CompletionStream, error) {
	out, err := a.client.InvokeAgent(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return out.GetStream(), nil
}
