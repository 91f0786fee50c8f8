package dependency_container

import (
	"github.com/NeuralTrust/bedrock-guardrails/pkg/app/agent"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/app/demo"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/app/guardrail"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/config"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	infraiam "github.com/NeuralTrust/bedrock-guardrails/pkg/infra/iam"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/sirupsen/logrus"
)

type Container struct {
	GuardrailCreator   guardrail.Creator
	GuardrailLister    guardrail.Lister
	GuardrailGetter    guardrail.Getter
	GuardrailPublisher guardrail.Publisher
	GuardrailTester    guardrail.Tester
	GroundingChecker   guardrail.GroundingChecker
	GuardrailDeleter   guardrail.Deleter
	RoleProvisioner    agent.RoleProvisioner
	AgentCreator       agent.Creator
	AgentPreparer      agent.Preparer
	AliasCreator       agent.AliasCreator
	AgentInvoker       agent.Invoker
	Teardown           agent.Teardown
	Accounts           awsx.AccountResolver
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	AWS    aws.Config
	// Clients and IAM replace the SDK clients when set.
	Clients *bedrock.Clients
	IAM     infraiam.Client
	STS     awsx.CallerIdentityClient
}

func NewContainer(di ContainerDI) *Container {
	clients := di.Clients
	if clients == nil {
		clients = bedrock.NewClients(di.AWS)
	}
	iamClient := di.IAM
	if iamClient == nil {
		iamClient = iam.NewFromConfig(di.AWS)
	}
	stsClient := di.STS
	if stsClient == nil {
		stsClient = sts.NewFromConfig(di.AWS)
	}

	cfg := di.Cfg
	accounts := awsx.NewAccountResolver(cfg.AccountID, stsClient, di.Logger)

	prepareOpts := agent.PollOptions{Interval: cfg.Agent.PrepareInterval, Timeout: cfg.Agent.PollTimeout}
	aliasOpts := agent.PollOptions{Interval: cfg.Agent.AliasInterval, Timeout: cfg.Agent.PollTimeout}

	// guardrails
	guardrailDeleter := guardrail.NewDeleter(di.Logger, clients.ControlPlane)

	return &Container{
		GuardrailCreator:   guardrail.NewCreator(di.Logger, clients.ControlPlane),
		GuardrailLister:    guardrail.NewLister(di.Logger, clients.ControlPlane),
		GuardrailGetter:    guardrail.NewGetter(di.Logger, clients.ControlPlane),
		GuardrailPublisher: guardrail.NewPublisher(di.Logger, clients.ControlPlane),
		GuardrailTester:    guardrail.NewTester(di.Logger, clients.Runtime),
		GroundingChecker:   guardrail.NewGroundingChecker(di.Logger, clients.Runtime),
		GuardrailDeleter:   guardrailDeleter,

		// agents
		RoleProvisioner: agent.NewRoleProvisioner(di.Logger, iamClient, accounts, agent.RoleOptions{
			RoleName:         cfg.Agent.RoleName,
			Region:           cfg.AWS.Region,
			FoundationModel:  cfg.FoundationModel,
			PropagationDelay: cfg.Agent.IAMPropagationDelay,
		}),
		AgentCreator: agent.NewCreator(di.Logger, clients.Agents, agent.CreatorOptions{
			FoundationModel:       cfg.FoundationModel,
			Instruction:           cfg.Agent.Instruction,
			IdleSessionTTLSeconds: cfg.Agent.IdleSessionTTLSeconds,
		}),
		AgentPreparer: agent.NewPreparer(di.Logger, clients.Agents, prepareOpts),
		AliasCreator:  agent.NewAliasCreator(di.Logger, clients.Agents, aliasOpts),
		AgentInvoker:  agent.NewInvoker(di.Logger, clients.AgentRuntime, cfg.Agent.ApplyGuardrailInterval),
		Teardown:      agent.NewTeardown(di.Logger, clients.Agents, iamClient, guardrailDeleter, prepareOpts),
		Accounts:      accounts,
	}
}

// DemoSteps wires the demo runner to the container's operations.
func (c *Container) DemoSteps() demo.Steps {
	return demo.Steps{
		Guardrails: c.GuardrailCreator,
		Roles:      c.RoleProvisioner,
		Agents:     c.AgentCreator,
		Preparer:   c.AgentPreparer,
		Aliases:    c.AliasCreator,
		Invoker:    c.AgentInvoker,
	}
}
