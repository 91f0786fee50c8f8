package agent

import (
	"context"
	"fmt"
	"time"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	infraiam "github.com/NeuralTrust/bedrock-guardrails/pkg/infra/iam"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/sirupsen/logrus"
)

const (
	PermissionPolicyName = "BedrockAgentPermissions"
	roleDescription      = "Executes Amazon Bedrock agents with guardrails applied"
)

type RoleOptions struct {
	RoleName         string
	Region           string
	FoundationModel  string
	PropagationDelay time.Duration
}

//go:generate mockery --name=RoleProvisioner --dir=. --output=./mocks --filename=role_provisioner_mock.go --case=underscore --with-expecter
// RoleProvisioner creates the execution role a Bedrock agent assumes.
type RoleProvisioner interface {
	// Provision returns the role as far as it got; a role that was created
	// but could not be finished still carries its name so it can be removed.
	Provision(ctx context.Context, guardrailID string) (domain.Role, error)
}

type roleProvisioner struct {
	logger   *logrus.Logger
	client   infraiam.Client
	accounts awsx.AccountResolver
	opts     RoleOptions
}

func NewRoleProvisioner(
	logger *logrus.Logger,
	client infraiam.Client,
	accounts awsx.AccountResolver,
	opts RoleOptions,
) RoleProvisioner {
	return &roleProvisioner{
		logger:   logger,
		client:   client,
		accounts: accounts,
		opts:     opts,
	}
}

func (p *roleProvisioner) Provision(ctx context.Context, guardrailID string) (domain.Role, error) {
	if guardrailID == "" {
		return domain.Role{}, fmt.Errorf("guardrail identifier is required to scope the role")
	}

	account, err := p.accounts.AccountID(ctx)
	if err != nil {
		return domain.Role{}, err
	}

	trust, err := infraiam.TrustPolicy(account, p.opts.Region).JSON()
	if err != nil {
		return domain.Role{}, err
	}
	permissions, err := infraiam.PermissionPolicy(
		infraiam.FoundationModelARN(p.opts.Region, p.opts.FoundationModel),
		infraiam.GuardrailARN(p.opts.Region, account, guardrailID),
	).JSON()
	if err != nil {
		return domain.Role{}, err
	}

	p.logger.WithField("role_name", p.opts.RoleName).Info("creating agent execution role")

	out, err := p.client.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 aws.String(p.opts.RoleName),
		AssumeRolePolicyDocument: aws.String(trust),
		Description:              aws.String(roleDescription),
		Tags:                     []iamtypes.Tag{{Key: aws.String("CreatedBy"), Value: aws.String("script")}},
	})
	if err != nil {
		p.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to create role")
		return domain.Role{}, fmt.Errorf("failed to create role %s: %w", p.opts.RoleName, err)
	}

	role := domain.Role{Name: p.opts.RoleName}
	if out.Role != nil {
		role.ARN = aws.ToString(out.Role.Arn)
	}

	_, err = p.client.PutRolePolicy(ctx, &iam.PutRolePolicyInput{
		RoleName:       aws.String(p.opts.RoleName),
		PolicyName:     aws.String(PermissionPolicyName),
		PolicyDocument: aws.String(permissions),
	})
	if err != nil {
		p.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to attach role policy")
		return role, fmt.Errorf("failed to put policy on role %s: %w", p.opts.RoleName, err)
	}
	role.PolicyName = PermissionPolicyName

	// IAM is eventually consistent; agents created right away may not be able to assume the role.
	p.logger.WithField("delay", p.opts.PropagationDelay).Debug("waiting for role propagation")
	if err := sleep(ctx, p.opts.PropagationDelay); err != nil {
		return role, err
	}

	p.logger.WithField("role_arn", role.ARN).Info("role ready")
	return role, nil
}
