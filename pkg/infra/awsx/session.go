package awsx

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/sirupsen/logrus"
)

var ErrMissingCredentials = errors.New("no AWS credentials could be resolved")

// LoadConfig resolves the AWS configuration for every service client.
// Static keys win over the default chain; a role ARN wraps whatever was
// resolved in an assume-role provider.
func LoadConfig(ctx context.Context, cfg config.AWSConfig, logger *logrus.Logger) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	switch {
	case cfg.UseStaticCredentials():
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	case cfg.Profile != "":
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.WithError(err).Error("failed to load AWS config")
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.RoleARN != "" {
		logger.WithFields(logrus.Fields{
			"role_arn":     cfg.RoleARN,
			"session_name": cfg.SessionName,
		}).Debug("assuming role for AWS calls")

		stsClient := sts.NewFromConfig(awsCfg)
		provider := stscreds.NewAssumeRoleProvider(stsClient, cfg.RoleARN, func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = cfg.SessionName
		})
		awsCfg.Credentials = aws.NewCredentialsCache(provider)
	}

	return awsCfg, nil
}

// ValidateCredentials retrieves credentials once so that a missing setup
// fails before any request payload is built.
func ValidateCredentials(ctx context.Context, awsCfg aws.Config) error {
	if awsCfg.Credentials == nil {
		return ErrMissingCredentials
	}
	creds, err := awsCfg.Credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMissingCredentials, err)
	}
	if !creds.HasKeys() {
		return ErrMissingCredentials
	}
	return nil
}
