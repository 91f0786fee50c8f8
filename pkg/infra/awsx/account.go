package awsx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/sirupsen/logrus"
)

var ErrAccountUnknown = errors.New("aws account id could not be determined")

type CallerIdentityClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

var _ CallerIdentityClient = (*sts.Client)(nil)

type AccountResolver interface {
	AccountID(ctx context.Context) (string, error)
}

type accountResolver struct {
	configured string
	client     CallerIdentityClient
	logger     *logrus.Logger

	mu       sync.Mutex
	resolved string
}

// NewAccountResolver returns the configured account id when set, otherwise
// the account of the calling identity.
func NewAccountResolver(configured string, client CallerIdentityClient, logger *logrus.Logger) AccountResolver {
	return &accountResolver{
		configured: configured,
		client:     client,
		logger:     logger,
	}
}

func (r *accountResolver) AccountID(ctx context.Context) (string, error) {
	if r.configured != "" {
		return r.configured, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved != "" {
		return r.resolved, nil
	}

	out, err := r.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		r.logger.WithError(err).Error("failed to resolve caller identity")
		return "", fmt.Errorf("failed to resolve caller identity: %w", err)
	}
	account := aws.ToString(out.Account)
	if account == "" {
		return "", ErrAccountUnknown
	}

	r.logger.WithField("account_id", account).Debug("resolved account from caller identity")
	r.resolved = account
	return account, nil
}
