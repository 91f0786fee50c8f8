package guardrail

import (
	"context"
	"fmt"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/aws"
	bedrocksdk "github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/sirupsen/logrus"
)

type Lister interface {
	// List returns every guardrail (DRAFT entries) or, when guardrailID is
	// set, every version of that guardrail.
	List(ctx context.Context, guardrailID string) ([]domain.Summary, error)
}

type lister struct {
	logger *logrus.Logger
	client bedrock.ControlPlane
}

func NewLister(logger *logrus.Logger, client bedrock.ControlPlane) Lister {
	return &lister{
		logger: logger,
		client: client,
	}
}

func (l *lister) List(ctx context.Context, guardrailID string) ([]domain.Summary, error) {
	input := &bedrocksdk.ListGuardrailsInput{}
	if guardrailID != "" {
		input.GuardrailIdentifier = aws.String(guardrailID)
	}

	var summaries []domain.Summary
	paginator := bedrocksdk.NewListGuardrailsPaginator(l.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			l.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to list guardrails")
			return nil, fmt.Errorf("failed to list guardrails: %w", err)
		}
		for _, g := range page.Guardrails {
			summaries = append(summaries, bedrock.FromSummary(g))
		}
	}

	l.logger.WithField("count", len(summaries)).Debug("listed guardrails")
	return summaries, nil
}
