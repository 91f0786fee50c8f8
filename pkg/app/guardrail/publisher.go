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

// Publisher snapshots the DRAFT of a guardrail into an immutable numbered version.
type Publisher interface {
	Publish(ctx context.Context, guardrailID, description string) (domain.Identifier, error)
}

type publisher struct {
	logger *logrus.Logger
	client bedrock.ControlPlane
}

func NewPublisher(logger *logrus.Logger, client bedrock.ControlPlane) Publisher {
	return &publisher{
		logger: logger,
		client: client,
	}
}

func (p *publisher) Publish(ctx context.Context, guardrailID, description string) (domain.Identifier, error) {
	if guardrailID == "" {
		return domain.Identifier{}, domain.ErrIdentifierRequired
	}

	input := &bedrocksdk.CreateGuardrailVersionInput{GuardrailIdentifier: aws.String(guardrailID)}
	if description != "" {
		input.Description = aws.String(description)
	}

	out, err := p.client.CreateGuardrailVersion(ctx, input)
	if err != nil {
		p.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to create guardrail version")
		return domain.Identifier{}, fmt.Errorf("failed to create guardrail version: %w", err)
	}

	id := domain.Identifier{
		ID:      aws.ToString(out.GuardrailId),
		Version: aws.ToString(out.Version),
	}
	p.logger.WithFields(logrus.Fields{
		"guardrail_id": id.ID,
		"version":      id.Version,
	}).Info("guardrail version created")
	return id, nil
}
