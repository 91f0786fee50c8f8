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

type Getter interface {
	Get(ctx context.Context, guardrailID, version string) (domain.Summary, error)
}

type getter struct {
	logger *logrus.Logger
	client bedrock.ControlPlane
}

func NewGetter(logger *logrus.Logger, client bedrock.ControlPlane) Getter {
	return &getter{
		logger: logger,
		client: client,
	}
}

func (g *getter) Get(ctx context.Context, guardrailID, version string) (domain.Summary, error) {
	if guardrailID == "" {
		return domain.Summary{}, domain.ErrIdentifierRequired
	}

	input := &bedrocksdk.GetGuardrailInput{GuardrailIdentifier: aws.String(guardrailID)}
	if version != "" {
		input.GuardrailVersion = aws.String(version)
	}

	out, err := g.client.GetGuardrail(ctx, input)
	if err != nil {
		g.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to get guardrail")
		return domain.Summary{}, fmt.Errorf("failed to get guardrail %s: %w", guardrailID, err)
	}
	return bedrock.FromGetGuardrail(out), nil
}
