package guardrail

import (
	"context"
	"fmt"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=guardrail_creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, def domain.Definition) (domain.Identifier, error)
}

type creator struct {
	logger *logrus.Logger
	client bedrock.ControlPlane
}

func NewCreator(logger *logrus.Logger, client bedrock.ControlPlane) Creator {
	return &creator{
		logger: logger,
		client: client,
	}
}

func (c *creator) Create(ctx context.Context, def domain.Definition) (domain.Identifier, error) {
	if err := def.Validate(); err != nil {
		return domain.Identifier{}, err
	}

	c.logger.WithField("guardrail_name", def.Name).Info("creating guardrail")

	out, err := c.client.CreateGuardrail(ctx, bedrock.CreateGuardrailInput(def))
	if err != nil {
		c.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to create guardrail")
		return domain.Identifier{}, fmt.Errorf("failed to create guardrail: %w", err)
	}

	id := bedrock.ToIdentifier(out)
	c.logger.WithFields(logrus.Fields{
		"guardrail_id": id.ID,
		"version":      id.Version,
	}).Info("guardrail created")
	return id, nil
}
