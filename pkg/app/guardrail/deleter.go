package guardrail

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/aws"
	bedrocksdk "github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Deleter --dir=. --output=./mocks --filename=guardrail_deleter_mock.go --case=underscore --with-expecter
type Deleter interface {
	// Delete removes one numbered version, or the whole guardrail when
	// version is empty. DRAFT is refused since it only goes with the guardrail.
	Delete(ctx context.Context, guardrailID, version string) error
}

type deleter struct {
	logger *logrus.Logger
	client bedrock.ControlPlane
}

func NewDeleter(logger *logrus.Logger, client bedrock.ControlPlane) Deleter {
	return &deleter{
		logger: logger,
		client: client,
	}
}

func (d *deleter) Delete(ctx context.Context, guardrailID, version string) error {
	if guardrailID == "" {
		return domain.ErrIdentifierRequired
	}
	if strings.EqualFold(version, domain.DraftVersion) {
		return domain.ErrDraftDelete
	}

	input := &bedrocksdk.DeleteGuardrailInput{GuardrailIdentifier: aws.String(guardrailID)}
	if version != "" {
		input.GuardrailVersion = aws.String(version)
	}

	if _, err := d.client.DeleteGuardrail(ctx, input); err != nil {
		d.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to delete guardrail")
		return fmt.Errorf("failed to delete guardrail %s: %w", guardrailID, err)
	}

	d.logger.WithFields(logrus.Fields{
		"guardrail_id": guardrailID,
		"version":      version,
	}).Info("guardrail deleted")
	return nil
}
