package guardrail

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/sirupsen/logrus"
)

type ApplyRequest struct {
	GuardrailID string
	Version     string
	Source      string
	Text        string
	FullOutput  bool
}

// Tester sends a piece of text through a guardrail and reports the verdict.
type Tester interface {
	Apply(ctx context.Context, req ApplyRequest) (domain.Evaluation, error)
}

type tester struct {
	logger *logrus.Logger
	client bedrock.Runtime
}

func NewTester(logger *logrus.Logger, client bedrock.Runtime) Tester {
	return &tester{
		logger: logger,
		client: client,
	}
}

func (t *tester) Apply(ctx context.Context, req ApplyRequest) (domain.Evaluation, error) {
	if req.GuardrailID == "" {
		return domain.Evaluation{}, domain.ErrIdentifierRequired
	}
	if strings.TrimSpace(req.Text) == "" {
		return domain.Evaluation{}, domain.ErrEmptyContent
	}
	source, err := normalizeSource(req.Source)
	if err != nil {
		return domain.Evaluation{}, err
	}
	version := req.Version
	if version == "" {
		version = domain.DraftVersion
	}

	input := &bedrockruntime.ApplyGuardrailInput{
		GuardrailIdentifier: aws.String(req.GuardrailID),
		GuardrailVersion:    aws.String(version),
		Source:              types.GuardrailContentSource(source),
		Content: []types.GuardrailContentBlock{
			&types.GuardrailContentBlockMemberText{
				Value: types.GuardrailTextBlock{Text: aws.String(req.Text)},
			},
		},
	}
	if req.FullOutput {
		input.OutputScope = types.GuardrailOutputScopeFull
	}

	t.logger.WithFields(logrus.Fields{
		"guardrail_id":   req.GuardrailID,
		"version":        version,
		"source":         source,
		"content_length": len(req.Text),
	}).Debug("calling ApplyGuardrail")

	return apply(ctx, t.logger, t.client, input)
}

func apply(
	ctx context.Context,
	logger *logrus.Logger,
	client bedrock.Runtime,
	input *bedrockruntime.ApplyGuardrailInput,
) (domain.Evaluation, error) {
	startTime := time.Now()
	out, err := client.ApplyGuardrail(ctx, input)
	latencyMs := time.Since(startTime).Milliseconds()
	if err != nil {
		logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to apply guardrail")
		return domain.Evaluation{}, fmt.Errorf("failed to apply guardrail: %w", err)
	}

	eval := bedrock.ToEvaluation(out)
	eval.GuardrailID = aws.ToString(input.GuardrailIdentifier)
	eval.Version = aws.ToString(input.GuardrailVersion)
	eval.Source = string(input.Source)
	eval.LatencyMs = latencyMs

	logger.WithFields(logrus.Fields{
		"action":     eval.Action,
		"violations": len(eval.Violations),
		"latency_ms": latencyMs,
	}).Info("guardrail evaluated")
	return eval, nil
}

func normalizeSource(source string) (string, error) {
	switch strings.ToUpper(source) {
	case "", domain.SourceInput:
		return domain.SourceInput, nil
	case domain.SourceOutput:
		return domain.SourceOutput, nil
	default:
		return "", fmt.Errorf("unsupported content source %q: must be INPUT or OUTPUT", source)
	}
}
