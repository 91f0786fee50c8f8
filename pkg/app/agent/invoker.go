package agent

import (
	"context"
	"fmt"
	"io"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/agent"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type InvokeRequest struct {
	AgentID string
	AliasID string
	Prompt  string
	// SessionID continues an existing conversation; a new one is started when empty.
	SessionID string
	OnTrace   domain.TraceHandler
}

type InvokeResult struct {
	SessionID  string `json:"session_id"`
	Bytes      int    `json:"bytes"`
	Traces     int    `json:"guardrail_traces"`
	Intervened bool   `json:"intervened"`
}

//go:generate mockery --name=Invoker --dir=. --output=./mocks --filename=invoker_mock.go --case=underscore --with-expecter
// Invoker streams one agent completion into a writer.
type Invoker interface {
	Invoke(ctx context.Context, req InvokeRequest, sink io.Writer) (InvokeResult, error)
}

type invoker struct {
	logger            *logrus.Logger
	client            bedrock.AgentRuntime
	guardrailInterval int32
}

// NewInvoker makes the service re-check the streamed answer every
// guardrailInterval characters; zero keeps the service default.
func NewInvoker(logger *logrus.Logger, client bedrock.AgentRuntime, guardrailInterval int32) Invoker {
	return &invoker{
		logger:            logger,
		client:            client,
		guardrailInterval: guardrailInterval,
	}
}

func (i *invoker) Invoke(ctx context.Context, req InvokeRequest, sink io.Writer) (InvokeResult, error) {
	if req.AgentID == "" || req.AliasID == "" {
		return InvokeResult{}, domain.ErrAgentIDRequired
	}
	result := InvokeResult{SessionID: req.SessionID}
	if result.SessionID == "" {
		result.SessionID = uuid.NewString()
	}

	input := &bedrockagentruntime.InvokeAgentInput{
		AgentId:      aws.String(req.AgentID),
		AgentAliasId: aws.String(req.AliasID),
		SessionId:    aws.String(result.SessionID),
		InputText:    aws.String(req.Prompt),
		EnableTrace:  aws.Bool(true),
	}
	if i.guardrailInterval > 0 {
		input.StreamingConfigurations = &types.StreamingConfigurations{
			ApplyGuardrailInterval: aws.Int32(i.guardrailInterval),
		}
	}

	i.logger.WithFields(logrus.Fields{
		"agent_id":   req.AgentID,
		"alias_id":   req.AliasID,
		"session_id": result.SessionID,
	}).Info("invoking agent")

	stream, err := i.client.InvokeAgent(ctx, input)
	if err != nil {
		i.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("failed to invoke agent")
		return result, fmt.Errorf("failed to invoke agent %s: %w", req.AgentID, err)
	}
	defer func() {
		if err := stream.Close(); err != nil {
			i.logger.WithError(err).Warn("failed to close completion stream")
		}
	}()

	for event := range stream.Events() {
		switch e := event.(type) {
		case *types.ResponseStreamMemberChunk:
			n, err := sink.Write(e.Value.Bytes)
			result.Bytes += n
			if err != nil {
				return result, fmt.Errorf("failed to write completion: %w", err)
			}
		case *types.ResponseStreamMemberTrace:
			g, ok := e.Value.Trace.(*types.TraceMemberGuardrailTrace)
			if !ok {
				continue
			}
			trace := bedrock.ToGuardrailTrace(g.Value)
			result.Traces++
			if trace.Intervened() {
				result.Intervened = true
			}
			if req.OnTrace != nil {
				req.OnTrace(trace)
			}
		}
	}

	if err := stream.Err(); err != nil {
		i.logger.WithError(err).WithFields(awsx.ErrorFields(err)).Error("completion stream failed")
		return result, fmt.Errorf("completion stream failed: %w", err)
	}

	i.logger.WithFields(logrus.Fields{
		"session_id": result.SessionID,
		"bytes":      result.Bytes,
		"traces":     result.Traces,
	}).Debug("agent invocation finished")
	return result, nil
}
