package guardrail

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/bedrock/mocks"
	"github.com/aws/aws-sdk-go-v2/aws"
	bedrocksdk "github.com/aws/aws-sdk-go-v2/service/bedrock"
	bedrocktypes "github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCreator_Create_Success(t *testing.T) {
	client := mocks.NewControlPlane(t)
	creator := NewCreator(testLogger(), client)
	ctx := context.Background()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	def := domain.DefaultDefinition()
	client.On("CreateGuardrail", ctx, mock.MatchedBy(func(in *bedrocksdk.CreateGuardrailInput) bool {
		return aws.ToString(in.Name) == def.Name && in.TopicPolicyConfig != nil
	})).Return(&bedrocksdk.CreateGuardrailOutput{
		GuardrailId:  aws.String("gr-123"),
		GuardrailArn: aws.String("arn:aws:bedrock:us-east-1:123456789012:guardrail/gr-123"),
		Version:      aws.String(domain.DraftVersion),
		CreatedAt:    &created,
	}, nil)

	id, err := creator.Create(ctx, def)

	require.NoError(t, err)
	assert.Equal(t, "gr-123", id.ID)
	assert.Equal(t, domain.DraftVersion, id.Version)
	assert.Equal(t, created, id.CreatedAt)
}

func TestCreator_Create_InvalidDefinition(t *testing.T) {
	client := mocks.NewControlPlane(t)
	creator := NewCreator(testLogger(), client)

	def := domain.DefaultDefinition()
	def.BlockedInputMessaging = ""

	_, err := creator.Create(context.Background(), def)

	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
	client.AssertNotCalled(t, "CreateGuardrail", mock.Anything, mock.Anything)
}

func TestCreator_Create_ServiceError(t *testing.T) {
	client := mocks.NewControlPlane(t)
	creator := NewCreator(testLogger(), client)
	apiErr := &smithy.GenericAPIError{Code: "ConflictException", Message: "name already exists"}

	client.On("CreateGuardrail", mock.Anything, mock.Anything).Return(nil, apiErr)

	_, err := creator.Create(context.Background(), domain.DefaultDefinition())

	require.Error(t, err)
	var target smithy.APIError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "ConflictException", target.ErrorCode())
}

func TestLister_List_FollowsPages(t *testing.T) {
	client := mocks.NewControlPlane(t)
	lister := NewLister(testLogger(), client)
	ctx := context.Background()

	client.On("ListGuardrails", mock.Anything, mock.MatchedBy(func(in *bedrocksdk.ListGuardrailsInput) bool {
		return in.NextToken == nil
	})).Return(&bedrocksdk.ListGuardrailsOutput{
		Guardrails: []bedrocktypes.GuardrailSummary{
			{Id: aws.String("gr-1"), Name: aws.String("one"), Version: aws.String("DRAFT"), Status: bedrocktypes.GuardrailStatusReady},
		},
		NextToken: aws.String("page-2"),
	}, nil).Once()
	client.On("ListGuardrails", mock.Anything, mock.MatchedBy(func(in *bedrocksdk.ListGuardrailsInput) bool {
		return aws.ToString(in.NextToken) == "page-2"
	})).Return(&bedrocksdk.ListGuardrailsOutput{
		Guardrails: []bedrocktypes.GuardrailSummary{
			{Id: aws.String("gr-2"), Name: aws.String("two"), Version: aws.String("DRAFT"), Status: bedrocktypes.GuardrailStatusCreating},
		},
	}, nil).Once()

	summaries, err := lister.List(ctx, "")

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "gr-1", summaries[0].ID)
	assert.Equal(t, "READY", summaries[0].Status)
	assert.Equal(t, "two", summaries[1].Name)
}

func TestLister_List_VersionsOfOne(t *testing.T) {
	client := mocks.NewControlPlane(t)
	lister := NewLister(testLogger(), client)

	client.On("ListGuardrails", mock.Anything, mock.MatchedBy(func(in *bedrocksdk.ListGuardrailsInput) bool {
		return aws.ToString(in.GuardrailIdentifier) == "gr-1"
	})).Return(&bedrocksdk.ListGuardrailsOutput{
		Guardrails: []bedrocktypes.GuardrailSummary{
			{Id: aws.String("gr-1"), Version: aws.String("DRAFT")},
			{Id: aws.String("gr-1"), Version: aws.String("1")},
		},
	}, nil)

	summaries, err := lister.List(context.Background(), "gr-1")

	require.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "1", summaries[1].Version)
}

func TestLister_List_Error(t *testing.T) {
	client := mocks.NewControlPlane(t)
	lister := NewLister(testLogger(), client)

	client.On("ListGuardrails", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	summaries, err := lister.List(context.Background(), "")

	assert.Error(t, err)
	assert.Nil(t, summaries)
}

func TestGetter_Get(t *testing.T) {
	client := mocks.NewControlPlane(t)
	getter := NewGetter(testLogger(), client)

	client.On("GetGuardrail", mock.Anything, mock.MatchedBy(func(in *bedrocksdk.GetGuardrailInput) bool {
		return aws.ToString(in.GuardrailIdentifier) == "gr-1" && aws.ToString(in.GuardrailVersion) == "2"
	})).Return(&bedrocksdk.GetGuardrailOutput{
		GuardrailId:           aws.String("gr-1"),
		Name:                  aws.String("demo"),
		Version:               aws.String("2"),
		Status:                bedrocktypes.GuardrailStatusReady,
		BlockedInputMessaging: aws.String("no"),
		TopicPolicy:           &bedrocktypes.GuardrailTopicPolicy{},
		WordPolicy:            &bedrocktypes.GuardrailWordPolicy{},
	}, nil)

	summary, err := getter.Get(context.Background(), "gr-1", "2")

	require.NoError(t, err)
	assert.Equal(t, "demo", summary.Name)
	assert.Equal(t, "no", summary.BlockedInputMessaging)
	assert.Equal(t, []string{domain.PolicyTopic, domain.PolicyWord}, summary.Policies)
}

func TestGetter_Get_RequiresIdentifier(t *testing.T) {
	getter := NewGetter(testLogger(), mocks.NewControlPlane(t))

	_, err := getter.Get(context.Background(), "", "")

	assert.ErrorIs(t, err, domain.ErrIdentifierRequired)
}

func TestPublisher_Publish(t *testing.T) {
	client := mocks.NewControlPlane(t)
	publisher := NewPublisher(testLogger(), client)

	client.On("CreateGuardrailVersion", mock.Anything, mock.MatchedBy(func(in *bedrocksdk.CreateGuardrailVersionInput) bool {
		return aws.ToString(in.GuardrailIdentifier) == "gr-1" && aws.ToString(in.Description) == "first release"
	})).Return(&bedrocksdk.CreateGuardrailVersionOutput{
		GuardrailId: aws.String("gr-1"),
		Version:     aws.String("1"),
	}, nil)

	id, err := publisher.Publish(context.Background(), "gr-1", "first release")

	require.NoError(t, err)
	assert.Equal(t, domain.Identifier{ID: "gr-1", Version: "1"}, id)
}

func TestPublisher_Publish_RequiresIdentifier(t *testing.T) {
	publisher := NewPublisher(testLogger(), mocks.NewControlPlane(t))

	_, err := publisher.Publish(context.Background(), "", "")

	assert.ErrorIs(t, err, domain.ErrIdentifierRequired)
}

func TestDeleter_Delete(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		wantVersion *string
	}{
		{name: "whole guardrail", version: "", wantVersion: nil},
		{name: "numbered version", version: "3", wantVersion: aws.String("3")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewControlPlane(t)
			deleter := NewDeleter(testLogger(), client)

			client.On("DeleteGuardrail", mock.Anything, &bedrocksdk.DeleteGuardrailInput{
				GuardrailIdentifier: aws.String("gr-1"),
				GuardrailVersion:    tt.wantVersion,
			}).Return(&bedrocksdk.DeleteGuardrailOutput{}, nil)

			assert.NoError(t, deleter.Delete(context.Background(), "gr-1", tt.version))
		})
	}
}

func TestDeleter_Delete_RefusesDraft(t *testing.T) {
	for _, version := range []string{domain.DraftVersion, "draft"} {
		deleter := NewDeleter(testLogger(), mocks.NewControlPlane(t))

		err := deleter.Delete(context.Background(), "gr-1", version)

		assert.ErrorIs(t, err, domain.ErrDraftDelete)
	}
}

func TestDeleter_Delete_Error(t *testing.T) {
	client := mocks.NewControlPlane(t)
	deleter := NewDeleter(testLogger(), client)
	apiErr := &smithy.GenericAPIError{Code: "ResourceNotFoundException"}

	client.On("DeleteGuardrail", mock.Anything, mock.Anything).Return(nil, apiErr)

	err := deleter.Delete(context.Background(), "gr-missing", "")

	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "gr-missing")
}

func TestDeleter_Delete_RequiresIdentifier(t *testing.T) {
	deleter := NewDeleter(testLogger(), mocks.NewControlPlane(t))

	assert.ErrorIs(t, deleter.Delete(context.Background(), "", ""), domain.ErrIdentifierRequired)
}
