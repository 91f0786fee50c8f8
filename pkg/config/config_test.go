package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAWSEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"AWS_REGION", "AWS_DEFAULT_REGION", "AWS_ACCESS_KEY_ID", "AWS_ACCESS_KEY",
		"AWS_SECRET_ACCESS_KEY", "AWS_SECRET_KEY", "AWS_SESSION_TOKEN", "AWS_PROFILE",
		"AWS_ROLE_ARN", "AWS_ROLE_SESSION_NAME", "ACCOUNT_ID", "FOUNDATION_MODEL",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearAWSEnv(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultRegion, cfg.AWS.Region)
	assert.Equal(t, DefaultFoundationModel, cfg.FoundationModel)
	assert.Equal(t, "BedrockAgentExecutionRole", cfg.Agent.RoleName)
	assert.Equal(t, int32(300), cfg.Agent.IdleSessionTTLSeconds)
	assert.Equal(t, 15*time.Second, cfg.Agent.PrepareInterval)
	assert.Equal(t, 5*time.Second, cfg.Agent.AliasInterval)
	assert.Equal(t, int32(20), cfg.Agent.ApplyGuardrailInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.AWS.UseStaticCredentials())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearAWSEnv(t)
	t.Setenv("AWS_DEFAULT_REGION", "eu-west-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA_TEST")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET_TEST")
	t.Setenv("ACCOUNT_ID", "123456789012")
	t.Setenv("FOUNDATION_MODEL", "amazon.titan-text-express-v1")
	t.Setenv("AWS_ROLE_ARN", "arn:aws:iam::123456789012:role/demo")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "AKIA_TEST", cfg.AWS.AccessKeyID)
	assert.Equal(t, "SECRET_TEST", cfg.AWS.SecretAccessKey)
	assert.Equal(t, "123456789012", cfg.AccountID)
	assert.Equal(t, "amazon.titan-text-express-v1", cfg.FoundationModel)
	assert.Equal(t, DefaultSessionName, cfg.AWS.SessionName)
	assert.True(t, cfg.AWS.UseStaticCredentials())
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	clearAWSEnv(t)
	dir := t.TempDir()
	content := `
aws:
  region: ap-southeast-2
agent:
  alias_name: staging
  prepare_interval: 2s
log:
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "ap-southeast-2", cfg.AWS.Region)
	assert.Equal(t, "staging", cfg.Agent.AliasName)
	assert.Equal(t, 2*time.Second, cfg.Agent.PrepareInterval)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearAWSEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("aws: [unterminated"), 0600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			AWS:             AWSConfig{Region: "us-east-1"},
			FoundationModel: DefaultFoundationModel,
			Agent: AgentConfig{
				PrepareInterval: time.Second,
				AliasInterval:   time.Second,
				PollTimeout:     time.Minute,
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing region", func(c *Config) { c.AWS.Region = "" }},
		{"access key without secret", func(c *Config) { c.AWS.AccessKeyID = "AKIA" }},
		{"secret without access key", func(c *Config) { c.AWS.SecretAccessKey = "secret" }},
		{"missing model", func(c *Config) { c.FoundationModel = "" }},
		{"zero interval", func(c *Config) { c.Agent.AliasInterval = 0 }},
		{"zero timeout", func(c *Config) { c.Agent.PollTimeout = 0 }},
		{"negative propagation", func(c *Config) { c.Agent.IAMPropagationDelay = -time.Second }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}
