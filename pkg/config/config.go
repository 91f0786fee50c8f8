package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultRegion          = "us-east-1"
	DefaultFoundationModel = "anthropic.claude-3-haiku-20240307-v1:0"
	DefaultSessionName     = "bedrock-guardrails"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	AWS             AWSConfig   `mapstructure:"aws"`
	AccountID       string      `mapstructure:"account_id"`
	FoundationModel string      `mapstructure:"foundation_model"`
	Agent           AgentConfig `mapstructure:"agent"`
	Log             LogConfig   `mapstructure:"log"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	SessionToken    string `mapstructure:"session_token"`
	Profile         string `mapstructure:"profile"`
	RoleARN         string `mapstructure:"role_arn"`
	SessionName     string `mapstructure:"session_name"`
}

// UseStaticCredentials reports whether explicit keys override the default chain.
func (c AWSConfig) UseStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

type AgentConfig struct {
	RoleName               string        `mapstructure:"role_name"`
	Instruction            string        `mapstructure:"instruction"`
	IdleSessionTTLSeconds  int32         `mapstructure:"idle_session_ttl_seconds"`
	AliasName              string        `mapstructure:"alias_name"`
	PrepareInterval        time.Duration `mapstructure:"prepare_interval"`
	AliasInterval          time.Duration `mapstructure:"alias_interval"`
	PollTimeout            time.Duration `mapstructure:"poll_timeout"`
	IAMPropagationDelay    time.Duration `mapstructure:"iam_propagation_delay"`
	ApplyGuardrailInterval int32         `mapstructure:"apply_guardrail_interval"`
	DefaultPrompt          string        `mapstructure:"default_prompt"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load reads config.yaml from configPath (or ./config, .) when present and
// overlays environment variables. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaultValues(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = DefaultRegion
	}
	if cfg.AWS.RoleARN != "" && cfg.AWS.SessionName == "" {
		cfg.AWS.SessionName = DefaultSessionName
	}
	return &cfg, nil
}

// bindEnv maps the standard AWS variable names, which do not follow the
// key replacer convention, onto config keys. The first variable set wins.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("aws.region", "AWS_REGION", "AWS_DEFAULT_REGION")
	_ = v.BindEnv("aws.access_key_id", "AWS_ACCESS_KEY_ID", "AWS_ACCESS_KEY")
	_ = v.BindEnv("aws.secret_access_key", "AWS_SECRET_ACCESS_KEY", "AWS_SECRET_KEY")
	_ = v.BindEnv("aws.session_token", "AWS_SESSION_TOKEN")
	_ = v.BindEnv("aws.profile", "AWS_PROFILE")
	_ = v.BindEnv("aws.role_arn", "AWS_ROLE_ARN")
	_ = v.BindEnv("aws.session_name", "AWS_ROLE_SESSION_NAME")
	_ = v.BindEnv("account_id", "ACCOUNT_ID")
	_ = v.BindEnv("foundation_model", "FOUNDATION_MODEL")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")
	_ = v.BindEnv("log.file", "LOG_FILE")
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("foundation_model", DefaultFoundationModel)
	v.SetDefault("agent.role_name", "BedrockAgentExecutionRole")
	v.SetDefault("agent.instruction", "You are a friendly music bot.  Obey the guardrail.")
	v.SetDefault("agent.idle_session_ttl_seconds", 300)
	v.SetDefault("agent.alias_name", "demo")
	v.SetDefault("agent.prepare_interval", 15*time.Second)
	v.SetDefault("agent.alias_interval", 5*time.Second)
	v.SetDefault("agent.poll_timeout", 10*time.Minute)
	v.SetDefault("agent.iam_propagation_delay", 10*time.Second)
	v.SetDefault("agent.apply_guardrail_interval", 20)
	v.SetDefault("agent.default_prompt", "what type of music do you like?")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func (c *Config) Validate() error {
	if c.AWS.Region == "" {
		return fmt.Errorf("%w: aws region must be specified", ErrInvalidConfig)
	}
	if (c.AWS.AccessKeyID == "") != (c.AWS.SecretAccessKey == "") {
		return fmt.Errorf("%w: aws access key and secret key must be set together", ErrInvalidConfig)
	}
	if c.FoundationModel == "" {
		return fmt.Errorf("%w: foundation model must be specified", ErrInvalidConfig)
	}
	if c.Agent.PrepareInterval <= 0 || c.Agent.AliasInterval <= 0 {
		return fmt.Errorf("%w: agent poll intervals must be positive", ErrInvalidConfig)
	}
	if c.Agent.PollTimeout <= 0 {
		return fmt.Errorf("%w: agent poll timeout must be positive", ErrInvalidConfig)
	}
	if c.Agent.IAMPropagationDelay < 0 {
		return fmt.Errorf("%w: iam propagation delay cannot be negative", ErrInvalidConfig)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
