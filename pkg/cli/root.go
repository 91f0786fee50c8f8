// Package cli implements the guardrails commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/config"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/dependency_container"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/infra/awsx"
	infraLogger "github.com/NeuralTrust/bedrock-guardrails/pkg/infra/logger"
	"github.com/NeuralTrust/bedrock-guardrails/pkg/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Factory builds the operations a command needs. It only runs for commands
// that talk to AWS.
type Factory func(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*dependency_container.Container, error)

// DefaultFactory resolves AWS credentials and builds the SDK clients.
func DefaultFactory(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*dependency_container.Container, error) {
	awsCfg, err := awsx.LoadConfig(ctx, cfg.AWS, logger)
	if err != nil {
		return nil, err
	}
	if err := awsx.ValidateCredentials(ctx, awsCfg); err != nil {
		return nil, err
	}
	return dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		AWS:    awsCfg,
	}), nil
}

type app struct {
	configPath string
	output     string
	region     string

	factory   Factory
	cfg       *config.Config
	logger    *logrus.Logger
	logCloser io.Closer
	printer   *report.Printer
	container *dependency_container.Container
}

// Execute runs the command line and flushes the log file before returning.
func Execute(ctx context.Context, factory Factory, args []string) error {
	a := &app{factory: factory}
	root := a.command()
	root.SetArgs(args)
	defer a.close()
	return root.ExecuteContext(ctx)
}

// NewRootCommand returns the guardrails command tree.
func NewRootCommand(factory Factory) *cobra.Command {
	a := &app{factory: factory}
	return a.command()
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "guardrails",
		Short:         "Create, test and attach Amazon Bedrock guardrails",
		Long:          "guardrails manages Amazon Bedrock guardrails and demonstrates them on a Bedrock agent.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "directory containing config.yaml")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", report.FormatText, "output format: text or json")
	root.PersistentFlags().StringVar(&a.region, "region", "", "AWS region, overrides AWS_REGION")

	root.AddCommand(
		newCreateCmd(a),
		newListCmd(a),
		newGetCmd(a),
		newPublishCmd(a),
		newApplyCmd(a),
		newGroundingCmd(a),
		newDeleteCmd(a),
		newDemoCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	printer, err := report.NewPrinter(cmd.OutOrStdout(), a.output)
	if err != nil {
		return err
	}
	a.printer = printer

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.region != "" {
		cfg.AWS.Region = a.region
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger, a.logCloser = infraLogger.NewLogger(cfg.Log)
	return nil
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}

// deps builds the container on first use.
func (a *app) deps(ctx context.Context) (*dependency_container.Container, error) {
	if a.container != nil {
		return a.container, nil
	}
	c, err := a.factory(ctx, a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS clients: %w", err)
	}
	a.container = c
	return c, nil
}
