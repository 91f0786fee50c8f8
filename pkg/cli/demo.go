package cli

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/app/demo"
	"github.com/spf13/cobra"
)

const cleanupTimeout = 5 * time.Minute

func newDemoCmd(a *app) *cobra.Command {
	var (
		prompt         string
		cleanup        bool
		definitionPath string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Create a guardrail, attach it to a new agent and send it a prompt",
		Long: "demo creates the demo guardrail, an IAM execution role, a Bedrock agent using the guardrail " +
			"and an alias, then streams the agent's answer together with the guardrail traces.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := loadDefinition(definitionPath)
			if err != nil {
				return err
			}
			c, err := a.deps(cmd.Context())
			if err != nil {
				return err
			}
			if prompt == "" {
				prompt = a.cfg.Agent.DefaultPrompt
			}

			// In json mode the completion and the traces go out with the result
			// as one document.
			var completion bytes.Buffer
			var sink io.Writer = cmd.OutOrStdout()
			if a.printer.JSON() {
				sink = &completion
			}

			runner := demo.NewRunner(a.logger, c.DemoSteps(), demo.Options{
				Definition: def,
				AliasName:  a.cfg.Agent.AliasName,
				Output:     sink,
				OnTrace:    a.printer.Trace,
			})
			result, runErr := runner.Run(cmd.Context(), prompt)

			cleaned := false
			if cleanup {
				// Resources must go even when the run was interrupted.
				ctx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), cleanupTimeout)
				defer cancel()
				if err := c.Teardown.Run(ctx, result.Resources); err != nil {
					a.logger.WithError(err).Error("failed to remove demo resources")
					if runErr == nil {
						runErr = err
					}
				} else {
					cleaned = true
				}
			}

			if err := a.printer.Demo(result, completion.String(), cleaned); err != nil {
				return err
			}
			return runErr
		},
	}
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "prompt sent to the agent")
	cmd.Flags().BoolVar(&cleanup, "cleanup", false, "delete every created resource when done")
	cmd.Flags().StringVarP(&definitionPath, "definition", "f", "", "guardrail definition file, the demo guardrail when empty")
	return cmd
}
