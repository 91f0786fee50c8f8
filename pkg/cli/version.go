package cli

import (
	"github.com/NeuralTrust/bedrock-guardrails/pkg/version"
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.printer.Version(version.GetInfo())
		},
	}
}
