package cli

import (
	"strings"

	app "github.com/NeuralTrust/bedrock-guardrails/pkg/app/guardrail"
	domain "github.com/NeuralTrust/bedrock-guardrails/pkg/domain/guardrail"
	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	var definitionPath string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a guardrail from a definition file, or the built-in demo guardrail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := loadDefinition(definitionPath)
			if err != nil {
				return err
			}
			c, err := a.deps(cmd.Context())
			if err != nil {
				return err
			}
			id, err := c.GuardrailCreator.Create(cmd.Context(), def)
			if err != nil {
				return err
			}
			return a.printer.Identifier("guardrail created", id)
		},
	}
	cmd.Flags().StringVarP(&definitionPath, "definition", "f", "", "guardrail definition file (yaml or json)")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var guardrailID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List guardrails, or every version of one guardrail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.deps(cmd.Context())
			if err != nil {
				return err
			}
			summaries, err := c.GuardrailLister.List(cmd.Context(), guardrailID)
			if err != nil {
				return err
			}
			return a.printer.Summaries(summaries)
		},
	}
	cmd.Flags().StringVar(&guardrailID, "id", "", "list the versions of this guardrail")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "get <guardrail-id>",
		Short: "Show one guardrail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.deps(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := c.GuardrailGetter.Get(cmd.Context(), args[0], version)
			if err != nil {
				return err
			}
			return a.printer.Summary(summary)
		},
	}
	cmd.Flags().StringVar(&version, "version", "", "guardrail version, DRAFT when empty")
	return cmd
}

func newPublishCmd(a *app) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "publish <guardrail-id>",
		Short: "Snapshot the DRAFT into a new numbered version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.deps(cmd.Context())
			if err != nil {
				return err
			}
			id, err := c.GuardrailPublisher.Publish(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}
			return a.printer.Identifier("guardrail version created", id)
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "version description")
	return cmd
}

func newApplyCmd(a *app) *cobra.Command {
	req := app.ApplyRequest{}
	cmd := &cobra.Command{
		Use:   "apply <guardrail-id> <text>...",
		Short: "Evaluate text against a guardrail without invoking a model",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.deps(cmd.Context())
			if err != nil {
				return err
			}
			req.GuardrailID = args[0]
			req.Text = strings.Join(args[1:], " ")
			eval, err := c.GuardrailTester.Apply(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printer.Evaluation(eval)
		},
	}
	cmd.Flags().StringVar(&req.Version, "version", "", "guardrail version, DRAFT when empty")
	cmd.Flags().StringVar(&req.Source, "source", domain.SourceInput, "content source: INPUT or OUTPUT")
	cmd.Flags().BoolVar(&req.FullOutput, "full", false, "report every assessment, not only interventions")
	return cmd
}

func newGroundingCmd(a *app) *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "grounding <guardrail-id>",
		Short: "Check a grounded and a hallucinated answer against the contextual grounding filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.deps(cmd.Context())
			if err != nil {
				return err
			}
			var results []app.GroundingResult
			for _, gc := range app.DefaultGroundingCases() {
				result, err := c.GroundingChecker.Check(cmd.Context(), args[0], version, gc)
				if err != nil {
					return err
				}
				results = append(results, result)
			}
			return a.printer.Grounding(results)
		},
	}
	cmd.Flags().StringVar(&version, "version", "", "guardrail version, DRAFT when empty")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "delete <guardrail-id>",
		Short: "Delete a guardrail, or one of its numbered versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.deps(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.GuardrailDeleter.Delete(cmd.Context(), args[0], version); err != nil {
				return err
			}
			return a.printer.Deleted(args[0], version)
		},
	}
	cmd.Flags().StringVar(&version, "version", "", "numbered version to delete; the whole guardrail when empty (DRAFT is refused)")
	return cmd
}

func loadDefinition(path string) (domain.Definition, error) {
	if path == "" {
		return domain.DefaultDefinition(), nil
	}
	return domain.LoadDefinition(path)
}
