package commands

import (
	"github.com/spf13/cobra"

	"github.com/unitsmith/unitsmith/internal/cli/config"
	"github.com/unitsmith/unitsmith/internal/cli/output"
	"github.com/unitsmith/unitsmith/pkg/unit"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <formula> [formula...]",
		Short: "Parse unit formulas and print their canonical form",
		Long: `Parse one or more unit formulas and print the canonical form, the
dimension in fundamental units, and the decimal scale factor.

Alias definitions like "N = kg*m/s**2" are registered for the remaining
formulas in the same invocation.`,
		Example: `  # Reduce a force formula
  unitsmith eval "kg*m/s**2"

  # Several formulas at once, as JSON
  unitsmith eval -o json "km" "µs" "J/s"

  # Define an alias and use it
  unitsmith eval "kWh = 3.6e6*J" "kWh/h"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			aliases := config.AliasesFromContext(ctx)
			renderer := output.FromContext(ctx)
			logger := config.GetLogger(ctx)

			results := make([]evalResult, 0, len(args))
			for _, formula := range args {
				u, err := unit.ParseWith(formula, aliases)
				if err != nil {
					return err
				}
				logger.Debug("parsed formula",
					"input", formula,
					"canonical", u.String(),
					"scale", u.Scale())
				results = append(results, newEvalResult(formula, u))
			}

			return renderResults(renderer.Out(), results, renderer.Resolved())
		},
	}
	return cmd
}
