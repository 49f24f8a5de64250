package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unitsmith/unitsmith/internal/cli/config"
	"github.com/unitsmith/unitsmith/internal/cli/output"
	"github.com/unitsmith/unitsmith/pkg/unit"
)

// NewAliasesCommand creates the aliases command.
func NewAliasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "List registered unit aliases",
		Long: `List all registered unit aliases with their canonical expansion.

The registry contains the built-in derived units (N, J, Pa, ...) plus
any aliases defined in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			aliases := config.AliasesFromContext(ctx)
			renderer := output.FromContext(ctx)
			return renderAliases(renderer.Out(), aliases, renderer)
		},
	}
	return cmd
}

type aliasEntry struct {
	Name      string  `json:"name"`
	Canonical string  `json:"canonical"`
	Dimension string  `json:"dimension"`
	Scale     float64 `json:"scale"`
}

func renderAliases(w io.Writer, aliases *unit.AliasManager, renderer *output.Renderer) error {
	entries := make([]aliasEntry, 0, aliases.Len())
	for _, name := range aliases.Names() {
		p, err := aliases.Resolve(name)
		if err != nil {
			continue
		}
		entries = append(entries, aliasEntry{
			Name:      name,
			Canonical: unit.FromPrefixed(p).Formula(),
			Dimension: p.Comp.String(),
			Scale:     p.Scale,
		})
	}

	mode := renderer.Resolved()
	if mode == output.ModeJSON {
		return renderJSON(w, entries)
	}

	cols := []string{"Alias", "Canonical", "Dimension", "Scale"}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, e.Canonical, e.Dimension, formatScale(e.Scale)}
	}

	if mode == output.ModeMarkdown {
		return renderMarkdown(w, cols, rows)
	}

	title := renderer.Styles().Title.Render(fmt.Sprintf("Aliases (%d)", len(entries)))
	_, _ = fmt.Fprintln(w, title)
	return renderTable(w, cols, rows)
}
