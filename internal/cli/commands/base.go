package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unitsmith/unitsmith/internal/cli/output"
	"github.com/unitsmith/unitsmith/pkg/unit"
)

// NewBaseCommand creates the base command.
func NewBaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base",
		Short: "List fundamental units and decimal prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer := output.FromContext(cmd.Context())
			return renderBase(renderer.Out(), renderer)
		},
	}
	return cmd
}

type baseOutput struct {
	Fundamentals []fundamentalEntry `json:"fundamentals"`
	Prefixes     []prefixEntry      `json:"prefixes"`
}

type fundamentalEntry struct {
	Symbol    string `json:"symbol"`
	Dimension string `json:"dimension"`
}

type prefixEntry struct {
	Symbol string  `json:"symbol"`
	Factor float64 `json:"factor"`
}

func renderBase(w io.Writer, renderer *output.Renderer) error {
	var funds []fundamentalEntry
	for _, f := range unit.Fundamentals() {
		if f == unit.Dimensionless {
			continue
		}
		funds = append(funds, fundamentalEntry{Symbol: f.Symbol(), Dimension: f.Name()})
	}

	var prefixes []prefixEntry
	for _, p := range unit.Prefixes() {
		prefixes = append(prefixes, prefixEntry{Symbol: p.Symbol, Factor: p.Factor})
	}

	mode := renderer.Resolved()
	if mode == output.ModeJSON {
		return renderJSON(w, baseOutput{Fundamentals: funds, Prefixes: prefixes})
	}

	fundCols := []string{"Symbol", "Dimension"}
	fundRows := make([][]string, len(funds))
	for i, f := range funds {
		fundRows[i] = []string{f.Symbol, f.Dimension}
	}

	prefixCols := []string{"Prefix", "Factor"}
	prefixRows := make([][]string, len(prefixes))
	for i, p := range prefixes {
		prefixRows[i] = []string{p.Symbol, formatScale(p.Factor)}
	}

	styles := renderer.Styles()
	render := renderTable
	if mode == output.ModeMarkdown {
		render = renderMarkdown
	}

	_, _ = fmt.Fprintln(w, styles.Title.Render("Fundamental units"))
	if err := render(w, fundCols, fundRows); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.Title.Render("Decimal prefixes"))
	return render(w, prefixCols, prefixRows)
}
