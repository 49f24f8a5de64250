package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/unitsmith/unitsmith/internal/cli/output"
	"github.com/unitsmith/unitsmith/pkg/unit"
)

// evalResult is the rendered view of one parsed formula.
type evalResult struct {
	Input     string  `json:"input"`
	Canonical string  `json:"canonical"`
	Dimension string  `json:"dimension"`
	Scale     float64 `json:"scale"`
	Alias     string  `json:"alias,omitempty"`
}

func newEvalResult(input string, u *unit.Unit) evalResult {
	return evalResult{
		Input:     input,
		Canonical: u.String(),
		Dimension: u.Composition().String(),
		Scale:     u.Scale(),
		Alias:     u.Alias(),
	}
}

var evalColumns = []string{"Input", "Canonical", "Dimension", "Scale", "Alias"}

func (r evalResult) row() []string {
	return []string{r.Input, r.Canonical, r.Dimension, formatScale(r.Scale), r.Alias}
}

func formatScale(scale float64) string {
	return strconv.FormatFloat(scale, 'g', -1, 64)
}

func renderResults(w io.Writer, results []evalResult, mode output.OutputMode) error {
	switch mode {
	case output.ModeJSON:
		return renderJSON(w, results)
	case output.ModeMarkdown:
		return renderMarkdown(w, evalColumns, rows(results))
	default:
		return renderTable(w, evalColumns, rows(results))
	}
}

func rows(results []evalResult) [][]string {
	out := make([][]string, len(results))
	for i, r := range results {
		out[i] = r.row()
	}
	return out
}

func renderTable(w io.Writer, cols []string, rows [][]string) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderMarkdown(w io.Writer, cols []string, rows [][]string) error {
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | "))
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(r, " | "))
	}
	return nil
}
