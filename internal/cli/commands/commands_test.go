// Package commands tests for CLI command creation and rendering.
package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitsmith/unitsmith/internal/cli/output"
	"github.com/unitsmith/unitsmith/pkg/unit"
)

func TestNewEvalCommand(t *testing.T) {
	cmd := NewEvalCommand()

	assert.Equal(t, "eval <formula> [formula...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewReplCommand(t *testing.T) {
	cmd := NewReplCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewAliasesCommand(t *testing.T) {
	cmd := NewAliasesCommand()

	assert.Equal(t, "aliases", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewBaseCommand(t *testing.T) {
	cmd := NewBaseCommand()

	assert.Equal(t, "base", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func newMarkdownRenderer(out, errOut *bytes.Buffer) *output.Renderer {
	return output.NewRendererWithTTY(out, errOut, false, output.ModeMarkdown)
}

func TestRenderResultsMarkdown(t *testing.T) {
	u, err := unit.Parse("kg*m/s**2")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderResults(&buf, []evalResult{newEvalResult("kg*m/s**2", u)}, output.ModeMarkdown)
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "| Input | Canonical | Dimension | Scale | Alias |")
	assert.Contains(t, got, "kg*m/s^2")
}

func TestRenderResultsJSON(t *testing.T) {
	u, err := unit.Parse("km")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderResults(&buf, []evalResult{newEvalResult("km", u)}, output.ModeJSON)
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, `"canonical": "km"`)
	assert.Contains(t, got, `"scale": 1000`)
}

func TestRenderResultsTable(t *testing.T) {
	u, err := unit.Parse("m/s")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderResults(&buf, []evalResult{newEvalResult("m/s", u)}, output.ModeText)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "m/s")
	assert.Contains(t, buf.String(), "CANONICAL")
}

func TestRenderAliases(t *testing.T) {
	var out, errOut bytes.Buffer
	renderer := newMarkdownRenderer(&out, &errOut)

	err := renderAliases(&out, unit.NewDefaultAliases(), renderer)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "| N |")
	assert.Contains(t, got, "kg*m/s^2")
	assert.Contains(t, got, "| bar |")
}

func TestRenderBase(t *testing.T) {
	var out, errOut bytes.Buffer
	renderer := newMarkdownRenderer(&out, &errOut)

	err := renderBase(&out, renderer)
	require.NoError(t, err)

	got := out.String()
	for _, sym := range []string{"kg", "rad", "m", "s", "cd", "K", "A", "mol"} {
		assert.Contains(t, got, "| "+sym+" |", "missing fundamental %q", sym)
	}
	assert.Contains(t, got, "mass")
	assert.Contains(t, got, "| µ |")
	assert.NotContains(t, got, "| u |", "ASCII micro spelling should not be listed")
}

func TestReplSessionSwap(t *testing.T) {
	session := &replSession{aliases: unit.NewAliasManager()}
	assert.Equal(t, 0, session.manager().Len())

	session.swap(unit.NewDefaultAliases())
	assert.True(t, session.manager().Has("N"))
}

func TestPrintReplResult(t *testing.T) {
	u, err := unit.Parse("km")
	require.NoError(t, err)

	var buf bytes.Buffer
	printReplResult(&buf, output.NewStyles(false), u)

	got := buf.String()
	assert.True(t, strings.HasPrefix(got, "= km"), "got %q", got)
	assert.Contains(t, got, "dimension m")
	assert.Contains(t, got, "scale 1000")
}

func TestHandleDotCommandClearWritesToCommandOut(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewReplCommand()
	cmd.SetOut(&buf)

	session := &replSession{aliases: unit.NewDefaultAliases()}
	renderer := output.NewRendererWithTTY(&buf, &buf, false, output.ModeText)

	quit := handleDotCommand(cmd, session, renderer, ".clear")
	assert.False(t, quit)
	assert.Contains(t, buf.String(), "\033[2J", "clear sequence goes through the command writer")
}

func TestFormulaCompleter(t *testing.T) {
	session := &replSession{aliases: unit.NewDefaultAliases()}
	completer := newFormulaCompleter(session)
	assert.NotNil(t, completer)
}
