package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitsmith/unitsmith/pkg/unit"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unitsmith.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultHistoryFile, cfg.HistoryFile)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Aliases)
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()

	path := writeConfigFile(t, `
output: json
verbose: true
history_file: /tmp/hist
aliases:
  N: kg*m/s**2
  kWh: "3.6e6*J"
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/tmp/hist", cfg.HistoryFile)
	assert.Equal(t, "kg*m/s**2", cfg.Aliases["N"])
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()

	path := writeConfigFile(t, "output: json\n")
	t.Setenv("UNITSMITH_OUTPUT", "markdown")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.OutputFormat)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()

	t.Setenv("UNITSMITH_OUTPUT", "markdown")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	require.NoError(t, flags.Parse([]string{"--output", "text"}))

	chdir(t, t.TempDir())
	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.OutputFormat)
}

func TestLoadConfigUnchangedFlagsIgnored(t *testing.T) {
	ResetConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "text", "")
	require.NoError(t, flags.Parse(nil))

	chdir(t, t.TempDir())
	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	// Default flag value must not shadow the config default.
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
}

func TestBuildAliases(t *testing.T) {
	cfg := &Config{Aliases: map[string]string{
		"kWh":   "3.6e6*J",
		"knot":  "0.514444*m/s",
		"force": "N",
	}}

	aliases, err := BuildAliases(cfg)
	require.NoError(t, err)

	kwh, err := aliases.Resolve("kWh")
	require.NoError(t, err)
	assert.InEpsilon(t, 3.6e6, kwh.Scale, 1e-9)

	// Built-ins are still present.
	assert.True(t, aliases.Has("Pa"))

	// Config aliases can reference built-ins.
	force, err := aliases.Resolve("force")
	require.NoError(t, err)
	newton, err := aliases.Resolve("N")
	require.NoError(t, err)
	assert.True(t, force.Equal(newton))
}

func TestBuildAliasesBadFormula(t *testing.T) {
	cfg := &Config{Aliases: map[string]string{"bogus": "kg*"}}

	_, err := BuildAliases(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestBuildAliasesConflictWithBuiltin(t *testing.T) {
	// Redefining a built-in with a different meaning is rejected.
	cfg := &Config{Aliases: map[string]string{"N": "kg*m/s"}}

	_, err := BuildAliases(cfg)
	var conflict *unit.AliasConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestBuildAliasesIdenticalRedefinition(t *testing.T) {
	cfg := &Config{Aliases: map[string]string{"N": "kg*m/s**2"}}

	aliases, err := BuildAliases(cfg)
	require.NoError(t, err)
	assert.True(t, aliases.Has("N"))
}

// chdir changes the working directory for the test, restoring it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}
