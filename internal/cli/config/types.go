// Package config provides configuration management for the unitsmith CLI.
//
// Configuration layers, lowest to highest precedence: built-in defaults,
// the unitsmith.yaml file, UNITSMITH_ environment variables, and CLI flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Aliases maps alias names to unit formulas, registered on top of the
	// built-in derived units at startup.
	Aliases      map[string]string `koanf:"aliases"`
	OutputFormat string            `koanf:"output"`
	Verbose      bool              `koanf:"verbose"`
	HistoryFile  string            `koanf:"history_file"`
}

// Default configuration values.
const (
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultHistoryFile = ".unitsmith_history"
)
