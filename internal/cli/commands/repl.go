package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/unitsmith/unitsmith/internal/cli/config"
	"github.com/unitsmith/unitsmith/internal/cli/output"
	"github.com/unitsmith/unitsmith/pkg/unit"
)

// replSession holds the alias registry behind a lock so the config watcher
// can swap it while the read loop is running.
type replSession struct {
	mu      sync.RWMutex
	aliases *unit.AliasManager
}

func (s *replSession) manager() *unit.AliasManager {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aliases
}

func (s *replSession) swap(aliases *unit.AliasManager) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aliases = aliases
}

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive unit formula shell",
		Long: `Start an interactive shell for evaluating unit formulas.

Formulas are parsed and printed in canonical form. Alias definitions
("N = kg*m/s**2") persist for the session. If a config file is in use,
its aliases are reloaded live when the file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd)
		},
	}
	return cmd
}

func runRepl(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)
	renderer := output.FromContext(ctx)

	session := &replSession{aliases: config.AliasesFromContext(ctx)}

	// Reload aliases when the config file changes.
	if cfgFile := config.GetConfigFileUsed(); cfgFile != "" {
		stop, err := watchConfig(ctx, logger, cfgFile, session)
		if err != nil {
			logger.Warn("config watch disabled", "error", err)
		} else {
			defer stop()
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "unitsmith> ",
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newFormulaCompleter(session),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "unitsmith REPL")
	if cfgFile := config.GetConfigFileUsed(); cfgFile != "" {
		_, _ = fmt.Fprintf(out, "Aliases from %s (reloaded on change)\n", cfgFile)
	}
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, session, renderer, line); quit {
				break
			}
			continue
		}

		u, err := unit.ParseWith(line, session.manager())
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		printReplResult(out, renderer.Styles(), u)
	}

	return nil
}

// printReplResult prints a compact one-line summary of a parsed formula.
func printReplResult(w io.Writer, styles *output.Styles, u *unit.Unit) {
	detail := fmt.Sprintf("dimension %s, scale %s", u.Composition(), formatScale(u.Scale()))
	_, _ = fmt.Fprintf(w, "= %s  %s\n",
		styles.Success.Render(u.String()),
		styles.Muted.Render("["+detail+"]"))
}

func handleDotCommand(cmd *cobra.Command, session *replSession, renderer *output.Renderer, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	out := cmd.OutOrStdout()

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printReplHelp(out)

	case ".aliases":
		if err := renderAliases(out, session.manager(), renderer); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}

	case ".base":
		if err := renderBase(out, renderer); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}

	case ".clear":
		_, _ = fmt.Fprint(out, "\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printReplHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .aliases        List registered unit aliases
  .base           List fundamental units and prefixes
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Tips:
  - Enter a formula like kg*m/s**2 to reduce it
  - Define an alias with N = kg*m/s**2
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

// newFormulaCompleter completes base symbols, alias names and dot-commands.
func newFormulaCompleter(session *replSession) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, f := range unit.Fundamentals() {
		if f == unit.Dimensionless {
			continue
		}
		items = append(items, readline.PcItem(f.Symbol()))
	}
	items = append(items, readline.PcItemDynamic(func(string) []string {
		return session.manager().Names()
	}))
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".aliases"),
		readline.PcItem(".base"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
	return readline.NewPrefixCompleter(items...)
}

// watchConfig watches the config file and swaps the session aliases when it
// changes. Watches the directory because editors often replace the file.
func watchConfig(ctx context.Context, logger *slog.Logger, cfgFile string, session *replSession) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(cfgFile)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filepath.Base(cfgFile) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				reloadAliases(logger, cfgFile, session)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watch error", "error", err)
			}
		}
	}()

	stop := func() {
		_ = watcher.Close()
		<-done
	}
	return stop, nil
}

func reloadAliases(logger *slog.Logger, cfgFile string, session *replSession) {
	cfg, err := config.LoadConfig(cfgFile, nil)
	if err != nil {
		logger.Warn("config reload failed", "error", err)
		return
	}
	aliases, err := config.BuildAliases(cfg)
	if err != nil {
		logger.Warn("alias reload failed", "error", err)
		return
	}
	session.swap(aliases)
	logger.Info("aliases reloaded", "path", cfgFile, "count", aliases.Len())
}
