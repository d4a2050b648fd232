// Aventura is a text adventure engine driven by a world data file.
// Usage: aventura [--version] [--plain] [--script <file>] [--trace] [--start <place>] [--name <player>] <world-file>
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nathoo/aventura/cli"
	"github.com/nathoo/aventura/config"
	"github.com/nathoo/aventura/engine"
	"github.com/nathoo/aventura/engine/world"
	"github.com/nathoo/aventura/loader"
	"github.com/nathoo/aventura/logger"
	"github.com/nathoo/aventura/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: aventura [--version] [--plain] [--script <file>] [--trace] [--start <place>] [--name <player>] <world-file>"

type options struct {
	plain      bool
	trace      bool
	worldFile  string
	scriptFile string
	start      string
	name       string
}

func main() {
	cfg := config.Load()
	opts := options{worldFile: cfg.World, start: cfg.Start}

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("aventura %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			opts.plain = true
		case "--trace":
			opts.trace = true
		case "--script", "--start", "--name":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a value\n", args[i])
				os.Exit(1)
			}
			i++
			switch args[i-1] {
			case "--script":
				opts.scriptFile = args[i]
			case "--start":
				opts.start = args[i]
			default:
				opts.name = args[i]
			}
		default:
			opts.worldFile = args[i]
		}
	}

	if opts.worldFile == "" {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	if err := run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, opts options) error {
	log, closer, err := logger.Setup(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	data, warnings, err := loader.Load(opts.worldFile)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if err != nil {
		logger.WithError(log, err).Error("loading world failed", "file", opts.worldFile)
		return fmt.Errorf("loading world: %w", err)
	}

	w, _, err := world.Build(data, log)
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}

	engineOpts := []engine.Option{engine.WithLogger(log)}
	if opts.start != "" {
		engineOpts = append(engineOpts, engine.WithStart(opts.start))
	}

	// Script mode: open file, force plain, echo commands.
	if opts.scriptFile != "" {
		f, err := os.Open(opts.scriptFile)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := cli.New(w, engineOpts...)
		c.In = f
		c.PlayerName = opts.name
		c.EchoInput = true
		c.ShowActions = false
		c.Trace = opts.trace
		return c.Run()
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if opts.plain || !isTerminal() {
		c := cli.New(w, engineOpts...)
		c.PlayerName = opts.name
		c.Trace = opts.trace
		return c.Run()
	}

	// Log lines on stderr would tear the alternate screen.
	if cfg.LogFile == "" {
		engineOpts[0] = engine.WithLogger(slog.New(slog.DiscardHandler))
	}
	return tui.Run(w, opts.name, engineOpts...)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
