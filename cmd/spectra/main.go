package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/mcp"
	"github.com/knagasaki/spectra/internal/photo"
	"github.com/knagasaki/spectra/internal/rowlog"
	"github.com/knagasaki/spectra/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"record": true, "list": true, "show": true,
	"analyze": true, "sites": true, "geojson": true,
	"serve": true, "help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`

  ___ _ __   ___  ___| |_ _ __ __ _
 / __| '_ \ / _ \/ __| __| '__/ _' |
 \__ \ |_) |  __/ (__| |_| | | (_| |
 |___/ .__/ \___|\___|\__|_|  \__,_|
     |_|

  Field observation spectrum logger

  Usage: spectra <command> [options]
         spectra --help

  MCP server mode requires piped input.`)
}

// openLog opens the row log named by the configured backend.
func openLog(baseDir string, cfg *config.Config) (rowlog.Log, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return rowlog.OpenSQLite(filepath.Join(baseDir, "observations.db"))
	default:
		return rowlog.OpenCSV(filepath.Join(baseDir, "observations.csv"))
	}
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before opening the store
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".spectra")
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "error: could not create %s: %v\n", baseDir, err)
		os.Exit(1)
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "error: unknown disabled tools in config: %v\n", unknown)
		os.Exit(1)
	}

	log, err := openLog(baseDir, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to open %s backend: %v\n", cfg.Backend, err)
		os.Exit(1)
	}

	s, err := store.Open(log, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load observations: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	photos, err := photo.OpenDir(filepath.Join(baseDir, "photos"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to open photo directory: %v\n", err)
		os.Exit(1)
	}

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(s, cfg, photos)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'spectra --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(s, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
