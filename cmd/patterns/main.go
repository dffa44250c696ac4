// Command patterns lists, runs and explains the design pattern scenarios.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/sghaida/patterns/internal/config"
	"github.com/sghaida/patterns/internal/logfields"
)

// Global is shared state handed to every command.
type Global struct {
	Logger *slog.Logger
	Config config.Config
	Stdout io.Writer
	Stderr io.Writer
}

// CLI is the root command tree.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	EnvFile string `name:"env-file" help:"Load PATTERNS_* defaults from this file if it exists" default:".env"`

	List    ListCmd    `cmd:"" help:"List the available scenarios"`
	Run     RunCmd     `cmd:"" help:"Run scenarios and print their transcripts"`
	Explain ExplainCmd `cmd:"" help:"Describe a pattern"`
}

// AfterApply runs after flag parsing; loads configuration and sets up logging once.
func (c *CLI) AfterApply(g *Global) error {
	cfg, err := config.LoadFromEnv(c.EnvFile)
	if err != nil {
		return err
	}
	g.Config = cfg

	level := cfg.LogLevel
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(g.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute parses args, runs the selected command and returns the exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	g := &Global{Stdout: stdout, Stderr: stderr}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("patterns"),
		kong.Description("A catalogue of classic design patterns, each runnable as a scripted scenario."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Bind(g),
	)
	if err != nil {
		fmt.Fprintf(stderr, "patterns: %v\n", err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "patterns: error: %v\n", err)
		return 2
	}

	if err := ctx.Run(g, &cli); err != nil {
		g.Logger.Error("Command failed", slog.String("command", ctx.Command()), logfields.Error(err))
		return 1
	}
	return 0
}
