package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/midbel/animcharts/dash"
	"github.com/midbel/animcharts/logging"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	logLevel  string
	logFormat string
}

func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	app.root = &cobra.Command{
		Use:   "draw",
		Short: "Draw animated charts as SVG",
		Long: `draw renders line, bar and pie charts described by a YAML or JSON file.

Each change of the data starts a new animation generation: geometry moves
from what is displayed to the new state, lines are revealed along their
path and bars and sectors grow from nothing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetLogger(logging.New(logging.Config{
				Level:  app.logLevel,
				Format: app.logFormat,
				Output: app.stderr,
			}))
		},
	}
	app.root.PersistentFlags().StringVar(&app.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	app.root.PersistentFlags().StringVar(&app.logFormat, "log-format", "console", "log format (console, json)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newRenderCmd(),
		app.newFramesCmd(),
		app.newWatchCmd(),
	)
	return app
}

func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "draw version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}

// load reads the config file and builds its dashboard.
func load(file string) (dash.Config, *dash.Dashboard, error) {
	if file == "" {
		return dash.Config{}, nil, fmt.Errorf("configuration file path is required (-c flag)")
	}
	cfg, err := dash.NewLoader().LoadFile(file)
	if err != nil {
		return cfg, nil, err
	}
	d, err := cfg.Build()
	return cfg, d, err
}

// output opens where the chart is written; "-" is the standard output.
func (a *App) output(file string) (io.WriteCloser, error) {
	if file == "" || file == "-" {
		return nopCloser{a.stdout}, nil
	}
	return os.Create(file)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
