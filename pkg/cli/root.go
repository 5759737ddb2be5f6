package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/OpenByteDev/build-target/pkg/buildtarget"
	"github.com/OpenByteDev/build-target/pkg/logging"
)

const (
	name = "buildtarget"

	flagCfgPrefix = "cfg-prefix"
	flagDebug     = "debug"
	flagLogJSON   = "log-json"
)

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command with the process arguments and exits the
// process on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Inspect the build target reported by the build orchestrator",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagCfgPrefix,
				Value:   buildtarget.DefaultCfgPrefix,
				Usage:   "Prefix of the target configuration variables",
				Sources: cli.EnvVars("BUILDTARGET_CFG_PREFIX"),
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("BUILDTARGET_DEBUG"),
			},
			&cli.BoolFlag{
				Name:  flagLogJSON,
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd)
			return ctx, nil
		},
		Commands: []*cli.Command{
			snapshotCmd(),
			getCmd(),
			knownCmd(),
			serveCmd(),
		},
	}
}

func setupLogging(cmd *cli.Command) {
	level := logging.ParseLevel(os.Getenv(logging.EnvLogLevel))
	if cmd.Bool(flagDebug) {
		level = slog.LevelDebug
	}
	if cmd.Bool(flagLogJSON) {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, level.String())
		return
	}
	logging.SetDefaultCLILogger(level)
}

// commandLister prints the names of the visible subcommands, one per line.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil || cmd.Root() == nil {
		return
	}
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(w, c.Name)
	}
}
