package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/OpenByteDev/build-target/pkg/api"
	"github.com/OpenByteDev/build-target/pkg/server"
	"github.com/OpenByteDev/build-target/pkg/snapshotter"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the build target over HTTP",
		Description: `Starts an HTTP server exposing the build target as JSON.

  GET /v1/target     target fields
  GET /v1/snapshot   full snapshot with header and hints
  GET /health        liveness
  GET /ready         readiness
  GET /metrics       Prometheus metrics

With --snapshot the server answers from a recorded snapshot file instead of
its own environment.

# Examples

  buildtarget snapshot -o target.yaml
  buildtarget serve --snapshot target.yaml --port 9000`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to listen on (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   server.DefaultConfig().Port,
				Usage:   "Port to listen on",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "snapshot",
				Aliases: []string{"s"},
				Usage:   "Serve a recorded snapshot file (yaml or json) instead of the environment",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.DefaultConfig()
			cfg.Address = cmd.String("address")
			cfg.Port = int(cmd.Int("port"))

			h, err := handlerFromCmd(cmd)
			if err != nil {
				return err
			}
			return api.Serve(ctx, version, cfg, h)
		},
	}
}

func handlerFromCmd(cmd *cli.Command) (*api.TargetHandler, error) {
	path := cmd.String("snapshot")
	if path == "" {
		return api.NewTargetHandler(sourceFromCmd(cmd)), nil
	}

	snap, err := snapshotter.SnapshotFromFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("serving recorded snapshot", "path", path, "triple", snap.Target.Triple)
	return api.NewRecordedHandler(snap), nil
}
