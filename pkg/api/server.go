package api

import (
	"context"
	"log/slog"

	"github.com/OpenByteDev/build-target/pkg/server"
)

const name = "buildtarget-api-server"

// Serve starts the API server with h's routes and blocks until ctx is done.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve(ctx context.Context, version string, cfg *server.Config, h *TargetHandler) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"address", cfg.Addr(),
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithConfig(cfg),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
