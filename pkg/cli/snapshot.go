package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/OpenByteDev/build-target/pkg/serializer"
	"github.com/OpenByteDev/build-target/pkg/snapshotter"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Capture the current build target",
		Description: `Reads every target variable the build orchestrator exported and writes
them as a single Snapshot document. Values that are not among the known
variants are listed under hints, with the closest known variant when one
is near enough.

# Examples

Print the snapshot as YAML:
  buildtarget snapshot --format yaml

Record it for later comparison:
  buildtarget snapshot --output target.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatYAML),
				Usage:   "output format (json, yaml, table)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return fmt.Errorf("failed to create output writer: %w", err)
			}
			if closer, ok := ser.(serializer.Closer); ok {
				defer func() {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close output", slog.String("error", err.Error()))
					}
				}()
			}

			s := &snapshotter.TargetSnapshotter{
				Version:    version,
				Source:     sourceFromCmd(cmd),
				Serializer: ser,
			}
			return s.Measure(ctx)
		},
	}
}
