package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print one field of the build target",
		ArgsUsage: "FIELD",
		Description: `Prints the canonical form of a single target field. Families are joined
with commas. An absent env prints an empty line.

# Examples

  buildtarget get arch
  buildtarget get pointer-width`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected exactly one FIELD argument, got %d", cmd.NArg())
			}
			f, err := lookupField(cmd.Args().First())
			if err != nil {
				return err
			}
			v, err := f.read(sourceFromCmd(cmd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, v)
			return err
		},
	}
}

func knownCmd() *cli.Command {
	return &cli.Command{
		Name:      "known",
		Usage:     "List the named variants of a target field",
		ArgsUsage: "FIELD",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected exactly one FIELD argument, got %d", cmd.NArg())
			}
			name := cmd.Args().First()
			f, err := lookupField(name)
			if err != nil {
				return err
			}
			if f.known == nil {
				return fmt.Errorf("field %q is free-form and has no named variants", name)
			}
			w := cmd.Root().Writer
			for _, v := range f.known() {
				if _, err := fmt.Fprintln(w, v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
