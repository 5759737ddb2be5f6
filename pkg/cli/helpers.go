package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/OpenByteDev/build-target/pkg/buildtarget"
	"github.com/OpenByteDev/build-target/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: yaml, json, table", outFormat)
	}
	return outFormat, nil
}

// sourceFromCmd builds a Source over the process environment using the
// --cfg-prefix flag of the root command.
func sourceFromCmd(cmd *cli.Command) *buildtarget.Source {
	return buildtarget.NewSource(buildtarget.WithCfgPrefix(cmd.String(flagCfgPrefix)))
}
