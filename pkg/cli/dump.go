/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tunectl/pkg/conf"
	"github.com/NVIDIA/tunectl/pkg/logging"
	"github.com/NVIDIA/tunectl/pkg/serializer"
	"github.com/NVIDIA/tunectl/pkg/sysctl"
)

func dumpCmd() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Print the effective merged settings without applying anything",
		ArgsUsage: "[FILE...]",
		Description: `Loads and merges the same configuration sources as apply, applies the same
prefix filtering, and prints the resulting settings instead of writing them.

# Examples

Show everything the drop-in directories would apply:
  tunectl dump

Show the effective network settings as JSON:
  tunectl dump --prefix net --format json`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "Only show settings with the given path prefix (can be repeated)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatYAML),
				Usage:   "Output format: yaml, json, table (default: inferred from --output extension, else yaml)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Setup(cmd.Bool("debug"), cmd.Bool("log-json"))

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			outPath := cmd.String("output")
			if !cmd.IsSet("format") && outPath != "" && outPath != "-" {
				outFormat = serializer.FormatFromPath(outPath)
			}

			loader := &conf.Loader{Log: slog.Default()}
			files, err := loader.Files(cmd.Args().Slice())
			if err != nil {
				return err
			}

			entries, loadErr := loader.Load(files)

			prefixes := sysctl.NewPrefixes(cmd.StringSlice("prefix"))
			filtered := make([]sysctl.Entry, 0, len(entries))
			for _, e := range entries {
				if prefixes.Match(e.Name) {
					filtered = append(filtered, e)
				}
			}

			var out io.Writer = os.Stdout
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := serializer.NewWriter(outFormat, out).Serialize(ctx, filtered); err != nil {
				return err
			}
			return loadErr
		},
	}
}
