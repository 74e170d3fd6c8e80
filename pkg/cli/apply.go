/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tunectl/pkg/conf"
	"github.com/NVIDIA/tunectl/pkg/logging"
	"github.com/NVIDIA/tunectl/pkg/sysctl"
)

func applyCmd() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Apply sysctl settings from the given files or the sysctl.d directories",
		ArgsUsage: "[FILE...]",
		Description: `Applies kernel tunable settings. Settings are read from the files given on
the command line, in order; without arguments the standard sysctl.d drop-in
directories are scanned instead.

Setting names accept both the dotted and the slash-delimited convention:

  net.ipv4.ip_forward = 1
  net/ipv4/ip_forward = 1

Writes that fail because of missing privileges, a read-only mount, or a
tunable absent from the running kernel are logged and ignored. Any other
write failure makes the command exit non-zero, after all remaining settings
have still been attempted.

# Examples

Apply everything from the drop-in directories:
  tunectl apply

Apply one file, network settings only:
  tunectl apply --prefix net /etc/sysctl.d/99-local.conf`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "Only apply settings with the given path prefix (can be repeated)",
			},
			&cli.StringFlag{
				Name:  "root",
				Value: sysctl.Root,
				Usage: "Directory the tunable tree is mounted at",
			},
			&cli.StringFlag{
				Name:  "metrics-textfile",
				Usage: "Write apply metrics to DIR/tunectl.prom in node_exporter textfile-collector format",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Setup(cmd.Bool("debug"), cmd.Bool("log-json"))

			log := slog.Default().With(slog.String("run_id", uuid.New().String()))

			loader := &conf.Loader{Log: log}
			files, err := loader.Files(cmd.Args().Slice())
			if err != nil {
				log.Error("failed to resolve configuration sources", slog.String("error", err.Error()))
				return err
			}

			entries, loadErr := loader.Load(files)

			applier := &sysctl.Applier{
				Writer:   sysctl.FS{Root: cmd.String("root")},
				Prefixes: sysctl.NewPrefixes(cmd.StringSlice("prefix")),
				Log:      log,
			}
			res := applier.Apply(entries)

			log.Info("apply complete",
				slog.Int("sources", len(files)),
				slog.Int("applied", res.Applied),
				slog.Int("skipped", res.Skipped),
				slog.Int("ignored", res.Ignored),
				slog.Int("failed", res.Failed),
			)

			var metricsErr error
			if dir := cmd.String("metrics-textfile"); dir != "" {
				path := filepath.Join(dir, "tunectl.prom")
				if metricsErr = sysctl.WriteMetricsTextfile(path); metricsErr != nil {
					log.Error("failed to write metrics textfile",
						slog.String("path", path),
						slog.String("error", metricsErr.Error()),
					)
				}
			}

			// A parse failure fails the run even when every write went
			// through.
			if loadErr != nil {
				return loadErr
			}
			if err := res.Err(); err != nil {
				return err
			}
			return metricsErr
		},
	}
}
