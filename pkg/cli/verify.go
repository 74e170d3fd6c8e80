/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tunectl/pkg/conf"
	"github.com/NVIDIA/tunectl/pkg/logging"
	"github.com/NVIDIA/tunectl/pkg/serializer"
	"github.com/NVIDIA/tunectl/pkg/sysctl"
)

// checkResult is one verified setting.
type checkResult struct {
	Name    string `json:"name" yaml:"name"`
	Want    string `json:"want" yaml:"want"`
	Current string `json:"current,omitempty" yaml:"current,omitempty"`
	Status  string `json:"status" yaml:"status"`
}

const (
	statusOK       = "ok"
	statusMismatch = "mismatch"
	statusAbsent   = "absent"
	statusError    = "error"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Compare configured settings against the running kernel",
		ArgsUsage: "[FILE...]",
		Description: `Loads the same configuration sources as apply and, instead of writing,
reads each tunable's current value and reports whether it matches the
configured one. Tunables absent from the running kernel are reported as
absent, not as failures.

# Examples

Check the drop-in configuration against the running kernel:
  tunectl verify

Fail a CI pipeline when anything drifted:
  tunectl verify --fail-on-error /etc/sysctl.d/99-local.conf`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "Only verify settings with the given path prefix (can be repeated)",
			},
			&cli.StringFlag{
				Name:  "root",
				Value: sysctl.Root,
				Usage: "Directory the tunable tree is mounted at",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatTable),
				Usage:   "Output format: yaml, json, table",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit non-zero when any setting is out of sync",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Setup(cmd.Bool("debug"), cmd.Bool("log-json"))

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			loader := &conf.Loader{Log: slog.Default()}
			files, err := loader.Files(cmd.Args().Slice())
			if err != nil {
				return err
			}

			entries, loadErr := loader.Load(files)
			if loadErr != nil {
				return loadErr
			}

			prefixes := sysctl.NewPrefixes(cmd.StringSlice("prefix"))
			fs := sysctl.FS{Root: cmd.String("root")}

			var results []checkResult
			drifted := 0
			for _, e := range entries {
				if !prefixes.Match(e.Name) {
					continue
				}

				want := sysctl.Normalize(e.Value)
				r := checkResult{Name: e.Name, Want: want}

				current, err := fs.Read(e.Name)
				switch {
				case errors.Is(err, syscall.ENOENT):
					r.Status = statusAbsent
				case err != nil:
					r.Status = statusError
					drifted++
				case current == want:
					r.Current = current
					r.Status = statusOK
				default:
					r.Current = current
					r.Status = statusMismatch
					drifted++
				}
				results = append(results, r)
			}

			if err := serializer.NewStdoutWriter(outFormat).Serialize(ctx, results); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && drifted > 0 {
				return fmt.Errorf("%d setting(s) out of sync with the running kernel", drifted)
			}
			return nil
		},
	}
}
