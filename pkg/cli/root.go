/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"github.com/urfave/cli/v3"
)

// version is injected at build time:
//
//	go build -ldflags="-X 'github.com/NVIDIA/tunectl/pkg/cli.version=1.0.0'"
var version = "dev"

// New builds the tunectl root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    "tunectl",
		Usage:   "Apply kernel sysctl settings from configuration files",
		Version: version,
		Flags: []cli.Flag{
			// Flags are persistent (shared with subcommands) by default;
			// only Local: true opts out.
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Commands: []*cli.Command{
			applyCmd(),
			dumpCmd(),
			verifyCmd(),
		},
	}
}
