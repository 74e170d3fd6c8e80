/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/NVIDIA/tunectl/pkg/cli"
)

func main() {
	if err := cli.New().Run(context.Background(), os.Args); err != nil {
		slog.Error("tunectl failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
