/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/tunectl/pkg/sysctl"
)

func TestDumpCommand(t *testing.T) {
	confPath := writeConfFile(t, "net.ipv4.ip_forward = 1\nkernel.panic = 10\n")
	outPath := filepath.Join(t.TempDir(), "out.yaml")

	cmd := New()
	err := cmd.Run(context.Background(), []string{
		"tunectl", "dump", "--output", outPath, "--prefix", "net", confPath,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var entries []sysctl.Entry
	require.NoError(t, yaml.Unmarshal(raw, &entries))

	require.Len(t, entries, 1)
	assert.Equal(t, sysctl.Entry{Name: "net/ipv4/ip_forward", Value: "1"}, entries[0])
}

func TestDumpCommandFormatFromOutputPath(t *testing.T) {
	confPath := writeConfFile(t, "kernel.panic = 10\n")
	outPath := filepath.Join(t.TempDir(), "out.json")

	// No --format: the output extension picks the encoding.
	cmd := New()
	err := cmd.Run(context.Background(), []string{
		"tunectl", "dump", "--output", outPath, confPath,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var entries []sysctl.Entry
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, sysctl.Entry{Name: "kernel/panic", Value: "10"}, entries[0])
}

func TestDumpCommandExplicitFormatWins(t *testing.T) {
	confPath := writeConfFile(t, "kernel.panic = 10\n")
	outPath := filepath.Join(t.TempDir(), "out.json")

	cmd := New()
	err := cmd.Run(context.Background(), []string{
		"tunectl", "dump", "--format", "yaml", "--output", outPath, confPath,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var entries []sysctl.Entry
	require.NoError(t, yaml.Unmarshal(raw, &entries))
	require.Len(t, entries, 1)
}

func TestDumpCommandUnknownFormat(t *testing.T) {
	confPath := writeConfFile(t, "kernel.panic = 10\n")

	cmd := New()
	err := cmd.Run(context.Background(), []string{
		"tunectl", "dump", "--format", "xml", confPath,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
