// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for the tunectl tool.
//
// # Commands
//
// apply - Write sysctl settings to the kernel:
//
//	tunectl apply [--prefix P]... [--root DIR] [--metrics-textfile DIR] [FILE...]
//
// Reads the given configuration files (or, without arguments, the standard
// sysctl.d drop-in directories), merges them in order, and writes each
// setting under /proc/sys. Permission problems, read-only mounts, and
// tunables missing from the running kernel are logged and tolerated; any
// other write failure makes the run fail after all settings were attempted.
// With --metrics-textfile, apply counters are written to DIR/tunectl.prom
// in the node_exporter textfile-collector format for scraping after the
// one-shot run finishes.
//
// dump - Print the effective settings:
//
//	tunectl dump [--prefix P]... [--format yaml|json|table] [--output FILE] [FILE...]
//
// Performs the same loading, merging, and filtering as apply but prints the
// result instead of writing it.
//
// verify - Compare configuration against the running kernel:
//
//	tunectl verify [--prefix P]... [--root DIR] [--fail-on-error] [FILE...]
//
// Reads each configured tunable's current value and reports ok, mismatch, or
// absent per setting. With --fail-on-error the command exits non-zero when
// anything drifted, for CI pipelines.
//
// # Global Flags
//
//	--debug      Enable debug logging
//	--log-json   Output logs in JSON format
//	--help, -h   Show command help
//	--version    Show version information
//
// # Environment Variables
//
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success, including writes that failed only benignly
//	1  Parse failure, fatal write failure, or invalid arguments
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/tunectl/pkg/cli.version=1.0.0'"
package cli
