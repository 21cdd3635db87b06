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

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/sigcli/pkg/command"
	"github.com/NVIDIA/sigcli/pkg/defaults"
	"github.com/NVIDIA/sigcli/pkg/engine"
	"github.com/NVIDIA/sigcli/pkg/logging"
	"github.com/NVIDIA/sigcli/pkg/metrics"
	"github.com/NVIDIA/sigcli/pkg/registry"
)

const (
	flagLogLevel    = "log-level"
	flagMetricsFile = "metrics-file"
)

var (
	// overridden during build with ldflags
	version = defaults.VersionDefault
	commit  = "unknown"
	date    = "unknown"

	errColor = color.New(color.FgRed, color.Bold)
)

// Execute compiles ns, runs it against os.Args and exits the process with a
// non-zero status when the run fails.
// This is called by main.main().
func Execute(ns *registry.Namespace) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if code := Run(ctx, ns, os.Args, os.Stdout, os.Stderr); code != 0 {
		cancel()
		os.Exit(code) //nolint:gocritic // cancel is called explicitly above
	}
}

// Run is Execute without the process exit. It returns the exit status.
func Run(ctx context.Context, ns *registry.Namespace, args []string, stdout, stderr io.Writer) int {
	root, err := command.CompileNamespace(ns)
	if err != nil {
		return report(stderr, err)
	}

	cmd, err := engine.Build(root,
		engine.WithVersion(version),
		engine.WithWriter(stdout),
		engine.WithErrWriter(stderr),
		engine.WithFlags(rootFlags()...),
		engine.WithBefore(func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(ns.Name, version, c.String(flagLogLevel))
			slog.Debug("starting",
				"name", ns.Name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		}),
	)
	if err != nil {
		return report(stderr, err)
	}

	runErr := cmd.Run(ctx, args)

	if path := cmd.String(flagMetricsFile); path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			slog.Warn("failed to write metrics", "path", path, "error", err)
		}
	}

	if runErr == nil {
		return 0
	}
	if stderrors.Is(runErr, context.Canceled) || ctx.Err() != nil {
		fmt.Fprintln(stderr, runErr)
		return defaults.ExitCodeCanceled
	}
	return report(stderr, runErr)
}

func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagLogLevel,
			Value:   defaults.LogLevelDefault,
			Local:   true,
			Usage:   "log level (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvLogLevel),
		},
		&cli.StringFlag{
			Name:    flagMetricsFile,
			Local:   true,
			Usage:   "write Prometheus metrics in textfile format to this path on exit",
			Sources: cli.EnvVars(defaults.EnvMetricsFile),
		},
	}
}

func report(w io.Writer, err error) int {
	errColor.Fprint(w, defaults.ParsingErrorPrefix)
	fmt.Fprintln(w, err.Error())
	return defaults.ExitCodeError
}
