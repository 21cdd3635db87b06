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

package engine

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/sigcli/pkg/command"
	"github.com/NVIDIA/sigcli/pkg/errors"
	"github.com/NVIDIA/sigcli/pkg/serializer"
	"github.com/NVIDIA/sigcli/pkg/signature"
	"github.com/NVIDIA/sigcli/pkg/value"
)

// Root flags owned by the engine.
const (
	// GrammarFlag dumps the compiled tree and exits.
	GrammarFlag = "grammar"
	// GrammarOutputFlag redirects the dump to a file.
	GrammarOutputFlag = "grammar-output"
)

var versionFlagNames = []string{"version", "v"}

type config struct {
	version   string
	writer    io.Writer
	errWriter io.Writer
	flags     []cli.Flag
	before    cli.BeforeFunc
}

// Option configures Build.
type Option func(*config)

// WithVersion sets the string printed by --version.
func WithVersion(v string) Option {
	return func(c *config) {
		c.version = v
	}
}

// WithWriter sets where help, version and grammar output go.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// WithErrWriter sets where the engine writes its own diagnostics.
func WithErrWriter(w io.Writer) Option {
	return func(c *config) {
		c.errWriter = w
	}
}

// WithFlags adds root-local flags. They are not inherited by subcommands.
func WithFlags(flags ...cli.Flag) Option {
	return func(c *config) {
		c.flags = append(c.flags, flags...)
	}
}

// WithBefore runs fn once parsing of the root flags has finished.
func WithBefore(fn cli.BeforeFunc) Option {
	return func(c *config) {
		c.before = fn
	}
}

// Build declares root and its subtree to the engine. It fails when the root
// is a leaf whose options collide with a root flag.
func Build(root *command.Node, opts ...Option) (*cli.Command, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}

	rootFlags := append([]cli.Flag{
		&cli.StringFlag{
			Name:  GrammarFlag,
			Local: true,
			Usage: fmt.Sprintf("Print the command grammar and exit (supported values: %s)",
				strings.Join(serializer.SupportedFormats(), ", ")),
		},
		&cli.StringFlag{
			Name:  GrammarOutputFlag,
			Local: true,
			Usage: "Write the --grammar output to this path instead of stdout",
		},
	}, cfg.flags...)

	if err := checkRootCollisions(root, rootFlags, cfg.version != ""); err != nil {
		return nil, err
	}

	cmd := declare(root)
	cmd.Version = cfg.version
	cmd.Writer = cfg.writer
	cmd.ErrWriter = cfg.errWriter
	cmd.Flags = append(rootFlags, cmd.Flags...)
	cmd.Before = cfg.before

	action := cmd.Action
	cmd.Action = func(ctx context.Context, c *cli.Command) error {
		if format := c.String(GrammarFlag); format != "" {
			return writeGrammar(ctx, c, root, serializer.Format(format))
		}
		return action(ctx, c)
	}
	return cmd, nil
}

func declare(n *command.Node) *cli.Command {
	cmd := &cli.Command{
		Name:            n.Name,
		Usage:           n.Summary,
		Description:     n.Help,
		HideHelpCommand: true,
		OnUsageError:    usageError,
	}

	if n.Kind == command.Branch {
		for _, c := range n.Children() {
			cmd.Commands = append(cmd.Commands, declare(c))
		}
		cmd.Action = func(ctx context.Context, c *cli.Command) error {
			err := n.Invoke(ctx, c.Args().Slice(), c)
			if stderrors.Is(err, command.ErrHelp) {
				return cli.ShowSubcommandHelp(c)
			}
			return err
		}
		return cmd
	}

	sig := n.Signature()
	cmd.ArgsUsage = argsUsage(sig.Positionals())
	for _, d := range sig.Options() {
		cmd.Flags = append(cmd.Flags, optionFlag(d))
	}
	cmd.Action = func(ctx context.Context, c *cli.Command) error {
		return n.Invoke(ctx, c.Args().Slice(), c)
	}
	return cmd
}

// optionFlag declares d without an engine default; the binder owns defaults so
// that IsSet reflects only what the user typed.
func optionFlag(d signature.Descriptor) cli.Flag {
	switch d.Type {
	case value.Int:
		return &cli.Int64Flag{Name: d.Flag, Usage: d.Help}
	case value.Float:
		return &cli.FloatFlag{Name: d.Flag, Usage: d.Help}
	case value.Bool:
		return &cli.BoolFlag{Name: d.Flag, Usage: d.Help}
	default:
		return &cli.StringFlag{Name: d.Flag, Usage: d.Help}
	}
}

func argsUsage(positionals []signature.Descriptor) string {
	names := make([]string, 0, len(positionals))
	for _, d := range positionals {
		if d.Required() {
			names = append(names, d.Name)
			continue
		}
		names = append(names, "["+d.Name+"]")
	}
	return strings.Join(names, " ")
}

func writeGrammar(ctx context.Context, c *cli.Command, root *command.Node, format serializer.Format) error {
	if format.IsUnknown() {
		return errors.NewWithContext(errors.ErrCodeUnexpectedArgument,
			fmt.Sprintf("unknown grammar format: %q", format),
			map[string]any{"format": string(format), "supported": serializer.SupportedFormats()})
	}

	var w *serializer.Writer
	if path := c.String(GrammarOutputFlag); path != "" {
		w = serializer.NewFileWriterOrStdout(format, path)
	} else {
		w = serializer.NewWriter(format, c.Root().Writer)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close grammar output", "error", err)
		}
	}()

	return w.Serialize(ctx, command.Describe(root))
}

// usageError replaces the engine's usage dump with a structured error so the
// process boundary reports it like any other parse failure.
func usageError(_ context.Context, c *cli.Command, err error, _ bool) error {
	code := errors.ErrCodeUnexpectedArgument
	if strings.Contains(err.Error(), "invalid value") {
		code = errors.ErrCodeTypeConversion
	}
	return errors.WrapWithContext(code, fmt.Sprintf("invalid usage of %s", c.Name), err,
		map[string]any{"command": c.Name})
}

func checkRootCollisions(root *command.Node, flags []cli.Flag, withVersion bool) error {
	if root.Kind != command.Leaf {
		return nil
	}
	taken := make(map[string]struct{})
	for _, f := range flags {
		for _, name := range f.Names() {
			taken[name] = struct{}{}
		}
	}
	if withVersion {
		for _, name := range versionFlagNames {
			taken[name] = struct{}{}
		}
	}
	for _, d := range root.Params() {
		if d.Kind != signature.Option {
			continue
		}
		if _, ok := taken[d.Flag]; ok {
			return errors.NewWithContext(errors.ErrCodeInvalidDeclaration,
				fmt.Sprintf("cannot create CLI for %s - option --%s collides with a root flag", root.Name, d.Flag),
				map[string]any{"callable": root.Name, "parameter": d.Name, "flag": d.Flag})
		}
	}
	return nil
}
