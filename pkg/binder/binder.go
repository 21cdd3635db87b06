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

// Package binder reconciles the raw values reported by the parsing engine with
// a command's parameter descriptors and produces the resolved arguments of a
// single invocation.
package binder

import (
	"fmt"

	"github.com/NVIDIA/sigcli/pkg/errors"
	"github.com/NVIDIA/sigcli/pkg/signature"
	"github.com/NVIDIA/sigcli/pkg/value"
)

// Options is the engine's view of the option values parsed for one command.
// *cli.Command from urfave/cli/v3 satisfies it.
type Options interface {
	IsSet(name string) bool
	Int64(name string) int64
	Float(name string) float64
	String(name string) string
	Bool(name string) bool
}

// Bind resolves every descriptor of sig in declaration order.
//
// Positional descriptors consume raw tokens left to right; options are read
// from opts by flag name. Inverted boolean flags resolve to the negation of
// the reported presence.
func Bind(sig *signature.Signature, positionals []string, opts Options) (signature.Args, error) {
	if opts == nil {
		opts = noOptions{}
	}

	var args signature.Args
	i := 0
	for _, d := range sig.Params {
		var (
			v   value.Value
			err error
		)
		switch d.Kind {
		case signature.Positional:
			v, err = bindPositional(sig.Name, d, positionals, i)
			i++
		case signature.Option:
			v, err = bindOption(sig.Name, d, opts)
		}
		if err != nil {
			return signature.Args{}, err
		}
		args.Set(d.Name, v)
	}

	if len(positionals) > i {
		return signature.Args{}, errors.NewWithContext(errors.ErrCodeUnexpectedArgument,
			fmt.Sprintf("%s takes %d positional argument(s), got %d", sig.Name, i, len(positionals)),
			map[string]any{"callable": sig.Name, "extra": positionals[i:]})
	}

	return args, nil
}

func bindPositional(fnName string, d signature.Descriptor, positionals []string, i int) (value.Value, error) {
	if i < len(positionals) {
		v, err := value.Parse(d.Type, positionals[i])
		if err != nil {
			return value.Value{}, errors.WrapWithContext(errors.ErrCodeTypeConversion,
				fmt.Sprintf("could not convert %s to %s", d.Name, d.Type), err,
				map[string]any{"callable": fnName, "parameter": d.Name, "type": d.Type.String(), "raw": positionals[i]})
		}
		return v, nil
	}
	if !d.Required() {
		return *d.Default, nil
	}
	return value.Value{}, errors.NewWithContext(errors.ErrCodeMissingArgument,
		fmt.Sprintf("required arg (%s) missing", d.Name),
		map[string]any{"callable": fnName, "parameter": d.Name})
}

func bindOption(fnName string, d signature.Descriptor, opts Options) (value.Value, error) {
	if d.Type == value.Bool {
		present := opts.Bool(d.Flag)
		if d.Inverted() {
			return value.BoolOf(!present), nil
		}
		return value.BoolOf(present), nil
	}

	if !opts.IsSet(d.Flag) {
		if d.Required() {
			return value.Value{}, errors.NewWithContext(errors.ErrCodeMissingOption,
				fmt.Sprintf("required option (%s) missing", d.Flag),
				map[string]any{"callable": fnName, "parameter": d.Name, "flag": d.Flag})
		}
		return *d.Default, nil
	}

	switch d.Type {
	case value.Int:
		return value.IntOf(opts.Int64(d.Flag)), nil
	case value.Float:
		return value.FloatOf(opts.Float(d.Flag)), nil
	case value.String:
		return value.StringOf(opts.String(d.Flag)), nil
	default:
		return value.Value{}, errors.NewWithContext(errors.ErrCodeUnsupportedType,
			fmt.Sprintf("option %s has unsupported type %s", d.Flag, d.Type),
			map[string]any{"callable": fnName, "parameter": d.Name, "type": d.Type.String()})
	}
}

type noOptions struct{}

func (noOptions) IsSet(string) bool { return false }
func (noOptions) Int64(string) int64 { return 0 }
func (noOptions) Float(string) float64 { return 0 }
func (noOptions) String(string) string { return "" }
func (noOptions) Bool(string) bool { return false }
