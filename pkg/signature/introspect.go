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

package signature

import (
	"fmt"
	"slices"
	"strings"

	"github.com/NVIDIA/sigcli/pkg/defaults"
	"github.com/NVIDIA/sigcli/pkg/errors"
	"github.com/NVIDIA/sigcli/pkg/value"
)

// Kind classifies a parameter as positional or option.
type Kind int

const (
	Positional Kind = iota
	Option
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Option {
		return "option"
	}
	return "positional"
}

// Descriptor is the compiled description of one parameter.
type Descriptor struct {
	Name    string
	Kind    Kind
	Type    value.Type
	Default *value.Value
	// Flag is the engine flag name of an option; empty for positionals.
	Flag string
	// Help is the one-line help fragment.
	Help string
}

// Required reports whether the parameter has no default.
func (d Descriptor) Required() bool {
	return d.Default == nil
}

// Inverted reports whether d is a boolean option exposed as --not-<name>.
func (d Descriptor) Inverted() bool {
	return d.Kind == Option && d.Type == value.Bool && strings.HasPrefix(d.Flag, defaults.InversionPrefix)
}

// CLIForm returns the form shown in help: name, --name or --not-name.
func (d Descriptor) CLIForm() string {
	if d.Kind == Positional {
		return d.Name
	}
	return defaults.FlagPrefix + d.Flag
}

// Signature is the introspected form of a Func.
type Signature struct {
	Name    string
	Summary string
	Params  []Descriptor
}

// Help returns the summary followed by one fragment line per parameter.
func (s *Signature) Help() string {
	var b strings.Builder
	b.WriteString(s.Summary)
	for i, d := range s.Params {
		if i > 0 || s.Summary != "" {
			b.WriteString("\n")
		}
		b.WriteString(defaults.HelpIndent)
		b.WriteString(d.Help)
	}
	return b.String()
}

// Positionals returns the positional descriptors in declaration order.
func (s *Signature) Positionals() []Descriptor {
	var out []Descriptor
	for _, d := range s.Params {
		if d.Kind == Positional {
			out = append(out, d)
		}
	}
	return out
}

// Options returns the option descriptors in declaration order.
func (s *Signature) Options() []Descriptor {
	var out []Descriptor
	for _, d := range s.Params {
		if d.Kind == Option {
			out = append(out, d)
		}
	}
	return out
}

// Summary returns the first non-blank line of doc, trimmed.
func Summary(doc string) string {
	for _, line := range strings.Split(doc, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			return l
		}
	}
	return ""
}

// Introspect compiles fn's declared parameter list into descriptors.
func Introspect(fn Func) (*Signature, error) {
	if strings.TrimSpace(fn.Name) == "" {
		return nil, errors.New(errors.ErrCodeInvalidDeclaration, "callable has no name")
	}
	if fn.Call == nil {
		return nil, declError(fn.Name, "", "callable has no handler")
	}

	sig := &Signature{
		Name:    fn.Name,
		Summary: Summary(fn.Doc),
		Params:  make([]Descriptor, 0, len(fn.Params)),
	}

	kind := Positional
	seen := make(map[string]bool, len(fn.Params))
	sawDefaultedPositional := false

	for _, p := range fn.Params {
		if p.IsBoundary() {
			if kind == Option {
				return nil, declError(fn.Name, "", "keyword-only boundary declared twice")
			}
			kind = Option
			continue
		}
		if p.IsVariadic() {
			return nil, errors.NewWithContext(errors.ErrCodeVariadicParameter,
				fmt.Sprintf("cannot create CLI for %s - variadic parameter (%s) has no command-line form", fn.Name, p.Name),
				map[string]any{"callable": fn.Name, "parameter": p.Name})
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, declError(fn.Name, "", "parameter has no name")
		}
		if seen[p.Name] {
			return nil, declError(fn.Name, p.Name, "duplicate parameter name")
		}
		seen[p.Name] = true

		d, err := describe(fn.Name, p, kind)
		if err != nil {
			return nil, err
		}

		if kind == Positional {
			if d.Required() && sawDefaultedPositional {
				return nil, declError(fn.Name, p.Name, "required positional follows a defaulted one")
			}
			if !d.Required() {
				sawDefaultedPositional = true
			}
		}

		sig.Params = append(sig.Params, d)
	}

	return sig, nil
}

func describe(fnName string, p Param, kind Kind) (Descriptor, error) {
	t := value.Infer(p.Type, p.Default)

	allowed := value.PositionalTypes()
	if kind == Option {
		allowed = value.OptionTypes()
	}
	if !slices.Contains(allowed, t) {
		return Descriptor{}, unsupported(fnName, p.Name, t.String())
	}
	if p.Default != nil && p.Default.Type() != t {
		return Descriptor{}, unsupported(fnName, p.Name,
			fmt.Sprintf("%s with %s default", t, p.Default.Type()))
	}

	d := Descriptor{
		Name:    p.Name,
		Kind:    kind,
		Type:    t,
		Default: p.Default,
	}

	if kind == Option {
		if strings.HasPrefix(p.Name, defaults.InversionPrefix) {
			return Descriptor{}, declError(fnName, p.Name,
				fmt.Sprintf("option names may not start with %q", defaults.InversionPrefix))
		}
		d.Flag = p.Name
		if t == value.Bool && d.Default != nil && d.Default.Bool() {
			d.Flag = defaults.InversionPrefix + p.Name
		}
		if slices.Contains(defaults.ReservedFlagNames, d.Flag) {
			return Descriptor{}, declError(fnName, p.Name, "option name is reserved by the parser")
		}
	}

	d.Help = fragment(d)
	return d, nil
}

func fragment(d Descriptor) string {
	head := fmt.Sprintf("%s (%s): ", d.CLIForm(), d.Type)
	switch {
	case d.Required():
		return head + "required - no default"
	case d.Inverted():
		return head + fmt.Sprintf("unless set, %s will be true", d.Name)
	default:
		return head + fmt.Sprintf("default is %s", d.Default)
	}
}

func unsupported(fnName, param, typ string) error {
	return errors.NewWithContext(errors.ErrCodeUnsupportedType,
		fmt.Sprintf("cannot create CLI for %s - unhandled type %s for arg (%s)", fnName, typ, param),
		map[string]any{"callable": fnName, "parameter": param, "type": typ})
}

func declError(fnName, param, msg string) error {
	ctx := map[string]any{"callable": fnName}
	if param != "" {
		ctx["parameter"] = param
		msg = fmt.Sprintf("%s (%s)", msg, param)
	}
	return errors.NewWithContext(errors.ErrCodeInvalidDeclaration,
		fmt.Sprintf("cannot create CLI for %s - %s", fnName, msg), ctx)
}
