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
	"context"

	"k8s.io/utils/ptr"

	"github.com/NVIDIA/sigcli/pkg/value"
)

type paramKind int

const (
	paramNamed paramKind = iota
	paramBoundary
	paramVarArgs
	paramVarKwargs
)

// Param declares one entry of a callable's parameter list. Build values with
// Arg, KeywordOnly, VarArgs and VarKwargs.
type Param struct {
	// Name is the parameter name, used verbatim as the CLI name.
	Name string
	// Type is the declared type; value.Invalid means undeclared.
	Type value.Type
	// Default is the default value; nil means the parameter is required.
	Default *value.Value

	kind paramKind
}

// Arg declares a named parameter. Its kind (positional or option) depends on
// whether it appears before or after the KeywordOnly marker.
func Arg(name string) Param {
	return Param{Name: name}
}

// Typed returns p with an explicit declared type.
func (p Param) Typed(t value.Type) Param {
	p.Type = t
	return p
}

// WithDefault returns p with a default value, making it optional.
func (p Param) WithDefault(v value.Value) Param {
	p.Default = ptr.To(v)
	return p
}

// KeywordOnly marks the boundary after which parameters become options.
func KeywordOnly() Param {
	return Param{kind: paramBoundary}
}

// VarArgs declares a variadic positional capture. Callables declaring one are
// rejected at compile time.
func VarArgs(name string) Param {
	return Param{Name: name, kind: paramVarArgs}
}

// VarKwargs declares a variadic keyword capture. Callables declaring one are
// rejected at compile time.
func VarKwargs(name string) Param {
	return Param{Name: name, kind: paramVarKwargs}
}

// IsBoundary reports whether p is the keyword-only marker.
func (p Param) IsBoundary() bool { return p.kind == paramBoundary }

// IsVariadic reports whether p is a variadic capture.
func (p Param) IsVariadic() bool {
	return p.kind == paramVarArgs || p.kind == paramVarKwargs
}

// Handler is the target of a generated leaf command.
type Handler func(ctx context.Context, args Args) error

// Func is a callable registered for CLI exposure.
type Func struct {
	Name   string
	Doc    string
	Params []Param
	Call   Handler
}
