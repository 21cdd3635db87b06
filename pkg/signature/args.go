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
	"github.com/NVIDIA/sigcli/pkg/value"
)

// Args holds the resolved arguments of one invocation, keyed by parameter
// name in declaration order.
type Args struct {
	order  []string
	values map[string]value.Value
}

// Set records the value for name, appending name on first use.
func (a *Args) Set(name string, v value.Value) {
	if a.values == nil {
		a.values = make(map[string]value.Value)
	}
	if _, ok := a.values[name]; !ok {
		a.order = append(a.order, name)
	}
	a.values[name] = v
}

// Get returns the value for name.
func (a Args) Get(name string) (value.Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Int returns the integer value of name.
func (a Args) Int(name string) int64 { return a.values[name].Int() }

// Float returns the float value of name.
func (a Args) Float(name string) float64 { return a.values[name].Float() }

// String returns the string value of name.
func (a Args) String(name string) string { return a.values[name].Str() }

// Bool returns the boolean value of name.
func (a Args) Bool(name string) bool { return a.values[name].Bool() }

// Names returns the parameter names in declaration order.
func (a Args) Names() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Len returns the number of resolved arguments.
func (a Args) Len() int { return len(a.order) }

// Map returns the untyped payloads, mostly useful for logging and tests.
func (a Args) Map() map[string]any {
	m := make(map[string]any, len(a.order))
	for _, name := range a.order {
		m[name] = a.values[name].Any()
	}
	return m
}
