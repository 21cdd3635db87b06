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

package command

// Description is the serializable form of a compiled node.
type Description struct {
	Name       string                 `json:"name" yaml:"name"`
	Kind       Kind                   `json:"kind" yaml:"kind"`
	Summary    string                 `json:"summary,omitempty" yaml:"summary,omitempty"`
	Help       string                 `json:"help,omitempty" yaml:"help,omitempty"`
	Parameters []ParameterDescription `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Commands   []Description          `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// ParameterDescription is the serializable form of one descriptor.
type ParameterDescription struct {
	Name     string  `json:"name" yaml:"name"`
	Kind     string  `json:"kind" yaml:"kind"`
	Type     string  `json:"type" yaml:"type"`
	Form     string  `json:"form" yaml:"form"`
	Required bool    `json:"required" yaml:"required"`
	Default  *string `json:"default,omitempty" yaml:"default,omitempty"`
}

// Describe converts n and its subtree into a Description.
func Describe(n *Node) Description {
	d := Description{
		Name:    n.Name,
		Kind:    n.Kind,
		Summary: n.Summary,
		Help:    n.Help,
	}
	for _, p := range n.Params() {
		pd := ParameterDescription{
			Name:     p.Name,
			Kind:     p.Kind.String(),
			Type:     p.Type.String(),
			Form:     p.CLIForm(),
			Required: p.Required(),
		}
		if p.Default != nil {
			s := p.Default.String()
			pd.Default = &s
		}
		d.Parameters = append(d.Parameters, pd)
	}
	for _, c := range n.children {
		d.Commands = append(d.Commands, Describe(c))
	}
	return d
}
