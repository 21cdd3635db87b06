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

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/NVIDIA/sigcli/pkg/defaults"
	"github.com/NVIDIA/sigcli/pkg/errors"
	"github.com/NVIDIA/sigcli/pkg/metrics"
	"github.com/NVIDIA/sigcli/pkg/registry"
	"github.com/NVIDIA/sigcli/pkg/signature"
)

// CompileFunc compiles one callable into a leaf node.
func CompileFunc(fn signature.Func) (*Node, error) {
	return compileFunc(fn, nil)
}

// CompileNamespace compiles a namespace tree into a branch node. Any failure
// aborts the whole compilation.
func CompileNamespace(ns *registry.Namespace) (*Node, error) {
	if ns == nil {
		return nil, errors.New(errors.ErrCodeInvalidDeclaration, "cannot compile nil namespace")
	}
	return compileNamespace(ns, nil)
}

func compileFunc(fn signature.Func, parent []string) (*Node, error) {
	sig, err := signature.Introspect(fn)
	if err != nil {
		return nil, err
	}

	n := &Node{
		Name:    fn.Name,
		Summary: sig.Summary,
		Help:    sig.Help(),
		Kind:    Leaf,
		sig:     sig,
		call:    fn.Call,
		path:    childPath(parent, fn.Name),
	}

	slog.Debug("compiled command",
		"command", strings.Join(n.path, " "),
		"positionals", len(sig.Positionals()),
		"options", len(sig.Options()))
	metrics.RecordCompiled(string(Leaf))
	return n, nil
}

func compileNamespace(ns *registry.Namespace, parent []string) (*Node, error) {
	if ns.IsEmpty() {
		return nil, errors.NewWithContext(errors.ErrCodeEmptyNamespace,
			fmt.Sprintf("no functions or namespaces in %s - can't build a CLI parser", ns.Name),
			map[string]any{"namespace": ns.Name})
	}

	var (
		namespaces []*registry.Namespace
		funcs      []signature.Func
	)
	for _, m := range ns.Members() {
		if child, ok := m.Namespace(); ok {
			namespaces = append(namespaces, child)
			continue
		}
		if fn, ok := m.Func(); ok {
			funcs = append(funcs, fn)
		}
	}
	n := &Node{
		Name:    ns.Name,
		Summary: signature.Summary(ns.Doc),
		Kind:    Branch,
		index:   make(map[string]*Node, len(namespaces)+len(funcs)),
		path:    childPath(parent, ns.Name),
	}

	for _, child := range namespaces {
		c, err := compileNamespace(child, n.path)
		if err != nil {
			return nil, err
		}
		n.add(c)
	}
	for _, fn := range funcs {
		c, err := compileFunc(fn, n.path)
		if err != nil {
			return nil, err
		}
		n.add(c)
	}
	n.Help = branchHelp(ns.Doc, n.children)

	slog.Debug("compiled namespace",
		"command", strings.Join(n.path, " "),
		"children", len(n.children))
	metrics.RecordCompiled(string(Branch))
	return n, nil
}

func (n *Node) add(c *Node) {
	n.children = append(n.children, c)
	n.index[c.Name] = c
}

func branchHelp(doc string, children []*Node) string {
	names := make([]string, 0, len(children))
	for _, c := range children {
		names = append(names, c.Name)
	}

	var b strings.Builder
	if d := strings.TrimSpace(doc); d != "" {
		b.WriteString(d)
		b.WriteString("\n\n")
	}
	b.WriteString(defaults.CommandsHeader)
	for _, name := range names {
		b.WriteString("\n")
		b.WriteString(defaults.HelpIndent)
		b.WriteString(name)
	}
	return b.String()
}

func childPath(parent []string, name string) []string {
	out := make([]string, 0, len(parent)+1)
	out = append(out, parent...)
	return append(out, name)
}
