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
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/sigcli/pkg/binder"
	"github.com/NVIDIA/sigcli/pkg/errors"
	"github.com/NVIDIA/sigcli/pkg/metrics"
	"github.com/NVIDIA/sigcli/pkg/signature"
)

// ErrHelp is returned by Invoke on a branch when no subcommand was selected.
// Callers show the branch's help in response.
var ErrHelp = stderrors.New("help requested")

// Kind distinguishes leaves from branches.
type Kind string

const (
	// Leaf wraps exactly one callable.
	Leaf Kind = "leaf"
	// Branch wraps a namespace.
	Branch Kind = "branch"
)

// Node is one compiled command.
type Node struct {
	Name    string
	Summary string
	Help    string
	Kind    Kind

	sig      *signature.Signature
	call     signature.Handler
	children []*Node
	index    map[string]*Node
	path     []string
}

// Params returns the parameter descriptors of a leaf, nil for a branch.
func (n *Node) Params() []signature.Descriptor {
	if n.sig == nil {
		return nil
	}
	out := make([]signature.Descriptor, len(n.sig.Params))
	copy(out, n.sig.Params)
	return out
}

// Signature returns the introspected signature of a leaf.
func (n *Node) Signature() *signature.Signature {
	return n.sig
}

// Children returns the direct children in listing order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the direct child called name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.index[name]
	return c, ok
}

// find walks the children by name and returns the node at path.
func (n *Node) find(path ...string) (*Node, bool) {
	cur := n
	for _, name := range path {
		next, ok := cur.Child(name)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Path returns the command names from the root down to n.
func (n *Node) Path() []string {
	out := make([]string, len(n.path))
	copy(out, n.path)
	return out
}

// Walk calls fn for n and every descendant, depth first, stopping at the
// first error.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Invoke binds raw engine values against a leaf's descriptors and calls its
// target. On a branch it dispatches to the child named by the first
// positional, returns ErrHelp when positionals is empty and an unknown-command
// error when no child matches.
func (n *Node) Invoke(ctx context.Context, positionals []string, opts binder.Options) error {
	if n.Kind == Branch {
		if len(positionals) == 0 {
			return ErrHelp
		}
		if c, ok := n.Child(positionals[0]); ok {
			return c.Invoke(ctx, positionals[1:], opts)
		}
		return errors.NewWithContext(errors.ErrCodeUnknownCommand,
			fmt.Sprintf("unknown command %q for %s", positionals[0], strings.Join(n.path, " ")),
			map[string]any{"command": strings.Join(n.path, " "), "token": positionals[0]})
	}

	start := time.Now()
	command := strings.Join(n.path, " ")

	args, err := binder.Bind(n.sig, positionals, opts)
	if err != nil {
		metrics.RecordBindError(err)
		metrics.RecordInvocation(command, err, time.Since(start))
		return err
	}

	slog.Debug("invoking",
		"command", command,
		"invocation", uuid.NewString(),
		"args", args.Map())

	err = n.call(ctx, args)
	if err != nil && errors.CodeOf(err) == "" {
		err = errors.WrapWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("command %s failed", command), err,
			map[string]any{"command": command})
	}
	metrics.RecordInvocation(command, err, time.Since(start))
	return err
}
