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

package registry

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/sigcli/pkg/errors"
	"github.com/NVIDIA/sigcli/pkg/signature"
)

// Member is one direct child of a namespace: a callable or a namespace.
type Member struct {
	fn *signature.Func
	ns *Namespace
}

// Name returns the member's command name.
func (m Member) Name() string {
	if m.ns != nil {
		return m.ns.Name
	}
	return m.fn.Name
}

// Func returns the callable, if m is one.
func (m Member) Func() (signature.Func, bool) {
	if m.fn == nil {
		return signature.Func{}, false
	}
	return *m.fn, true
}

// Namespace returns the child namespace, if m is one.
func (m Member) Namespace() (*Namespace, bool) {
	return m.ns, m.ns != nil
}

// Namespace groups callables and child namespaces under one command name.
type Namespace struct {
	Name string
	Doc  string

	members []Member
	index   map[string]int
	mounted bool
}

// New creates an empty namespace.
func New(name, doc string) *Namespace {
	return &Namespace{
		Name:  name,
		Doc:   doc,
		index: make(map[string]int),
	}
}

// Register appends a callable. Names must be unique within the namespace.
func (n *Namespace) Register(fn signature.Func) error {
	if err := n.claim(fn.Name); err != nil {
		return err
	}
	f := fn
	n.members = append(n.members, Member{fn: &f})
	return nil
}

// MustRegister is a convenience function that panics on registration error.
func (n *Namespace) MustRegister(fn signature.Func) {
	if err := n.Register(fn); err != nil {
		panic(err)
	}
}

// Mount appends a child namespace. A namespace has at most one parent and
// never contains itself.
func (n *Namespace) Mount(child *Namespace) error {
	if child == nil {
		return errors.New(errors.ErrCodeInvalidDeclaration, "cannot mount nil namespace")
	}
	if child == n || child.contains(n) {
		return errors.NewWithContext(errors.ErrCodeInvalidDeclaration,
			fmt.Sprintf("mounting %s into %s would create a cycle", child.Name, n.Name),
			map[string]any{"namespace": n.Name, "child": child.Name})
	}
	if child.mounted {
		return errors.NewWithContext(errors.ErrCodeInvalidDeclaration,
			fmt.Sprintf("%s is already mounted", child.Name),
			map[string]any{"namespace": n.Name, "child": child.Name})
	}
	if err := n.claim(child.Name); err != nil {
		return err
	}
	child.mounted = true
	n.members = append(n.members, Member{ns: child})
	return nil
}

// MustMount is a convenience function that panics on mount error.
func (n *Namespace) MustMount(child *Namespace) {
	if err := n.Mount(child); err != nil {
		panic(err)
	}
}

// Members returns the direct members in registration order.
func (n *Namespace) Members() []Member {
	out := make([]Member, len(n.members))
	copy(out, n.members)
	return out
}

// Lookup returns the direct member called name.
func (n *Namespace) Lookup(name string) (Member, bool) {
	i, ok := n.index[name]
	if !ok {
		return Member{}, false
	}
	return n.members[i], true
}

// Count returns the number of direct members.
func (n *Namespace) Count() int {
	return len(n.members)
}

// IsEmpty returns true if the namespace exposes no members.
func (n *Namespace) IsEmpty() bool {
	return n.Count() == 0
}

func (n *Namespace) claim(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewWithContext(errors.ErrCodeInvalidDeclaration,
			fmt.Sprintf("member of %s has no name", n.Name),
			map[string]any{"namespace": n.Name})
	}
	if n.index == nil {
		n.index = make(map[string]int)
	}
	if _, exists := n.index[name]; exists {
		return errors.NewWithContext(errors.ErrCodeInvalidDeclaration,
			fmt.Sprintf("%s already registered in %s", name, n.Name),
			map[string]any{"namespace": n.Name, "member": name})
	}
	n.index[name] = len(n.members)
	return nil
}

func (n *Namespace) contains(target *Namespace) bool {
	for _, m := range n.members {
		if m.ns == nil {
			continue
		}
		if m.ns == target || m.ns.contains(target) {
			return true
		}
	}
	return false
}
