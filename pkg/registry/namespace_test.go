package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/sigcli/pkg/errors"
	"github.com/NVIDIA/sigcli/pkg/signature"
)

func noop(context.Context, signature.Args) error { return nil }

func TestNamespaceRegistrationOrder(t *testing.T) {
	root := New("root", "Root doc.")
	require.NoError(t, root.Register(signature.Func{Name: "zeta", Call: noop}))
	require.NoError(t, root.Mount(New("alpha", "")))
	require.NoError(t, root.Register(signature.Func{Name: "beta", Call: noop}))

	var names []string
	for _, m := range root.Members() {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"zeta", "alpha", "beta"}, names)
	assert.Equal(t, 3, root.Count())
	assert.False(t, root.IsEmpty())

	m, ok := root.Lookup("alpha")
	require.True(t, ok)
	ns, isNS := m.Namespace()
	assert.True(t, isNS)
	assert.Equal(t, "alpha", ns.Name)
	_, isFn := m.Func()
	assert.False(t, isFn)

	m, ok = root.Lookup("beta")
	require.True(t, ok)
	fn, isFn := m.Func()
	assert.True(t, isFn)
	assert.Equal(t, "beta", fn.Name)

	_, ok = root.Lookup("missing")
	assert.False(t, ok)
}

func TestNamespaceRejects(t *testing.T) {
	t.Run("duplicate member", func(t *testing.T) {
		ns := New("ns", "")
		require.NoError(t, ns.Register(signature.Func{Name: "a", Call: noop}))
		err := ns.Mount(New("a", ""))
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidDeclaration))
	})

	t.Run("empty name", func(t *testing.T) {
		err := New("ns", "").Register(signature.Func{Call: noop})
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidDeclaration))
	})

	t.Run("nil child", func(t *testing.T) {
		err := New("ns", "").Mount(nil)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidDeclaration))
	})

	t.Run("self mount", func(t *testing.T) {
		ns := New("ns", "")
		assert.True(t, errors.Is(ns.Mount(ns), errors.ErrCodeInvalidDeclaration))
	})

	t.Run("cycle", func(t *testing.T) {
		parent := New("parent", "")
		child := New("child", "")
		require.NoError(t, parent.Mount(child))
		assert.True(t, errors.Is(child.Mount(parent), errors.ErrCodeInvalidDeclaration))
	})

	t.Run("shared child", func(t *testing.T) {
		shared := New("shared", "")
		require.NoError(t, New("a", "").Mount(shared))
		assert.True(t, errors.Is(New("b", "").Mount(shared), errors.ErrCodeInvalidDeclaration))
	})
}

func TestMustRegisterPanics(t *testing.T) {
	ns := New("ns", "")
	ns.MustRegister(signature.Func{Name: "a", Call: noop})
	assert.Panics(t, func() { ns.MustRegister(signature.Func{Name: "a", Call: noop}) })
	assert.Panics(t, func() { ns.MustMount(ns) })
}

func TestMembersIsACopy(t *testing.T) {
	ns := New("ns", "")
	ns.MustRegister(signature.Func{Name: "a", Call: noop})

	members := ns.Members()
	members[0] = Member{}

	assert.Equal(t, "a", ns.Members()[0].Name())
}
