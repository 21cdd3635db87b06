package signature

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/sigcli/pkg/errors"
	"github.com/NVIDIA/sigcli/pkg/value"
)

func noop(context.Context, Args) error { return nil }

func TestIntrospectPositionalsOnly(t *testing.T) {
	sig, err := Introspect(Func{
		Name:   "positionals",
		Params: []Param{Arg("first"), Arg("second"), Arg("third")},
		Call:   noop,
	})
	require.NoError(t, err)

	require.Len(t, sig.Params, 3)
	assert.Len(t, sig.Positionals(), 3)
	assert.Empty(t, sig.Options())
	for _, d := range sig.Params {
		assert.Equal(t, Positional, d.Kind)
		assert.Equal(t, value.String, d.Type)
		assert.True(t, d.Required())
		assert.Empty(t, d.Flag)
	}
}

func TestIntrospectTypeInference(t *testing.T) {
	sig, err := Introspect(Func{
		Name: "combo",
		Params: []Param{
			Arg("first").Typed(value.Int),
			Arg("second").WithDefault(value.FloatOf(2.4)),
			KeywordOnly(),
			Arg("third").Typed(value.String),
			Arg("fourth").WithDefault(value.StringOf("default 3")),
		},
		Call: noop,
	})
	require.NoError(t, err)

	want := []struct {
		name     string
		kind     Kind
		typ      value.Type
		required bool
		flag     string
	}{
		{"first", Positional, value.Int, true, ""},
		{"second", Positional, value.Float, false, ""},
		{"third", Option, value.String, true, "third"},
		{"fourth", Option, value.String, false, "fourth"},
	}
	require.Len(t, sig.Params, len(want))
	for i, w := range want {
		d := sig.Params[i]
		assert.Equal(t, w.name, d.Name)
		assert.Equal(t, w.kind, d.Kind, w.name)
		assert.Equal(t, w.typ, d.Type, w.name)
		assert.Equal(t, w.required, d.Required(), w.name)
		assert.Equal(t, w.flag, d.Flag, w.name)
	}
}

func TestIntrospectBoolFlags(t *testing.T) {
	sig, err := Introspect(Func{
		Name: "flags",
		Params: []Param{
			KeywordOnly(),
			Arg("restart").WithDefault(value.BoolOf(true)),
			Arg("pull").WithDefault(value.BoolOf(false)),
			Arg("force").Typed(value.Bool),
		},
		Call: noop,
	})
	require.NoError(t, err)

	restart, pull, force := sig.Params[0], sig.Params[1], sig.Params[2]

	assert.Equal(t, "not-restart", restart.Flag)
	assert.True(t, restart.Inverted())
	assert.Equal(t, "--not-restart (bool): unless set, restart will be true", restart.Help)

	assert.Equal(t, "pull", pull.Flag)
	assert.False(t, pull.Inverted())
	assert.Equal(t, "--pull (bool): default is false", pull.Help)

	assert.Equal(t, "force", force.Flag)
	assert.False(t, force.Inverted())
	assert.Equal(t, "--force (bool): required - no default", force.Help)
}

func TestIntrospectRejects(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
		code   errors.ErrorCode
	}{
		{
			name:   "bool positional",
			params: []Param{Arg("flag").Typed(value.Bool)},
			code:   errors.ErrCodeUnsupportedType,
		},
		{
			name:   "bool positional from default",
			params: []Param{Arg("flag").WithDefault(value.BoolOf(true))},
			code:   errors.ErrCodeUnsupportedType,
		},
		{
			name:   "default disagrees with declared type",
			params: []Param{Arg("n").Typed(value.Int).WithDefault(value.StringOf("x"))},
			code:   errors.ErrCodeUnsupportedType,
		},
		{
			name:   "variadic positional",
			params: []Param{VarArgs("args")},
			code:   errors.ErrCodeVariadicParameter,
		},
		{
			name:   "variadic keyword",
			params: []Param{Arg("a"), VarKwargs("kwargs")},
			code:   errors.ErrCodeVariadicParameter,
		},
		{
			name:   "double boundary",
			params: []Param{KeywordOnly(), KeywordOnly()},
			code:   errors.ErrCodeInvalidDeclaration,
		},
		{
			name:   "duplicate name",
			params: []Param{Arg("a"), KeywordOnly(), Arg("a")},
			code:   errors.ErrCodeInvalidDeclaration,
		},
		{
			name:   "empty name",
			params: []Param{Arg("")},
			code:   errors.ErrCodeInvalidDeclaration,
		},
		{
			name:   "required after defaulted positional",
			params: []Param{Arg("a").WithDefault(value.StringOf("x")), Arg("b")},
			code:   errors.ErrCodeInvalidDeclaration,
		},
		{
			name:   "reserved option name",
			params: []Param{KeywordOnly(), Arg("help")},
			code:   errors.ErrCodeInvalidDeclaration,
		},
		{
			name:   "option with inversion prefix",
			params: []Param{KeywordOnly(), Arg("not-this")},
			code:   errors.ErrCodeInvalidDeclaration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Introspect(Func{Name: "bad", Params: tt.params, Call: noop})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestIntrospectUnsupportedTypeContext(t *testing.T) {
	_, err := Introspect(Func{
		Name:   "typed",
		Params: []Param{Arg("flag").Typed(value.Bool)},
		Call:   noop,
	})

	var se *errors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "typed", se.Context["callable"])
	assert.Equal(t, "flag", se.Context["parameter"])
	assert.Equal(t, "bool", se.Context["type"])
}

func TestIntrospectMissingHandler(t *testing.T) {
	_, err := Introspect(Func{Name: "nohandler"})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidDeclaration))

	_, err = Introspect(Func{Call: noop})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidDeclaration))
}

func TestIntrospectNoParams(t *testing.T) {
	sig, err := Introspect(Func{Name: "no_args", Call: noop})
	require.NoError(t, err)
	assert.Empty(t, sig.Params)
	assert.Equal(t, "", sig.Help())
}

func TestSummary(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{"", ""},
		{"\n", ""},
		{"One liner.", "One liner."},
		{"\n    This function has a docstring.\n\n    Multi-lined, but this shouldn't show up.\n", "This function has a docstring."},
		{"  \n\t\nSecond.", "Second."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Summary(tt.doc), "doc %q", tt.doc)
	}
}

func TestHelp(t *testing.T) {
	sig, err := Introspect(Func{
		Name: "combo",
		Doc:  "Combo docstring.\n\nMulti-lined, but this shouldn't show up.",
		Params: []Param{
			Arg("first").Typed(value.Int),
			Arg("second").WithDefault(value.FloatOf(2.4)),
			KeywordOnly(),
			Arg("third").Typed(value.String),
			Arg("fourth").WithDefault(value.StringOf("default 3")),
		},
		Call: noop,
	})
	require.NoError(t, err)

	want := "Combo docstring.\n" +
		"  first (int): required - no default\n" +
		"  second (float): default is 2.4\n" +
		"  --third (string): required - no default\n" +
		"  --fourth (string): default is default 3"
	assert.Equal(t, want, sig.Help())

	undocumented, err := Introspect(Func{
		Name:   "positionals",
		Params: []Param{Arg("first"), Arg("second")},
		Call:   noop,
	})
	require.NoError(t, err)
	assert.Equal(t, "  first (string): required - no default\n  second (string): required - no default", undocumented.Help())
}

func TestArgs(t *testing.T) {
	var a Args
	a.Set("first", value.IntOf(5))
	a.Set("second", value.FloatOf(2.4))
	a.Set("third", value.StringOf("x"))
	a.Set("fourth", value.BoolOf(true))
	a.Set("first", value.IntOf(6))

	assert.Equal(t, []string{"first", "second", "third", "fourth"}, a.Names())
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, int64(6), a.Int("first"))
	assert.Equal(t, 2.4, a.Float("second"))
	assert.Equal(t, "x", a.String("third"))
	assert.True(t, a.Bool("fourth"))

	_, ok := a.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, map[string]any{
		"first": int64(6), "second": 2.4, "third": "x", "fourth": true,
	}, a.Map())
}
