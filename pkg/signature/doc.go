// Package signature declares callables for CLI exposure and compiles their
// parameter lists into descriptors.
//
// A callable is registered with an explicit parameter list instead of being
// discovered at runtime:
//
//	fn := signature.Func{
//	    Name: "combo",
//	    Doc:  "Combo docstring.",
//	    Params: []signature.Param{
//	        signature.Arg("first").Typed(value.Int),
//	        signature.Arg("second").WithDefault(value.FloatOf(2.4)),
//	        signature.KeywordOnly(),
//	        signature.Arg("third").Typed(value.String),
//	        signature.Arg("fourth").WithDefault(value.StringOf("default 3")),
//	    },
//	    Call: combo,
//	}
//
// Parameters before KeywordOnly are positional; parameters after it are
// options. Types are the declared type, else the default's type, else string.
// Boolean options defaulting to true are exposed as --not-<name>.
package signature
