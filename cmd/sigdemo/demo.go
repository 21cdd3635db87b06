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

package main

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/NVIDIA/sigcli/pkg/registry"
	"github.com/NVIDIA/sigcli/pkg/signature"
	"github.com/NVIDIA/sigcli/pkg/value"
)

//go:embed greet.yaml
var greetManifest []byte

// demo assembles the sigdemo tree: the foo fixtures declared in Go and the
// greet namespace loaded from the embedded manifest.
func demo(out io.Writer) (*registry.Namespace, error) {
	root := registry.New("sigdemo", "Demo CLI exposing sample callables.")

	if err := root.Mount(foo(out)); err != nil {
		return nil, err
	}

	greet, err := registry.LoadManifest(bytes.NewReader(greetManifest), registry.FormatYAML, greetHandlers(out))
	if err != nil {
		return nil, fmt.Errorf("failed to load greet manifest: %w", err)
	}
	if err := root.Mount(greet); err != nil {
		return nil, err
	}
	return root, nil
}

func foo(out io.Writer) *registry.Namespace {
	ns := registry.New("foo", "Sample callables covering every parameter shape.")

	ns.MustRegister(signature.Func{
		Name: "no_args",
		Call: func(context.Context, signature.Args) error {
			fmt.Fprintln(out, "foo: no args!")
			return nil
		},
	})

	ns.MustRegister(signature.Func{
		Name:   "positionals",
		Params: []signature.Param{signature.Arg("first"), signature.Arg("second"), signature.Arg("third")},
		Call:   printer(out, "foo positionals"),
	})

	ns.MustRegister(signature.Func{
		Name: "defaults",
		Params: []signature.Param{
			signature.Arg("first").WithDefault(value.StringOf("default 1")),
			signature.Arg("second").WithDefault(value.StringOf("default 2")),
			signature.Arg("third").WithDefault(value.StringOf("default 3")),
		},
		Call: printer(out, "foo defaults"),
	})

	ns.MustRegister(signature.Func{
		Name: "keyword_args",
		Params: []signature.Param{
			signature.KeywordOnly(),
			signature.Arg("first"),
			signature.Arg("second"),
			signature.Arg("third"),
		},
		Call: printer(out, "foo keyword args"),
	})

	ns.MustRegister(signature.Func{
		Name: "default_keyword_args",
		Params: []signature.Param{
			signature.KeywordOnly(),
			signature.Arg("first").WithDefault(value.StringOf("default 1")),
			signature.Arg("second").WithDefault(value.StringOf("default 2")),
			signature.Arg("third").WithDefault(value.StringOf("default 3")),
		},
		Call: printer(out, "foo default keyword args"),
	})

	ns.MustRegister(signature.Func{
		Name: "docstring",
		Doc: `
This function has a docstring.

Multi-lined, but this shouldn't show up.`,
		Call: func(context.Context, signature.Args) error {
			fmt.Fprintln(out, "foo docstring!")
			return nil
		},
	})

	ns.MustRegister(signature.Func{
		Name:   "typed",
		Params: []signature.Param{signature.Arg("first").Typed(value.Int)},
		Call: func(_ context.Context, args signature.Args) error {
			fmt.Fprintf(out, "foo typed: %d\n", args.Int("first"))
			return nil
		},
	})

	ns.MustRegister(signature.Func{
		Name: "combo",
		Doc: `
Combo docstring.

Multi-lined, but this shouldn't show up.`,
		Params: []signature.Param{
			signature.Arg("first").Typed(value.Int),
			signature.Arg("second").Typed(value.Float).WithDefault(value.FloatOf(2.4)),
			signature.KeywordOnly(),
			signature.Arg("third").Typed(value.String),
			signature.Arg("fourth").WithDefault(value.StringOf("default 3")),
		},
		Call: printer(out, "foo combo"),
	})

	return ns
}

func greetHandlers(out io.Writer) map[string]signature.Handler {
	return map[string]signature.Handler{
		"greet.hello": func(_ context.Context, args signature.Args) error {
			msg := fmt.Sprintf("hello, %s", args.String("name"))
			if args.Bool("shout") {
				msg = strings.ToUpper(msg)
			}
			for range args.Int("times") {
				fmt.Fprintln(out, msg)
			}
			return nil
		},
		"greet.sum": func(_ context.Context, args signature.Args) error {
			fmt.Fprintf(out, "%g\n", args.Float("a")+args.Float("b"))
			return nil
		},
	}
}

// printer echoes the resolved arguments in declaration order under a title.
func printer(out io.Writer, title string) signature.Handler {
	return func(_ context.Context, args signature.Args) error {
		var b strings.Builder
		b.WriteString(title + ":")
		for _, name := range args.Names() {
			v, _ := args.Get(name)
			fmt.Fprintf(&b, "\n  %s: %s", name, v)
		}
		fmt.Fprintln(out, b.String())
		return nil
	}
}
