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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/sigcli/pkg/errors"
	"github.com/NVIDIA/sigcli/pkg/signature"
	"github.com/NVIDIA/sigcli/pkg/value"
)

// Format is a manifest encoding.
type Format string

const (
	// FormatYAML is YAML; JSON documents decode through it as well.
	FormatYAML Format = "yaml"
	// FormatTOML is TOML.
	FormatTOML Format = "toml"
)

// Variadic markers accepted in a manifest parameter's "variadic" field.
const (
	variadicPositional = "positional"
	variadicKeyword    = "keyword"
)

// manifestNode is a namespace when Handler is empty, otherwise a callable.
type manifestNode struct {
	Name     string          `yaml:"name" toml:"name"`
	Doc      string          `yaml:"doc" toml:"doc"`
	Handler  string          `yaml:"handler" toml:"handler"`
	Params   []manifestParam `yaml:"params" toml:"params"`
	Commands []manifestNode  `yaml:"commands" toml:"commands"`
}

type manifestParam struct {
	Name        string `yaml:"name" toml:"name"`
	Type        string `yaml:"type" toml:"type"`
	Default     any    `yaml:"default" toml:"default"`
	KeywordOnly *bool  `yaml:"keyword_only" toml:"keyword_only"`
	Variadic    string `yaml:"variadic" toml:"variadic"`
}

// FormatFromPath picks a manifest format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown manifest extension %q", filepath.Ext(path))
	}
}

// LoadManifestFile reads a manifest from path, choosing the format by extension.
func LoadManifestFile(path string, handlers map[string]signature.Handler) (*Namespace, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDeclaration, "unsupported manifest", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDeclaration,
			fmt.Sprintf("failed to open manifest %q", path), err)
	}
	defer f.Close()
	return LoadManifest(f, format, handlers)
}

// LoadManifest decodes a namespace tree and binds every callable to the
// handler named by its "handler" field.
func LoadManifest(r io.Reader, format Format, handlers map[string]signature.Handler) (*Namespace, error) {
	var root manifestNode
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&root); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDeclaration, "failed to decode YAML manifest", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&root)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDeclaration, "failed to decode TOML manifest", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidDeclaration,
				fmt.Sprintf("unknown manifest key %q", undecoded[0].String()),
				map[string]any{"key": undecoded[0].String()})
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidDeclaration,
			fmt.Sprintf("unsupported manifest format %q", format))
	}

	if root.Handler != "" {
		return nil, errors.New(errors.ErrCodeInvalidDeclaration, "manifest root must be a namespace")
	}
	return buildNamespace(root, handlers)
}

func buildNamespace(node manifestNode, handlers map[string]signature.Handler) (*Namespace, error) {
	if len(node.Params) > 0 {
		return nil, manifestError(node.Name, "", "a namespace cannot declare params; set handler to make it a command")
	}
	ns := New(node.Name, node.Doc)
	for _, child := range node.Commands {
		if child.Handler == "" {
			sub, err := buildNamespace(child, handlers)
			if err != nil {
				return nil, err
			}
			if err := ns.Mount(sub); err != nil {
				return nil, err
			}
			continue
		}
		fn, err := buildFunc(child, handlers)
		if err != nil {
			return nil, err
		}
		if err := ns.Register(fn); err != nil {
			return nil, err
		}
	}
	return ns, nil
}

func buildFunc(node manifestNode, handlers map[string]signature.Handler) (signature.Func, error) {
	if len(node.Commands) > 0 {
		return signature.Func{}, manifestError(node.Name, "", "a command with a handler cannot have subcommands")
	}
	call, ok := handlers[node.Handler]
	if !ok {
		return signature.Func{}, manifestError(node.Name, "", fmt.Sprintf("no handler registered as %q", node.Handler))
	}

	fn := signature.Func{
		Name: node.Name,
		Doc:  node.Doc,
		Call: call,
	}
	keywordOnly := false
	for _, mp := range node.Params {
		switch {
		case mp.KeywordOnly == nil:
		case *mp.KeywordOnly && !keywordOnly:
			fn.Params = append(fn.Params, signature.KeywordOnly())
			keywordOnly = true
		case !*mp.KeywordOnly && keywordOnly:
			return signature.Func{}, manifestError(node.Name, mp.Name, "positional parameter follows a keyword-only one")
		}

		switch mp.Variadic {
		case "":
		case variadicPositional:
			fn.Params = append(fn.Params, signature.VarArgs(mp.Name))
			continue
		case variadicKeyword:
			fn.Params = append(fn.Params, signature.VarKwargs(mp.Name))
			continue
		default:
			return signature.Func{}, manifestError(node.Name, mp.Name, fmt.Sprintf("unknown variadic kind %q", mp.Variadic))
		}

		p := signature.Arg(mp.Name)
		if mp.Type != "" {
			t, err := value.ParseType(mp.Type)
			if err != nil {
				return signature.Func{}, errors.WrapWithContext(errors.ErrCodeUnsupportedType,
					fmt.Sprintf("cannot create CLI for %s - unhandled type %s for arg (%s)", node.Name, mp.Type, mp.Name),
					err, map[string]any{"callable": node.Name, "parameter": mp.Name, "type": mp.Type})
			}
			p = p.Typed(t)
		}
		if mp.Default != nil {
			v, err := value.FromAny(mp.Default)
			if err != nil {
				return signature.Func{}, errors.WrapWithContext(errors.ErrCodeUnsupportedType,
					fmt.Sprintf("cannot create CLI for %s - unhandled default for arg (%s)", node.Name, mp.Name),
					err, map[string]any{"callable": node.Name, "parameter": mp.Name})
			}
			p = p.WithDefault(coerceDefault(p.Type, v))
		}
		fn.Params = append(fn.Params, p)
	}
	return fn, nil
}

// coerceDefault lets whole-number defaults satisfy a declared float type,
// since both YAML and TOML decode "3" as an integer.
func coerceDefault(declared value.Type, v value.Value) value.Value {
	if declared == value.Float && v.Type() == value.Int {
		return value.FloatOf(float64(v.Int()))
	}
	return v
}

func manifestError(fnName, param, msg string) error {
	ctx := map[string]any{"callable": fnName}
	if param != "" {
		ctx["parameter"] = param
	}
	return errors.NewWithContext(errors.ErrCodeInvalidDeclaration,
		fmt.Sprintf("manifest entry %s: %s", fnName, msg), ctx)
}
