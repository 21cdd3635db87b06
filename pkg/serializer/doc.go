// Package serializer renders compiled command grammars in machine- and
// human-readable formats.
//
// The package supports three output formats:
//   - JSON: structured data with two-space indentation
//   - YAML: human-readable, preserves nesting
//   - Table: one FIELD/VALUE row per flattened leaf value
//
// Usage:
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, command.Describe(root)); err != nil {
//		return err
//	}
//
// Table keys follow json tag names, so "commands.[0].parameters.[1].form"
// addresses the CLI form of the second parameter of the first child.
package serializer
