// Package command compiles registered callables and namespaces into an
// immutable tree of command nodes.
//
// Leaves wrap one callable and carry its parameter descriptors; branches wrap
// a namespace and route a leading token to the matching child, displaying
// help when there is none. The tree is engine independent: the
// engine package declares it to urfave/cli and routes parsed values back into
// Node.Invoke.
//
//	root, err := command.CompileNamespace(ns)
//	if err != nil {
//	    return err // no partial tree is usable
//	}
//	err = root.Invoke(ctx, []string{"foo", "typed", "5"}, nil)
package command
