// Package registry builds the namespace tree a command line is compiled from.
//
// Namespaces are populated by explicit registration calls; the order of those
// calls is the order in which commands are listed and compiled:
//
//	foo := registry.New("foo", "Sample commands.")
//	foo.MustRegister(signature.Func{Name: "no_args", Call: noArgs})
//	root := registry.New("sigdemo", "Demo CLI.")
//	root.MustMount(foo)
//
// Trees can also be described in a YAML or TOML manifest and bound to Go
// handlers by name with LoadManifest.
package registry
