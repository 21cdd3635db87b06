// Package engine declares a compiled command tree to github.com/urfave/cli/v3.
//
// Every branch and leaf becomes a *cli.Command. Options are declared as typed
// flags; positionals are left undeclared and handed to the binder from
// cmd.Args() at invocation time, so the engine never reorders or validates
// them. A *cli.Command satisfies binder.Options directly.
//
// A branch reached without a subcommand prints its help. The root also
// carries --version and --grammar FORMAT, which dumps the compiled tree
// to stdout or to the file named by --grammar-output.
package engine
