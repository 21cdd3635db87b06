// Package cli is the process boundary of a sigcli binary.
//
// Execute compiles a registered namespace, declares it to the parsing engine,
// runs it once against os.Args and maps the outcome to an exit status:
//
//	0  the selected leaf ran, or help/version/grammar was printed
//	1  compilation or parsing failed; stderr carries "Parsing error: <msg>"
//	2  the run was interrupted by SIGINT or SIGTERM
//
// Root flags:
//
//	--log-level LEVEL    debug, info, warn or error (env LOG_LEVEL, default info)
//	--metrics-file PATH  write Prometheus metrics in textfile format on exit
//	                     (env SIGCLI_METRICS_FILE)
//	--grammar FORMAT     print the compiled grammar as json, yaml or table
//	--grammar-output P   write the grammar to P instead of stdout
//	--version            print the build version
//
// Build metadata is injected with ldflags:
//
//	go build -ldflags "-X github.com/NVIDIA/sigcli/pkg/cli.version=v1.0.0"
package cli
