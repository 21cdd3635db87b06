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

package defaults

// Generated flag names.
const (
	// InversionPrefix is prepended to boolean options that default to true.
	// Presence of the prefixed flag sets the option to false.
	InversionPrefix = "not-"

	// FlagPrefix is the command-line form of a named option.
	FlagPrefix = "--"
)

// ReservedFlagNames are claimed by the parsing engine on every command.
var ReservedFlagNames = []string{"help", "h"}

// Help text.
const (
	// CommandsHeader introduces the list of children in a branch help text.
	CommandsHeader = "Commands:"

	// HelpIndent prefixes each generated help line.
	HelpIndent = "  "
)

// Root command settings.
const (
	// VersionDefault is reported by --version when no version is injected at build time.
	VersionDefault = "dev"

	// LogLevelDefault is the level used when neither --log-level nor LOG_LEVEL is set.
	LogLevelDefault = "info"

	// EnvMetricsFile names the environment variable backing --metrics-file.
	EnvMetricsFile = "SIGCLI_METRICS_FILE"

	// ParsingErrorPrefix starts every message printed for a failed run.
	ParsingErrorPrefix = "Parsing error: "
)

// Process exit codes.
const (
	// ExitCodeError is returned for compile and parse failures.
	ExitCodeError = 1

	// ExitCodeCanceled is returned when the run is interrupted.
	ExitCodeCanceled = 2
)
