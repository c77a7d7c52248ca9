// Package cmd implements the command-line interface of ridesnap. It provides
// commands to write the sample company and to inspect saved files.
//
// The package is organized into several subpackages:
//
//   - demo: Writes the sample company and its trip
//   - inspect: Prints the records of a saved file as JSON or YAML
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See ridesnap -help for a list of all commands.
package cmd
