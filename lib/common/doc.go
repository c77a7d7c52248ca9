// Package common provides the configuration and logging shared by the
// ridesnap command line tool and its libraries.
//
// Key Components:
//
//   - Config: the settings of a ridesnap invocation (data directory, file
//     names, output format, log level, metrics). Validate checks them, String
//     renders them in sections for the --verbose output.
//
//   - Logger: a logger.ILogger implementation for the Dragonboat logging
//     facade. All packages obtain their logger with logger.GetLogger(pkg);
//     InitLoggers installs this implementation and sets the configured level.
package common
