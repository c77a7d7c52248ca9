package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/lni/dragonboat/v4/logger"
)

// Packages whose loggers are configured by InitLoggers
var packages = []string{"persist", "cmd"}

// level names as accepted in a log level spec and as printed in a log line
var levels = []struct {
	level logger.LogLevel
	names []string
}{
	{logger.DEBUG, []string{"debug"}},
	{logger.INFO, []string{"info"}},
	{logger.NOTICE, []string{"notice"}},
	{logger.WARNING, []string{"warn", "warning"}},
	{logger.ERROR, []string{"error"}},
}

func levelName(level logger.LogLevel) string {
	if level == logger.CRITICAL {
		return "CRIT"
	}
	for _, l := range levels {
		if l.level == level {
			return strings.ToUpper(l.names[0])
		}
	}
	return fmt.Sprintf("L%d", level)
}

// --------------------------------------------------------------------------
// Logger (implements dragonboats logger.ILogger)
// --------------------------------------------------------------------------

// pkgLogger writes the lines of a single package with a "[pkg] LEVEL" prefix
type pkgLogger struct {
	pkg   string
	level logger.LogLevel
	out   *log.Logger
}

func newLogger(pkg string, w io.Writer) *pkgLogger {
	return &pkgLogger{
		pkg:   pkg,
		level: logger.WARNING,
		out:   log.New(w, "", log.Ldate|log.Ltime|log.Lmsgprefix),
	}
}

func (l *pkgLogger) SetLevel(level logger.LogLevel) { l.level = level }

func (l *pkgLogger) Debugf(format string, args ...interface{})   { l.logf(logger.DEBUG, format, args) }
func (l *pkgLogger) Infof(format string, args ...interface{})    { l.logf(logger.INFO, format, args) }
func (l *pkgLogger) Warningf(format string, args ...interface{}) { l.logf(logger.WARNING, format, args) }
func (l *pkgLogger) Errorf(format string, args ...interface{})   { l.logf(logger.ERROR, format, args) }

// Panicf always panics, the line is written first if the level allows it
func (l *pkgLogger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.logf(logger.CRITICAL, "%s", []interface{}{msg})
	panic(msg)
}

func (l *pkgLogger) logf(level logger.LogLevel, format string, args []interface{}) {
	if l.level < level {
		return
	}
	l.out.Printf("[%s] %-5s %s", l.pkg, levelName(level), fmt.Sprintf(format, args...))
}

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// CreateLogger implements the logger.Factory interface.
// Log lines go to stderr so they never mix with records printed on stdout.
func CreateLogger(pkgName string) logger.ILogger {
	return newLogger(pkgName, os.Stderr)
}

// --------------------------------------------------------------------------
// Level specs
// --------------------------------------------------------------------------

// ParseLogLevel converts a single level name to logger.LogLevel
func ParseLogLevel(name string) (logger.LogLevel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, l := range levels {
		if slices.Contains(l.names, name) {
			return l.level, nil
		}
	}
	return 0, fmt.Errorf("invalid log level: %q. must be one of debug, info, notice, warn, error", name)
}

// ParseLogLevels resolves a level spec to the level of every configured package.
//
// A spec is a comma separated list of entries. A bare level ("info") sets the
// default, "pkg=level" overrides a single package:
//
//	warn
//	info,persist=debug
//	cmd=error
//
// Packages not named in the spec get the default, which is warn unless the
// spec sets one. Unknown packages and repeated entries are rejected.
func ParseLogLevels(spec string) (map[string]logger.LogLevel, error) {
	def := logger.WARNING
	overrides := make(map[string]logger.LogLevel)
	seenDefault := false

	for _, entry := range strings.Split(spec, ",") {
		pkg, name, scoped := strings.Cut(strings.TrimSpace(entry), "=")
		if !scoped {
			name, pkg = pkg, ""
		}
		pkg = strings.TrimSpace(pkg)
		level, err := ParseLogLevel(name)
		if err != nil {
			return nil, err
		}

		switch {
		case !scoped && seenDefault:
			return nil, fmt.Errorf("log level %q: default level set twice", spec)
		case !scoped:
			def, seenDefault = level, true
		case !slices.Contains(packages, pkg):
			return nil, fmt.Errorf("log level %q: unknown package %q. must be one of %s", spec, pkg, strings.Join(packages, ", "))
		default:
			if _, ok := overrides[pkg]; ok {
				return nil, fmt.Errorf("log level %q: package %q set twice", spec, pkg)
			}
			overrides[pkg] = level
		}
	}

	table := make(map[string]logger.LogLevel, len(packages))
	for _, pkg := range packages {
		table[pkg] = def
		if level, ok := overrides[pkg]; ok {
			table[pkg] = level
		}
	}
	return table, nil
}

// --------------------------------------------------------------------------
// Logger initialization
// --------------------------------------------------------------------------

var factoryOnce sync.Once

// InitLoggers installs the package logger factory and applies the level
// table of config.LogLevel
func InitLoggers(config *Config) error {
	table, err := ParseLogLevels(config.LogLevel)
	if err != nil {
		return err
	}

	factoryOnce.Do(func() {
		logger.SetLoggerFactory(CreateLogger)
	})

	for pkg, level := range table {
		logger.GetLogger(pkg).SetLevel(level)
	}
	return nil
}
