package nagplug

import (
	"os"

	"github.com/kdar/factorlog"
)

// log verbosity levels mapped from the -v count.
const (
	// LogVerbosityDefault logs errors only.
	LogVerbosityDefault = 0

	// LogVerbosityInfo is set by a single -v.
	LogVerbosityInfo = 1

	// LogVerbosityDebug is set by -vv.
	LogVerbosityDebug = 2

	// LogVerbosityTrace is set by -vvv or more.
	LogVerbosityTrace = 3
)

// LogFormat is the format of all log lines, see
// https://pkg.go.dev/github.com/kdar/factorlog for placeholders.
var LogFormat = `[%{Date} %{Time "15:04:05.000"}][%{Severity}][%{ShortFile}:%{Line}] %{Message}`

// logs go to stderr, stdout is reserved for the plugin output line
var log = factorlog.New(os.Stderr, factorlog.NewStdFormatter(LogFormat))

// Log returns the shared logger so concrete plugins can log through the
// same formatter and level as the framework.
func Log() *factorlog.FactorLog {
	return log
}

func setLogVerbosity(verbose int) {
	level := "ERROR"
	switch {
	case verbose >= LogVerbosityTrace:
		level = "TRACE"
	case verbose == LogVerbosityDebug:
		level = "DEBUG"
	case verbose == LogVerbosityInfo:
		level = "INFO"
	}
	log.SetMinMaxSeverity(factorlog.StringToSeverity(level), factorlog.StringToSeverity("PANIC"))
	log.SetVerbosity(factorlog.Level(verbose))
}
