package nagplug

const (
	// ExitCodeOK is used for normal exits.
	ExitCodeOK = 0

	// ExitCodeWarning is used for warnings.
	ExitCodeWarning = 1

	// ExitCodeCritical is used for critical errors.
	ExitCodeCritical = 2

	// ExitCodeUnknown is used for when the check runs into a problem itself.
	ExitCodeUnknown = 3
)

// Status is one of the four states a check plugin can report.
type Status int

// The four states of the Nagios plugin contract. Plugin authors use these
// constants, there is never a reason to construct other values.
const (
	OK Status = iota
	Warning
	Critical
	Unknown
)

// ExitCode returns the process exit code for this status.
func (s Status) ExitCode() int {
	switch s {
	case OK:
		return ExitCodeOK
	case Warning:
		return ExitCodeWarning
	case Critical:
		return ExitCodeCritical
	}

	return ExitCodeUnknown
}

// String returns the display text used in the plugin output line.
func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARN"
	case Critical:
		return "CRIT"
	}

	return "UNKNOWN"
}
