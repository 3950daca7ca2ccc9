package nagplug

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
)

// ExitCodeArgError is used when command line parsing fails. It is outside
// the Nagios status codes on purpose so a monitoring system never mistakes
// a usage error for a check result.
const ExitCodeArgError = 4

// Checker runs the actual check logic of a concrete plugin. Implementing
// it is mandatory, the framework has no default.
type Checker interface {
	Check() (*Response, error)
}

// FlagBinder registers plugin specific flags on the shared flag set.
// A concrete plugin implements it to extend the base command line
// contract, a plugin built on top of another one chains the base's
// BindFlags from its own.
type FlagBinder interface {
	BindFlags(flags *pflag.FlagSet)
}

// Plugin carries the command line contract shared by all check plugins:
// -H/--hostname, -w/--warning, -c/--critical, -t/--timeout and -v.
type Plugin struct {
	name    string
	version string
	flags   *pflag.FlagSet

	hostname    string
	warning     *Range
	critical    *Range
	timeout     int
	verbose     int
	showVersion bool
}

// rangeValue adapts ParseRange to the pflag.Value interface so the
// threshold flags take the Nagios range syntax directly. Malformed input
// surfaces through the normal flag error path naming flag and value.
type rangeValue struct {
	target **Range
}

func (v *rangeValue) Set(def string) error {
	parsed, err := ParseRange(def)
	if err != nil {
		return err
	}
	*v.target = parsed

	return nil
}

func (v *rangeValue) String() string {
	if *v.target == nil {
		return ""
	}

	return (*v.target).String()
}

func (v *rangeValue) Type() string {
	return "range"
}

// NewPlugin creates a Plugin with the base contract flags registered.
func NewPlugin(name, version string) *Plugin {
	p := &Plugin{
		name:    name,
		version: version,
	}

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SortFlags = false
	flags.StringVarP(&p.hostname, "hostname", "H", "", "host address this check targets")
	flags.VarP(&rangeValue{target: &p.warning}, "warning", "w", "warning threshold (Nagios range syntax)")
	flags.VarP(&rangeValue{target: &p.critical}, "critical", "c", "critical threshold (Nagios range syntax)")
	flags.IntVarP(&p.timeout, "timeout", "t", 0, "timeout in seconds for the check logic")
	flags.CountVarP(&p.verbose, "verbose", "v", "increase loglevel, -vv means debug, -vvv means trace")
	flags.BoolVarP(&p.showVersion, "version", "V", false, "print version and exit")
	p.flags = flags

	return p
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return p.name
}

// Flags exposes the shared flag set so concrete plugins can register
// their own options next to the inherited ones, or read the remaining
// positional arguments after parsing.
func (p *Plugin) Flags() *pflag.FlagSet {
	return p.flags
}

// Hostname returns the parsed -H value, empty if not given.
func (p *Plugin) Hostname() string {
	return p.hostname
}

// Warning returns the parsed -w range, nil if not given.
func (p *Plugin) Warning() *Range {
	return p.warning
}

// Critical returns the parsed -c range, nil if not given.
func (p *Plugin) Critical() *Range {
	return p.critical
}

// Timeout returns the parsed -t value in seconds, 0 if not given. The
// framework does not enforce it, the check logic applies it itself, see
// TimeoutContext.
func (p *Plugin) Timeout() int {
	return p.timeout
}

// Verbosity returns the number of -v flags given.
func (p *Plugin) Verbosity() int {
	return p.verbose
}

// ParseArgs binds the given binders onto the shared flag set and parses
// the command line, typically os.Args[1:]. Binders run in order, so a
// derived plugin exposes the union of its own and its bases' options.
func (p *Plugin) ParseArgs(args []string, binders ...FlagBinder) error {
	for _, b := range binders {
		b.BindFlags(p.flags)
	}
	if err := p.flags.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", p.name, err)
	}
	setLogVerbosity(p.verbose)
	log.Debugf("%s: options parsed, warning=%s critical=%s", p.name, p.warning, p.critical)

	return nil
}

// ResponseForValue classifies the measured value against the ranges from
// the command line. The critical range is checked first, so critical wins
// whenever both ranges alert. Without any range the result is OK.
func (p *Plugin) ResponseForValue(value float64, message string) *Response {
	status := OK
	switch {
	case p.critical != nil && p.critical.InRange(value):
		status = Critical
	case p.warning != nil && p.warning.InRange(value):
		status = Warning
	}
	log.Tracef("%s: value %v -> %s", p.name, value, status)

	return NewResponse(status, message)
}

// TimeoutContext derives a context carrying the deadline from the -t
// flag. With no timeout set the context is merely cancelable. The check
// logic is expected to pass it to whatever it probes.
func (p *Plugin) TimeoutContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, time.Duration(p.timeout)*time.Second)
}

// Run drives a complete plugin invocation: parse the command line, run
// the check, print the output line and exit with the Nagios exit code.
// Argument errors go to stderr and exit with ExitCodeArgError before the
// check ever runs. A Checker returning an error results in UNKNOWN.
func (p *Plugin) Run(check Checker) {
	p.RunArgs(check, os.Args[1:])
}

// RunArgs is Run with explicit arguments, used when a plugin is embedded
// as a subcommand of a larger binary.
func (p *Plugin) RunArgs(check Checker, args []string) {
	os.Exit(p.runArgs(check, args, os.Stdout, os.Stderr))
}

// runArgs holds the complete invocation state machine and returns the
// process exit code, so it can be driven against buffers in tests.
func (p *Plugin) runArgs(check Checker, args []string, stdout, stderr io.Writer) int {
	var binders []FlagBinder
	if b, ok := check.(FlagBinder); ok {
		binders = append(binders, b)
	}
	if err := p.ParseArgs(args, binders...); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitCodeOK
		}
		fmt.Fprintln(stderr, err)

		return ExitCodeArgError
	}
	if p.showVersion {
		fmt.Fprintf(stdout, "%s v%s\n", p.name, p.version)

		return ExitCodeOK
	}

	resp, err := check.Check()
	if err != nil {
		log.Debugf("%s: check failed: %s", p.name, err.Error())
		resp = NewResponse(Unknown, err.Error())
	}
	fmt.Fprintln(stdout, resp.Render())

	return resp.ExitCode()
}
