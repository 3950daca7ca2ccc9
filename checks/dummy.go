package checks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consol-monitoring/nagplug"
)

func init() {
	Available["check_dummy"] = Entry{
		Name:        "check_dummy",
		Description: "Exits with the given state and outputs the remaining arguments.",
		New:         NewDummyCheck,
	}
}

// DummyCheck turns its first positional argument into the check state and
// joins the rest into the output message. Useful for testing the plugin
// pipeline end to end.
type DummyCheck struct {
	plugin *nagplug.Plugin
}

// NewDummyCheck creates a DummyCheck bound to the given plugin.
func NewDummyCheck(plugin *nagplug.Plugin) nagplug.Checker {
	return &DummyCheck{plugin: plugin}
}

func (d *DummyCheck) Check() (*nagplug.Response, error) {
	status := nagplug.OK
	message := "Dummy Check"

	args := d.plugin.Flags().Args()
	if len(args) > 0 {
		state, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("cannot parse state to int: %s", err.Error())
		}
		status = nagplug.Status(state)
	}
	if len(args) > 1 {
		message = strings.Join(args[1:], " ")
	}

	return nagplug.NewResponse(status, message), nil
}
