// Package checks contains the built in check plugins shipped with the
// nagplug library. Each check registers itself in Available, the
// checkplug binary uses that map to build its subcommands.
package checks

import (
	"github.com/consol-monitoring/nagplug"
)

// Entry describes one built in check.
type Entry struct {
	Name        string
	Description string
	New         func(*nagplug.Plugin) nagplug.Checker
}

// Available lists the built in checks by name.
var Available = map[string]Entry{}
