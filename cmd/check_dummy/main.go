package main

import (
	"github.com/consol-monitoring/nagplug"
	"github.com/consol-monitoring/nagplug/checks"
)

// Version contains the plugin version
// compile passing -ldflags "-X main.Version=<version>" to set it.
var Version = "0.1.0"

func main() {
	plugin := nagplug.NewPlugin("check_dummy", Version)
	plugin.Run(checks.NewDummyCheck(plugin))
}
