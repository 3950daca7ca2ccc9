package checks

import (
	"context"
	"fmt"

	"github.com/consol-monitoring/nagplug"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/spf13/pflag"
)

func init() {
	Available["check_load"] = Entry{
		Name:        "check_load",
		Description: "Checks the cpu load metrics.",
		New:         NewLoadCheck,
	}
}

// LoadCheck compares the 1 minute load average against the warning and
// critical ranges. With --percpu all averages are divided by the number
// of cpus first.
type LoadCheck struct {
	plugin *nagplug.Plugin
	perCPU bool
}

// NewLoadCheck creates a LoadCheck bound to the given plugin.
func NewLoadCheck(plugin *nagplug.Plugin) nagplug.Checker {
	return &LoadCheck{plugin: plugin}
}

func (l *LoadCheck) BindFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&l.perCPU, "percpu", "r", false, "divide the load averages by the number of cpus")
}

func (l *LoadCheck) Check() (*nagplug.Response, error) {
	ctx, cancel := l.plugin.TimeoutContext(context.Background())
	defer cancel()

	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("load.Avg: %s", err.Error())
	}

	load1, load5, load15 := avg.Load1, avg.Load5, avg.Load15
	if l.perCPU {
		cores, err := cpu.CountsWithContext(ctx, true)
		if err != nil {
			return nil, fmt.Errorf("cpu.Counts: %s", err.Error())
		}
		load1 /= float64(cores)
		load5 /= float64(cores)
		load15 /= float64(cores)
	}

	res := l.plugin.ResponseForValue(load1, fmt.Sprintf("load average: %.2f, %.2f, %.2f", load1, load5, load15))
	zero := float64(0)
	res.AddPerfData(&nagplug.Metric{Name: "load1", Value: load1, Warning: l.plugin.Warning(), Critical: l.plugin.Critical(), Min: &zero})
	res.AddPerfData(&nagplug.Metric{Name: "load5", Value: load5, Min: &zero})
	res.AddPerfData(&nagplug.Metric{Name: "load15", Value: load15, Min: &zero})

	return res, nil
}
