package checks

import (
	"context"
	"fmt"

	"github.com/consol-monitoring/nagplug"
	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/mem"
)

func init() {
	Available["check_memory"] = Entry{
		Name:        "check_memory",
		Description: "Checks the physical memory usage in percent.",
		New:         NewMemoryCheck,
	}
}

// MemoryCheck compares the used percentage of physical memory against
// the warning and critical ranges.
type MemoryCheck struct {
	plugin *nagplug.Plugin
}

// NewMemoryCheck creates a MemoryCheck bound to the given plugin.
func NewMemoryCheck(plugin *nagplug.Plugin) nagplug.Checker {
	return &MemoryCheck{plugin: plugin}
}

func (m *MemoryCheck) Check() (*nagplug.Response, error) {
	ctx, cancel := m.plugin.TimeoutContext(context.Background())
	defer cancel()

	physical, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("mem.VirtualMemory: %s", err.Error())
	}

	usedPct := physical.UsedPercent
	message := fmt.Sprintf("physical memory %s used of %s (%.1f%%)",
		humanize.IBytes(physical.Used), humanize.IBytes(physical.Total), usedPct)

	res := m.plugin.ResponseForValue(usedPct, message)
	zero := float64(0)
	hundred := float64(100)
	maxBytes := float64(physical.Total)
	res.AddPerfData(&nagplug.Metric{
		Name:     "used_pct",
		Value:    usedPct,
		Unit:     "%",
		Warning:  m.plugin.Warning(),
		Critical: m.plugin.Critical(),
		Min:      &zero,
		Max:      &hundred,
	})
	res.AddPerfData(&nagplug.Metric{Name: "used", Value: float64(physical.Used), Unit: "B", Min: &zero, Max: &maxBytes})

	return res, nil
}
