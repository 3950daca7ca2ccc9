package checks

import (
	"regexp"
	"testing"

	"github.com/consol-monitoring/nagplug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLoad(t *testing.T) {
	t.Parallel()

	plugin := nagplug.NewPlugin("check_load", "test")
	check := NewLoadCheck(plugin)
	require.NoError(t, plugin.ParseArgs([]string{"-w", "0:999999", "-c", "0:999999"}, check.(nagplug.FlagBinder)))

	res, err := check.Check()
	require.NoError(t, err)
	assert.Equal(t, nagplug.OK, res.Status)

	output := res.Render()
	assert.Regexpf(t, regexp.MustCompile(`^OK: load average: \d+\.\d+, \d+\.\d+, \d+\.\d+ \| load1=`), output, "output matches: %s", output)
	require.Len(t, res.Metrics, 3)
	assert.Equal(t, "load1", res.Metrics[0].Name)
	assert.Equal(t, "load5", res.Metrics[1].Name)
	assert.Equal(t, "load15", res.Metrics[2].Name)
}

func TestCheckLoadPerCPU(t *testing.T) {
	t.Parallel()

	plugin := nagplug.NewPlugin("check_load", "test")
	check := NewLoadCheck(plugin)
	require.NoError(t, plugin.ParseArgs([]string{"--percpu"}, check.(nagplug.FlagBinder)))

	res, err := check.Check()
	require.NoError(t, err)
	// no ranges given, always OK
	assert.Equal(t, nagplug.OK, res.Status)
}
