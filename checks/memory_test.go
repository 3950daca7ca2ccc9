package checks

import (
	"regexp"
	"testing"

	"github.com/consol-monitoring/nagplug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMemory(t *testing.T) {
	t.Parallel()

	plugin := nagplug.NewPlugin("check_memory", "test")
	require.NoError(t, plugin.ParseArgs([]string{"-w", "101", "-c", "101"}))

	res, err := NewMemoryCheck(plugin).Check()
	require.NoError(t, err)
	assert.Equal(t, nagplug.OK, res.Status)

	output := res.Render()
	assert.Regexpf(t, regexp.MustCompile(`^OK: physical memory .* used of .* \(\d+\.\d%\) \| used_pct=\d+(\.\d+)?%;101;101;0;100 used=\d+B`), output, "output matches: %s", output)
}

func TestCheckMemoryCritical(t *testing.T) {
	t.Parallel()

	// any usage above -1 percent alerts
	plugin := nagplug.NewPlugin("check_memory", "test")
	require.NoError(t, plugin.ParseArgs([]string{"-c", "~:-1"}))

	res, err := NewMemoryCheck(plugin).Check()
	require.NoError(t, err)
	assert.Equal(t, nagplug.Critical, res.Status)
}
