package nagplug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	for _, data := range []struct {
		status   Status
		exitCode int
		text     string
	}{
		{OK, 0, "OK"},
		{Warning, 1, "WARN"},
		{Critical, 2, "CRIT"},
		{Unknown, 3, "UNKNOWN"},
	} {
		assert.Equalf(t, data.exitCode, data.status.ExitCode(), "exit code for %s", data.text)
		assert.Equalf(t, data.text, data.status.String(), "display text for %s", data.text)
	}
}
