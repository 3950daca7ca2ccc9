package nagplug

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricString(t *testing.T) {
	t.Parallel()

	warn, err := ParseRange("10")
	require.NoError(t, err)
	crit, err := ParseRange("5:20")
	require.NoError(t, err)
	zero := float64(0)
	hundred := float64(100)

	for _, check := range []struct {
		metric Metric
		expect string
	}{
		{Metric{Name: "val", Value: 13, Unit: "B"}, `val=13B`},
		{Metric{Name: "val", Value: 0.5}, `val=0.5`},
		{Metric{Name: "used space", Value: 13}, `'used space'=13`},
		{Metric{Name: "val", Value: 13, Warning: warn}, `val=13;10`},
		{Metric{Name: "val", Value: 13, Critical: crit}, `val=13;;5:20`},
		{Metric{Name: "val", Value: 13, Warning: warn, Critical: crit}, `val=13;10;5:20`},
		{Metric{Name: "val", Value: 13, Min: &zero}, `val=13;;;0`},
		{Metric{Name: "val", Value: 13, Min: &zero, Max: &hundred}, `val=13;;;0;100`},
		{Metric{Name: "val", Value: 13, Warning: warn, Critical: crit, Min: &zero, Max: &hundred}, `val=13;10;5:20;0;100`},
	} {
		res := check.metric.String()
		assert.Equalf(t, check.expect, res, "Metric.String() ->> %s", res)
	}
}

func TestResponseRender(t *testing.T) {
	t.Parallel()

	res := NewResponse(OK, "")
	assert.Equal(t, "OK", res.Render(), "status only, no trailing separator")

	res = NewResponse(Critical, "out of disk")
	assert.Equal(t, "CRIT: out of disk", res.Render())

	res = NewResponse(Warning, "load high")
	res.AddMetric("load1", 5.2)
	res.AddMetric("load5", 3)
	res.AddMetric("load1", 5.2) // repeated labels are kept
	assert.Equal(t, "WARN: load high | load1=5.2 load5=3 load1=5.2", res.Render(), "perfdata keeps insertion order")

	res = NewResponse(OK, "")
	res.AddMetric("uptime", 1234)
	assert.Equal(t, "OK | uptime=1234", res.Render(), "perfdata without message")
}

func TestResponseExitCode(t *testing.T) {
	t.Parallel()

	for _, data := range []struct {
		status Status
		code   int
	}{
		{OK, 0},
		{Warning, 1},
		{Critical, 2},
		{Unknown, 3},
	} {
		res := NewResponse(data.status, "some message")
		res.AddMetric("val", 42)
		assert.Equalf(t, data.code, res.ExitCode(), "exit code for %s", data.status)
	}
}

func TestResponseRenderJSON(t *testing.T) {
	t.Parallel()

	warn, err := ParseRange("80")
	require.NoError(t, err)

	res := NewResponse(Warning, "memory at 85%")
	res.AddPerfData(&Metric{Name: "used", Value: 85, Unit: "%", Warning: warn})

	raw, err := res.RenderJSON()
	require.NoError(t, err)

	parsed := struct {
		Status   string `json:"status"`
		ExitCode int    `json:"exit_code"`
		Message  string `json:"message"`
		PerfData []struct {
			Name    string  `json:"name"`
			Value   float64 `json:"value"`
			Unit    string  `json:"unit"`
			Warning string  `json:"warning"`
		} `json:"perfdata"`
	}{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "WARN", parsed.Status)
	assert.Equal(t, 1, parsed.ExitCode)
	assert.Equal(t, "memory at 85%", parsed.Message)
	require.Len(t, parsed.PerfData, 1)
	assert.Equal(t, "used", parsed.PerfData[0].Name)
	assert.Equal(t, "80", parsed.PerfData[0].Warning)
}
