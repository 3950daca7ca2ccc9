package nagplug

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Metric contains a single performance value.
type Metric struct {
	Name     string
	Value    float64
	Unit     string
	Warning  *Range // threshold emitted in the warn slot
	Critical *Range // threshold emitted in the crit slot
	Min      *float64
	Max      *float64
}

// String renders the metric in the perfdata format
// label=value[;warn[;crit[;min[;max]]]] with trailing semicolons stripped.
// Labels containing spaces or quotes are single quoted.
func (m *Metric) String() string {
	var res bytes.Buffer

	name := m.Name
	if strings.ContainsAny(name, " '=") {
		name = fmt.Sprintf("'%s'", strings.ReplaceAll(name, "'", "''"))
	}
	res.WriteString(fmt.Sprintf("%s=%s%s", name, formatNum(m.Value), m.Unit))

	res.WriteString(";")
	if m.Warning != nil {
		res.WriteString(m.Warning.String())
	}

	res.WriteString(";")
	if m.Critical != nil {
		res.WriteString(m.Critical.String())
	}

	res.WriteString(";")
	if m.Min != nil {
		res.WriteString(formatNum(*m.Min))
	}

	res.WriteString(";")
	if m.Max != nil {
		res.WriteString(formatNum(*m.Max))
	}

	resStr := res.String()
	// strip trailing semicolons
	for strings.HasSuffix(resStr, ";") {
		resStr = strings.TrimSuffix(resStr, ";")
	}

	return resStr
}

// MarshalJSON renders the metric with thresholds as range strings.
func (m *Metric) MarshalJSON() ([]byte, error) {
	out := struct {
		Name     string   `json:"name"`
		Value    float64  `json:"value"`
		Unit     string   `json:"unit,omitempty"`
		Warning  string   `json:"warning,omitempty"`
		Critical string   `json:"critical,omitempty"`
		Min      *float64 `json:"min,omitempty"`
		Max      *float64 `json:"max,omitempty"`
	}{
		Name:  m.Name,
		Value: m.Value,
		Unit:  m.Unit,
		Min:   m.Min,
		Max:   m.Max,
	}
	if m.Warning != nil {
		out.Warning = m.Warning.String()
	}
	if m.Critical != nil {
		out.Critical = m.Critical.String()
	}

	return json.Marshal(&out)
}

// formatNum formats a float without trailing zeros, integral values come
// out without a decimal point.
func formatNum(num float64) string {
	return strconv.FormatFloat(num, 'f', -1, 64)
}

// Response is the result of a single check run.
type Response struct {
	Status  Status
	Message string
	Metrics []*Metric
}

// NewResponse creates a Response with the given status and message.
func NewResponse(status Status, message string) *Response {
	return &Response{
		Status:  status,
		Message: message,
	}
}

// AddPerfData appends one performance data entry. Entries are emitted in
// insertion order, repeated names are allowed.
func (r *Response) AddPerfData(metric *Metric) {
	r.Metrics = append(r.Metrics, metric)
}

// AddMetric appends a performance data entry with name and value only.
func (r *Response) AddMetric(name string, value float64) {
	r.AddPerfData(&Metric{Name: name, Value: value})
}

// Render builds the plugin output line:
// STATUS_TEXT[: message][ | perf1 perf2 ...]
func (r *Response) Render() string {
	output := r.Status.String()
	if r.Message != "" {
		output += ": " + r.Message
	}
	if len(r.Metrics) > 0 {
		perf := make([]string, 0, len(r.Metrics))
		for _, m := range r.Metrics {
			perf = append(perf, m.String())
		}
		output += " | " + strings.Join(perf, " ")
	}

	return output
}

// RenderJSON returns the response as a JSON document for consumers that
// want structured output instead of the plugin line.
func (r *Response) RenderJSON() ([]byte, error) {
	out := struct {
		Status   string    `json:"status"`
		ExitCode int       `json:"exit_code"`
		Message  string    `json:"message,omitempty"`
		PerfData []*Metric `json:"perfdata,omitempty"`
	}{
		Status:   r.Status.String(),
		ExitCode: r.Status.ExitCode(),
		Message:  r.Message,
		PerfData: r.Metrics,
	}

	return json.Marshal(&out)
}

// ExitCode returns the process exit code matching the response status.
func (r *Response) ExitCode() int {
	return r.Status.ExitCode()
}

// Exit prints the rendered output line to stdout and terminates the
// process with the matching Nagios exit code.
func (r *Response) Exit() {
	fmt.Fprintln(os.Stdout, r.Render())
	os.Exit(r.ExitCode())
}
