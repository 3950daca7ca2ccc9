package nagplug

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Range implements the Nagios threshold range format:
// https://www.monitoring-plugins.org/doc/guidelines.html#THRESHOLDFORMAT
//
// A range describes the interval of values considered acceptable. A plain
// range alerts on values outside [start, end], a range with a leading @
// alerts on values inside it.
type Range struct {
	input    string
	start    float64
	end      float64
	inverted bool
}

var (
	regexDigit       = `(-?\d+(?:\.\d+)?)`
	regexEndOnly     = regexp.MustCompile(fmt.Sprintf(`^%s$`, regexDigit))
	regexStartToInf  = regexp.MustCompile(fmt.Sprintf(`^%s:$`, regexDigit))
	regexNegInfToEnd = regexp.MustCompile(fmt.Sprintf(`^~:%s$`, regexDigit))
	regexStartToEnd  = regexp.MustCompile(fmt.Sprintf(`^%s:%s$`, regexDigit, regexDigit))
	regexUnboundBoth = regexp.MustCompile(`^~:$`)

	// ErrStartAfterEnd is returned when the lower bound exceeds the upper bound.
	ErrStartAfterEnd = errors.New("start must not be greater than end")
)

// RangeError is returned for threshold definitions that do not parse.
type RangeError struct {
	Input  string
	Reason string
	cause  error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range %q: %s", e.Input, e.Reason)
}

func (e *RangeError) Unwrap() error {
	return e.cause
}

// ParseRange constructs a Range from its string definition, returns a Range
// if possible else nil and a *RangeError.
func ParseRange(def string) (*Range, error) {
	raw := strings.TrimSpace(def)
	expr := raw
	inverted := false
	if strings.HasPrefix(expr, "@") {
		inverted = true
		expr = strings.TrimPrefix(expr, "@")
	}
	if expr == "" {
		return nil, &RangeError{Input: raw, Reason: "empty range given"}
	}
	if expr == ":" {
		return nil, &RangeError{Input: raw, Reason: "range has neither start nor end"}
	}
	if endOnly := regexEndOnly.FindStringSubmatch(expr); len(endOnly) == 2 {
		if end, err := strconv.ParseFloat(endOnly[1], 64); err == nil {
			// start defaults to 0 here, so a negative end violates start <= end
			if end < 0 {
				return nil, &RangeError{Input: raw, Reason: ErrStartAfterEnd.Error(), cause: ErrStartAfterEnd}
			}

			return &Range{input: raw, start: 0, end: end, inverted: inverted}, nil
		}
	}
	if startToInf := regexStartToInf.FindStringSubmatch(expr); len(startToInf) == 2 {
		if start, err := strconv.ParseFloat(startToInf[1], 64); err == nil {
			return &Range{input: raw, start: start, end: math.Inf(1), inverted: inverted}, nil
		}
	}
	if negInfToEnd := regexNegInfToEnd.FindStringSubmatch(expr); len(negInfToEnd) == 2 {
		if end, err := strconv.ParseFloat(negInfToEnd[1], 64); err == nil {
			return &Range{input: raw, start: math.Inf(-1), end: end, inverted: inverted}, nil
		}
	}
	if regexUnboundBoth.MatchString(expr) {
		return &Range{input: raw, start: math.Inf(-1), end: math.Inf(1), inverted: inverted}, nil
	}
	if startToEnd := regexStartToEnd.FindStringSubmatch(expr); len(startToEnd) == 3 {
		start, err := strconv.ParseFloat(startToEnd[1], 64)
		if err != nil {
			return nil, &RangeError{Input: raw, Reason: err.Error(), cause: err}
		}
		end, err := strconv.ParseFloat(startToEnd[2], 64)
		if err != nil {
			return nil, &RangeError{Input: raw, Reason: err.Error(), cause: err}
		}
		if start > end {
			return nil, &RangeError{Input: raw, Reason: ErrStartAfterEnd.Error(), cause: ErrStartAfterEnd}
		}

		return &Range{input: raw, start: start, end: end, inverted: inverted}, nil
	}

	return nil, &RangeError{Input: raw, Reason: "range syntax not supported"}
}

// String returns the original range definition.
func (r *Range) String() string {
	return r.input
}

// Start returns the lower bound, math.Inf(-1) for a `~` start.
func (r *Range) Start() float64 {
	return r.start
}

// End returns the upper bound, math.Inf(1) when the end was omitted.
func (r *Range) End() float64 {
	return r.end
}

// Inverted reports whether the range carried a leading @.
func (r *Range) Inverted() bool {
	return r.inverted
}

// InRange reports whether the given value raises an alert for this range.
// true: value violates the threshold
// false: value is acceptable
func (r *Range) InRange(value float64) bool {
	outside := value < r.start || value > r.end
	if r.inverted {
		return !outside
	}

	return outside
}
