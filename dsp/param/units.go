package param

import (
	"fmt"
	"strconv"
	"strings"
)

// MinMillisecondsInput is the smallest bare number [ParseMilliseconds]
// treats as milliseconds; smaller bare numbers are read as seconds.
const MinMillisecondsInput = 5.0

// FormatDecibels formats a dB value with one decimal, e.g. "-3.0dB".
func FormatDecibels(db float64) string {
	return strconv.FormatFloat(db, 'f', 1, 64) + "dB"
}

// FormatPercent formats a 0..100 value as a whole percentage, e.g. "50%".
func FormatPercent(value float64) string {
	return strconv.Itoa(int(value)) + "%"
}

// FormatHz formats a frequency: whole hertz below 1 kHz, kHz above.
func FormatHz(hz float64) string {
	switch {
	case hz < 1000:
		return strconv.Itoa(int(hz)) + "Hz"
	case hz < 10000:
		return strconv.FormatFloat(hz/1000, 'f', 2, 64) + "kHz"
	default:
		return strconv.FormatFloat(hz/1000, 'f', 1, 64) + "kHz"
	}
}

// FormatMilliseconds formats a duration in milliseconds, switching to
// seconds at 1000 ms.
func FormatMilliseconds(ms float64) string {
	switch {
	case ms < 10:
		return strconv.FormatFloat(ms, 'f', 2, 64) + "ms"
	case ms < 100:
		return strconv.FormatFloat(ms, 'f', 1, 64) + "ms"
	case ms < 1000:
		return strconv.Itoa(int(ms)) + "ms"
	default:
		return strconv.FormatFloat(ms*0.001, 'f', 2, 64) + "s"
	}
}

// ParseDecibels parses "3", "-6.5dB" or "1.5 db".
func ParseDecibels(s string) (float64, error) {
	num, _ := trimUnit(s, "db")
	return parseNumber(num, "decibels", s)
}

// ParsePercent parses "50", "50%" or "50 %".
func ParsePercent(s string) (float64, error) {
	num, _ := trimUnit(s, "%")
	return parseNumber(num, "percent", s)
}

// ParseHz parses "75", "75Hz" or "1.2kHz". Bare numbers below 20 are taken
// as kilohertz.
func ParseHz(s string) (float64, error) {
	if num, ok := trimUnit(s, "khz"); ok {
		v, err := parseNumber(num, "frequency", s)
		return v * 1000, err
	}

	num, hasUnit := trimUnit(s, "hz")
	v, err := parseNumber(num, "frequency", s)
	if err != nil {
		return 0, err
	}
	if !hasUnit && v < 20 {
		return v * 1000, nil
	}
	return v, nil
}

// ParseMilliseconds parses "20", "20ms" or "1.5s". Bare numbers below
// [MinMillisecondsInput] are taken as seconds.
func ParseMilliseconds(s string) (float64, error) {
	if num, ok := trimUnit(s, "ms"); ok {
		return parseNumber(num, "milliseconds", s)
	}

	num, hasSeconds := trimUnit(s, "s")
	v, err := parseNumber(num, "milliseconds", s)
	if err != nil {
		return 0, err
	}
	if hasSeconds || v < MinMillisecondsInput {
		return v * 1000, nil
	}
	return v, nil
}

func trimUnit(s, unit string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) >= len(unit) && strings.EqualFold(s[len(s)-len(unit):], unit) {
		return strings.TrimSpace(s[:len(s)-len(unit)]), true
	}
	return s, false
}

func parseNumber(num, kind, orig string) (float64, error) {
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", kind, orig, err)
	}
	return v, nil
}
