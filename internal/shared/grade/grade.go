package grade

import (
	"strconv"
	"strings"
)

// System is one of the four grading systems routes are recorded in.
// Grades are opaque outside their own system; there is no cross-system
// conversion.
type System string

const (
	SystemYDS    System = "yds"
	SystemFrench System = "french"
	SystemVScale System = "v_scale"
	SystemUIAA   System = "uiaa"
)

var ydsLabels = []string{
	"5.0", "5.1", "5.2", "5.3", "5.4", "5.5", "5.6", "5.7", "5.8", "5.9",
	"5.10a", "5.10b", "5.10c", "5.10d",
	"5.11a", "5.11b", "5.11c", "5.11d",
	"5.12a", "5.12b", "5.12c", "5.12d",
	"5.13a", "5.13b", "5.13c", "5.13d",
	"5.14a", "5.14b", "5.14c", "5.14d",
	"5.15a", "5.15b", "5.15c", "5.15d",
}

var frenchLabels = []string{
	"1", "2", "3",
	"4a", "4b", "4c", "5a", "5b", "5c",
	"6a", "6a+", "6b", "6b+", "6c", "6c+",
	"7a", "7a+", "7b", "7b+", "7c", "7c+",
	"8a", "8a+", "8b", "8b+", "8c", "8c+",
	"9a", "9a+", "9b", "9b+", "9c",
}

var vScaleLabels = []string{
	"VB", "V0", "V1", "V2", "V3", "V4", "V5", "V6", "V7", "V8", "V9",
	"V10", "V11", "V12", "V13", "V14", "V15", "V16", "V17",
}

var uiaaLabels = []string{
	"I", "I+",
	"II-", "II", "II+", "III-", "III", "III+", "IV-", "IV", "IV+",
	"V-", "V", "V+", "VI-", "VI", "VI+", "VII-", "VII", "VII+",
	"VIII-", "VIII", "VIII+", "IX-", "IX", "IX+", "X-", "X", "X+",
	"XI-", "XI", "XI+", "XII-", "XII",
}

var systemLabels = map[System][]string{
	SystemYDS:    ydsLabels,
	SystemFrench: frenchLabels,
	SystemVScale: vScaleLabels,
	SystemUIAA:   uiaaLabels,
}

var ordinals = buildOrdinals()

func buildOrdinals() map[System]map[string]int {
	out := map[System]map[string]int{}
	for system, labels := range systemLabels {
		m := make(map[string]int, len(labels))
		for i, label := range labels {
			m[strings.ToLower(label)] = i
		}
		out[system] = m
	}
	return out
}

// Ordinal returns the position of label within its system's canonical
// difficulty sequence. The second return is false for unknown labels.
func Ordinal(system System, label string) (int, bool) {
	m, ok := ordinals[system]
	if !ok {
		return 0, false
	}
	pos, ok := m[strings.ToLower(strings.TrimSpace(label))]
	return pos, ok
}

// Labels returns the canonical ordered label list for a system,
// easiest first.
func Labels(system System) []string {
	labels := systemLabels[system]
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

func Systems() []System {
	return []System{SystemYDS, SystemFrench, SystemVScale, SystemUIAA}
}

// NaiveNumeric extracts a numeric difficulty from a raw grade label by
// stripping everything except digits and dots, then parsing as a float.
// Letter and +/- suffixes are lost, so "5.10a" and "5.10d" collapse to
// the same value. Known-lossy; kept for compatibility with the numbers
// users already see on their progression charts. Returns 0 when nothing
// parseable remains.
func NaiveNumeric(label string) float64 {
	var b strings.Builder
	for _, r := range label {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
