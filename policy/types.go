package policy

import (
	"fmt"
	"strings"
)

// Rule identifies which branch of the selection procedure produced a
// Selection.
type Rule int

const (
	// RuleDefault applies when no usable observation exists: the preferred
	// runway, or the first-listed one.
	RuleDefault Rule = iota
	// RuleOverride is the hub-airport parallel configuration chosen by the
	// decision provider.
	RuleOverride
	// RuleVariableWind applies when the wind has a speed but no direction.
	RuleVariableWind
	// RuleDirectional is the normal best-headwind selection.
	RuleDirectional
	// RuleFallback applies when every heading exceeds the crosswind limit
	// and the least-crosswind heading is taken instead.
	RuleFallback
)

// Mode is how a pair of parallel runways is apportioned between arrivals
// and departures.
type Mode string

const (
	ModeMixed      Mode = "MPO"
	ModeSegregated Mode = "SPO"
	ModeSingle     Mode = "SRO"
)

// Selection is the outcome for one airport: one runway designator, or a
// pair plus an operating mode for the hub airport. Rationale explains the
// choice; Notify marks rationales the operator should see.
type Selection struct {
	Runways   []string
	Mode      Mode
	Rule      Rule
	Rationale string
	Notify    bool
}

// Single returns the designator of a single-runway selection.
func (s Selection) Single() string {
	return s.Runways[0]
}

// Pair reports whether the selection names more than one runway.
func (s Selection) Pair() bool {
	return len(s.Runways) > 1
}

// ParallelConfig is one of the fixed hub-airport runway configurations.
type ParallelConfig struct {
	Runways []string
	Mode    Mode
}

// Split returns the arrival and departure runway lists for the
// configuration. In segregated mode the R-suffixed runway of the family
// always takes arrivals.
func (c ParallelConfig) Split() (arr, dep []string) {
	switch c.Mode {
	case ModeMixed:
		return c.Runways, c.Runways
	case ModeSegregated:
		for _, ident := range c.Runways {
			if strings.HasSuffix(ident, "R") {
				arr = append(arr, ident)
			} else {
				dep = append(dep, ident)
			}
		}
		return arr, dep
	default:
		return c.Runways[:1], c.Runways[:1]
	}
}

// Label renders the configuration the way it appears in the operator
// prompt.
func (c ParallelConfig) Label() string {
	family := strings.TrimRight(c.Runways[0], "LRC")
	switch c.Mode {
	case ModeMixed:
		return fmt.Sprintf("%s MPO (Mixed Parallel Operations)", family)
	case ModeSegregated:
		arr, dep := c.Split()
		return fmt.Sprintf("%s SPO (Segregated Parallel Operations - %s DEP, %s ARR)", family, dep[0], arr[0])
	default:
		return fmt.Sprintf("%s SRO (Single Runway Operations - %s)", family, c.Runways[0])
	}
}
