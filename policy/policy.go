package policy

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vatsimnerd/rwyselect/catalog"
	"github.com/vatsimnerd/rwyselect/metar"
	"github.com/vatsimnerd/rwyselect/wind"
)

var log = logrus.WithField("module", "policy")

// Crosswind limits in knots. The general limit applies per heading across
// all airports; the family limit is the narrower threshold that moves the
// alternate airport from its primary runway family to the secondary one.
const (
	maxCrosswind       = 25.0
	maxFamilyCrosswind = 15.0
)

type Config struct {
	// Hub is the parallel-runway airport whose configuration is chosen by
	// the operator under variable wind or freezing fog.
	Hub string `yaml:"hub,omitempty"`
	// Alternate is the airport whose secondary runway family takes over
	// when crosswind on the primary family exceeds the family limit.
	Alternate string `yaml:"alternate,omitempty"`
	// Preferred maps ICAO codes to the runway used when no usable wind
	// observation exists.
	Preferred map[string]string `yaml:"preferred,omitempty"`
	// Ignored airports are skipped entirely, catalog presence or not.
	Ignored []string `yaml:"ignored,omitempty"`
}

// Policy decides which runway(s) an airport should have active.
type Policy struct {
	cfg      *Config
	selector ConfigSelector
}

func New(cfg *Config, selector ConfigSelector) *Policy {
	return &Policy{cfg: cfg, selector: selector}
}

// Select decides the active runway(s) for one airport. The runway list must
// not be empty. A nil wind stands for "no usable observation". Rules are
// evaluated in fixed precedence order; the first matching one wins.
func (p *Policy) Select(icao string, runways []*catalog.Runway, w *metar.Wind) (Selection, error) {
	if len(runways) == 0 {
		return Selection{}, fmt.Errorf("no runways for %s", icao)
	}

	if w == nil {
		return p.selectDefault(icao, runways), nil
	}

	if icao == p.cfg.Hub && (w.Variable() || w.HasFreezingFog()) {
		return p.selectHub(w)
	}

	if w.Variable() {
		return p.selectVariable(icao, runways, w), nil
	}

	if icao == p.cfg.Alternate && len(runways) >= 2 {
		return selectWithAlternate(runways, w), nil
	}

	return selectDirectional(runways, w), nil
}

func (p *Policy) selectDefault(icao string, runways []*catalog.Runway) Selection {
	if preferred, found := p.cfg.Preferred[icao]; found {
		return Selection{
			Runways:   []string{preferred},
			Rule:      RuleDefault,
			Rationale: fmt.Sprintf("no wind data available - using preferred runway %s", preferred),
			Notify:    true,
		}
	}

	ident := runways[0].Ident1
	return Selection{
		Runways:   []string{ident},
		Rule:      RuleDefault,
		Rationale: fmt.Sprintf("no wind data available - defaulting to runway %s", ident),
		Notify:    true,
	}
}

func (p *Policy) selectHub(w *metar.Wind) (Selection, error) {
	log.WithField("metar", w.Raw).Info("hub airport needs a configuration choice")

	cfg, err := p.selector.SelectConfig(w.Raw)
	if err != nil {
		return Selection{}, fmt.Errorf("hub configuration: %w", err)
	}

	return Selection{
		Runways:   cfg.Runways,
		Mode:      cfg.Mode,
		Rule:      RuleOverride,
		Rationale: fmt.Sprintf("using %s mode with runways %s", cfg.Mode, strings.Join(cfg.Runways, ", ")),
		Notify:    true,
	}, nil
}

func (p *Policy) selectVariable(icao string, runways []*catalog.Runway, w *metar.Wind) Selection {
	if preferred, found := p.cfg.Preferred[icao]; found {
		return Selection{
			Runways:   []string{preferred},
			Rule:      RuleVariableWind,
			Rationale: fmt.Sprintf("wind is %s, using preferred runway %s", w.Raw, preferred),
			Notify:    true,
		}
	}

	ident := lowestIdent(runways)
	return Selection{
		Runways:   []string{ident},
		Rule:      RuleVariableWind,
		Rationale: fmt.Sprintf("wind is %s, no preferred runway - using runway %s", w.Raw, ident),
		Notify:    true,
	}
}

// selectDirectional picks the eligible heading with the best headwind, or
// falls back to the least-crosswind heading when nothing is eligible.
func selectDirectional(runways []*catalog.Runway, w *metar.Wind) Selection {
	dir, speed := *w.Dir, w.Speed

	best := ""
	bestHeadwind := math.Inf(-1)
	for _, rwy := range runways {
		for _, end := range rwy.Ends() {
			hw, xw := wind.Components(end.Hdg, dir, speed)
			if xw > maxCrosswind {
				continue
			}
			if hw > bestHeadwind {
				best = end.Ident
				bestHeadwind = hw
			}
		}
	}

	if best == "" {
		return selectLeastCrosswind(runways, dir, speed)
	}

	return Selection{
		Runways:   []string{best},
		Rule:      RuleDirectional,
		Rationale: fmt.Sprintf("selected runway %s based on wind %d@%dKT", best, dir, speed),
	}
}

func selectLeastCrosswind(runways []*catalog.Runway, dir, speed int) Selection {
	best := ""
	minCrosswind := math.Inf(1)
	for _, rwy := range runways {
		for _, end := range rwy.Ends() {
			_, xw := wind.Components(end.Hdg, dir, speed)
			if xw < minCrosswind {
				best = end.Ident
				minCrosswind = xw
			}
		}
	}

	return Selection{
		Runways:   []string{best},
		Rule:      RuleFallback,
		Rationale: fmt.Sprintf("selected runway %s based on wind %d@%dKT", best, dir, speed),
		Notify:    true,
	}
}

// selectWithAlternate handles the airport with two runway families. The
// headwind picks a direction within the primary family; only when its
// crosswind exceeds the family limit does the secondary family take over,
// by the same better-headwind rule.
func selectWithAlternate(runways []*catalog.Runway, w *metar.Wind) Selection {
	dir, speed := *w.Dir, w.Speed

	primary, secondary := runways[0], runways[1]

	best, crosswind := bestFamilyEnd(primary, dir, speed)
	if crosswind > maxFamilyCrosswind {
		best, _ = bestFamilyEnd(secondary, dir, speed)
	}

	return Selection{
		Runways:   []string{best},
		Rule:      RuleDirectional,
		Rationale: fmt.Sprintf("selected runway %s based on wind %d@%dKT", best, dir, speed),
	}
}

// bestFamilyEnd returns the family direction with the better headwind and
// its crosswind.
func bestFamilyEnd(rwy *catalog.Runway, dir, speed int) (string, float64) {
	hw1, xw1 := wind.Components(rwy.Hdg1, dir, speed)
	hw2, xw2 := wind.Components(rwy.Hdg2, dir, speed)
	if hw1 > hw2 {
		return rwy.Ident1, xw1
	}
	return rwy.Ident2, xw2
}

// lowestIdent returns the designator with the smallest numeric value across
// all runways, catalog order breaking ties.
func lowestIdent(runways []*catalog.Runway) string {
	best := ""
	bestNum := 0
	for _, rwy := range runways {
		for _, ident := range []string{rwy.Ident1, rwy.Ident2} {
			n, err := catalog.Number(ident)
			if err != nil {
				continue
			}
			if best == "" || n < bestNum {
				best = ident
				bestNum = n
			}
		}
	}
	if best == "" {
		best = runways[0].Ident1
	}
	return best
}
