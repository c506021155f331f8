package metar

import (
	"fmt"
	"regexp"
	"strconv"
)

// The wind group is a 3-digit direction or the VRB marker, a 2-3 digit
// speed and the knots unit, e.g. "20015KT" or "VRB03KT".
var windExpr = regexp.MustCompile(`(VRB|\d{3})(\d{2,3})KT`)

var errNoWindGroup = fmt.Errorf("no wind group found")

// ParseWind extracts the wind group from a raw METAR. Reports without a
// recognizable wind group yield an error; callers treat that the same as
// having no observation at all.
func ParseWind(raw string) (*Wind, error) {
	m := windExpr.FindStringSubmatch(raw)
	if m == nil {
		return nil, errNoWindGroup
	}

	speed, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("invalid wind speed '%s'", m[2])
	}

	w := &Wind{Speed: speed, Raw: raw}
	if m[1] != "VRB" {
		dir, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("invalid wind direction '%s'", m[1])
		}
		w.Dir = &dir
	}
	return w, nil
}
