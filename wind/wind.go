package wind

import "math"

// Components resolves a wind of the given direction and speed (knots) into
// components relative to a runway heading. Headwind is signed: a negative
// value means the wind is a tailwind on that heading. Crosswind is always
// non-negative.
func Components(runwayHdg int, windDir int, windSpeed int) (headwind, crosswind float64) {
	delta := float64(windDir-runwayHdg) * math.Pi / 180
	headwind = float64(windSpeed) * math.Cos(delta)
	crosswind = math.Abs(float64(windSpeed) * math.Sin(delta))
	return headwind, crosswind
}
