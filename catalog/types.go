package catalog

import "github.com/paulmach/orb"

type (
	// Runway is one physical strip with its two usable directions. The
	// second heading is the reciprocal of the first; both are taken from
	// the catalog as published integers. Threshold positions are kept when
	// the catalog line carries parseable coordinates, otherwise they stay
	// zero.
	Runway struct {
		Ident1 string
		Ident2 string
		Hdg1   int
		Hdg2   int
		Pos1   orb.Point
		Pos2   orb.Point
		ICAO   string
	}

	// End is one usable direction of a runway.
	End struct {
		Ident string
		Hdg   int
	}
)

func (r *Runway) Ends() [2]End {
	return [2]End{{r.Ident1, r.Hdg1}, {r.Ident2, r.Hdg2}}
}
