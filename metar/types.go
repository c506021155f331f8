package metar

import "strings"

// Wind is the wind group of a single METAR. Dir is nil for variable ("VRB")
// winds, otherwise a heading in degrees. Raw keeps the complete report for
// condition checks downstream.
type Wind struct {
	Dir   *int
	Speed int
	Raw   string
}

func (w *Wind) Variable() bool {
	return w.Dir == nil
}

// HasFreezingFog reports whether the raw METAR carries the FZFG code.
func (w *Wind) HasFreezingFog() bool {
	return strings.Contains(w.Raw, "FZFG")
}
