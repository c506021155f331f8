package catalog

import (
	"strconv"
	"strings"
)

// Number returns the numeric value of a runway designator with any L/R/C
// suffix stripped, e.g. "19L" -> 19.
func Number(ident string) (int, error) {
	return strconv.Atoi(strings.TrimRight(ident, "LRC"))
}
