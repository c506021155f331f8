package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "catalog")

// Catalog holds the runways of every known airport, preserving the order
// airports first appear in the file.
type Catalog struct {
	icaos   []string
	runways map[string][]*Runway
}

// Airports returns the ICAO codes in catalog order.
func (c *Catalog) Airports() []string {
	return c.icaos
}

// Runways returns an airport's runways in catalog order, nil for unknown
// airports.
func (c *Catalog) Runways(icao string) []*Runway {
	return c.runways[icao]
}

func Load(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data), nil
}

// Parse reads a sector-file runway section. Section headers (leading
// bracket), comments and malformed lines are skipped.
func Parse(data []byte) *Catalog {
	c := &Catalog{runways: make(map[string][]*Runway)}

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())

		if len(line) == 0 || line[0] == '[' || line[0] == ';' {
			continue
		}

		rwy, err := parseRunway(line)
		if err != nil {
			log.WithError(err).WithField("line", lineNum).Debug("skipping runway line")
			continue
		}

		if _, found := c.runways[rwy.ICAO]; !found {
			c.icaos = append(c.icaos, rwy.ICAO)
		}
		c.runways[rwy.ICAO] = append(c.runways[rwy.ICAO], rwy)
	}

	return c
}

func parseRunway(line string) (*Runway, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 9 {
		return nil, fmt.Errorf("invalid runway line '%s'", line)
	}

	hdg1, err := strconv.Atoi(tokens[2])
	if err != nil {
		return nil, fmt.Errorf("invalid runway heading '%s'", tokens[2])
	}
	hdg2, err := strconv.Atoi(tokens[3])
	if err != nil {
		return nil, fmt.Errorf("invalid runway heading '%s'", tokens[3])
	}

	rwy := &Runway{
		Ident1: tokens[0],
		Ident2: tokens[1],
		Hdg1:   hdg1,
		Hdg2:   hdg2,
		ICAO:   tokens[8],
	}

	// Threshold coordinates are kept when present but a runway line is
	// still usable without them.
	if pos, err := parsePoint(tokens[4], tokens[5]); err == nil {
		rwy.Pos1 = pos
	}
	if pos, err := parsePoint(tokens[6], tokens[7]); err == nil {
		rwy.Pos2 = pos
	}

	return rwy, nil
}

func parsePoint(latField, lngField string) (orb.Point, error) {
	lat, err := parseDMS(latField)
	if err != nil {
		return orb.Point{}, err
	}
	lng, err := parseDMS(lngField)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{lng, lat}, nil
}

// parseDMS converts a sector-file coordinate like N060.17.14.000 to decimal
// degrees.
func parseDMS(field string) (float64, error) {
	if len(field) < 2 {
		return 0, fmt.Errorf("invalid coordinate '%s'", field)
	}

	var sign float64
	switch field[0] {
	case 'N', 'E':
		sign = 1
	case 'S', 'W':
		sign = -1
	default:
		return 0, fmt.Errorf("invalid coordinate '%s'", field)
	}

	parts := strings.SplitN(field[1:], ".", 3)
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid coordinate '%s'", field)
	}

	deg, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate '%s'", field)
	}
	min, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate '%s'", field)
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate '%s'", field)
	}

	return sign * (deg + min/60 + sec/3600), nil
}
