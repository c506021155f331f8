package metar

import (
	"github.com/vatsimnerd/rwyselect"
)

type Config struct {
	// BatchURL serves one METAR per line for a whole country prefix.
	BatchURL string `yaml:"batch_url,omitempty"`
	// StationURL is a format string with a %s placeholder for the ICAO code
	// of a single station.
	StationURL string `yaml:"station_url,omitempty"`
	// Stations not covered by the batch URL, fetched one by one.
	Stations []string `yaml:"stations,omitempty"`

	Fetch rwyselect.FetchConfig `yaml:"fetch,omitempty"`
}
