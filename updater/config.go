package updater

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vatsimnerd/rwyselect/metar"
	"github.com/vatsimnerd/rwyselect/policy"
	"github.com/vatsimnerd/rwyselect/rwyfile"
)

type Config struct {
	Catalog  string         `yaml:"catalog,omitempty"`
	Metar    metar.Config   `yaml:"metar,omitempty"`
	Store    rwyfile.Config `yaml:"store,omitempty"`
	Airports policy.Config  `yaml:"airports,omitempty"`
}

// DefaultConfig returns the configuration the tool ships with: the
// Norwegian VATSIM setup it was built for.
func DefaultConfig() *Config {
	return &Config{
		Catalog: "runway.txt",
		Metar: metar.Config{
			BatchURL:   "https://metar.vatsim.net/EN",
			StationURL: "https://metar.vatsim.net/metar.php?id=%s",
			Stations:   []string{"ESKS"},
		},
		Store: rwyfile.Config{
			Dir:     ".",
			Pattern: "*.rwy",
		},
		Airports: policy.Config{
			Hub:       "ENGM",
			Alternate: "ENZV",
			Preferred: map[string]string{
				"ENBR": "17",
				"ENTO": "18",
				"ENRY": "30",
				"ENZV": "18",
				"ENHD": "13",
				"ENAL": "24",
				"ENML": "07",
				"ENKB": "07",
				"ENVA": "09",
				"ENBO": "07",
				"ENTC": "18",
				"ENCN": "21",
				"ENRO": "31",
				"ENSG": "24",
				"ENFL": "07",
				"ENEV": "17",
				"ENDU": "28",
				"ENAT": "11",
				"ENNA": "34",
				"ENKR": "24",
				"ENSB": "09",
				"ENNO": "12",
				"ENSD": "26",
				"ENSO": "14",
				"ENMS": "33",
				"ENBN": "03",
				"ENST": "20",
				"ENRA": "31",
				"ENLK": "02",
				"ENSH": "36",
				"ENAN": "14",
				"ENOL": "15",
			},
			Ignored: []string{
				"ENRE", "ENGK", "ENLI", "ENKJ", "ENHA",
				"ENEG", "ENJA", "ENBM", "ENAX",
			},
		},
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("yaml parse: %w", err)
	}
	return cfg, nil
}
