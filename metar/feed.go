package metar

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vatsimnerd/perfetch"
)

var log = logrus.WithField("module", "metar")

const defaultTimeout = 5 * time.Second

// Feed fetches raw METARs from the VATSIM metar service.
type Feed struct {
	cfg *Config
}

func NewFeed(cfg *Config) *Feed {
	return &Feed{cfg: cfg}
}

// FetchAll returns the wind observations of every station the feed knows
// about, keyed by ICAO code. Fetch and parse failures degrade to missing
// entries, never to an error: a station without an entry simply has no
// usable observation.
func (f *Feed) FetchAll() map[string]*Wind {
	winds := make(map[string]*Wind)

	if f.cfg.BatchURL != "" {
		raw, err := f.fetchOnce(f.cfg.BatchURL)
		if err != nil {
			log.WithError(err).WithField("url", f.cfg.BatchURL).Error("error fetching metar batch")
		} else {
			f.parseBatch(raw, winds)
		}
	}

	for _, station := range f.cfg.Stations {
		url := fmt.Sprintf(f.cfg.StationURL, station)
		raw, err := f.fetchOnce(url)
		if err != nil {
			log.WithError(err).WithField("icao", station).Error("error fetching station metar")
			continue
		}
		report := strings.TrimSpace(string(raw))
		w, err := ParseWind(report)
		if err != nil {
			log.WithError(err).WithField("icao", station).Debug("unparseable metar")
			continue
		}
		winds[station] = w
	}

	return winds
}

func (f *Feed) parseBatch(raw []byte, winds map[string]*Wind) {
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		icao := strings.Fields(line)[0]
		w, err := ParseWind(line)
		if err != nil {
			log.WithError(err).WithField("icao", icao).Debug("unparseable metar")
			continue
		}
		winds[icao] = w
	}
}

// fetchOnce runs a single perfetch fetcher invocation. No poller, no
// retries: a failed fetch is reported to the caller right away.
func (f *Feed) fetchOnce(url string) ([]byte, error) {
	timeout := f.cfg.Fetch.Timeout.Std()
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return perfetch.HTTPGetFetcher(url, timeout)()
}
