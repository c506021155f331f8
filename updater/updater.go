package updater

import (
	"github.com/sirupsen/logrus"
	"github.com/vatsimnerd/util/set"

	"github.com/vatsimnerd/rwyselect/catalog"
	"github.com/vatsimnerd/rwyselect/metar"
	"github.com/vatsimnerd/rwyselect/policy"
	"github.com/vatsimnerd/rwyselect/rwyfile"
)

var log = logrus.WithField("module", "updater")

// Updater runs one full selection pass: load the catalog, fetch every
// METAR once, decide a selection per airport and commit it to every
// discovered runway file.
type Updater struct {
	cfg      *Config
	selector policy.ConfigSelector
}

func New(cfg *Config, selector policy.ConfigSelector) *Updater {
	return &Updater{cfg: cfg, selector: selector}
}

func (u *Updater) Run() error {
	cat, err := catalog.Load(u.cfg.Catalog)
	if err != nil {
		return err
	}

	store, err := rwyfile.Discover(&u.cfg.Store)
	if err != nil {
		// nothing to write to, nothing meaningful left to do
		return err
	}

	winds := metar.NewFeed(&u.cfg.Metar).FetchAll()
	log.WithField("stations", len(winds)).Info("wind observations fetched")

	pol := policy.New(&u.cfg.Airports, u.selector)
	ignored := set.FromList(u.cfg.Airports.Ignored)
	noData := set.New[string]()

	processed := 0
	for _, icao := range cat.Airports() {
		if ignored.Has(icao) {
			continue
		}

		runways := cat.Runways(icao)
		if len(runways) == 0 {
			continue
		}

		w := winds[icao]
		if w == nil {
			noData.Add(icao)
		}

		sel, err := pol.Select(icao, runways, w)
		if err != nil {
			log.WithError(err).WithField("icao", icao).Error("selection failed")
			continue
		}

		if sel.Mode != "" {
			err = store.SetParallel(icao, policy.ParallelConfig{Runways: sel.Runways, Mode: sel.Mode})
		} else {
			err = store.SetActive(icao, sel.Single())
		}
		if err != nil {
			return err
		}
		processed++

		entry := log.WithField("icao", icao)
		if sel.Notify {
			entry.Info(sel.Rationale)
		} else {
			entry.Debug(sel.Rationale)
		}
	}

	log.WithFields(logrus.Fields{
		"airports": processed,
		"no_data":  noData.Size(),
		"files":    len(store.Files()),
	}).Info("runway update complete")

	return nil
}
