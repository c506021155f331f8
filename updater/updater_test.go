package updater

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vatsimnerd/rwyselect/metar"
	"github.com/vatsimnerd/rwyselect/policy"
	"github.com/vatsimnerd/rwyselect/rwyfile"
)

const testCatalog = `[RUNWAY]
18  36  177 357 N058.52.36.000 E005.37.05.000 N058.54.04.000 E005.37.42.000 ENZV Stavanger
10  28  100 280 N058.52.48.000 E005.36.07.000 N058.52.29.000 E005.38.47.000 ENZV Stavanger
17  35  166 346 N060.18.16.000 E005.13.26.000 N060.16.44.000 E005.13.49.000 ENBR Bergen
01L 19R 013 193 N060.11.06.000 E011.04.25.000 N060.12.47.000 E011.05.29.000 ENGM Gardermoen
01R 19L 013 193 N060.10.47.000 E011.06.33.000 N060.12.15.000 E011.07.28.000 ENGM Gardermoen
12  30  118 298 N059.23.05.000 E010.47.11.000 N059.22.41.000 E010.48.45.000 ENRY Rygge
18  36  176 356 N059.10.32.000 E009.33.44.000 N059.11.29.000 E009.33.57.000 ENRE Reserved
14  32  138 318 N061.15.27.000 E012.50.25.000 N061.16.33.000 E012.51.41.000 ESKS Scandinavian Mountains
`

const testBatch = `ENZV 221250Z 20020KT 9999 FEW014 SCT021 08/06 Q1002 NOSIG
ENGM 221250Z VRB05KT 9999 FEW030 02/M02 Q1013
ENRY 221250Z CAVOK 12/08 Q1015
`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/EN", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testBatch)
	})
	mux.HandleFunc("/metar.php", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s 221250Z 12008KT CAVOK 03/M01 Q1008", r.URL.Query().Get("id"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testRun(t *testing.T) string {
	t.Helper()

	srv := testServer(t)
	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "runway.txt")
	if err := os.WriteFile(catalogPath, []byte(testCatalog), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	rwyPath := filepath.Join(dir, "norway.rwy")
	if err := os.WriteFile(rwyPath, []byte("ENGM_ARR:01R\nENGM_DEP:01L\n"), 0644); err != nil {
		t.Fatalf("write rwy file: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Catalog = catalogPath
	cfg.Metar = metar.Config{
		BatchURL:   srv.URL + "/EN",
		StationURL: srv.URL + "/metar.php?id=%s",
		Stations:   []string{"ESKS"},
	}
	cfg.Store = rwyfile.Config{Dir: dir}

	selector, err := policy.NewFixedSelector(3)
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	if err := New(cfg, selector).Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(rwyPath)
	if err != nil {
		t.Fatalf("read rwy file: %v", err)
	}
	return string(data)
}

func TestRun(t *testing.T) {
	content := testRun(t)

	// hub airport with variable wind: configuration 3 is 19 segregated
	if !strings.Contains(content, "ENGM_ARR:19R") {
		t.Errorf("missing hub arrival record:\n%s", content)
	}
	if !strings.Contains(content, "ENGM_DEP:19L") {
		t.Errorf("missing hub departure record:\n%s", content)
	}

	// steady southerly wind at the two-family airport favors 18
	if !strings.Contains(content, "ACTIVE_RUNWAY:ENZV:18:1") ||
		!strings.Contains(content, "ACTIVE_RUNWAY:ENZV:18:0") {
		t.Errorf("missing ENZV records:\n%s", content)
	}

	// no METAR for ENBR: preferred runway takes over
	if !strings.Contains(content, "ACTIVE_RUNWAY:ENBR:17:1") {
		t.Errorf("missing ENBR preferred-runway record:\n%s", content)
	}

	// METAR without a wind group degrades to the preferred runway too
	if !strings.Contains(content, "ACTIVE_RUNWAY:ENRY:30:1") {
		t.Errorf("missing ENRY record:\n%s", content)
	}

	// station outside the batch prefix is fetched separately
	if !strings.Contains(content, "ACTIVE_RUNWAY:ESKS:14:1") {
		t.Errorf("missing ESKS record:\n%s", content)
	}

	// ignored airports are never written, catalog entry or not
	if strings.Contains(content, "ENRE") {
		t.Errorf("ignored airport written:\n%s", content)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	first := testRun(t)
	second := testRun(t)
	if first != second {
		t.Errorf("passes differ:\n%s\nvs:\n%s", first, second)
	}
}

func TestRunNoTargetFiles(t *testing.T) {
	srv := testServer(t)
	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "runway.txt")
	if err := os.WriteFile(catalogPath, []byte(testCatalog), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Catalog = catalogPath
	cfg.Metar.BatchURL = srv.URL + "/EN"
	cfg.Metar.Stations = nil
	cfg.Store = rwyfile.Config{Dir: dir}

	selector, _ := policy.NewFixedSelector(1)
	if err := New(cfg, selector).Run(); err == nil {
		t.Error("expected error when no runway files exist")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
catalog: /tmp/custom.txt
metar:
  batch_url: http://localhost:9999/EN
  fetch:
    timeout: 10s
airports:
  preferred:
    ENBR: "35"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog != "/tmp/custom.txt" {
		t.Errorf("catalog override lost, got %s", cfg.Catalog)
	}
	if cfg.Metar.BatchURL != "http://localhost:9999/EN" {
		t.Errorf("batch url override lost, got %s", cfg.Metar.BatchURL)
	}
	if cfg.Metar.Fetch.Timeout.Std().Seconds() != 10 {
		t.Errorf("timeout override lost, got %v", cfg.Metar.Fetch.Timeout.Std())
	}
	if cfg.Airports.Preferred["ENBR"] != "35" {
		t.Errorf("preferred override lost, got %s", cfg.Airports.Preferred["ENBR"])
	}
	// untouched defaults survive
	if cfg.Airports.Hub != "ENGM" {
		t.Errorf("hub default lost, got %s", cfg.Airports.Hub)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Airports.Hub != "ENGM" || cfg.Airports.Alternate != "ENZV" {
		t.Errorf("unexpected special airports %s/%s", cfg.Airports.Hub, cfg.Airports.Alternate)
	}
	if len(cfg.Airports.Preferred) != 32 {
		t.Errorf("expected 32 preferred runways, got %d", len(cfg.Airports.Preferred))
	}
	if len(cfg.Airports.Ignored) != 9 {
		t.Errorf("expected 9 ignored airports, got %d", len(cfg.Airports.Ignored))
	}
}
