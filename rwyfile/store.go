package rwyfile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vatsimnerd/rwyselect/policy"
)

var log = logrus.WithField("module", "rwyfile")

type Config struct {
	// Dir is searched non-recursively for runway files.
	Dir string `yaml:"dir,omitempty"`
	// Pattern is the glob matched against file names, "*.rwy" by default.
	Pattern string `yaml:"pattern,omitempty"`
}

// Store rewrites active-runway records in a set of EuroScope runway files.
// Every write goes to every file.
type Store struct {
	files []string
}

// Discover finds the runway files to update. Finding none is an error: with
// no targets there is nothing meaningful left to do.
func Discover(cfg *Config) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = "*.rwy"
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", pattern, dir)
	}

	sort.Strings(matches)
	log.WithField("files", matches).Debug("runway files discovered")
	return &Store{files: matches}, nil
}

func (s *Store) Files() []string {
	return s.files
}

// SetActive replaces the ACTIVE_RUNWAY records for an airport in every
// file: stale records for the airport are removed, then one departure (1)
// and one arrival (0) record are written.
func (s *Store) SetActive(icao, ident string) error {
	for _, file := range s.files {
		if err := updateActive(file, icao, ident); err != nil {
			return fmt.Errorf("update %s: %w", file, err)
		}
	}
	return nil
}

// SetParallel writes the hub airport's arrival and departure records
// according to the chosen parallel configuration.
func (s *Store) SetParallel(hub string, cfg policy.ParallelConfig) error {
	for _, file := range s.files {
		if err := updateParallel(file, hub, cfg); err != nil {
			return fmt.Errorf("update %s: %w", file, err)
		}
	}
	return nil
}

func updateActive(filename, icao, ident string) error {
	lines, err := readLines(filename)
	if err != nil {
		return err
	}

	prefix := fmt.Sprintf("ACTIVE_RUNWAY:%s:", icao)
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			continue
		}
		kept = append(kept, line)
	}

	kept = append(kept,
		fmt.Sprintf("ACTIVE_RUNWAY:%s:%s:1", icao, ident),
		fmt.Sprintf("ACTIVE_RUNWAY:%s:%s:0", icao, ident),
	)

	return writeLines(filename, kept)
}

func updateParallel(filename, hub string, cfg policy.ParallelConfig) error {
	lines, err := readLines(filename)
	if err != nil {
		return err
	}

	arr, dep := cfg.Split()
	arrPrefix := hub + "_ARR:"
	depPrefix := hub + "_DEP:"
	arrLine := arrPrefix + strings.Join(arr, ",")
	depLine := depPrefix + strings.Join(dep, ",")

	arrSeen, depSeen := false, false
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, arrPrefix):
			lines[i] = arrLine
			arrSeen = true
		case strings.HasPrefix(line, depPrefix):
			lines[i] = depLine
			depSeen = true
		}
	}
	if !arrSeen {
		lines = append(lines, arrLine)
	}
	if !depSeen {
		lines = append(lines, depLine)
	}

	return writeLines(filename, lines)
}

func readLines(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, 64)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, nil
}

func writeLines(filename string, lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}
