package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"obiene/quotation_backend/internal/domain/quotation"
)

// ErrNotFound is returned when no record file exists for a quote number.
var ErrNotFound = errors.New("quotation not found")

const recordGlob = "quotation_*.json"

// Store persists quotation records as JSON files in a single directory,
// one file per quote number.
type Store struct {
	dir string
	log *logrus.Logger
}

func New(dir string, log *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Save writes the record to quotation_<number>.json, replacing any
// existing file of the same number. The write goes through a temp file
// and a rename so a crash never leaves a truncated record behind.
func (s *Store) Save(rec quotation.Record) (string, error) {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode quotation %s: %w", rec.QuoteNumber, err)
	}
	path := filepath.Join(s.dir, recordFile(rec.QuoteNumber))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write quotation %s: %w", rec.QuoteNumber, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("write quotation %s: %w", rec.QuoteNumber, err)
	}
	return path, nil
}

// SavePDF writes the rendered document next to its JSON record.
func (s *Store) SavePDF(number string, data []byte) (string, error) {
	path := filepath.Join(s.dir, "quotation_"+number+".pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write pdf %s: %w", number, err)
	}
	return path, nil
}

// Load reads a single record by quote number.
func (s *Store) Load(number string) (quotation.Record, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, recordFile(number)))
	if err != nil {
		if os.IsNotExist(err) {
			return quotation.Record{}, ErrNotFound
		}
		return quotation.Record{}, fmt.Errorf("read quotation %s: %w", number, err)
	}
	var rec quotation.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return quotation.Record{}, fmt.Errorf("parse quotation %s: %w", number, err)
	}
	return rec, nil
}

// LoadAll parses every record file in the directory, newest date first.
// A file that fails to read or parse is logged and skipped; one damaged
// record never hides the rest of the history.
func (s *Store) LoadAll() ([]quotation.Record, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, recordGlob))
	if err != nil {
		return nil, fmt.Errorf("scan data dir: %w", err)
	}
	records := make([]quotation.Record, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			s.log.WithError(err).Warnf("skipping %s", filepath.Base(path))
			continue
		}
		var rec quotation.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			s.log.WithError(err).Warnf("skipping %s", filepath.Base(path))
			continue
		}
		records = append(records, rec)
	}
	quotation.SortByDateDesc(records)
	return records, nil
}

// NextNumber returns one past the highest quote number already on disk,
// so a restarted session never silently overwrites an earlier record.
// An empty directory starts at 1.
func (s *Store) NextNumber() int {
	matches, err := filepath.Glob(filepath.Join(s.dir, recordGlob))
	if err != nil {
		return 1
	}
	max := 0
	for _, path := range matches {
		base := filepath.Base(path)
		raw := strings.TrimSuffix(strings.TrimPrefix(base, "quotation_"), ".json")
		n, err := strconv.Atoi(raw)
		if err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

func recordFile(number string) string {
	return "quotation_" + number + ".json"
}
