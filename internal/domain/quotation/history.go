package quotation

import (
	"sort"
	"strings"
	"time"
)

// Search keeps the records whose stringified fields contain term as a
// case-insensitive substring. An empty term keeps everything.
func Search(records []Record, term string) []Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.SearchText()), term) {
			out = append(out, r)
		}
	}
	return out
}

// SortByDateDesc orders records newest first. Dates are parsed in the
// stored DD-MM-YYYY layout; records with an unparseable date fall back to
// a lexicographic compare so a damaged file still sorts deterministically.
func SortByDateDesc(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, erri := time.Parse(DateFormat, records[i].Date)
		tj, errj := time.Parse(DateFormat, records[j].Date)
		if erri != nil || errj != nil {
			return records[i].Date > records[j].Date
		}
		return ti.After(tj)
	})
}
