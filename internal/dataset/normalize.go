package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/domain/worldcup"
)

// teamRenames maps source team names to the names the map widget recognizes.
var teamRenames = map[string]string{
	"England": "United Kingdom",
}

// Normalize returns a copy of records with display renames applied.
func Normalize(records []worldcup.CountryRecord) []worldcup.CountryRecord {
	out := make([]worldcup.CountryRecord, len(records))
	for i, rec := range records {
		if renamed, ok := teamRenames[rec.Team]; ok {
			rec.Team = renamed
		}
		out[i] = rec
	}
	return out
}

// ParseWinners coerces a count cell. Empty, sentinel, NaN and infinite values report absent.
func ParseWinners(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false
	}
	return val, true
}

// WinsSubset keeps records with a present, positive Winners count, in input order.
func WinsSubset(records []worldcup.CountryRecord) []worldcup.WinsEntry {
	out := make([]worldcup.WinsEntry, 0, len(records))
	for _, rec := range records {
		if !rec.HasWinners || rec.Winners <= 0 {
			continue
		}
		out = append(out, worldcup.WinsEntry{Team: rec.Team, Winners: rec.Winners})
	}
	return out
}
