// Package finals builds the per-year winner and runner-up table.
package finals

import (
	"sort"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/domain/worldcup"
)

// Table is sorted ascending by year with one entry per year. Treat it as read-only.
type Table []worldcup.FinalsEntry

type sides struct {
	winner   string
	runnerUp string
}

// Build folds every record's years lists into a year-keyed table. When two records claim
// the same side of the same year, the later record wins.
func Build(records []worldcup.CountryRecord) Table {
	byYear := make(map[int]*sides)
	upsert := func(year int) *sides {
		s, ok := byYear[year]
		if !ok {
			s = &sides{}
			byYear[year] = s
		}
		return s
	}

	for _, rec := range records {
		for _, year := range ParseYears(rec.YearsWon) {
			upsert(year).winner = rec.Team
		}
		for _, year := range ParseYears(rec.YearsRunnerUp) {
			upsert(year).runnerUp = rec.Team
		}
	}

	table := make(Table, 0, len(byYear))
	for year, s := range byYear {
		table = append(table, worldcup.FinalsEntry{
			Year:     year,
			Winner:   orNotAvailable(s.winner),
			RunnerUp: orNotAvailable(s.runnerUp),
		})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Year < table[j].Year })
	return table
}

// ParseYears splits a comma-joined years field. Empty and sentinel fields yield nothing;
// tokens that are not integers are dropped.
func ParseYears(field string) []int {
	field = strings.TrimSpace(field)
	if field == "" || field == worldcup.NoYearsSentinel {
		return nil
	}
	var years []int
	for _, token := range strings.Split(field, ",") {
		year, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	return years
}

func orNotAvailable(team string) string {
	if team == "" {
		return worldcup.NotAvailable
	}
	return team
}
