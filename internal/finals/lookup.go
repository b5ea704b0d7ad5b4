package finals

import (
	"fmt"
	"sort"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/domain/worldcup"
)

// Placeholder is shown when no year is selected or the year has no final.
const Placeholder = "Select a year to see the winner and runner up."

// FindByYear returns the entry for year, if any.
func FindByYear(table Table, year int) (worldcup.FinalsEntry, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].Year >= year })
	if i < len(table) && table[i].Year == year {
		return table[i], true
	}
	return worldcup.FinalsEntry{}, false
}

// Years lists the distinct years in ascending order.
func Years(table Table) []int {
	years := make([]int, len(table))
	for i, entry := range table {
		years[i] = entry.Year
	}
	return years
}

// Summary renders the selection line for year. A nil year means nothing is selected.
func Summary(table Table, year *int) string {
	if year == nil {
		return Placeholder
	}
	entry, ok := FindByYear(table, *year)
	if !ok {
		return Placeholder
	}
	return fmt.Sprintf("%d- %s won with %s as the runner-up.", entry.Year, entry.Winner, entry.RunnerUp)
}
