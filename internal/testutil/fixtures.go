package testutil

import "github.com/preston-bernstein/fifa-dashboard-service/internal/domain/worldcup"

// SampleCSV is a trimmed results table covering the coercion and sentinel cases.
const SampleCSV = `Team,Winners,Runners-up,Years won,Years runners-up
Brazil,5,2,"1958, 1962, 1970, 1994, 2002","1950, 1998"
England,1,—,1966,—
Uruguay,2,—,"1930, 1950",—
Netherlands,0,3,—,"1974, 1978, 2010"
Sweden,—,1,—,1958
`

// SampleRecords returns normalized records matching SampleCSV.
func SampleRecords() []worldcup.CountryRecord {
	return []worldcup.CountryRecord{
		{Team: "Brazil", Winners: 5, HasWinners: true, RunnersUp: 2, HasRunnersUp: true, YearsWon: "1958, 1962, 1970, 1994, 2002", YearsRunnerUp: "1950, 1998"},
		{Team: "United Kingdom", Winners: 1, HasWinners: true, YearsWon: "1966", YearsRunnerUp: worldcup.NoYearsSentinel},
		{Team: "Uruguay", Winners: 2, HasWinners: true, YearsWon: "1930, 1950", YearsRunnerUp: worldcup.NoYearsSentinel},
		{Team: "Netherlands", Winners: 0, HasWinners: true, RunnersUp: 3, HasRunnersUp: true, YearsWon: worldcup.NoYearsSentinel, YearsRunnerUp: "1974, 1978, 2010"},
		{Team: "Sweden", RunnersUp: 1, HasRunnersUp: true, YearsWon: worldcup.NoYearsSentinel, YearsRunnerUp: "1958"},
	}
}

// SampleRecord returns a single record with the given team and winner years.
func SampleRecord(team string, winners float64, yearsWon, yearsRunnerUp string) worldcup.CountryRecord {
	return worldcup.CountryRecord{
		Team:          team,
		Winners:       winners,
		HasWinners:    true,
		YearsWon:      yearsWon,
		YearsRunnerUp: yearsRunnerUp,
	}
}
