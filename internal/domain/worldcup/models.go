package worldcup

// NotAvailable marks a finals side with no recorded team.
const NotAvailable = "N/A"

// NoYearsSentinel is the placeholder the source table uses for an empty years list.
const NoYearsSentinel = "\u2014"

// CountryRecord is one normalized row of the results table.
type CountryRecord struct {
	Team          string  `json:"team"`
	Winners       float64 `json:"winners,omitempty"`
	HasWinners    bool    `json:"-"`
	RunnersUp     float64 `json:"runnersUp,omitempty"`
	HasRunnersUp  bool    `json:"-"`
	YearsWon      string  `json:"yearsWon,omitempty"`
	YearsRunnerUp string  `json:"yearsRunnerUp,omitempty"`
}

// WinsEntry is a country with at least one title, used to shade the map.
type WinsEntry struct {
	Team    string  `json:"team"`
	Winners float64 `json:"winners"`
}

// FinalsEntry is the winner and runner-up of a single tournament year.
type FinalsEntry struct {
	Year     int    `json:"year"`
	Winner   string `json:"winner"`
	RunnerUp string `json:"runnerUp"`
}

// SummaryResponse is the payload returned by /api/summary.
type SummaryResponse struct {
	Year *int   `json:"year"`
	Text string `json:"text"`
}
