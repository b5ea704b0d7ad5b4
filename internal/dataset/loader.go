// Package dataset reads the World Cup results table and derives the win-count view.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/domain/worldcup"
)

const (
	ColumnTeam          = "Team"
	ColumnWinners       = "Winners"
	ColumnRunnersUp     = "Runners-up"
	ColumnYearsWon      = "Years won"
	ColumnYearsRunnerUp = "Years runners-up"
)

var requiredColumns = []string{ColumnTeam, ColumnWinners, ColumnYearsWon, ColumnYearsRunnerUp}

const utf8BOM = "\ufeff"

// row mirrors the required CSV columns. Everything is read as text and coerced later.
type row struct {
	Team          string `csv:"Team"`
	Winners       string `csv:"Winners"`
	YearsWon      string `csv:"Years won"`
	YearsRunnerUp string `csv:"Years runners-up"`
}

// Load reads the results table at path. Any error here is fatal for the dashboard.
func Load(path string) ([]worldcup.CountryRecord, error) {
	if strings.TrimSpace(path) == "" {
		return nil, eris.New("dataset: path required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: load %s", path)
	}
	return records, nil
}

// Decode parses CSV content with a header row. The Winners and Runners-up columns are
// coerced to numbers; non-numeric values become absent instead of failing the load.
func Decode(r io.Reader) ([]worldcup.CountryRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("dataset: empty input")
	}
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read header")
	}
	header = cleanHeader(header)
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, eris.Errorf("dataset: missing required columns %s", strings.Join(missing, ", "))
	}

	dec, err := csvutil.NewDecoder(reader, header...)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: build decoder")
	}
	dec.DisallowMissingColumns = true

	runnersUpIdx := indexOf(header, ColumnRunnersUp)

	var records []worldcup.CountryRecord
	for {
		var raw row
		if err := dec.Decode(&raw); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrapf(err, "dataset: decode row %d", len(records)+1)
		}

		rec := worldcup.CountryRecord{
			Team:          strings.TrimSpace(raw.Team),
			YearsWon:      strings.TrimSpace(raw.YearsWon),
			YearsRunnerUp: strings.TrimSpace(raw.YearsRunnerUp),
		}
		rec.Winners, rec.HasWinners = ParseWinners(raw.Winners)
		if runnersUpIdx >= 0 {
			if fields := dec.Record(); runnersUpIdx < len(fields) {
				rec.RunnersUp, rec.HasRunnersUp = ParseWinners(fields[runnersUpIdx])
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func missingColumns(header []string) []string {
	var missing []string
	for _, col := range requiredColumns {
		if indexOf(header, col) < 0 {
			missing = append(missing, col)
		}
	}
	return missing
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
