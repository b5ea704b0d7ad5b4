// Package dashboard assembles the immutable World Cup tables served by the HTTP layer.
package dashboard

import (
	"log/slog"
	"time"

	"github.com/rotisserie/eris"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/dataset"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/domain/worldcup"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/finals"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/logging"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/metrics"
)

// Status describes where the dashboard data came from.
type Status struct {
	Source   string
	Records  int
	LoadedAt time.Time
}

// IsReady reports whether a table has been loaded.
func (s Status) IsReady() bool {
	return !s.LoadedAt.IsZero()
}

// Service holds the derived tables. It is never mutated after construction, so it is
// safe to share across request goroutines without locking.
type Service struct {
	records []worldcup.CountryRecord
	wins    []worldcup.WinsEntry
	finals  finals.Table
	status  Status
	metrics *metrics.Recorder
}

// NewService normalizes raw records and derives both tables.
func NewService(raw []worldcup.CountryRecord, recorder *metrics.Recorder) *Service {
	records := dataset.Normalize(raw)
	return &Service{
		records: records,
		wins:    dataset.WinsSubset(records),
		finals:  finals.Build(records),
		status:  Status{Records: len(records), LoadedAt: time.Now().UTC()},
		metrics: recorder,
	}
}

// Load reads path and builds a Service. Errors are fatal for startup; there is no partial dashboard.
func Load(path string, logger *slog.Logger, recorder *metrics.Recorder) (*Service, error) {
	start := time.Now()
	raw, err := dataset.Load(path)
	duration := time.Since(start)
	recorder.RecordDatasetLoad(duration, len(raw), err)
	if err != nil {
		return nil, eris.Wrap(err, "dashboard: load dataset")
	}

	svc := NewService(raw, recorder)
	svc.status.Source = path
	logging.Info(logger, "dataset loaded",
		logging.FieldSource, path,
		logging.FieldRows, len(svc.records),
		logging.FieldWins, len(svc.wins),
		logging.FieldFinals, len(svc.finals),
		logging.FieldDurationMS, duration.Milliseconds(),
	)
	return svc, nil
}

// Records returns a copy of the normalized records.
func (s *Service) Records() []worldcup.CountryRecord {
	return append([]worldcup.CountryRecord{}, s.records...)
}

// Wins returns a copy of the countries with at least one title.
func (s *Service) Wins() []worldcup.WinsEntry {
	return append([]worldcup.WinsEntry{}, s.wins...)
}

// Finals returns a copy of the year-sorted finals table.
func (s *Service) Finals() []worldcup.FinalsEntry {
	return append([]worldcup.FinalsEntry{}, s.finals...)
}

// Years returns the distinct years for the selection list.
func (s *Service) Years() []int {
	return finals.Years(s.finals)
}

// FinalByYear looks up a single year.
func (s *Service) FinalByYear(year int) (worldcup.FinalsEntry, bool) {
	entry, ok := finals.FindByYear(s.finals, year)
	if ok {
		s.metrics.RecordLookup(metrics.LookupHit)
	} else {
		s.metrics.RecordLookup(metrics.LookupMiss)
	}
	return entry, ok
}

// Summary renders the selection line for year; nil means nothing is selected.
func (s *Service) Summary(year *int) string {
	if year == nil {
		s.metrics.RecordLookup(metrics.LookupNone)
	} else {
		s.FinalByYear(*year)
	}
	return finals.Summary(s.finals, year)
}

// Status reports the load metadata.
func (s *Service) Status() Status {
	return s.status
}
