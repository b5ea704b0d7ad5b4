package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/app/dashboard"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/domain/worldcup"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/logging"
)

const finalsPrefix = "/api/finals/"

// Dashboard is the read-only view the handlers serve from.
type Dashboard interface {
	Wins() []worldcup.WinsEntry
	Finals() []worldcup.FinalsEntry
	Years() []int
	FinalByYear(year int) (worldcup.FinalsEntry, bool)
	Summary(year *int) string
	Status() dashboard.Status
}

// Handler wires HTTP routes to the dashboard.
type Handler struct {
	dash   Dashboard
	logger *slog.Logger
}

// NewHandler constructs a Handler. A nil dashboard keeps /ready failing.
func NewHandler(dash Dashboard, logger *slog.Logger) *Handler {
	return &Handler{dash: dash, logger: logger}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/":
		h.Page(w, r)
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/api/wins":
		h.Wins(w, r)
	case r.URL.Path == "/api/finals":
		h.Finals(w, r)
	case strings.HasPrefix(r.URL.Path, finalsPrefix):
		h.FinalByYear(w, r)
	case r.URL.Path == "/api/years":
		h.Years(w, r)
	case r.URL.Path == "/api/summary":
		h.Summary(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the dashboard tables are loaded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if h.dash == nil || !h.dash.Status().IsReady() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dataset not loaded", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Wins returns every country with at least one title.
func (h *Handler) Wins(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.requireDashboard(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.dash.Wins(), h.logger)
}

// Finals returns the year-sorted finals table.
func (h *Handler) Finals(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.requireDashboard(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.dash.Finals(), h.logger)
}

// Years returns the distinct years available for selection.
func (h *Handler) Years(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.requireDashboard(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.dash.Years(), h.logger)
}

// FinalByYear returns one year's final. Expects /api/finals/{year}.
func (h *Handler) FinalByYear(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.requireDashboard(w, r) {
		return
	}
	raw := strings.TrimPrefix(r.URL.Path, finalsPrefix)
	year, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid year", h.logger)
		return
	}
	entry, ok := h.dash.FinalByYear(year)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "final not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, entry, h.logger)
}

// Summary renders the selection text for ?year=. A missing year is not an error.
func (h *Handler) Summary(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.requireDashboard(w, r) {
		return
	}
	year, ok := parseOptionalYear(r.URL.Query().Get("year"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid year", h.logger)
		return
	}
	text := h.dash.Summary(year)
	if year != nil {
		logging.Debug(loggerFromContext(r, h.logger), "summary served", logging.FieldYear, *year)
	}
	writeJSON(w, nethttp.StatusOK, worldcup.SummaryResponse{Year: year, Text: text}, h.logger)
}

func parseOptionalYear(raw string) (*int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &year, true
}

func (h *Handler) allowGet(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return false
	}
	return true
}

func (h *Handler) requireDashboard(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if h.dash == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dataset not loaded", h.logger)
		return false
	}
	return true
}
