package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/wins", handler.Wins)
	mux.HandleFunc("/api/finals", handler.Finals)
	mux.HandleFunc("/api/finals/", handler.FinalByYear)
	mux.HandleFunc("/api/years", handler.Years)
	mux.HandleFunc("/api/summary", handler.Summary)
	// "/" is a catch-all on ServeMux; the handler serves the page only for the exact root.
	mux.Handle("/", handler)
	return mux
}
