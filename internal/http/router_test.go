package http

import (
	"net/http"
	"testing"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/app/dashboard"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/http/handlers"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/testutil"
)

func newTestRouter() http.Handler {
	svc := dashboard.NewService(testutil.SampleRecords(), nil)
	return NewRouter(handlers.NewHandler(svc, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := map[string]int{
		"/":                      http.StatusOK,
		"/health":                http.StatusOK,
		"/ready":                 http.StatusOK,
		"/api/wins":              http.StatusOK,
		"/api/finals":            http.StatusOK,
		"/api/finals/1958":       http.StatusOK,
		"/api/finals/1954":       http.StatusNotFound, // known route with missing final
		"/api/years":             http.StatusOK,
		"/api/summary?year=1958": http.StatusOK,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	rr := testutil.Serve(newTestRouter(), http.MethodGet, "/unknown", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
