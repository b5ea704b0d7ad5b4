package handlers

import (
	"bytes"
	"embed"
	"html/template"
	nethttp "net/http"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/domain/worldcup"
	"github.com/preston-bernstein/fifa-dashboard-service/internal/finals"
)

//go:embed templates/dashboard.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html.tmpl"))

// mapSettings mirrors the choropleth options rendered by the page script.
type mapSettings struct {
	Title         string  `json:"title"`
	ColorScale    [][]any `json:"colorScale"`
	ColorBarTitle string  `json:"colorBarTitle"`
	LocationMode  string  `json:"locationMode"`
	Height        int     `json:"height"`
}

type pageData struct {
	Title       string
	Placeholder string
	Prompt      string
	Years       []int
	Wins        []worldcup.WinsEntry
	Map         mapSettings
}

var defaultMap = mapSettings{
	Title:         "FIFA World Cup Winners on the Map",
	ColorScale:    evenStops(magma),
	ColorBarTitle: "Number of Wins",
	LocationMode:  "country names",
	Height:        1000,
}

// magma is the sequential palette used for win counts, darkest first.
var magma = []string{
	"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
	"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf",
}

// evenStops spreads colors over [0, 1] in the [position, color] pairs the map widget expects.
func evenStops(colors []string) [][]any {
	stops := make([][]any, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = []any{pos, c}
	}
	return stops
}

// Page renders the single-page dashboard.
func (h *Handler) Page(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.requireDashboard(w, r) {
		return
	}
	data := pageData{
		Title:       "FIFA World Cup Dashboard",
		Placeholder: "Choose a year",
		Prompt:      finals.Placeholder,
		Years:       h.dash.Years(),
		Wins:        h.dash.Wins(),
		Map:         defaultMap,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		loggerFromContext(r, h.logger).Error("failed to render dashboard", "error", err)
		writeError(w, r, nethttp.StatusInternalServerError, "render failed", h.logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
