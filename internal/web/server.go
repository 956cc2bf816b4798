// Package web serves the browser-based scenario explorer: an input form,
// result metrics, and the session history table, plus JSON endpoints for
// programmatic use.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"mccse/internal/catalog"
	"mccse/internal/explorer"
	"mccse/internal/voyage"
)

//go:embed templates/index.html
var content embed.FS

// Server exposes the explorer over HTTP.
type Server struct {
	exp *explorer.Explorer
	tpl *template.Template
}

// NewServer creates a Server around an explorer session.
func NewServer(exp *explorer.Explorer) *Server {
	tpl := template.Must(template.New("index.html").ParseFS(content, "templates/index.html"))
	return &Server{exp: exp, tpl: tpl}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/evaluate", s.handleEvaluate)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/catalog", s.handleCatalog)
	mux.HandleFunc("/api/stats", s.handleStats)
	return mux
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.routes()}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

type indexData struct {
	Fuels    []catalog.Fuel
	Vessels  []catalog.VesselClass
	History  []voyage.ScenarioRow
	Stats    explorer.SessionStats
	Result   *voyage.ScenarioRow
	ErrorMsg string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Fuels:   s.exp.Catalog().Fuels(),
		Vessels: s.exp.Catalog().VesselClasses(),
		History: s.exp.History(),
		Stats:   s.exp.Stats(),
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req, err := requestFromForm(r)
		if err != nil {
			data.ErrorMsg = err.Error()
		} else {
			row, err := s.exp.Evaluate(req)
			if err != nil {
				data.ErrorMsg = err.Error()
			} else {
				data.Result = &row
				data.History = s.exp.History()
				data.Stats = s.exp.Stats()
			}
		}
	}

	if err := s.tpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req voyage.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	row, err := s.exp.Evaluate(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(row)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.exp.History())
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"fuels":          s.exp.Catalog().Fuels(),
		"vessel_classes": s.exp.Catalog().VesselClasses(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.exp.Stats())
}

// statusFor maps model errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrUnknownKey):
		return http.StatusNotFound
	case errors.Is(err, voyage.ErrInvalidParameter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func requestFromForm(r *http.Request) (voyage.Request, error) {
	req := voyage.Request{
		VesselKey: r.FormValue("vessel"),
		FuelKey:   r.FormValue("fuel"),
	}
	fields := []struct {
		name string
		dst  *float64
	}{
		{"speed_kn", &req.SpeedKn},
		{"distance_nm", &req.DistanceNM},
		{"hull_fouling_pct", &req.HullFoulingPct},
		{"wind_assist_pct", &req.WindAssistPct},
		{"solar_assist_pct", &req.SolarAssistPct},
		{"carbon_price_usd_t", &req.CarbonPriceUSDT},
	}
	for _, f := range fields {
		v := r.FormValue(f.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return voyage.Request{}, err
		}
		*f.dst = parsed
	}
	return req, nil
}
