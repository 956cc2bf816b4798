package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"mccse/internal/catalog"
	"mccse/internal/explorer"
	"mccse/internal/voyage"
)

func newTestServer(t *testing.T) (*Server, *explorer.Explorer) {
	t.Helper()
	exp, err := explorer.New(catalog.Default(), nil)
	if err != nil {
		t.Fatalf("explorer.New: %v", err)
	}
	return NewServer(exp), exp
}

func postJSON(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.routes().ServeHTTP(w, req)
	return w
}

func TestHandleEvaluate(t *testing.T) {
	srv, exp := newTestServer(t)

	body := `{"vessel":"Panamax","fuel":"VLSFO","speed_kn":13,"distance_nm":10000,"carbon_price_usd_t":100}`
	w := postJSON(t, srv, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var row voyage.ScenarioRow
	if err := json.Unmarshal(w.Body.Bytes(), &row); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if row.SessionID != exp.SessionID() {
		t.Errorf("row session ID %q, want %q", row.SessionID, exp.SessionID())
	}
	if row.FuelTonnes < 750 || row.FuelTonnes > 765 {
		t.Errorf("FuelTonnes = %v, want ~756.7", row.FuelTonnes)
	}
	if len(exp.History()) != 1 {
		t.Errorf("history has %d rows, want 1", len(exp.History()))
	}
}

func TestHandleEvaluateErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"unknown vessel", `{"vessel":"Capesize","fuel":"VLSFO","speed_kn":13,"distance_nm":1000}`, http.StatusNotFound},
		{"unknown fuel", `{"vessel":"Panamax","fuel":"Hydrogen","speed_kn":13,"distance_nm":1000}`, http.StatusNotFound},
		{"zero speed", `{"vessel":"Panamax","fuel":"VLSFO","speed_kn":0,"distance_nm":1000}`, http.StatusBadRequest},
		{"negative carbon price", `{"vessel":"Panamax","fuel":"VLSFO","speed_kn":13,"distance_nm":1000,"carbon_price_usd_t":-5}`, http.StatusBadRequest},
		{"malformed body", `{"vessel":`, http.StatusBadRequest},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if w := postJSON(t, srv, c.body); w.Code != c.want {
				t.Errorf("status = %d, want %d: %s", w.Code, c.want, w.Body.String())
			}
		})
	}
}

func TestHandleEvaluateMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/evaluate", nil)
	w := httptest.NewRecorder()
	srv.routes().ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestHandleHistoryAndStats(t *testing.T) {
	srv, exp := newTestServer(t)
	if _, err := exp.Evaluate(voyage.Request{VesselKey: "Panamax", FuelKey: "VLSFO", SpeedKn: 13, DistanceNM: 10000}); err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	srv.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d", w.Code)
	}
	var rows []voyage.ScenarioRow
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(rows) != 1 || rows[0].VesselKey != "Panamax" {
		t.Errorf("unexpected history: %+v", rows)
	}

	w = httptest.NewRecorder()
	srv.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d", w.Code)
	}
	var stats explorer.SessionStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Scenarios != 1 {
		t.Errorf("Scenarios = %d, want 1", stats.Scenarios)
	}
}

func TestHandleCatalog(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	srv.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var payload struct {
		Fuels         []catalog.Fuel        `json:"fuels"`
		VesselClasses []catalog.VesselClass `json:"vessel_classes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(payload.Fuels) != 5 || len(payload.VesselClasses) != 3 {
		t.Errorf("catalog sizes = %d/%d, want 5/3", len(payload.Fuels), len(payload.VesselClasses))
	}
}

func TestHandleIndex(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	srv.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "VLSFO") || !strings.Contains(body, "Panamax") {
		t.Error("index page missing catalog entries")
	}
}

func TestHandleIndexFormPost(t *testing.T) {
	srv, exp := newTestServer(t)

	form := url.Values{
		"vessel":             {"Panamax"},
		"fuel":               {"VLSFO"},
		"speed_kn":           {"13"},
		"distance_nm":        {"10000"},
		"hull_fouling_pct":   {"0"},
		"wind_assist_pct":    {"0"},
		"solar_assist_pct":   {"0"},
		"carbon_price_usd_t": {"100"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if len(exp.History()) != 1 {
		t.Errorf("history has %d rows, want 1", len(exp.History()))
	}
}

func TestHandleIndexFormPostBadInput(t *testing.T) {
	srv, exp := newTestServer(t)

	form := url.Values{
		"vessel":      {"Panamax"},
		"fuel":        {"VLSFO"},
		"speed_kn":    {"not-a-number"},
		"distance_nm": {"10000"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.routes().ServeHTTP(w, req)

	// Parse failures render the form again with an error message.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(exp.History()) != 0 {
		t.Error("bad input reached the explorer")
	}
}
