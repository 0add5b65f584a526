// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/deltaf1/internal/apperrors"
	"github.com/tomtom215/deltaf1/internal/clock"
	"github.com/tomtom215/deltaf1/internal/config"
	"github.com/tomtom215/deltaf1/internal/drivers"
	"github.com/tomtom215/deltaf1/internal/ergast"
	"github.com/tomtom215/deltaf1/internal/models"
	"github.com/tomtom215/deltaf1/internal/races"
)

type stubRaces struct {
	races []models.Race
	err   error
	years []int
}

func (s *stubRaces) List(_ context.Context, year int) ([]models.Race, error) {
	s.years = append(s.years, year)
	return s.races, s.err
}

func (s *stubRaces) UpToNext(context.Context) ([]models.Race, error) {
	if s.err != nil {
		return nil, s.err
	}
	return races.UpToNext(s.races, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
}

func (s *stubRaces) ByRound(_ context.Context, round int) (models.Race, error) {
	if s.err != nil {
		return models.Race{}, s.err
	}
	for _, r := range s.races {
		if r.Round == round {
			return r, nil
		}
	}
	return models.Race{}, apperrors.NotFound(races.ErrRaceNotFound)
}

type stubDrivers struct {
	drivers []models.Driver
	err     error
	years   []int
}

func (s *stubDrivers) ListDrivers(_ context.Context, year int) ([]models.Driver, error) {
	s.years = append(s.years, year)
	return s.drivers, s.err
}

func (s *stubDrivers) Name() string { return "api" }

type pingingDrivers struct {
	stubDrivers
	pingErr error
}

func (p *pingingDrivers) Ping(context.Context) error { return p.pingErr }
func (p *pingingDrivers) Name() string               { return "store" }

type fixedBreaker string

func (b fixedBreaker) State() string { return string(b) }

func sampleRaces() []models.Race {
	return []models.Race{
		{ID: 1, Round: 1, Name: "Bahrain Grand Prix", Circuit: "Bahrain International Circuit", Country: "Bahrain", CountryCode: "bh", Date: "2024-03-02T15:00:00Z", Year: 2024},
		{ID: 2, Round: 2, Name: "Saudi Arabian Grand Prix", Circuit: "Jeddah Corniche Circuit", Country: "Saudi Arabia", CountryCode: "sa", Date: "2024-03-09T17:00:00Z", Year: 2024},
		{ID: 3, Round: 3, Name: "Australian Grand Prix", Circuit: "Albert Park Grand Prix Circuit", Country: "Australia", CountryCode: "au", Date: "2024-03-24T04:00:00Z", Year: 2024},
	}
}

func newTestRouter(raceSvc RaceService, src drivers.Source) http.Handler {
	handler := NewHandler(raceSvc, src, &config.Config{})
	return NewRouter(handler, &config.SecurityConfig{
		CORSOrigins:       []string{"*"},
		RateLimitReqs:     100,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: true,
	}).SetupChi()
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorBody {
	t.Helper()
	var body models.ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestRoot(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(&stubRaces{}, &stubDrivers{}), http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"Delta F1 API is running!"}` {
		t.Errorf("body = %s", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRaces(t *testing.T) {
	t.Parallel()

	svc := &stubRaces{races: sampleRaces()}
	h := newTestRouter(svc, &stubDrivers{})

	rec := do(t, h, http.MethodGet, "/api/races?year=2024")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got []models.Race
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[1].CountryCode != "sa" || got[2].Year != 2024 {
		t.Errorf("unexpected races: %+v", got)
	}

	do(t, h, http.MethodGet, "/api/races")
	if len(svc.years) != 2 || svc.years[0] != 2024 || svc.years[1] != 0 {
		t.Errorf("years requested = %v, want [2024 0]", svc.years)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing on API route")
	}
}

func TestRacesRawShape(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(&stubRaces{races: sampleRaces()[:1]}, &stubDrivers{}), http.MethodGet, "/api/races")
	want := `[{"id":1,"round":1,"name":"Bahrain Grand Prix","circuit":"Bahrain International Circuit","country":"Bahrain","countryCode":"bh","date":"2024-03-02T15:00:00Z","year":2024}]`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body =\n%s\nwant\n%s", got, want)
	}
}

func TestYearValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target string
		detail string
	}{
		{"/api/races?year=abc", "year must be an integer"},
		{"/api/drivers?year=20.5", "year must be an integer"},
	}

	h := newTestRouter(&stubRaces{}, &stubDrivers{})
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()
			rec := do(t, h, http.MethodGet, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			body := decodeError(t, rec)
			if body.Code != "VALIDATION_ERROR" || body.Detail != tt.detail {
				t.Errorf("body = %+v, want detail %q", body, tt.detail)
			}
		})
	}
}

func TestYearPassedThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  int
	}{
		{"", 0},
		{"?year=0", 0},
		{"?year=1949", 1949},
		{"?year=2101", 2101},
		{"?year=-1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			raceStub := &stubRaces{races: sampleRaces()}
			driverStub := &stubDrivers{}
			h := newTestRouter(raceStub, driverStub)

			if rec := do(t, h, http.MethodGet, "/api/races"+tt.query); rec.Code != http.StatusOK {
				t.Fatalf("races status = %d, want 200", rec.Code)
			}
			if rec := do(t, h, http.MethodGet, "/api/drivers"+tt.query); rec.Code != http.StatusOK {
				t.Fatalf("drivers status = %d, want 200", rec.Code)
			}
			if len(raceStub.years) != 1 || raceStub.years[0] != tt.want {
				t.Errorf("races year = %v, want %d", raceStub.years, tt.want)
			}
			if len(driverStub.years) != 1 || driverStub.years[0] != tt.want {
				t.Errorf("drivers year = %v, want %d", driverStub.years, tt.want)
			}
		})
	}
}

func TestRacesUpTo(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(&stubRaces{races: sampleRaces()}, &stubDrivers{}), http.MethodGet, "/api/races/upto")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []models.Race
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Round != 2 || got[1].Round != 1 {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestRaceByRound(t *testing.T) {
	t.Parallel()

	h := newTestRouter(&stubRaces{races: sampleRaces()}, &stubDrivers{})

	rec := do(t, h, http.MethodGet, "/api/race/3")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var race models.Race
	if err := json.Unmarshal(rec.Body.Bytes(), &race); err != nil {
		t.Fatal(err)
	}
	if race.Name != "Australian Grand Prix" {
		t.Errorf("race = %+v", race)
	}

	rec = do(t, h, http.MethodGet, "/api/race/99")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := decodeError(t, rec); body.Detail != "Race not found" || body.Code != "NOT_FOUND" {
		t.Errorf("body = %+v", body)
	}

	for _, target := range []string{"/api/race/0", "/api/race/-1", "/api/race/100"} {
		rec := do(t, h, http.MethodGet, target)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s status = %d, want 404", target, rec.Code)
			continue
		}
		if body := decodeError(t, rec); body.Detail != "Race not found" {
			t.Errorf("%s detail = %q", target, body.Detail)
		}
	}

	for _, target := range []string{"/api/race/abc", "/api/race/1.5"} {
		rec := do(t, h, http.MethodGet, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", target, rec.Code)
			continue
		}
		if body := decodeError(t, rec); body.Code != "VALIDATION_ERROR" || body.Detail != "round must be an integer" {
			t.Errorf("%s body = %+v", target, body)
		}
	}
}

func TestErrorStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
		detail string
	}{
		{
			name:   "upstream unavailable",
			err:    apperrors.Unavailable("Failed to fetch races from Ergast API", errors.New("connection refused")),
			status: http.StatusServiceUnavailable,
			code:   "UPSTREAM_UNAVAILABLE",
			detail: "Failed to fetch races from Ergast API: connection refused",
		},
		{
			name:   "data processing",
			err:    apperrors.DataProcessing("Error processing race data", errors.New("round is required")),
			status: http.StatusInternalServerError,
			code:   "DATA_PROCESSING",
			detail: "Error processing race data: round is required",
		},
		{
			name:   "unclassified",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   "DATA_PROCESSING",
			detail: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newTestRouter(&stubRaces{err: tt.err}, &stubDrivers{})
			for _, target := range []string{"/api/races", "/api/races/upto", "/api/race/1"} {
				rec := do(t, h, http.MethodGet, target)
				if rec.Code != tt.status {
					t.Fatalf("%s status = %d, want %d", target, rec.Code, tt.status)
				}
				body := decodeError(t, rec)
				if body.Code != tt.code || body.Detail != tt.detail {
					t.Errorf("%s body = %+v", target, body)
				}
				if body.RequestID == "" || body.RequestID != rec.Header().Get("X-Request-ID") {
					t.Errorf("%s request_id %q does not match header %q", target, body.RequestID, rec.Header().Get("X-Request-ID"))
				}
			}
		})
	}
}

func TestDrivers(t *testing.T) {
	t.Parallel()

	secondary := "#47C7FC"
	src := &stubDrivers{drivers: []models.Driver{
		{DriverCode: "NOR", Cost: 30, DriverName: "Lando Norris", TeamName: "McLaren Racing", DeltaCost: 0.4,
			DriverImage: "https://example.com/nor.png", TeamImage: "src/assets/mclaren.avif",
			Colors: models.ColorSet{Main: "#FF8000", Accent: "#000000", Secondary: &secondary}},
		{DriverCode: "PIA", Cost: 30, DriverName: "Oscar Piastri", TeamName: "McLaren Racing", DeltaCost: 0.1,
			Colors: models.ColorSet{Main: "#FF8000", Accent: "#000000"}},
	}}
	h := newTestRouter(&stubRaces{}, src)

	rec := do(t, h, http.MethodGet, "/api/drivers?year=2024")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"driverCode":"NOR","cost":30,"driverName":"Lando Norris"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"secondary":null`) {
		t.Errorf("missing secondary color should serialize as null: %s", rec.Body.String())
	}
	if src.years[0] != 2024 {
		t.Errorf("year = %d, want 2024", src.years[0])
	}

	rec = do(t, h, http.MethodGet, "/api/drivers/images")
	if rec.Code != http.StatusOK {
		t.Fatalf("images status = %d", rec.Code)
	}
	var images map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &images); err != nil {
		t.Fatal(err)
	}
	if len(images) != 1 || images["NOR"] != "https://example.com/nor.png" {
		t.Errorf("images = %v", images)
	}
}

func TestDriversStoreFailure(t *testing.T) {
	t.Parallel()

	src := &stubDrivers{err: apperrors.DataProcessing("Error fetching drivers from store", errors.New("permission denied"))}
	h := newTestRouter(&stubRaces{}, src)

	for _, target := range []string{"/api/drivers", "/api/drivers/images"} {
		rec := do(t, h, http.MethodGet, target)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s status = %d, want 500", target, rec.Code)
		}
	}
}

// TestUpstreamTimeout runs the full stack against a statistics API that
// answers slower than the client timeout.
func TestUpstreamTimeout(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(upstream.Close)

	clk := clock.Fixed(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	client := ergast.NewClient(&config.UpstreamConfig{BaseURL: upstream.URL, Timeout: 50 * time.Millisecond}, clk)
	h := newTestRouter(races.NewService(client, clk), drivers.NewAPISource(client))

	for _, target := range []string{"/api/races/upto", "/api/drivers"} {
		rec := do(t, h, http.MethodGet, target)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s status = %d, want 503", target, rec.Code)
		}
		body := decodeError(t, rec)
		if !strings.HasPrefix(body.Detail, "Failed to fetch") {
			t.Errorf("%s detail = %q", target, body.Detail)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	h := newTestRouter(&stubRaces{}, &stubDrivers{})
	rec := do(t, h, http.MethodGet, "/api/teams")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != "NOT_FOUND" {
		t.Errorf("body = %+v", body)
	}

	if rec := do(t, h, http.MethodDelete, "/api/races"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE status = %d, want 405", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     drivers.Source
		breaker BreakerStater
		status  int
		checks  map[string]string
	}{
		{
			name:    "api source closed breaker",
			src:     &stubDrivers{},
			breaker: fixedBreaker("closed"),
			status:  http.StatusOK,
			checks:  map[string]string{"upstream": "closed"},
		},
		{
			name:    "open breaker",
			src:     &stubDrivers{},
			breaker: fixedBreaker("open"),
			status:  http.StatusServiceUnavailable,
			checks:  map[string]string{"upstream": "open"},
		},
		{
			name:   "store reachable",
			src:    &pingingDrivers{},
			status: http.StatusOK,
			checks: map[string]string{"store": "ok"},
		},
		{
			name:   "store unreachable",
			src:    &pingingDrivers{pingErr: errors.New("dial tcp: refused")},
			status: http.StatusServiceUnavailable,
			checks: map[string]string{"store": "unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := NewHandler(&stubRaces{}, tt.src, &config.Config{})
			if tt.breaker != nil {
				handler.SetBreaker(tt.breaker)
			}
			h := NewRouter(handler, &config.SecurityConfig{RateLimitDisabled: true}).SetupChi()

			rec := do(t, h, http.MethodGet, "/api/health/ready")
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			var health models.HealthStatus
			if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
				t.Fatal(err)
			}
			for k, v := range tt.checks {
				if health.Checks[k] != v {
					t.Errorf("check %s = %q, want %q", k, health.Checks[k], v)
				}
			}
			if health.Version != Version {
				t.Errorf("version = %q", health.Version)
			}

			if rec := do(t, h, http.MethodGet, "/api/health/live"); rec.Code != http.StatusOK {
				t.Errorf("live status = %d", rec.Code)
			}
		})
	}
}
