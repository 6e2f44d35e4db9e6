package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasmushaa/renting-vs-owning/internal/calculation"
	"github.com/rasmushaa/renting-vs-owning/internal/config"
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.ServerConfig{
		Port:                   "0",
		Environment:            "test",
		ShutdownTimeout:        time.Second,
		MetricsEnabled:         true,
		MaxScenariosPerRequest: 3,
	}
	return New(cfg, calculation.NewCalculationEngine(), "test")
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func exampleConfiguration() *domain.Configuration {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	cfg.StartDate = time.Time{}
	return cfg
}

func TestHealth(t *testing.T) {
	router := newTestServer(t).Router()
	w := do(t, router, http.MethodGet, "/api/v1/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","version":"test"}`, w.Body.String())

	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "a request id is assigned")
}

func TestRequestID_Propagated(t *testing.T) {
	router := newTestServer(t).Router()
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestExample(t *testing.T) {
	router := newTestServer(t).Router()
	w := do(t, router, http.MethodGet, "/api/v1/example", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cfg domain.Configuration
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.NotEmpty(t, cfg.Scenarios)
}

func TestScenario(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		body         any
		wantName     string
		wantWinner   string
		differential int64
	}{
		{
			name:         "empty body uses defaults",
			path:         "/api/v1/scenario",
			body:         nil,
			wantName:     "Scenario",
			wantWinner:   "rent",
			differential: 246,
		},
		{
			name:         "flat parameters",
			path:         "/api/v1/scenario?name=Flat",
			body:         `{"monthly_rent": "1100"}`,
			wantName:     "Flat",
			wantWinner:   "own",
			differential: -4,
		},
		{
			name:         "nested parameters",
			path:         "/api/v1/scenario",
			body:         `{"name": "Nested", "parameters": {"monthly_rent": 1100}}`,
			wantName:     "Nested",
			wantWinner:   "own",
			differential: -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestServer(t).Router()
			w := do(t, router, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var res domain.ScenarioResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.wantName, res.Name)
			assert.Equal(t, tt.wantWinner, res.Summary.Winner)
			assert.True(t, res.Summary.RentDifferential.Equal(decimal.NewFromInt(tt.differential)),
				"differential %s", res.Summary.RentDifferential)
			assert.Len(t, res.Loan, 300)
			assert.Len(t, res.OwnLong, 360)
		})
	}
}

func TestScenario_InvalidInput(t *testing.T) {
	tests := map[string]string{
		"malformed json":      `{"monthly_rent":`,
		"out of range":        `{"interest_rate": "0.9"}`,
		"no loan":             `{"purchase_price": "100000", "down_payment": "100000"}`,
		"nested out of range": `{"parameters": {"monthly_rent": "5"}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t)
			w := do(t, s.Router(), http.MethodPost, "/api/v1/scenario", body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
			assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().CalculationErrors.WithLabelValues("scenario", "invalid_input")))
		})
	}
}

func TestScenarios(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s.Router(), http.MethodPost, "/api/v1/scenarios", exampleConfiguration())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res domain.ScenarioComparison
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Scenarios, 2)
	assert.Equal(t, "High Rent", res.Analysis.BestScenario)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().Scenarios.WithLabelValues("own")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().Scenarios.WithLabelValues("rent")))
}

func TestScenarios_Rejected(t *testing.T) {
	tooMany := exampleConfiguration()
	for len(tooMany.Scenarios) <= 3 {
		sc := tooMany.Scenarios[0]
		sc.Name = sc.Name + " copy"
		tooMany.Scenarios = append(tooMany.Scenarios, sc)
	}
	duplicate := exampleConfiguration()
	duplicate.Scenarios[1].Name = duplicate.Scenarios[0].Name

	tests := []struct {
		name string
		body any
		want string
	}{
		{"no scenarios", `{"scenarios": []}`, "no scenarios"},
		{"limit", tooMany, "exceed the limit"},
		{"duplicate names", duplicate, "already used"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestServer(t).Router(), http.MethodPost, "/api/v1/scenarios", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
		contains    string
	}{
		{"json", "application/json", `"best_scenario"`},
		{"csv", "text/csv; charset=utf-8", "Scenario,MonthlyPayment"},
		{"markdown", "text/markdown; charset=utf-8", "# Renting versus Owning"},
		{"html", "text/html; charset=utf-8", "<html"},
		{"console", "text/plain; charset=utf-8", "RENT VERSUS OWN ANALYSIS"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w := do(t, newTestServer(t).Router(), http.MethodPost, "/api/v1/report/"+tt.format, exampleConfiguration())
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestReport_Binary(t *testing.T) {
	router := newTestServer(t).Router()

	w := do(t, router, http.MethodPost, "/api/v1/report/pdf", exampleConfiguration())
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	w = do(t, router, http.MethodPost, "/api/v1/report/xlsx", exampleConfiguration())
	require.Equal(t, http.StatusOK, w.Code)
	// xlsx is a zip archive
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
}

func TestReport_UnknownFormat(t *testing.T) {
	w := do(t, newTestServer(t).Router(), http.MethodPost, "/api/v1/report/docx", exampleConfiguration())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "docx")
}

func TestAmortization(t *testing.T) {
	body := `{"principal": "200000", "annual_rate": "0.03", "term_years": 25}`
	w := do(t, newTestServer(t).Router(), http.MethodPost, "/api/v1/amortization", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp AmortizationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "948", resp.Payment)
	require.Len(t, resp.Schedule, 300)
	assert.Equal(t, 1, resp.Schedule[0].Month)
	assert.Equal(t, 25, resp.Schedule[299].Year)

	w = do(t, newTestServer(t).Router(), http.MethodPost, "/api/v1/amortization", `{"principal": "200000", "annual_rate": "0.03", "term_years": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchedules_TermOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"loan beyond fifty years", "/api/v1/amortization", `{"principal": "100000", "annual_rate": "0.045", "term_years": 51}`},
		{"runaway loan", "/api/v1/amortization", `{"principal": "100000", "annual_rate": "0.045", "term_years": 10000000}`},
		{"investment beyond horizon", "/api/v1/investment", `{"initial_balance": "0", "monthly_flow": "1000", "annual_return": "0.07", "term_years": 151}`},
		{"runaway investment", "/api/v1/investment", `{"initial_balance": "0", "monthly_flow": "1000", "annual_return": "0.07", "term_years": 10000000}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestServer(t).Router(), http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, "term_years")
		})
	}
}

func TestInvestment(t *testing.T) {
	body := `{"initial_balance": "1000", "monthly_flow": "100", "annual_return": "0.05", "term_years": 2}`
	w := do(t, newTestServer(t).Router(), http.MethodPost, "/api/v1/investment", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp InvestmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Schedule, 24)
	assert.Equal(t, 24, resp.Final.Month)
	assert.True(t, resp.Final.Contributions.Equal(decimal.NewFromInt(3400)), "contributions %s", resp.Final.Contributions)
	assert.True(t, resp.Final.Balance.GreaterThan(resp.Final.Contributions))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	router := s.Router()
	do(t, router, http.MethodGet, "/api/v1/health", nil)
	do(t, router, http.MethodGet, "/nowhere", nil)

	w := do(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/v1/health",status="200"} 1`)
	assert.Contains(t, w.Body.String(), `route="unmatched"`)
}

func TestMetricsDisabled(t *testing.T) {
	s := newTestServer(t)
	s.cfg.MetricsEnabled = false
	w := do(t, s.Router(), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
