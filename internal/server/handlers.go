package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/rasmushaa/renting-vs-owning/internal/calculation"
	"github.com/rasmushaa/renting-vs-owning/internal/config"
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/internal/output"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// AmortizationResponse is a loan schedule with its payment.
type AmortizationResponse struct {
	Payment  string                   `json:"payment"`
	Schedule []domain.AmortizationRow `json:"schedule"`
}

// InvestmentResponse is an investment schedule with its final row.
type InvestmentResponse struct {
	Final    domain.InvestmentRow   `json:"final"`
	Schedule []domain.InvestmentRow `json:"schedule"`
}

// Health reports liveness.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": s.version})
}

// Example returns the example configuration.
func (s *Server) Example(c *gin.Context) {
	c.JSON(http.StatusOK, config.NewInputParser().CreateExampleConfiguration())
}

// Scenario evaluates one scenario. Fields missing from the body keep the values
// of the reference scenario. The body is either the parameters themselves or
// {"name": ..., "parameters": {...}}.
func (s *Server) Scenario(c *gin.Context) {
	sc := domain.Scenario{Name: c.DefaultQuery("name", "Scenario"), Parameters: domain.DefaultParameters()}
	if err := bindNestedOrFlat(c, "parameters", &sc.Parameters, &sc); err != nil {
		s.badRequest(c, "scenario", fmt.Errorf("invalid request body: %w", err))
		return
	}

	ctx, span := s.tracer.Start(c.Request.Context(), "scenario.compose")
	defer span.End()
	span.SetAttributes(attribute.String("scenario.name", sc.Name))

	res, err := s.engine.RunScenario(ctx, sc.Name, sc.Parameters)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.Scenarios.WithLabelValues("error").Inc()
		s.fail(c, "scenario", err)
		return
	}
	span.SetAttributes(
		attribute.String("scenario.winner", res.Summary.Winner),
		attribute.Int("scenario.break_even_month", res.Summary.BreakEvenMonth),
	)
	s.metrics.Scenarios.WithLabelValues(res.Summary.Winner).Inc()
	c.JSON(http.StatusOK, res)
}

// Scenarios evaluates a whole configuration.
func (s *Server) Scenarios(c *gin.Context) {
	cfg, ok := s.bindConfiguration(c, "scenarios")
	if !ok {
		return
	}
	res, ok := s.runConfiguration(c, "scenarios", cfg)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

// Report evaluates a configuration and answers with one of the output formats.
func (s *Server) Report(c *gin.Context) {
	f, err := output.LookupFormatter(c.Param("format"))
	if err != nil {
		c.JSON(http.StatusNotFound, s.errorBody(c, err))
		return
	}
	cfg, ok := s.bindConfiguration(c, "report")
	if !ok {
		return
	}
	res, ok := s.runConfiguration(c, "report", cfg)
	if !ok {
		return
	}
	data, err := f.Format(res)
	if err != nil {
		s.fail(c, "report", err)
		return
	}
	c.Data(http.StatusOK, contentType(output.FileExtension(f)), data)
}

// Amortization returns the schedule of a standalone loan.
func (s *Server) Amortization(c *gin.Context) {
	var terms domain.LoanTerms
	if err := c.ShouldBindJSON(&terms); err != nil {
		s.badRequest(c, "amortization", fmt.Errorf("invalid request body: %w", err))
		return
	}
	_, span := s.tracer.Start(c.Request.Context(), "amortization.schedule")
	defer span.End()

	rows, err := calculation.LoanSchedule(terms)
	if err != nil {
		span.RecordError(err)
		s.fail(c, "amortization", err)
		return
	}
	c.JSON(http.StatusOK, AmortizationResponse{Payment: rows[0].Payment.String(), Schedule: rows})
}

// Investment returns the schedule of a standalone investment account.
func (s *Server) Investment(c *gin.Context) {
	var terms domain.InvestmentTerms
	if err := c.ShouldBindJSON(&terms); err != nil {
		s.badRequest(c, "investment", fmt.Errorf("invalid request body: %w", err))
		return
	}
	_, span := s.tracer.Start(c.Request.Context(), "investment.schedule")
	defer span.End()

	rows, err := calculation.Schedule(terms)
	if err != nil {
		span.RecordError(err)
		s.fail(c, "investment", err)
		return
	}
	c.JSON(http.StatusOK, InvestmentResponse{Final: rows[len(rows)-1], Schedule: rows})
}

func (s *Server) bindConfiguration(c *gin.Context, endpoint string) (*domain.Configuration, bool) {
	var cfg domain.Configuration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		s.badRequest(c, endpoint, fmt.Errorf("invalid request body: %w", err))
		return nil, false
	}
	if n := len(cfg.Scenarios); n > s.cfg.MaxScenariosPerRequest {
		s.badRequest(c, endpoint, fmt.Errorf("%d scenarios exceed the limit of %d per request", n, s.cfg.MaxScenariosPerRequest))
		return nil, false
	}
	if err := config.NewInputParser().ValidateConfiguration(&cfg); err != nil {
		s.badRequest(c, endpoint, err)
		return nil, false
	}
	return &cfg, true
}

func (s *Server) runConfiguration(c *gin.Context, endpoint string, cfg *domain.Configuration) (*domain.ScenarioComparison, bool) {
	ctx, span := s.tracer.Start(c.Request.Context(), "scenarios.run")
	defer span.End()
	span.SetAttributes(attribute.Int("scenarios.count", len(cfg.Scenarios)))

	res, err := s.engine.RunScenarios(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.Scenarios.WithLabelValues("error").Inc()
		s.fail(c, endpoint, err)
		return nil, false
	}
	for _, sc := range res.Scenarios {
		s.metrics.Scenarios.WithLabelValues(sc.Summary.Winner).Inc()
	}
	return res, true
}

// fail maps an engine error to a status: invalid input is the caller's fault,
// anything else is ours.
func (s *Server) fail(c *gin.Context, endpoint string, err error) {
	if errors.Is(err, domain.ErrInvalidParameter) {
		s.badRequest(c, endpoint, err)
		return
	}
	errorType := "internal"
	if errors.Is(err, domain.ErrNumericDegeneracy) {
		errorType = "numeric_degeneracy"
	}
	s.metrics.CalculationErrors.WithLabelValues(endpoint, errorType).Inc()
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, s.errorBody(c, err))
}

func (s *Server) badRequest(c *gin.Context, endpoint string, err error) {
	s.metrics.CalculationErrors.WithLabelValues(endpoint, "invalid_input").Inc()
	c.JSON(http.StatusBadRequest, s.errorBody(c, err))
}

func (s *Server) errorBody(c *gin.Context, err error) ErrorResponse {
	return ErrorResponse{Error: err.Error(), RequestID: c.GetString(requestIDKey)}
}

// bindNestedOrFlat binds the object under key when the body has one, and the
// whole body otherwise. The envelope, if given, is decoded from the whole body as well.
func bindNestedOrFlat(c *gin.Context, key string, obj any, envelope any) error {
	var body []byte
	if c.Request.Body != nil {
		var err error
		if body, err = io.ReadAll(c.Request.Body); err != nil {
			return err
		}
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var nested map[string]json.RawMessage
	if err := json.Unmarshal(body, &nested); err != nil {
		return err
	}
	if _, ok := nested[key]; ok && envelope != nil {
		return json.Unmarshal(body, envelope)
	}
	return json.Unmarshal(body, obj)
}

func contentType(ext string) string {
	switch ext {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "md":
		return "text/markdown; charset=utf-8"
	case "pdf":
		return "application/pdf"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}
