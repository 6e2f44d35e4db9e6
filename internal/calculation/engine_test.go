package calculation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.add("DEBUG", format, args...) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.add("INFO", format, args...) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.add("WARN", format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.add("ERROR", format, args...) }

func (l *recordingLogger) joined() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}

func twoScenarioConfig() *domain.Configuration {
	highRent := domain.DefaultParameters()
	highRent.MonthlyRent = decimal.NewFromInt(1100)
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Baseline", Parameters: domain.DefaultParameters()},
			{Name: "High rent", Parameters: highRent},
		},
	}
}

func TestRunScenario_NamesResultAndLogs(t *testing.T) {
	ce := NewCalculationEngine()
	log := &recordingLogger{}
	ce.SetLogger(log)
	ce.Debug = true

	res, err := ce.RunScenario(context.Background(), "Baseline", domain.DefaultParameters())
	require.NoError(t, err)
	assert.Equal(t, "Baseline", res.Name)

	out := log.joined()
	assert.Contains(t, out, "principal_1=285 interest_1=591")
	assert.Contains(t, out, "rent wins by")
}

func TestRunScenario_InvalidParametersAreLogged(t *testing.T) {
	ce := NewCalculationEngine()
	log := &recordingLogger{}
	ce.SetLogger(log)

	p := domain.DefaultParameters()
	p.MortgageTermYears = 60
	_, err := ce.RunScenario(context.Background(), "Too long", p)
	require.ErrorIs(t, err, domain.ErrInvalidParameter)
	assert.Contains(t, log.joined(), "WARN scenario \"Too long\" rejected")
}

func TestRunScenario_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCalculationEngine().RunScenario(ctx, "x", domain.DefaultParameters())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	ce := NewCalculationEngine()
	ce.SetLogger(nil)
	assert.IsType(t, NopLogger{}, ce.Logger)

	ce.Logger = nil
	_, err := ce.RunScenario(context.Background(), "nil logger", domain.DefaultParameters())
	assert.NoError(t, err)
}

func TestRunScenarios_Comparison(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	SetNowFunc(func() time.Time { return fixed })
	defer SetNowFunc(time.Now)

	cfg := twoScenarioConfig()
	cfg.StartDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cmp, err := NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, cmp.Scenarios, 2)

	assert.Equal(t, fixed, cmp.GeneratedAt)
	assert.Equal(t, cfg.StartDate, cmp.StartDate)
	assert.Equal(t, "Baseline", cmp.Scenarios[0].Name)
	assert.Equal(t, domain.WinnerRent, cmp.Scenarios[0].Summary.Winner)
	assert.Equal(t, domain.WinnerOwn, cmp.Scenarios[1].Summary.Winner)

	a := cmp.Analysis
	assert.Equal(t, "High rent", a.BestScenario)
	assert.Equal(t, "Baseline", a.WorstScenario)
	assert.Equal(t, 1, a.OwnWinsCount)
	assert.Equal(t, 1, a.RentWinsCount)
	assert.Len(t, a.KeyConsiderations, 3)
	assert.NotEmpty(t, cmp.Assumptions)
}

func TestRunScenarios_WrapsFailingScenario(t *testing.T) {
	cfg := twoScenarioConfig()
	cfg.Scenarios[1].Parameters.DownPayment = decimal.NewFromInt(200000)

	_, err := NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "scenario 2 (High rent)")
}

func TestRunScenarios_EmptyConfiguration(t *testing.T) {
	_, err := NewCalculationEngine().RunScenarios(context.Background(), &domain.Configuration{})
	assert.Error(t, err)
	_, err = NewCalculationEngine().RunScenarios(context.Background(), nil)
	assert.Error(t, err)
}

func TestRunScenario_ConcurrentCallsAgree(t *testing.T) {
	ce := NewCalculationEngine()
	want, err := ce.RunScenario(context.Background(), "ref", domain.DefaultParameters())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*domain.ScenarioResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = ce.RunScenario(context.Background(), "ref", domain.DefaultParameters())
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.NotNil(t, r)
		assert.True(t, r.Summary.Margin.Equal(want.Summary.Margin))
	}
}
