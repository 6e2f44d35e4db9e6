package calculation

import (
	"context"
	"fmt"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
)

// CalculationEngine evaluates rent-versus-own scenarios. It holds no per-scenario
// state and may be shared between goroutines once configured.
type CalculationEngine struct {
	Debug  bool // log the month-1 decomposition and both final figures
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// RunScenario validates params and computes every table of one scenario.
func (ce *CalculationEngine) RunScenario(ctx context.Context, name string, params domain.ScenarioParameters) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := Compose(params)
	if err != nil {
		ce.logger().Warnf("scenario %q rejected: %v", name, err)
		return nil, err
	}
	result.Name = name

	s := result.Summary
	if ce.Debug {
		ce.logger().Debugf("scenario %q: payment=%s principal_1=%s interest_1=%s rent_differential=%s owner_reinvestment=%s",
			name, s.MonthlyPayment, s.FirstPrincipal, s.FirstInterest, s.RentDifferential, s.OwnerReinvestment)
		ce.logger().Debugf("scenario %q: final loan balance %s (rounding drift)", name, s.FinalLoanBalance)
		ce.logger().Debugf("scenario %q: own pre-tax=%s post-tax=%s, rent pre-tax=%s post-tax=%s",
			name, s.OwnPreTax, s.OwnPostTax, s.RentPreTax, s.RentPostTax)
	}
	ce.logger().Infof("scenario %q: %s wins by %s", name, s.Winner, s.Margin.Abs().StringFixed(2))
	return result, nil
}

// RunScenarios evaluates every scenario of cfg in order. The first failing scenario
// aborts the run.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, cfg *domain.Configuration) (*domain.ScenarioComparison, error) {
	if cfg == nil || len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("configuration has no scenarios")
	}

	results := make([]domain.ScenarioResult, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		res, err := ce.RunScenario(ctx, sc.Name, sc.Parameters)
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i+1, sc.Name, err)
		}
		results[i] = *res
	}

	return &domain.ScenarioComparison{
		GeneratedAt: nowFunc().UTC(),
		StartDate:   cfg.StartDate,
		Scenarios:   results,
		Analysis:    ce.generateAnalysis(results),
		Assumptions: ModelAssumptions(),
	}, nil
}
