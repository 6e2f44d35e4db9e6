package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rasmushaa/renting-vs-owning/internal/calculation"
	"github.com/rasmushaa/renting-vs-owning/internal/config"
)

// TestEngineSnapshot produces a deterministic snapshot of the whole-unit scenario metrics.
func TestEngineSnapshot(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })
	defer calculation.SetNowFunc(time.Now)

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../../testdata/example_config.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	eng := calculation.NewCalculationEngine()
	res, err := eng.RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run scenarios: %v", err)
	}

	// Trim to stable summary fields only
	type scenario struct {
		Name              string `json:"name"`
		Payment           string `json:"monthly_payment"`
		FirstPrincipal    string `json:"first_principal"`
		FirstInterest     string `json:"first_interest"`
		MonthlyCost       string `json:"monthly_own_cost"`
		RentDifferential  string `json:"rent_differential"`
		OwnerReinvestment string `json:"owner_reinvestment"`
		Winner            string `json:"winner"`
	}
	var out struct {
		Best      string     `json:"best_scenario"`
		Scenarios []scenario `json:"scenarios"`
	}
	out.Best = res.Analysis.BestScenario
	for _, sc := range res.Scenarios {
		s := sc.Summary
		out.Scenarios = append(out.Scenarios, scenario{
			Name:              sc.Name,
			Payment:           s.MonthlyPayment.String(),
			FirstPrincipal:    s.FirstPrincipal.String(),
			FirstInterest:     s.FirstInterest.String(),
			MonthlyCost:       s.MonthlyOwnCost.String(),
			RentDifferential:  s.RentDifferential.String(),
			OwnerReinvestment: s.OwnerReinvestment.String(),
			Winner:            s.Winner,
		})
	}
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, append(data, '\n'), 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if strings.TrimSpace(string(golden)) == "" {
		t.Fatalf("empty golden snapshot")
	}
	if strings.TrimSpace(string(golden)) != string(data) {
		t.Fatalf("engine snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", string(data), string(golden))
	}
}
