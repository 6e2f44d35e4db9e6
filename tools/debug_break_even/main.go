package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rasmushaa/renting-vs-owning/internal/calculation"
	"github.com/rasmushaa/renting-vs-owning/internal/config"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	for _, s := range res.Scenarios {
		fmt.Printf("# %s\n", s.Name)
		fmt.Println("Month,Date,Year,OwnNet,RentNet,Gap,Leader")

		leader := ""
		for i := 0; i < len(s.OwnLong) && i < len(s.RentLong); i++ {
			own, rent := s.OwnLong[i], s.RentLong[i]
			if own.Terminal || rent.Terminal {
				break
			}
			gap := own.NetAssets.Sub(rent.NetAssets)
			current := "rent"
			if gap.GreaterThanOrEqual(decimal.Zero) {
				current = "own"
			}
			// print year ends and every month where the lead switches
			if current != leader || dateutil.IsYearEnd(own.Month) {
				date := ""
				if !res.StartDate.IsZero() {
					date = dateutil.MonthLabel(res.StartDate, own.Month)
				}
				fmt.Printf("%d,%s,%d,%s,%s,%s,%s\n", own.Month, date, own.Year,
					own.NetAssets.StringFixed(0), rent.NetAssets.StringFixed(0), gap.StringFixed(0), current)
			}
			leader = current
		}

		be := calc.FindBreakEven(s.OwnLong, s.RentLong)
		fmt.Printf("\nBreakEven: %+v\n", be)
		fmt.Printf("PostTax: own=%s rent=%s margin=%s winner=%s\n\n",
			s.Summary.OwnPostTax.StringFixed(2), s.Summary.RentPostTax.StringFixed(2), s.Summary.Margin.StringFixed(2), s.Summary.Winner)
	}
}
