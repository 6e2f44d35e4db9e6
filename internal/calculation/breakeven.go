package calculation

import (
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenResult describes when owning overtakes renting for good on a pre-tax basis.
type BreakEvenResult struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	OwnNetAssets  decimal.Decimal `json:"own_net_assets"`
	RentNetAssets decimal.Decimal `json:"rent_net_assets"`
	Gap           decimal.Decimal `json:"gap"`          // own - rent at Month
	LeadChanges   int             `json:"lead_changes"` // times the leader switched along the horizon
}

// FindBreakEven compares the natural rows of both long tracks month by month and
// returns the first month from which owning stays at or above renting through the
// end of the series. It returns nil when owning finishes behind. Terminal rows are
// ignored.
func FindBreakEven(own []domain.CombinedRow, rent []domain.RentRow) *BreakEvenResult {
	own, rent = naturalOwnRows(own), naturalRentRows(rent)
	n := len(own)
	if len(rent) < n {
		n = len(rent)
	}
	if n == 0 {
		return nil
	}

	leadChanges := 0
	for i := 1; i < n; i++ {
		prevAhead := !own[i-1].NetAssets.LessThan(rent[i-1].NetAssets)
		currAhead := !own[i].NetAssets.LessThan(rent[i].NetAssets)
		if prevAhead != currAhead {
			leadChanges++
		}
	}

	// Walk back from the end while owning is still ahead.
	start := n
	for i := n - 1; i >= 0; i-- {
		if own[i].NetAssets.LessThan(rent[i].NetAssets) {
			break
		}
		start = i
	}
	if start == n {
		return nil
	}

	return &BreakEvenResult{
		Month:         own[start].Month,
		Year:          own[start].Year,
		OwnNetAssets:  own[start].NetAssets,
		RentNetAssets: rent[start].NetAssets,
		Gap:           own[start].NetAssets.Sub(rent[start].NetAssets),
		LeadChanges:   leadChanges,
	}
}

// BreakEvenMonth is FindBreakEven reduced to its month, 0 when there is none.
func BreakEvenMonth(own []domain.CombinedRow, rent []domain.RentRow) int {
	if res := FindBreakEven(own, rent); res != nil {
		return res.Month
	}
	return 0
}
