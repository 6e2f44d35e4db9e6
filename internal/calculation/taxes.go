package calculation

import (
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
	rdecimal "github.com/rasmushaa/renting-vs-owning/pkg/decimal"
	"github.com/shopspring/decimal"
)

// AfterTaxNetAssets realizes every gain at once:
//
//	N - apartmentGain·apartmentTaxRate - capitalGain·capitalGainsTaxRate
//
// Nothing is rounded beyond the inputs. A negative gain yields a credit.
func AfterTaxNetAssets(preTax, apartmentGain, capitalGain, apartmentTaxRate, capitalGainsTaxRate decimal.Decimal) decimal.Decimal {
	due := rdecimal.NewMoneyFromDecimal(apartmentGain).Tax(apartmentTaxRate).
		Add(rdecimal.NewMoneyFromDecimal(capitalGain).Tax(capitalGainsTaxRate))
	return rdecimal.NewMoneyFromDecimal(preTax).Sub(due).Decimal
}

// TerminalMonth is the month index of the liquidation row, one year past the last
// natural row of a totalYears horizon.
func TerminalMonth(totalYears int) int {
	return dateutil.MonthsInYears(totalYears) + domain.MonthsPerYear
}

// TerminalYear is the year index of the liquidation row.
func TerminalYear(totalYears int) int {
	return totalYears + 1
}

// RealizeOwn builds the liquidation row of the long ownership track from its last
// natural row. Every component is zero; only NetAssets is carried.
func RealizeOwn(last domain.CombinedRow, apartmentTaxRate, capitalGainsTaxRate decimal.Decimal, totalYears int) domain.CombinedRow {
	return domain.CombinedRow{
		Month:     TerminalMonth(totalYears),
		Year:      TerminalYear(totalYears),
		NetAssets: AfterTaxNetAssets(last.NetAssets, last.ApartmentGain, last.Interest, apartmentTaxRate, capitalGainsTaxRate),
		Terminal:  true,
	}
}

// RealizeRent builds the liquidation row of a renting track. No property is held,
// so only capital gains tax applies.
func RealizeRent(last domain.RentRow, capitalGainsTaxRate decimal.Decimal, totalYears int) domain.RentRow {
	return domain.RentRow{
		Month:     TerminalMonth(totalYears),
		Year:      TerminalYear(totalYears),
		NetAssets: AfterTaxNetAssets(last.NetAssets, decimal.Zero, last.Interest, decimal.Zero, capitalGainsTaxRate),
		Terminal:  true,
	}
}
