package calculation

import (
	"fmt"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ApartmentValues returns price·g^m for m = 1..months at full precision, where g is
// the monthly growth factor of annualReturn. Index i holds month i+1.
func ApartmentValues(price, annualReturn decimal.Decimal, months int) ([]decimal.Decimal, error) {
	g, err := MonthlyGrowthFactor(annualReturn)
	if err != nil {
		return nil, fmt.Errorf("apartment appreciation: %w", err)
	}
	values := make([]decimal.Decimal, months)
	value := price
	for i := range values {
		value = value.Mul(g).Round(internalPrecision)
		values[i] = value
	}
	return values, nil
}

// FirstMonthPayment returns the rounded principal and interest of the first loan row.
// Both investment legs use these values for their whole horizon.
func FirstMonthPayment(loan []domain.AmortizationRow) (principal, interest decimal.Decimal) {
	if len(loan) == 0 {
		return decimal.Zero, decimal.Zero
	}
	return loan[0].Principal, loan[0].Interest
}

// RentDifferential is the monthly amount a renter invests instead of owning:
// month-1 principal + interest + condo fee - rent. It is negative when rent is the
// more expensive option.
func RentDifferential(p domain.ScenarioParameters, loan []domain.AmortizationRow) decimal.Decimal {
	principal, interest := FirstMonthPayment(loan)
	return principal.Add(interest).Add(p.CondoFee).Sub(p.MonthlyRent)
}

// OwnerReinvestedFlow is the former mortgage payment invested by the owner after
// payoff. The condo fee is still paid and is not part of it.
func OwnerReinvestedFlow(loan []domain.AmortizationRow) decimal.Decimal {
	principal, interest := FirstMonthPayment(loan)
	return principal.Add(interest)
}

// OwnTrack builds the short-horizon ownership rows, one per loan month.
func OwnTrack(p domain.ScenarioParameters, loan []domain.AmortizationRow, apartment []decimal.Decimal) ([]domain.OwnRow, error) {
	if len(apartment) < len(loan) {
		return nil, fmt.Errorf("apartment track has %d months, loan has %d", len(apartment), len(loan))
	}
	rows := make([]domain.OwnRow, len(loan))
	for i, l := range loan {
		value := roundWhole(apartment[i])
		rows[i] = domain.OwnRow{
			Month:     l.Month,
			Year:      l.Year,
			Apartment: value,
			Balance:   l.Balance,
			CondoFee:  p.CondoFee,
			NetAssets: value.Sub(l.Balance),
		}
	}
	return rows, nil
}

// RentTrack invests the down payment plus the monthly differential over termYears.
// Net assets are contributions plus interest. No terminal row is added.
func RentTrack(downPayment, differential, investmentReturn decimal.Decimal, termYears int) ([]domain.RentRow, error) {
	schedule, err := InvestmentSchedule(downPayment, differential, investmentReturn, termYears)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.RentRow, len(schedule))
	for i, s := range schedule {
		rows[i] = domain.RentRow{
			Month:         s.Month,
			Year:          s.Year,
			Contributions: s.Contributions,
			Interest:      s.Interest,
			Balance:       s.Balance,
			NetAssets:     s.Contributions.Add(s.Interest),
		}
	}
	return rows, nil
}

// RentLongTrack is RentTrack over the mortgage term plus the extra horizon. The final
// month is replaced by the capital gains realization row.
func RentLongTrack(p domain.ScenarioParameters, differential decimal.Decimal) ([]domain.RentRow, error) {
	rows, err := RentTrack(p.DownPayment, differential, p.InvestmentReturn, p.TotalYears())
	if err != nil {
		return nil, err
	}
	last := len(rows) - 1
	rows[last] = RealizeRent(rows[last], p.CapitalGainsTaxRate, p.TotalYears())
	return rows, nil
}

// OwnLongTrack combines the mortgage phase with reinvestment of the former payment
// once the loan is paid off. The final month is replaced by the liquidation row.
//
// During the mortgage the investment columns are zero. Afterwards the loan balance
// is zero and an investment schedule starting from nothing receives reinvest each
// month for the extra horizon.
func OwnLongTrack(p domain.ScenarioParameters, loan []domain.AmortizationRow, apartment []decimal.Decimal, reinvest decimal.Decimal) ([]domain.CombinedRow, error) {
	rows, err := ownLongRows(p, loan, apartment, reinvest)
	if err != nil {
		return nil, err
	}
	last := len(rows) - 1
	rows[last] = RealizeOwn(rows[last], p.ApartmentGainTaxRate, p.CapitalGainsTaxRate, p.TotalYears())
	return rows, nil
}

// ownLongRows builds the long ownership track before liquidation.
func ownLongRows(p domain.ScenarioParameters, loan []domain.AmortizationRow, apartment []decimal.Decimal, reinvest decimal.Decimal) ([]domain.CombinedRow, error) {
	totalMonths := dateutil.MonthsInYears(p.TotalYears())
	if len(apartment) < totalMonths {
		return nil, fmt.Errorf("apartment track has %d months, need %d", len(apartment), totalMonths)
	}
	investing, err := InvestmentSchedule(decimal.Zero, reinvest, p.InvestmentReturn, p.ExtraHorizonYears)
	if err != nil {
		return nil, fmt.Errorf("owner reinvestment: %w", err)
	}

	rows := make([]domain.CombinedRow, totalMonths)
	loanMonths := len(loan)
	for i := range rows {
		month := i + 1
		row := domain.CombinedRow{
			Month:         month,
			Year:          dateutil.YearOfMonth(month),
			Apartment:     p.PurchasePrice,
			ApartmentGain: roundWhole(apartment[i]).Sub(p.PurchasePrice),
		}
		if i < loanMonths {
			row.Balance = loan[i].Balance
		} else {
			inv := investing[i-loanMonths]
			row.Contributions = inv.Contributions
			row.Interest = inv.Interest
		}
		row.NetAssets = row.Apartment.Add(row.ApartmentGain).Add(row.Contributions).Add(row.Interest).Sub(row.Balance)
		rows[i] = row
	}
	return rows, nil
}

// Compose validates p and evaluates every track of one scenario.
func Compose(p domain.ScenarioParameters) (*domain.ScenarioResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	loan, err := LoanSchedule(p.Loan())
	if err != nil {
		return nil, fmt.Errorf("mortgage: %w", err)
	}
	apartment, err := ApartmentValues(p.PurchasePrice, p.ApartmentReturn, dateutil.MonthsInYears(p.TotalYears()))
	if err != nil {
		return nil, err
	}

	own, err := OwnTrack(p, loan, apartment)
	if err != nil {
		return nil, err
	}
	differential := RentDifferential(p, loan)
	rent, err := RentTrack(p.DownPayment, differential, p.InvestmentReturn, p.MortgageTermYears)
	if err != nil {
		return nil, fmt.Errorf("rent track: %w", err)
	}
	reinvest := OwnerReinvestedFlow(loan)
	ownLong, err := OwnLongTrack(p, loan, apartment, reinvest)
	if err != nil {
		return nil, err
	}
	rentLong, err := RentLongTrack(p, differential)
	if err != nil {
		return nil, fmt.Errorf("rent long track: %w", err)
	}

	result := &domain.ScenarioResult{
		Parameters:  p,
		Loan:        loan,
		Own:         own,
		Rent:        rent,
		OwnLong:     ownLong,
		RentLong:    rentLong,
		Assumptions: p.GenerateAssumptions(),
	}
	result.Summary = Summarize(p, result)
	return result, nil
}

// Summarize derives the comparison figures from the computed tracks.
func Summarize(p domain.ScenarioParameters, r *domain.ScenarioResult) domain.Comparison {
	var c domain.Comparison
	if len(r.Loan) > 0 {
		c.MonthlyPayment = r.Loan[0].Payment
		c.FirstPrincipal, c.FirstInterest = FirstMonthPayment(r.Loan)
		c.FinalLoanBalance = r.Loan[len(r.Loan)-1].Balance
	}
	c.MonthlyOwnCost = c.FirstPrincipal.Add(c.FirstInterest).Add(p.CondoFee)
	c.RentDifferential = RentDifferential(p, r.Loan)
	c.OwnerReinvestment = OwnerReinvestedFlow(r.Loan)

	if len(r.Own) > 0 {
		c.ShortOwnNetAssets = r.Own[len(r.Own)-1].NetAssets
	}
	if len(r.Rent) > 0 {
		c.ShortRentNetAssets = r.Rent[len(r.Rent)-1].NetAssets
	}

	// Pre-tax figures are read from the last month before liquidation.
	ownNatural, rentNatural := naturalOwnRows(r.OwnLong), naturalRentRows(r.RentLong)
	if len(ownNatural) > 0 {
		c.OwnPreTax = ownNatural[len(ownNatural)-1].NetAssets
	}
	if len(rentNatural) > 0 {
		c.RentPreTax = rentNatural[len(rentNatural)-1].NetAssets
	}
	if t, ok := r.OwnTerminal(); ok {
		c.OwnPostTax = t.NetAssets
	}
	if t, ok := r.RentTerminal(); ok {
		c.RentPostTax = t.NetAssets
	}

	c.OwnWins = OwnWins(c.OwnPostTax, c.RentPostTax)
	c.Winner = domain.WinnerRent
	if c.OwnWins {
		c.Winner = domain.WinnerOwn
	}
	c.Margin = c.OwnPostTax.Sub(c.RentPostTax)
	c.BreakEvenMonth = BreakEvenMonth(ownNatural, rentNatural)
	return c
}

// OwnWins reports whether owning ends strictly ahead. A tie goes to renting.
func OwnWins(ownFinal, rentFinal decimal.Decimal) bool {
	return ownFinal.GreaterThan(rentFinal)
}

func naturalOwnRows(rows []domain.CombinedRow) []domain.CombinedRow {
	if n := len(rows); n > 0 && rows[n-1].Terminal {
		return rows[:n-1]
	}
	return rows
}

func naturalRentRows(rows []domain.RentRow) []domain.RentRow {
	if n := len(rows); n > 0 && rows[n-1].Terminal {
		return rows[:n-1]
	}
	return rows
}
