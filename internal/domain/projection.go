package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmortizationRow is one month of a loan schedule. Monetary fields are rounded to
// whole currency units; Principal+Interest equals Payment within one unit.
type AmortizationRow struct {
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"` // after this month's payment
}

// InvestmentRow is one month of an investment schedule.
// Interest is cumulative growth (Balance - Contributions), not a periodic payment.
type InvestmentRow struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	Contributions decimal.Decimal `json:"contributions"` // includes the initial balance
	Interest      decimal.Decimal `json:"interest"`
	Balance       decimal.Decimal `json:"balance"`
}

// OwnRow is one month of the short-horizon ownership track.
type OwnRow struct {
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Apartment decimal.Decimal `json:"apartment"`
	Balance   decimal.Decimal `json:"balance"`
	CondoFee  decimal.Decimal `json:"condo_fee"`
	NetAssets decimal.Decimal `json:"net_assets"`
}

// RentRow is one month of a rent-and-invest track. The terminal row carries only
// NetAssets, after capital gains tax.
type RentRow struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	Contributions decimal.Decimal `json:"contributions"`
	Interest      decimal.Decimal `json:"interest"`
	Balance       decimal.Decimal `json:"balance"`
	NetAssets     decimal.Decimal `json:"net_assets"`
	Terminal      bool            `json:"terminal,omitempty"`
}

// CombinedRow is one month of the long-horizon ownership track: the mortgage phase
// followed by reinvestment of the former mortgage payment.
//
// Apartment is the purchase price (cost basis) and ApartmentGain the appreciation on
// top of it, so the market value of the apartment is Apartment+ApartmentGain.
type CombinedRow struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	Balance       decimal.Decimal `json:"balance"`
	Contributions decimal.Decimal `json:"contributions"`
	Interest      decimal.Decimal `json:"interest"`
	Apartment     decimal.Decimal `json:"apartment"`
	ApartmentGain decimal.Decimal `json:"apartment_gain"`
	NetAssets     decimal.Decimal `json:"net_assets"`
	Terminal      bool            `json:"terminal,omitempty"`
}

// Comparison summarizes one scenario for presentation.
type Comparison struct {
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	FirstPrincipal    decimal.Decimal `json:"first_principal"`
	FirstInterest     decimal.Decimal `json:"first_interest"`
	MonthlyOwnCost    decimal.Decimal `json:"monthly_own_cost"`   // principal + interest + condo fee, month 1
	RentDifferential  decimal.Decimal `json:"rent_differential"`  // invested monthly by the renter
	OwnerReinvestment decimal.Decimal `json:"owner_reinvestment"` // invested monthly by the owner after payoff
	FinalLoanBalance  decimal.Decimal `json:"final_loan_balance"` // rounding residual, ideally zero

	ShortOwnNetAssets  decimal.Decimal `json:"short_own_net_assets"`
	ShortRentNetAssets decimal.Decimal `json:"short_rent_net_assets"`

	OwnPreTax   decimal.Decimal `json:"own_pre_tax"`
	OwnPostTax  decimal.Decimal `json:"own_post_tax"`
	RentPreTax  decimal.Decimal `json:"rent_pre_tax"`
	RentPostTax decimal.Decimal `json:"rent_post_tax"`

	OwnWins        bool            `json:"own_wins"`
	Winner         string          `json:"winner"`
	Margin         decimal.Decimal `json:"margin"` // own post-tax minus rent post-tax
	BreakEvenMonth int             `json:"break_even_month"`
}

// Winner labels.
const (
	WinnerOwn  = "own"
	WinnerRent = "rent"
)

// ScenarioResult holds every table computed for one scenario.
type ScenarioResult struct {
	Name        string             `json:"name"`
	Parameters  ScenarioParameters `json:"parameters"`
	Loan        []AmortizationRow  `json:"loan"`
	Own         []OwnRow           `json:"own"`
	Rent        []RentRow          `json:"rent"`
	OwnLong     []CombinedRow      `json:"own_long"`
	RentLong    []RentRow          `json:"rent_long"`
	Summary     Comparison         `json:"summary"`
	Assumptions []string           `json:"assumptions"`
}

// OwnTerminal returns the after-tax liquidation row of the long ownership track.
func (sr *ScenarioResult) OwnTerminal() (CombinedRow, bool) {
	if len(sr.OwnLong) == 0 || !sr.OwnLong[len(sr.OwnLong)-1].Terminal {
		return CombinedRow{}, false
	}
	return sr.OwnLong[len(sr.OwnLong)-1], true
}

// RentTerminal returns the after-tax liquidation row of the long renting track.
func (sr *ScenarioResult) RentTerminal() (RentRow, bool) {
	if len(sr.RentLong) == 0 || !sr.RentLong[len(sr.RentLong)-1].Terminal {
		return RentRow{}, false
	}
	return sr.RentLong[len(sr.RentLong)-1], true
}

// ComparisonAnalysis ranks the scenarios of one configuration.
type ComparisonAnalysis struct {
	BestScenario      string          `json:"best_scenario"` // largest own-minus-rent margin
	BestMargin        decimal.Decimal `json:"best_margin"`
	WorstScenario     string          `json:"worst_scenario"`
	WorstMargin       decimal.Decimal `json:"worst_margin"`
	OwnWinsCount      int             `json:"own_wins_count"`
	RentWinsCount     int             `json:"rent_wins_count"`
	KeyConsiderations []string        `json:"key_considerations"`
}

// ScenarioComparison is the result of evaluating a whole configuration.
type ScenarioComparison struct {
	GeneratedAt time.Time          `json:"generated_at"`
	StartDate   time.Time          `json:"start_date,omitzero"`
	Scenarios   []ScenarioResult   `json:"scenarios"`
	Analysis    ComparisonAnalysis `json:"analysis"`
	Assumptions []string           `json:"assumptions"`
}
