package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Track names used in the detailed exports.
const (
	TrackLoan     = "loan"
	TrackOwn      = "own"
	TrackRent     = "rent"
	TrackOwnLong  = "own_long"
	TrackRentLong = "rent_long"
)

// CSVDetailedExporter exports every monthly row of every track in long format:
// one CSV row per scenario, track and month. Columns that a track does not carry
// are left empty.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

var detailedHeader = []string{"Scenario", "Track", "Month", "Year", "Date", "Payment", "Principal", "Interest", "Balance", "Contributions", "Apartment", "ApartmentGain", "CondoFee", "NetAssets", "Terminal"}

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(detailedHeader); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioResult(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, row := range trackRows(sc) {
			if !results.StartDate.IsZero() {
				row.Date = dateutil.MonthLabel(results.StartDate, row.Month)
			}
			if err := w.Write(row.record()); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// trackRow is the union of the columns of all tracks. Nil fields render empty.
type trackRow struct {
	Scenario      string
	Track         string
	Month         int
	Year          int
	Date          string
	Payment       *decimal.Decimal
	Principal     *decimal.Decimal
	Interest      *decimal.Decimal
	Balance       *decimal.Decimal
	Contributions *decimal.Decimal
	Apartment     *decimal.Decimal
	ApartmentGain *decimal.Decimal
	CondoFee      *decimal.Decimal
	NetAssets     *decimal.Decimal
	Terminal      bool
}

func (r trackRow) record() []string {
	return []string{
		r.Scenario, r.Track, intToString(r.Month), intToString(r.Year), r.Date,
		cell(r.Payment), cell(r.Principal), cell(r.Interest), cell(r.Balance),
		cell(r.Contributions), cell(r.Apartment), cell(r.ApartmentGain), cell(r.CondoFee),
		cell(r.NetAssets), boolToString(r.Terminal),
	}
}

// cell renders whole amounts without decimals and keeps the precision of the
// unrounded after-tax figures.
func cell(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(0)
	}
	return d.StringFixed(2)
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

// trackRows flattens the tables of one scenario in loan, own, rent, own_long,
// rent_long order.
func trackRows(sc domain.ScenarioResult) []trackRow {
	rows := make([]trackRow, 0, len(sc.Loan)+len(sc.Own)+len(sc.Rent)+len(sc.OwnLong)+len(sc.RentLong))
	for _, r := range sc.Loan {
		rows = append(rows, trackRow{
			Scenario: sc.Name, Track: TrackLoan, Month: r.Month, Year: r.Year,
			Payment: ptr(r.Payment), Principal: ptr(r.Principal), Interest: ptr(r.Interest), Balance: ptr(r.Balance),
		})
	}
	for _, r := range sc.Own {
		rows = append(rows, trackRow{
			Scenario: sc.Name, Track: TrackOwn, Month: r.Month, Year: r.Year,
			Apartment: ptr(r.Apartment), Balance: ptr(r.Balance), CondoFee: ptr(r.CondoFee), NetAssets: ptr(r.NetAssets),
		})
	}
	for _, r := range sc.Rent {
		rows = append(rows, rentTrackRow(sc.Name, TrackRent, r))
	}
	for _, r := range sc.OwnLong {
		rows = append(rows, trackRow{
			Scenario: sc.Name, Track: TrackOwnLong, Month: r.Month, Year: r.Year,
			Balance: ptr(r.Balance), Contributions: ptr(r.Contributions), Interest: ptr(r.Interest),
			Apartment: ptr(r.Apartment), ApartmentGain: ptr(r.ApartmentGain), NetAssets: ptr(r.NetAssets),
			Terminal: r.Terminal,
		})
	}
	for _, r := range sc.RentLong {
		rows = append(rows, rentTrackRow(sc.Name, TrackRentLong, r))
	}
	return rows
}

func rentTrackRow(name, track string, r domain.RentRow) trackRow {
	return trackRow{
		Scenario: name, Track: track, Month: r.Month, Year: r.Year,
		Contributions: ptr(r.Contributions), Interest: ptr(r.Interest), Balance: ptr(r.Balance),
		NetAssets: ptr(r.NetAssets), Terminal: r.Terminal,
	}
}
