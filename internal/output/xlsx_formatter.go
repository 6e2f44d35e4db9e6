package output

import (
	"fmt"
	"strings"

	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// XLSXFormatter writes a workbook with a summary sheet followed by one sheet of
// monthly rows per scenario, in the same long format as the detailed CSV.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Renting versus Owning")
	_ = f.SetCellStyle(summarySheet, "A1", "A1", titleStyle)

	header := []string{"Scenario", "Monthly Payment", "Monthly Cost", "Monthly Rent", "Rent Differential", "Own Pre-Tax", "Own After Tax", "Rent Pre-Tax", "Rent After Tax", "Winner", "Margin", "Break-even Month"}
	if err := writeRow(f, summarySheet, 3, toCells(header)); err != nil {
		return nil, err
	}
	if err := styleHeader(f, summarySheet, 3, len(header), headerStyle); err != nil {
		return nil, err
	}

	for i, sc := range results.Scenarios {
		s := sc.Summary
		row := []any{
			sc.Name,
			s.MonthlyPayment.InexactFloat64(),
			s.MonthlyOwnCost.InexactFloat64(),
			sc.Parameters.MonthlyRent.InexactFloat64(),
			s.RentDifferential.InexactFloat64(),
			s.OwnPreTax.InexactFloat64(),
			s.OwnPostTax.Round(2).InexactFloat64(),
			s.RentPreTax.InexactFloat64(),
			s.RentPostTax.Round(2).InexactFloat64(),
			s.Winner,
			s.Margin.Round(2).InexactFloat64(),
			s.BreakEvenMonth,
		}
		if err := writeRow(f, summarySheet, 4+i, row); err != nil {
			return nil, err
		}
	}

	assumptionsRow := 6 + len(results.Scenarios)
	_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", assumptionsRow), "Assumptions")
	_ = f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", assumptionsRow), fmt.Sprintf("A%d", assumptionsRow), headerStyle)
	for i, a := range resultAssumptions(results) {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", assumptionsRow+1+i), a)
	}

	for i, sc := range results.Scenarios {
		sheet := scenarioSheetName(i, sc.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		if err := writeRow(f, sheet, 1, toCells(detailedHeader)); err != nil {
			return nil, err
		}
		if err := styleHeader(f, sheet, 1, len(detailedHeader), headerStyle); err != nil {
			return nil, err
		}

		for j, tr := range trackRows(sc) {
			if !results.StartDate.IsZero() {
				tr.Date = dateutil.MonthLabel(results.StartDate, tr.Month)
			}
			if err := writeRow(f, sheet, 2+j, xlsxCells(tr)); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// styleHeader applies style to the first width cells of row.
func styleHeader(f *excelize.File, sheet string, row, width, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

func toCells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func xlsxCells(r trackRow) []any {
	cells := []any{r.Scenario, r.Track, r.Month, r.Year, r.Date}
	for _, d := range [...]*decimal.Decimal{r.Payment, r.Principal, r.Interest, r.Balance, r.Contributions, r.Apartment, r.ApartmentGain, r.CondoFee, r.NetAssets} {
		if d == nil {
			cells = append(cells, nil)
			continue
		}
		cells = append(cells, d.InexactFloat64())
	}
	return append(cells, r.Terminal)
}

// scenarioSheetName keeps sheet names unique and within the 31 character limit.
func scenarioSheetName(index int, name string) string {
	s := fmt.Sprintf("%d %s", index+1, name)
	for _, c := range []string{":", "\\", "/", "?", "*", "[", "]"} {
		s = strings.ReplaceAll(s, c, "_")
	}
	if r := []rune(s); len(r) > 31 {
		s = string(r[:31])
	}
	return s
}
