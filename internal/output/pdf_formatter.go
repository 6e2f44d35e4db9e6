package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
)

// PDFFormatter renders a printable one-page-per-scenario summary.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// The core fonts are cp1252; translate so non-ASCII scenario names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, sc := range results.Scenarios {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(40, 10, tr("Renting versus Owning: "+sc.Name))
		pdf.Ln(12)

		writePDFSection(pdf, tr, "Mortgage and Apartment", [][2]string{
			{"Purchase price", FormatWhole(sc.Parameters.PurchasePrice)},
			{"Down payment", FormatWhole(sc.Parameters.DownPayment)},
			{"Loan amount", FormatWhole(sc.Parameters.LoanAmount())},
			{"Interest rate", FormatRate(sc.Parameters.InterestRate)},
			{"Mortgage term", fmt.Sprintf("%d years", sc.Parameters.MortgageTermYears)},
			{"Monthly payment", FormatWhole(sc.Summary.MonthlyPayment)},
			{"Total monthly cost", FormatWhole(sc.Summary.MonthlyOwnCost)},
		})
		writePDFSection(pdf, tr, "Renting and Investing", [][2]string{
			{"Monthly rent", FormatWhole(sc.Parameters.MonthlyRent)},
			{"Invested monthly", FormatWhole(sc.Summary.RentDifferential)},
			{"Investment return", FormatRate(sc.Parameters.InvestmentReturn)},
		})
		writePDFSection(pdf, tr, fmt.Sprintf("Net Assets after %d Years", sc.Parameters.TotalYears()), [][2]string{
			{"Owning, before taxes", FormatWhole(sc.Summary.OwnPreTax)},
			{"Owning, after taxes", FormatWhole(sc.Summary.OwnPostTax)},
			{"Renting, before taxes", FormatWhole(sc.Summary.RentPreTax)},
			{"Renting, after taxes", FormatWhole(sc.Summary.RentPostTax)},
		})

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 10, "Comparison")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr(VerdictFor(sc)), "", "", false)
		pdf.Ln(4)
	}

	if len(results.Scenarios) == 0 {
		pdf.AddPage()
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Assumptions")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	for _, a := range resultAssumptions(results) {
		pdf.MultiCell(0, 5, tr("- "+a), "", "", false)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePDFSection(pdf *gofpdf.Fpdf, tr func(string) string, title string, rows [][2]string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		pdf.Cell(60, 10, tr(r[0]+":"))
		pdf.Cell(40, 10, r[1])
		pdf.Ln(6)
	}
	pdf.Ln(6)
}
