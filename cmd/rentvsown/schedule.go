package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rasmushaa/renting-vs-owning/internal/calculation"
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/pkg/dateutil"
	rdecimal "github.com/rasmushaa/renting-vs-owning/pkg/decimal"
)

func newAmortizeCmd() *cobra.Command {
	defaults := domain.DefaultParameters().Loan()
	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Print the amortization schedule of a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			principal, err := decimalFlagValue(cmd, "principal")
			if err != nil {
				return err
			}
			rate, err := decimalFlagValue(cmd, "rate")
			if err != nil {
				return err
			}
			years, _ := cmd.Flags().GetInt("years")
			monthly, _ := cmd.Flags().GetBool("monthly")

			rows, err := calculation.LoanSchedule(domain.LoanTerms{Principal: principal, AnnualRate: rate, TermYears: years})
			if err != nil {
				return err
			}
			writeLoanSchedule(cmd.OutOrStdout(), rows, monthly)
			return nil
		},
	}
	cmd.Flags().String("principal", defaults.Principal.String(), "loan amount")
	cmd.Flags().String("rate", defaults.AnnualRate.String(), "nominal annual rate")
	cmd.Flags().Int("years", defaults.TermYears, "term in years")
	cmd.Flags().Bool("monthly", false, "print every month instead of yearly totals")
	return cmd
}

func newInvestCmd() *cobra.Command {
	defaults := domain.DefaultParameters()
	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Print the growth of an investment account with a constant monthly flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			initial, err := decimalFlagValue(cmd, "initial")
			if err != nil {
				return err
			}
			flow, err := decimalFlagValue(cmd, "flow")
			if err != nil {
				return err
			}
			ret, err := decimalFlagValue(cmd, "return")
			if err != nil {
				return err
			}
			years, _ := cmd.Flags().GetInt("years")

			rows, err := calculation.Schedule(domain.InvestmentTerms{
				InitialBalance: initial,
				MonthlyFlow:    flow,
				AnnualReturn:   ret,
				TermYears:      years,
			})
			if err != nil {
				return err
			}
			writeInvestmentSchedule(cmd.OutOrStdout(), rows)
			return nil
		},
	}
	cmd.Flags().String("initial", defaults.DownPayment.String(), "initial balance")
	cmd.Flags().String("flow", "0", "monthly contribution, negative for withdrawals")
	cmd.Flags().String("return", defaults.InvestmentReturn.String(), "annual return")
	cmd.Flags().Int("years", defaults.TotalYears(), "term in years")
	return cmd
}

func writeLoanSchedule(w io.Writer, rows []domain.AmortizationRow, monthly bool) {
	fmt.Fprintf(w, "Monthly payment: %s\n\n", rdecimal.NewMoneyFromDecimal(rows[0].Payment).FormatWhole())

	label := "Year"
	if monthly {
		label = "Month"
	}
	fmt.Fprintf(w, "%-6s %14s %14s %14s\n", label, "Principal", "Interest", "Balance")
	fmt.Fprintln(w, strings.Repeat("-", 51))

	principal, interest := rdecimal.Zero(), rdecimal.Zero()
	for _, r := range rows {
		principal = principal.Add(rdecimal.NewMoneyFromDecimal(r.Principal))
		interest = interest.Add(rdecimal.NewMoneyFromDecimal(r.Interest))
		if !monthly && !dateutil.IsYearEnd(r.Month) {
			continue
		}
		idx := r.Year
		if monthly {
			idx = r.Month
		}
		fmt.Fprintf(w, "%-6d %14s %14s %14s\n", idx, principal.FormatWhole(), interest.FormatWhole(),
			rdecimal.NewMoneyFromDecimal(r.Balance).FormatWhole())
		principal, interest = rdecimal.Zero(), rdecimal.Zero()
	}
}

func writeInvestmentSchedule(w io.Writer, rows []domain.InvestmentRow) {
	fmt.Fprintf(w, "%-6s %16s %16s %16s\n", "Year", "Contributions", "Interest", "Balance")
	fmt.Fprintln(w, strings.Repeat("-", 57))
	for _, r := range rows {
		if !dateutil.IsYearEnd(r.Month) {
			continue
		}
		fmt.Fprintf(w, "%-6d %16s %16s %16s\n", r.Year,
			rdecimal.NewMoneyFromDecimal(r.Contributions).FormatWhole(),
			rdecimal.NewMoneyFromDecimal(r.Interest).FormatWhole(),
			rdecimal.NewMoneyFromDecimal(r.Balance).FormatWhole())
	}
}
