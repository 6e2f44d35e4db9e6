package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func m(s string) Money { return NewMoneyFromDecimal(stddec.RequireFromString(s)) }

func TestWholeUsesHalfEven(t *testing.T) {
	cases := []struct{ in, out string }{
		{"590.625", "591"},
		{"590.5", "590"},
		{"591.5", "592"},
		{"-0.4", "0"},
		{"-12.5", "-12"},
	}
	for _, c := range cases {
		got := m(c.in).Whole().Decimal
		if !got.Equal(stddec.RequireFromString(c.out)) {
			t.Fatalf("whole(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestTaxAndArithmetic(t *testing.T) {
	rate := stddec.RequireFromString("0.30")
	if got := m("9808").Tax(rate).Decimal; !got.Equal(stddec.RequireFromString("2942.4")) {
		t.Fatalf("Tax got %s want 2942.4", got)
	}
	if got := m("-100").Tax(rate).Decimal; !got.Equal(stddec.RequireFromString("-30")) {
		t.Fatalf("Tax on a loss got %s want -30", got)
	}

	a, b := m("10.10"), m("5.05")
	if got := a.Add(b).StringFixed(2); got != "15.15" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).StringFixed(2); got != "5.05" {
		t.Fatalf("Sub got %s", got)
	}
	if !Zero().IsZero() {
		t.Fatalf("Zero should be zero")
	}
}

func TestFormat(t *testing.T) {
	if got := m("1234.5").Format(); got != "$1,234.50" {
		t.Fatalf("Format got %s", got)
	}
	if got := m("175000").FormatWhole(); got != "$175,000" {
		t.Fatalf("FormatWhole got %s", got)
	}
	if got := m("999.5").FormatWhole(); got != "$1,000" {
		t.Fatalf("FormatWhole rounding got %s", got)
	}
	if got := m("-4").FormatWhole(); got != "-$4" {
		t.Fatalf("FormatWhole negative got %s", got)
	}
}
