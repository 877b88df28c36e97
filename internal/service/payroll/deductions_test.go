package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSSSContribution(t *testing.T) {
	cases := []struct {
		gross string
		want  string
	}{
		{"0", "135"},
		{"1000", "135"},
		{"3250", "135"},    // floor boundary
		{"3250.01", "157.5"},
		{"3750", "157.5"},
		{"10000", "427.5"},
		{"20250", "900"},   // last band
		{"20251", "900"},   // cap boundary
		{"100000", "900"},
	}
	for _, c := range cases {
		got := SSSContribution(decimal.RequireFromString(c.gross))
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"SSSContribution(%s) = %s, want %s", c.gross, got, c.want)
	}
}

func TestPhilHealthContribution(t *testing.T) {
	cases := []struct {
		gross string
		want  string
	}{
		{"0", "300"},
		{"10000", "300"},          // minimum boundary
		{"10000.01", "300.0003"},  // 3%, sub-centavo preserved unrounded
		{"50000", "1500"},
		{"59999.99", "1799.9997"},
		{"60000", "1800"},
		{"200000", "1800"},
	}
	for _, c := range cases {
		got := PhilHealthContribution(decimal.RequireFromString(c.gross))
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"PhilHealthContribution(%s) = %s, want %s", c.gross, got, c.want)
	}
}

func TestPagIbigContribution(t *testing.T) {
	cases := []struct {
		gross string
		want  string
	}{
		{"1000", "10"},   // 1%
		{"1500", "15"},   // last 1% gross
		{"1501", "30.02"},
		{"5000", "100"},  // 2% lands exactly on the cap
		{"20000", "400"}, // uncapped here; composer caps at 100
	}
	for _, c := range cases {
		got := PagIbigContribution(decimal.RequireFromString(c.gross))
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"PagIbigContribution(%s) = %s, want %s", c.gross, got, c.want)
	}
}

func TestWithholdingTax(t *testing.T) {
	cases := []struct {
		taxable string
		want    string
	}{
		{"-100", "0"},
		{"0", "0"},
		{"20833", "0"},     // exempt boundary
		{"20834", "0.2"},   // first peso over
		{"33332", "2499.8"},
		{"33333", "2500"},
		{"66667", "10833.5"},
		{"166667", "40833.33"},
		{"666667", "200833.33"},
		{"666668", "200833.68"},
	}
	for _, c := range cases {
		got := WithholdingTax(decimal.RequireFromString(c.taxable))
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"WithholdingTax(%s) = %s, want %s", c.taxable, got, c.want)
	}
}

func TestCalculateDeductions(t *testing.T) {
	t.Run("mid range gross", func(t *testing.T) {
		// 25000: SSS capped at 900, PhilHealth 750, Pag-IBIG capped at 100,
		// taxable 23250 -> tax 483.40
		b := CalculateDeductions(decimal.RequireFromString("25000"))
		assert.True(t, b.SSS.Equal(decimal.RequireFromString("900")), "sss = %s", b.SSS)
		assert.True(t, b.PhilHealth.Equal(decimal.RequireFromString("750")), "philhealth = %s", b.PhilHealth)
		assert.True(t, b.PagIbig.Equal(decimal.RequireFromString("100")), "pagibig = %s", b.PagIbig)
		assert.True(t, b.WithholdingTax.Equal(decimal.RequireFromString("483.4")), "tax = %s", b.WithholdingTax)
		assert.True(t, b.Total.Equal(decimal.RequireFromString("2233.4")), "total = %s", b.Total)
	})

	t.Run("low gross pays no tax", func(t *testing.T) {
		// 4000: SSS 180, PhilHealth 300, Pag-IBIG 80, taxable 3440 -> 0
		b := CalculateDeductions(decimal.RequireFromString("4000"))
		assert.True(t, b.SSS.Equal(decimal.RequireFromString("180")))
		assert.True(t, b.PhilHealth.Equal(decimal.RequireFromString("300")))
		assert.True(t, b.PagIbig.Equal(decimal.RequireFromString("80")))
		assert.True(t, b.WithholdingTax.IsZero())
		assert.True(t, b.Total.Equal(decimal.RequireFromString("560")))
	})

	t.Run("fractional philhealth rounds in the report only", func(t *testing.T) {
		// 10000.01: PhilHealth is 300.0003 unrounded, reported as 300.00
		b := CalculateDeductions(decimal.RequireFromString("10000.01"))
		assert.True(t, b.PhilHealth.Equal(decimal.RequireFromString("300")), "philhealth = %s", b.PhilHealth)
		assert.True(t, b.SSS.Equal(decimal.RequireFromString("450")))
		assert.True(t, b.PagIbig.Equal(decimal.RequireFromString("100")))
		assert.True(t, b.Total.Equal(decimal.RequireFromString("850")), "total = %s", b.Total)
	})

	t.Run("zero gross still owes the floors", func(t *testing.T) {
		b := CalculateDeductions(decimal.Zero)
		assert.True(t, b.SSS.Equal(decimal.RequireFromString("135")))
		assert.True(t, b.PhilHealth.Equal(decimal.RequireFromString("300")))
		assert.True(t, b.PagIbig.IsZero())
		assert.True(t, b.WithholdingTax.IsZero())
		assert.True(t, b.Total.Equal(decimal.RequireFromString("435")))
	})

	t.Run("negative gross clamps to zero", func(t *testing.T) {
		b := CalculateDeductions(decimal.RequireFromString("-5000"))
		assert.True(t, b.Total.Equal(decimal.RequireFromString("435")))
		assert.False(t, b.SSS.IsNegative())
		assert.False(t, b.WithholdingTax.IsNegative())
	})
}
