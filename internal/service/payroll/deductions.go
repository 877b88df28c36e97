package payroll

import (
	"github.com/motorph/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// contributionBand is one row of a stepped contribution schedule: the
// amount applies to any gross up to and including UpperBound.
type contributionBand struct {
	UpperBound decimal.Decimal
	Amount     decimal.Decimal
}

// sssSchedule is the SSS contribution table: 500-peso salary bands
// stepping 22.50 per band from the 135.00 floor to the 900.00 cap.
// Kept as literal rows so it can be audited against the published table.
var sssSchedule = []contributionBand{
	{d("3250"), d("135.00")},
	{d("3750"), d("157.50")},
	{d("4250"), d("180.00")},
	{d("4750"), d("202.50")},
	{d("5250"), d("225.00")},
	{d("5750"), d("247.50")},
	{d("6250"), d("270.00")},
	{d("6750"), d("292.50")},
	{d("7250"), d("315.00")},
	{d("7750"), d("337.50")},
	{d("8250"), d("360.00")},
	{d("8750"), d("382.50")},
	{d("9250"), d("405.00")},
	{d("9750"), d("427.50")},
	{d("10250"), d("450.00")},
	{d("10750"), d("472.50")},
	{d("11250"), d("495.00")},
	{d("11750"), d("517.50")},
	{d("12250"), d("540.00")},
	{d("12750"), d("562.50")},
	{d("13250"), d("585.00")},
	{d("13750"), d("607.50")},
	{d("14250"), d("630.00")},
	{d("14750"), d("652.50")},
	{d("15250"), d("675.00")},
	{d("15750"), d("697.50")},
	{d("16250"), d("720.00")},
	{d("16750"), d("742.50")},
	{d("17250"), d("765.00")},
	{d("17750"), d("787.50")},
	{d("18250"), d("810.00")},
	{d("18750"), d("832.50")},
	{d("19250"), d("855.00")},
	{d("19750"), d("877.50")},
	{d("20250"), d("900.00")},
}

// sssMax is the contribution above the last band.
var sssMax = d("900.00")

// SSSContribution looks up the monthly SSS contribution for a gross pay.
func SSSContribution(monthlyGross decimal.Decimal) decimal.Decimal {
	for _, band := range sssSchedule {
		if monthlyGross.LessThanOrEqual(band.UpperBound) {
			return band.Amount
		}
	}
	return sssMax
}

var (
	philHealthFloorGross = d("10000")
	philHealthCeilGross  = d("59999.99")
	philHealthMin        = d("300.00")
	philHealthMax        = d("1800.00")
	philHealthRate       = d("0.03")
)

// PhilHealthContribution computes the monthly PhilHealth premium:
// 300.00 minimum up to 10000, 3% of gross in between, 1800.00 cap
// from 60000 up. Unrounded; the composer rounds.
func PhilHealthContribution(monthlyGross decimal.Decimal) decimal.Decimal {
	if monthlyGross.LessThanOrEqual(philHealthFloorGross) {
		return philHealthMin
	}
	if monthlyGross.LessThanOrEqual(philHealthCeilGross) {
		return monthlyGross.Mul(philHealthRate)
	}
	return philHealthMax
}

var (
	pagibigLowGross   = d("1500")
	pagibigLowRate    = d("0.01")
	pagibigHighRate   = d("0.02")
	pagibigMonthlyCap = d("100.00")
)

// PagIbigContribution computes the uncapped Pag-IBIG contribution: 1%
// of gross up to 1500, 2% above. The 100.00 monthly cap is applied by
// CalculateDeductions, not here.
func PagIbigContribution(monthlyGross decimal.Decimal) decimal.Decimal {
	if monthlyGross.LessThanOrEqual(pagibigLowGross) {
		return monthlyGross.Mul(pagibigLowRate)
	}
	return monthlyGross.Mul(pagibigHighRate)
}

// taxBracket is one progressive withholding-tax row:
// tax = Base + (taxable - Over) * Rate, for taxable <= UpperBound.
type taxBracket struct {
	UpperBound decimal.Decimal
	Base       decimal.Decimal
	Over       decimal.Decimal
	Rate       decimal.Decimal
}

var taxSchedule = []taxBracket{
	{d("20833"), decimal.Zero, decimal.Zero, decimal.Zero},
	{d("33332"), decimal.Zero, d("20833"), d("0.20")},
	{d("66667"), d("2500"), d("33333"), d("0.25")},
	{d("166667"), d("10833.33"), d("66667"), d("0.30")},
	{d("666667"), d("40833.33"), d("166667"), d("0.32")},
}

// taxTop applies above the last bracket.
var taxTop = taxBracket{Base: d("200833.33"), Over: d("666667"), Rate: d("0.35")}

// WithholdingTax computes the monthly withholding tax on taxable income
// (gross minus the mandatory contributions). Unrounded.
func WithholdingTax(taxableIncome decimal.Decimal) decimal.Decimal {
	for _, b := range taxSchedule {
		if taxableIncome.LessThanOrEqual(b.UpperBound) {
			if b.Rate.IsZero() {
				return decimal.Zero
			}
			return b.Base.Add(taxableIncome.Sub(b.Over).Mul(b.Rate))
		}
	}
	return taxTop.Base.Add(taxableIncome.Sub(taxTop.Over).Mul(taxTop.Rate))
}

// CalculateDeductions composes the full statutory deduction set for a
// period's gross pay. SSS, PhilHealth and Pag-IBIG (capped at 100.00)
// are independent lookups on gross; withholding tax is computed on
// gross minus their unrounded sum. Every reported amount is rounded to
// 2 decimals independently, so the total reflects the unrounded sum
// rather than the sum of the rounded parts.
//
// Negative gross is clamped to zero; the bracket tables are only
// defined for non-negative pay.
func CalculateDeductions(monthlyGross decimal.Decimal) payroll.DeductionBreakdown {
	if monthlyGross.IsNegative() {
		monthlyGross = decimal.Zero
	}

	sss := SSSContribution(monthlyGross)
	philHealth := PhilHealthContribution(monthlyGross)
	pagIbig := PagIbigContribution(monthlyGross)
	if pagIbig.GreaterThan(pagibigMonthlyCap) {
		pagIbig = pagibigMonthlyCap
	}

	mandatory := sss.Add(philHealth).Add(pagIbig)
	tax := WithholdingTax(monthlyGross.Sub(mandatory))
	total := mandatory.Add(tax)

	return payroll.DeductionBreakdown{
		SSS:            sss.Round(2),
		PhilHealth:     philHealth.Round(2),
		PagIbig:        pagIbig.Round(2),
		WithholdingTax: tax.Round(2),
		Total:          total.Round(2),
	}
}
