package payroll

import "github.com/shopspring/decimal"

// WeekPayResponse is one week line of the payroll summary. Values are
// rounded to 2 decimals at this boundary; aggregation upstream uses
// unrounded values.
type WeekPayResponse struct {
	Week  int             `json:"week"`
	Hours decimal.Decimal `json:"hours"`
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
}

type DeductionBreakdownResponse struct {
	SSS            decimal.Decimal `json:"sss"`
	PhilHealth     decimal.Decimal `json:"philhealth"`
	PagIbig        decimal.Decimal `json:"pagibig"`
	WithholdingTax decimal.Decimal `json:"withholding_tax"`
	Total          decimal.Decimal `json:"total_deductions"`
}

// PayrollSummaryResponse is computed fresh on every request; only the
// release flag comes from storage. Monthly net is recomputed from the
// monthly gross, not summed from weekly nets (the deduction brackets
// are non-linear, so the two differ).
type PayrollSummaryResponse struct {
	Weeks             []WeekPayResponse          `json:"weeks"`
	TotalHours        decimal.Decimal            `json:"total_hours"`
	MonthlyGross      decimal.Decimal            `json:"monthly_gross"`
	MonthlyNet        decimal.Decimal            `json:"monthly_net"`
	MonthlyDeductions DeductionBreakdownResponse `json:"monthly_deductions"`
	IsReleased        bool                       `json:"is_released"`
}

func (b DeductionBreakdown) ToResponse() DeductionBreakdownResponse {
	return DeductionBreakdownResponse{
		SSS:            b.SSS,
		PhilHealth:     b.PhilHealth,
		PagIbig:        b.PagIbig,
		WithholdingTax: b.WithholdingTax,
		Total:          b.Total,
	}
}
