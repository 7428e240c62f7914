package analysis

import (
	"math"

	"github.com/phillyrei/multifamily-analyzer/pkg/constants"
	"github.com/phillyrei/multifamily-analyzer/pkg/mathutil"
)

// FinancialInputs carries the purchase, financing, and expense assumptions
// for one analysis. All percentage fields are expressed in [0,100] units and
// converted to fractions only at the point of use. Validated once at entry
// and treated as immutable afterward.
type FinancialInputs struct {
	Price               float64 `json:"price"`
	DownPaymentPct      float64 `json:"downPaymentPct"`
	ClosingCosts        float64 `json:"closingCosts,omitempty"`
	AnnualInterestRate  float64 `json:"annualInterestRate"`
	LoanTermYears       int     `json:"loanTermYears"`
	AnnualPropertyTax   float64 `json:"annualPropertyTax"`
	AnnualInsurance     float64 `json:"annualInsurance"`
	VacancyRatePct      float64 `json:"vacancyRatePct"`
	MaintenancePct      float64 `json:"maintenancePct"`
	ManagementPct       float64 `json:"managementPct"`
	OtherExpensesAnnual float64 `json:"otherExpensesAnnual,omitempty"`
}

// Validate checks every field's range. The first violation is returned as a
// ValidationError naming the offending field.
func (in FinancialInputs) Validate() error {
	if in.Price <= 0 {
		return validationErrorf("price", "purchase price must be positive")
	}
	if in.DownPaymentPct < 0 || in.DownPaymentPct > 100 {
		return validationErrorf("downPaymentPct", "down payment percent must be between 0 and 100")
	}
	if in.ClosingCosts < 0 {
		return validationErrorf("closingCosts", "closing costs cannot be negative")
	}
	if in.AnnualInterestRate < 0 {
		return validationErrorf("annualInterestRate", "interest rate cannot be negative")
	}
	if in.LoanTermYears <= 0 {
		return validationErrorf("loanTermYears", "loan term must be a positive number of years")
	}
	if in.AnnualPropertyTax < 0 {
		return validationErrorf("annualPropertyTax", "property tax cannot be negative")
	}
	if in.AnnualInsurance < 0 {
		return validationErrorf("annualInsurance", "insurance cannot be negative")
	}
	if in.VacancyRatePct < 0 || in.VacancyRatePct > 100 {
		return validationErrorf("vacancyRatePct", "vacancy rate must be between 0 and 100")
	}
	if in.MaintenancePct < 0 || in.MaintenancePct > 100 {
		return validationErrorf("maintenancePct", "maintenance percent must be between 0 and 100")
	}
	if in.ManagementPct < 0 || in.ManagementPct > 100 {
		return validationErrorf("managementPct", "management percent must be between 0 and 100")
	}
	if in.OtherExpensesAnnual < 0 {
		return validationErrorf("otherExpensesAnnual", "other operating expenses cannot be negative")
	}
	if in.CashInvested() <= 0 {
		return validationErrorf("downPaymentPct", "cash invested is zero; cash-on-cash return requires a down payment or closing costs")
	}
	return nil
}

// CashInvested is the cash outlay the cash-on-cash return is measured
// against: the down payment plus any explicit closing costs.
func (in FinancialInputs) CashInvested() float64 {
	return mathutil.ApplyPercentage(in.Price, in.DownPaymentPct) + in.ClosingCosts
}

// MetricsReport holds every derived metric for one analysis. Values are
// carried at full float precision; rounding happens only at render time.
// CapRate and CashOnCashReturn are ratios (0.08 = 8%).
type MetricsReport struct {
	LoanAmount        float64 `json:"loanAmount"`
	DownPaymentAmount float64 `json:"downPaymentAmount"`
	CashInvested      float64 `json:"cashInvested"`

	MonthlyPrincipalInterest float64 `json:"monthlyPrincipalInterest"`
	MonthlyTax               float64 `json:"monthlyTax"`
	MonthlyInsurance         float64 `json:"monthlyInsurance"`
	MonthlyPITI              float64 `json:"monthlyPITI"`

	GrossPotentialMonthlyRent float64 `json:"grossPotentialMonthlyRent"`
	EffectiveMonthlyRent      float64 `json:"effectiveMonthlyRent"`
	MonthlyOperatingExpenses  float64 `json:"monthlyOperatingExpenses"`
	MonthlyOtherExpenses      float64 `json:"monthlyOtherExpenses"`

	MonthlyNOI float64 `json:"monthlyNOI"`
	AnnualNOI  float64 `json:"annualNOI"`

	MonthlyCashFlow float64 `json:"monthlyCashFlow"`
	AnnualCashFlow  float64 `json:"annualCashFlow"`

	CapRate             float64 `json:"capRate"`
	CashOnCashReturn    float64 `json:"cashOnCashReturn"`
	GrossRentMultiplier float64 `json:"grossRentMultiplier"`
	// RentToPITI is the gross rent to PITI multiple; 0 when PITI is zero
	// (within currency tolerance).
	RentToPITI float64 `json:"rentToPITI"`
}

// CalculateMonthlyPrincipalInterest computes the level monthly payment for a
// loan using the standard amortization formula. A zero interest rate is an
// explicit edge case, not a division fault: the payment degrades to the
// principal divided evenly across the term. A non-positive principal or term
// yields a zero payment.
func CalculateMonthlyPrincipalInterest(loanAmount, annualInterestRate float64, termMonths int) float64 {
	if loanAmount <= 0 || termMonths <= 0 {
		return 0
	}
	monthlyRate := annualInterestRate / constants.PercentageMultiplier / constants.MonthsPerYear
	if monthlyRate == 0 {
		return loanAmount / float64(termMonths)
	}
	power := math.Pow(1.0+monthlyRate, float64(termMonths))
	return loanAmount * monthlyRate * power / (power - 1.0)
}

// ComputeMetrics derives the full metrics report from the aggregated monthly
// rent and the validated financial inputs. The formulas form an ordered
// chain where each step consumes only prior steps' outputs; operating
// expenses and the tax/insurance inside PITI are never double counted (NOI
// excludes debt service only, cash flow separately subtracts the full P&I).
func ComputeMetrics(totalMonthlyRent float64, inputs FinancialInputs) (MetricsReport, error) {
	if err := inputs.Validate(); err != nil {
		return MetricsReport{}, err
	}

	downPayment := mathutil.ApplyPercentage(inputs.Price, inputs.DownPaymentPct)
	loanAmount := inputs.Price - downPayment
	termMonths := inputs.LoanTermYears * constants.MonthsPerYear

	monthlyPI := CalculateMonthlyPrincipalInterest(loanAmount, inputs.AnnualInterestRate, termMonths)
	monthlyTax := inputs.AnnualPropertyTax / constants.MonthsPerYear
	monthlyInsurance := inputs.AnnualInsurance / constants.MonthsPerYear
	monthlyPITI := monthlyPI + monthlyTax + monthlyInsurance

	grossRent := totalMonthlyRent
	effectiveRent := grossRent * (1 - inputs.VacancyRatePct/constants.PercentageMultiplier)
	operatingExpenses := mathutil.ApplyPercentage(effectiveRent, inputs.MaintenancePct+inputs.ManagementPct)
	otherExpenses := inputs.OtherExpensesAnnual / constants.MonthsPerYear

	monthlyNOI := effectiveRent - operatingExpenses - otherExpenses - monthlyTax - monthlyInsurance
	annualNOI := monthlyNOI * constants.MonthsPerYear

	monthlyCashFlow := monthlyNOI - monthlyPI
	annualCashFlow := monthlyCashFlow * constants.MonthsPerYear

	cashInvested := inputs.CashInvested()

	report := MetricsReport{
		LoanAmount:        loanAmount,
		DownPaymentAmount: downPayment,
		CashInvested:      cashInvested,

		MonthlyPrincipalInterest: monthlyPI,
		MonthlyTax:               monthlyTax,
		MonthlyInsurance:         monthlyInsurance,
		MonthlyPITI:              monthlyPITI,

		GrossPotentialMonthlyRent: grossRent,
		EffectiveMonthlyRent:      effectiveRent,
		MonthlyOperatingExpenses:  operatingExpenses,
		MonthlyOtherExpenses:      otherExpenses,

		MonthlyNOI: monthlyNOI,
		AnnualNOI:  annualNOI,

		MonthlyCashFlow: monthlyCashFlow,
		AnnualCashFlow:  annualCashFlow,

		CapRate:          annualNOI / inputs.Price,
		CashOnCashReturn: annualCashFlow / cashInvested,
	}

	if grossRent > 0 {
		report.GrossRentMultiplier = inputs.Price / (grossRent * constants.MonthsPerYear)
	}
	if !mathutil.IsZero(monthlyPITI) {
		report.RentToPITI = grossRent / monthlyPITI
	}

	return report, nil
}
