// Package output provides utilities for formatting and displaying analysis
// results.
package output

import (
	"fmt"
	"strings"

	"github.com/phillyrei/multifamily-analyzer/internal/analysis"
	"github.com/phillyrei/multifamily-analyzer/internal/standards"
	"github.com/phillyrei/multifamily-analyzer/pkg/constants"
	"github.com/phillyrei/multifamily-analyzer/pkg/format"
)

const divider = "--------------------------------------------------"

// PrettyFormat prints the human-readable analysis report to stdout.
func PrettyFormat(result *analysis.AnalysisResult) {
	fmt.Print(PrettyString(result))
}

// PrettyString renders the human-readable analysis report.
func PrettyString(result *analysis.AnalysisResult) string {
	var b strings.Builder
	in := result.Inputs
	m := result.Metrics

	b.WriteString("--- MULTIFAMILY CALCULATION RESULTS ---\n")
	fmt.Fprintf(&b, "Input Unit String: %s\n", result.UnitMix)
	fmt.Fprintf(&b, "Property ZIP Code: %s\n", result.ZipCode)
	fmt.Fprintf(&b, "PHA Group: %d (%s)\n", result.Group, result.RentType)
	b.WriteString(divider + "\n")

	fmt.Fprintf(&b, "Unit Breakdown (Potential PHA Rents) - Total %d units:\n", len(result.Units))
	for _, unit := range result.Units {
		fmt.Fprintf(&b, "  Unit %d (%s): %s/mo (Group %d)\n",
			unit.UnitIndex, standards.BedroomLabel(unit.Bedrooms), format.Currency(unit.MonthlyRent), unit.Group)
	}
	fmt.Fprintf(&b, "  Total Potential Monthly PHA Rent: %s\n", format.Currency(result.TotalMonthlyRent))
	b.WriteString(divider + "\n")

	b.WriteString("Property Financial Summary:\n")
	fmt.Fprintf(&b, "  Acquisition Price: %s\n", format.Currency(in.Price))
	fmt.Fprintf(&b, "  Down Payment (%.0f%%): %s\n", in.DownPaymentPct, format.Currency(m.DownPaymentAmount))
	if in.ClosingCosts > 0 {
		fmt.Fprintf(&b, "  Closing Costs: %s\n", format.Currency(in.ClosingCosts))
	}
	fmt.Fprintf(&b, "  Loan Amount: %s\n", format.Currency(m.LoanAmount))
	b.WriteString(divider + "\n")

	b.WriteString("Monthly Debt Service (PITI) & Basic Cash Flow:\n")
	fmt.Fprintf(&b, "  Total Monthly PITI: %s\n", format.Currency(m.MonthlyPITI))
	fmt.Fprintf(&b, "    Principal & Interest (P&I): %s\n", format.Currency(m.MonthlyPrincipalInterest))
	fmt.Fprintf(&b, "    Property Taxes (T): %s\n", format.Currency(m.MonthlyTax))
	fmt.Fprintf(&b, "    Property Insurance (I): %s\n", format.Currency(m.MonthlyInsurance))
	if m.RentToPITI > 0 {
		fmt.Fprintf(&b, "  Rent to PITI Multiple: %s\n", format.Multiple(m.RentToPITI))
	} else {
		b.WriteString("  Rent to PITI Multiple: n/a\n")
	}
	b.WriteString(divider + "\n")

	b.WriteString("Monthly Operating Income & Expenses:\n")
	fmt.Fprintf(&b, "  Gross Potential Rent: %s\n", format.Currency(m.GrossPotentialMonthlyRent))
	fmt.Fprintf(&b, "  Effective Rent (%.0f%% vacancy): %s\n", in.VacancyRatePct, format.Currency(m.EffectiveMonthlyRent))
	fmt.Fprintf(&b, "  Repairs & Management (%.0f%% + %.0f%%): %s\n",
		in.MaintenancePct, in.ManagementPct, format.Currency(m.MonthlyOperatingExpenses))
	if m.MonthlyOtherExpenses > 0 {
		fmt.Fprintf(&b, "  Other Operating Expenses: %s\n", format.Currency(m.MonthlyOtherExpenses))
	}
	fmt.Fprintf(&b, "  Net Operating Income (NOI): %s/mo (%s/yr)\n", format.Currency(m.MonthlyNOI), format.Currency(m.AnnualNOI))
	b.WriteString(divider + "\n")

	b.WriteString("Cash Flow & Returns:\n")
	fmt.Fprintf(&b, "  Cash Flow Before Tax: %s/mo (%s/yr)\n", format.Currency(m.MonthlyCashFlow), format.Currency(m.AnnualCashFlow))
	fmt.Fprintf(&b, "  Cash Invested: %s\n", format.Currency(m.CashInvested))
	fmt.Fprintf(&b, "  Cash-on-Cash Return: %s\n", format.Percent(m.CashOnCashReturn))
	fmt.Fprintf(&b, "  Capitalization Rate (Cap Rate): %s\n", format.Percent(m.CapRate))
	fmt.Fprintf(&b, "  Gross Rent Multiplier (GRM): %.2f\n", m.GrossRentMultiplier)
	b.WriteString(divider + "\n")

	return b.String()
}

// CsvFormat prints the analysis in comma-separated value format to stdout.
func CsvFormat(result *analysis.AnalysisResult) {
	fmt.Print(CsvString(result))
}

// CsvString renders the analysis in comma-separated value format: one block
// of per-unit rent lines followed by one block of metric rows.
func CsvString(result *analysis.AnalysisResult) string {
	var b strings.Builder
	m := result.Metrics

	b.WriteString(`"unit","bedrooms","group","monthly_rent"` + "\n")
	for _, unit := range result.Units {
		fmt.Fprintf(&b, `"%d","%s","%d","%.2f"`+"\n",
			unit.UnitIndex, standards.BedroomLabel(unit.Bedrooms), unit.Group, unit.MonthlyRent)
	}

	b.WriteString(`"metric","value"` + "\n")
	rows := []struct {
		name  string
		value float64
	}{
		{"total_monthly_rent", result.TotalMonthlyRent},
		{"loan_amount", m.LoanAmount},
		{"down_payment", m.DownPaymentAmount},
		{"cash_invested", m.CashInvested},
		{"monthly_principal_interest", m.MonthlyPrincipalInterest},
		{"monthly_tax", m.MonthlyTax},
		{"monthly_insurance", m.MonthlyInsurance},
		{"monthly_piti", m.MonthlyPITI},
		{"effective_monthly_rent", m.EffectiveMonthlyRent},
		{"monthly_operating_expenses", m.MonthlyOperatingExpenses},
		{"monthly_noi", m.MonthlyNOI},
		{"annual_noi", m.AnnualNOI},
		{"monthly_cash_flow", m.MonthlyCashFlow},
		{"annual_cash_flow", m.AnnualCashFlow},
		{"cap_rate_pct", m.CapRate * constants.PercentageMultiplier},
		{"cash_on_cash_return_pct", m.CashOnCashReturn * constants.PercentageMultiplier},
		{"gross_rent_multiplier", m.GrossRentMultiplier},
		{"rent_to_piti", m.RentToPITI},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, `"%s","%.4f"`+"\n", row.name, row.value)
	}

	return b.String()
}
