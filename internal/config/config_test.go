package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `property:
  zipCode: "19121"
  unitMix: "5x1BR, 3x2BR, 2x3BR"
financing:
  price: 500000
  downPaymentPct: 25
  closingCosts: 15000
  annualInterestRate: 7.0
  loanTermYears: 30
expenses:
  annualPropertyTax: 5000
  annualInsurance: 2000
  vacancyRatePct: 5
  maintenancePct: 5
  managementPct: 8
  otherExpensesAnnual: 1200
logging:
  level: debug
  format: console
output:
  format: pretty
`

func TestLoadConfigurationFromReader(t *testing.T) {
	configuration, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader returned error: %v", err)
	}

	if configuration.Property.ZipCode != "19121" {
		t.Errorf("Property.ZipCode = %q, expected 19121", configuration.Property.ZipCode)
	}
	if configuration.Property.UnitMix != "5x1BR, 3x2BR, 2x3BR" {
		t.Errorf("Property.UnitMix = %q", configuration.Property.UnitMix)
	}
	if configuration.Financing.Price != 500000 {
		t.Errorf("Financing.Price = %v, expected 500000", configuration.Financing.Price)
	}
	if configuration.Financing.ClosingCosts != 15000 {
		t.Errorf("Financing.ClosingCosts = %v, expected 15000", configuration.Financing.ClosingCosts)
	}
	if configuration.Expenses.OtherExpensesAnnual != 1200 {
		t.Errorf("Expenses.OtherExpensesAnnual = %v, expected 1200", configuration.Expenses.OtherExpensesAnnual)
	}
	if configuration.Logging.Level != "debug" || configuration.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", configuration.Logging)
	}
	if configuration.Output.Format != "pretty" {
		t.Errorf("Output.Format = %q, expected pretty", configuration.Output.Format)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	minimal := `property:
  zipCode: "19121"
  unitMix: "1,2"
financing:
  price: 300000
  downPaymentPct: 20
  annualInterestRate: 6.5
expenses:
  annualPropertyTax: 3000
  annualInsurance: 1500
`
	configuration, err := LoadConfigurationFromReader(strings.NewReader(minimal))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader returned error: %v", err)
	}

	if configuration.Property.ScheduleYear != "2024" {
		t.Errorf("Property.ScheduleYear = %q, expected default 2024", configuration.Property.ScheduleYear)
	}
	if configuration.Financing.LoanTermYears != 30 {
		t.Errorf("Financing.LoanTermYears = %d, expected default 30", configuration.Financing.LoanTermYears)
	}
	if configuration.Expenses.VacancyRatePct != 5 {
		t.Errorf("Expenses.VacancyRatePct = %v, expected default 5", configuration.Expenses.VacancyRatePct)
	}
	if configuration.Expenses.MaintenancePct != 5 {
		t.Errorf("Expenses.MaintenancePct = %v, expected default 5", configuration.Expenses.MaintenancePct)
	}
	if configuration.Expenses.ManagementPct != 8 {
		t.Errorf("Expenses.ManagementPct = %v, expected default 8", configuration.Expenses.ManagementPct)
	}
}

func TestLoadConfigurationExplicitZeroBeatsDefault(t *testing.T) {
	cfg := `property:
  zipCode: "19121"
  unitMix: "1"
financing:
  price: 300000
  downPaymentPct: 100
  annualInterestRate: 0
expenses:
  annualPropertyTax: 3000
  annualInsurance: 1500
  vacancyRatePct: 0
`
	configuration, err := LoadConfigurationFromReader(strings.NewReader(cfg))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader returned error: %v", err)
	}
	if configuration.Expenses.VacancyRatePct != 0 {
		t.Errorf("Expenses.VacancyRatePct = %v, expected explicit 0 to override the default", configuration.Expenses.VacancyRatePct)
	}
}

func TestLoadConfigurationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	configuration, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration returned error: %v", err)
	}
	if configuration.Property.ZipCode != "19121" {
		t.Errorf("Property.ZipCode = %q, expected 19121", configuration.Property.ZipCode)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfiguration succeeded on a missing file")
	}
}

func TestFinancialInputsConversion(t *testing.T) {
	configuration, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader returned error: %v", err)
	}

	inputs := configuration.FinancialInputs()
	if inputs.Price != 500000 || inputs.DownPaymentPct != 25 || inputs.ClosingCosts != 15000 {
		t.Errorf("purchase inputs = %+v", inputs)
	}
	if inputs.AnnualInterestRate != 7.0 || inputs.LoanTermYears != 30 {
		t.Errorf("loan inputs = %+v", inputs)
	}
	if inputs.AnnualPropertyTax != 5000 || inputs.AnnualInsurance != 2000 {
		t.Errorf("carry inputs = %+v", inputs)
	}
	if inputs.VacancyRatePct != 5 || inputs.MaintenancePct != 5 || inputs.ManagementPct != 8 || inputs.OtherExpensesAnnual != 1200 {
		t.Errorf("expense inputs = %+v", inputs)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Configuration)
		fragment string
	}{
		{
			name:     "Short zip code",
			mutate:   func(c *Configuration) { c.Property.ZipCode = "191" },
			fragment: "not 5 digits",
		},
		{
			name: "No cash invested",
			mutate: func(c *Configuration) {
				c.Financing.DownPaymentPct = 0
				c.Financing.ClosingCosts = 0
			},
			fragment: "cash-on-cash",
		},
		{
			name:     "Extreme vacancy",
			mutate:   func(c *Configuration) { c.Expenses.VacancyRatePct = 40 },
			fragment: "unusually high",
		},
		{
			name: "Expense ratios over half of rent",
			mutate: func(c *Configuration) {
				c.Expenses.MaintenancePct = 30
				c.Expenses.ManagementPct = 25
			},
			fragment: "expense assumptions",
		},
		{
			name:     "Implausible interest rate",
			mutate:   func(c *Configuration) { c.Financing.AnnualInterestRate = 25 },
			fragment: "typical financing range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configuration, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
			if err != nil {
				t.Fatalf("LoadConfigurationFromReader returned error: %v", err)
			}
			if warnings := configuration.ValidateConfiguration(); len(warnings) != 0 {
				t.Fatalf("baseline config produced warnings: %v", warnings)
			}

			tt.mutate(configuration)
			warnings := configuration.ValidateConfiguration()
			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.fragment) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a warning containing %q, got %v", tt.fragment, warnings)
			}
		})
	}
}
