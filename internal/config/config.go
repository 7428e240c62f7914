// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/phillyrei/multifamily-analyzer/internal/analysis"
	"github.com/phillyrei/multifamily-analyzer/internal/standards"
	"github.com/phillyrei/multifamily-analyzer/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for multifamily-analyzer.
type Configuration struct {
	Property  PropertyConfig
	Financing FinancingConfig
	Expenses  ExpenseConfig
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// PropertyConfig identifies the property and the payment standard schedule
// used to price it.
type PropertyConfig struct {
	ZipCode      string
	UnitMix      string
	ScheduleYear string `yaml:"scheduleYear,omitempty"` // 2024 or 2025
}

// FinancingConfig holds the purchase and loan parameters.
type FinancingConfig struct {
	Price              float64
	DownPaymentPct     float64 `yaml:"downPaymentPct"`
	ClosingCosts       float64 `yaml:"closingCosts,omitempty"`
	AnnualInterestRate float64 `yaml:"annualInterestRate"`
	LoanTermYears      int     `yaml:"loanTermYears"`
}

// ExpenseConfig holds the operating expense assumptions. Percentages are in
// [0,100] units.
type ExpenseConfig struct {
	AnnualPropertyTax   float64 `yaml:"annualPropertyTax"`
	AnnualInsurance     float64 `yaml:"annualInsurance"`
	VacancyRatePct      float64 `yaml:"vacancyRatePct"`
	MaintenancePct      float64 `yaml:"maintenancePct"`
	ManagementPct       float64 `yaml:"managementPct"`
	OtherExpensesAnnual float64 `yaml:"otherExpensesAnnual,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetConfigType("yml")

	// Assumption defaults match the original underwriting form; explicit
	// zeroes in the file still win over these.
	v.SetDefault("property.scheduleYear", standards.DefaultScheduleYear)
	v.SetDefault("financing.loanTermYears", constants.DefaultLoanTermYears)
	v.SetDefault("expenses.vacancyRatePct", constants.DefaultVacancyRatePct)
	v.SetDefault("expenses.maintenancePct", constants.DefaultMaintenancePct)
	v.SetDefault("expenses.managementPct", constants.DefaultManagementPct)

	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML configuration from an in-memory
// source, e.g. an HTTP upload.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// FinancialInputs converts the financing and expense sections into the
// engine's input set.
func (c *Configuration) FinancialInputs() analysis.FinancialInputs {
	return analysis.FinancialInputs{
		Price:               c.Financing.Price,
		DownPaymentPct:      c.Financing.DownPaymentPct,
		ClosingCosts:        c.Financing.ClosingCosts,
		AnnualInterestRate:  c.Financing.AnnualInterestRate,
		LoanTermYears:       c.Financing.LoanTermYears,
		AnnualPropertyTax:   c.Expenses.AnnualPropertyTax,
		AnnualInsurance:     c.Expenses.AnnualInsurance,
		VacancyRatePct:      c.Expenses.VacancyRatePct,
		MaintenancePct:      c.Expenses.MaintenancePct,
		ManagementPct:       c.Expenses.ManagementPct,
		OtherExpensesAnnual: c.Expenses.OtherExpensesAnnual,
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input errors are left to the engine's typed
// validation; these are advisory only.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	zip := strings.TrimSpace(c.Property.ZipCode)
	if len(zip) != 5 {
		warnings = append(warnings, fmt.Sprintf("Zip code '%s' is not 5 digits - the payment standard lookup will likely fail", zip))
	}

	if c.Financing.DownPaymentPct == 0 && c.Financing.ClosingCosts == 0 {
		warnings = append(warnings, "Down payment and closing costs are both zero - cash-on-cash return cannot be computed")
	}

	if c.Expenses.VacancyRatePct > 30 {
		warnings = append(warnings, fmt.Sprintf("Vacancy rate %.1f%% is unusually high for a subsidized-rent property", c.Expenses.VacancyRatePct))
	}

	if c.Expenses.MaintenancePct+c.Expenses.ManagementPct > 50 {
		warnings = append(warnings, fmt.Sprintf("Maintenance plus management total %.1f%% of effective rent - verify the expense assumptions",
			c.Expenses.MaintenancePct+c.Expenses.ManagementPct))
	}

	if c.Financing.AnnualInterestRate > 20 {
		warnings = append(warnings, fmt.Sprintf("Interest rate %.2f%% is outside the typical financing range", c.Financing.AnnualInterestRate))
	}

	return warnings
}
