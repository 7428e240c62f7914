// Package constants provides shared constants for the multifamily-analyzer
// application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Unit mix constants
const (
	// BedroomsSRO is the bedroom count encoding a single-room occupancy unit
	BedroomsSRO = -1

	// MinBedrooms is the smallest accepted bedroom count (SRO)
	MinBedrooms = -1

	// MaxBedrooms is the largest bedroom tier published in the payment
	// standard schedules
	MaxBedrooms = 8
)

// Default underwriting assumptions, applied when the configuration leaves
// the corresponding field unset.
const (
	// DefaultVacancyRatePct is the default vacancy allowance
	DefaultVacancyRatePct = 5.0

	// DefaultMaintenancePct is the default repairs and maintenance allowance
	DefaultMaintenancePct = 5.0

	// DefaultManagementPct is the default property management fee
	DefaultManagementPct = 8.0

	// DefaultLoanTermYears is the default mortgage term
	DefaultLoanTermYears = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML
	// configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
