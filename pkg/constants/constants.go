// Package constants provides shared constants for the calcconstru application.
package constants

// Construction cost defaults (CUB, R$/m²) by finish standard.
const (
	DefaultCUBLow    = 1950.45
	DefaultCUBNormal = 2480.20
	DefaultCUBHigh   = 3120.90
)

// Financial assumption defaults, stored as whole percentages.
const (
	// DefaultLandCommissionPct is the brokerage commission on the land purchase
	DefaultLandCommissionPct = 6.0

	// DefaultLandRegistryPct covers ITBI plus registry fees on the land purchase
	DefaultLandRegistryPct = 4.0

	// DefaultSaleCommissionPct is the sales-stand/broker commission on VGV
	DefaultSaleCommissionPct = 4.0

	// DefaultSalesTaxPct is the RET/PIS/COFINS rate on VGV
	DefaultSalesTaxPct = 4.09

	// DefaultMarketingSplitLaunch is the share of the marketing budget spent at launch
	DefaultMarketingSplitLaunch = 60.0

	// DefaultIndirectCostsPct is the indirect share of the construction budget
	DefaultIndirectCostsPct = 15.0
)

// Engine constants.
const (
	// MinConstructionMonths is the floor for any construction-time estimate
	MinConstructionMonths = 3

	// InitialPhaseShare is the construction cost share disbursed during mobilization
	InitialPhaseShare = 0.20

	// MiddlePhaseShare is the construction cost share disbursed during heavy works
	MiddlePhaseShare = 0.60

	// FinalPhaseShare is the construction cost share disbursed during finishing
	FinalPhaseShare = 0.20

	// CashExposureConstructionShare approximates the construction outlay financed
	// before sales revenue starts covering disbursements
	CashExposureConstructionShare = 0.20

	// MaxLandValueRevenueFactor discounts VGV when estimating the land price
	// ceiling. Inherited literally from the product; pending owner confirmation.
	MaxLandValueRevenueFactor = 0.85

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants.
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants.
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"
)

// Advisor defaults.
const (
	// DefaultAdvisorEndpoint is the Gemini API base URL
	DefaultAdvisorEndpoint = "https://generativelanguage.googleapis.com"

	// DefaultAdvisorModel is the model used for feasibility commentary
	DefaultAdvisorModel = "gemini-3-flash-preview"
)
