// Package constants provides shared constants for the mortgage-prequal application.
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

// Debt-to-income classification thresholds. Downstream messaging and
// color-coding depend on these exact boundaries; do not change them.
const (
	// DTIExcellentLimit is the upper bound (exclusive) of the excellent band
	DTIExcellentLimit = 28.0

	// DTIGoodLimit is the upper bound (exclusive) of the good band; also the
	// conventional-loan target used by the improvement suggestions
	DTIGoodLimit = 36.0

	// DTIFairLimit is the upper bound (exclusive) of the fair band (FHA ceiling)
	DTIFairLimit = 43.0
)

// Affordability policy constants
const (
	// FrontEndRatio is the housing-payment ceiling as a fraction of gross
	// monthly income
	FrontEndRatio = 0.28

	// FlatTaxInsuranceEstimate is the flat monthly tax+insurance estimate used
	// only in the max-affordability branch
	FlatTaxInsuranceEstimate = 400.0

	// PropertyTaxAnnualRate is the annual property tax rate used on the
	// quick-calculator path
	PropertyTaxAnnualRate = 0.012

	// HomeInsuranceAnnualRate is the annual homeowners insurance rate used on
	// the quick-calculator path
	HomeInsuranceAnnualRate = 0.005

	// CombinedTaxInsuranceAnnualRate is the combined annual tax+insurance rate
	// used on the results-summary path. Intentionally not equal to
	// PropertyTaxAnnualRate + HomeInsuranceAnnualRate; the two paths carry
	// independent estimates.
	CombinedTaxInsuranceAnnualRate = 0.015

	// SuggestionTaxInsuranceAnnualRate is the combined annual tax+insurance
	// rate used when computing a suggested affordable price
	SuggestionTaxInsuranceAnnualRate = 0.017

	// PMIAnnualRate is the annual private mortgage insurance rate applied to
	// the loan balance
	PMIAnnualRate = 0.005

	// PMIDownPaymentCutoff is the down payment percentage at or above which
	// PMI no longer applies
	PMIDownPaymentCutoff = 20.0

	// ClosingCostRate estimates closing costs as a fraction of home price
	ClosingCostRate = 0.03
)

// Loan term and rate defaults
const (
	// ThirtyYearTermMonths is the term for a 30-year fixed loan
	ThirtyYearTermMonths = 360

	// FifteenYearTermMonths is the term for a 15-year fixed loan
	FifteenYearTermMonths = 180

	// DefaultAnnualRatePercent is the assumed interest rate when none is given
	DefaultAnnualRatePercent = 7.0

	// RateExcellentPercent is the estimated rate offered below the excellent
	// DTI boundary
	RateExcellentPercent = 6.75

	// RateStandardPercent is the estimated rate offered below the good DTI
	// boundary
	RateStandardPercent = 7.0

	// RateElevatedPercent is the estimated rate offered at higher DTI
	RateElevatedPercent = 7.5

	// FifteenYearRateDiscountPercent is subtracted from the estimated rate for
	// the 15-year option
	FifteenYearRateDiscountPercent = 0.5

	// FHARateDiscountPercent is subtracted from the estimated rate for the FHA
	// option
	FHARateDiscountPercent = 0.25

	// FifteenYearPaymentMultiplier scales the 30-year payment to estimate the
	// 15-year payment
	FifteenYearPaymentMultiplier = 1.4

	// FHAPaymentMultiplier scales the 30-year payment to estimate the FHA
	// payment
	FHAPaymentMultiplier = 1.05
)

// Storage keys for the persisted records
const (
	// StorageKeyApplication is the key holding the serialized application record
	StorageKeyApplication = "mortgageApplication"

	// StorageKeyAccount is the key holding the account record written at
	// account-creation time
	StorageKeyAccount = "accountData"

	// StorageKeyAuthenticated is the auth-stub flag set on login success
	StorageKeyAuthenticated = "isAuthenticated"

	// StorageKeyUserEmail is the auth-stub email set on login success
	StorageKeyUserEmail = "userEmail"

	// StorageKeyLanguage is the persisted language preference
	StorageKeyLanguage = "language"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration defaults
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultStorageFile is the default path of the JSON file store
	DefaultStorageFile = "prequal-data.json"

	// AutosaveIntervalSeconds is the period of the application autosave timer
	AutosaveIntervalSeconds = 30
)
