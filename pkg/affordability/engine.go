// Package affordability implements the prequalification math: debt-to-income
// ratios, fixed-rate amortization in both directions, and the affordability
// policy shared by the quick calculator, the application wizard, and the
// results summary.
//
// Every function in this package is pure and total: degenerate inputs (zero
// or negative income, zero home price) degrade to zero-valued or nil results
// rather than errors, because callers render continuously as the user types.
package affordability

import (
	"math"

	"github.com/usign/mortgage-prequal/pkg/constants"
	"github.com/usign/mortgage-prequal/pkg/mathutil"
)

// Band classifies a debt-to-income ratio against standard lender thresholds.
type Band string

// DTI bands. Boundaries are 28/36/43 percent, inclusive lower bound and
// exclusive upper bound.
const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandHigh      Band = "high"
)

// ComputeDTI returns the back-end debt-to-income ratio as a percentage.
// Returns 0 when monthlyIncome is zero or negative. The result is not
// rounded; display formatting is the caller's concern.
func ComputeDTI(monthlyIncome, totalMonthlyDebts float64) float64 {
	if monthlyIncome <= 0 {
		return 0
	}
	return (totalMonthlyDebts / monthlyIncome) * constants.PercentageMultiplier
}

// ClassifyDTI maps a DTI percentage onto its band.
func ClassifyDTI(dtiPercent float64) Band {
	switch {
	case dtiPercent < constants.DTIExcellentLimit:
		return BandExcellent
	case dtiPercent < constants.DTIGoodLimit:
		return BandGood
	case dtiPercent < constants.DTIFairLimit:
		return BandFair
	default:
		return BandHigh
	}
}

// MonthlyPayment calculates the monthly principal-and-interest payment for a
// loan using the standard amortization formula. A zero interest rate divides
// the principal evenly across the term.
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if annualRatePercent == 0 {
		return principal / float64(termMonths)
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	return principal * (periodicRate * power) / (power - 1.00)
}

// MaxLoanFromPayment inverts the amortization formula: it returns the
// principal that a given monthly principal-and-interest payment can service
// over the term. Non-positive payments yield 0.
func MaxLoanFromPayment(maxMonthlyPI, annualRatePercent float64, termMonths int) float64 {
	if maxMonthlyPI <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRatePercent == 0 {
		return maxMonthlyPI * float64(termMonths)
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	return maxMonthlyPI * (power - 1.00) / (periodicRate * power)
}

// Input carries the figures for a full affordability computation.
// AnnualRatePercent of zero or below selects the default assumed rate.
type Input struct {
	MonthlyIncome     float64
	MonthlyDebts      float64
	DesiredHomePrice  float64
	DownPayment       float64
	AnnualRatePercent float64
}

// Summary holds every derived affordability figure for one set of inputs.
type Summary struct {
	DTIPercent          float64
	Band                Band
	MaxLoanAmount       float64
	MaxHomePrice        float64
	LoanAmount          float64
	DownPaymentPercent  float64
	PrincipalInterest   float64
	PropertyTaxes       float64
	HomeInsurance       float64
	PMI                 float64
	TotalMonthlyPayment float64
	AnnualRatePercent   float64
}

// ComputeAffordability runs the quick-calculator policy: a 28% front-end
// ceiling with a flat $400/month tax+insurance estimate for the
// max-affordability branch, and itemized 1.2%/0.5% annual tax/insurance
// estimates plus PMI below 20% down for the desired-home branch.
// A non-positive income yields an all-zero summary.
func ComputeAffordability(in Input) Summary {
	rate := in.AnnualRatePercent
	if rate <= 0 {
		rate = constants.DefaultAnnualRatePercent
	}

	if in.MonthlyIncome <= 0 {
		return Summary{Band: BandExcellent, AnnualRatePercent: rate}
	}

	summary := Summary{AnnualRatePercent: rate}
	summary.DTIPercent = ComputeDTI(in.MonthlyIncome, in.MonthlyDebts)
	summary.Band = ClassifyDTI(summary.DTIPercent)

	maxHousingPayment := in.MonthlyIncome * constants.FrontEndRatio
	maxPIPayment := maxHousingPayment - constants.FlatTaxInsuranceEstimate
	summary.MaxLoanAmount = MaxLoanFromPayment(maxPIPayment, rate, constants.ThirtyYearTermMonths)
	summary.MaxHomePrice = summary.MaxLoanAmount + in.DownPayment

	if in.DesiredHomePrice <= 0 {
		return summary
	}

	summary.LoanAmount = in.DesiredHomePrice - in.DownPayment
	summary.DownPaymentPercent = mathutil.CalculatePercentage(in.DownPayment, in.DesiredHomePrice)
	summary.PrincipalInterest = MonthlyPayment(summary.LoanAmount, rate, constants.ThirtyYearTermMonths)
	summary.PropertyTaxes = in.DesiredHomePrice * constants.PropertyTaxAnnualRate / constants.MonthsPerYear
	summary.HomeInsurance = in.DesiredHomePrice * constants.HomeInsuranceAnnualRate / constants.MonthsPerYear
	if summary.DownPaymentPercent < constants.PMIDownPaymentCutoff {
		summary.PMI = summary.LoanAmount * constants.PMIAnnualRate / constants.MonthsPerYear
	}
	summary.TotalMonthlyPayment = summary.PrincipalInterest + summary.PropertyTaxes +
		summary.HomeInsurance + summary.PMI

	return summary
}

// Suggestions holds advisory whole-dollar figures for bringing a high DTI
// back under the conventional 36% target. They never block submission.
type Suggestions struct {
	DebtReduction  float64 `json:"debtReduction"`
	IncomeIncrease float64 `json:"incomeIncrease"`
	SuggestedPrice float64 `json:"suggestedPrice"`
}

// SuggestImprovements returns nil when the DTI is at or under 36%. Otherwise
// it reports how much monthly debt to retire or income to add to reach the
// target, and a lower home price affordable today. The suggested price uses
// the 1.7% combined annual tax+insurance estimate.
func SuggestImprovements(in Input) *Suggestions {
	dti := ComputeDTI(in.MonthlyIncome, in.MonthlyDebts)
	if dti <= constants.DTIGoodLimit {
		return nil
	}

	rate := in.AnnualRatePercent
	if rate <= 0 {
		rate = constants.DefaultAnnualRatePercent
	}

	targetDebts := in.MonthlyIncome * constants.DTIGoodLimit / constants.PercentageMultiplier
	targetRatio := constants.DTIGoodLimit / constants.PercentageMultiplier

	maxAffordablePayment := in.MonthlyIncome * constants.FrontEndRatio
	taxInsurance := in.DesiredHomePrice * constants.SuggestionTaxInsuranceAnnualRate / constants.MonthsPerYear
	maxPIPayment := maxAffordablePayment - taxInsurance
	maxLoan := MaxLoanFromPayment(maxPIPayment, rate, constants.ThirtyYearTermMonths)

	return &Suggestions{
		DebtReduction:  mathutil.CeilDollar(in.MonthlyDebts - targetDebts),
		IncomeIncrease: mathutil.CeilDollar(in.MonthlyDebts/targetRatio - in.MonthlyIncome),
		SuggestedPrice: mathutil.RoundDollar(maxLoan + in.DownPayment),
	}
}

// EstimateClosingCosts returns the rough closing-cost estimate for a home
// price shown on the assets screen.
func EstimateClosingCosts(homePrice float64) float64 {
	if homePrice <= 0 {
		return 0
	}
	return homePrice * constants.ClosingCostRate
}
