package affordability

import "github.com/usign/mortgage-prequal/pkg/constants"

// PrequalInput carries the figures the results summary is built from. The
// maximum loan amount comes from the application state's simplified
// front-end-ratio projection, not from the amortized calculator path.
type PrequalInput struct {
	MonthlyIncome     float64
	TotalMonthlyDebts float64
	MaxLoanAmount     float64
	DownPayment       float64
}

// LoanOption is one row of the loan comparison table.
type LoanOption struct {
	Name           string  `json:"name"`
	LoanAmount     float64 `json:"loanAmount"`
	RatePercent    float64 `json:"ratePercent"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// PrequalSummary is the full results-screen payload: rate estimate, payment
// breakdown, both DTI ratios, and the loan comparison rows.
type PrequalSummary struct {
	DTIPercent            float64      `json:"dtiPercent"`
	Band                  Band         `json:"band"`
	MaxLoanAmount         float64      `json:"maxLoanAmount"`
	EstimatedRatePercent  float64      `json:"estimatedRatePercent"`
	PrincipalInterest     float64      `json:"principalInterest"`
	EstimatedHomePrice    float64      `json:"estimatedHomePrice"`
	MonthlyTaxesInsurance float64      `json:"monthlyTaxesInsurance"`
	TotalMonthlyPayment   float64      `json:"totalMonthlyPayment"`
	FrontEndDTIPercent    float64      `json:"frontEndDtiPercent"`
	BackEndDTIPercent     float64      `json:"backEndDtiPercent"`
	BackEndBand           Band         `json:"backEndBand"`
	LoanOptions           []LoanOption `json:"loanOptions"`
}

// EstimateRate maps a DTI percentage onto the estimated interest rate tiers
// used by the results summary.
func EstimateRate(dtiPercent float64) float64 {
	switch {
	case dtiPercent < constants.DTIExcellentLimit:
		return constants.RateExcellentPercent
	case dtiPercent < constants.DTIGoodLimit:
		return constants.RateStandardPercent
	default:
		return constants.RateElevatedPercent
	}
}

// BuildPrequalSummary derives the results summary. Unlike the calculator
// path it uses the flat 1.5% combined annual tax+insurance estimate on the
// estimated home price. A non-positive income yields an all-zero summary.
func BuildPrequalSummary(in PrequalInput) PrequalSummary {
	if in.MonthlyIncome <= 0 {
		return PrequalSummary{Band: BandExcellent, BackEndBand: BandExcellent}
	}

	dti := ComputeDTI(in.MonthlyIncome, in.TotalMonthlyDebts)
	rate := EstimateRate(dti)

	pi := MonthlyPayment(in.MaxLoanAmount, rate, constants.ThirtyYearTermMonths)
	estimatedHomePrice := in.MaxLoanAmount + in.DownPayment
	taxesInsurance := estimatedHomePrice * constants.CombinedTaxInsuranceAnnualRate / constants.MonthsPerYear
	totalPayment := pi + taxesInsurance

	frontEnd := (totalPayment / in.MonthlyIncome) * constants.PercentageMultiplier
	backEnd := ((totalPayment + in.TotalMonthlyDebts) / in.MonthlyIncome) * constants.PercentageMultiplier

	return PrequalSummary{
		DTIPercent:            dti,
		Band:                  ClassifyDTI(dti),
		MaxLoanAmount:         in.MaxLoanAmount,
		EstimatedRatePercent:  rate,
		PrincipalInterest:     pi,
		EstimatedHomePrice:    estimatedHomePrice,
		MonthlyTaxesInsurance: taxesInsurance,
		TotalMonthlyPayment:   totalPayment,
		FrontEndDTIPercent:    frontEnd,
		BackEndDTIPercent:     backEnd,
		BackEndBand:           ClassifyDTI(backEnd),
		LoanOptions:           buildLoanOptions(in.MaxLoanAmount, rate, pi, totalPayment),
	}
}

// buildLoanOptions produces the comparison rows shown under the summary.
// The 15-year and FHA rows are scaled estimates of the 30-year figures, not
// independent amortizations.
func buildLoanOptions(loanAmount, ratePercent, monthlyPI, totalPayment float64) []LoanOption {
	return []LoanOption{
		{
			Name:           "30-Year Fixed",
			LoanAmount:     loanAmount,
			RatePercent:    ratePercent,
			MonthlyPayment: totalPayment,
			TotalInterest:  monthlyPI*constants.ThirtyYearTermMonths - loanAmount,
		},
		{
			Name:           "15-Year Fixed",
			LoanAmount:     loanAmount,
			RatePercent:    ratePercent - constants.FifteenYearRateDiscountPercent,
			MonthlyPayment: totalPayment * constants.FifteenYearPaymentMultiplier,
			TotalInterest:  monthlyPI*constants.FifteenYearTermMonths*constants.FifteenYearPaymentMultiplier - loanAmount,
		},
		{
			Name:           "FHA 30-Year",
			LoanAmount:     loanAmount,
			RatePercent:    ratePercent - constants.FHARateDiscountPercent,
			MonthlyPayment: totalPayment * constants.FHAPaymentMultiplier,
			TotalInterest:  monthlyPI*constants.ThirtyYearTermMonths*constants.FHAPaymentMultiplier - loanAmount,
		},
	}
}
