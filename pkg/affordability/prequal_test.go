package affordability

import (
	"math"
	"testing"
)

func TestEstimateRate(t *testing.T) {
	tests := []struct {
		dti      float64
		expected float64
	}{
		{0, 6.75},
		{27.9, 6.75},
		{28.0, 7.0},
		{35.9, 7.0},
		{36.0, 7.5},
		{60, 7.5},
	}

	for _, tt := range tests {
		if got := EstimateRate(tt.dti); got != tt.expected {
			t.Errorf("EstimateRate(%.1f) = %.2f, expected %.2f", tt.dti, got, tt.expected)
		}
	}
}

func TestBuildPrequalSummary(t *testing.T) {
	t.Run("Zero income yields zero summary", func(t *testing.T) {
		summary := BuildPrequalSummary(PrequalInput{TotalMonthlyDebts: 500, MaxLoanAmount: 100000})
		if summary.TotalMonthlyPayment != 0 || summary.FrontEndDTIPercent != 0 {
			t.Errorf("expected zero summary, got %+v", summary)
		}
	})

	t.Run("Typical applicant", func(t *testing.T) {
		in := PrequalInput{
			MonthlyIncome:     8500,
			TotalMonthlyDebts: 500,
			MaxLoanAmount:     300000,
			DownPayment:       60000,
		}
		summary := BuildPrequalSummary(in)

		// DTI 5.88% lands in the excellent rate tier.
		if summary.EstimatedRatePercent != 6.75 {
			t.Errorf("rate = %.2f, expected 6.75", summary.EstimatedRatePercent)
		}
		if summary.Band != BandExcellent {
			t.Errorf("band = %s, expected excellent", summary.Band)
		}
		if summary.EstimatedHomePrice != 360000 {
			t.Errorf("estimated home price = %.2f, expected 360000", summary.EstimatedHomePrice)
		}

		expectedTI := 360000 * 0.015 / 12
		if math.Abs(summary.MonthlyTaxesInsurance-expectedTI) > 0.01 {
			t.Errorf("taxes+insurance = %.2f, expected %.2f", summary.MonthlyTaxesInsurance, expectedTI)
		}

		expectedPI := MonthlyPayment(300000, 6.75, 360)
		if math.Abs(summary.PrincipalInterest-expectedPI) > 0.01 {
			t.Errorf("principal+interest = %.2f, expected %.2f", summary.PrincipalInterest, expectedPI)
		}

		expectedTotal := expectedPI + expectedTI
		if math.Abs(summary.TotalMonthlyPayment-expectedTotal) > 0.01 {
			t.Errorf("total payment = %.2f, expected %.2f", summary.TotalMonthlyPayment, expectedTotal)
		}

		expectedFront := expectedTotal / 8500 * 100
		if math.Abs(summary.FrontEndDTIPercent-expectedFront) > 0.001 {
			t.Errorf("front-end DTI = %.3f, expected %.3f", summary.FrontEndDTIPercent, expectedFront)
		}
		expectedBack := (expectedTotal + 500) / 8500 * 100
		if math.Abs(summary.BackEndDTIPercent-expectedBack) > 0.001 {
			t.Errorf("back-end DTI = %.3f, expected %.3f", summary.BackEndDTIPercent, expectedBack)
		}
	})

	t.Run("Elevated DTI selects elevated rate", func(t *testing.T) {
		summary := BuildPrequalSummary(PrequalInput{
			MonthlyIncome:     6000,
			TotalMonthlyDebts: 2200,
			MaxLoanAmount:     150000,
		})
		if summary.Band != BandFair {
			t.Errorf("band = %s, expected fair for 36.67 percent", summary.Band)
		}
		if summary.EstimatedRatePercent != 7.5 {
			t.Errorf("rate = %.2f, expected 7.5", summary.EstimatedRatePercent)
		}
	})
}

func TestBuildLoanOptions(t *testing.T) {
	summary := BuildPrequalSummary(PrequalInput{
		MonthlyIncome:     10000,
		TotalMonthlyDebts: 1000,
		MaxLoanAmount:     240000,
		DownPayment:       60000,
	})

	if len(summary.LoanOptions) != 3 {
		t.Fatalf("expected 3 loan options, got %d", len(summary.LoanOptions))
	}

	thirty := summary.LoanOptions[0]
	fifteen := summary.LoanOptions[1]
	fha := summary.LoanOptions[2]

	if thirty.RatePercent != summary.EstimatedRatePercent {
		t.Errorf("30-year rate = %.2f, expected %.2f", thirty.RatePercent, summary.EstimatedRatePercent)
	}
	if fifteen.RatePercent != summary.EstimatedRatePercent-0.5 {
		t.Errorf("15-year rate = %.2f, expected %.2f", fifteen.RatePercent, summary.EstimatedRatePercent-0.5)
	}
	if fha.RatePercent != summary.EstimatedRatePercent-0.25 {
		t.Errorf("FHA rate = %.2f, expected %.2f", fha.RatePercent, summary.EstimatedRatePercent-0.25)
	}

	if math.Abs(fifteen.MonthlyPayment-thirty.MonthlyPayment*1.4) > 0.01 {
		t.Errorf("15-year payment = %.2f, expected 1.4x the 30-year payment", fifteen.MonthlyPayment)
	}
	if math.Abs(fha.MonthlyPayment-thirty.MonthlyPayment*1.05) > 0.01 {
		t.Errorf("FHA payment = %.2f, expected 1.05x the 30-year payment", fha.MonthlyPayment)
	}

	expectedInterest := summary.PrincipalInterest*360 - 240000
	if math.Abs(thirty.TotalInterest-expectedInterest) > 0.01 {
		t.Errorf("30-year total interest = %.2f, expected %.2f", thirty.TotalInterest, expectedInterest)
	}
}
