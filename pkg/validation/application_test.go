package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	if err := ValidateOutputFormat("pretty"); err != nil {
		t.Errorf("pretty should be valid: %v", err)
	}
	if err := ValidateOutputFormat("csv"); err != nil {
		t.Errorf("csv should be valid: %v", err)
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("xml should be rejected")
	}
}

func TestValidateEmployment(t *testing.T) {
	tests := []struct {
		name             string
		status           string
		employer         string
		jobTitle         string
		monthlyIncome    float64
		expectedWarnings int
	}{
		{
			name:             "Complete employed record",
			status:           "employed",
			employer:         "Acme Corp",
			jobTitle:         "Engineer",
			monthlyIncome:    8500,
			expectedWarnings: 0,
		},
		{
			name:             "Employed without employer or title",
			status:           "employed",
			monthlyIncome:    5000,
			expectedWarnings: 2,
		},
		{
			name:             "Retired needs no employer",
			status:           "retired",
			monthlyIncome:    3000,
			expectedWarnings: 0,
		},
		{
			name:             "Unknown status",
			status:           "freelance",
			monthlyIncome:    4000,
			expectedWarnings: 1,
		},
		{
			name:             "Negative income",
			status:           "unemployed",
			monthlyIncome:    -100,
			expectedWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateEmployment(tt.status, tt.employer, tt.jobTitle, tt.monthlyIncome)
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("got %d warnings %v, expected %d", len(warnings), warnings, tt.expectedWarnings)
			}
		})
	}
}

func TestValidateAmounts(t *testing.T) {
	warnings := ValidateAmounts("debts", map[string]float64{
		"creditCards": 300,
		"carLoans":    -50,
	})
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, expected 1", len(warnings))
	}
	if !strings.Contains(warnings[0], "carLoans") {
		t.Errorf("warning should name the field: %s", warnings[0])
	}
}

func TestValidateDownPayment(t *testing.T) {
	if w := ValidateDownPayment(80000, 400000); len(w) != 0 {
		t.Errorf("20 percent down should produce no warnings, got %v", w)
	}
	if w := ValidateDownPayment(10000, 400000); len(w) != 1 {
		t.Errorf("2.5 percent down should warn, got %v", w)
	}
	if w := ValidateDownPayment(500000, 400000); len(w) != 1 {
		t.Errorf("down payment above price should warn, got %v", w)
	}
	if w := ValidateDownPayment(-1, 400000); len(w) != 1 {
		t.Errorf("negative down payment should warn, got %v", w)
	}
	if w := ValidateDownPayment(20000, 0); len(w) != 0 {
		t.Errorf("zero home price should not warn, got %v", w)
	}
}
