package validation

import (
	"fmt"

	"github.com/usign/mortgage-prequal/pkg/constants"
)

// EmploymentStatuses lists the accepted employment status values.
var EmploymentStatuses = []string{"employed", "self-employed", "retired", "unemployed"}

// ValidateEmployment returns soft warnings for an employment record. An
// employed applicant is expected to name an employer and job title, but
// nothing here blocks the application.
func ValidateEmployment(status, employer, jobTitle string, monthlyIncome float64) []string {
	var warnings []string

	known := false
	for _, s := range EmploymentStatuses {
		if status == s {
			known = true
			break
		}
	}
	if !known && status != "" {
		warnings = append(warnings, fmt.Sprintf("Unknown employment status %q", status))
	}

	if status == "employed" {
		if employer == "" {
			warnings = append(warnings, "Employment status is 'employed' but no employer is given")
		}
		if jobTitle == "" {
			warnings = append(warnings, "Employment status is 'employed' but no job title is given")
		}
	}

	if monthlyIncome < 0 {
		warnings = append(warnings, fmt.Sprintf("Monthly income is negative (%.2f)", monthlyIncome))
	}

	return warnings
}

// ValidateAmounts returns a warning for every negative currency amount in
// the given section.
func ValidateAmounts(section string, amounts map[string]float64) []string {
	var warnings []string
	for field, amount := range amounts {
		if amount < 0 {
			warnings = append(warnings, fmt.Sprintf("%s: %s is negative (%.2f)", section, field, amount))
		}
	}
	return warnings
}

// ValidateDownPayment warns when the down payment cannot fund the desired
// purchase or falls below the typical 5% minimum.
func ValidateDownPayment(downPayment, homePrice float64) []string {
	var warnings []string

	if downPayment < 0 {
		warnings = append(warnings, fmt.Sprintf("Down payment is negative (%.2f)", downPayment))
		return warnings
	}
	if homePrice <= 0 {
		return warnings
	}

	if downPayment > homePrice {
		warnings = append(warnings, fmt.Sprintf("Down payment %.2f exceeds home price %.2f", downPayment, homePrice))
	} else if downPayment/homePrice*constants.PercentageMultiplier < 5.0 {
		warnings = append(warnings, fmt.Sprintf("Down payment %.2f is below 5%% of home price %.2f", downPayment, homePrice))
	}

	return warnings
}
