// Package output provides utilities for formatting and displaying
// calculator results.
package output

import (
	"fmt"

	"github.com/usign/mortgage-prequal/pkg/affordability"
	"github.com/usign/mortgage-prequal/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// bandLabels are the human-readable names for the DTI bands.
var bandLabels = map[affordability.Band]string{
	affordability.BandExcellent: "Excellent",
	affordability.BandGood:      "Good",
	affordability.BandFair:      "Fair (above the conventional 36% limit, FHA-eligible)",
	affordability.BandHigh:      "High (exceeds most lender limits)",
}

// PrettyFormat outputs a human-readable summary of a calculator run.
func PrettyFormat(summary affordability.Summary, suggestions *affordability.Suggestions) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Affordability results ---\n")
	_, _ = p.Printf("Debt-to-income ratio  | %.1f%% (%s)\n", summary.DTIPercent, bandLabels[summary.Band])
	fmt.Printf("Assumed interest rate | %.2f%%\n", summary.AnnualRatePercent)
	fmt.Printf("Max loan amount       | %s\n", format.WholeDollars(summary.MaxLoanAmount))
	fmt.Printf("Max home price        | %s\n", format.WholeDollars(summary.MaxHomePrice))

	if summary.LoanAmount != 0 || summary.TotalMonthlyPayment != 0 {
		fmt.Printf("\n--- Desired home ---\n")
		fmt.Printf("Loan amount           | %s\n", format.WholeDollars(summary.LoanAmount))
		fmt.Printf("Down payment          | %.1f%%\n", summary.DownPaymentPercent)
		fmt.Printf("Principal & interest  | %s\n", format.Currency(summary.PrincipalInterest))
		fmt.Printf("Property taxes        | %s\n", format.Currency(summary.PropertyTaxes))
		fmt.Printf("Home insurance        | %s\n", format.Currency(summary.HomeInsurance))
		if summary.PMI > 0 {
			fmt.Printf("PMI                   | %s\n", format.Currency(summary.PMI))
		}
		fmt.Printf("Total monthly payment | %s\n", format.Currency(summary.TotalMonthlyPayment))
	}

	if suggestions != nil {
		fmt.Printf("\n--- Suggestions to reach a 36%% DTI ---\n")
		fmt.Printf("Pay off monthly debt  | %s\n", format.WholeDollars(suggestions.DebtReduction))
		fmt.Printf("Increase income by    | %s\n", format.WholeDollars(suggestions.IncomeIncrease))
		fmt.Printf("Or target a price of  | %s\n", format.WholeDollars(suggestions.SuggestedPrice))
	}
}

// CsvFormat outputs the summary in comma-separated value format.
func CsvFormat(summary affordability.Summary) {
	fmt.Printf(`"dtiPercent","band","maxLoanAmount","maxHomePrice","loanAmount","downPaymentPercent","principalInterest","propertyTaxes","homeInsurance","pmi","totalMonthlyPayment"`)
	fmt.Printf("\n")
	fmt.Printf(`"%.4f","%s","%.2f","%.2f","%.2f","%.4f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
		summary.DTIPercent, summary.Band, summary.MaxLoanAmount, summary.MaxHomePrice,
		summary.LoanAmount, summary.DownPaymentPercent, summary.PrincipalInterest,
		summary.PropertyTaxes, summary.HomeInsurance, summary.PMI, summary.TotalMonthlyPayment)
	fmt.Printf("\n")
}
