package output

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/usign/mortgage-prequal/pkg/affordability"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read pipe: %v", err)
	}
	return string(data)
}

func TestPrettyFormat(t *testing.T) {
	summary := affordability.ComputeAffordability(affordability.Input{
		MonthlyIncome:     8500,
		MonthlyDebts:      500,
		DesiredHomePrice:  400000,
		DownPayment:       80000,
		AnnualRatePercent: 7.0,
	})

	out := captureStdout(t, func() {
		PrettyFormat(summary, nil)
	})

	if !strings.Contains(out, "Affordability results") {
		t.Errorf("missing header in output:\n%s", out)
	}
	if !strings.Contains(out, "Excellent") {
		t.Errorf("missing band label in output:\n%s", out)
	}
	if !strings.Contains(out, "$320,000") {
		t.Errorf("missing loan amount in output:\n%s", out)
	}
	if strings.Contains(out, "PMI") {
		t.Errorf("PMI row should be omitted at 20 percent down:\n%s", out)
	}
}

func TestPrettyFormatWithSuggestions(t *testing.T) {
	in := affordability.Input{
		MonthlyIncome:    6000,
		MonthlyDebts:     2500,
		DesiredHomePrice: 400000,
		DownPayment:      40000,
	}
	summary := affordability.ComputeAffordability(in)
	suggestions := affordability.SuggestImprovements(in)

	out := captureStdout(t, func() {
		PrettyFormat(summary, suggestions)
	})

	if !strings.Contains(out, "Suggestions") {
		t.Errorf("missing suggestions section:\n%s", out)
	}
	if !strings.Contains(out, "$340") {
		t.Errorf("missing debt reduction figure:\n%s", out)
	}
}

func TestCsvFormat(t *testing.T) {
	summary := affordability.ComputeAffordability(affordability.Input{
		MonthlyIncome:    8500,
		MonthlyDebts:     500,
		DesiredHomePrice: 400000,
		DownPayment:      20000,
	})

	out := captureStdout(t, func() {
		CsvFormat(summary)
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one data row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], `"dtiPercent"`) {
		t.Errorf("missing header column:\n%s", lines[0])
	}
	if !strings.Contains(lines[1], `"excellent"`) {
		t.Errorf("missing band value:\n%s", lines[1])
	}
}
