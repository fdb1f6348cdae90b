package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: console
output:
  format: csv
storage:
  backend: memory
calculator:
  monthlyIncome: 8500
  monthlyDebts: 500
  desiredHomePrice: 400000
  downPayment: 80000
  interestRate: 7.0
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if conf.Logging.Level != "debug" {
		t.Errorf("log level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, expected csv", conf.Output.Format)
	}
	if conf.Storage.Backend != "memory" {
		t.Errorf("storage backend = %q, expected memory", conf.Storage.Backend)
	}
	if conf.Calculator.MonthlyIncome != 8500 {
		t.Errorf("monthly income = %.2f, expected 8500", conf.Calculator.MonthlyIncome)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	path := writeConfig(t, "calculator:\n  monthlyIncome: 5000\n")

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if conf.Server.Address != ":8080" {
		t.Errorf("server address = %q, expected :8080 default", conf.Server.Address)
	}
	if conf.Storage.Backend != "file" {
		t.Errorf("storage backend = %q, expected file default", conf.Storage.Backend)
	}
	if conf.Storage.Path == "" {
		t.Error("expected a default storage path for the file backend")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		conf             Configuration
		expectedWarnings int
	}{
		{
			name: "Clean configuration",
			conf: Configuration{
				Storage: StorageConfig{Backend: "memory"},
				Calculator: CalculatorConfig{
					MonthlyIncome:    8500,
					DesiredHomePrice: 400000,
					DownPayment:      80000,
					InterestRate:     7.0,
				},
			},
			expectedWarnings: 0,
		},
		{
			name: "Unknown backend",
			conf: Configuration{
				Storage: StorageConfig{Backend: "dynamo"},
			},
			expectedWarnings: 1,
		},
		{
			name: "Redis without address",
			conf: Configuration{
				Storage: StorageConfig{Backend: "redis"},
			},
			expectedWarnings: 1,
		},
		{
			name: "Negative figures and tiny down payment",
			conf: Configuration{
				Storage: StorageConfig{Backend: "memory"},
				Calculator: CalculatorConfig{
					MonthlyIncome:    -100,
					DesiredHomePrice: 400000,
					DownPayment:      5000,
					InterestRate:     30,
				},
			},
			expectedWarnings: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("got %d warnings %v, expected %d", len(warnings), warnings, tt.expectedWarnings)
			}
		})
	}
}
