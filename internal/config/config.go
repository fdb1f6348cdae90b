// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/usign/mortgage-prequal/pkg/constants"
	"github.com/usign/mortgage-prequal/pkg/validation"
)

// Configuration holds all configuration for mortgage-prequal.
type Configuration struct {
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
	Server     ServerConfig     `yaml:"server,omitempty"`
	Storage    StorageConfig    `yaml:"storage,omitempty"`
	Calculator CalculatorConfig `yaml:"calculator,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds the HTTP API options.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
	// SimulatedDelayMS stands in for backend latency in the auth stub.
	SimulatedDelayMS int `yaml:"simulatedDelayMs,omitempty"`
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	Backend string        `yaml:"backend,omitempty"` // memory, file, redis
	Path    string        `yaml:"path,omitempty"`    // file backend
	Redis   RedisSettings `yaml:"redis,omitempty"`
}

// RedisSettings holds connection parameters for the redis backend.
type RedisSettings struct {
	Address  string `yaml:"address,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
}

// CalculatorConfig carries the quick-calculator inputs for CLI runs.
type CalculatorConfig struct {
	MonthlyIncome    float64 `yaml:"monthlyIncome"`
	MonthlyDebts     float64 `yaml:"monthlyDebts"`
	DesiredHomePrice float64 `yaml:"desiredHomePrice"`
	DownPayment      float64 `yaml:"downPayment"`
	InterestRate     float64 `yaml:"interestRate,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A .env file alongside the process is honored before
// environment overrides are applied.
func LoadConfiguration(configPath string) (*Configuration, error) {
	_ = godotenv.Load()

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Storage.Backend == "" {
		conf.Storage.Backend = "file"
	}
	if conf.Storage.Backend == "file" && conf.Storage.Path == "" {
		conf.Storage.Path = constants.DefaultStorageFile
	}
}

// ValidateConfiguration returns soft warnings for questionable settings.
// Warnings never block startup.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	switch conf.Storage.Backend {
	case "memory", "file", "redis":
	default:
		warnings = append(warnings, fmt.Sprintf("Unknown storage backend %q, expected memory, file, or redis", conf.Storage.Backend))
	}
	if conf.Storage.Backend == "redis" && conf.Storage.Redis.Address == "" {
		warnings = append(warnings, "Storage backend is redis but no redis address is configured")
	}

	calc := conf.Calculator
	warnings = append(warnings, validation.ValidateAmounts("calculator", map[string]float64{
		"monthlyIncome":    calc.MonthlyIncome,
		"monthlyDebts":     calc.MonthlyDebts,
		"desiredHomePrice": calc.DesiredHomePrice,
	})...)
	warnings = append(warnings, validation.ValidateDownPayment(calc.DownPayment, calc.DesiredHomePrice)...)

	if calc.InterestRate < 0 {
		warnings = append(warnings, fmt.Sprintf("Interest rate is negative (%.2f)", calc.InterestRate))
	} else if calc.InterestRate > 25 {
		warnings = append(warnings, fmt.Sprintf("Interest rate %.2f%% looks implausibly high", calc.InterestRate))
	}

	return warnings
}
