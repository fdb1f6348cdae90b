package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/usign/mortgage-prequal/internal/application"
	"github.com/usign/mortgage-prequal/internal/auth"
	"github.com/usign/mortgage-prequal/internal/config"
	"github.com/usign/mortgage-prequal/internal/server"
	"github.com/usign/mortgage-prequal/internal/storage"
	"github.com/usign/mortgage-prequal/pkg/affordability"
	"github.com/usign/mortgage-prequal/pkg/constants"
	"github.com/usign/mortgage-prequal/pkg/output"
	"github.com/usign/mortgage-prequal/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// buildStore constructs the persistence backend selected in the config.
func buildStore(conf *config.Configuration) (storage.KV, error) {
	switch conf.Storage.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(conf.Storage.Path)
	case "redis":
		return storage.NewRedisStore(storage.RedisConfig{
			Address:  conf.Storage.Redis.Address,
			Password: conf.Storage.Redis.Password,
			DB:       conf.Storage.Redis.DB,
			Prefix:   conf.Storage.Redis.Prefix,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", conf.Storage.Backend)
	}
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "serve the HTTP API instead of running the calculator once")
	address := flag.String("address", "", "listen address override for -serve")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *serve {
		listenAddress := conf.Server.Address
		if *address != "" {
			listenAddress = *address
		}
		runServer(logger, conf, listenAddress)
		return
	}

	// One-shot calculator run from config.
	input := affordability.Input{
		MonthlyIncome:     conf.Calculator.MonthlyIncome,
		MonthlyDebts:      conf.Calculator.MonthlyDebts,
		DesiredHomePrice:  conf.Calculator.DesiredHomePrice,
		DownPayment:       conf.Calculator.DownPayment,
		AnnualRatePercent: conf.Calculator.InterestRate,
	}
	summary := affordability.ComputeAffordability(input)
	suggestions := affordability.SuggestImprovements(input)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(summary, suggestions)
	case constants.OutputFormatCSV:
		output.CsvFormat(summary)
	}
}

func runServer(logger *zap.Logger, conf *config.Configuration, address string) {
	kv, err := buildStore(conf)
	if err != nil {
		logger.Fatal("failed to initialize storage backend",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer func() {
		_ = kv.Close()
	}()

	app := application.NewStore(logger, kv)
	app.StartAutosave(constants.AutosaveIntervalSeconds * time.Second)
	defer app.Close()

	delay := time.Duration(conf.Server.SimulatedDelayMS) * time.Millisecond
	authManager := auth.NewManager(logger, kv, delay)

	handler := server.NewHandler(logger, app, authManager, version)

	logger.Info("listening",
		zap.String("op", "main"),
		zap.String("address", address),
		zap.String("storageBackend", conf.Storage.Backend),
	)
	if err := http.ListenAndServe(address, handler); err != nil {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
