package main

import (
	"fmt"
	"go-data-processor/internal/config"
	"go-data-processor/internal/logger"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
)

func main() {
	if err := run(os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error occurred: %v\n", err)
		os.Exit(1)
	}
}

func run(console io.Writer) error {
	_, envErr := config.LoadEnvFile("")

	logCfg := logger.ConfigFromEnv()
	logCfg.Console = console
	if logCfg.Dir == "" {
		logCfg.Dir = "logs"
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if envErr != nil {
		log.Error("Error occurred", zap.Error(envErr))
		return envErr
	}

	log.Info("🚀 Go Data Processor")
	log.Info("================================")
	log.Info("Environment: " + config.Environment())
	log.Info("Go version: " + runtime.Version())

	log.Info("✅ Application started successfully!")
	log.Info("✅ Completed successfully")
	return nil
}
