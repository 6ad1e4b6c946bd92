package main

import (
	"context"
	"fmt"
	"go-data-processor/internal/cli"
	"go-data-processor/internal/config"
	"go-data-processor/internal/logger"
	"go-data-processor/internal/pipeline"
	"go-data-processor/pkg/utils"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error during data processing: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out, errOut io.Writer) error {
	loaded, envErr := config.LoadEnvFile("")

	logCfg := logger.ConfigFromEnv()
	logCfg.Console = errOut
	appLogger, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	defer appLogger.Close()
	log := appLogger.Named("DataProcessor")

	if envErr != nil {
		log.Warn("Failed to load .env file", zap.Error(envErr))
	} else if loaded {
		log.Debug("Loaded .env file")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	delay := utils.ParseDuration(os.Getenv("PROCESSOR_DELAY"), pipeline.DefaultDelay)
	return cli.Execute(ctx, args, out, errOut, log, delay)
}
