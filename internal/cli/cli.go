// Package cli wires command-line flags to the data processing pipeline.
package cli

import (
	"context"
	"go-data-processor/internal/config"
	"go-data-processor/internal/logger"
	"go-data-processor/internal/pipeline"
	"go-data-processor/internal/store"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is reported by --version
const Version = "1.0.0"

// NewCommand builds the data-processor root command. defaultDelay seeds the --delay flag.
func NewCommand(out, errOut io.Writer, log *logger.Logger, defaultDelay time.Duration) *cobra.Command {
	opts := config.DefaultOptions()
	var (
		delay  time.Duration
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "data-processor",
		Short: "Generate, transform and summarize a sample list of records",
		Example: `  data-processor
  data-processor --multiplier 3
  data-processor -m 5 -c 10
  data-processor --format json`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), out, log, cfg, delay, dbPath)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVarP(&opts.Multiplier, "multiplier", "m", opts.Multiplier, "value to multiply each item by")
	flags.StringVarP(&opts.Count, "count", "c", opts.Count, "number of items to process")
	flags.StringVarP(&opts.Format, "format", "f", opts.Format, "output format (json|table)")
	flags.DurationVar(&delay, "delay", defaultDelay, "simulated latency before completion")
	flags.StringVar(&dbPath, "db", "", "record the run in this SQLite file")

	return cmd
}

// Execute runs the command with args and returns the first error
func Execute(ctx context.Context, args []string, out, errOut io.Writer, log *logger.Logger, defaultDelay time.Duration) error {
	cmd := NewCommand(out, errOut, log, defaultDelay)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func run(ctx context.Context, out io.Writer, log *logger.Logger, cfg config.Configuration, delay time.Duration, dbPath string) error {
	pipelineOpts := []pipeline.Option{pipeline.WithDelay(delay)}

	if dbPath != "" {
		s, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()
		log.Debug("Run history enabled", zap.String("db", dbPath))
		pipelineOpts = append(pipelineOpts, pipeline.WithStore(s))
	}

	_, err := pipeline.NewProcessor(out, log, pipelineOpts...).Run(ctx, cfg)
	return err
}
