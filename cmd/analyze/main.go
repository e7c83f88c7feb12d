// Command analyze scores marketplace subcategories from CSV exports.
//
// It scans an input directory for listing and keyword exports, analyzes
// every subcategory concurrently and writes a ranked report as Markdown,
// CSV and/or Excel. With no output flags the Markdown report goes to
// stdout.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"niche-lab/internal/ingest"
	"niche-lab/internal/logger"
	"niche-lab/internal/pipeline"
	"niche-lab/internal/reporting"
)

const envPrefix = "NICHELAB"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "analyze",
		Short:         "Score marketplace niche opportunities from CSV exports",
		Long:          "Scans a directory of marketplace listing and keyword-research CSV exports,\nscores each subcategory on market and demand criteria and writes a ranked report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", ".", "directory containing CSV exports")
	flags.IntP("workers", "w", 0, "concurrent subcategory analyses (0 = one per CPU)")
	flags.String("seed", "", "seed keyword override (default: derived from keyword filenames)")
	flags.String("csv", "", "write ranking CSV to this path")
	flags.String("markdown", "", "write Markdown report to this path")
	flags.String("excel", "", "write Excel workbook to this path")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	log, err := logger.New(viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	inputDir := viper.GetString("input")
	inputs, err := ingest.DiscoverInputs(inputDir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no listing exports found in %s", inputDir)
	}
	log.Info("discovered subcategories", logger.Int("count", len(inputs)), logger.String("dir", inputDir))

	if seed := viper.GetString("seed"); seed != "" {
		for i := range inputs {
			if inputs[i].KeywordPath != "" {
				inputs[i].SeedKeyword = seed
			}
		}
	}

	runner := pipeline.NewRunner(viper.GetInt("workers"), log)
	batch := runner.Run(cmd.Context(), inputs)
	if len(batch.Results) == 0 {
		return fmt.Errorf("all %d subcategories failed: %s", len(batch.Errors), strings.Join(batch.Errors, "; "))
	}

	report := reporting.NewReport(batch.Results, batch.Errors)
	return writeOutputs(cmd, log, report)
}

func writeOutputs(cmd *cobra.Command, log logger.Logger, report *reporting.Report) error {
	var wrote bool

	if path := viper.GetString("csv"); path != "" {
		if err := os.WriteFile(path, []byte(reporting.RenderCSV(report.Rankings())), 0o644); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		log.Info("wrote ranking CSV", logger.String("path", path))
		wrote = true
	}

	if path := viper.GetString("markdown"); path != "" {
		if err := os.WriteFile(path, []byte(reporting.RenderMarkdown(report)), 0o644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		log.Info("wrote Markdown report", logger.String("path", path))
		wrote = true
	}

	if path := viper.GetString("excel"); path != "" {
		if err := reporting.WriteExcel(report, path); err != nil {
			return fmt.Errorf("write excel: %w", err)
		}
		log.Info("wrote Excel workbook", logger.String("path", path))
		wrote = true
	}

	if !wrote {
		fmt.Fprint(cmd.OutOrStdout(), reporting.RenderMarkdown(report))
	}
	return nil
}
