// Package main provides the CLI entry point for workhours-go.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/workhours-go/internal/config"
	"github.com/ukaji3/workhours-go/internal/logging"
	"github.com/ukaji3/workhours-go/pkg/workhours"
	"github.com/ukaji3/workhours-go/pkg/workhours/models"
	"github.com/ukaji3/workhours-go/pkg/workhours/output"
)

var (
	outputPath  string
	catalogPath string
	asJSON      bool
	pretty      bool
	noExport    bool
	logLevel    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workhours [attendance.xlsx ...]",
		Short: "Calculate working hours from attendance exports",
		Long: `workhours-go reads attendance spreadsheets, normalizes dates and times,
computes working hours per employee and writes one combined workbook.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: "+workhours.DefaultOutputFile+")")
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML file with shifts, header markers and field labels")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Print the batch as JSON instead of a table")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&noExport, "no-export", false, "Do not write the output workbook")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	// Arguments are valid once RunE is reached; later errors are not usage errors.
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logging.Setup(cfg.Env, cfg.LogLevel)

	if catalogPath != "" {
		catalog, err := config.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}
		cfg.Catalog = catalog
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}

	opts := cfg.Options()
	opts.Logger = log.Logger
	agg := workhours.NewAggregator(opts)
	batch := agg.Run(workhours.LoadInputs(args))

	if err := present(cmd.OutOrStdout(), batch); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if noExport {
		return nil
	}
	if !batch.ExportEnabled() {
		return errors.New("no records extracted; nothing to export")
	}
	if err := output.SaveXLSX(cfg.Output, batch.Dataset.Records()); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	log.Info().Str("path", cfg.Output).Int("records", batch.Dataset.Len()).Msg("Workbook written")
	return nil
}

func present(w io.Writer, batch *models.Batch) error {
	if asJSON {
		data, err := output.ToJSON(batch, pretty)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if err := output.WriteStatus(w, batch); err != nil {
		return err
	}
	if batch.ExportEnabled() {
		fmt.Fprintln(w)
	}
	return output.WriteTable(w, batch)
}
