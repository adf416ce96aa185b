package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/vacefron/vacefron-go/internal/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	var manifestPath string
	var outputDir string
	var reportPath string
	var urlOnly bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render every job in a manifest",
		Long: `Render every job of a YAML, JSONL or Parquet manifest, one after another.

Failed jobs are recorded in the report with their error kind and the run
continues. The report format follows the file extension (.yaml or .parquet).`,
		Example: `  # Render a YAML manifest into ./vacefron_images
  vacefron batch --manifest jobs.yaml

  # Only validate the URLs and write a Parquet report
  vacefron batch --manifest jobs.parquet --url-only --report reports/run.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
				return fmt.Errorf("manifest file not found: %s", manifestPath)
			}

			jobs, err := batch.LoadManifest(manifestPath)
			if err != nil {
				return fmt.Errorf("failed to load manifest: %w", err)
			}
			slog.Info("Loaded manifest", "path", manifestPath, "jobs", len(jobs))

			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			runner := &batch.Runner{Renderer: client, OutputDir: outputDir, URLOnly: urlOnly}
			results, runErr := runner.Run(cmd.Context(), jobs)

			timestamp := time.Now().Format("2006-01-02_15-04-05")
			if reportPath == "" {
				reportPath = filepath.Join("reports", "vacefron-"+timestamp+".yaml")
			}
			report := batch.NewReport(batch.ReportConfig{
				BaseURL:   client.BaseURL(),
				Manifest:  manifestPath,
				OutputDir: outputDir,
				Timestamp: timestamp,
			}, results)
			if err := batch.WriteReport(reportPath, report); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nBatch complete!\n")
			fmt.Fprintf(out, "  Rendered: %d\n", report.Summary.Succeeded)
			fmt.Fprintf(out, "  Failed: %d\n", report.Summary.Failed)
			for kind, n := range report.Summary.ByKind {
				fmt.Fprintf(out, "    %s: %d\n", kind, n)
			}
			if !urlOnly {
				fmt.Fprintf(out, "  Output location: %s\n", outputDir)
			}
			fmt.Fprintf(out, "  Report: %s\n", reportPath)

			return runErr
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to the job manifest (.yaml, .jsonl or .parquet)")
	cmd.Flags().StringVar(&outputDir, "output", "./vacefron_images", "Output directory for rendered images")
	cmd.Flags().StringVar(&reportPath, "report", "", "Report path (.yaml or .parquet, defaults to reports/vacefron-<timestamp>.yaml)")
	cmd.Flags().BoolVar(&urlOnly, "url-only", false, "Validate the image URLs without downloading them")

	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}
