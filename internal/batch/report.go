package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// ReportConfig describes the run a report belongs to
type ReportConfig struct {
	BaseURL   string `yaml:"baseurl"`
	Manifest  string `yaml:"manifest"`
	OutputDir string `yaml:"outputdir,omitempty"`
	Timestamp string `yaml:"timestamp"`
}

// Summary counts job outcomes
type Summary struct {
	Total     int            `yaml:"total"`
	Succeeded int            `yaml:"succeeded"`
	Failed    int            `yaml:"failed"`
	ByKind    map[string]int `yaml:"bykind,omitempty"`
}

// Report is the complete output of a batch run
type Report struct {
	Config  ReportConfig `yaml:"config"`
	Summary Summary      `yaml:"summary"`
	Results []Result     `yaml:"results"`
}

// NewReport builds a report and its summary from results
func NewReport(cfg ReportConfig, results []Result) Report {
	if cfg.Timestamp == "" {
		cfg.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}
	return Report{Config: cfg, Summary: Summarize(results), Results: results}
}

// Summarize counts successes and failures per error kind
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Status == StatusOK {
			s.Succeeded++
			continue
		}
		s.Failed++
		if s.ByKind == nil {
			s.ByKind = make(map[string]int)
		}
		s.ByKind[r.ErrorKind]++
	}
	return s
}

// resultRow is the Parquet form of a Result
type resultRow struct {
	ID           string `parquet:"id"`
	Endpoint     string `parquet:"endpoint"`
	URL          string `parquet:"url,optional"`
	Path         string `parquet:"path,optional"`
	Status       string `parquet:"status"`
	ErrorKind    string `parquet:"error_kind,optional"`
	ErrorMessage string `parquet:"error_message,optional"`
	DurationMS   int64  `parquet:"duration_ms"`
}

// WriteReport writes the report as YAML or Parquet depending on the file
// extension. Parquet reports hold the per-job results only.
func WriteReport(path string, report Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return writeYAML(path, report)
	case ".parquet":
		return writeParquet(path, report.Results)
	default:
		return fmt.Errorf("unsupported report format: %s (supported: .yaml, .parquet)", ext)
	}
}

func writeYAML(path string, report Report) error {
	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}
	return nil
}

func writeParquet(path string, results []Result) error {
	rows := make([]resultRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, resultRow{
			ID:           r.ID,
			Endpoint:     r.Endpoint,
			URL:          r.URL,
			Path:         r.Path,
			Status:       r.Status,
			ErrorKind:    r.ErrorKind,
			ErrorMessage: r.ErrorMessage,
			DurationMS:   r.Duration.Milliseconds(),
		})
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("failed to write parquet file: %w", err)
	}
	return nil
}
