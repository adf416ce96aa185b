package batch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/vacefron/vacefron-go/pkg/vacefron"
)

// Job is one render request in a batch manifest
type Job struct {
	ID       string            `json:"id" yaml:"id"`
	Endpoint string            `json:"endpoint" yaml:"endpoint"`
	Args     map[string]string `json:"args" yaml:"args"`
	// Output is the file name inside the output directory; defaults to <id>.png
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Manifest is the YAML form of a batch file
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// jobRow is the Parquet form of a Job
type jobRow struct {
	ID       string   `parquet:"id"`
	Endpoint string   `parquet:"endpoint"`
	Output   string   `parquet:"output,optional"`
	Args     []argRow `parquet:"args,list"`
}

type argRow struct {
	Name  string `parquet:"name"`
	Value string `parquet:"value"`
}

func (r jobRow) job() Job {
	j := Job{ID: r.ID, Endpoint: r.Endpoint, Output: r.Output, Args: make(map[string]string, len(r.Args))}
	for _, a := range r.Args {
		j.Args[a.Name] = a.Value
	}
	return j
}

// Validate checks the fields every job needs before anything is sent
func (j Job) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("job has no id")
	}
	if _, ok := vacefron.LookupEndpoint(j.Endpoint); !ok {
		return fmt.Errorf("job %s: unknown endpoint %q", j.ID, j.Endpoint)
	}
	if !filepath.IsLocal(j.OutputName()) {
		return fmt.Errorf("job %s: output %q must be a relative path inside the output directory", j.ID, j.OutputName())
	}
	return nil
}

// OutputName returns the file name the job's image is saved under
func (j Job) OutputName() string {
	if j.Output != "" {
		return j.Output
	}
	return j.ID + ".png"
}

// Result is the outcome of one job
type Result struct {
	ID           string        `json:"id" yaml:"id"`
	Endpoint     string        `json:"endpoint" yaml:"endpoint"`
	URL          string        `json:"url,omitempty" yaml:"url,omitempty"`
	Path         string        `json:"path,omitempty" yaml:"path,omitempty"`
	Status       string        `json:"status" yaml:"status"`
	ErrorKind    string        `json:"error_kind,omitempty" yaml:"errorkind,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty" yaml:"errormessage,omitempty"`
	Duration     time.Duration `json:"duration" yaml:"duration"`
}

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)
