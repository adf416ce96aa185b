package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/vacefron/vacefron-go/pkg/vacefron"
)

// Renderer renders an endpoint by name; *vacefron.Client implements it
type Renderer interface {
	Render(ctx context.Context, endpoint string, args vacefron.Args) (vacefron.Image, error)
}

// Runner executes jobs one after another and saves each image into OutputDir
type Runner struct {
	Renderer  Renderer
	OutputDir string
	// URLOnly skips downloading; results only carry the validated URL
	URLOnly bool
}

// Run executes every job in order. A failed job is recorded and the run
// moves on; only a canceled context stops it early.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	if !r.URLOnly {
		if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	results := make([]Result, 0, len(jobs))
	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		slog.Info("Processing job", "id", job.ID, "endpoint", job.Endpoint, "progress", fmt.Sprintf("%d/%d", i+1, len(jobs)))
		result := r.runJob(ctx, job)
		if result.Status == StatusFailed {
			slog.Warn("Job failed", "id", job.ID, "kind", result.ErrorKind, "error", result.ErrorMessage)
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Runner) runJob(ctx context.Context, job Job) Result {
	start := time.Now()
	result := Result{ID: job.ID, Endpoint: job.Endpoint}

	img, err := r.Renderer.Render(ctx, job.Endpoint, job.Args)
	if err == nil {
		result.URL = img.URL()
		if !r.URLOnly {
			var path string
			if path, err = r.outputPath(job); err == nil {
				if err = img.Save(ctx, path); err == nil {
					result.Path = path
				}
			}
		}
	}

	result.Duration = time.Since(start)
	if err != nil {
		result.Status = StatusFailed
		result.ErrorKind = ErrorKind(err)
		result.ErrorMessage = err.Error()
		return result
	}
	result.Status = StatusOK
	return result
}

// outputPath resolves the job's file inside OutputDir and creates its
// parent directory
func (r *Runner) outputPath(job Job) (string, error) {
	name := job.OutputName()
	if !filepath.IsLocal(name) {
		return "", &vacefron.ValidationError{Field: "output", Value: name, Message: "must be a relative path inside the output directory"}
	}
	path := filepath.Join(r.OutputDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return path, nil
}

// ErrorKind names the failure class of err for reports
func ErrorKind(err error) string {
	var (
		apiErr    *vacefron.Error
		validErr  *vacefron.ValidationError
		decodeErr *vacefron.DecodeError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validErr):
		return "validation"
	case errors.As(err, &decodeErr):
		return "decode"
	case errors.As(err, &apiErr):
		switch apiErr.Kind {
		case vacefron.KindBadRequest:
			return "bad_request"
		case vacefron.KindNotFound:
			return "not_found"
		case vacefron.KindInternalServerError:
			return "internal_server_error"
		default:
			return "http_error"
		}
	case errors.Is(err, vacefron.ErrSessionClosed):
		return "session_closed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "transport"
	}
}
