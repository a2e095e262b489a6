package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/onep_client/internal/domain"
)

type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reports         <-chan *domain.UploadResult
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.UploadResult,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reports:         reports,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.reports:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("filename", result.Filename),
				slog.String("status", string(result.Status)),
			)

			log.InfoContext(ctx, "received upload result, generating report")

			path, err := r.processResult(result)
			if err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
				continue
			}

			log.DebugContext(ctx, "report generated", slog.String("path", path))

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// processResult writes <spool file name>.pdf to the output directory.
func (r *Reporter) processResult(result *domain.UploadResult) (string, error) {
	base := filepath.Base(result.Filename)
	path := filepath.Join(r.outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")

	if err := r.reportGenerator.GenerateReport(path, result); err != nil {
		return "", fmt.Errorf("file %s: %w", base, err)
	}

	return path, nil
}
