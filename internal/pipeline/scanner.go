package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/onep_client/internal/domain"
)

const spoolExtension = ".tsv"

type Scanner struct {
	log           *slog.Logger
	spoolDir      string
	scanInterval  time.Duration
	files         chan<- string
	filesProvider FilesProvider
	fileUpdater   FileUpdater
}

func NewScanner(
	log *slog.Logger,
	spoolDir string,
	scanInterval time.Duration,
	files chan<- string,
	filesProvider FilesProvider,
	fileUpdater FileUpdater,
) *Scanner {
	return &Scanner{
		log:           log,
		spoolDir:      spoolDir,
		scanInterval:  scanInterval,
		files:         files,
		filesProvider: filesProvider,
		fileUpdater:   fileUpdater,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan spool", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	statuses, err := s.fileStatuses(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.spoolDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.spoolDir, err)
	}

	for _, entry := range entries {
		err := s.processEntry(ctx, entry, statuses)
		if err != nil {
			s.log.ErrorContext(ctx, "failed to process entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}
	}

	return nil
}

func (s *Scanner) fileStatuses(ctx context.Context) (map[string]domain.Status, error) {
	files, err := s.filesProvider.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}

	statuses := make(map[string]domain.Status, len(files))
	for _, file := range files {
		statuses[file.Name] = file.Status
	}

	return statuses, nil
}

func (s *Scanner) processEntry(ctx context.Context, entry os.DirEntry, statuses map[string]domain.Status) error {
	name := entry.Name()

	// файлы, которые еще пишутся, начинаются с точки
	if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != spoolExtension {
		return nil
	}

	status, ok := statuses[name]
	if ok && status != domain.StatusPending {
		return nil
	}

	err := s.fileUpdater.UpdateOrCreateFile(ctx, &domain.SpoolFile{
		Name:   name,
		Status: domain.StatusProcessing,
	})
	if err != nil {
		return fmt.Errorf("failed to update file status: %w", err)
	}

	s.log.DebugContext(ctx, "updated file status to processing", slog.String("filename", name))

	select {
	case s.files <- filepath.Join(s.spoolDir, name):
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
