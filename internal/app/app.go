package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/onep_client/internal/config"
	v1 "github.com/kurochkinivan/onep_client/internal/controller/http/v1"
	"github.com/kurochkinivan/onep_client/internal/domain"
	"github.com/kurochkinivan/onep_client/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/onep_client/internal/pipeline"
	"github.com/kurochkinivan/onep_client/internal/repository/postgresql"
	"github.com/kurochkinivan/onep_client/internal/usage"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer        = 100
	parseResultsBuffer = 50
	reportsBuffer      = 100
)

type App struct {
	log     *slog.Logger
	cfg     *config.Config
	version string
}

func New(log *slog.Logger, cfg *config.Config, version string) *App {
	return &App{
		log:     log,
		cfg:     cfg,
		version: version,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting agent",
		slog.String("version", a.version),
		slog.String("spool_dir", a.cfg.Spool.WatchDirectory),
		slog.String("reports_dir", a.cfg.Spool.ReportsDirectory),
		slog.Duration("scan_interval", a.cfg.Spool.ScanInterval),
		slog.String("usage_backend", a.cfg.Usage.Backend),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	filesRepository := postgresql.NewSpoolFilesRepository(pool)

	if err := filesRepository.ResetProcessingFiles(ctx); err != nil {
		return fmt.Errorf("failed to reset processing files: %w", err)
	}

	usageStore, err := newUsageStore(a.cfg.Usage, pool)
	if err != nil {
		return err
	}

	dev, err := NewDevice(a.log, a.cfg, usageStore, a.version)
	if err != nil {
		return err
	}

	a.log.InfoContext(ctx, "device loaded",
		slog.String("vendor", dev.Identity().Vendor),
		slog.String("model", dev.Identity().Model),
		slog.Bool("activated", dev.Activated()),
	)

	repos := &repositories{
		files:    filesRepository,
		outcomes: postgresql.NewUploadOutcomesRepository(pool),
		tx:       postgresql.NewTxManager(a.log, pool),
	}

	return a.startPipeline(ctx, repos, dev, NewUsageService(a.log, a.cfg.Usage, usageStore))
}

type repositories struct {
	files    *postgresql.SpoolFilesRepository
	outcomes *postgresql.UploadOutcomesRepository
	tx       *postgresql.TxManager
}

func (a *App) startPipeline(
	ctx context.Context,
	repos *repositories,
	device pipeline.Device,
	usageService *usage.Service,
) error {
	files := make(chan string, filesBuffer)
	parseResults := make(chan *domain.ParseResult, parseResultsBuffer)
	reports := make(chan *domain.UploadResult, reportsBuffer)

	scanner := pipeline.NewScanner(
		a.log,
		a.cfg.Spool.WatchDirectory,
		a.cfg.Spool.ScanInterval,
		files,
		repos.files,
		repos.files,
	)
	parser := pipeline.NewParser(a.log, files, parseResults)
	uploader := pipeline.NewUploader(
		a.log,
		device,
		a.cfg.Device.ActivationCheckInterval,
		parseResults,
		reports,
		repos.files,
		repos.outcomes,
		repos.tx,
	)
	reporter := pipeline.NewReporter(a.log, a.cfg.Spool.ReportsDirectory, reports, report_generator.New())
	server := v1.NewServer(a.cfg.HTTP, uploader, usageService, repos.files, repos.outcomes)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "parser started")
		return parser.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "uploader started")
		return uploader.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		if a.cfg.Usage.Retention > 0 {
			a.log.InfoContext(ctx, "usage pruner started", slog.Duration("retention", a.cfg.Usage.Retention))
		}
		return usageService.RunPruner(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
