package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/onep_client/internal/config"
	"github.com/kurochkinivan/onep_client/internal/device"
	"github.com/kurochkinivan/onep_client/internal/netstat"
	"github.com/kurochkinivan/onep_client/internal/onep"
	"github.com/kurochkinivan/onep_client/internal/repository/devicefile"
	"github.com/kurochkinivan/onep_client/internal/repository/postgresql"
	"github.com/kurochkinivan/onep_client/internal/repository/usagelog"
	"github.com/kurochkinivan/onep_client/internal/usage"
)

// UsageStore both records platform round trips and serves them back for reports.
type UsageStore interface {
	onep.UsageRecorder
	usage.Store
}

func newUsageStore(cfg config.Usage, pool *pgxpool.Pool) (UsageStore, error) {
	switch cfg.Backend {
	case "", config.UsageBackendFile:
		return usagelog.New(cfg.LogFile), nil
	case config.UsageBackendPostgreSQL:
		if pool == nil {
			return nil, fmt.Errorf("usage backend %q requires a postgresql connection", cfg.Backend)
		}
		return postgresql.NewUsageRepository(pool), nil
	default:
		return nil, fmt.Errorf("unknown usage backend %q", cfg.Backend)
	}
}

// OpenUsageStore is used by one-shot commands. The returned close function
// releases the database pool when the postgresql backend is selected.
func OpenUsageStore(ctx context.Context, log *slog.Logger, cfg *config.Config) (UsageStore, func(), error) {
	if cfg.Usage.Backend != config.UsageBackendPostgreSQL {
		store, err := newUsageStore(cfg.Usage, nil)
		return store, func() {}, err
	}

	pool, err := postgresql.NewConnection(ctx, log, cfg.PostgreSQL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	store, err := newUsageStore(cfg.Usage, pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	return store, pool.Close, nil
}

func NewUsageService(log *slog.Logger, cfg config.Usage, store usage.Store) *usage.Service {
	return usage.NewService(log, store, usage.Config{
		Interfaces:     cfg.Interfaces,
		ThrottleWindow: cfg.ThrottleWindow,
		ThrottleLimit:  cfg.ThrottleLimit,
		Retention:      cfg.Retention,
		PruneInterval:  cfg.PruneInterval,
	})
}

// NewDevice loads the device state file and builds a device talking to the
// platform through an accounted onep client. recorder may be nil.
func NewDevice(log *slog.Logger, cfg *config.Config, recorder onep.UsageRecorder, version string) (*device.Device, error) {
	store := devicefile.New(cfg.Device.StateFile)

	settings, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load device state: %w", err)
	}

	var sampler onep.InterfaceSampler
	if recorder != nil {
		sampler = netstat.NewSampler(cfg.Usage.ProcFS, cfg.Usage.Interfaces)
	}

	client := onep.NewClient(log, onep.Config{
		Vendor:    settings.Vendor,
		BaseURL:   cfg.Platform.BaseURL,
		UseTLS:    cfg.Platform.UseTLS,
		UserAgent: userAgent(cfg.Platform.UserAgent, version),
		Timeout:   cfg.Platform.Timeout,
		UDPAddr:   cfg.Platform.UDPAddr,
	}, sampler, recorder)

	return device.New(log, client, store, settings, version), nil
}

func userAgent(configured, version string) string {
	if configured != "" {
		return configured
	}

	return "onep_client/" + version
}
