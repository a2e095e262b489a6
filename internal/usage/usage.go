package usage

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/kurochkinivan/onep_client/internal/domain"
)

const (
	DefaultThrottleWindow = 15 * time.Minute
	DefaultThrottleLimit  = 60
	DefaultPruneInterval  = time.Hour
)

// Report aggregates entries per interface and request source. When ifaces
// is not empty, other interfaces are skipped and every listed interface
// is present in the report.
func Report(entries []*domain.UsageEntry, ifaces []string) domain.UsageReport {
	report := make(domain.UsageReport, len(ifaces))
	for _, iface := range ifaces {
		report[iface] = make(map[string]*domain.SourceUsage)
	}

	for _, e := range entries {
		if len(ifaces) > 0 && !slices.Contains(ifaces, e.Interface) {
			continue
		}

		sources, ok := report[e.Interface]
		if !ok {
			sources = make(map[string]*domain.SourceUsage)
			report[e.Interface] = sources
		}

		u, ok := sources[e.Source]
		if !ok {
			u = &domain.SourceUsage{}
			sources[e.Source] = u
		}

		u.Num++
		u.Method = e.Method
		u.MaxRx = max(u.MaxRx, e.RxBytes)
		u.MaxTx = max(u.MaxTx, e.TxBytes)
		u.TotalRx += e.RxBytes
		u.TotalTx += e.TxBytes
		u.MaxDuration = max(u.MaxDuration, e.Duration)
		u.AvgDuration += (e.Duration - u.AvgDuration) / time.Duration(u.Num)
	}

	return report
}

// Throttled returns, sorted, the ciks that made more than limit requests in
// the window ending at now. Entries of one request on several interfaces
// count once.
func Throttled(entries []*domain.UsageEntry, now time.Time, window time.Duration, limit int) []string {
	since := now.Add(-window)

	type request struct {
		cik string
		at  int64
	}

	seen := make(map[request]struct{})
	counts := make(map[string]int)

	for _, e := range entries {
		if e.RequestedAt.Before(since) || e.RequestedAt.After(now) {
			continue
		}

		key := request{cik: e.CIK, at: e.RequestedAt.UnixNano()}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		counts[e.CIK]++
	}

	var throttled []string
	for cik, n := range counts {
		if n > limit {
			throttled = append(throttled, cik)
		}
	}
	slices.Sort(throttled)

	return throttled
}

type Store interface {
	Entries(ctx context.Context, since time.Time) ([]*domain.UsageEntry, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

type Config struct {
	Interfaces     []string
	ThrottleWindow time.Duration
	ThrottleLimit  int
	// Retention is how long entries are kept, zero keeps them forever.
	Retention     time.Duration
	PruneInterval time.Duration
}

type Service struct {
	log   *slog.Logger
	store Store
	cfg   Config
	now   func() time.Time
}

func NewService(log *slog.Logger, store Store, cfg Config) *Service {
	if cfg.ThrottleWindow <= 0 {
		cfg.ThrottleWindow = DefaultThrottleWindow
	}
	if cfg.ThrottleLimit <= 0 {
		cfg.ThrottleLimit = DefaultThrottleLimit
	}
	if cfg.PruneInterval <= 0 {
		cfg.PruneInterval = DefaultPruneInterval
	}

	return &Service{
		log:   log,
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}

func (s *Service) Report(ctx context.Context, since time.Time) (domain.UsageReport, error) {
	entries, err := s.store.Entries(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage entries: %w", err)
	}

	return Report(entries, s.cfg.Interfaces), nil
}

func (s *Service) Throttled(ctx context.Context) ([]string, error) {
	now := s.now()

	entries, err := s.store.Entries(ctx, now.Add(-s.cfg.ThrottleWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to load usage entries: %w", err)
	}

	throttled := Throttled(entries, now, s.cfg.ThrottleWindow, s.cfg.ThrottleLimit)
	if len(throttled) > 0 {
		s.log.Warn("ciks over request limit", slog.Int("count", len(throttled)))
	}

	return throttled, nil
}

// Prune removes entries older than olderThan and returns how many were removed.
func (s *Service) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan < 0 {
		return 0, fmt.Errorf("negative prune age %s", olderThan)
	}

	deleted, err := s.store.DeleteBefore(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to prune usage entries: %w", err)
	}

	return deleted, nil
}

// RunPruner applies the retention every prune interval until ctx is done.
// It returns at once when no retention is configured.
func (s *Service) RunPruner(ctx context.Context) error {
	if s.cfg.Retention <= 0 {
		return nil
	}

	ticker := time.NewTicker(s.cfg.PruneInterval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		deleted, err := s.Prune(ctx, s.cfg.Retention)
		if err != nil {
			s.log.ErrorContext(ctx, "failed to apply usage retention", slog.String("err", err.Error()))
		} else if deleted > 0 {
			s.log.InfoContext(ctx, "pruned usage entries", slog.Int64("deleted", deleted))
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
