package postgresql

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/onep_client/internal/domain"
)

const TableUsageLog = "usage_log"

var usageColumns = []string{
	"cik",
	"requested_at",
	"iface",
	"method",
	"source",
	"rx_bytes",
	"tx_bytes",
	"duration_ns",
}

type UsageRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUsageRepository(pool *pgxpool.Pool) *UsageRepository {
	return &UsageRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UsageRepository) RecordUsage(ctx context.Context, entries ...*domain.UsageEntry) error {
	if len(entries) == 0 {
		return nil
	}

	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableUsageLog}, usageColumns,
		pgx.CopyFromSlice(len(entries), func(i int) ([]any, error) {
			return []any{
				entries[i].CIK,
				entries[i].RequestedAt,
				entries[i].Interface,
				entries[i].Method,
				entries[i].Source,
				entries[i].RxBytes,
				entries[i].TxBytes,
				entries[i].Duration.Nanoseconds(),
			}, nil
		}))
	if err != nil {
		return copyRowsError(TableUsageLog, err)
	}

	return checkCopied(TableUsageLog, copied, len(entries))
}

func (r *UsageRepository) Entries(ctx context.Context, since time.Time) ([]*domain.UsageEntry, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(usageColumns...).
		From(TableUsageLog).
		Where(sq.GtOrEq{"requested_at": since}).
		OrderBy("requested_at ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.UsageEntry, error) {
		var (
			e        domain.UsageEntry
			duration int64
		)

		err := row.Scan(
			&e.CIK,
			&e.RequestedAt,
			&e.Interface,
			&e.Method,
			&e.Source,
			&e.RxBytes,
			&e.TxBytes,
			&duration,
		)
		e.Duration = time.Duration(duration)

		return &e, err
	})
	if err != nil {
		return nil, collectRowsError(err)
	}

	return entries, nil
}

// DeleteBefore prunes entries older than before and returns how many were removed.
func (r *UsageRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableUsageLog).
		Where(sq.Lt{"requested_at": before}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
