package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/onep_client/internal/domain"
)

const TableUploadOutcomes = "upload_outcomes"

type UploadOutcomesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUploadOutcomesRepository(pool *pgxpool.Pool) *UploadOutcomesRepository {
	return &UploadOutcomesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UploadOutcomesRepository) Outcomes(ctx context.Context, fileName string) ([]*domain.OutcomeRecord, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"file_name",
			"alias",
			"sent",
			"success",
			"rejected_count",
			"error_code",
			"error_message",
		).
		From(TableUploadOutcomes).
		Where(sq.Eq{"file_name": fileName}).
		OrderBy("alias ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	outcomes, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.OutcomeRecord])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return outcomes, nil
}

// SaveOutcomes replaces the outcomes stored for a file, so a retried
// upload never leaves rows of an earlier attempt behind.
func (r *UploadOutcomesRepository) SaveOutcomes(ctx context.Context, fileName string, outcomes []*domain.OutcomeRecord) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableUploadOutcomes).
		Where(sq.Eq{"file_name": fileName}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	if len(outcomes) == 0 {
		return nil
	}

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableUploadOutcomes}, []string{
		"file_name",
		"alias",
		"sent",
		"success",
		"rejected_count",
		"error_code",
		"error_message",
	}, pgx.CopyFromSlice(len(outcomes), func(i int) ([]any, error) {
		return []any{
			fileName,
			outcomes[i].Alias,
			outcomes[i].Sent,
			outcomes[i].Success,
			outcomes[i].RejectedCount,
			outcomes[i].ErrorCode,
			outcomes[i].ErrorMessage,
		}, nil
	}))
	if err != nil {
		return copyRowsError(TableUploadOutcomes, err)
	}

	return checkCopied(TableUploadOutcomes, copied, len(outcomes))
}
