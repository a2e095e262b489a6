package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/onep_client/internal/domain"
)

const TableSpoolFiles = "spool_files"

type SpoolFilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewSpoolFilesRepository(pool *pgxpool.Pool) *SpoolFilesRepository {
	return &SpoolFilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SpoolFilesRepository) Files(ctx context.Context) ([]*domain.SpoolFile, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"name",
			"status",
			"processed_at",
			"error_message",
		).
		From(TableSpoolFiles).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.SpoolFile])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return files, nil
}

// FilesPage returns spool files, most recently processed first, and the
// total number of files.
func (r *SpoolFilesRepository) FilesPage(ctx context.Context, limit, offset uint64) ([]*domain.SpoolFile, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableSpoolFiles).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(
			"name",
			"status",
			"processed_at",
			"error_message",
		).
		From(TableSpoolFiles).
		OrderBy("processed_at DESC NULLS LAST", "name ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.SpoolFile])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return files, total, nil
}

func (r *SpoolFilesRepository) UpdateOrCreateFile(ctx context.Context, file *domain.SpoolFile) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableSpoolFiles).
		Columns(
			"name",
			"status",
			"error_message",
			"processed_at",
		).
		Values(
			file.Name,
			file.Status,
			file.ErrorMessage,
			file.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			status = EXCLUDED.status,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

// ResetProcessingFiles puts back files left half uploaded by a previous run.
func (r *SpoolFilesRepository) ResetProcessingFiles(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableSpoolFiles).
		Set("status", domain.StatusPending).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}
