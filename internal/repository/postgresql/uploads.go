package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/student_uploader/internal/domain"
)

const (
	TableUploads = "uploads"

	interruptedMessage = "upload interrupted by a service restart"
)

type UploadsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUploadsRepository(pool *pgxpool.Pool) *UploadsRepository {
	return &UploadsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UploadsRepository) selectUploads() sq.SelectBuilder {
	return r.qb.
		Select(
			"id",
			"file_name",
			"sheet",
			"status",
			"total_rows",
			"inserted",
			"failed",
			"sample",
			"error_message",
			"created_at",
			"processed_at",
		).
		From(TableUploads)
}

func (r *UploadsRepository) Uploads(ctx context.Context, limit, offset uint64) ([]*domain.Upload, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableUploads).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.selectUploads().
		OrderBy("created_at DESC", "id ASC").
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

	uploads, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Upload])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return uploads, total, nil
}

func (r *UploadsRepository) UploadByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.selectUploads().
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	upload, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Upload])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUploadNotFound
		}
		return nil, collectRowsError(err)
	}

	return upload, nil
}

func (r *UploadsRepository) SaveUpload(ctx context.Context, upload *domain.Upload) error {
	db := extractDB(ctx, r.pool)

	sample := upload.Sample
	if sample == nil {
		sample = []domain.RowError{}
	}

	sql, args, err := r.qb.
		Insert(TableUploads).
		Columns(
			"id",
			"file_name",
			"sheet",
			"status",
			"total_rows",
			"inserted",
			"failed",
			"sample",
			"error_message",
			"processed_at",
		).
		Values(
			upload.ID,
			upload.FileName,
			upload.Sheet,
			upload.Status,
			upload.TotalRows,
			upload.Inserted,
			upload.Failed,
			sample,
			upload.ErrorMessage,
			upload.ProcessedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			sheet = EXCLUDED.sheet,
			status = EXCLUDED.status,
			total_rows = EXCLUDED.total_rows,
			inserted = EXCLUDED.inserted,
			failed = EXCLUDED.failed,
			sample = EXCLUDED.sample,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// FailInterruptedUploads marks uploads left in processing by a previous run as failed.
func (r *UploadsRepository) FailInterruptedUploads(ctx context.Context) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableUploads).
		Set("status", domain.StatusError).
		Set("error_message", interruptedMessage).
		Set("processed_at", sq.Expr("now()")).
		Where(sq.Eq{"status": domain.StatusProcessing}).
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
