package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/student_uploader/internal/domain"
)

const TableStudents = "students"

var studentInsertColumns = []string{
	"name",
	"roll",
	"subject",
	"marks",
}

type StudentsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewStudentsRepository(pool *pgxpool.Pool) *StudentsRepository {
	return &StudentsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *StudentsRepository) Students(
	ctx context.Context,
	limit, offset uint64,
) ([]*domain.Student, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableStudents).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.selectStudents().
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	students, err := r.queryStudents(ctx, db, sql, args)
	if err != nil {
		return nil, -1, err
	}

	return students, total, nil
}

func (r *StudentsRepository) AllStudents(ctx context.Context) ([]*domain.Student, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.selectStudents().ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	return r.queryStudents(ctx, db, sql, args)
}

func (r *StudentsRepository) selectStudents() sq.SelectBuilder {
	return r.qb.
		Select(
			"id",
			"name",
			"roll",
			"subject",
			"marks",
			"created_at",
			"updated_at",
		).
		From(TableStudents).
		OrderBy("created_at ASC", "id ASC")
}

func (r *StudentsRepository) queryStudents(ctx context.Context, db DBTX, sql string, args []any) ([]*domain.Student, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	students, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Student])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return students, nil
}

// MarksBySubject groups every stored mark by subject.
func (r *StudentsRepository) MarksBySubject(ctx context.Context) (map[string][]float64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("subject", "marks").
		From(TableStudents).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}
	defer rows.Close()

	marks := make(map[string][]float64)
	for rows.Next() {
		var (
			subject string
			mark    float64
		)
		if err := rows.Scan(&subject, &mark); err != nil {
			return nil, scanRowError(err)
		}

		marks[subject] = append(marks[subject], mark)
	}

	if err := rows.Err(); err != nil {
		return nil, collectRowsError(err)
	}

	return marks, nil
}

// SaveStudents copies the records in one COPY. If the server refuses the data,
// records are inserted one at a time and the refused ones are returned.
func (r *StudentsRepository) SaveStudents(ctx context.Context, students []*domain.Student) ([]*domain.Student, error) {
	err := guarded(ctx, r.pool, func(db DBTX) error {
		return r.copyStudents(ctx, db, students)
	})
	if err == nil {
		return nil, nil
	}

	if !isRecordError(err) {
		return nil, err
	}

	return r.insertEach(ctx, students)
}

func (r *StudentsRepository) copyStudents(ctx context.Context, db DBTX, students []*domain.Student) error {
	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableStudents}, studentInsertColumns,
		pgx.CopyFromSlice(len(students), func(i int) ([]any, error) {
			return []any{
				students[i].Name,
				students[i].Roll,
				students[i].Subject,
				students[i].Marks,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy students: %w", err)
	}

	if copied != int64(len(students)) {
		return fmt.Errorf("failed to copy students: copied %d rows, expected %d", copied, len(students))
	}

	return nil
}

func (r *StudentsRepository) insertEach(ctx context.Context, students []*domain.Student) ([]*domain.Student, error) {
	var rejected []*domain.Student

	for _, s := range students {
		sql, args, err := r.qb.
			Insert(TableStudents).
			Columns(studentInsertColumns...).
			Values(s.Name, s.Roll, s.Subject, s.Marks).
			ToSql()
		if err != nil {
			return nil, createQueryError(err)
		}

		err = guarded(ctx, r.pool, func(db DBTX) error {
			_, err := db.Exec(ctx, sql, args...)
			return err
		})

		switch {
		case err == nil:
		case isRecordError(err):
			rejected = append(rejected, s)
		default:
			return nil, executeQueryError(err)
		}
	}

	return rejected, nil
}

func (r *StudentsRepository) DeleteAllStudents(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.Delete(TableStudents).ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
