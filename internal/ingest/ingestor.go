package ingest

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/student_uploader/internal/domain"
)

const DefaultSampleSize = 3

type Options struct {
	// SampleSize is the number of row errors copied into the result.
	SampleSize int
	// RejectEmptyBatch fails uploads without a single valid row with domain.ErrNoValidRecords.
	RejectEmptyBatch bool
}

type Ingestor struct {
	log           *slog.Logger
	parser        *Parser
	validator     *Validator
	studentsSaver StudentsSaver
	recorder      UploadRecorder
	opts          Options
}

func NewIngestor(
	log *slog.Logger,
	studentsSaver StudentsSaver,
	recorder UploadRecorder,
	opts Options,
) *Ingestor {
	if opts.SampleSize <= 0 {
		opts.SampleSize = DefaultSampleSize
	}

	return &Ingestor{
		log:           log,
		parser:        NewParser(log),
		validator:     NewValidator(),
		studentsSaver: studentsSaver,
		recorder:      recorder,
		opts:          opts,
	}
}

// Ingest parses, validates and stores the rows of src. The source is cleaned up
// before Ingest returns, whatever the outcome.
func (i *Ingestor) Ingest(ctx context.Context, src Source) (*domain.UploadResult, error) {
	if src == nil {
		return nil, domain.ErrNoFile
	}

	log := i.log.With(slog.String("filename", src.Filename()))
	defer i.cleanup(ctx, log, src)

	upload := &domain.Upload{
		ID:       uuid.New(),
		FileName: src.Filename(),
		Status:   domain.StatusProcessing,
	}
	i.record(ctx, log, upload)

	log.InfoContext(ctx, "ingesting upload", slog.String("upload_id", upload.ID.String()))

	result, sheet, err := i.ingest(ctx, log, src)

	// The outcome is recorded even if the caller went away.
	i.finish(context.WithoutCancel(ctx), log, upload, sheet, result, err)

	if err != nil {
		return nil, err
	}

	return result, nil
}

func (i *Ingestor) ingest(ctx context.Context, log *slog.Logger, src Source) (*domain.UploadResult, *Sheet, error) {
	sheet, err := i.parse(src)
	if err != nil {
		return nil, nil, err
	}

	if missing := sheet.MissingColumns(RequiredColumns); len(missing) > 0 {
		return nil, sheet, &domain.MissingColumnsError{
			Missing:  missing,
			Required: RequiredColumns,
		}
	}

	valid, invalid := i.validator.Validate(sheet.Rows)

	log.DebugContext(ctx, "validated rows",
		slog.Int("total", len(sheet.Rows)),
		slog.Int("valid", len(valid)),
		slog.Int("invalid", len(invalid)),
	)

	if len(valid) == 0 && i.opts.RejectEmptyBatch {
		return nil, sheet, domain.ErrNoValidRecords
	}

	if err := ctx.Err(); err != nil {
		return nil, sheet, fmt.Errorf("upload abandoned before saving: %w", err)
	}

	rejected, err := i.save(ctx, valid)
	if err != nil {
		return nil, sheet, err
	}

	if len(rejected) > 0 {
		log.WarnContext(ctx, "store rejected records", slog.Int("rejected", len(rejected)))
	}

	failures := mergeFailures(invalid, rejected)

	sample := make([]domain.RowError, 0, min(i.opts.SampleSize, len(failures)))
	sample = append(sample, failures[:cap(sample)]...)

	return &domain.UploadResult{
		Message:   domain.MessageUploadCompleted,
		FileName:  src.Filename(),
		Sheet:     sheet.Name,
		TotalRows: len(sheet.Rows),
		Inserted:  len(valid) - len(rejected),
		Failed:    len(failures),
		Sample:    sample,
	}, sheet, nil
}

func (i *Ingestor) parse(src Source) (*Sheet, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer rc.Close()

	return i.parser.Parse(rc)
}

func (i *Ingestor) save(ctx context.Context, students []*domain.Student) ([]*domain.Student, error) {
	if len(students) == 0 {
		return nil, nil
	}

	rejected, err := i.studentsSaver.SaveStudents(ctx, students)
	if err != nil {
		return nil, &domain.StorageError{Err: err}
	}

	return rejected, nil
}

func mergeFailures(invalid []domain.RowError, rejected []*domain.Student) []domain.RowError {
	failures := slices.Grow(slices.Clone(invalid), len(rejected))
	for _, s := range rejected {
		failures = append(failures, domain.RowError{Row: s.Row, Issue: domain.IssueRejectedByStore})
	}

	if len(rejected) > 0 {
		slices.SortStableFunc(failures, func(a, b domain.RowError) int {
			return cmp.Compare(a.Row, b.Row)
		})
	}

	return failures
}

func (i *Ingestor) finish(
	ctx context.Context,
	log *slog.Logger,
	upload *domain.Upload,
	sheet *Sheet,
	result *domain.UploadResult,
	err error,
) {
	now := time.Now()
	upload.ProcessedAt = &now

	if sheet != nil {
		upload.Sheet = sheet.Name
		upload.TotalRows = len(sheet.Rows)
	}

	switch err {
	case nil:
		upload.Status = domain.StatusDone
		upload.Inserted = result.Inserted
		upload.Failed = result.Failed
		upload.Sample = result.Sample

		log.InfoContext(ctx, "upload ingested",
			slog.Int("total_rows", result.TotalRows),
			slog.Int("inserted", result.Inserted),
			slog.Int("failed", result.Failed),
		)

	default:
		upload.Status = domain.StatusError
		upload.ErrorMessage = err.Error()

		log.WarnContext(ctx, "upload rejected", slog.String("err", err.Error()))
	}

	i.record(ctx, log, upload)
}

func (i *Ingestor) record(ctx context.Context, log *slog.Logger, upload *domain.Upload) {
	if err := i.recorder.SaveUpload(ctx, upload); err != nil {
		log.ErrorContext(ctx, "failed to record upload",
			slog.String("upload_id", upload.ID.String()),
			slog.String("err", err.Error()),
		)
	}
}

func (i *Ingestor) cleanup(ctx context.Context, log *slog.Logger, src Source) {
	if err := src.Cleanup(); err != nil {
		log.WarnContext(ctx, "failed to clean up upload", slog.String("err", err.Error()))
	}
}
