package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/student_uploader/internal/domain"
	"github.com/kurochkinivan/student_uploader/internal/ingest"
	"github.com/kurochkinivan/student_uploader/internal/summary"
)

// FailedDir is the subdirectory of the watch directory that receives files
// rejected for their content.
const FailedDir = "failed"

// Worker ingests the files sent by a Scanner one at a time. A file is removed
// after a successful ingest and moved to FailedDir when its content is
// rejected. Any other failure leaves it in place and releases it for a retry.
type Worker struct {
	log      *slog.Logger
	files    <-chan string
	ingester Ingester
	releaser Releaser
}

func NewWorker(log *slog.Logger, files <-chan string, ingester Ingester, releaser Releaser) *Worker {
	return &Worker{
		log:      log,
		files:    files,
		ingester: ingester,
		releaser: releaser,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case path, ok := <-w.files:
			if !ok {
				return nil
			}

			w.process(ctx, path)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) process(ctx context.Context, path string) {
	log := w.log.With(slog.String("filename", path))

	log.InfoContext(ctx, "received file to ingest")

	result, err := w.ingester.Ingest(ctx, watchedFile{ingest.NewFileSource(filepath.Base(path), path)})

	switch {
	case err == nil:
		log.InfoContext(ctx, summary.Summarize(result))

		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.ErrorContext(ctx, "failed to remove ingested file", slog.String("err", err.Error()))
		}

	case isRejected(err):
		log.WarnContext(ctx, "file rejected", slog.String("err", err.Error()))

		if err := moveToFailed(path); err != nil {
			log.ErrorContext(ctx, "failed to move rejected file", slog.String("err", err.Error()))
		}

	default:
		log.ErrorContext(ctx, "failed to ingest file, left in place for retry", slog.String("err", err.Error()))

		w.releaser.Release(path)
	}
}

// isRejected reports whether err is about the file content, so retrying the
// same file cannot succeed.
func isRejected(err error) bool {
	var missing *domain.MissingColumnsError

	return errors.Is(err, domain.ErrUnreadableFile) ||
		errors.Is(err, domain.ErrEmptySheet) ||
		errors.Is(err, domain.ErrNoValidRecords) ||
		errors.As(err, &missing)
}

func moveToFailed(path string) error {
	dir := filepath.Join(filepath.Dir(path), FailedDir)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create %q: %w", dir, err)
	}

	if err := os.Rename(path, filepath.Join(dir, filepath.Base(path))); err != nil {
		return fmt.Errorf("failed to move file: %w", err)
	}

	return nil
}

// watchedFile reads a file from the watch directory in place. The worker
// decides what happens to it once the ingest returns.
type watchedFile struct {
	*ingest.FileSource
}

func (watchedFile) Cleanup() error {
	return nil
}
