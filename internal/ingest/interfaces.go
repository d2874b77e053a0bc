package ingest

import (
	"context"

	"github.com/kurochkinivan/student_uploader/internal/domain"
)

type StudentsSaver interface {
	// SaveStudents stores the records and returns the ones the store refused.
	SaveStudents(ctx context.Context, students []*domain.Student) ([]*domain.Student, error)
}

type UploadRecorder interface {
	SaveUpload(ctx context.Context, upload *domain.Upload) error
}
