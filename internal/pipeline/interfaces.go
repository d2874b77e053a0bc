package pipeline

import (
	"context"

	"github.com/kurochkinivan/student_uploader/internal/domain"
	"github.com/kurochkinivan/student_uploader/internal/ingest"
)

type Ingester interface {
	Ingest(ctx context.Context, src ingest.Source) (*domain.UploadResult, error)
}

type Releaser interface {
	Release(path string)
}
