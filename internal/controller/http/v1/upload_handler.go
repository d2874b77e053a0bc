package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/kurochkinivan/student_uploader/internal/domain"
	"github.com/kurochkinivan/student_uploader/internal/ingest"
	"github.com/kurochkinivan/student_uploader/internal/summary"
)

const (
	uploadField = "file"

	xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	zipMIME  = "application/zip"

	// multipartOverhead covers boundaries and part headers around the file.
	multipartOverhead = 64 << 10
)

type Ingestor interface {
	Ingest(ctx context.Context, src ingest.Source) (*domain.UploadResult, error)
}

type UploadHandler struct {
	responder *Responder
	ingestor  Ingestor
	uploadDir string
	maxSize   int64
}

func NewUploadHandler(responder *Responder, ingestor Ingestor, uploadDir string, maxSize int64) *UploadHandler {
	return &UploadHandler{
		responder: responder,
		ingestor:  ingestor,
		uploadDir: uploadDir,
		maxSize:   maxSize,
	}
}

type UploadResponse struct {
	*domain.UploadResult
	Summary string `json:"summary"`
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+multipartOverhead)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		h.responder.Error(w, r, formFileError(err))
		return
	}
	defer file.Close()

	if header.Size > h.maxSize {
		h.responder.Error(w, r, fmt.Errorf("%w: limit is %d bytes", domain.ErrSizeLimit, h.maxSize))
		return
	}

	if err := checkSpreadsheet(header, file); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	src, err := ingest.Stage(h.uploadDir, header.Filename, file)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	result, err := h.ingestor.Ingest(r.Context(), src)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.JSON(w, r, http.StatusOK, UploadResponse{
		UploadResult: result,
		Summary:      summary.Summarize(result),
	})
}

func formFileError(err error) error {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("%w: limit is %d bytes", domain.ErrSizeLimit, maxBytesErr.Limit)
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return domain.ErrNoFile
	default:
		return fmt.Errorf("%w: %w", domain.ErrNoFile, err)
	}
}

// checkSpreadsheet accepts .xlsx names whose content sniffs as an OOXML
// workbook or a plain zip container; the declared part type is not trusted.
func checkSpreadsheet(header *multipart.FileHeader, file multipart.File) error {
	name := ingest.SanitizeFilename(header.Filename)
	if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return fmt.Errorf("%w: got %q", domain.ErrFileType, name)
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return fmt.Errorf("failed to detect file type: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind upload: %w", err)
	}

	for m := mtype; m != nil; m = m.Parent() {
		if m.Is(xlsxMIME) || m.Is(zipMIME) {
			return nil
		}
	}

	return fmt.Errorf("%w: detected %s", domain.ErrFileType, mtype.String())
}
