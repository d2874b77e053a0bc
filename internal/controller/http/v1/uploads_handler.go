package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/student_uploader/internal/domain"
	"github.com/kurochkinivan/student_uploader/internal/summary"
)

type UploadsRepository interface {
	Uploads(ctx context.Context, limit, offset uint64) ([]*domain.Upload, int, error)
	UploadByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error)
}

type ReportGenerator interface {
	GenerateReport(upload *domain.Upload, summary string) ([]byte, error)
}

type UploadsHandler struct {
	responder         *Responder
	uploadsRepository UploadsRepository
	reportGenerator   ReportGenerator
}

func NewUploadsHandler(
	responder *Responder,
	uploadsRepository UploadsRepository,
	reportGenerator ReportGenerator,
) *UploadsHandler {
	return &UploadsHandler{
		responder:         responder,
		uploadsRepository: uploadsRepository,
		reportGenerator:   reportGenerator,
	}
}

type GetUploadsResponse struct {
	Data       []*domain.Upload `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

func (h *UploadsHandler) GetUploads(w http.ResponseWriter, r *http.Request) {
	page, limit, offset, err := parsePagination(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	uploads, total, err := h.uploadsRepository.Uploads(r.Context(), limit, offset)
	if err != nil {
		h.responder.Error(w, r, &domain.StorageError{Err: err})
		return
	}

	if uploads == nil {
		uploads = []*domain.Upload{}
	}

	h.responder.JSON(w, r, http.StatusOK, GetUploadsResponse{
		Data:       uploads,
		Pagination: newPagination(page, limit, len(uploads), total),
	})
}

func (h *UploadsHandler) GetUploadReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, &ValidationError{Message: "invalid upload id"})
		return
	}

	upload, err := h.uploadsRepository.UploadByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, domain.ErrUploadNotFound) {
			err = &domain.StorageError{Err: err}
		}
		h.responder.Error(w, r, err)
		return
	}

	pdf, err := h.reportGenerator.GenerateReport(upload, summary.Summarize(upload.Result()))
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="upload-`+id.String()+`.pdf"`)
	w.Write(pdf)
}
