package v1

import (
	"context"
	"net/http"

	"github.com/kurochkinivan/student_uploader/internal/domain"
)

type AnalyticsService interface {
	SubjectStats(ctx context.Context) ([]*domain.SubjectStats, error)
}

type AnalyticsHandler struct {
	responder *Responder
	service   AnalyticsService
}

func NewAnalyticsHandler(responder *Responder, service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		responder: responder,
		service:   service,
	}
}

func (h *AnalyticsHandler) SubjectAverage(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.SubjectStats(r.Context())
	if err != nil {
		h.responder.Error(w, r, &domain.StorageError{Err: err})
		return
	}

	h.responder.JSON(w, r, http.StatusOK, stats)
}
