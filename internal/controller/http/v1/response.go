package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/student_uploader/internal/domain"
)

type ErrorResponse struct {
	Success   bool             `json:"success"`
	Status    int              `json:"status"`
	ErrorType domain.ErrorType `json:"errorType"`
	Message   string           `json:"message"`
}

// Responder writes JSON bodies and error payloads. Every error response is
// also written to errLog.
type Responder struct {
	errLog *slog.Logger
}

func NewResponder(errLog *slog.Logger) *Responder {
	return &Responder{errLog: errLog}
}

func (rs *Responder) JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		rs.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(data)
}

func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	resp := classify(err)

	rs.errLog.ErrorContext(r.Context(), "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", resp.Status),
		slog.String("error_type", string(resp.ErrorType)),
		slog.String("err", err.Error()),
	)

	data, _ := json.Marshal(resp)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.Status)
	w.Write(data)
}

func classify(err error) ErrorResponse {
	var (
		missingColumns *domain.MissingColumnsError
		storageErr     *domain.StorageError
		validationErr  *ValidationError
		notFound       *routeNotFoundError
	)

	resp := ErrorResponse{Message: err.Error()}

	switch {
	case errors.Is(err, domain.ErrFileType):
		resp.Status, resp.ErrorType = http.StatusUnsupportedMediaType, domain.ErrorTypeFile

	case errors.Is(err, domain.ErrSizeLimit):
		resp.Status, resp.ErrorType = http.StatusRequestEntityTooLarge, domain.ErrorTypeFile

	case errors.Is(err, domain.ErrNoFile),
		errors.Is(err, domain.ErrEmptySheet),
		errors.Is(err, domain.ErrUnreadableFile):
		resp.Status, resp.ErrorType = http.StatusBadRequest, domain.ErrorTypeFile

	case errors.As(err, &missingColumns),
		errors.Is(err, domain.ErrNoValidRecords),
		errors.As(err, &validationErr):
		resp.Status, resp.ErrorType = http.StatusBadRequest, domain.ErrorTypeValidation

	case errors.Is(err, domain.ErrUploadNotFound):
		resp.Status, resp.ErrorType = http.StatusNotFound, domain.ErrorTypeValidation

	case errors.As(err, &notFound):
		resp.Status, resp.ErrorType = http.StatusNotFound, domain.ErrorTypeServer

	case errors.As(err, &storageErr):
		resp.Status, resp.ErrorType = http.StatusInternalServerError, domain.ErrorTypeDatabase
		resp.Message = "database error, please try again later"

	default:
		resp.Status, resp.ErrorType = http.StatusInternalServerError, domain.ErrorTypeServer
		resp.Message = "unexpected server error"
	}

	return resp
}
