package v1

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/student_uploader/internal/domain"
)

type StudentsRepository interface {
	Students(ctx context.Context, limit, offset uint64) ([]*domain.Student, int, error)
	AllStudents(ctx context.Context) ([]*domain.Student, error)
}

type StudentsHandler struct {
	responder          *Responder
	studentsRepository StudentsRepository
}

func NewStudentsHandler(responder *Responder, studentsRepository StudentsRepository) *StudentsHandler {
	return &StudentsHandler{
		responder:          responder,
		studentsRepository: studentsRepository,
	}
}

type GetStudentsResponse struct {
	Data       []*domain.Student `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

func (h *StudentsHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	page, limit, offset, err := parsePagination(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	students, total, err := h.studentsRepository.Students(r.Context(), limit, offset)
	if err != nil {
		h.responder.Error(w, r, &domain.StorageError{Err: err})
		return
	}

	if students == nil {
		students = []*domain.Student{}
	}

	h.responder.JSON(w, r, http.StatusOK, GetStudentsResponse{
		Data:       students,
		Pagination: newPagination(page, limit, len(students), total),
	})
}

func (h *StudentsHandler) ExportStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentsRepository.AllStudents(r.Context())
	if err != nil {
		h.responder.Error(w, r, &domain.StorageError{Err: err})
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="students.csv"`)

	if err := writeStudentsCSV(w, students); err != nil {
		// Headers are already sent, the client sees a truncated file.
		h.responder.errLog.ErrorContext(r.Context(), "failed to write students csv", slog.String("err", err.Error()))
	}
}

func writeStudentsCSV(w io.Writer, students []*domain.Student) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if len(students) == 0 {
		if err := enc.EncodeHeader(domain.Student{}); err != nil {
			return fmt.Errorf("failed to encode header: %w", err)
		}
	} else if err := enc.Encode(students); err != nil {
		return fmt.Errorf("failed to encode students: %w", err)
	}

	cw.Flush()

	return cw.Error()
}
