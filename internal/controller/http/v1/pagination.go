package v1

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

type Pagination struct {
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
	Count      int    `json:"count"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

func newPagination(page, limit uint64, count, total int) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Count:      count,
		Total:      total,
		TotalPages: (total + int(limit) - 1) / int(limit),
	}
}

// ValidationError is a malformed request parameter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func parsePagination(r *http.Request) (page, limit, offset uint64, err error) {
	page, limit = 1, defaultLimit

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, 0, &ValidationError{Message: "invalid page"}
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, 0, &ValidationError{Message: fmt.Sprintf("invalid limit, must be in [1;%d]", maxLimit)}
		}
	}

	return page, limit, (page - 1) * limit, nil
}
