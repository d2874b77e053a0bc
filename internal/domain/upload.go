package domain

import (
	"time"

	"github.com/google/uuid"
)

const MessageUploadCompleted = "Upload completed"

// UploadResult is the summary of a single ingestion returned to the caller.
type UploadResult struct {
	Message   string     `json:"message"`
	FileName  string     `json:"fileName"`
	Sheet     string     `json:"sheet"`
	TotalRows int        `json:"totalRows"`
	Inserted  int        `json:"inserted"`
	Failed    int        `json:"failed"`
	Sample    []RowError `json:"sample"`
}

// Upload is the history entry of one ingestion attempt.
type Upload struct {
	ID           uuid.UUID  `db:"id"            json:"id"`
	FileName     string     `db:"file_name"     json:"fileName"`
	Sheet        string     `db:"sheet"         json:"sheet"`
	Status       Status     `db:"status"        json:"status"`
	TotalRows    int        `db:"total_rows"    json:"totalRows"`
	Inserted     int        `db:"inserted"      json:"inserted"`
	Failed       int        `db:"failed"        json:"failed"`
	Sample       []RowError `db:"sample"        json:"sample"`
	ErrorMessage string     `db:"error_message" json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `db:"created_at"    json:"createdAt"`
	ProcessedAt  *time.Time `db:"processed_at"  json:"processedAt,omitempty"`
}

// Result rebuilds the upload result of a recorded upload.
func (u *Upload) Result() *UploadResult {
	var message string
	switch u.Status {
	case StatusDone:
		message = MessageUploadCompleted
	case StatusError:
		message = u.ErrorMessage
	default:
		message = "Upload is still processing"
	}

	return &UploadResult{
		Message:   message,
		FileName:  u.FileName,
		Sheet:     u.Sheet,
		TotalRows: u.TotalRows,
		Inserted:  u.Inserted,
		Failed:    u.Failed,
		Sample:    u.Sample,
	}
}
