package domain

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "ValidationError"
	ErrorTypeFile       ErrorType = "FileError"
	ErrorTypeDatabase   ErrorType = "DatabaseError"
	ErrorTypeServer     ErrorType = "ServerError"
)

var (
	ErrNoFile         = errors.New("no file uploaded")
	ErrEmptySheet     = errors.New("no sheet found in uploaded file")
	ErrUnreadableFile = errors.New("uploaded file is not a readable .xlsx workbook")
	ErrNoValidRecords = errors.New("no valid records found in uploaded file")
	ErrFileType       = errors.New("only .xlsx files are allowed")
	ErrSizeLimit      = errors.New("uploaded file is too large")
	ErrUploadNotFound = errors.New("upload not found")
)

type MissingColumnsError struct {
	Missing  []string
	Required []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns: %s. Required: %s",
		strings.Join(e.Missing, ", "),
		strings.Join(e.Required, ", "),
	)
}

// StorageError is a failure of the store itself, as opposed to a rejected record.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
