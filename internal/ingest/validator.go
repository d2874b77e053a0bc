package ingest

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kurochkinivan/student_uploader/internal/domain"
)

const (
	ColumnName    = "Name"
	ColumnRoll    = "Roll"
	ColumnSubject = "Subject"
	ColumnMarks   = "Marks"

	// firstDataRow is the sheet row of rows[0]: 1-based, after the header.
	firstDataRow = 2
)

var RequiredColumns = []string{ColumnName, ColumnRoll, ColumnSubject, ColumnMarks}

// Validator partitions raw rows into student records and row errors.
// It keeps no state between calls and is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *Validator) Validate(rows []domain.RawRow) (valid []*domain.Student, invalid []domain.RowError) {
	for i, raw := range rows {
		rowNumber := i + firstDataRow

		student, issue := v.validateRow(raw)
		if issue != "" {
			invalid = append(invalid, domain.RowError{Row: rowNumber, Issue: issue})
			continue
		}

		student.Row = rowNumber
		valid = append(valid, student)
	}

	return valid, invalid
}

func (v *Validator) validateRow(raw domain.RawRow) (*domain.Student, string) {
	marks, ok := ParseMarks(raw[ColumnMarks])
	if !ok {
		return nil, domain.IssueInvalidFields
	}

	student := &domain.Student{
		Name:    strings.TrimSpace(raw[ColumnName]),
		Roll:    strings.TrimSpace(raw[ColumnRoll]),
		Subject: strings.TrimSpace(raw[ColumnSubject]),
		Marks:   marks,
	}

	err := v.validate.Struct(student)
	if err == nil {
		return student, ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, domain.IssueInvalidFields
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return nil, domain.IssueInvalidFields
		}
	}

	return nil, domain.IssueMarksOutOfRange
}

// ParseMarks reads a marks cell with strconv.ParseFloat syntax.
// Blank cells, NaN and infinities are rejected.
func ParseMarks(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}

	marks, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(marks) || math.IsInf(marks, 0) {
		return 0, false
	}

	return marks, true
}
