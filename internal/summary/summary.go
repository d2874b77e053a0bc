// Package summary turns upload results into a short narrative for the UI.
package summary

import (
	"fmt"
	"strings"

	"github.com/kurochkinivan/student_uploader/internal/domain"
)

const (
	SystemName = "Smart File AutoTransfer System"

	fallbackFilename = "the uploaded file"
	maxSamples       = 2
)

var typicalReasons = []string{
	"missing mandatory fields such as Name, Roll number, Subject, or Marks",
	"marks outside the allowed 0–100 range",
	"non-numeric or blank values in the Marks column",
	"blank rows in between data rows",
}

const (
	noRecordsText = "No records were found in the uploaded file. " +
		"Please confirm that the Excel sheet contains at least one data row below the header."

	successText = "All rows satisfied the current validation rules. " +
		"The uploaded data is ready to be used for reports, analytics, or downstream processing."

	reviewText = "Please review the Failed rows section in the UI to see the exact row numbers that need correction."

	nextStepsText = "You can now proceed with the next upload or move to reporting / analytics in the backend."
)

// Summarize describes result in four sentences. A nil result reads as an empty upload.
func Summarize(result *domain.UploadResult) string {
	if result == nil {
		result = &domain.UploadResult{}
	}

	name := strings.TrimSpace(result.FileName)
	if name == "" {
		name = fallbackFilename
	}

	total := nonNegative(result.TotalRows)
	inserted := nonNegative(result.Inserted)
	failed := nonNegative(result.Failed)

	overview := fmt.Sprintf("File \"%s\" was processed by the %s.", name, SystemName)
	stats := fmt.Sprintf("Out of %d total rows, %d were inserted and %d failed validation.", total, inserted, failed)

	return strings.Join([]string{overview, stats, reasons(total, failed, result.Sample), nextStepsText}, " ")
}

func reasons(total, failed int, sample []domain.RowError) string {
	switch {
	case failed > 0:
		var b strings.Builder

		b.WriteString("Some rows did not satisfy one or more validation rules. Typical issues include ")
		b.WriteString(strings.Join(typicalReasons, ", "))
		b.WriteString(". ")

		if examples := sampleText(sample); examples != "" {
			b.WriteString("Here are a few examples from the failed rows: ")
			b.WriteString(examples)
			b.WriteString(". ")
		}

		b.WriteString(reviewText)

		return b.String()

	case total == 0:
		return noRecordsText

	default:
		return successText
	}
}

func sampleText(sample []domain.RowError) string {
	examples := make([]string, 0, maxSamples)
	for _, rowErr := range sample[:min(maxSamples, len(sample))] {
		issue := rowErr.Issue
		if issue == "" {
			issue = "Validation error"
		}

		examples = append(examples, fmt.Sprintf("Row %d: %s", rowErr.Row, issue))
	}

	return strings.Join(examples, "; ")
}

func nonNegative(n int) int {
	return max(n, 0)
}
