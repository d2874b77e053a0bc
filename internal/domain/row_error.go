package domain

const (
	IssueInvalidFields   = "Empty or invalid fields"
	IssueMarksOutOfRange = "Marks out of range (0–100)"
	IssueRejectedByStore = "Rejected by storage"
)

type RowError struct {
	Row   int    `json:"rowNumber"`
	Issue string `json:"issue"`
}
