package domain

// RawRow maps a trimmed header cell to the raw text of one spreadsheet row.
type RawRow map[string]string
