package ingest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/kurochkinivan/student_uploader/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Sheet is the first worksheet of a workbook, keyed by its header row.
type Sheet struct {
	Name   string
	Header []string
	Rows   []domain.RawRow
}

// MissingColumns returns the required columns absent from the header, in the order given.
func (s *Sheet) MissingColumns(required []string) []string {
	var missing []string
	for _, column := range required {
		if !slices.Contains(s.Header, column) {
			missing = append(missing, column)
		}
	}

	return missing
}

type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	return &Parser{log: log}
}

func (p *Parser) Parse(r io.Reader) (_ *Sheet, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnreadableFile, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptySheet
	}

	name := sheets[0]

	// Raw values keep number formats such as "0.00" or "0%" out of the marks column.
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %w", domain.ErrUnreadableFile, name, err)
	}

	p.log.Debug("parsing sheet", slog.String("sheet", name), slog.Int("rows", len(rows)))

	sheet := &Sheet{Name: name}
	if len(rows) == 0 {
		return sheet, nil
	}

	sheet.Header = make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		sheet.Header[i] = strings.TrimSpace(cell)
	}

	sheet.Rows = make([]domain.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		sheet.Rows = append(sheet.Rows, rawRow(sheet.Header, cells))
	}

	p.log.Debug("successfully parsed sheet", slog.String("sheet", name), slog.Int("data_rows", len(sheet.Rows)))

	return sheet, nil
}

func rawRow(header, cells []string) domain.RawRow {
	row := make(domain.RawRow, len(header))
	for i, column := range header {
		if column == "" {
			continue
		}

		if _, seen := row[column]; seen {
			continue
		}

		var value string
		if i < len(cells) {
			value = cells[i]
		}
		row[column] = value
	}

	return row
}
