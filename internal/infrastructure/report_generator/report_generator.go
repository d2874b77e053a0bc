package report_generator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/student_uploader/internal/domain"
)

const (
	titleHeight   = 14
	lineHeight    = 7
	summaryHeight = 40
)

var (
	titleProps   = props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}
	headingProps = props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}
	labelProps   = props.Text{Size: 10, Style: fontstyle.Bold}
	valueProps   = props.Text{Size: 10}
)

type ReportGenerator struct{}

func New() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateReport renders a one page PDF describing upload. summary is printed verbatim.
func (g *ReportGenerator) GenerateReport(upload *domain.Upload, summary string) ([]byte, error) {
	m := maroto.New(config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build())

	m.AddRows(text.NewRow(titleHeight, "Upload Summary", titleProps))

	processed := "-"
	if upload.ProcessedAt != nil {
		processed = upload.ProcessedAt.Format(time.RFC1123)
	}

	m.AddRows(
		field("File name", upload.FileName),
		field("Sheet", upload.Sheet),
		field("Status", string(upload.Status)),
		field("Total rows", strconv.Itoa(upload.TotalRows)),
		field("Inserted", strconv.Itoa(upload.Inserted)),
		field("Failed", strconv.Itoa(upload.Failed)),
		field("Processed at", processed),
	)

	if upload.ErrorMessage != "" {
		m.AddRows(field("Error", upload.ErrorMessage))
	}

	if len(upload.Sample) > 0 {
		m.AddRows(text.NewRow(lineHeight+2, "Failed rows (sample)", headingProps))
		for _, rowErr := range upload.Sample {
			m.AddRows(field(fmt.Sprintf("Row %d", rowErr.Row), rowErr.Issue))
		}
	}

	m.AddRows(
		text.NewRow(lineHeight+2, "Summary", headingProps),
		text.NewRow(summaryHeight, summary, valueProps),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func field(label, value string) core.Row {
	return row.New(lineHeight).Add(
		text.NewCol(3, label, labelProps),
		text.NewCol(9, value, valueProps),
	)
}
