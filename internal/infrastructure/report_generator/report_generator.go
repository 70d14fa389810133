package report_generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/doc_generator/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	titleProps  = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	headerProps = props.Text{Size: 9, Style: fontstyle.Bold}
	cellProps   = props.Text{Size: 9}
)

type ReportGenerator struct{}

func New() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateSummary writes a one page overview of a finished job: totals,
// generated documents and the reason of every failed row.
func (g *ReportGenerator) GenerateSummary(outputPath string, view domain.JobView) error {
	m := maroto.New()

	m.AddRows(text.NewRow(12, "Document generation summary", titleProps))

	m.AddRow(6, text.NewCol(4, "Processing ID", headerProps), text.NewCol(8, view.ID, cellProps))
	m.AddRow(6, text.NewCol(4, "Source file", headerProps), text.NewCol(8, view.FileName, cellProps))
	m.AddRow(6, text.NewCol(4, "Started", headerProps), text.NewCol(8, view.CreatedAt.Format(timeLayout), cellProps))

	m.AddRows(text.NewRow(10, "Totals", headerProps))
	m.AddRow(6,
		text.NewCol(3, "Total: "+strconv.Itoa(view.Counters.Total), cellProps),
		text.NewCol(3, "Processed: "+strconv.Itoa(view.Counters.Processed), cellProps),
		text.NewCol(3, "Succeeded: "+strconv.Itoa(view.Counters.Succeeded), cellProps),
		text.NewCol(3, "Failed: "+strconv.Itoa(view.Counters.Failed), cellProps),
	)

	if len(view.Documents) > 0 {
		m.AddRows(text.NewRow(10, "Generated documents", headerProps))
		for _, doc := range view.Documents {
			recipient := doc.Recipient
			if recipient == "" {
				recipient = "-"
			}
			m.AddRow(5, text.NewCol(8, doc.FileName, cellProps), text.NewCol(4, recipient, cellProps))
		}
	}

	if len(view.Failures) > 0 {
		m.AddRows(text.NewRow(10, "Failed rows", headerProps))
		m.AddRow(6,
			text.NewCol(1, "Row", headerProps),
			text.NewCol(11, "Reason", headerProps),
		)
		for _, f := range view.Failures {
			m.AddRow(5,
				text.NewCol(1, strconv.Itoa(f.Position), cellProps),
				text.NewCol(11, f.Reason, cellProps),
			)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create summary directory: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf: %w", err)
	}

	return nil
}
