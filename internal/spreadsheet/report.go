package spreadsheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/doc_generator/internal/domain"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Sheet1"

type ReportWriter struct {
	dir         string
	downloadURL string
}

// NewReportWriter writes reports into dir; downloadURL is the prefix the
// report name is appended to.
func NewReportWriter(dir, downloadURL string) *ReportWriter {
	return &ReportWriter{
		dir:         dir,
		downloadURL: downloadURL,
	}
}

func ReportName(jobID string) string {
	return "Error_report_" + jobID + ".xlsx"
}

func (w *ReportWriter) Write(
	jobID string,
	source *domain.Source,
	reasonColumn string,
	failures []domain.RowFailure,
	secret string,
) (_ *domain.ErrorReport, err error) {
	if len(failures) == 0 {
		return nil, nil
	}

	reasonIdx := source.ColumnIndex(reasonColumn)
	if reasonIdx < 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrMissingRequiredColumn, reasonColumn)
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	if err := setRow(f, 1, source.Headers); err != nil {
		return nil, err
	}

	for i, failure := range failures {
		cells := make([]string, len(source.Headers))
		copy(cells, failure.Row.Cells)
		cells[reasonIdx] = failure.Reason

		if err := setRow(f, i+2, cells); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	name := ReportName(jobID)
	path := filepath.Join(w.dir, name)

	var opts []excelize.Options
	if source.Encrypted && secret != "" {
		opts = append(opts, excelize.Options{Password: secret})
	}

	if err := f.SaveAs(path, opts...); err != nil {
		return nil, fmt.Errorf("failed to save error report: %w", err)
	}

	return &domain.ErrorReport{
		Name:        name,
		Path:        path,
		DownloadURL: w.downloadURL + name,
		Encrypted:   len(opts) > 0,
	}, nil
}

func setRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}

	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}

	if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}

	return nil
}
