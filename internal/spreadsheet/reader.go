package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/doc_generator/internal/domain"
	"github.com/xuri/excelize/v2"
)

// oleMagic opens every password protected OOXML workbook.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

type Reader struct {
	log     *slog.Logger
	columns domain.Columns
}

func NewReader(log *slog.Logger, columns domain.Columns) *Reader {
	return &Reader{
		log:     log,
		columns: columns,
	}
}

// Open parses the whole source. The returned headers always end with the
// reason column.
func (r *Reader) Open(src io.Reader, filename, secret string) (*domain.Source, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	var (
		records   [][]string
		encrypted = bytes.HasPrefix(data, oleMagic)
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		records, err = readDelimited(data, ',')
	case ".tsv":
		records, err = readDelimited(data, '\t')
	default:
		records, err = readWorkbook(data, secret)
		if err != nil && (secret != "" || encrypted) {
			r.log.Debug("failed to open workbook", slog.String("filename", filename), slog.String("err", err.Error()))
			return nil, &domain.JobFatalError{Err: domain.ErrBadSecret}
		}
	}
	if err != nil {
		return nil, &domain.JobFatalError{Err: fmt.Errorf("%w: %v", domain.ErrBadFormat, err)}
	}

	if len(records) == 0 {
		return nil, &domain.JobFatalError{Err: fmt.Errorf("%w: no header row", domain.ErrBadFormat)}
	}

	source := &domain.Source{
		FileName:  filename,
		Headers:   trimAll(records[0]),
		Encrypted: encrypted,
	}

	if !source.HasColumn(r.columns.Reason) {
		source.Headers = append(source.Headers, r.columns.Reason)
	}

	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}

		source.Rows = append(source.Rows, r.rowRecord(source.Headers, record, i+2))
	}

	r.log.Debug("parsed source",
		slog.String("filename", filename),
		slog.Int("rows", len(source.Rows)),
		slog.Bool("encrypted", encrypted),
	)

	return source, nil
}

func (r *Reader) rowRecord(headers, record []string, position int) domain.RowRecord {
	cells := make([]string, len(headers))
	copy(cells, record)

	values := make(map[string]string, len(headers))
	for i, h := range headers {
		values[h] = strings.TrimSpace(cells[i])
	}

	return domain.RowRecord{
		Position:    position,
		Cells:       cells,
		Values:      values,
		Key:         r.columns.Key(values),
		DisplayName: r.columns.DisplayName(values),
		BaseName:    r.columns.BaseName(values),
	}
}

func readWorkbook(data []byte, secret string) (_ [][]string, err error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{Password: secret})
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return rows, nil
}

func readDelimited(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return records, nil
}

func trimAll(values []string) []string {
	trimmed := make([]string, len(values))
	for i, v := range values {
		trimmed[i] = strings.TrimSpace(v)
	}
	return trimmed
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
