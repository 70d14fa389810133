package domain

// RowRecord is one parsed source row. Values are keyed by the exact header name.
type RowRecord struct {
	Position    int
	Cells       []string
	Values      map[string]string
	Key         string
	DisplayName string
	BaseName    string
}

func (r RowRecord) Value(column string) string {
	return r.Values[column]
}

type RowFailure struct {
	Row    RowRecord
	Reason string
}

type Source struct {
	FileName  string
	Headers   []string
	Rows      []RowRecord
	Encrypted bool
}

func (s *Source) HasColumn(name string) bool {
	return s.ColumnIndex(name) >= 0
}

func (s *Source) ColumnIndex(name string) int {
	for i, h := range s.Headers {
		if h == name {
			return i
		}
	}
	return -1
}
