package domain

import (
	"strings"
	"unicode"
)

const DefaultReasonColumn = "Reason ( Delete this column while uploading Excel )"

// Columns names the source headers the pipeline gives meaning to.
type Columns struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	Template       string
	Recipient      string
	PDFPassword    string
	Reason         string
}

func (c Columns) Key(values map[string]string) string {
	if key := strings.TrimSpace(values[c.EmployeeNumber]); key != "" {
		return key
	}
	return "Unknown"
}

func (c Columns) DisplayName(values map[string]string) string {
	key := strings.TrimSpace(values[c.EmployeeNumber])
	if key == "" {
		return "Unknown Employee"
	}
	return values[c.FirstName] + " " + values[c.LastName] + " (" + key + ")"
}

func (c Columns) BaseName(values map[string]string) string {
	return SafeFileName(values[c.EmployeeNumber] + "_" + values[c.FirstName] + "_" + values[c.LastName])
}

// SafeFileName replaces every non-alphanumeric ASCII character with '_' and
// drops trailing underscores.
func SafeFileName(raw string) string {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}

	return strings.TrimRight(b.String(), "_")
}
