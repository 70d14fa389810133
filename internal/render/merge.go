package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	errUnclosedPlaceholder = errors.New("unclosed placeholder")
	errEmptyPlaceholder    = errors.New("empty placeholder")
	errUnknownPlaceholder  = errors.New("unknown placeholder")
)

var messagePlaceholder = regexp.MustCompile(`\$\{([^}]+)\}`)

type escapeFunc func(string) string

// mergeText substitutes {Field} spans in text. Spans that cannot be field
// names, such as CSS blocks, are kept verbatim.
func mergeText(text string, values map[string]string, escape escapeFunc) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	for {
		start := strings.IndexByte(text, '{')
		if start < 0 {
			b.WriteString(text)
			return b.String(), nil
		}

		b.WriteString(text[:start])
		rest := text[start+1:]

		end := strings.IndexAny(rest, "{}")
		if end < 0 || rest[end] == '{' {
			name := rest
			if end >= 0 {
				name = rest[:end]
			}
			if isFieldName(name) {
				return "", fmt.Errorf("%w %q", errUnclosedPlaceholder, "{"+name)
			}
			b.WriteByte('{')
			text = rest
			continue
		}

		name := rest[:end]
		if !isFieldName(name) {
			b.WriteString(text[start : start+end+2])
			text = rest[end+1:]
			continue
		}

		value, ok := values[strings.TrimSpace(name)]
		if !ok {
			return "", fmt.Errorf("%w {%s}", errUnknownPlaceholder, name)
		}

		b.WriteString(escape(value))
		text = rest[end+1:]
	}
}

func isFieldName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return !strings.ContainsAny(name, ":;\n\r<>\"=")
}

// mergeXML substitutes {Field} spans in the character data of an XML part.
// A span may be split across runs; markup inside the span is kept and the
// value is written at the opening brace.
func mergeXML(doc []byte, values map[string]string) ([]byte, error) {
	var (
		out        bytes.Buffer
		name       strings.Builder
		pending    bytes.Buffer
		inTag      bool
		collecting bool
	)

	out.Grow(len(doc))

	for _, c := range doc {
		switch {
		case inTag:
			if collecting {
				pending.WriteByte(c)
			} else {
				out.WriteByte(c)
			}
			if c == '>' {
				inTag = false
			}

		case c == '<':
			inTag = true
			if collecting {
				pending.WriteByte(c)
			} else {
				out.WriteByte(c)
			}

		case c == '{':
			if collecting {
				return nil, fmt.Errorf("%w %q", errUnclosedPlaceholder, "{"+name.String())
			}
			collecting = true

		case c == '}' && collecting:
			key := unescapeXML(name.String())
			if strings.TrimSpace(key) == "" {
				return nil, errEmptyPlaceholder
			}

			value, ok := values[strings.TrimSpace(key)]
			if !ok {
				return nil, fmt.Errorf("%w {%s}", errUnknownPlaceholder, key)
			}

			if err := xml.EscapeText(&out, []byte(value)); err != nil {
				return nil, fmt.Errorf("failed to escape value: %w", err)
			}
			out.Write(pending.Bytes())

			name.Reset()
			pending.Reset()
			collecting = false

		case collecting:
			name.WriteByte(c)

		default:
			out.WriteByte(c)
		}
	}

	if collecting {
		return nil, fmt.Errorf("%w %q", errUnclosedPlaceholder, "{"+name.String())
	}

	return out.Bytes(), nil
}

var xmlEntities = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")

func unescapeXML(s string) string {
	return xmlEntities.Replace(s)
}

func rawValue(s string) string {
	return s
}

func htmlValue(s string) string {
	return html.EscapeString(s)
}

// mergeMessage substitutes ${Field} spans; unknown fields become empty.
func mergeMessage(text string, values map[string]string) string {
	return messagePlaceholder.ReplaceAllStringFunc(text, func(m string) string {
		return values[m[2:len(m)-1]]
	})
}
