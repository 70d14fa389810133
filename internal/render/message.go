package render

import (
	"regexp"
	"strings"
)

var (
	headerLine   = regexp.MustCompile(`(?i)^\s*(To|CC|Subject)\s*:(.*)$`)
	bodyLine     = regexp.MustCompile(`(?i)^\s*Body\s*:(.*)$`)
	greetingLine = regexp.MustCompile(`(?i)^(hello|hi|dear)\b`)
)

type Message struct {
	To      string
	CC      string
	Subject string
	Body    []string
}

// ParseMessage reads To/CC/Subject headers up to the Body marker. Text that
// is not a header before the marker belongs to the body.
func ParseMessage(content string) Message {
	var (
		msg               Message
		seenTo, seenCC    bool
		seenSubject, body bool
		preamble, rest    []string
	)

	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		if body {
			rest = append(rest, line)
			continue
		}

		if m := bodyLine.FindStringSubmatch(line); m != nil {
			body = true
			if inline := strings.TrimSpace(m[1]); inline != "" {
				rest = append(rest, inline)
			}
			continue
		}

		m := headerLine.FindStringSubmatch(line)
		if m == nil {
			preamble = append(preamble, line)
			continue
		}

		value := strings.TrimSpace(m[2])
		switch strings.ToLower(m[1]) {
		case "to":
			if !seenTo {
				msg.To, seenTo = value, true
			}
		case "cc":
			if !seenCC {
				msg.CC, seenCC = value, true
			}
		case "subject":
			if !seenSubject {
				msg.Subject, seenSubject = value, true
			}
		}
	}

	msg.Body = trimBlank(append(preamble, rest...))

	return msg
}

// Normalize moves a greeting that leaked into CC to the body and fills To
// from the first line of recipient when it is missing.
func (m Message) Normalize(recipient string) Message {
	if greetingLine.MatchString(m.CC) {
		m.Body = append([]string{m.CC}, m.Body...)
		m.CC = ""
	}

	if m.To == "" {
		if i := strings.IndexAny(recipient, "\r\n"); i >= 0 {
			recipient = recipient[:i]
		}
		m.To = strings.TrimSpace(recipient)
	}

	m.Body = trimBlank(m.Body)

	return m
}

func (m Message) String() string {
	var b strings.Builder

	if m.To != "" {
		b.WriteString("To: " + m.To + "\n")
	}
	if m.CC != "" {
		b.WriteString("CC: " + m.CC + "\n")
	}
	b.WriteString("Subject: " + m.Subject + "\n")
	b.WriteString("Body:\n")

	for _, line := range m.Body {
		b.WriteString(line + "\n")
	}

	return b.String()
}

// NormalizeMessage is idempotent: normalizing its own output is a no-op.
func NormalizeMessage(content, recipient string) string {
	return ParseMessage(content).Normalize(recipient).String()
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	trimmed := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		trimmed = append(trimmed, strings.TrimRight(line, " \t\r"))
	}

	return trimmed
}
