package render

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/doc_generator/internal/domain"
	"github.com/yuin/goldmark"
)

type Engine struct {
	log      *slog.Logger
	markdown goldmark.Markdown
}

func NewEngine(log *slog.Logger) *Engine {
	return &Engine{
		log:      log,
		markdown: goldmark.New(),
	}
}

// Render merges values into the render template at tmplPath. Failures are
// reported as *domain.RenderError.
func (e *Engine) Render(tmplPath string, values map[string]string) (*domain.RenderedDocument, error) {
	doc, err := e.render(tmplPath, values)
	if err != nil {
		return nil, &domain.RenderError{Template: filepath.Base(tmplPath), Err: err}
	}

	return doc, nil
}

func (e *Engine) render(tmplPath string, values map[string]string) (*domain.RenderedDocument, error) {
	content, err := os.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(tmplPath))

	switch ext {
	case ".docx":
		merged, err := mergeDocx(content, values)
		if err != nil {
			return nil, err
		}
		return &domain.RenderedDocument{Content: merged, Ext: ext}, nil

	case ".html", ".htm":
		merged, err := mergeText(string(content), values, htmlValue)
		if err != nil {
			return nil, err
		}
		return &domain.RenderedDocument{Content: []byte(merged), Ext: ".html"}, nil

	case ".txt":
		merged, err := mergeText(string(content), values, rawValue)
		if err != nil {
			return nil, err
		}
		return &domain.RenderedDocument{Content: []byte(merged), Ext: ext}, nil

	case ".md":
		merged, err := mergeText(string(content), values, rawValue)
		if err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := e.markdown.Convert([]byte(merged), &buf); err != nil {
			return nil, fmt.Errorf("failed to convert markdown: %w", err)
		}
		return &domain.RenderedDocument{Content: wrapHTML(buf.Bytes()), Ext: ".html"}, nil

	default:
		return nil, fmt.Errorf("unsupported template type %q", ext)
	}
}

// RenderMessage merges values into the message template and normalizes
// its headers.
func (e *Engine) RenderMessage(tmplPath string, values map[string]string, recipient string) (string, error) {
	content, err := os.ReadFile(tmplPath)
	if err != nil {
		return "", &domain.RenderError{Template: filepath.Base(tmplPath), Err: err}
	}

	return NormalizeMessage(mergeMessage(string(content), values), recipient), nil
}

func mergeDocx(content []byte, values map[string]string) ([]byte, error) {
	src, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx: %w", err)
	}

	var buf bytes.Buffer
	dst := zip.NewWriter(&buf)

	for _, f := range src.File {
		if err := copyPart(dst, f, values); err != nil {
			return nil, fmt.Errorf("part %s: %w", f.Name, err)
		}
	}

	if err := dst.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish docx: %w", err)
	}

	return buf.Bytes(), nil
}

func copyPart(dst *zip.Writer, f *zip.File, values map[string]string) (err error) {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, rc.Close()) }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	if isWordPart(f.Name) {
		data, err = mergeXML(data, values)
		if err != nil {
			return err
		}
	}

	w, err := dst.CreateHeader(&zip.FileHeader{
		Name:     f.Name,
		Method:   f.Method,
		Modified: f.Modified,
	})
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

func isWordPart(name string) bool {
	return path.Dir(name) == "word" && path.Ext(name) == ".xml"
}

func wrapHTML(body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"></head><body>\n")
	buf.Write(body)
	buf.WriteString("</body></html>\n")
	return buf.Bytes()
}
