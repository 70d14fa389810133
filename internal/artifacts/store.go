package artifacts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/kurochkinivan/doc_generator/internal/domain"
)

const (
	documentsDir = "documents"
	errorDir     = "error"
	summaryDir   = "summary"
)

type Kind string

const (
	KindDocument    Kind = documentsDir
	KindErrorReport Kind = errorDir
	KindSummary     Kind = summaryDir
)

// Store lays out generated files under a shared output directory. Every
// job scoped file name contains the job id.
type Store struct {
	root    string
	scratch string
}

func NewStore(root, scratch string) *Store {
	return &Store{
		root:    root,
		scratch: scratch,
	}
}

func (s *Store) Init() error {
	for _, dir := range []string{s.Dir(KindDocument), s.Dir(KindErrorReport), s.Dir(KindSummary), s.scratch} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}
	return nil
}

func (s *Store) Dir(kind Kind) string {
	return filepath.Join(s.root, string(kind))
}

func (s *Store) DocumentPath(jobID, baseName string) string {
	return filepath.Join(s.Dir(KindDocument), jobID+"_"+baseName+".pdf")
}

func (s *Store) ScratchPath(jobID, baseName, ext string) string {
	return filepath.Join(s.scratch, jobID+"_"+baseName+ext)
}

func (s *Store) SummaryPath(jobID string) string {
	return filepath.Join(s.Dir(KindSummary), "Summary_"+jobID+".pdf")
}

func MessagePath(documentPath string) string {
	return strings.TrimSuffix(documentPath, filepath.Ext(documentPath)) + ".txt"
}

type Document struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"createdAt"`
	HasMessage bool      `json:"hasEmailTemplate"`
}

// Documents lists generated PDFs, newest first.
func (s *Store) Documents() ([]Document, error) {
	entries, err := os.ReadDir(s.Dir(KindDocument))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read documents directory: %w", err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".pdf" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		_, err = os.Stat(MessagePath(filepath.Join(s.Dir(KindDocument), entry.Name())))

		docs = append(docs, Document{
			Name:       entry.Name(),
			Size:       info.Size(),
			CreatedAt:  info.ModTime(),
			HasMessage: err == nil,
		})
	}

	slices.SortFunc(docs, func(a, b Document) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return docs, nil
}

// Lookup resolves a bare file name inside kind's directory.
func (s *Store) Lookup(kind Kind, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("file %q: %w", name, domain.ErrNotFound)
	}

	path := filepath.Join(s.Dir(kind), name)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("file %q: %w", name, domain.ErrNotFound)
	}

	return path, nil
}

// Message returns the rendered message stored beside a generated PDF.
func (s *Store) Message(pdfName string) (string, error) {
	path, err := s.Lookup(KindDocument, pdfName)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(MessagePath(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("message for %q: %w", pdfName, domain.ErrNotFound)
		}
		return "", fmt.Errorf("failed to read message: %w", err)
	}

	return string(data), nil
}

// RemoveJobFiles deletes every file whose name contains jobID from the
// output and scratch directories.
func (s *Store) RemoveJobFiles(jobID string) ([]string, error) {
	if jobID == "" {
		return nil, errors.New("empty job id")
	}

	var (
		removed []string
		errs    []error
	)

	for _, dir := range []string{s.Dir(KindDocument), s.Dir(KindErrorReport), s.Dir(KindSummary), s.scratch} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, fmt.Errorf("failed to read %q: %w", dir, err))
			}
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.Contains(entry.Name(), jobID) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, fmt.Errorf("failed to remove %q: %w", path, err))
				continue
			}
			removed = append(removed, path)
		}
	}

	return removed, errors.Join(errs...)
}
