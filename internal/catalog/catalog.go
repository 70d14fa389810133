package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/doc_generator/internal/domain"
)

type entry struct {
	ID              string `csv:"id"`
	Name            string `csv:"name"`
	RenderTemplate  string `csv:"render_template"`
	MessageTemplate string `csv:"message_template,omitempty"`
}

// Catalog resolves template names from a tab separated manifest. The
// manifest is re-read whenever its modification time changes.
type Catalog struct {
	log  *slog.Logger
	path string

	mu        sync.RWMutex
	modTime   time.Time
	templates map[string]domain.Template
}

func New(log *slog.Logger, path string) *Catalog {
	return &Catalog{
		log:  log,
		path: path,
	}
}

func (c *Catalog) Resolve(ctx context.Context, name string) (domain.Template, error) {
	if err := c.refresh(ctx); err != nil {
		return domain.Template{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	tmpl, ok := c.templates[name]
	if !ok {
		return domain.Template{}, fmt.Errorf("template %q: %w", name, domain.ErrNotFound)
	}

	return tmpl, nil
}

func (c *Catalog) refresh(ctx context.Context) error {
	info, err := os.Stat(c.path)
	if err != nil {
		return fmt.Errorf("failed to stat catalog %q: %w", c.path, err)
	}

	c.mu.RLock()
	fresh := c.templates != nil && info.ModTime().Equal(c.modTime)
	c.mu.RUnlock()

	if fresh {
		return nil
	}

	templates, err := c.load()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.templates = templates
	c.modTime = info.ModTime()
	c.mu.Unlock()

	c.log.DebugContext(ctx, "loaded template catalog",
		slog.String("path", c.path),
		slog.Int("templates", len(templates)),
	)

	return nil
}

func (c *Catalog) load() (_ map[string]domain.Template, err error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	reader := csv.NewReader(f)
	reader.Comma = '\t'

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	dir := filepath.Dir(c.path)
	templates := make(map[string]domain.Template)

	for {
		var e entry

		err := dec.Decode(&e)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode catalog entry: %w", err)
		}

		if e.Name == "" || e.RenderTemplate == "" {
			return nil, fmt.Errorf("invalid catalog entry #%d: name and render_template are required", len(templates)+1)
		}

		templates[e.Name] = domain.Template{
			ID:          e.ID,
			Name:        e.Name,
			RenderPath:  resolvePath(dir, e.RenderTemplate),
			MessagePath: resolvePath(dir, e.MessageTemplate),
		}
	}

	return templates, nil
}

func resolvePath(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
