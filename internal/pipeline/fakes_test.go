package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/kurochkinivan/doc_generator/internal/domain"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, event domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]domain.Event(nil), p.events...)
}

type recordingSink struct {
	mu      sync.Mutex
	updates []domain.RowStatusUpdate
}

func (s *recordingSink) UpsertRowStatus(_ context.Context, update domain.RowStatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updates = append(s.updates, update)
	return nil
}

// Final returns the last status recorded per source row position.
func (s *recordingSink) Final() map[int]domain.RowStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	final := make(map[int]domain.RowStatus)
	for _, u := range s.updates {
		final[u.Row] = u.Status
	}
	return final
}

// fakeConverter copies the rendered document to the output. A rendered
// document containing FAIL makes the conversion exit with an error. When gate
// is set, conversions block until it is closed or the job is cancelled.
type fakeConverter struct {
	gate chan struct{}

	mu     sync.Mutex
	inputs []string
}

func (c *fakeConverter) Start(ctx context.Context, input, output string) (domain.Conversion, error) {
	c.mu.Lock()
	c.inputs = append(c.inputs, input)
	c.mu.Unlock()

	return &fakeConversion{ctx: ctx, gate: c.gate, input: input, output: output}, nil
}

func (c *fakeConverter) Started() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.inputs)
}

type fakeConversion struct {
	ctx    context.Context
	gate   chan struct{}
	input  string
	output string
}

func (c *fakeConversion) Wait() error {
	if c.gate != nil {
		select {
		case <-c.gate:
		case <-c.ctx.Done():
			return &domain.ConversionError{Input: c.input, Err: domain.ErrCancelled}
		}
	}

	data, err := os.ReadFile(c.input)
	if err != nil {
		return &domain.ConversionError{Input: c.input, Err: err}
	}

	if bytes.Contains(data, []byte("FAIL")) {
		return &domain.ConversionError{Input: c.input, Stderr: "bad input", Err: errors.New("exit status 1")}
	}

	if err := os.WriteFile(c.output, append([]byte("%PDF-"), data...), 0o644); err != nil {
		return &domain.ConversionError{Input: c.input, Err: fmt.Errorf("failed to write output: %w", err)}
	}

	return nil
}

func (c *fakeConversion) Kill() error {
	return nil
}

type fakeSummaries struct {
	mu    sync.Mutex
	views []domain.JobView
}

func (s *fakeSummaries) GenerateSummary(outputPath string, view domain.JobView) error {
	s.mu.Lock()
	s.views = append(s.views, view)
	s.mu.Unlock()

	return os.WriteFile(outputPath, []byte("%PDF-summary"), 0o644)
}
