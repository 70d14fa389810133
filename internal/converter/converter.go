package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kurochkinivan/doc_generator/internal/domain"
)

const maxStderr = 512

type Options struct {
	Command     string
	Args        []string
	GracePeriod time.Duration
}

type Converter struct {
	log  *slog.Logger
	opts Options
}

func New(log *slog.Logger, opts Options) *Converter {
	if opts.GracePeriod <= 0 {
		opts.GracePeriod = 5 * time.Second
	}

	return &Converter{
		log:  log,
		opts: opts,
	}
}

// Start launches the converter for input. The returned handle is owned by the
// caller; cancelling ctx terminates the process group.
func (c *Converter) Start(ctx context.Context, input, output string) (domain.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.ConversionError{Input: input, Err: domain.ErrCancelled}
	}

	args, produced := c.arguments(input, output)

	cmd := exec.Command(c.opts.Command, args...)
	configureProcess(cmd)

	conv := &Conversion{
		log:      c.log,
		cmd:      cmd,
		input:    input,
		output:   output,
		produced: produced,
		grace:    c.opts.GracePeriod,
		done:     make(chan struct{}),
	}
	cmd.Stderr = &conv.stderr

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, &domain.ConversionError{Input: input, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &domain.ConversionError{Input: input, Err: err}
	}

	c.log.DebugContext(ctx, "conversion started",
		slog.String("input", input),
		slog.Int("pid", cmd.Process.Pid),
	)

	go conv.wait()
	go conv.watch(ctx)

	return conv, nil
}

func (c *Converter) arguments(input, output string) (args []string, produced string) {
	args = append(args, c.opts.Args...)

	if isOffice(c.opts.Command) {
		outdir := filepath.Dir(output)
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

		args = append(args, "--headless", "--convert-to", "pdf", "--outdir", outdir, input)
		return args, filepath.Join(outdir, stem+".pdf")
	}

	return append(args, input, output), output
}

func isOffice(command string) bool {
	name := strings.ToLower(filepath.Base(command))
	return strings.Contains(name, "soffice") || strings.Contains(name, "libreoffice")
}

type Conversion struct {
	log      *slog.Logger
	cmd      *exec.Cmd
	input    string
	output   string
	produced string
	grace    time.Duration
	stderr   bytes.Buffer

	done    chan struct{}
	exitErr error

	mu     sync.Mutex
	killed bool

	finish sync.Once
	result error
}

func (c *Conversion) wait() {
	c.exitErr = c.cmd.Wait()
	close(c.done)
}

func (c *Conversion) watch(ctx context.Context) {
	select {
	case <-ctx.Done():
		if err := c.Kill(); err != nil {
			c.log.Warn("failed to kill conversion",
				slog.String("input", c.input),
				slog.String("err", err.Error()),
			)
		}
	case <-c.done:
	}
}

// Wait blocks until the process exits. It succeeds only on a zero exit status
// with a non-empty output; otherwise partial output is removed.
func (c *Conversion) Wait() error {
	<-c.done

	c.finish.Do(func() {
		c.result = c.complete()
		if c.result != nil {
			c.removeOutput()
		}
	})

	return c.result
}

func (c *Conversion) complete() error {
	c.mu.Lock()
	killed := c.killed
	c.mu.Unlock()

	if killed {
		return &domain.ConversionError{Input: c.input, Err: domain.ErrCancelled}
	}

	if c.exitErr != nil {
		return &domain.ConversionError{Input: c.input, Stderr: c.stderrText(), Err: c.exitErr}
	}

	if c.produced != c.output {
		if err := os.Rename(c.produced, c.output); err != nil {
			return &domain.ConversionError{Input: c.input, Stderr: c.stderrText(), Err: err}
		}
	}

	info, err := os.Stat(c.output)
	if err != nil {
		return &domain.ConversionError{Input: c.input, Stderr: c.stderrText(), Err: err}
	}

	if info.Size() == 0 {
		return &domain.ConversionError{Input: c.input, Err: errors.New("converter produced an empty file")}
	}

	return nil
}

// Kill terminates the process group, escalating to SIGKILL when the process
// outlives the grace period.
func (c *Conversion) Kill() error {
	select {
	case <-c.done:
		return nil
	default:
	}

	c.mu.Lock()
	c.killed = true
	c.mu.Unlock()

	if err := signalProcess(c.cmd, false); err != nil {
		return fmt.Errorf("failed to terminate converter: %w", err)
	}

	select {
	case <-c.done:
		return nil
	case <-time.After(c.grace):
	}

	if err := signalProcess(c.cmd, true); err != nil {
		return fmt.Errorf("failed to kill converter: %w", err)
	}

	return nil
}

func (c *Conversion) removeOutput() {
	for _, p := range []string{c.output, c.produced} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			c.log.Warn("failed to remove partial output", slog.String("path", p), slog.String("err", err.Error()))
		}
	}
}

func (c *Conversion) stderrText() string {
	text := strings.TrimSpace(c.stderr.String())
	if len(text) > maxStderr {
		text = text[:maxStderr]
	}
	return text
}
