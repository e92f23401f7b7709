package dynamic

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/quill-dev/quill/pkg/cache"
	"github.com/quill-dev/quill/pkg/protocol"
)

// Mode selects how the render child is invoked.
type Mode int

const (
	// ModeSelf re-invokes the current executable with EnvChild set so
	// it enters the child render loop instead of its normal entry point.
	ModeSelf Mode = iota

	// ModeSeparate invokes a distinct executable, at a configured path,
	// that implements only the render loop. The child can be rebuilt
	// without restarting the host.
	ModeSeparate
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeSelf:
		return "self"
	case ModeSeparate:
		return "separate"
	default:
		return "unknown"
	}
}

// EnvChild is the environment marker that switches a process into the
// child render loop. See IsChild and Main.
const EnvChild = "QUILL_RENDER_CHILD"

// DefaultMaxInFlight caps concurrently alive child processes when the
// config leaves MaxInFlight zero. Children cost a process table entry
// and three descriptors each; an uncapped burst can exhaust both.
const DefaultMaxInFlight = 8

// maxStderrBytes bounds how much child diagnostic text is retained for
// error reporting.
const maxStderrBytes = 8 << 10

// Config configures a dynamic rendering client.
type Config struct {
	// Mode selects self or separate invocation.
	Mode Mode

	// ChildPath is the render child executable. Required for
	// ModeSeparate, ignored for ModeSelf.
	ChildPath string

	// Timeout bounds one render call, spawn to exit. Zero means none.
	Timeout time.Duration

	// MaxInFlight caps concurrently alive children.
	// Defaults to DefaultMaxInFlight.
	MaxInFlight int

	// Env is appended to the child's environment.
	Env []string

	// Cache, if set, is consulted before spawning and filled after a
	// successful render.
	Cache *cache.Store

	// Logger is the structured logger for spawn/exit events.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client executes render calls in child processes. Each call owns
// exactly one child for its lifetime; there is no pooling or reuse.
// A Client is safe for concurrent use.
type Client struct {
	cfg    Config
	sem    chan struct{}
	tracer trace.Tracer
	logger *slog.Logger
}

// New creates a Client from cfg.
func New(cfg Config) (*Client, error) {
	if cfg.Mode == ModeSeparate && cfg.ChildPath == "" {
		return nil, fmt.Errorf("dynamic: separate mode requires a child path")
	}
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = DefaultMaxInFlight
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		sem:    make(chan struct{}, cfg.MaxInFlight),
		tracer: otel.Tracer("quill/dynamic"),
		logger: logger,
	}, nil
}

// Render ships (templateID, payload) to a freshly spawned child,
// drains its output and waits for exit. The returned bytes are the
// complete rendered document; on any failure, including a killed or
// timed-out child, partial output is discarded and never surfaced as
// success.
func (c *Client) Render(ctx context.Context, templateID string, payload []byte) ([]byte, error) {
	m := getMetrics()
	start := time.Now()

	ctx, span := c.tracer.Start(ctx, "quill.dynamic.render",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("quill.template_id", templateID),
			attribute.String("quill.mode", c.cfg.Mode.String()),
			attribute.Int("quill.payload_bytes", len(payload)),
		),
	)
	defer span.End()

	out, err := c.render(ctx, templateID, payload)

	m.duration.WithLabelValues(templateID).Observe(time.Since(start).Seconds())
	if err != nil {
		m.renders.WithLabelValues(templateID, statusOf(err)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	m.renders.WithLabelValues(templateID, statusSuccess).Inc()
	span.SetAttributes(attribute.Int("quill.output_bytes", len(out)))
	span.SetStatus(codes.Ok, "")
	return out, nil
}

func (c *Client) render(ctx context.Context, templateID string, payload []byte) ([]byte, error) {
	// Bound in-flight children before doing anything else.
	select {
	case c.sem <- struct{}{}:
		defer func() { <-c.sem }()
	case <-ctx.Done():
		return nil, ctxError(ctx, templateID)
	}

	if c.cfg.Cache != nil {
		body, ok, err := c.cfg.Cache.Get(ctx, templateID, payload)
		if err != nil {
			c.logger.Warn("render cache lookup failed", "template", templateID, "error", err)
		} else if ok {
			getMetrics().cacheHits.Inc()
			return body, nil
		}
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	out, err := c.spawnAndRender(ctx, templateID, payload)
	if err != nil {
		return nil, err
	}

	if c.cfg.Cache != nil {
		if err := c.cfg.Cache.Put(ctx, templateID, payload, out); err != nil {
			c.logger.Warn("render cache store failed", "template", templateID, "error", err)
		}
	}
	return out, nil
}

func (c *Client) spawnAndRender(ctx context.Context, templateID string, payload []byte) ([]byte, error) {
	path := c.cfg.ChildPath
	if c.cfg.Mode == ModeSelf {
		exe, err := os.Executable()
		if err != nil {
			return nil, &SpawnError{Path: "self", Err: err}
		}
		path = exe
	}

	cmd := exec.CommandContext(ctx, path)
	cmd.Env = append(os.Environ(), EnvChild+"=1")
	cmd.Env = append(cmd.Env, c.cfg.Env...)
	// If the context kills the child while a pipe is still held open,
	// give Wait a bounded grace period instead of hanging.
	cmd.WaitDelay = 5 * time.Second

	var stderr boundedBuffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &SpawnError{Path: path, Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &SpawnError{Path: path, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Path: path, Err: err}
	}
	m := getMetrics()
	m.inFlight.Inc()
	defer m.inFlight.Dec()

	c.logger.Debug("render child started",
		"template", templateID, "mode", c.cfg.Mode.String(), "pid", cmd.Process.Pid)

	// Write the request concurrently with draining output: both pipe
	// directions have bounded OS buffers, so serializing the two risks
	// a deadlock once payload or document outgrow them. The half-close
	// after the frame tells the child no more input is coming.
	writeErr := make(chan error, 1)
	go func() {
		err := protocol.WriteRequest(stdin, &protocol.Request{
			TemplateID: templateID,
			Payload:    payload,
		})
		if cerr := stdin.Close(); err == nil {
			err = cerr
		}
		writeErr <- err
	}()

	var out bytes.Buffer
	_, readErr := io.Copy(&out, stdout)
	waitErr := cmd.Wait()
	werr := <-writeErr

	if ctx.Err() != nil {
		// Killed by timeout or cancellation; the child is reaped and
		// whatever it wrote is discarded.
		c.logger.Debug("render child killed", "template", templateID, "reason", ctx.Err())
		return nil, ctxError(ctx, templateID)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			cerr := &ChildExitError{
				TemplateID: templateID,
				ExitCode:   exitErr.ExitCode(),
				Stderr:     strings.TrimSpace(stderr.String()),
			}
			c.logger.Debug("render child failed",
				"template", templateID, "exit_code", cerr.ExitCode, "stderr", cerr.Stderr)
			return nil, cerr
		}
		return nil, fmt.Errorf("dynamic: waiting for child: %w", waitErr)
	}
	if readErr != nil {
		return nil, fmt.Errorf("dynamic: reading child output: %w", readErr)
	}
	if werr != nil {
		// Exit 0 despite an undelivered request should not happen; do
		// not trust the bytes.
		return nil, fmt.Errorf("dynamic: writing request: %w", werr)
	}

	return out.Bytes(), nil
}

func ctxError(ctx context.Context, templateID string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("rendering template %q: %w", templateID, ErrTimeout)
	}
	return fmt.Errorf("rendering template %q: %w", templateID, ErrCancelled)
}

func statusOf(err error) string {
	var spawn *SpawnError
	var exit *ChildExitError
	switch {
	case errors.Is(err, ErrTimeout):
		return statusTimeout
	case errors.Is(err, ErrCancelled):
		return statusCancelled
	case errors.As(err, &spawn):
		return statusSpawnError
	case errors.As(err, &exit):
		return statusChildError
	default:
		return statusIOError
	}
}

// boundedBuffer retains at most maxStderrBytes while reporting full
// writes, so a chatty child cannot grow parent memory.
type boundedBuffer struct {
	buf bytes.Buffer
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if remain := maxStderrBytes - b.buf.Len(); remain > 0 {
		if len(p) > remain {
			p = p[:remain]
		}
		b.buf.Write(p)
	}
	return n, nil
}

func (b *boundedBuffer) String() string {
	return b.buf.String()
}
