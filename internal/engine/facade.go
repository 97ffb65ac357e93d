// Package engine ties the loader, theme context and dispatcher together for
// front ends. It is the only stateful piece: it owns the active theme context
// and remembers the last screen that rendered successfully.
package engine

import (
	stderrors "errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/sdui/internal/loader"
	"github.com/alexisbeaulieu97/sdui/internal/logger"
	"github.com/alexisbeaulieu97/sdui/internal/metrics"
	"github.com/alexisbeaulieu97/sdui/internal/model"
	"github.com/alexisbeaulieu97/sdui/internal/render"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// Result is one successful render pass.
type Result struct {
	PassID  string
	Screen  *model.Screen
	Output  *render.ScreenInstruction
	Dark    bool
	Elapsed time.Duration
}

// Engine runs render passes. It is safe for concurrent use.
type Engine struct {
	dispatcher *render.Dispatcher
	log        *logger.Logger
	metrics    *metrics.Collector
	themes     atomic.Pointer[theme.Context]
	newPassID  func() string

	mu   sync.RWMutex
	last *Result
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithMetrics sets the metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = c }
}

// WithDispatcher replaces the default dispatcher.
func WithDispatcher(d *render.Dispatcher) Option {
	return func(e *Engine) {
		if d != nil {
			e.dispatcher = d
		}
	}
}

// WithThemeContext sets the initial theme context.
func WithThemeContext(ctx *theme.Context) Option {
	return func(e *Engine) {
		if ctx != nil {
			e.themes.Store(ctx)
		}
	}
}

// New creates an Engine using the built-in theme unless WithThemeContext is given.
func New(opts ...Option) *Engine {
	e := &Engine{
		dispatcher: render.NewDispatcher(),
		newPassID:  func() string { return uuid.NewString() },
	}
	e.themes.Store(theme.DefaultContext())
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Themes returns the active theme context.
func (e *Engine) Themes() *theme.Context {
	return e.themes.Load()
}

// SetThemeContext swaps the theme context. Passes already running keep the
// context they started with.
func (e *Engine) SetThemeContext(ctx *theme.Context) error {
	if ctx == nil {
		return sduierrors.NewSchemaError("theme", "theme context is nil", nil)
	}
	e.themes.Store(ctx)
	e.metrics.ObserveThemeReload()
	e.log.Info("theme context replaced")
	return nil
}

// Last returns the most recent successful pass, or nil.
func (e *Engine) Last() *Result {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.last
}

// RenderFile loads the document at path and renders it.
func (e *Engine) RenderFile(path string, dark bool) (*Result, error) {
	start := time.Now()
	screen, err := loader.LoadFile(path)
	if err != nil {
		e.reject(path, err, start)
		return nil, err
	}
	return e.renderScreen(screen, dark, start)
}

// RenderBytes decodes data and renders it. name is used in errors and logs.
func (e *Engine) RenderBytes(name string, data []byte, dark bool) (*Result, error) {
	start := time.Now()
	screen, err := loader.LoadBytes(name, data)
	if err != nil {
		e.reject(name, err, start)
		return nil, err
	}
	return e.renderScreen(screen, dark, start)
}

// RenderScreen renders an already loaded screen. The screen is validated
// first since it may not have come through the loader.
func (e *Engine) RenderScreen(screen *model.Screen, dark bool) (*Result, error) {
	start := time.Now()
	if err := model.ValidateScreen(screen); err != nil {
		e.reject("screen", err, start)
		return nil, err
	}
	return e.renderScreen(screen, dark, start)
}

func (e *Engine) renderScreen(screen *model.Screen, dark bool, start time.Time) (*Result, error) {
	passID := e.newPassID()
	log := e.log.WithFields(map[string]any{"pass": passID, "screen": screen.ID})

	th := e.themes.Load().Select(dark)
	out, err := e.dispatcher.RenderScreen(screen, th)
	elapsed := time.Since(start)
	if err != nil {
		e.metrics.ObserveFailure(metrics.OutcomeFailed, failureKind(err), elapsed)
		log.Error(err, "render pass failed", "kept_previous", e.Last() != nil)
		return nil, err
	}

	nodes := 0
	out.Walk(func(*render.Instruction) { nodes++ })

	attrs := make([]string, 0, len(out.Fallbacks))
	for _, fb := range out.Fallbacks {
		attr := fb.Attribute
		if idx := strings.LastIndex(attr, "."); idx >= 0 {
			attr = attr[idx+1:]
		}
		attrs = append(attrs, attr)
		log.Debug("style fallback", "attribute", fb.Attribute, "value", fb.Value, "reason", fb.Reason)
	}
	e.metrics.ObservePass(elapsed, nodes, attrs)

	result := &Result{PassID: passID, Screen: screen, Output: out, Dark: dark, Elapsed: elapsed}
	e.mu.Lock()
	e.last = result
	e.mu.Unlock()

	log.Info("render pass complete", "nodes", nodes, "fallbacks", len(out.Fallbacks), "duration", elapsed.String())
	return result, nil
}

func (e *Engine) reject(source string, err error, start time.Time) {
	e.metrics.ObserveFailure(metrics.OutcomeRejected, failureKind(err), time.Since(start))
	e.log.Error(err, "document rejected", "source", source, "kept_previous", e.Last() != nil)
}

// failureKind maps an error onto a low-cardinality metric label.
func failureKind(err error) string {
	var kindErr *sduierrors.UnknownComponentKindError
	var depthErr *sduierrors.TreeTooDeepError
	var schemaErr *sduierrors.SchemaError
	var parseErr *sduierrors.ParseError

	switch {
	case stderrors.As(err, &kindErr):
		return "unknown_kind"
	case stderrors.As(err, &depthErr):
		return "too_deep"
	case stderrors.As(err, &schemaErr):
		return "schema"
	case stderrors.As(err, &parseErr):
		return "parse"
	default:
		return "other"
	}
}
