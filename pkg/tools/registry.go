package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rhobs/qiita-mcp/pkg/metrics"
	"github.com/rhobs/qiita-mcp/pkg/resultutil"
)

const tracerName = "github.com/rhobs/qiita-mcp/pkg/tools"

// Invocation outcomes used as the "outcome" metric label.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
)

// DuplicateToolError is returned when a tool name is registered twice.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool %q is already registered", e.Name)
}

// UnknownToolError is returned when invoking a tool that was never registered.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

type entry struct {
	def       ToolDef
	validator *validator
	handler   Handler
}

// Registry maps tool names to their definitions and handlers. It is populated
// at startup and read-only afterwards, so Invoke is safe for concurrent use.
type Registry struct {
	tools      map[string]*entry
	order      []string
	collectors *metrics.Collectors
	tracer     trace.Tracer
}

// Option configures a Registry.
type Option func(*Registry)

// WithCollectors records invocation counts and latency.
func WithCollectors(c *metrics.Collectors) Option {
	return func(r *Registry) { r.collectors = c }
}

// WithTracer overrides the tracer taken from the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Registry) { r.tracer = t }
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		tools:  make(map[string]*entry),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a tool. It fails if the name is already taken or a parameter
// schema cannot be resolved.
func (r *Registry) Register(def ToolDef, handler Handler) error {
	if _, exists := r.tools[def.Name]; exists {
		return &DuplicateToolError{Name: def.Name}
	}
	if handler == nil {
		return fmt.Errorf("tool %q has no handler", def.Name)
	}

	v, err := newValidator(def)
	if err != nil {
		return err
	}

	r.tools[def.Name] = &entry{def: def, validator: v, handler: handler}
	r.order = append(r.order, def.Name)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(def ToolDef, handler Handler) {
	if err := r.Register(def, handler); err != nil {
		panic(err)
	}
}

// Get returns the definition of a registered tool.
func (r *Registry) Get(name string) (ToolDef, bool) {
	e, ok := r.tools[name]
	if !ok {
		return ToolDef{}, false
	}
	return e.def, true
}

// Tools returns all definitions in registration order.
func (r *Registry) Tools() []ToolDef {
	defs := make([]ToolDef, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].def)
	}
	return defs
}

// Invoke validates args and runs the named tool. The only error returned is
// *UnknownToolError; every other failure is reported in the Result.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (*resultutil.Result, error) {
	e, ok := r.tools[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	invocationID := uuid.NewString()
	logger := slog.With("tool", name, "invocation_id", invocationID)

	ctx, span := r.tracer.Start(ctx, "tool.invoke", trace.WithAttributes(
		attribute.String("tool_name", name),
		attribute.String("invocation_id", invocationID),
	))
	defer span.End()

	logger.Info("Tool called")
	logger.Debug("Tool params", "args", args)

	start := time.Now()
	result, outcome := r.run(ctx, e, args)
	elapsed := time.Since(start)

	switch outcome {
	case OutcomeSuccess:
		logger.Info("Tool executed successfully", "duration", elapsed)
		span.SetStatus(codes.Ok, "")
	case OutcomeInvalid:
		logger.Warn("Tool arguments rejected", "error", result.Error)
		span.SetStatus(codes.Error, result.Error.Error())
	default:
		logger.Error("Tool failed", "error", result.Error, "duration", elapsed)
		span.RecordError(result.Error)
		span.SetStatus(codes.Error, result.Error.Error())
	}
	span.SetAttributes(attribute.String("outcome", outcome))

	if r.collectors != nil {
		r.collectors.ToolInvocations.WithLabelValues(name, outcome).Inc()
		r.collectors.ToolDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	}

	return result, nil
}

func (r *Registry) run(ctx context.Context, e *entry, args map[string]any) (result *resultutil.Result, outcome string) {
	params, err := e.validator.validate(args)
	if err != nil {
		return resultutil.NewErrorResult(err), OutcomeInvalid
	}

	defer func() {
		if p := recover(); p != nil {
			result = resultutil.NewErrorResultf("tool %s panicked: %v", e.def.Name, p)
			outcome = OutcomeError
		}
	}()

	result = e.handler(ctx, params)
	if result == nil {
		return resultutil.NewErrorResult(errors.New("tool returned no result")), OutcomeError
	}
	if result.IsError() {
		return result, OutcomeError
	}
	return result, OutcomeSuccess
}
