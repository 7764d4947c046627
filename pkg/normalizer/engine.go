package normalizer

import (
	"errors"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/guardkit/pkg/environment"
)

const defaultVersion = "1.0.0"

const defaultHelpBaseURL = "https://docs.guardkit.dev/errors"

// Engine shapes handler output into the uniform success/error envelope. It
// performs no I/O; every call is a deterministic function of the input, the
// configuration and the clock. The config is the only mutable state and is
// guarded for concurrent UpdateConfig calls.
type Engine struct {
	mu          sync.RWMutex
	cfg         Config
	version     string
	server      environment.Environment
	helpBaseURL string
	now         func() time.Time
}

// Option configures engine construction.
type Option func(*Engine)

// WithVersion sets the API version reported in response metadata.
func WithVersion(version string) Option {
	return func(e *Engine) {
		if version != "" {
			e.version = version
		}
	}
}

// WithEnvironment sets the deployment label reported as "server" in the
// detailed format.
func WithEnvironment(env environment.Environment) Option {
	return func(e *Engine) {
		if env != "" {
			e.server = env
		}
	}
}

// WithHelpBaseURL overrides the base used to derive help links in the
// detailed error format.
func WithHelpBaseURL(base string) Option {
	return func(e *Engine) {
		if base != "" {
			e.helpBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates a normalization engine.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:         cfg,
		version:     defaultVersion,
		server:      environment.Development,
		helpBaseURL: defaultHelpBaseURL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UpdateConfig merges the given options into the live configuration.
func (e *Engine) UpdateConfig(opts ...ConfigOption) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, opt := range opts {
		opt(&e.cfg)
	}
}

// Config returns a snapshot of the current configuration.
func (e *Engine) Config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// Enabled reports whether normalization is switched on.
func (e *Engine) Enabled() bool {
	return e.Config().Enabled
}

// NormalizeSuccess wraps handler output in the success envelope. Pagination,
// when given, is normalized to its invariants before attachment. The minimal
// format strips everything but {success, data}.
func (e *Engine) NormalizeSuccess(data any, ctx RequestContext, pagination *Pagination) SuccessResponse {
	cfg := e.Config()

	resp := SuccessResponse{Success: true, Data: data}
	if cfg.Format == FormatMinimal {
		return resp
	}

	resp.Metadata = e.buildMetadata(ctx, cfg, cfg.Format == FormatDetailed)
	if pagination != nil {
		p := pagination.Normalize()
		if cfg.IncludeLinks {
			p.Links = buildLinks(p)
		}
		resp.Pagination = &p
	}
	return resp
}

// NormalizeError coerces any error value into the error envelope. It is
// defensively total: no input shape can make it fail, since it typically
// runs inside a global error boundary that must not itself throw.
//
// Classification: Go errors keep their message and, via an optional
// Code() string method, their code; plain strings become VALIDATION_ERROR;
// anything else is mined for nested message/code fields and falls back to
// UNKNOWN_ERROR. Details are recursively redacted before attachment.
func (e *Engine) NormalizeError(err any, ctx RequestContext, code string, details any) ErrorResponse {
	cfg := e.Config()

	detail := ErrorDetail{
		Code:      code,
		Timestamp: e.now().UTC(),
		RequestID: ctx.RequestID,
	}

	switch v := err.(type) {
	case error:
		detail.Message = v.Error()
		if detail.Code == "" {
			detail.Code = errorCode(v)
		}
		if cfg.IncludeDebugInfo {
			detail.Stack = string(debug.Stack())
		}
	case string:
		detail.Message = v
		if detail.Code == "" {
			detail.Code = CodeValidationError
		}
	default:
		detail.Message = nestedString(v, "message", "An unexpected error occurred")
		if detail.Code == "" {
			detail.Code = nestedString(v, "code", CodeUnknownError)
		}
	}

	if details != nil {
		detail.Details = Redact(details)
	}

	resp := ErrorResponse{Success: false, Error: detail}
	switch cfg.ErrorFormat {
	case ErrorFormatSimple:
		resp.Error = ErrorDetail{
			Code:      detail.Code,
			Message:   detail.Message,
			Timestamp: detail.Timestamp,
			RequestID: detail.RequestID,
		}
	case ErrorFormatDetailed:
		resp.Error.HelpURL = e.helpURL(detail.Code)
		resp.Error.PossibleCauses = possibleCauses(detail.Code)
		resp.Metadata = e.buildMetadata(ctx, cfg, true)
	default:
		resp.Metadata = e.buildMetadata(ctx, cfg, false)
	}
	return resp
}

func (e *Engine) buildMetadata(ctx RequestContext, cfg Config, detailed bool) *Metadata {
	md := &Metadata{
		Timestamp: e.now().UTC(),
		RequestID: ctx.RequestID,
		Version:   e.version,
	}
	if cfg.IncludeMetadata && !ctx.Start.IsZero() {
		elapsed := time.Since(ctx.Start).Milliseconds()
		md.ProcessingTime = &elapsed
	}
	if detailed {
		md.Server = string(e.server)
		md.Runtime = runtime.Version()
	}
	return md
}

func (e *Engine) helpURL(code string) string {
	return e.helpBaseURL + "/" + strings.ToLower(code)
}

// coder lets typed errors carry their own code into the envelope.
type coder interface {
	Code() string
}

func errorCode(err error) string {
	var c coder
	if errors.As(err, &c) {
		if code := c.Code(); code != "" {
			return code
		}
	}
	return CodeInternalError
}

func nestedString(v any, key, fallback string) string {
	if m, ok := v.(map[string]any); ok {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// possibleCausesByCode is the fixed help table for the detailed error format.
var possibleCausesByCode = map[string][]string{
	CodeValidationError: {
		"Invalid input format",
		"Missing required fields",
		"Value out of allowed range",
	},
	CodeAuthenticationError: {
		"Missing or expired credentials",
		"Invalid API key or token",
	},
	CodeNotFound: {
		"Resource does not exist",
		"Resource was deleted",
		"Wrong identifier in the request path",
	},
	CodeInternalError: {
		"Unexpected server-side failure",
		"Upstream dependency unavailable",
	},
}

func possibleCauses(code string) []string {
	if causes, ok := possibleCausesByCode[code]; ok {
		return causes
	}
	return []string{"Unknown error cause"}
}
