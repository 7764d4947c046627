package sanitizer

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/guardkit/pkg/logger"
)

// Engine applies a configured, ordered rule set to arbitrary JSON-like
// values. The engine is stateless per call; the registry and its compiled-set
// cache are the only shared mutable state and carry their own locking.
type Engine struct {
	cfg      Config
	registry *Registry
	log      *slog.Logger
	strict   *bluemonday.Policy
}

// Option configures engine construction.
type Option func(*Engine)

// WithLogger sets the diagnostic sink used when Config.LogViolations is enabled.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithRegistry replaces the default built-in registry. Useful when several
// engines should share one rule set and compiled cache.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// New creates a sanitization engine. Custom rules from the config are
// registered immediately, overwriting built-ins with the same name.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg.withDefaults(),
		strict: bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = NewRegistry()
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	for _, rule := range e.cfg.CustomRules {
		e.registry.Register(rule)
	}
	return e
}

// Result is the outcome of a Sanitize call. Violations are rendered as
// "<field>: <violationType>" strings; AppliedRules lists, in application
// order, every rule that changed a leaf, once per leaf it changed, so the
// same name can repeat.
type Result struct {
	Sanitized    any
	Violations   []string
	AppliedRules []string
}

// Sanitize walks value depth-first and applies the named rules to every
// string leaf. When no names are given the configured rule list is used;
// unknown names are silently dropped. The input is never mutated; the
// sanitized copy is returned alongside the violation report.
//
// Validation runs against the current, possibly already-transformed value,
// so rule order matters and is caller-controlled: running "trim" before
// "email-normalize" changes whether the shape check sees surrounding
// whitespace.
func (e *Engine) Sanitize(value any, ruleNames ...string) (Result, error) {
	if !e.cfg.Enabled {
		return Result{Sanitized: value}, nil
	}

	names := ruleNames
	if len(names) == 0 {
		names = e.cfg.Rules
	}

	w := &walker{engine: e, rules: e.registry.Resolve(names)}

	var sanitized any
	if err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrInternal, r)
			}
		}()
		sanitized = w.walk(value, "")
		return nil
	}(); err != nil {
		return Result{}, err
	}

	if e.cfg.StrictMode && e.cfg.RejectOnViolation && len(w.violations) > 0 {
		return Result{}, &ViolationError{Violations: w.violations}
	}
	if e.cfg.LogViolations && len(w.violations) > 0 {
		e.logViolations(w.violations)
	}

	res := Result{Sanitized: sanitized, AppliedRules: w.applied}
	for _, v := range w.violations {
		res.Violations = append(res.Violations, v.String())
	}
	return res, nil
}

// AddRule registers a custom rule on the engine's registry, invalidating the
// compiled-set cache.
func (e *Engine) AddRule(rule Rule) {
	e.registry.Register(rule)
}

// RemoveRule removes a rule by name, invalidating the compiled-set cache.
func (e *Engine) RemoveRule(name string) {
	e.registry.Unregister(name)
}

// ValidateConfig checks that every configured rule name exists in the
// registry. Returns a ConfigError listing the missing names.
func (e *Engine) ValidateConfig() error {
	return e.registry.ValidateNames(e.cfg.Rules)
}

// Registry exposes the engine's rule registry for introspection.
func (e *Engine) Registry() *Registry {
	return e.registry
}

func (e *Engine) logViolations(violations []Violation) {
	for _, v := range violations {
		e.log.Warn("input sanitization violation",
			slog.String("field", v.Field),
			slog.String("type", string(v.Type)),
			slog.String("rule", v.Rule),
			slog.String("severity", string(v.Severity)),
			logger.Component("sanitizer"),
		)
	}
}

// walker carries traversal state for a single Sanitize call.
type walker struct {
	engine     *Engine
	rules      []Rule
	violations []Violation
	applied    []string
}

func (w *walker) walk(value any, path string) any {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return w.sanitizeString(v, path)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = w.walk(item, path+"["+strconv.Itoa(i)+"]")
		}
		return out
	case []string:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = w.sanitizeString(item, path+"["+strconv.Itoa(i)+"]")
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for _, key := range sortedKeys(v) {
			out[key] = w.walk(v[key], joinPath(path, key))
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(v))
		for _, key := range sortedKeys(v) {
			out[key] = w.sanitizeString(v[key], joinPath(path, key))
		}
		return out
	default:
		// Numbers, booleans and unrecognized types pass through untouched.
		return value
	}
}

func (w *walker) sanitizeString(value, path string) string {
	current := value
	for _, rule := range w.rules {
		if rule.Validate != nil && !rule.Validate(current) {
			vt, sev := classifyRule(rule.Name)
			w.violations = append(w.violations, Violation{
				Type:           vt,
				Field:          path,
				OriginalValue:  current,
				SanitizedValue: current,
				Rule:           rule.Name,
				Severity:       sev,
			})
		}
		if rule.Transform != nil {
			next := rule.Transform(current)
			if next != current {
				w.applied = append(w.applied, rule.Name)
			}
			current = next
		}
		// Markup that survives the html rule goes through the strict
		// bluemonday policy as a second pass.
		if rule.Name == "html" && strings.Contains(current, "<") {
			current = w.engine.strict.Sanitize(current)
		}
	}
	return current
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// sortedKeys makes map traversal deterministic; Go maps carry no insertion
// order, so violation paths are reported in lexicographic key order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
