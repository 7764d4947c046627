// Package sanitizer scrubs untrusted input of injection payloads by applying
// named rules to every string leaf of an arbitrary JSON-like value.
//
// A Rule pairs an optional validation predicate with an optional transform.
// Validation failures are recorded as violations (typed and ranked by
// severity); transforms rewrite the value in place. Rules are applied in the
// caller-specified order and validation always runs against the current,
// possibly already-transformed value, so ordering is semantically
// significant:
//
//	engine := sanitizer.New(sanitizer.Config{
//	    Enabled: true,
//	    Rules:   []string{"trim", "email-normalize"},
//	})
//
//	res, err := engine.Sanitize(map[string]any{
//	    "email": "  JOHN@EXAMPLE.COM  ",
//	    "bio":   "<script>alert(1)</script>hi",
//	})
//	// res.Sanitized  => map with cleaned values
//	// res.Violations => []string{"bio: SCRIPT_INJECTION", ...}
//
// The built-in rule set covers HTML/script stripping, SQL keyword and path
// traversal detection, XSS vector removal, shell metacharacter stripping and
// a few format normalizers (email, phone, URL). Custom rules can be
// registered programmatically or loaded from YAML via LoadRulesFile.
//
// # Strictness
//
// Three config flags decide what happens when violations are found:
//
//   - LogViolations: emit each violation to the configured slog sink.
//   - StrictMode + RejectOnViolation: Sanitize fails with *ViolationError.
//   - Otherwise violations are reported in the Result without blocking.
//
// Unknown rule names passed to Sanitize are silently dropped; ValidateConfig
// is the strict counterpart used at startup and fails with *ConfigError. The
// asymmetry is deliberate: per-request calls must not break when a rule is
// unregistered at runtime, configuration typos must.
//
// # Concurrency
//
// Engines are safe for concurrent use. Resolved rule sets are memoized per
// name combination; AddRule/RemoveRule invalidate the cache.
package sanitizer
