package normalizer

import "strings"

// RedactedPlaceholder replaces values stored under sensitive keys.
const RedactedPlaceholder = "[REDACTED]"

// sensitiveKeyParts flags object keys whose lowercase form contains any of
// these fragments. Matching is substring-based so "apiKey", "auth_token" and
// "creditCardNumber" are all caught.
var sensitiveKeyParts = []string{
	"password", "token", "secret", "key", "authorization",
	"auth", "credential", "ssn", "social", "credit", "card",
}

// Redact walks error details and replaces every value stored under a
// sensitive key with the redaction marker. Recursion applies through nested
// maps and slices; non-container values pass through unchanged.
func Redact(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if isSensitiveKey(k) {
				out[k] = RedactedPlaceholder
			} else {
				out[k] = Redact(item)
			}
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, item := range val {
			if isSensitiveKey(k) {
				out[k] = RedactedPlaceholder
			} else {
				out[k] = item
			}
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Redact(item)
		}
		return out
	default:
		return v
	}
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, part := range sensitiveKeyParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}
