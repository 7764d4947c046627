// Package normalizer reshapes arbitrary handler output into a uniform
// success/error envelope:
//
//	{"success": true,  "data": ..., "metadata": {...}, "pagination": {...}}
//	{"success": false, "error": {"code": ..., "message": ...}, "metadata": {...}}
//
// The engine is pure computation: given the same input, configuration and
// clock it produces the same envelope, and NormalizeError is defensively
// total: any value of any shape is coerced into a best-effort error
// envelope without ever failing itself.
//
//	engine := normalizer.New(normalizer.Config{
//	    Enabled:         true,
//	    Format:          normalizer.FormatStandard,
//	    IncludeMetadata: true,
//	    ErrorFormat:     normalizer.ErrorFormatStandard,
//	})
//
//	ctx := normalizer.NewRequestContext("")
//	resp := engine.NormalizeSuccess(user, ctx, nil)
//
// Output formats trade payload size against observability: minimal strips
// the envelope to {success, data}, standard adds metadata (timestamp,
// request ID, version, processing time), detailed also reports the
// deployment label and runtime version. Error formats are analogous, with
// detailed adding a help link and a fixed list of possible causes per
// well-known code.
//
// Error details attached to an envelope are recursively redacted: values
// under keys containing password, token, secret, key, auth and similar
// fragments are replaced with "[REDACTED]" before they can reach a client.
//
// The Middleware wraps any net/http handler chain and envelopes JSON
// responses transparently, skipping payloads that already carry the envelope
// shape (see IsNormalized) so double wrapping cannot occur.
package normalizer
