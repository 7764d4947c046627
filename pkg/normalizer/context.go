package normalizer

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/guardkit/pkg/clientip"
	"github.com/dmitrymomot/guardkit/pkg/requestid"
)

// RequestContext carries per-request identity and timing into the engine.
// It is created once per inbound request, is immutable after creation and is
// passed by value.
type RequestContext struct {
	RequestID string
	Timestamp time.Time
	Start     time.Time
	UserAgent string
	IP        string
}

// NewRequestContext creates a fresh context, generating a UUID when no
// request ID is supplied. Start keeps the monotonic clock reading so
// processing time survives wall-clock adjustments.
func NewRequestContext(requestID string) RequestContext {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	now := time.Now()
	return RequestContext{
		RequestID: requestID,
		Timestamp: now,
		Start:     now,
	}
}

// FromRequest builds a RequestContext from an inbound request, reusing the
// ID placed in context by the requestid middleware when present.
func FromRequest(r *http.Request) RequestContext {
	ctx := NewRequestContext(requestid.FromContext(r.Context()))
	ctx.UserAgent = r.UserAgent()
	ctx.IP = clientip.GetIP(r)
	return ctx
}
