package backend

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
	"github.com/lachei-alvin/shoe-app-frontend/internal/metrics"
)

// SessionFetcher wraps Client for calls that require a logged-in identity.
//
// The credential is accepted for interface symmetry only and is NOT forwarded
// as an Authorization header: the backend contract for this client is
// unauthenticated mock access. Do not wire real auth here without a
// requirement change.
//
// In-flight accounting is reference counted, so overlapping calls keep the
// busy state true until the last one settles.
type SessionFetcher struct {
	client   *Client
	inflight atomic.Int64
	onBusy   func(busy bool)
	log      zerolog.Logger
}

// NewSessionFetcher wraps client. onBusy, when non-nil, fires on every
// idle→busy and busy→idle transition.
func NewSessionFetcher(client *Client, onBusy func(busy bool), log zerolog.Logger) *SessionFetcher {
	return &SessionFetcher{client: client, onBusy: onBusy, log: log}
}

// Do issues an authenticated-style request. A Content-Type of
// application/json is applied by default; caller-supplied headers win on
// conflict. The in-flight count is decremented unconditionally, failures
// included.
func (f *SessionFetcher) Do(ctx context.Context, _ ports.Credential, req Request) Result {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	f.begin()
	defer f.settle()

	return f.client.Do(ctx, req)
}

// InFlight returns the number of outstanding calls.
func (f *SessionFetcher) InFlight() int64 {
	return f.inflight.Load()
}

// Busy reports whether any call is outstanding.
func (f *SessionFetcher) Busy() bool {
	return f.inflight.Load() > 0
}

func (f *SessionFetcher) begin() {
	metrics.InFlightRequests.Inc()
	if f.inflight.Add(1) == 1 && f.onBusy != nil {
		f.onBusy(true)
	}
}

func (f *SessionFetcher) settle() {
	metrics.InFlightRequests.Dec()
	if f.inflight.Add(-1) == 0 && f.onBusy != nil {
		f.onBusy(false)
	}
}
