// Package backend implements the HTTP side of the storefront client: the
// low-level request classifier, the session fetcher, and the typed gateway
// over the backend REST contract.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/metrics"
)

// bodySnippetLimit caps how much of a non-JSON body is carried in a
// ProtocolError for diagnostics.
const bodySnippetLimit = 100

// Outcome classifies how a request settled.
type Outcome int

const (
	// OutcomeOK means a successful response with a JSON payload.
	OutcomeOK Outcome = iota
	// OutcomeEmpty means a catalog listing degraded to "nothing yet": a
	// non-JSON success or a transport failure on /categories or /products.
	OutcomeEmpty
	// OutcomeFailed is every other failure. Err carries the cause; callers
	// treat the data as absent.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeEmpty:
		return "empty"
	default:
		return "failed"
	}
}

// Result is the settled state of one request. Data is only meaningful when
// Outcome is OutcomeOK; Err is only set when Outcome is OutcomeFailed.
type Result struct {
	Outcome Outcome
	Data    json.RawMessage
	Err     error
}

// Decode unmarshals a successful payload into v. It is a no-op returning an
// error for non-OK outcomes.
func (r Result) Decode(v any) error {
	if r.Outcome != OutcomeOK {
		if r.Err != nil {
			return r.Err
		}
		return fmt.Errorf("no payload to decode (outcome %s)", r.Outcome)
	}
	return json.Unmarshal(r.Data, v)
}

// Request describes one backend call.
type Request struct {
	Method string
	Path   string
	Body   io.Reader
	Header http.Header
}

// Client performs requests against the backend origin and normalises every
// failure mode into a Result. No retries and no timeout are configured; a
// request runs until it settles or the transport gives up.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient returns a Client resolving paths against baseURL.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// isListingPath reports whether path is one of the two catalog listings that
// degrade to an empty sequence instead of failing.
func isListingPath(path string) bool {
	return path == "/categories" || path == "/products"
}

// Do issues the request and classifies the response:
//   - non-JSON success on a catalog listing → OutcomeEmpty
//   - non-JSON otherwise → OutcomeFailed with *domain.ProtocolError
//   - JSON with a failed status → OutcomeFailed with *domain.APIError built
//     from the payload's "detail" field
//   - JSON success → OutcomeOK with the payload verbatim
//   - transport failure → OutcomeEmpty for catalog listings, otherwise
//     OutcomeFailed wrapping domain.ErrBackendUnreachable
func (c *Client) Do(ctx context.Context, req Request) Result {
	start := time.Now()
	res := c.do(ctx, req)
	metrics.RequestsTotal.WithLabelValues(req.Path, res.Outcome.String()).Inc()
	metrics.RequestDuration.WithLabelValues(req.Path).Observe(time.Since(start).Seconds())
	return res
}

func (c *Client) do(ctx context.Context, req Request) Result {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+req.Path, req.Body)
	if err != nil {
		return c.settleTransportFailure(req.Path, err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-ID", requestID)
	log := c.log.With().Str("path", req.Path).Str("request_id", requestID).Logger()

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return c.settleTransportFailure(req.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.settleTransportFailure(req.Path, err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	contentType := resp.Header.Get("Content-Type")

	if !strings.Contains(contentType, "application/json") {
		if ok && isListingPath(req.Path) {
			log.Warn().Str("content_type", contentType).
				Msg("non-JSON listing response, returning empty list")
			return Result{Outcome: OutcomeEmpty, Data: json.RawMessage("[]")}
		}
		perr := &domain.ProtocolError{
			Path:        req.Path,
			ContentType: contentType,
			Snippet:     snippet(body),
		}
		log.Error().Err(perr).Msg("protocol mismatch")
		return Result{Outcome: OutcomeFailed, Err: perr}
	}

	if !ok {
		msg := extractDetail(body, resp.Status)
		aerr := &domain.APIError{Status: resp.StatusCode, Message: msg}
		log.Error().Int("status", resp.StatusCode).Str("detail", msg).Msg("api error")
		return Result{Outcome: OutcomeFailed, Err: aerr}
	}

	if !json.Valid(body) {
		// Declared JSON but unparseable. Same degradation as the non-JSON
		// path: listings go empty, everything else fails.
		if isListingPath(req.Path) {
			return Result{Outcome: OutcomeEmpty, Data: json.RawMessage("[]")}
		}
		perr := &domain.ProtocolError{Path: req.Path, ContentType: contentType, Snippet: snippet(body)}
		log.Error().Err(perr).Msg("malformed json payload")
		return Result{Outcome: OutcomeFailed, Err: perr}
	}

	return Result{Outcome: OutcomeOK, Data: body}
}

func (c *Client) settleTransportFailure(path string, cause error) Result {
	c.log.Error().Str("path", path).Err(cause).Msg("request failed at transport level")
	if isListingPath(path) {
		return Result{Outcome: OutcomeEmpty, Data: json.RawMessage("[]")}
	}
	return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("%w: %v", domain.ErrBackendUnreachable, cause)}
}

// CheckHealth probes GET /. Any successful response means the backend is up.
func (c *Client) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// extractDetail pulls a human-readable message from a FastAPI-style error
// payload. "detail" may be a plain string or a list of structured sub-errors,
// in which case the first entry's "msg" wins. Falls back to the HTTP status
// line when the payload has no detail field at all.
func extractDetail(body []byte, fallback string) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 || string(envelope.Detail) == "null" {
		return fallback
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &list); err == nil && len(list) > 0 && list[0].Msg != "" {
		return list[0].Msg
	}

	return "Unknown API Error"
}

func snippet(body []byte) string {
	if len(body) > bodySnippetLimit {
		return string(body[:bodySnippetLimit]) + "..."
	}
	return string(body)
}
