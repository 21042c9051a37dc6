package provider

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/yos-x/weardict/internal/domain"
	"github.com/yos-x/weardict/pkg/ctxutil"
)

const (
	// DefaultUserAgent identifies this client to both upstream services.
	DefaultUserAgent = "YosWearDic@Yos-X"
	// DefaultTimeout bounds a single upstream call.
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// Fetcher performs single-attempt upstream HTTP calls on behalf of the
// lookup adapters. It holds no per-call state and is safe for concurrent use.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	metrics    Recorder
	log        *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.httpClient = c }
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithMetrics records every call into r.
func WithMetrics(r Recorder) Option {
	return func(f *Fetcher) { f.metrics = r }
}

// NewFetcher creates a Fetcher with a DefaultTimeout client.
func NewFetcher(logger *slog.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  DefaultUserAgent,
		metrics:    nopRecorder{},
		log:        logger.With("component", "fetcher"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// UserAgent returns the identifying header value sent upstream.
func (f *Fetcher) UserAgent() string { return f.userAgent }

// Fetch sends req exactly once and returns the response body of a 2xx reply.
// Transport errors, non-2xx statuses and body read errors are returned as a
// *domain.Failure of kind FailureNetwork. A body over 1 MiB is a
// FailureMalformedResponse. The request should carry ctx so
// that abandoning the context abandons the call.
func (f *Fetcher) Fetch(ctx context.Context, req *http.Request, upstream string) ([]byte, error) {
	req.Header.Set("user-agent", f.userAgent)
	requestID := ctxutil.RequestIDFromCtx(ctx)
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	log := f.log.With(slog.String("upstream", upstream))
	if requestID != "" {
		log = log.With(slog.String("request_id", requestID))
	}

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.metrics.ObserveRequest(upstream, ResultTransportError, time.Since(start))
		log.ErrorContext(ctx, "upstream request failed", slog.String("error", err.Error()))
		return nil, domain.NewNetworkFailure(fmt.Errorf("%s: do request: %w", upstream, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.metrics.ObserveRequest(upstream, ResultBadStatus, time.Since(start))
		log.WarnContext(ctx, "upstream returned non-success status", slog.Int("status", resp.StatusCode))
		return nil, domain.NewNetworkFailure(fmt.Errorf("%s: unexpected status %d", upstream, resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		f.metrics.ObserveRequest(upstream, ResultTransportError, time.Since(start))
		log.ErrorContext(ctx, "upstream body read failed", slog.String("error", err.Error()))
		return nil, domain.NewNetworkFailure(fmt.Errorf("%s: read body: %w", upstream, err))
	}
	if len(body) > maxBodyBytes {
		f.metrics.ObserveRequest(upstream, ResultTooLarge, time.Since(start))
		log.WarnContext(ctx, "upstream response too large", slog.Int("limit", maxBodyBytes))
		return nil, domain.NewMalformedResponse(fmt.Errorf("%s: response too large: exceeds %d bytes", upstream, maxBodyBytes))
	}

	elapsed := time.Since(start)
	f.metrics.ObserveRequest(upstream, ResultOK, elapsed)
	log.DebugContext(ctx, "upstream response",
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
		slog.Duration("duration", elapsed),
	)

	return body, nil
}
