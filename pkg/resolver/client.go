package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/booklab-kr/bookmeta/pkg/cache"
	"github.com/booklab-kr/bookmeta/pkg/logging"
)

// DefaultBaseURL is the upstream bibliographic search API.
const DefaultBaseURL = "https://www.nl.go.kr/seoji/SearchApi.do"

// maxNoteLen bounds upstream error text carried into Outcome notes.
const maxNoteLen = 200

// Config holds the resolver configuration.
type Config struct {
	// BaseURL of the upstream search API.
	BaseURL string

	// CertKey is the upstream API credential (required).
	CertKey string

	// Store is the persistent outcome cache (required).
	Store cache.Store

	// AttemptTimeout bounds each individual upstream attempt.
	AttemptTimeout time.Duration

	// Retry controls attempts and backoff around the upstream call.
	Retry RetryConfig

	// CacheTTL is the retention for success/not-found outcomes.
	CacheTTL time.Duration

	// RequestsPerSecond limits upstream call rate (0 = unlimited).
	RequestsPerSecond float64
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(certKey string, store cache.Store) Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		CertKey:        certKey,
		Store:          store,
		AttemptTimeout: 3500 * time.Millisecond,
		Retry:          DefaultRetryConfig(),
		CacheTTL:       cache.DefaultTTL,
	}
}

// Client resolves one normalized ISBN to an Outcome.
type Client struct {
	httpClient *http.Client
	config     Config
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// New creates a resolver client.
func New(cfg Config) (*Client, error) {
	if cfg.CertKey == "" {
		return nil, fmt.Errorf("upstream cert key is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("cache store is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 3500 * time.Millisecond
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = DefaultRetryConfig()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = cache.DefaultTTL
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		httpClient: &http.Client{},
		config:     cfg,
		limiter:    limiter,
		logger:     logging.NewLogger("resolver"),
	}, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Resolve resolves one normalized ISBN: cache first, then one upstream
// request with timeout and classified retry. Every path returns an
// Outcome; callers never see an error from this method.
func (c *Client) Resolve(ctx context.Context, id string) Outcome {
	key := cache.Key(id)

	entry, err := c.config.Store.Get(ctx, key)
	if err == nil && entry != nil {
		c.logger.Debug().Str("isbn", id).Str("status", entry.Status).Msg("Cache hit")
		upstreamRequestsTotal.WithLabelValues("cache_hit").Inc()
		return outcomeFromEntry(entry)
	}
	if err != nil && err != cache.ErrCacheMiss {
		c.logger.Warn().Err(err).Str("isbn", id).Msg("Cache get error")
	}

	outcome := c.fetch(ctx, id)

	if outcome.Cacheable() {
		if err := c.config.Store.Set(ctx, key, outcome.toCacheEntry(), c.config.CacheTTL); err != nil {
			c.logger.Warn().Err(err).Str("isbn", id).Msg("Failed to cache outcome")
		}
	}

	return outcome
}

// fetch performs the network path: retry loop around one GET, then body
// classification.
func (c *Client) fetch(ctx context.Context, id string) Outcome {
	start := time.Now()
	defer func() {
		upstreamRequestDuration.Observe(time.Since(start).Seconds())
	}()

	var body []byte
	var lastClass ErrorClass

	retryErr := retryWithBackoff(ctx, c.config.Retry, func() error {
		b, class, err := c.attempt(ctx, id)
		if err != nil {
			lastClass = class
			return err
		}
		body = b
		return nil
	}, func(error) ErrorClass {
		return lastClass
	})

	if retryErr != nil {
		c.logger.Warn().Err(retryErr).Str("isbn", id).Msg("Upstream lookup failed")
		upstreamRequestsTotal.WithLabelValues("failed").Inc()
		return Outcome{Status: StatusFailed, Note: truncateNote(retryErr.Error())}
	}

	outcome, err := parseSearchResponse(body)
	if err != nil {
		c.logger.Warn().Err(err).Str("isbn", id).Msg("Upstream response unparseable")
		upstreamRequestsTotal.WithLabelValues("failed").Inc()
		return Outcome{Status: StatusFailed, Note: truncateNote(err.Error())}
	}

	switch outcome.Status {
	case StatusNotFound:
		upstreamRequestsTotal.WithLabelValues("not_found").Inc()
	default:
		upstreamRequestsTotal.WithLabelValues("success").Inc()
	}

	c.logger.Debug().
		Str("isbn", id).
		Str("status", string(outcome.Status)).
		Dur("duration", time.Since(start)).
		Msg("Upstream lookup complete")

	return outcome
}

// attempt performs one timeout-bounded GET. The returned class drives the
// retry decision; bodies of non-OK responses are truncated into the error.
func (c *Client) attempt(ctx context.Context, id string) ([]byte, ErrorClass, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, ErrorClassNetwork, fmt.Errorf("rate limiter: %w", err)
		}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.config.AttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, c.config.BaseURL, nil)
	if err != nil {
		return nil, ErrorClassNetwork, fmt.Errorf("create request: %w", err)
	}

	q := url.Values{}
	q.Set("cert_key", c.config.CertKey)
	q.Set("result_style", "json")
	q.Set("page_no", "1")
	q.Set("page_size", "1")
	q.Set("isbn", id)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrorClassNetwork, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrorClassNetwork, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		class := ErrorClassClient
		if resp.StatusCode >= 500 {
			class = ErrorClassServer
		}
		return nil, class, &UpstreamError{
			StatusCode: resp.StatusCode,
			Class:      class,
			Message:    truncateNote(string(body)),
		}
	}

	return body, "", nil
}

// truncateNote bounds error text destined for result notes.
func truncateNote(s string) string {
	runes := []rune(s)
	if len(runes) <= maxNoteLen {
		return s
	}
	return string(runes[:maxNoteLen]) + "..."
}
