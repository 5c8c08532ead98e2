package ipapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/ipapi/throttle"
)

// defaultBaseURL is the free-tier endpoint. The pro endpoint can be
// selected with [WithBaseURL].
const defaultBaseURL = "http://ip-api.com"

// Client executes lookups against the remote geolocation API.
// It wraps the std-lib *http.Client, which can be customized
// via optional funcs.
type Client struct {
	c       *http.Client
	baseURL string
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Build returns a Client ready for lookups, configured by the given
// functional options. Each Client owns its *http.Client unless one is
// injected via [WithClient]; http.DefaultClient is never mutated.
func Build(optFns ...Option) (*Client, error) {
	client := &Client{
		c:       &http.Client{},
		baseURL: defaultBaseURL,
		logger:  slog.Default(),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.client != nil {
		client.c = opts.client
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.tracer != nil {
		client.tracer = opts.tracer
	}

	if opts.baseURL != "" {
		client.baseURL = opts.baseURL
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(opts.throttle.RPS, opts.throttle.Burst, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}

// Lookup resolves a single target with the fields and language selected
// in cfg. target is an IPv4/IPv6 literal, a domain name, or the empty
// string to look up the caller's own public address.
func (c *Client) Lookup(ctx context.Context, target string, cfg Config) (*Record, error) {
	ctx, span := c.addSpan(ctx, "ipapi.lookup",
		attribute.String("ipapi.target", target),
		attribute.String("ipapi.fields", cfg.Fields().String()),
	)
	defer span.End()

	req, err := c.request(ctx, http.MethodGet, "/json/"+url.PathEscape(target), cfg, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.exec(req)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if env.Status == statusFail {
		return nil, failErr(env)
	}

	var record Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &record, nil
}

// LookupBatch resolves up to 100 targets in a single call. Each target
// must be an IPv4 or IPv6 literal; the remote batch endpoint does not
// guarantee domain or self-lookup semantics. The returned records match
// the input order. The call fails as a whole: either every target
// resolves or an error is returned.
func (c *Client) LookupBatch(ctx context.Context, targets []string, cfg Config) ([]*Record, error) {
	ctx, span := c.addSpan(ctx, "ipapi.lookup_batch",
		attribute.Int("ipapi.targets", len(targets)),
		attribute.String("ipapi.fields", cfg.Fields().String()),
	)
	defer span.End()

	if err := validateTargets(targets); err != nil {
		return nil, fmt.Errorf("validating batch targets: %w", err)
	}

	req, err := c.request(ctx, http.MethodPost, "/batch", cfg, targets)
	if err != nil {
		return nil, err
	}

	body, err := c.exec(req)
	if err != nil {
		return nil, err
	}

	var envs []envelope
	if err := json.Unmarshal(body, &envs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	for _, env := range envs {
		if env.Status == statusFail {
			return nil, failErr(env)
		}
	}

	var records []*Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(records) != len(targets) {
		return nil, fmt.Errorf("%w: got %d records for %d targets", ErrDecode, len(records), len(targets))
	}

	return records, nil
}

// request instantiates an *http.Request carrying cfg's query parameters
// and, for batch calls, the JSON-encoded target list as the body.
func (c *Client) request(ctx context.Context, method, path string, cfg Config, payload any) (*http.Request, error) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return nil, fmt.Errorf("encoding request payload: %w", err)
		}
	}

	reqURL := c.baseURL + path + "?" + cfg.Query().Encode()

	req, err := http.NewRequestWithContext(ctx, method, reqURL, &body)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	return req, nil
}

// exec runs the request, checks the status code and returns the raw
// body. The body must be read in full before decoding because failure
// envelopes and records arrive in the same payload.
func (c *Client) exec(req *http.Request) ([]byte, error) {
	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exec http do: %w", err)
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, err = io.Copy(io.Discard, resp.Body); err != nil {
				c.logger.Error("failed to discard unused body", "error", err)
			}
		}
		if err = resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rateLimitErr(resp)
	}

	if resp.StatusCode != http.StatusOK {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		return nil, &UnexpectedStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
			Err:        ErrUnexpectedStatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	discardBody = false

	return body, nil
}

// rateLimitErr builds a RateLimitError from the X-Ttl header, which
// carries the seconds remaining until the request window resets.
func rateLimitErr(resp *http.Response) error {
	secs, err := strconv.Atoi(resp.Header.Get("X-Ttl"))
	if err != nil {
		secs = 0
	}

	return &RateLimitError{RetryAfter: time.Duration(secs) * time.Second}
}

// userAgent is an http.RoundTripper, enabling the persistent User-Agent header.
type userAgent struct {
	value string
	base  http.RoundTripper
}

func (ua userAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}
