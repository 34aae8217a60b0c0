package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultMaxConnections is the connection pool size when none is configured.
	DefaultMaxConnections = 10
	// MaxConnectionsLimit is the hard ceiling; ISE refuses ERS connections
	// well before this on small nodes.
	MaxConnectionsLimit = 30

	defaultConnectTimeout = 5 * time.Second
	defaultRequestTimeout = 60 * time.Second
	defaultRetryWait      = 500 * time.Millisecond

	maxResponseBytes = 32 * 1024 * 1024
	userAgent        = "ise-go"
)

// ISEClient defines the interface for talking to an ISE Primary
// Administration Node.
type ISEClient interface {
	Get(ctx context.Context, path string) (*Response, error)
	Delete(ctx context.Context, path string) (*Response, error)
	BaseURL() string
	Close() error
}

// Cache stores response bodies keyed on URL without query string.
type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, body []byte) error
	Close() error
}

// ClientConfig holds configuration for DefaultClient.
type ClientConfig struct {
	BaseURL            string
	Username           string
	Password           string
	InsecureSkipVerify bool
	MaxConnections     int
	ConnectTimeout     time.Duration
	RequestTimeout     time.Duration
	// Retries is the number of extra attempts after a 5xx or transient
	// network error. Zero disables retrying.
	Retries   int
	RetryWait time.Duration
	// Cache is optional. CacheFilter decides which GET URLs may be served
	// from and stored in it; nil means DefaultCacheFilter.
	Cache       Cache
	CacheFilter func(*url.URL) bool
}

// DefaultCacheFilter admits only URLs without a query string, so paged
// requests are never cached.
func DefaultCacheFilter(u *url.URL) bool {
	return u.RawQuery == ""
}

// DefaultClient implements ISEClient over HTTPS with HTTP Basic auth.
type DefaultClient struct {
	http   *retryablehttp.Client
	base   *url.URL
	config ClientConfig
}

// NewDefaultClient constructs a DefaultClient from the given config.
// BaseURL may omit the scheme, in which case https is assumed.
func NewDefaultClient(cfg ClientConfig) (*DefaultClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}
	raw := strings.TrimRight(cfg.BaseURL, "/")
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid BaseURL %q: %w", cfg.BaseURL, err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid BaseURL %q: host is required", cfg.BaseURL)
	}
	cfg.BaseURL = base.String()

	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = DefaultMaxConnections
	}
	if cfg.MaxConnections > MaxConnectionsLimit {
		cfg.MaxConnections = MaxConnectionsLimit
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = defaultRetryWait
	}
	if cfg.Cache != nil && cfg.CacheFilter == nil {
		cfg.CacheFilter = DefaultCacheFilter
	}

	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout, KeepAlive: 30 * time.Second}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	transport.TLSHandshakeTimeout = cfg.ConnectTimeout
	transport.MaxConnsPerHost = cfg.MaxConnections
	transport.MaxIdleConnsPerHost = cfg.MaxConnections
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: transport,
	}
	rc.Logger = nil
	rc.RetryMax = cfg.Retries
	rc.RetryWaitMin = cfg.RetryWait
	rc.RetryWaitMax = 4 * cfg.RetryWait
	rc.CheckRetry = retryPolicy
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &DefaultClient{
		http:   rc,
		base:   base,
		config: cfg,
	}, nil
}

// retryPolicy is the default retryablehttp policy minus dial failures: a
// refused connection will not succeed a second later and is reported as
// unreachable straight away.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err != nil && isDialError(err) {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// BaseURL returns the configured base URL of the ISE node.
func (c *DefaultClient) BaseURL() string {
	return c.config.BaseURL
}

// Close releases idle connections and closes the cache, if any.
func (c *DefaultClient) Close() error {
	c.http.HTTPClient.CloseIdleConnections()
	if c.config.Cache != nil {
		return c.config.Cache.Close()
	}
	return nil
}

// resolve turns a path (optionally carrying a query) or an absolute href
// into a URL on the configured node.
func (c *DefaultClient) resolve(path string) (*url.URL, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		u, err := url.Parse(path)
		if err != nil {
			return nil, err
		}
		if u.Scheme != c.base.Scheme || u.Host != c.base.Host {
			return nil, fmt.Errorf("refusing %s: not on %s", u.Redacted(), c.base.Host)
		}
		return u, nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	return c.base.ResolveReference(ref), nil
}

// do performs one request. GETs are served from and stored in the cache
// when the cache filter admits the URL.
func (c *DefaultClient) do(ctx context.Context, method, path string) (*Response, error) {
	u, err := c.resolve(path)
	if err != nil {
		return nil, &TransportError{Method: method, URL: path, Err: err}
	}

	key, cacheable := c.cacheKey(method, u)
	if cacheable {
		if body, ok := c.config.Cache.Get(key); ok {
			log.Trace().Str("url", key).Msg("cache hit")
			return &Response{
				StatusCode: http.StatusOK,
				Body:       body,
				Headers:    http.Header{"Content-Type": []string{"application/json"}},
				Cached:     true,
			}, nil
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, &TransportError{Method: method, URL: u.String(), Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.SetBasicAuth(c.config.Username, c.config.Password)

	log.Trace().Str("method", method).Str("url", u.String()).Msg("request")
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &TransportError{Method: method, URL: u.String(), Err: ctxErr}
		}
		return nil, classifyTransport(method, u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, &TransportError{Method: method, URL: u.String(), Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > maxResponseBytes {
		return nil, &TransportError{Method: method, URL: u.String(), Err: fmt.Errorf("response body exceeds %d MB limit", maxResponseBytes/(1024*1024))}
	}

	r := &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}
	if err := checkStatus(method, u, r); err != nil {
		return r, err
	}
	if method == http.MethodGet && !r.IsJSON() {
		return r, &ContentTypeError{
			URL:         u.String(),
			ContentType: resp.Header.Get("Content-Type"),
			Snippet:     truncate(body, 80),
		}
	}

	if cacheable {
		if err := c.config.Cache.Put(key, body); err != nil {
			log.Warn().Err(err).Str("url", key).Msg("cache store failed")
		}
	}
	return r, nil
}

func (c *DefaultClient) cacheKey(method string, u *url.URL) (string, bool) {
	if c.config.Cache == nil || method != http.MethodGet || !c.config.CacheFilter(u) {
		return "", false
	}
	k := *u
	k.RawQuery = ""
	k.Fragment = ""
	k.User = nil
	return k.String(), true
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
