// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-staffomatic/auth"
	"github.com/MKhiriev/go-staffomatic/internal/logger"
	"github.com/go-resty/resty/v2"
)

const (
	headerRequestID = "X-Request-Id"
	headerLink      = "Link"

	paramClientID     = "client_id"
	paramClientSecret = "client_secret"
	paramPerPage      = "per_page"

	// maxPages stops auto-pagination on servers that keep returning next
	// links.
	maxPages = 1000
)

// TransportOption customises the transport built by [NewHTTPTransport].
type TransportOption func(*httpTransport)

// WithMetrics records every request in m.
func WithMetrics(m *Metrics) TransportOption {
	return func(t *httpTransport) {
		t.metrics = m
	}
}

// WithBaseTransport replaces the pooled *http.Transport requests go through.
// Proxied requests use clones of it.
func WithBaseTransport(rt *http.Transport) TransportOption {
	return func(t *httpTransport) {
		t.base = rt
	}
}

type httpTransport struct {
	base    *http.Transport
	metrics *Metrics
	logger  *logger.Logger

	mu      sync.Mutex
	proxied map[string]*http.Transport
}

// NewHTTPTransport constructs the resty-backed implementation of
// [Transport]. A resty client is assembled per call from the Connection so
// option changes apply to the next request; connection pools are shared
// through one *http.Transport per proxy URL.
func NewHTTPTransport(log *logger.Logger, opts ...TransportOption) Transport {
	if log == nil {
		log = logger.Nop()
	}

	t := &httpTransport{
		base:    http.DefaultTransport.(*http.Transport).Clone(),
		logger:  log.WithField("component", "transport"),
		proxied: make(map[string]*http.Transport),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get implements [Transport].
func (t *httpTransport) Get(ctx context.Context, conn Connection, path string, result any) error {
	req, err := t.request(ctx, conn)
	if err != nil {
		return err
	}

	resp, err := withPerPage(req, conn).Get(path)
	if err != nil {
		return fmt.Errorf("get %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return decode(resp, result)
}

// List implements [Transport].
func (t *httpTransport) List(ctx context.Context, conn Connection, path string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	seen := make(map[string]struct{})

	for page := 0; path != "" && page < maxPages; page++ {
		if _, ok := seen[path]; ok {
			break
		}
		seen[path] = struct{}{}

		req, err := t.request(ctx, conn)
		if err != nil {
			return nil, err
		}

		resp, err := withPerPage(req, conn).Get(path)
		if err != nil {
			return nil, fmt.Errorf("list %s request: %w", path, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		var pageItems []json.RawMessage
		if err = decode(resp, &pageItems); err != nil {
			return nil, err
		}
		items = append(items, pageItems...)

		if !conn.Options.AutoPaginate {
			break
		}

		path = ""
		if next := nextLink(resp.Header().Get(headerLink)); next != "" {
			path = withoutParams(next, paramClientID, paramClientSecret, paramPerPage)
		}
	}

	return items, nil
}

// Post implements [Transport].
func (t *httpTransport) Post(ctx context.Context, conn Connection, path string, body, result any) error {
	req, err := t.request(ctx, conn)
	if err != nil {
		return err
	}

	resp, err := req.SetBody(body).Post(path)
	if err != nil {
		return fmt.Errorf("post %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return decode(resp, result)
}

// request builds a resty request carrying the credentials, headers and
// connection settings of conn.
func (t *httpTransport) request(ctx context.Context, conn Connection) (*resty.Request, error) {
	creds := conn.Credentials
	if creds == nil {
		creds = auth.Unauthenticated{}
	}
	if conn.RequireAuth && creds.Scheme() == auth.SchemeNone {
		return nil, ErrAuthRequired
	}

	client, err := t.client(conn, creds.Scheme())
	if err != nil {
		return nil, err
	}

	req := client.R().SetContext(ctx)
	switch c := creds.(type) {
	case auth.TokenAuth:
		t.warnIfExpired(c.Token)
		req.SetAuthToken(c.Token)
	case auth.ClientAppAuth:
		req.SetQueryParams(map[string]string{
			paramClientID:     c.ClientID,
			paramClientSecret: c.ClientSecret,
		})
	case auth.BasicAuth:
		req.SetBasicAuth(c.Login, c.Password)
	}

	t.logger.Debug().
		Str("auth", creds.Scheme().String()).
		Str("endpoint", conn.Endpoint).
		Msg("prepared request")

	return req, nil
}

func (t *httpTransport) client(conn Connection, scheme auth.Scheme) (*resty.Client, error) {
	rt, err := t.roundTripper(conn.Options.Proxy)
	if err != nil {
		return nil, err
	}

	opts := conn.Options
	client := resty.NewWithClient(&http.Client{Transport: rt}).
		SetBaseURL(conn.Endpoint).
		SetLogger(t.logger.Resty())

	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.DefaultMediaType != "" {
		client.SetHeader("Accept", opts.DefaultMediaType)
	}
	if opts.ContentType != "" {
		client.SetHeader("Content-Type", opts.ContentType)
	}

	co := opts.ConnectionOptions
	client.SetHeaders(co.Headers)
	if co.Timeout > 0 {
		client.SetTimeout(co.Timeout)
	}
	if co.RetryCount > 0 {
		client.SetRetryCount(co.RetryCount)
	}
	if co.RetryWaitTime > 0 {
		client.SetRetryWaitTime(co.RetryWaitTime)
	}

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader(headerRequestID, newRequestID())
		return nil
	})
	for _, mw := range opts.Middleware {
		if mw != nil {
			client.OnBeforeRequest(mw)
		}
	}

	label := scheme.String()
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		t.metrics.observe(resp.Request.Method, resp.StatusCode(), label, resp.Time())
		return nil
	})
	client.OnError(func(r *resty.Request, err error) {
		var elapsed time.Duration
		if !r.Time.IsZero() {
			elapsed = time.Since(r.Time)
		}
		t.metrics.observe(r.Method, 0, label, elapsed)
	})

	return client, nil
}

// roundTripper returns the shared transport for proxy, creating it on first
// use. An empty proxy uses the base transport.
func (t *httpTransport) roundTripper(proxy string) (*http.Transport, error) {
	if proxy == "" {
		return t.base, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if rt, ok := t.proxied[proxy]; ok {
		return rt, nil
	}

	proxyURL, err := url.Parse(proxy)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url: %w", err)
	}

	rt := t.base.Clone()
	rt.Proxy = http.ProxyURL(proxyURL)
	t.proxied[proxy] = rt
	return rt, nil
}

func (t *httpTransport) warnIfExpired(token string) {
	if exp, ok := auth.TokenExpiry(token); ok && exp.Before(time.Now()) {
		t.logger.Warn().Time("expired_at", exp).Msg("access token is expired")
	}
}

func withPerPage(req *resty.Request, conn Connection) *resty.Request {
	if conn.Options.PerPage > 0 {
		req.SetQueryParam(paramPerPage, strconv.Itoa(conn.Options.PerPage))
	}
	return req
}

func decode(resp *resty.Response, result any) error {
	body := resp.Body()
	if result == nil || len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL, err)
	}
	return nil
}
