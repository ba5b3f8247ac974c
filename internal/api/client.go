package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iris-tg/iris-cli/internal/debug"
)

const (
	// APIVersion is the Iris API version embedded in the default base URL.
	// It is a named constant rather than being inlined so tests and callers
	// can see exactly which version the default URL pins.
	APIVersion = "0.3"

	// DefaultHost is the Iris API host used when no base URL is supplied.
	DefaultHost = "https://iris-tg.ru"

	// DefaultTimeout bounds every request issued by the client.
	DefaultTimeout = 30 * time.Second
)

// Client is the Iris bot API client.
//
// The bot id and token are embedded in the request URL path (never sent via
// headers or body), so BaseURL carries the full authorization for every call.
// A Client is immutable after construction and safe for concurrent use: each
// call builds a fresh request over the shared http.Client.
type Client struct {
	BaseURL   string
	BotID     int64
	Token     string
	HTTP      *http.Client
	UserAgent string
}

// Param is one ordered key/value request parameter. The executor preserves
// caller-supplied ordering when serializing the query string; the server does
// not care, but deterministic URLs keep tests simple.
type Param struct {
	Key   string
	Value string
}

// New creates an Iris API client for the given bot account. The base URL
// defaults to DefaultHost + "/api/<botID>_<token>/v" + APIVersion and can be
// overridden by assigning BaseURL before the first call.
//
// Construction fails for a non-positive bot id or blank token; a client that
// cannot be initialized must not be usable.
func New(botID int64, token string) (*Client, error) {
	if botID <= 0 {
		return nil, fmt.Errorf("bot id must be positive, got %d", botID)
	}
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("token must not be empty")
	}

	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		baseTransport = &http.Transport{}
	}
	transport := baseTransport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12
	transport.TLSClientConfig.InsecureSkipVerify = false

	return &Client{
		BaseURL: fmt.Sprintf("%s/api/%d_%s/v%s", DefaultHost, botID, token, APIVersion),
		BotID:   botID,
		Token:   token,
		HTTP: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
		},
	}, nil
}

// methodURL builds the full request URL for a method path, appending the
// percent-encoded parameters in caller order.
func (c *Client) methodURL(method string, params []Param) string {
	u := c.BaseURL + "/" + method
	if len(params) == 0 {
		return u
	}
	var sb strings.Builder
	sb.WriteString(u)
	sb.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// Raw performs one request against a method path and returns the raw response
// body. It is the single network path every operation goes through.
//
// Outcomes are classified into exactly three cases: a *NetworkError for
// transport-level failures, an *APIError for any non-200 status (carrying the
// server's error/description text when the body has one), and the body bytes
// on 200.
func (c *Client) Raw(ctx context.Context, method string, params []Param, post bool) ([]byte, error) {
	reqURL := c.methodURL(method, params)

	verb := http.MethodGet
	var body io.Reader
	if post {
		verb = http.MethodPost
		// Parameters travel in the query string even for POST; the body
		// stays empty. This mirrors the remote service's observed contract.
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, verb, reqURL, body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if post {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("request complete", "method", method, "verb", verb, "status", resp.StatusCode, "duration", time.Since(start))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Detail:     apiErrorDetail(respBody),
		}
	}

	return respBody, nil
}

// apiErrorDetail extracts the server's error text from a non-200 body. The
// `error` and `description` fields are tried in that order; anything else
// falls back to the raw body.
func apiErrorDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var detail struct {
		Error       string `json:"error"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		if detail.Error != "" {
			return detail.Error
		}
		if detail.Description != "" {
			return detail.Description
		}
	}
	return string(body)
}

// fetch performs a request and decodes the body into T. Remote and decode
// failures are suppressed into a nil result; input validation happens before
// this point and is the only error channel operation methods expose.
func fetch[T any](ctx context.Context, c *Client, method string, params []Param, post bool) *T {
	body, err := c.Raw(ctx, method, params, post)
	if err != nil {
		logSuppressed(ctx, method, err)
		return nil
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		logSuppressed(ctx, method, err)
		return nil
	}
	return &out
}

// fetchList is fetch for endpoints returning a JSON array. A failed call
// yields a nil slice; callers cannot tell it apart from an empty result.
func fetchList[T any](ctx context.Context, c *Client, method string, params []Param, post bool) []T {
	body, err := c.Raw(ctx, method, params, post)
	if err != nil {
		logSuppressed(ctx, method, err)
		return nil
	}
	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		logSuppressed(ctx, method, err)
		return nil
	}
	return out
}

func logSuppressed(ctx context.Context, method string, err error) {
	if debug.IsEnabled(ctx) {
		slog.Debug("request suppressed", "method", method, "error", err)
	}
}
