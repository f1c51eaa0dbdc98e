package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shiftnotes/shiftnotes-cli/internal/common"
	"github.com/shiftnotes/shiftnotes-cli/internal/logging"
)

// Credentials supplies the session token for outbound requests and is told
// when the server rejects it. Expire gets the token the rejected request
// carried, which may no longer be the current one.
type Credentials interface {
	Token() string
	Expire(token string)
}

// HTTPClient is the Remote Data Gateway: one authenticated JSON round trip
// per call, no retry, no cache.
type HTTPClient struct {
	baseURL string
	creds   Credentials
	http    *http.Client
	log     logging.Logger
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// New builds a gateway for baseURL (e.g. "https://api.example.org/api").
// creds may be nil for anonymous use.
func New(baseURL string, creds Credentials, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http:    &http.Client{},
		log:     logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	noAuth bool
}

// Do sends one request and decodes a JSON response into out (which may be
// nil). A 204 or non-JSON success leaves out untouched.
func (c *HTTPClient) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, raw, err := c.send(ctx, request{method: method, path: path, query: query, body: body})
	if err != nil {
		return err
	}
	return decode(resp, raw, out)
}

func (c *HTTPClient) doAnonymous(ctx context.Context, method, path string, body, out any) error {
	resp, raw, err := c.send(ctx, request{method: method, path: path, body: body, noAuth: true})
	if err != nil {
		return err
	}
	return decode(resp, raw, out)
}

// Blob is a downloaded file, e.g. a server-generated CSV export.
type Blob struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Download fetches path and returns the raw body.
func (c *HTTPClient) Download(ctx context.Context, path string, query url.Values) (*Blob, error) {
	resp, raw, err := c.send(ctx, request{method: http.MethodGet, path: path, query: query})
	if err != nil {
		return nil, err
	}
	b := &Blob{Data: raw, ContentType: resp.Header.Get("Content-Type")}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			b.Filename = params["filename"]
		}
	}
	return b, nil
}

func (c *HTTPClient) send(ctx context.Context, r request) (*http.Response, []byte, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var payload io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s %s: %w", r.method, r.path, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, payload)
	if err != nil {
		return nil, nil, fmt.Errorf("build %s %s: %w", r.method, r.path, err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var sentToken string
	if !r.noAuth && c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
			sentToken = token
		}
	}

	log := c.log.With("request_id", reqID, "method", r.method, "path", r.path)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, fmt.Errorf("%s %s: %w", r.method, r.path, ctxErr)
		}
		log.Warn(ctx, "request failed", "error", err)
		return nil, nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, r.method, r.path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read %s %s: %v", ErrUnavailable, r.method, r.path, err)
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(r.method, r.path, resp, raw)
		if resp.StatusCode == http.StatusUnauthorized && sentToken != "" {
			log.Warn(ctx, "token rejected, ending session")
			c.creds.Expire(sentToken)
		}
		return nil, nil, apiErr
	}

	return resp, raw, nil
}

func decode(resp *http.Response, raw []byte, out any) error {
	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && mt != "application/json" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

// IsCanceled reports whether err came from a canceled or expired context
// rather than from the server.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
