package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/client/session"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

type Option func(*options)

type options struct {
	base    http.RoundTripper
	timeout time.Duration
	log     logging.Logger
}

// WithTransport replaces the underlying RoundTripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

// WithTimeout bounds each request. Zero means only the caller's context applies.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

func NewHTTPClient(baseURL string, store session.Store, opts ...Option) *HTTPClient {
	o := options{base: http.DefaultTransport, log: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &authTransport{base: o.base, store: store, log: o.log},
			Timeout:   o.timeout,
		},
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	// A stale token must not ride along on a fresh login.
	var tok models.Token
	err := c.do(anonymous(ctx), http.MethodPost, "/auth/login", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &tok)
	return tok, err
}

func (c *HTTPClient) Me(ctx context.Context) (models.Identity, error) {
	var id models.Identity
	err := c.getJSON(ctx, "/auth/me", &id)
	return id, err
}

func (c *HTTPClient) CreateUser(ctx context.Context, u models.NewUser) (models.Identity, error) {
	var created models.Identity
	err := c.postJSON(ctx, "/auth/users", u, &created)
	return created, err
}

func (c *HTTPClient) AdminStats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	err := c.getJSON(ctx, "/admin/stats", &stats)
	return stats, err
}

func (c *HTTPClient) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := c.getJSON(ctx, "/clients/", &clients)
	return clients, err
}

func (c *HTTPClient) MyReports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	err := c.getJSON(ctx, "/reports/me", &reports)
	return reports, err
}

func (c *HTTPClient) CreateReport(ctx context.Context, r models.ReportCreate) (models.Report, error) {
	var created models.Report
	err := c.postJSON(ctx, "/reports/", r, &created)
	return created, err
}

func (c *HTTPClient) MyReportsPDF(ctx context.Context) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, "/pdf/me", nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", errors.Join(ErrUnavailable, err))
	}
	return data, nil
}

func (c *HTTPClient) SendMyReports(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/pdf/me/send", nil, "", nil)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json", out)
}

// do sends the request and decodes a 2xx JSON body into out when out is not nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	resp, err := c.send(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// send returns the response only for 2xx statuses; everything else is mapped
// to an error and the body is closed.
func (c *HTTPClient) send(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, mapTransportError(ctx, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, parseError(resp.StatusCode, data)
	}
	return resp, nil
}

// mapTransportError keeps caller cancellation visible and reports anything
// else as the server being unreachable.
func mapTransportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
