// Package onep sends requests to the OneP device API: provisioning,
// dataport HTTP access, JSON-RPC and the legacy UDP write.
//
// Transport failures are never returned as Go errors. They are folded into
// a domain.Response with Code == domain.CodeTimeout so every caller inspects
// the same shape.
package onep

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kurochkinivan/onep_client/internal/domain"
	"github.com/kurochkinivan/onep_client/internal/netstat"
)

const (
	DefaultTimeout = 15 * time.Second
	UDPPort        = 18494

	HeaderCIK            = "X-Exosite-CIK"
	HeaderVendorToken    = "X-Exosite-Token"
	HeaderRequestTimeout = "Request-Timeout"

	contentTypeForm = "application/x-www-form-urlencoded; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

type Config struct {
	Vendor string
	// BaseURL replaces the vendor host derived URL, e.g. for a local test server.
	BaseURL   string
	UseTLS    bool
	UserAgent string
	Timeout   time.Duration
	// UDPAddr replaces <vendor>.m2.exosite.com:18494.
	UDPAddr    string
	HTTPClient *http.Client
}

type InterfaceSampler interface {
	Sample() netstat.Snapshot
}

type UsageRecorder interface {
	RecordUsage(ctx context.Context, entries ...*domain.UsageEntry) error
}

type Client struct {
	log        *slog.Logger
	cfg        Config
	httpClient *http.Client
	sampler    InterfaceSampler
	usage      UsageRecorder
	now        func() time.Time
}

// NewClient builds a platform client. sampler and usage may be nil, in
// which case no bandwidth accounting happens.
func NewClient(log *slog.Logger, cfg Config, sampler InterfaceSampler, usage UsageRecorder) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		log:        log,
		cfg:        cfg,
		httpClient: httpClient,
		sampler:    sampler,
		usage:      usage,
		now:        time.Now,
	}
}

func (c *Client) SetTLS(enabled bool) {
	c.cfg.UseTLS = enabled
}

func (c *Client) baseURL() string {
	if c.cfg.BaseURL != "" {
		return strings.TrimRight(c.cfg.BaseURL, "/") + "/"
	}

	scheme := "http"
	if c.cfg.UseTLS {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s.m2.exosite.com/", scheme, c.cfg.Vendor)
}

type request struct {
	method  string
	url     string
	header  http.Header
	body    string
	timeout time.Duration
	cik     string
	source  string
	// usageMethod overrides the lower-cased HTTP method in usage entries.
	usageMethod string
}

func (c *Client) newHeader() http.Header {
	header := make(http.Header)
	header.Set("User-Agent", c.cfg.UserAgent)
	return header
}

func (c *Client) send(ctx context.Context, r *request) domain.Response {
	timeout := r.timeout
	if timeout <= 0 {
		timeout = c.cfg.Timeout
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(reqCtx, r.method, r.url, body)
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header = r.header

	before := c.sample()
	start := c.now()

	c.log.DebugContext(ctx, "sending request",
		slog.String("method", r.method),
		slog.String("url", r.url),
		slog.String("source", r.source),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "request failed", slog.String("source", r.source), slog.String("err", err.Error()))
		return domain.TransportFailure(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.DebugContext(ctx, "failed to read response body", slog.String("err", err.Error()))
		return domain.TransportFailure(fmt.Errorf("failed to read response body: %w", err))
	}

	c.recordUsage(ctx, r, start, before, c.sample())

	return domain.NewResponse(resp.StatusCode, resp.Header, string(data))
}

func (c *Client) sample() netstat.Snapshot {
	if c.sampler == nil {
		return nil
	}

	return c.sampler.Sample()
}

func (c *Client) recordUsage(ctx context.Context, r *request, start time.Time, before, after netstat.Snapshot) {
	if c.usage == nil || len(before) == 0 {
		return
	}

	method := r.usageMethod
	if method == "" {
		method = strings.ToLower(r.method)
	}

	entries := make([]*domain.UsageEntry, 0, len(before))
	for iface, b := range before {
		a, ok := after[iface]
		if !ok {
			continue
		}

		entries = append(entries, &domain.UsageEntry{
			CIK:         r.cik,
			RequestedAt: start,
			Interface:   iface,
			Method:      method,
			Source:      r.source,
			RxBytes:     abs(a.RxBytes - b.RxBytes),
			TxBytes:     abs(a.TxBytes - b.TxBytes),
			Duration:    a.At.Sub(b.At).Abs(),
		})
	}

	if err := c.usage.RecordUsage(ctx, entries...); err != nil {
		c.log.DebugContext(ctx, "failed to record usage", slog.String("err", err.Error()))
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
