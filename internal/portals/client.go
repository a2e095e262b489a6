// Package portals is a client for the Exosite Portals REST API used to
// provision devices and manage portal users.
package portals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	apiPath = "/api/portals/v1"

	HeaderUserToken = "X-User-Token"

	DefaultTimeout = 30 * time.Second
)

var ErrNoPortal = errors.New("portal id is not configured")

type Config struct {
	// BaseURL is the domain URL, e.g. https://acme.exosite.com.
	BaseURL  string
	User     string
	Password string
	// Token replaces basic auth when set.
	Token    string
	PortalID string
	// Vendor defaults to the first label of the BaseURL host.
	Vendor     string
	UserAgent  string
	HTTPClient *http.Client
}

type Client struct {
	log        *slog.Logger
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

func New(log *slog.Logger, cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid portals url %q", cfg.BaseURL)
	}

	if cfg.Vendor == "" {
		cfg.Vendor, _, _ = strings.Cut(u.Hostname(), ".")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		log:        log,
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/") + apiPath,
		httpClient: httpClient,
	}, nil
}

func (c *Client) Vendor() string {
	return c.cfg.Vendor
}

// UserToken returns an authorization token for session reuse.
func (c *Client) UserToken(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/users/_this/token", nil, http.StatusOK)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(body)), nil
}

func (c *Client) DomainPortalIDs(ctx context.Context) ([]string, error) {
	var portals []struct {
		ID json.Number `json:"id"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/portals", nil, http.StatusOK, &portals); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(portals))
	for _, p := range portals {
		ids = append(ids, p.ID.String())
	}

	return ids, nil
}

func (c *Client) UserPortals(ctx context.Context) ([]*PortalSummary, error) {
	var portals []*PortalSummary
	if err := c.doJSON(ctx, http.MethodGet, "/portal", nil, http.StatusOK, &portals); err != nil {
		return nil, err
	}

	return portals, nil
}

func (c *Client) Portal(ctx context.Context, id string) (Portal, error) {
	var portal Portal
	if err := c.doJSON(ctx, http.MethodGet, "/portals/"+url.PathEscape(id), nil, http.StatusOK, &portal); err != nil {
		return nil, err
	}

	return portal, nil
}

// UpdatePortal overwrites the configured portal with the given document.
func (c *Client) UpdatePortal(ctx context.Context, portal Portal) (Portal, error) {
	if c.cfg.PortalID == "" {
		return nil, ErrNoPortal
	}

	var updated Portal
	if err := c.doJSON(ctx, http.MethodPut, "/portals/"+url.PathEscape(c.cfg.PortalID), portal, http.StatusOK, &updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// AddDevice creates a vendor device in the configured portal.
func (c *Client) AddDevice(ctx context.Context, model, serial string) (*Device, error) {
	if c.cfg.PortalID == "" {
		return nil, ErrNoPortal
	}

	req := newDevice{
		Model:  model,
		Vendor: c.cfg.Vendor,
		SN:     serial,
		Type:   "vendor",
	}

	var device Device
	path := "/portals/" + url.PathEscape(c.cfg.PortalID) + "/devices"
	if err := c.doJSON(ctx, http.MethodPost, path, req, http.StatusCreated, &device); err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "device added to portal",
		slog.String("portal_id", c.cfg.PortalID),
		slog.String("model", model),
		slog.String("rid", device.RID),
	)

	return &device, nil
}

func (c *Client) UpdateDevice(ctx context.Context, device *Device) (*Device, error) {
	if device.RID == "" {
		return nil, errors.New("device rid is required")
	}

	var updated Device
	if err := c.doJSON(ctx, http.MethodPut, "/devices/"+url.PathEscape(device.RID), device, http.StatusOK, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (c *Client) Device(ctx context.Context, rid string) (*Device, error) {
	var device Device
	if err := c.doJSON(ctx, http.MethodGet, "/devices/"+url.PathEscape(rid), nil, http.StatusOK, &device); err != nil {
		return nil, err
	}

	return &device, nil
}

// MultipleDevices fetches several devices of the authenticated user in one request.
func (c *Client) MultipleDevices(ctx context.Context, rids []string) ([]*Device, error) {
	if len(rids) == 0 {
		return nil, nil
	}

	var devices []*Device
	path := "/users/_this/devices/[" + strings.Join(rids, ",") + "]"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, http.StatusOK, &devices); err != nil {
		return nil, err
	}

	return devices, nil
}

func (c *Client) UserAccounts(ctx context.Context) ([]*Account, error) {
	var accounts []*Account
	if err := c.doJSON(ctx, http.MethodGet, "/accounts", nil, http.StatusOK, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (c *Client) UserPermissions(ctx context.Context, userID string) ([]*Permission, error) {
	var permissions []*Permission
	path := "/users/" + url.PathEscape(userID) + "/permissions"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, http.StatusOK, &permissions); err != nil {
		return nil, err
	}

	return permissions, nil
}

func (c *Client) AddUserPermission(ctx context.Context, userID string, permissions []*Permission) ([]*Permission, error) {
	var granted []*Permission
	path := "/users/" + url.PathEscape(userID) + "/permissions"
	if err := c.doJSON(ctx, http.MethodPost, path, permissions, http.StatusOK, &granted); err != nil {
		return nil, err
	}

	return granted, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in any, want int, out any) error {
	body, err := c.do(ctx, method, path, in, want)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, want int) ([]byte, error) {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	if c.cfg.Token != "" {
		req.Header.Set(HeaderUserToken, c.cfg.Token)
	} else {
		req.SetBasicAuth(c.cfg.User, c.cfg.Password)
	}

	c.log.DebugContext(ctx, "sending portals request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != want {
		return nil, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	return data, nil
}
