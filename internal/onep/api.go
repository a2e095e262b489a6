package onep

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/kurochkinivan/onep_client/internal/domain"
)

const (
	activatePath   = "provision/activate"
	contentPath    = "provision/download"
	managePath     = "provision/manage/model/"
	stackAliasPath = "onep:v1/stack/alias"
	rpcPath        = "onep:v1/rpc/process"

	maxSourceAliases = 30
)

func (c *Client) Activate(ctx context.Context, identity domain.Identity) domain.Response {
	body := "vendor=" + url.QueryEscape(identity.Vendor) +
		"&model=" + url.QueryEscape(identity.Model) +
		"&sn=" + url.QueryEscape(identity.Serial)

	header := c.newHeader()
	header.Set("Content-Type", contentTypeForm)

	return c.send(ctx, &request{
		method: http.MethodPost,
		url:    c.baseURL() + activatePath,
		header: header,
		body:   body,
		source: "actvt:" + identity.Serial,
	})
}

// Regenerate asks the platform for a new credential for the device and
// opens its activation window. It needs the vendor token and exists for
// development and test setups only.
func (c *Client) Regenerate(ctx context.Context, vendorToken string, identity domain.Identity) domain.Response {
	header := c.newHeader()
	header.Set("Content-Type", contentTypeForm)
	header.Set("Accept", "text/plain, text/csv, application/x-www-form-urlencoded")
	header.Set(HeaderVendorToken, vendorToken)

	return c.send(ctx, &request{
		method: http.MethodPost,
		url:    c.baseURL() + managePath + url.PathEscape(identity.Model) + "/" + url.PathEscape(identity.Serial),
		header: header,
		body:   "enable=true",
		source: "regen:" + identity.Serial,
	})
}

func (c *Client) Read(ctx context.Context, cik string, aliases []string) domain.Response {
	header := c.cikHeader(cik)
	header.Set("Accept", contentTypeForm)

	return c.send(ctx, &request{
		method: http.MethodGet,
		url:    c.baseURL() + stackAliasPath + aliasQuery(aliases),
		header: header,
		cik:    cik,
		source: "read:" + strings.Join(aliases, ","),
	})
}

// LongPoll waits up to timeout for alias to change. The same timeout bounds
// the HTTP call and is forwarded to the platform in milliseconds.
func (c *Client) LongPoll(
	ctx context.Context,
	cik, alias string,
	timeout time.Duration,
	modifiedSince time.Time,
) domain.Response {
	header := c.cikHeader(cik)
	header.Set("Accept", contentTypeForm)
	header.Set(HeaderRequestTimeout, strconv.FormatInt(timeout.Milliseconds(), 10))
	if !modifiedSince.IsZero() {
		header.Set("If-Modified-Since", strconv.FormatInt(modifiedSince.Unix(), 10))
	}

	return c.send(ctx, &request{
		method:  http.MethodGet,
		url:     c.baseURL() + stackAliasPath + aliasQuery([]string{alias}),
		header:  header,
		timeout: timeout,
		cik:     cik,
		source:  "long_poll:" + alias,
	})
}

func (c *Client) Write(ctx context.Context, cik string, values url.Values) domain.Response {
	header := c.cikHeader(cik)
	header.Set("Content-Type", contentTypeForm)

	return c.send(ctx, &request{
		method: http.MethodPost,
		url:    c.baseURL() + stackAliasPath,
		header: header,
		body:   values.Encode(),
		cik:    cik,
		source: "write:" + sourceAliases(values),
	})
}

func (c *Client) ReadWrite(ctx context.Context, cik string, aliases []string, values url.Values) domain.Response {
	header := c.cikHeader(cik)
	header.Set("Accept", contentTypeForm)
	header.Set("Content-Type", contentTypeForm)

	return c.send(ctx, &request{
		method: http.MethodPost,
		url:    c.baseURL() + stackAliasPath + aliasQuery(aliases),
		header: header,
		body:   values.Encode(),
		cik:    cik,
		source: fmt.Sprintf("READ:%s WRITE:%s", strings.Join(aliases, ","), sourceAliases(values)),
	})
}

func (c *Client) Process(ctx context.Context, req *domain.RPCRequest) domain.Response {
	payload, err := json.Marshal(req)
	if err != nil {
		return domain.TransportFailure(fmt.Errorf("failed to encode rpc request: %w", err))
	}

	header := c.newHeader()
	header.Set("Content-Type", contentTypeJSON)

	return c.send(ctx, &request{
		method:      http.MethodPost,
		url:         c.baseURL() + rpcPath,
		header:      header,
		body:        string(payload),
		cik:         req.Auth.CIK,
		source:      "rpc:" + req.Procedures(),
		usageMethod: "rpc_post",
	})
}

func (c *Client) ListContent(ctx context.Context, cik string, identity domain.Identity) domain.Response {
	return c.content(ctx, cik, identity, nil, "list_content:"+identity.Model)
}

func (c *Client) GetContent(ctx context.Context, cik string, identity domain.Identity, contentID string) domain.Response {
	return c.content(ctx, cik, identity, url.Values{"id": {contentID}}, "get_content:"+contentID)
}

func (c *Client) ContentInfo(ctx context.Context, cik string, identity domain.Identity, contentID string) domain.Response {
	return c.content(ctx, cik, identity, url.Values{"id": {contentID}, "info": {"true"}}, "content_info:"+contentID)
}

func (c *Client) content(
	ctx context.Context,
	cik string,
	identity domain.Identity,
	extra url.Values,
	source string,
) domain.Response {
	query := url.Values{
		"vendor": {identity.Vendor},
		"model":  {identity.Model},
	}
	for k, v := range extra {
		query[k] = v
	}

	return c.send(ctx, &request{
		method: http.MethodGet,
		url:    c.baseURL() + contentPath + "?" + query.Encode(),
		header: c.cikHeader(cik),
		cik:    cik,
		source: source,
	})
}

// UDPWrite fires a single datagram and does not wait for any answer.
func (c *Client) UDPWrite(ctx context.Context, cik string, values map[string]string) error {
	addr := c.cfg.UDPAddr
	if addr == "" {
		addr = net.JoinHostPort(c.cfg.Vendor+".m2.exosite.com", strconv.Itoa(UDPPort))
	}

	var msg strings.Builder
	msg.WriteString("cik=" + cik)
	for _, k := range slices.Sorted(maps.Keys(values)) {
		msg.WriteString("&" + k + "=" + values[k])
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "udp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send datagram: %w", err)
	}

	return nil
}

func (c *Client) cikHeader(cik string) http.Header {
	header := c.newHeader()
	header.Set(HeaderCIK, cik)
	return header
}

func aliasQuery(aliases []string) string {
	if len(aliases) == 0 {
		return ""
	}

	escaped := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		escaped = append(escaped, url.QueryEscape(alias))
	}

	return "?" + strings.Join(escaped, "&")
}

func sourceAliases(values url.Values) string {
	aliases := slices.Sorted(maps.Keys(values))
	if len(aliases) > maxSourceAliases {
		aliases = aliases[:maxSourceAliases]
	}

	return strings.Join(aliases, ",")
}
