// Package handler classifies platform responses into verdicts the device
// applies to itself.
package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/kurochkinivan/onep_client/internal/domain"
)

const (
	MessageUnauthorized = "No or invalid CIK."
	MessageClientError  = "There was an error with the request by the client."
	MessageServerError  = "There was an error with the request on the server."
	MessageTimeout      = "Request timed out"
)

const (
	ActivationDeviceNotInPlatform = http.StatusForbidden
	ActivationNotFound            = http.StatusNotFound
	ActivationNotEnabled          = http.StatusConflict
)

type Activation struct {
	Code      int
	Body      string
	Activated bool
}

func (a *Activation) String() string {
	return fmt.Sprintf("code: %d, body: %q, activated: %t", a.Code, a.Body, a.Activated)
}

func ClassifyActivation(resp domain.Response) *Activation {
	a := &Activation{
		Code: resp.Code,
		Body: resp.Body,
	}

	switch {
	case resp.Err != nil:
		a.Body = MessageTimeout
	case resp.Code == http.StatusOK:
		a.Activated = domain.ValidCIK(resp.Body)
		if !a.Activated {
			a.Body = fmt.Sprintf("unexpected credential length %d", len(resp.Body))
		}
	case resp.Code == ActivationNotFound:
		a.Body = "Client described by <vendor>, <model>, <sn> is not found on the system."
	case resp.Code == ActivationDeviceNotInPlatform:
		a.Body = "Received 403 from activation attempt. Device Not in 1P"
	case resp.Code == ActivationNotEnabled:
		a.Body = "Received 409 from activation attempt. Device Not Enabled"
	default:
		a.Body = fmt.Sprintf("Response code: {%d} :: Something went wrong.", resp.Code)
	}

	return a
}

// Dataport is the verdict for a read, write or read-write call.
type Dataport struct {
	Code    int
	Body    string
	Online  bool
	Success bool
	raw     string
}

func (d *Dataport) String() string {
	return fmt.Sprintf("code: %d, body: %q, success: %t", d.Code, d.Body, d.Success)
}

func (d *Dataport) Unauthorized() bool {
	return d.Code == http.StatusUnauthorized
}

// Values parses the undecoded body as key=value pairs, one per alias read.
func (d *Dataport) Values() (url.Values, error) {
	if !d.Success {
		return nil, fmt.Errorf("no values in unsuccessful response: %s", d.Body)
	}

	values, err := url.ParseQuery(d.raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataport values: %w", err)
	}

	return values, nil
}

func ClassifyWrite(resp domain.Response) *Dataport {
	d := &Dataport{
		Code:   resp.Code,
		Body:   resp.Body,
		Online: true,
		raw:    resp.Body,
	}
	classify(d, resp, true)
	return d
}

// ClassifyRead decodes the body treating '+' as space.
func ClassifyRead(resp domain.Response) *Dataport {
	d := &Dataport{
		Code:   resp.Code,
		Body:   decode(resp.Body, url.QueryUnescape),
		Online: true,
		raw:    resp.Body,
	}
	classify(d, resp, false)
	return d
}

// ClassifyReadWrite decodes percent escapes only.
func ClassifyReadWrite(resp domain.Response) *Dataport {
	d := &Dataport{
		Code:   resp.Code,
		Body:   decode(resp.Body, url.PathUnescape),
		Online: true,
		raw:    resp.Body,
	}
	classify(d, resp, false)
	return d
}

// ClassifyContent is used for content area downloads which are not URL encoded.
func ClassifyContent(resp domain.Response) *Dataport {
	return ClassifyWrite(resp)
}

func classify(d *Dataport, resp domain.Response, withCode bool) {
	code := resp.Code

	switch {
	case resp.Err != nil:
		d.Online = false
	case code == http.StatusOK || code == http.StatusNoContent:
		d.Success = true
	case code == http.StatusUnauthorized:
		d.Body = MessageUnauthorized
	case isClientError(code):
		d.Body = message(code, MessageClientError, withCode)
	case code >= 500 && code <= 599:
		d.Body = message(code, MessageServerError, withCode)
	}
}

func isClientError(code int) bool {
	return code == http.StatusBadRequest || (code >= 402 && code <= 499)
}

func message(code int, msg string, withCode bool) string {
	if !withCode {
		return msg
	}

	return fmt.Sprintf("Response code: {%d} :: %s", code, msg)
}

func decode(body string, unescape func(string) (string, error)) string {
	decoded, err := unescape(body)
	if err != nil {
		return body
	}

	return decoded
}
