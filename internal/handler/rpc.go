package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kurochkinivan/onep_client/internal/domain"
)

// RPC is the verdict for one call inside an RPC batch.
type RPC struct {
	HTTPCode int
	Body     string
	Online   bool
	Success  domain.Ternary
	Auth     bool
	Error    *domain.RPCError

	// Value is the latest point returned by a read call, nil when the
	// dataport is empty.
	Value json.RawMessage

	// Rejected holds the records refused by a recordbatch call exactly as
	// the platform listed them.
	Rejected []domain.RejectedRecord

	// Malformed is set when the body could not be decoded.
	Malformed bool
}

func (r *RPC) String() string {
	return fmt.Sprintf("http_code: %d, error: %v, success: %s, auth: %t, body: %q",
		r.HTTPCode, r.Error, r.Success, r.Auth, r.Body)
}

// ValueString returns the read value as text, unquoting JSON strings.
func (r *RPC) ValueString() string {
	if r.Value == nil {
		return ""
	}

	var s string
	if err := json.Unmarshal(r.Value, &s); err == nil {
		return s
	}

	return string(r.Value)
}

func ClassifyRPCRead(resp domain.Response, id int) *RPC {
	return classifyRPC(resp, resp.Body, id, func(r *RPC, result *domain.CallResult) {
		if result.StatusOK() {
			r.Success = domain.True

			var points [][]json.RawMessage
			if err := json.Unmarshal(result.Result, &points); err == nil && len(points) > 0 && len(points[0]) > 1 {
				r.Value = points[0][1]
			}
		}
	})
}

func ClassifyRPCWrite(resp domain.Response, id int) *RPC {
	return classifyRPC(resp, resp.Body, id, func(r *RPC, result *domain.CallResult) {
		if result.StatusOK() {
			r.Success = domain.True
		}
	})
}

// ClassifyRPCRecordBatch reports True when every record was accepted and
// Partial when the status lists rejected records.
func ClassifyRPCRecordBatch(resp domain.Response, id int) *RPC {
	body := decode(resp.Body, url.PathUnescape)

	return classifyRPC(resp, body, id, func(r *RPC, result *domain.CallResult) {
		if len(result.Status) == 0 {
			return
		}

		if result.StatusOK() {
			r.Success = domain.True
			return
		}

		var rejected []domain.RejectedRecord
		if err := json.Unmarshal(result.Status, &rejected); err != nil {
			return
		}

		r.Success = domain.Partial
		r.Rejected = rejected
	})
}

func classifyRPC(resp domain.Response, body string, id int, onResult func(*RPC, *domain.CallResult)) *RPC {
	r := &RPC{
		HTTPCode: resp.Code,
		Body:     body,
		Online:   resp.Online(),
		Success:  domain.False,
		Auth:     true,
	}

	if !r.Online {
		return r
	}

	if resp.Code == http.StatusUnauthorized {
		r.Auth = false
	}

	var decoded domain.RPCBody
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		r.Malformed = true
		return r
	}

	if decoded.Platform != nil {
		r.Error = &decoded.Platform.Err
		if r.Error.Code == domain.RPCCodeAuth {
			r.Auth = false
		}
		return r
	}

	result, ok := decoded.Result(id)
	if !ok {
		return r
	}

	onResult(r, result)

	if result.Error != nil {
		r.Success = domain.False
		r.Error = result.Error
		if result.Error.Code == domain.RPCCodeAuth {
			r.Auth = false
		}
	}

	return r
}
