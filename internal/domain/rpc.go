package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type Procedure string

const (
	ProcedureRead        Procedure = "read"
	ProcedureWrite       Procedure = "write"
	ProcedureRecordBatch Procedure = "recordbatch"
	ProcedureFlush       Procedure = "flush"
)

const StatusOK = "ok"

// Error codes carried in RPC error objects.
const (
	RPCCodeForm     = 400
	RPCCodeAuth     = 401
	RPCCodePlatform = 500
	RPCCodeProcArgs = 501
)

type Call struct {
	Procedure Procedure `json:"procedure"`
	ID        int       `json:"id"`
	Arguments []any     `json:"arguments"`
}

type AliasArgument struct {
	Alias string `json:"alias"`
}

type RPCAuth struct {
	CIK string `json:"cik"`
}

type RPCRequest struct {
	Auth  RPCAuth `json:"auth"`
	Calls []*Call `json:"calls"`
}

func (r *RPCRequest) Procedures() string {
	procedures := make([]string, 0, len(r.Calls))
	for _, call := range r.Calls {
		procedures = append(procedures, string(call.Procedure))
	}

	return strings.Join(procedures, ",")
}

// Record is a single historical value for a recordbatch call.
type Record struct {
	Timestamp int64
	Value     any
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Context string `json:"context,omitempty"`
}

func (e *RPCError) String() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Message)
}

type CallResult struct {
	ID     int             `json:"id"`
	Status json.RawMessage `json:"status,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *RPCError       `json:"error,omitempty"`
}

// StatusOK reports whether the call finished with the plain "ok" status.
func (c *CallResult) StatusOK() bool {
	var status string
	if err := json.Unmarshal(c.Status, &status); err != nil {
		return false
	}

	return status == StatusOK
}

// PlatformError is returned by the RPC endpoint instead of the per-call
// result list when the whole request was refused.
type PlatformError struct {
	Err RPCError `json:"error"`
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform error %s", e.Err.String())
}

// RPCBody is the decoded RPC response: either per-call Results or a
// Platform error, never both.
type RPCBody struct {
	Results  []*CallResult
	Platform *PlatformError
}

func (b *RPCBody) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty rpc body")
	}

	switch trimmed[0] {
	case '[':
		return json.Unmarshal(trimmed, &b.Results)
	case '{':
		b.Platform = &PlatformError{}
		return json.Unmarshal(trimmed, b.Platform)
	default:
		return fmt.Errorf("unexpected rpc body starting with %q", trimmed[0])
	}
}

// Result returns the result tagged with id.
func (b *RPCBody) Result(id int) (*CallResult, bool) {
	for _, result := range b.Results {
		if result.ID == id {
			return result, true
		}
	}

	return nil, false
}

// Unauthorized reports whether the platform or any single call refused the credential.
func (b *RPCBody) Unauthorized() bool {
	if b.Platform != nil {
		return b.Platform.Err.Code == RPCCodeAuth
	}

	for _, result := range b.Results {
		if result.Error != nil && result.Error.Code == RPCCodeAuth {
			return true
		}
	}

	return false
}

// RejectedRecord is a record the platform refused inside a recordbatch
// call, kept as reported. The first element is the record timestamp.
type RejectedRecord []json.RawMessage

func (r RejectedRecord) Timestamp() string {
	if len(r) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(r[0], &s); err == nil {
		return s
	}

	return string(r[0])
}
