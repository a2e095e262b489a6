package device

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/onep_client/internal/domain"
)

// AddRPCRead queues a read of the latest value of alias and returns the call id.
func (d *Device) AddRPCRead(alias string) int {
	return d.addCall(domain.ProcedureRead, domain.AliasArgument{Alias: alias}, map[string]any{})
}

func (d *Device) AddRPCWrite(alias string, value any) int {
	return d.addCall(domain.ProcedureWrite, domain.AliasArgument{Alias: alias}, value)
}

// AddRPCRecordBatch queues historical records for alias. Each value is sent
// JSON encoded next to its timestamp.
func (d *Device) AddRPCRecordBatch(alias string, records []domain.Record) (int, error) {
	points := make([][2]any, 0, len(records))
	for _, r := range records {
		value, err := json.Marshal(r.Value)
		if err != nil {
			return 0, fmt.Errorf("failed to encode record %d of %s: %w", r.Timestamp, alias, err)
		}
		points = append(points, [2]any{r.Timestamp, string(value)})
	}

	return d.addCall(domain.ProcedureRecordBatch, domain.AliasArgument{Alias: alias}, points), nil
}

func (d *Device) AddRPCFlush(alias string) int {
	return d.addCall(domain.ProcedureFlush, domain.AliasArgument{Alias: alias}, map[string]any{})
}

// PendingCalls returns the calls queued since the last send.
func (d *Device) PendingCalls() []*domain.Call {
	return d.calls
}

// SendRPC posts every queued call in one request. The queue is emptied
// whatever the outcome. An empty queue is still sent as "calls": [].
func (d *Device) SendRPC(ctx context.Context) domain.Response {
	calls := d.calls
	if calls == nil {
		calls = []*domain.Call{}
	}
	d.calls = nil

	req := &domain.RPCRequest{
		Auth:  domain.RPCAuth{CIK: d.cik},
		Calls: calls,
	}

	resp := d.platform.Process(ctx, req)
	d.online = resp.Online()

	if !resp.Online() {
		d.log.Debug("rpc request failed", slog.String("err", resp.Body))
		return resp
	}

	if resp.Code == http.StatusUnauthorized {
		d.log.Warn("rpc refused cik, deactivating")
		d.activated = false
		return resp
	}

	var body domain.RPCBody
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		d.log.Warn("malformed rpc response", slog.String("err", err.Error()))
		return resp
	}

	if body.Unauthorized() {
		d.log.Warn("rpc refused cik, deactivating")
		d.activated = false
	}

	return resp
}

func (d *Device) addCall(procedure domain.Procedure, args ...any) int {
	id := d.rpcID
	d.rpcID++

	d.calls = append(d.calls, &domain.Call{
		Procedure: procedure,
		ID:        id,
		Arguments: args,
	})

	return id
}
