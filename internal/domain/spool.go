package domain

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusPartial    Status = "partial"
	StatusError      Status = "error"
)

type SpoolFile struct {
	Name         string     `db:"name"          json:"name"`
	Status       Status     `db:"status"        json:"status"`
	ErrorMessage string     `db:"error_message" json:"error_message,omitempty"`
	ProcessedAt  *time.Time `db:"processed_at"  json:"processed_at,omitempty"`
}

type SpoolRecord struct {
	Alias     string `csv:"alias"`
	Timestamp int64  `csv:"timestamp"`
	Value     string `csv:"value"`
}

func (r *SpoolRecord) Validate() error {
	if r.Alias == "" {
		return fmt.Errorf("alias is required")
	}

	if r.Timestamp == 0 {
		return fmt.Errorf("timestamp is required")
	}

	return nil
}

type ParseResult struct {
	Filename string
	Records  []*SpoolRecord // filled in case of a success
	Error    error          // filled in case of an error
}

// ByAlias groups records per dataport keeping file order.
func (p *ParseResult) ByAlias() ([]string, map[string][]Record) {
	var aliases []string
	grouped := make(map[string][]Record)

	for _, r := range p.Records {
		if _, ok := grouped[r.Alias]; !ok {
			aliases = append(aliases, r.Alias)
		}
		grouped[r.Alias] = append(grouped[r.Alias], Record{Timestamp: r.Timestamp, Value: r.Value})
	}

	return aliases, grouped
}

type AliasOutcome struct {
	Alias    string
	Sent     int
	Success  Ternary
	Rejected []RejectedRecord
	Error    *RPCError
}

// UploadResult is what the uploader hands to the reporter for one spool file.
type UploadResult struct {
	Filename   string
	Device     DeviceStatus
	Status     Status
	Outcomes   []*AliasOutcome
	UploadedAt time.Time
	Error      error
}

// OutcomeRecord is the persisted form of an AliasOutcome.
type OutcomeRecord struct {
	FileName      string `db:"file_name"      json:"file_name"`
	Alias         string `db:"alias"          json:"alias"`
	Sent          int    `db:"sent"           json:"sent"`
	Success       string `db:"success"        json:"success"`
	RejectedCount int    `db:"rejected_count" json:"rejected_count"`
	ErrorCode     int    `db:"error_code"     json:"error_code,omitempty"`
	ErrorMessage  string `db:"error_message"  json:"error_message,omitempty"`
}

func NewOutcomeRecord(fileName string, o *AliasOutcome) *OutcomeRecord {
	record := &OutcomeRecord{
		FileName:      fileName,
		Alias:         o.Alias,
		Sent:          o.Sent,
		Success:       o.Success.String(),
		RejectedCount: len(o.Rejected),
	}

	if o.Error != nil {
		record.ErrorCode = o.Error.Code
		record.ErrorMessage = o.Error.Message
	}

	return record
}
