package domain

import "time"

type UsageEntry struct {
	CIK         string        `csv:"cik"          db:"cik"`
	RequestedAt time.Time     `csv:"requested_at" db:"requested_at"`
	Interface   string        `csv:"iface"        db:"iface"`
	Method      string        `csv:"method"       db:"method"`
	Source      string        `csv:"source"       db:"source"`
	RxBytes     int64         `csv:"rx"           db:"rx_bytes"`
	TxBytes     int64         `csv:"tx"           db:"tx_bytes"`
	Duration    time.Duration `csv:"duration"     db:"duration_ns"`
}

type SourceUsage struct {
	Num         int           `json:"num"`
	Method      string        `json:"type"`
	MaxRx       int64         `json:"max_rx"`
	MaxTx       int64         `json:"max_tx"`
	TotalRx     int64         `json:"tot_rx"`
	TotalTx     int64         `json:"tot_tx"`
	MaxDuration time.Duration `json:"rq_time_max"`
	AvgDuration time.Duration `json:"rq_time_avg"`
}

// UsageReport maps interface -> request source -> accumulated usage.
type UsageReport map[string]map[string]*SourceUsage
