package domain

import "time"

// OperationLog is one audit record describing a single remote call.
// ID and Timestamp are assigned by the audit service when the record
// is accepted.
type OperationLog struct {
	ID           string
	Timestamp    time.Time
	ServiceName  string
	Operation    string
	CallerAddr   string
	Success      bool
	RequestData  string
	ResponseData string
	ErrorMessage string
}

// LogFilter selects audit records. Empty ServiceName/Operation match
// everything; Limit > 0 keeps only the last Limit matching records, in
// chronological order.
type LogFilter struct {
	ServiceName string
	Operation   string
	Limit       int
}

type ServiceStats struct {
	ServiceName string
	Total       int64
	Success     int64
	Failed      int64
	SuccessRate float64
}

type OperationStats struct {
	Operation   string
	Total       int64
	Success     int64
	Failed      int64
	SuccessRate float64
}

// AuditStats aggregates the whole audit log. Breakdowns are ordered by
// first appearance in the log. SuccessRate is a percentage, 0 when the
// log is empty.
type AuditStats struct {
	TotalOperations      int64
	SuccessfulOperations int64
	FailedOperations     int64
	SuccessRate          float64
	ServiceStats         []ServiceStats
	OperationStats       []OperationStats
}
