package models

import (
	"encoding/json"
	"time"
)

// SystemLog is an append-only audit record of a notable action.
type SystemLog struct {
	ID        int64           `json:"id"`
	Action    string          `json:"action"`
	UserID    *int64          `json:"-"`
	IPAddress string          `json:"ipAddress"`
	Metadata  json.RawMessage `json:"metaData"`

	// User is populated only when the actor was loaded with the log.
	User *User `json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuditEntry describes an action to be recorded in the audit trail.
// Metadata is marshalled to JSON when the entry is enqueued.
type AuditEntry struct {
	Action    string
	UserID    int64
	IPAddress string
	Metadata  any
}

// AuditJob is a queued AuditEntry waiting for delivery into system_logs.
// It is not delivered before NotBefore.
type AuditJob struct {
	ID        int64
	Action    string
	UserID    *int64
	IPAddress string
	Metadata  json.RawMessage
	NotBefore time.Time
	Attempts  int
	CreatedAt time.Time
}

// SystemLog converts the job into the log row it will become.
func (j AuditJob) SystemLog() SystemLog {
	return SystemLog{
		Action:    j.Action,
		UserID:    j.UserID,
		IPAddress: j.IPAddress,
		Metadata:  j.Metadata,
	}
}

// DispatchReport summarises one pass of the audit dispatcher.
type DispatchReport struct {
	Due         int
	Delivered   int
	Rescheduled int
	Dropped     int
}
