package server

import (
	"time"
)

const TopicAuditLogs = "ordermanagement.audit_logs"

type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	Actor      string    `json:"actor,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
}
