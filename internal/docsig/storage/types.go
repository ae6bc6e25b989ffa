package storage

import (
	"time"
)

// AuditEvent 审计事件
type AuditEvent struct {
	Timestamp      time.Time
	EventType      string
	DocumentDigest string
	Operation      string
	Result         string
	Details        map[string]interface{}
	IPAddress      string
}

// AuditLogFilter 审计日志查询过滤器
type AuditLogFilter struct {
	StartTime      *time.Time
	EndTime        *time.Time
	DocumentDigest string
	EventType      string
	Operation      string
	Result         string
	Limit          int
	Offset         int
}
