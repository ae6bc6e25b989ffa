package storage

import (
	"context"
)

// AuditStore 定义审计日志存储接口
// 所有存储后端实现（PostgreSQL、noop 等）都必须实现此接口
type AuditStore interface {
	// 审计日志操作
	SaveAuditLog(ctx context.Context, event *AuditEvent) error
	QueryAuditLogs(ctx context.Context, filter *AuditLogFilter) ([]*AuditEvent, error)
}
