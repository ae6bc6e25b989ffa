package storage

import (
	"context"
)

// noopStore 是一个空的 AuditStore 实现，用于审计持久化未启用时通过初始化检查
type noopStore struct{}

// NewNoopStore 创建不做任何持久化的审计存储
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewNoopStore() AuditStore {
	return &noopStore{}
}

func (n *noopStore) SaveAuditLog(_ context.Context, _ *AuditEvent) error {
	return nil
}

func (n *noopStore) QueryAuditLogs(_ context.Context, _ *AuditLogFilter) ([]*AuditEvent, error) {
	return []*AuditEvent{}, nil
}
