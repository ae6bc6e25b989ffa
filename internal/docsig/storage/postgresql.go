package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"

	"github.com/aarondl/null/v8"
	"github.com/pkg/errors"
)

// postgresqlStore 实现 PostgreSQL 存储后端
type postgresqlStore struct {
	db *sql.DB
}

// NewPostgreSQLStore 创建新的 PostgreSQL 存储后端
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewPostgreSQLStore(db *sql.DB) AuditStore {
	return &postgresqlStore{db: db}
}

// SaveAuditLog 保存审计日志
func (s *postgresqlStore) SaveAuditLog(ctx context.Context, event *AuditEvent) error {
	var detailsJSON null.JSON
	if event.Details != nil {
		detailsBytes, err := json.Marshal(event.Details)
		if err != nil {
			return errors.Wrap(err, "failed to marshal audit log details")
		}
		detailsJSON = null.JSONFrom(detailsBytes)
	}

	var documentDigest null.String
	if event.DocumentDigest != "" {
		documentDigest = null.StringFrom(event.DocumentDigest)
	}

	var ipAddress null.String
	if event.IPAddress != "" {
		ipAddress = null.StringFrom(event.IPAddress)
	}

	query := `
		INSERT INTO audit_logs (timestamp, event_type, document_digest, operation, result, details, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		event.Timestamp,
		event.EventType,
		documentDigest,
		event.Operation,
		event.Result,
		detailsJSON,
		ipAddress,
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert audit log")
	}

	return nil
}

// QueryAuditLogs 查询审计日志
func (s *postgresqlStore) QueryAuditLogs(ctx context.Context, filter *AuditLogFilter) ([]*AuditEvent, error) {
	query := `
		SELECT timestamp, event_type, document_digest, operation, result, details, ip_address
		FROM audit_logs
		WHERE 1 = 1
	`
	args := make([]interface{}, 0)

	//nolint:nestif // Filter building requires nested conditionals
	if filter != nil {
		if filter.StartTime != nil {
			args = append(args, *filter.StartTime)
			query += " AND timestamp >= $" + strconv.Itoa(len(args))
		}
		if filter.EndTime != nil {
			args = append(args, *filter.EndTime)
			query += " AND timestamp <= $" + strconv.Itoa(len(args))
		}
		if filter.DocumentDigest != "" {
			args = append(args, filter.DocumentDigest)
			query += " AND document_digest = $" + strconv.Itoa(len(args))
		}
		if filter.EventType != "" {
			args = append(args, filter.EventType)
			query += " AND event_type = $" + strconv.Itoa(len(args))
		}
		if filter.Operation != "" {
			args = append(args, filter.Operation)
			query += " AND operation = $" + strconv.Itoa(len(args))
		}
		if filter.Result != "" {
			args = append(args, filter.Result)
			query += " AND result = $" + strconv.Itoa(len(args))
		}
	}

	// 排序和分页
	query += " ORDER BY timestamp DESC"
	if filter != nil {
		if filter.Limit > 0 {
			args = append(args, filter.Limit)
			query += " LIMIT $" + strconv.Itoa(len(args))
		}
		if filter.Offset > 0 {
			args = append(args, filter.Offset)
			query += " OFFSET $" + strconv.Itoa(len(args))
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query audit logs")
	}
	defer rows.Close()

	result := make([]*AuditEvent, 0)
	for rows.Next() {
		var event AuditEvent
		var documentDigest null.String
		var detailsJSON null.JSON
		var ipAddress null.String

		if err := rows.Scan(
			&event.Timestamp,
			&event.EventType,
			&documentDigest,
			&event.Operation,
			&event.Result,
			&detailsJSON,
			&ipAddress,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan audit log row")
		}

		event.DocumentDigest = documentDigest.String
		event.IPAddress = ipAddress.String

		if detailsJSON.Valid {
			var details map[string]interface{}
			if err := json.Unmarshal(detailsJSON.JSON, &details); err == nil {
				event.Details = details
			}
		}

		result = append(result, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate audit log rows")
	}

	return result, nil
}
