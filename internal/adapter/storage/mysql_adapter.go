package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

const createLogTable = `
CREATE TABLE IF NOT EXISTS operation_logs (
	seq BIGINT AUTO_INCREMENT PRIMARY KEY,
	id CHAR(36) NOT NULL,
	ts DATETIME(6) NOT NULL,
	service_name VARCHAR(128) NOT NULL,
	operation VARCHAR(64) NOT NULL,
	caller_addr VARCHAR(128) NOT NULL DEFAULT '',
	success BOOLEAN NOT NULL,
	request_data TEXT,
	response_data TEXT,
	error_message TEXT
)`

// MySQLAdapter keeps the audit log in an operation_logs table. The
// auto-increment seq column preserves arrival order across connections.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// EnsureSchema creates the operation_logs table if it does not exist yet.
// The logger daemon calls this once at startup.
func (m *MySQLAdapter) EnsureSchema(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createLogTable); err != nil {
		return fmt.Errorf("create operation_logs table: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) Append(ctx context.Context, entry domain.OperationLog) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO operation_logs
			(id, ts, service_name, operation, caller_addr, success, request_data, response_data, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Timestamp, entry.ServiceName, entry.Operation,
		entry.CallerAddr, entry.Success, entry.RequestData, entry.ResponseData,
		entry.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) List(ctx context.Context, filter domain.LogFilter) ([]domain.OperationLog, error) {
	where := ""
	var args []interface{}
	if filter.ServiceName != "" {
		where += " AND service_name = ?"
		args = append(args, filter.ServiceName)
	}
	if filter.Operation != "" {
		where += " AND operation = ?"
		args = append(args, filter.Operation)
	}

	base := `
		SELECT seq, id, ts, service_name, operation, caller_addr, success,
			request_data, response_data, error_message
		FROM operation_logs WHERE 1=1` + where

	query := base + ` ORDER BY seq ASC`
	if filter.Limit > 0 {
		// Last N entries, still in chronological order.
		query = `SELECT seq, id, ts, service_name, operation, caller_addr, success,
			request_data, response_data, error_message
		FROM (` + base + ` ORDER BY seq DESC LIMIT ?) AS tail ORDER BY seq ASC`
		args = append(args, filter.Limit)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query log entries: %w", err)
	}
	defer rows.Close()

	var logs []domain.OperationLog
	for rows.Next() {
		var seq int64
		var entry domain.OperationLog
		if err := rows.Scan(&seq, &entry.ID, &entry.Timestamp, &entry.ServiceName,
			&entry.Operation, &entry.CallerAddr, &entry.Success,
			&entry.RequestData, &entry.ResponseData, &entry.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate log entries: %w", err)
	}
	return logs, nil
}

func (m *MySQLAdapter) Clear(ctx context.Context) (int64, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var count int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM operation_logs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count log entries: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM operation_logs`); err != nil {
		return 0, fmt.Errorf("delete log entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return count, nil
}
