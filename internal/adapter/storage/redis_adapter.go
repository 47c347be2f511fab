package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

const auditLogKey = "audit:log"

// clearLogScript reads the list length and deletes the key in one step so
// the returned count matches what was actually removed.
var clearLogScript = redis.NewScript(`
local key = KEYS[1]
local count = redis.call('LLEN', key)
redis.call('DEL', key)
return count
`)

// redisLogRecord is the JSON shape stored in the audit list.
type redisLogRecord struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	ServiceName  string    `json:"service_name"`
	Operation    string    `json:"operation"`
	CallerAddr   string    `json:"caller_addr"`
	Success      bool      `json:"success"`
	RequestData  string    `json:"request_data"`
	ResponseData string    `json:"response_data"`
	ErrorMessage string    `json:"error_message"`
}

// RedisAdapter keeps the audit log as a Redis list of JSON records,
// appended in arrival order.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) Append(ctx context.Context, entry domain.OperationLog) error {
	data, err := json.Marshal(recordFromDomain(entry))
	if err != nil {
		return fmt.Errorf("marshal log entry: %w", err)
	}
	if err := r.client.RPush(ctx, auditLogKey, data).Err(); err != nil {
		return fmt.Errorf("append log entry: %w", err)
	}
	return nil
}

func (r *RedisAdapter) List(ctx context.Context, filter domain.LogFilter) ([]domain.OperationLog, error) {
	raw, err := r.client.LRange(ctx, auditLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read log entries: %w", err)
	}

	var matched []domain.OperationLog
	for _, item := range raw {
		var record redisLogRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("decode log entry: %w", err)
		}
		entry := record.toDomain()
		if matchesFilter(entry, filter) {
			matched = append(matched, entry)
		}
	}
	return tailLimit(matched, filter.Limit), nil
}

func (r *RedisAdapter) Clear(ctx context.Context) (int64, error) {
	count, err := clearLogScript.Run(ctx, r.client, []string{auditLogKey}).Int64()
	if err != nil {
		return 0, fmt.Errorf("clear log entries: %w", err)
	}
	return count, nil
}

func recordFromDomain(entry domain.OperationLog) redisLogRecord {
	return redisLogRecord{
		ID:           entry.ID,
		Timestamp:    entry.Timestamp,
		ServiceName:  entry.ServiceName,
		Operation:    entry.Operation,
		CallerAddr:   entry.CallerAddr,
		Success:      entry.Success,
		RequestData:  entry.RequestData,
		ResponseData: entry.ResponseData,
		ErrorMessage: entry.ErrorMessage,
	}
}

func (rec redisLogRecord) toDomain() domain.OperationLog {
	return domain.OperationLog{
		ID:           rec.ID,
		Timestamp:    rec.Timestamp,
		ServiceName:  rec.ServiceName,
		Operation:    rec.Operation,
		CallerAddr:   rec.CallerAddr,
		Success:      rec.Success,
		RequestData:  rec.RequestData,
		ResponseData: rec.ResponseData,
		ErrorMessage: rec.ErrorMessage,
	}
}
