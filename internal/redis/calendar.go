package redis

import (
	"context"
	"fmt"

	"github.com/eventschedule/eventschedule-backend/internal/config"
	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const calendarPrefix = "calendar"

// CalendarCache stores rendered guest month payloads for a short TTL.
// Writes to an events schedule invalidate the owning subdomain wholesale.
type CalendarCache struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewCalendarCache(pool *redis.Pool, logger *zap.SugaredLogger) *CalendarCache {
	return &CalendarCache{pool: pool, logger: logger}
}

func calendarKey(subdomain, group string, year, month int, tz string) string {
	return fmt.Sprintf("%s:%s:%s:%d-%02d:%s", calendarPrefix, subdomain, group, year, month, tz)
}

func (c *CalendarCache) Get(ctx context.Context, subdomain, group string, year, month int, tz string) ([]byte, error) {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	defer c.closeConn(conn)

	payload, err := redis.Bytes(conn.Do("GET", calendarKey(subdomain, group, year, month, tz)))
	if err != nil {
		if err == redis.ErrNil {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("GET calendar payload: %w", err)
	}

	return payload, nil
}

func (c *CalendarCache) Set(ctx context.Context, subdomain, group string, year, month int, tz string, payload []byte) error {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer c.closeConn(conn)

	key := calendarKey(subdomain, group, year, month, tz)
	if _, err := conn.Do("SET", key, payload, "EX", int(config.CalendarCacheTTL().Seconds())); err != nil {
		return fmt.Errorf("SET calendar payload: %w", err)
	}

	return nil
}

// Invalidate drops every cached month for the subdomain.
func (c *CalendarCache) Invalidate(ctx context.Context, subdomain string) error {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer c.closeConn(conn)

	cursor := 0
	pattern := calendarPrefix + ":" + subdomain + ":*"
	for {
		values, err := redis.Values(conn.Do("SCAN", cursor, "MATCH", pattern, "COUNT", 100))
		if err != nil {
			return fmt.Errorf("SCAN calendar keys: %w", err)
		}

		var keys []string
		if _, err := redis.Scan(values, &cursor, &keys); err != nil {
			return fmt.Errorf("parse SCAN reply: %w", err)
		}

		for _, key := range keys {
			if _, err := conn.Do("DEL", key); err != nil {
				return fmt.Errorf("DEL calendar key: %w", err)
			}
		}

		if cursor == 0 {
			return nil
		}
	}
}

func (c *CalendarCache) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		c.logger.Errorw("Failed closing redis connection", "err", err)
	}
}
