package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/config"
	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/gomodule/redigo/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

const (
	sessionPrefix   = "session"
	sessionIndexKey = "sessions_by_expiry"
)

// SessionRepository keeps refresh sessions with a sliding expiration.
type SessionRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewSessionRepository(pool *redis.Pool, logger *zap.SugaredLogger) *SessionRepository {
	return &SessionRepository{pool: pool, logger: logger}
}

func sessionKey(token string) string {
	return sessionPrefix + ":" + token
}

func (r *SessionRepository) Add(ctx context.Context, token string, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	res, err := redis.String(conn.Do("SET", sessionKey(token), id, "EX", int(config.SessionTTl().Seconds()), "NX"))
	if err != nil {
		if err == redis.ErrNil {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("SET session: %w", err)
	}
	if res != "OK" {
		return model.ErrAlreadyExists
	}

	expiry := time.Now().Add(config.SessionTTl()).Unix()
	if _, err := conn.Do("ZADD", sessionIndexKey, expiry, token); err != nil {
		return fmt.Errorf("ZADD session index: %w", err)
	}

	return nil
}

func (r *SessionRepository) Get(ctx context.Context, token string) (int64, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	id, err := redis.Int64(conn.Do("GET", sessionKey(token)))
	if err != nil {
		if err == redis.ErrNil {
			return 0, model.ErrNoRecord
		}
		return 0, fmt.Errorf("GET session: %w", err)
	}

	return id, nil
}

// Refresh atomically replaces an old session token with a new one keeping
// the same user id.
func (r *SessionRepository) Refresh(ctx context.Context, oldToken, newToken string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	id, err := redis.Int64(conn.Do("GET", sessionKey(oldToken)))
	if err != nil {
		if err == redis.ErrNil {
			return model.ErrNoRecord
		}
		return fmt.Errorf("GET session: %w", err)
	}

	if err := conn.Send("MULTI"); err != nil {
		return fmt.Errorf("MULTI: %w", err)
	}
	if err := conn.Send("DEL", sessionKey(oldToken)); err != nil {
		return fmt.Errorf("DEL session: %w", err)
	}
	if err := conn.Send("SET", sessionKey(newToken), id, "EX", int(config.SessionTTl().Seconds())); err != nil {
		return fmt.Errorf("SET session: %w", err)
	}
	if err := conn.Send("ZREM", sessionIndexKey, oldToken); err != nil {
		return fmt.Errorf("ZREM session index: %w", err)
	}
	expiry := time.Now().Add(config.SessionTTl()).Unix()
	if err := conn.Send("ZADD", sessionIndexKey, expiry, newToken); err != nil {
		return fmt.Errorf("ZADD session index: %w", err)
	}
	if _, err := conn.Do("EXEC"); err != nil {
		return fmt.Errorf("EXEC: %w", err)
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	n, err := redis.Int(conn.Do("DEL", sessionKey(token)))
	if err != nil {
		return fmt.Errorf("DEL session: %w", err)
	}
	if n == 0 {
		return model.ErrNoRecord
	}

	if _, err := conn.Do("ZREM", sessionIndexKey, token); err != nil {
		return fmt.Errorf("ZREM session index: %w", err)
	}

	return nil
}

// DeleteExpired sweeps index entries whose sessions already expired. The
// session keys themselves are dropped by redis via their TTL.
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	if _, err := conn.Do("ZREMRANGEBYSCORE", sessionIndexKey, "-inf", time.Now().Unix()); err != nil {
		return fmt.Errorf("ZREMRANGEBYSCORE session index: %w", err)
	}

	return nil
}

// StartCleanup runs the sweep every cleanup period until shutdown.
func (r *SessionRepository) StartCleanup() {
	ticker := time.NewTicker(config.SessionCleanupPeriod())
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := r.DeleteExpired(context.Background()); err != nil {
					r.logger.Errorw("Failed cleaning up expired sessions", "err", err)
				}
			case <-done:
				return
			}
		}
	}()

	closer.Bind(func() {
		ticker.Stop()
		close(done)
	})
}

func (r *SessionRepository) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		r.logger.Errorw("Failed closing redis connection", "err", err)
	}
}
