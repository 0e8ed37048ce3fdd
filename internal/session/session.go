package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Session expiration time
	sessionExpiration = 24 * time.Hour

	// Redis key prefix for per-session seen-question sets
	quizKeyPrefix = "quiz:"
)

// Manager tracks which questions a quiz session has already been served.
// Clients that cannot carry the previous_questions list themselves send a
// quiz_session token instead, and the server keeps the set here.
type Manager struct {
	redis *redis.Client
}

// NewManager creates a new session manager
func NewManager(redis *redis.Client) *Manager {
	return &Manager{redis: redis}
}

// SeenQuestions retrieves the ids already served to a session. An unknown
// session yields an empty slice.
func (m *Manager) SeenQuestions(ctx context.Context, sessionID string) ([]int, error) {
	key := quizKeyPrefix + sessionID
	members, err := m.redis.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get seen questions: %w", err)
	}

	ids := make([]int, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			return nil, fmt.Errorf("corrupt seen-question entry %q: %w", member, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// RecordQuestion marks a question as served to a session and refreshes the
// session's expiry.
func (m *Manager) RecordQuestion(ctx context.Context, sessionID string, questionID int) error {
	key := quizKeyPrefix + sessionID
	if err := m.redis.SAdd(ctx, key, questionID).Err(); err != nil {
		return fmt.Errorf("failed to record question: %w", err)
	}
	if err := m.redis.Expire(ctx, key, sessionExpiration).Err(); err != nil {
		return fmt.Errorf("failed to set session expiry: %w", err)
	}
	return nil
}

// ClearSession drops a session's seen-question set
func (m *Manager) ClearSession(ctx context.Context, sessionID string) error {
	key := quizKeyPrefix + sessionID
	if err := m.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
