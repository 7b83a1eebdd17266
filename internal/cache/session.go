package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// sessionState 服务端会话内容
type sessionState struct {
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Redis 未启用时的本地会话表（单实例开发模式）
var (
	memSessionsMu sync.RWMutex
	memSessions   = map[string]sessionState{}
)

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// SaveSession 保存会话
func SaveSession(ctx context.Context, token string, userID uint, email string, ttl time.Duration) error {
	state := sessionState{
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(ttl),
	}
	if Enabled() {
		return SetJSON(ctx, sessionKey(token), state, ttl)
	}
	memSessionsMu.Lock()
	defer memSessionsMu.Unlock()
	memSessions[token] = state
	return nil
}

// ResolveSession 解析会话，返回用户ID与邮箱；不存在或过期时 ok=false
func ResolveSession(ctx context.Context, token string) (uint, string, bool, error) {
	if token == "" {
		return 0, "", false, nil
	}
	if Enabled() {
		var state sessionState
		hit, err := GetJSON(ctx, sessionKey(token), &state)
		if err != nil || !hit {
			return 0, "", false, err
		}
		return state.UserID, state.Email, true, nil
	}
	memSessionsMu.RLock()
	state, ok := memSessions[token]
	memSessionsMu.RUnlock()
	if !ok {
		return 0, "", false, nil
	}
	if time.Now().After(state.ExpiresAt) {
		memSessionsMu.Lock()
		delete(memSessions, token)
		memSessionsMu.Unlock()
		return 0, "", false, nil
	}
	return state.UserID, state.Email, true, nil
}

// DeleteSession 删除会话
func DeleteSession(ctx context.Context, token string) error {
	if Enabled() {
		return Del(ctx, sessionKey(token))
	}
	memSessionsMu.Lock()
	defer memSessionsMu.Unlock()
	delete(memSessions, token)
	return nil
}
