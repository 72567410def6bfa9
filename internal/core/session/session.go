// Package session 提供服务端会话：客户端只持有不透明 cookie 值，
// 身份每次请求由存储回查。
package session

import (
	"context"
	"time"

	"go-members-board/pkg/utils"
)

type Session struct {
	ID        string
	UserID    string // 未登录会话（仅 flash）为空
	Flash     string // 一次性提示，读后即清
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool { return now.After(s.ExpiresAt) }

// Store get/set/destroy 三件套，后端无关
type Store interface {
	// Get 未命中或已过期时返回 (nil, nil)
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Destroy(ctx context.Context, id string) error
}

func New(userID string, ttl time.Duration) *Session {
	return &Session{
		ID:        utils.NewID(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
}
