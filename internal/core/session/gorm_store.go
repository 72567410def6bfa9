package session

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type record struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"size:36;index"`
	Flash     string    `gorm:"size:255"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (record) TableName() string { return "sessions" }

// GormStore sessions 表承载会话，与业务数据同库
type GormStore struct{ db *gorm.DB }

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) Migrate() error { return s.db.AutoMigrate(&record{}) }

func (s *GormStore) Get(ctx context.Context, id string) (*Session, error) {
	var r record
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sess := &Session{ID: r.ID, UserID: r.UserID, Flash: r.Flash, ExpiresAt: r.ExpiresAt}
	if sess.Expired(time.Now()) {
		// 过期即清理
		_ = s.Destroy(ctx, id)
		return nil, nil
	}
	return sess, nil
}

func (s *GormStore) Save(ctx context.Context, sess *Session) error {
	r := record{ID: sess.ID, UserID: sess.UserID, Flash: sess.Flash, ExpiresAt: sess.ExpiresAt}
	return s.db.WithContext(ctx).Save(&r).Error
}

func (s *GormStore) Destroy(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&record{}).Error
}
