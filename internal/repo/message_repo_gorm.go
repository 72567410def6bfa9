package repo

import (
	"gorm.io/gorm"

	"go-members-board/internal/domain"
)

type MessageRepo struct{ db *gorm.DB }

func NewMessageRepo(db *gorm.DB) *MessageRepo { return &MessageRepo{db: db} }

func (r *MessageRepo) Create(m *domain.Message) error { return r.db.Create(m).Error }

func (r *MessageRepo) ListWithAuthors() ([]domain.Message, error) {
	var ms []domain.Message
	// 不排序，保持插入自然序
	err := r.db.Preload("Author").Find(&ms).Error
	return ms, err
}

func (r *MessageRepo) DeleteByID(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Message{}).Error
}
