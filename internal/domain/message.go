package domain

import "time"

type Message struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Text      string     `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`

	AuthorID string `gorm:"size:36;not null;index" json:"authorId"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author"`
}

func (Message) TableName() string { return "messages" }

// 展示用时间格式，仿 luxon DATE_MED
const displayLayout = "Jan 2, 2006"

func (m Message) CreatedAtDisplay() string { return m.CreatedAt.Format(displayLayout) }

func (m Message) UpdatedAtDisplay() string {
	if m.UpdatedAt == nil {
		return "-"
	}
	return m.UpdatedAt.Format(displayLayout)
}

func (m Message) DeletePath() string { return "/messages/delete/" + m.ID }

type MessageRepository interface {
	Create(m *Message) error
	// ListWithAuthors 按插入顺序返回全部留言，作者已联表
	ListWithAuthors() ([]Message, error)
	DeleteByID(id string) error
}
