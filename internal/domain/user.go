package domain

import "time"

// 会员状态枚举
const (
	StatusOutsider = "outsider"
	StatusMember   = "member"
	StatusAdmin    = "admin"
)

type User struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName        string    `gorm:"size:64;not null" json:"firstName"`
	LastName         string    `gorm:"size:64;not null" json:"lastName"`
	Email            string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash     string    `gorm:"size:100;not null" json:"-"`
	MembershipStatus string    `gorm:"size:16;not null;default:outsider" json:"membershipStatus"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u User) FullName() string { return u.FirstName + " " + u.LastName }

// IsAdmin 派生标志，不落库
func (u User) IsAdmin() bool { return u.MembershipStatus == StatusAdmin }

func (u User) IsMember() bool {
	return u.MembershipStatus == StatusMember || u.MembershipStatus == StatusAdmin
}

// JoinClubPath 定向到本用户的入会口令页
func (u User) JoinClubPath() string { return "/users/join_club/" + u.ID }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(u *User) error
}
