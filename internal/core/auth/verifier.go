package auth

import (
	"errors"

	"go-members-board/internal/domain"
	"go-members-board/pkg/utils"
)

// 登录失败原因，回显到登录页
var (
	ErrIncorrectEmail    = errors.New("Incorrect email")
	ErrIncorrectPassword = errors.New("Incorrect password")
)

// Verifier 按邮箱+密码核验身份，构造一次、显式注入路由层
type Verifier struct {
	Users domain.UserRepository
}

func NewVerifier(users domain.UserRepository) *Verifier {
	return &Verifier{Users: users}
}

// Verify 查无此邮箱 → ErrIncorrectEmail；哈希不匹配 → ErrIncorrectPassword
func (v *Verifier) Verify(email, password string) (*domain.User, error) {
	u, err := v.Users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrIncorrectEmail
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrIncorrectPassword
	}
	return u, nil
}
