package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-members-board/internal/domain"
	"go-members-board/pkg/utils"
)

type fakeUsers struct {
	byEmail map[string]*domain.User
	err     error
}

func (f *fakeUsers) Create(u *domain.User) error { return nil }
func (f *fakeUsers) Update(u *domain.User) error { return nil }
func (f *fakeUsers) FindByID(id string) (*domain.User, error) {
	return nil, nil
}
func (f *fakeUsers) FindByEmail(email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func TestVerifyUnknownEmail(t *testing.T) {
	v := NewVerifier(&fakeUsers{byEmail: map[string]*domain.User{}})
	u, err := v.Verify("nobody@example.com", "secret1")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrIncorrectEmail)
}

func TestVerifyWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	v := NewVerifier(&fakeUsers{byEmail: map[string]*domain.User{
		"ada@example.com": {Email: "ada@example.com", PasswordHash: hash},
	}})

	u, err := v.Verify("ada@example.com", "wrong")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestVerifySuccess(t *testing.T) {
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	v := NewVerifier(&fakeUsers{byEmail: map[string]*domain.User{
		"ada@example.com": {ID: "u1", Email: "ada@example.com", PasswordHash: hash},
	}})

	u, err := v.Verify("ada@example.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
}

func TestVerifyRepoError(t *testing.T) {
	boom := errors.New("db down")
	v := NewVerifier(&fakeUsers{err: boom})
	_, err := v.Verify("ada@example.com", "secret1")
	assert.ErrorIs(t, err, boom)
}
