package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserDerived(t *testing.T) {
	u := User{ID: "abc", FirstName: "A", LastName: "B", MembershipStatus: StatusOutsider}

	assert.Equal(t, "A B", u.FullName())
	assert.False(t, u.IsAdmin())
	assert.False(t, u.IsMember())
	assert.Equal(t, "/users/join_club/abc", u.JoinClubPath())

	u.MembershipStatus = StatusMember
	assert.True(t, u.IsMember())
	assert.False(t, u.IsAdmin())

	u.MembershipStatus = StatusAdmin
	assert.True(t, u.IsAdmin())
	assert.True(t, u.IsMember())
}

func TestMessageDerived(t *testing.T) {
	created := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	m := Message{ID: "m1", CreatedAt: created}

	assert.Equal(t, "Mar 9, 2024", m.CreatedAtDisplay())
	assert.Equal(t, "-", m.UpdatedAtDisplay())
	assert.Equal(t, "/messages/delete/m1", m.DeletePath())

	updated := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	m.UpdatedAt = &updated
	assert.Equal(t, "Dec 31, 2024", m.UpdatedAtDisplay())
}
