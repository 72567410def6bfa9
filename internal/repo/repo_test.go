package repo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-members-board/internal/core/database"
	"go-members-board/internal/domain"
	"go-members-board/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := database.New(database.Opts{Driver: "sqlite", DSN: dsn, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Message{}))
	return db
}

func seedUser(t *testing.T, users *UserRepo, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:               utils.NewID(),
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Email:            email,
		PasswordHash:     "x",
		MembershipStatus: domain.StatusOutsider,
	}
	require.NoError(t, users.Create(u))
	return u
}

func TestUserRepoFindByEmail(t *testing.T) {
	users := NewUserRepo(newTestDB(t))
	seedUser(t, users, "ada@example.com")

	got, err := users.FindByEmail("ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.FirstName)

	missing, err := users.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepoFindByID(t *testing.T) {
	users := NewUserRepo(newTestDB(t))
	u := seedUser(t, users, "ada@example.com")

	got, err := users.FindByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.Email, got.Email)

	missing, err := users.FindByID("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepoEmailUnique(t *testing.T) {
	users := NewUserRepo(newTestDB(t))
	seedUser(t, users, "ada@example.com")

	dup := &domain.User{
		ID:               utils.NewID(),
		FirstName:        "Ada",
		LastName:         "Again",
		Email:            "ada@example.com",
		PasswordHash:     "x",
		MembershipStatus: domain.StatusOutsider,
	}
	err := users.Create(dup)
	require.Error(t, err)
	assert.True(t, IsDupKey(err), "expected duplicate-key error, got %v", err)
}

func TestUserRepoUpdateStatus(t *testing.T) {
	users := NewUserRepo(newTestDB(t))
	u := seedUser(t, users, "ada@example.com")

	u.MembershipStatus = domain.StatusMember
	require.NoError(t, users.Update(u))

	got, err := users.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusMember, got.MembershipStatus)
}

func TestMessageRepoListWithAuthors(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	messages := NewMessageRepo(db)
	u := seedUser(t, users, "ada@example.com")

	for _, title := range []string{"first", "second"} {
		require.NoError(t, messages.Create(&domain.Message{
			ID:        utils.NewID(),
			Title:     title,
			Text:      "hello",
			CreatedAt: time.Now(),
			AuthorID:  u.ID,
		}))
	}

	ms, err := messages.ListWithAuthors()
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, "first", ms[0].Title)
	require.NotNil(t, ms[0].Author)
	assert.Equal(t, "ada@example.com", ms[0].Author.Email)
}

func TestMessageRepoDeleteByID(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	messages := NewMessageRepo(db)
	u := seedUser(t, users, "ada@example.com")

	m := &domain.Message{ID: utils.NewID(), Title: "t", Text: "x", CreatedAt: time.Now(), AuthorID: u.ID}
	require.NoError(t, messages.Create(m))

	require.NoError(t, messages.DeleteByID(m.ID))
	ms, err := messages.ListWithAuthors()
	require.NoError(t, err)
	assert.Empty(t, ms)

	// 删除不存在的 id 不报错
	require.NoError(t, messages.DeleteByID("ghost"))
}

func TestIsDupKey(t *testing.T) {
	assert.False(t, IsDupKey(nil))
	assert.False(t, IsDupKey(gorm.ErrRecordNotFound))
}
