package store

import (
	"testing"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PredeclaredCollections(t *testing.T) {
	s := New()

	require.NotNil(t, s.Posts())
	require.NotNil(t, s.Products())
	assert.Equal(t, []Kind{KindPosts, KindProducts}, s.Kinds())

	c, ok := Collection[models.Post](s, KindPosts)
	require.True(t, ok)
	assert.Same(t, s.Posts(), c)

	_, ok = Collection[models.Product](s, KindPosts)
	assert.False(t, ok, "type must match the registered kind")
}

func TestRegister(t *testing.T) {
	s := New()

	c, err := Register[models.Post](s, "drafts")
	require.NoError(t, err)

	again, err := Register[models.Post](s, "drafts")
	require.NoError(t, err)
	assert.Same(t, c, again)

	_, err = Register[models.Product](s, "drafts")
	require.ErrorIs(t, err, ErrKindConflict)
}

func TestStore_SessionIsCopied(t *testing.T) {
	s := New()
	user := &models.SessionUser{ID: 1, Username: "emilys"}

	s.SetSession(models.Session{User: user, Token: "tok"})
	user.Username = "mutated"

	got := s.Session()
	require.True(t, got.Valid())
	assert.Equal(t, "emilys", got.User.Username)

	got.User.Username = "again"
	assert.Equal(t, "emilys", s.Session().User.Username)

	s.ClearSession()
	assert.False(t, s.Session().Valid())
	assert.Nil(t, s.Session().User)
}
