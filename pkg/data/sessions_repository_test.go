package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsRepository(t *testing.T) {
	repo := NewSessionsRepository(SessionTTL(time.Minute))

	_, ok := repo.Find("")
	assert.False(t, ok)
	_, ok = repo.Find("unknown")
	assert.False(t, ok)

	created := repo.Create()
	require.NotEmpty(t, created.ID)

	found, ok := repo.Find(created.ID)
	require.True(t, ok)
	assert.Same(t, created, found)

	same, isNew := repo.FindOrCreate(created.ID)
	assert.False(t, isNew)
	assert.Same(t, created, same)

	other, isNew := repo.FindOrCreate("expired-or-forged")
	assert.True(t, isNew)
	assert.NotEqual(t, created.ID, other.ID)
	assert.Equal(t, 2, repo.Count())
}

func TestSessionsRepositoryExpiry(t *testing.T) {
	repo := NewSessionsRepository(SessionTTL(20 * time.Millisecond))
	session := repo.Create()

	time.Sleep(50 * time.Millisecond)
	_, ok := repo.Find(session.ID)
	assert.False(t, ok)
}
