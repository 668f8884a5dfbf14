package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novalibrary/internal/adapters/persistence/models"
)

func TestOpen_CreatesDefaultStructure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "db.json")

	st, err := Open(path)
	require.NoError(t, err)

	err = st.View(func(d *Data) error {
		assert.NotNil(t, d.Users)
		assert.NotNil(t, d.Tokens)
		assert.NotNil(t, d.Wishlists)
		assert.NotNil(t, d.Carts)
		assert.NotNil(t, d.Logs)
		return nil
	})
	require.NoError(t, err)

	// Open writes the default structure back immediately.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"users"`)
	assert.Contains(t, string(raw), `"logs"`)
}

func TestOpen_UpgradesFileMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	// An older file written before the logs collection existed.
	older := `{"users":[{"id":"u1","name":"A","email":"a@x.com","passwordHash":"h","role":"reader","createdAt":"2024-01-02T15:04:05Z"}],"tokens":[]}`
	require.NoError(t, os.WriteFile(path, []byte(older), 0o644))

	st, err := Open(path)
	require.NoError(t, err)

	err = st.View(func(d *Data) error {
		require.Len(t, d.Users, 1)
		assert.Equal(t, "u1", d.Users[0].ID)
		assert.NotNil(t, d.Wishlists)
		assert.NotNil(t, d.Carts)
		assert.NotNil(t, d.Logs)
		return nil
	})
	require.NoError(t, err)
}

func TestOpen_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.View(func(d *Data) error {
		assert.Empty(t, d.Users)
		return nil
	}))
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
}

func TestUpdate_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	st, err := Open(path)
	require.NoError(t, err)

	err = st.Update(func(d *Data) error {
		d.Users = append(d.Users, &models.User{
			ID:        "u1",
			Name:      "Alice",
			Email:     "alice@x.com",
			Role:      models.RoleReader,
			CreatedAt: time.Now().UTC(),
		})
		return nil
	})
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, reopened.View(func(d *Data) error {
		require.Len(t, d.Users, 1)
		assert.Equal(t, "alice@x.com", d.Users[0].Email)
		return nil
	}))
}

func TestUpdate_ErrorAbortsPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	st, err := Open(path)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = st.Update(func(d *Data) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestUpdate_SerializesConcurrentMutations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	st, err := Open(path)
	require.NoError(t, err)

	const writers = 8
	const perWriter = 10

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = st.Update(func(d *Data) error {
					d.Tokens = append(d.Tokens, &models.RefreshToken{UserID: "u1", RefreshToken: "t"})
					return nil
				})
			}
		}()
	}
	wg.Wait()

	require.NoError(t, st.View(func(d *Data) error {
		assert.Len(t, d.Tokens, writers*perWriter)
		return nil
	}))
}
