package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"novalibrary/internal/adapters/persistence/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return st
}
