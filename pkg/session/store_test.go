package session_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowgraph/shadowgraph-go/pkg/session"
)

func sampleSession() *session.Session {
	return &session.Session{
		Token: "tok-abc",
		User: session.User{
			ID:    7,
			Email: "kai@example.com",
			Name:  "kai",
		},
	}
}

func TestFileStore(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a session record", func(t *testing.T) {
		t.Parallel()

		store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
		require.NoError(t, store.Save(sampleSession()))

		got, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "tok-abc", got.Token)
		assert.Equal(t, "kai@example.com", got.User.Email)
	})

	t.Run("missing record loads as anonymous", func(t *testing.T) {
		t.Parallel()

		store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
		got, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("creates parent directories on save", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "deeper", "session.json")
		store := session.NewFileStore(path)
		require.NoError(t, store.Save(sampleSession()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("corrupt record yields a typed error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{not-json"), 0o600))

		store := session.NewFileStore(path)
		_, err := store.Load()
		require.ErrorIs(t, err, session.ErrCorruptRecord)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		t.Parallel()

		store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
		require.NoError(t, store.Save(sampleSession()))
		require.NoError(t, store.Clear())
		require.NoError(t, store.Clear())

		got, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestDefaultSessionPath(t *testing.T) {
	t.Run("honors the env override", func(t *testing.T) {
		t.Setenv("SHADOWGRAPH_SESSION_FILE", "/tmp/custom-session.json")

		path, err := session.DefaultSessionPath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom-session.json", path)
	})

	t.Run("falls back to the user config dir", func(t *testing.T) {
		t.Setenv("SHADOWGRAPH_SESSION_FILE", "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		path, err := session.DefaultSessionPath()
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(path, filepath.Join("shadowgraph", "session.json")), path)
	})
}

func TestMemoryStoreClones(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	original := sampleSession()
	require.NoError(t, store.Save(original))

	original.Token = "mutated"

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", got.Token)
}
