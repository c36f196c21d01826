package sqlitekv

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SiddDevCS/Dev-Well/kv"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "devwell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Get(ctx, "missing")
	require.True(t, errors.Is(err, kv.ErrNotFound))

	require.NoError(t, s.Set(ctx, "user_settings", `{"dailyGoal":3}`))
	require.NoError(t, s.Set(ctx, "user_settings", `{"dailyGoal":5}`))

	v, err := s.Get(ctx, "user_settings")
	require.NoError(t, err)
	require.Equal(t, `{"dailyGoal":5}`, v)

	require.NoError(t, s.HealthCheck(ctx))
}

func TestStore_RemoveAndKeys(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, k := range []string{"a", "b", "app_opens_2024-01-01"} {
		require.NoError(t, s.Set(ctx, k, "v"))
	}
	require.NoError(t, s.Remove(ctx)) // no-op
	require.NoError(t, s.Remove(ctx, "b", "absent"))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	sort.Strings(keys)
	require.Equal(t, []string{"a", "app_opens_2024-01-01"}, keys)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "devwell.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "last_app_open", "2024-01-01"))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	v, err := s2.Get(ctx, "last_app_open")
	require.NoError(t, err)
	require.Equal(t, "2024-01-01", v)
}
