package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return &Store{Path: filepath.Join(t.TempDir(), "urlparams.json")}
}

func TestStoreCreateAndRead(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Create("dev"))
	assert.Equal(t, "dev", store.Current.Name)

	// A fresh store over the same path sees the selection.
	again := &Store{Path: store.Path}
	require.NoError(t, again.Read(""))
	assert.Equal(t, "dev", again.Current.Name)
}

func TestStoreEmptySelection(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Read(""))
	assert.Equal(t, "", store.Current.Name)
	assert.ErrorIs(t, store.Use(""), ErrNoContext)
}

func TestStoreListSorted(t *testing.T) {
	store := newStore(t)
	for _, name := range []string{"prod", "dev", "staging"} {
		require.NoError(t, store.Create(name))
	}
	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "prod", "staging"}, names)
}

func TestStoreUseAndDelete(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Create("dev"))
	require.NoError(t, store.Create("prod"))
	require.NoError(t, store.Use("dev"))
	assert.Equal(t, "dev", store.Current.Name)

	require.NoError(t, store.Delete("dev"))
	require.NoError(t, store.Read(""))
	assert.Equal(t, "", store.Current.Name)

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"prod"}, names)
}

func TestStoreSaveParams(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Create("dev"))
	cfg := store.Current
	require.NoError(t, cfg.SetParams([]string{"region", "emea", "tier", "gold"}))
	require.NoError(t, store.Save(cfg))

	info, err := store.Info("dev")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"region": "emea", "tier": "gold"}, info.Params)
}

func TestConfigSet(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Set([]string{"baseurl", "https://example.com", "template", "curl"}))
	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, "curl", cfg.Template)

	assert.ErrorIs(t, cfg.Set([]string{"odd"}), ErrParametersNumber)
	assert.Error(t, cfg.Set([]string{"bogus", "x"}))
}
