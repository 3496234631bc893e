package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "req.json", `{"id": "some_id", "num": 42}`)
	value, err := Load(path, nil, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": "some_id", "num": float64(42)}, value)
}

func TestLoadJSONInvalid(t *testing.T) {
	path := writeFile(t, "bad.json", `{"id": `)
	_, err := Load(path, nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
}

func TestLoadJsonnet(t *testing.T) {
	path := writeFile(t, "req.jsonnet", `{ id: std.extVar("id"), filter: ["a", "b"] }`)
	value, err := Load(path, map[string]string{"id": "from_param"}, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"id":     "from_param",
		"filter": []interface{}{"a", "b"},
	}, value)
}

func TestLoadStarlark(t *testing.T) {
	path := writeFile(t, "req.star", `req = {"id": "some_id"}`)
	value, err := Load(path, nil, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": "some_id"}, value)
}

func TestLoadStarlarkCallable(t *testing.T) {
	path := writeFile(t, "req.star", "def req(params):\n    return {\"id\": params[\"id\"]}\n")
	value, err := Load(path, map[string]string{"id": "called"}, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": "called"}, value)
}

func TestLoadStarlarkMissingGlobal(t *testing.T) {
	path := writeFile(t, "other.star", `data = {}`)
	_, err := Load(path, nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "global variable other")
}

func TestLoadCue(t *testing.T) {
	path := writeFile(t, "req.cue", `{id: params.id, num: 42}`)
	value, err := Load(path, map[string]string{"id": "from_cue"}, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": "from_cue", "num": float64(42)}, value)
}
