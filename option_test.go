package urlparams

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionGet(t *testing.T) {
	v, ok := Some("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = None[string]().Get()
	assert.False(t, ok)
}

func TestOptionJSONRoundTrip(t *testing.T) {
	var o Option[int]
	require.NoError(t, json.Unmarshal([]byte("42"), &o))
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, "42", string(data))
}

func TestOptionSerializesInnerShape(t *testing.T) {
	got, err := ToString(struct {
		Filter Option[[]string] `json:"filter"`
	}{Filter: Some([]string{"a", "b"})})
	require.NoError(t, err)
	assert.Equal(t, "filter=a&filter=b", got)
}
