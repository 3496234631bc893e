package urlparams

import (
	"net/url"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchRequest struct {
	ID     string      `json:"id"`
	Filter []string    `json:"filter"`
	Option *string     `json:"option"`
	Num    Option[int] `json:"num"`
}

func TestSearchRequest(t *testing.T) {
	got, err := ToString(searchRequest{
		ID:     "some_id",
		Filter: []string{"filter1", "filter2"},
		Option: nil,
		Num:    Some(42),
	})
	require.NoError(t, err)
	assert.Equal(t, "id=some_id&filter=filter1&filter=filter2&num=42", got)
}

// tupleField serializes a single field holding the tuple
// (42, "hello", 3.14).
type tupleField struct{}

func (tupleField) SerializeParams(s Serializer) error {
	scope, err := s.SerializeStruct("tupleField", 1)
	if err != nil {
		return err
	}
	if err := scope.SerializeField("field", tupleValue{}); err != nil {
		return err
	}
	return scope.End()
}

type tupleValue struct{}

func (tupleValue) SerializeParams(s Serializer) error {
	scope, err := s.SerializeTuple(3)
	if err != nil {
		return err
	}
	for _, v := range []interface{}{42, "hello", 3.14} {
		if err := scope.SerializeElement(Value(v)); err != nil {
			return err
		}
	}
	return scope.End()
}

func TestTupleRepeatsKey(t *testing.T) {
	got, err := ToString(tupleField{})
	require.NoError(t, err)
	assert.Equal(t, "field=42&field=hello&field=3.14", got)
}

func TestStringEscaped(t *testing.T) {
	got, err := ToString(struct {
		Field string `json:"field"`
	}{Field: "{some=weird&param}"})
	require.NoError(t, err)
	assert.Equal(t, "field=%7Bsome%3Dweird%26param%7D", got)

	// A standard percent-decoder restores the original content.
	values, err := url.ParseQuery(got)
	require.NoError(t, err)
	assert.Equal(t, "{some=weird&param}", values.Get("field"))
}

func TestSpaceEncodesAsPlus(t *testing.T) {
	got, err := ToString(struct {
		Film string `json:"film"`
	}{Film: "Fight Club"})
	require.NoError(t, err)
	assert.Equal(t, "film=Fight+Club", got)
}

type complexPart struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

type flatRequest struct {
	X int `json:"x"`
	*complexPart
}

func TestFlattenedStruct(t *testing.T) {
	got, err := ToString(flatRequest{X: 1, complexPart: &complexPart{Real: 0.0, Imag: 1.0}})
	require.NoError(t, err)
	assert.Equal(t, "x=1&real=0&imag=1", got)
}

func TestFlattenedAbsent(t *testing.T) {
	got, err := ToString(flatRequest{X: 1})
	require.NoError(t, err)
	assert.Equal(t, "x=1", got)
}

type plainRecord struct {
	Username string `json:"username"`
}

func TestTopLevelStruct(t *testing.T) {
	got, err := ToString(plainRecord{Username: "boxdot"})
	require.NoError(t, err)
	assert.Equal(t, "username=boxdot", got)
}

func TestNestedStructRejected(t *testing.T) {
	_, err := ToString(struct {
		Inner plainRecord `json:"inner"`
	}{Inner: plainRecord{Username: "boxdot"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestTopLevelScalarRejected(t *testing.T) {
	for _, v := range []interface{}{42, "bare", 3.14, true} {
		_, err := ToString(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupported)
		assert.Contains(t, err.Error(), "top level value")
	}
}

func TestBytesAsRepeatedIntegers(t *testing.T) {
	got, err := ToString(struct {
		Data []byte `json:"data"`
	}{Data: []byte{0, 127, 255}})
	require.NoError(t, err)
	assert.Equal(t, "data=0&data=127&data=255", got)
}

type genre int

const (
	horror genre = iota
	drama
)

func (g genre) SerializeParams(s Serializer) error {
	names := [...]string{"Horror", "Drama"}
	return s.SerializeUnitVariant("genre", names[g])
}

func TestUnitVariantAsName(t *testing.T) {
	got, err := ToString(struct {
		Select genre   `json:"select"`
		Multi  []genre `json:"multi"`
	}{Select: horror, Multi: []genre{horror, drama}})
	require.NoError(t, err)
	assert.Equal(t, "select=Horror&multi=Horror&multi=Drama", got)
}

type wrapped struct{}

func (wrapped) SerializeParams(s Serializer) error {
	scope, err := s.SerializeStruct("wrapped", 1)
	if err != nil {
		return err
	}
	if err := scope.SerializeField("field", newtypeValue{}); err != nil {
		return err
	}
	return scope.End()
}

type newtypeValue struct{}

func (newtypeValue) SerializeParams(s Serializer) error {
	return s.SerializeNewtypeStruct("NewType", Value(42))
}

func TestNewtypeTransparent(t *testing.T) {
	got, err := ToString(wrapped{})
	require.NoError(t, err)
	assert.Equal(t, "field=42", got)
}

func TestTopLevelMapSorted(t *testing.T) {
	got, err := ToString(map[string]string{"b": "2", "a": "1", "c": "3"})
	require.NoError(t, err)
	assert.Equal(t, "a=1&b=2&c=3", got)
}

func TestNonStringMapKeyRejected(t *testing.T) {
	_, err := ToString(map[int]string{1: "one"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestEmptyStruct(t *testing.T) {
	got, err := ToString(struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestIdempotent(t *testing.T) {
	value := searchRequest{ID: "id", Filter: []string{"a b", "c&d"}, Num: Some(7)}
	first, err := ToString(value)
	require.NoError(t, err)
	second, err := ToString(value)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

type failing struct{}

func (failing) SerializeParams(s Serializer) error {
	return Custom("value %d out of range", 42)
}

func TestCustomErrorPassedThrough(t *testing.T) {
	_, err := ToString(struct {
		Field failing `json:"field"`
	}{})
	require.Error(t, err)
	assert.EqualError(t, err, "value 42 out of range")
	assert.NotErrorIs(t, err, ErrUnsupported)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestSinkErrorIsExtern(t *testing.T) {
	err := ToWriter(failWriter{}, plainRecord{Username: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtern)
}

func TestToBytes(t *testing.T) {
	got, err := ToBytes(plainRecord{Username: "boxdot"})
	require.NoError(t, err)
	assert.Equal(t, []byte("username=boxdot"), got)
}
