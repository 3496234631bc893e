// Package urlparams serializes strongly typed values into flat URL
// query strings: `key=value` pairs joined by `&`, with values
// percent-encoded (space as '+'). Parameter keys are written verbatim
// and never encoded.
//
// A value is serialized with ToString, ToBytes or ToWriter. Plain Go
// values are walked with reflection, reusing `url` or `json` struct
// tags; a type may instead implement Serializable and drive itself
// through the Serializer contract, the way generated or hand written
// serialization code does.
//
//	type SearchRequest struct {
//		Film    string   `json:"film"`
//		PerPage *int     `json:"per_page"`
//		Filter  []string `json:"filter"`
//	}
//
//	perPage := 20
//	s, err := urlparams.ToString(SearchRequest{
//		Film:    "Fight Club",
//		PerPage: &perPage,
//		Filter:  []string{"thriller", "drama"},
//	})
//	// s == "film=Fight+Club&per_page=20&filter=thriller&filter=drama"
//
// Sequences repeat their key once per element. Absent optionals (nil
// pointers) contribute nothing. Not every shape fits a flat parameter
// list: a bare top level scalar has no key, and a struct nested inside
// a field of another struct cannot be flattened implicitly, so both
// fail with an error matching ErrUnsupported. Map keys must reduce to
// strings. Output is produced incrementally and is not valid on error.
package urlparams

import (
	"bytes"
	"io"
)

// ToWriter serializes value into w as URL query parameters. Bytes
// already written when an error occurs stay written; the output must
// be discarded in that case.
func ToWriter(w io.Writer, value interface{}) error {
	s := newParamSerializer(w)
	return Value(value).SerializeParams(s)
}

// ToBytes serializes value into a byte buffer.
func ToBytes(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := ToWriter(&buf, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToString serializes value into a query string, without a leading
// '?'.
func ToString(value interface{}) (string, error) {
	b, err := ToBytes(value)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
