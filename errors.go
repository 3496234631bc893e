package urlparams

import (
	"github.com/cockroachdb/errors"
)

// Leaf errors that mark the two failure families of a serialization
// pass. Use errors.Is to classify an error returned by ToString,
// ToBytes or ToWriter. Errors raised by a Serializable implementation
// itself are passed through unchanged and match neither mark.
var (
	// ErrUnsupported marks a value shape that a flat key=value list
	// cannot express: a top level scalar, a nested struct, a map key
	// that does not reduce to a string. Fatal for the current pass;
	// restructure the input type.
	ErrUnsupported = errors.New("unsupported value")

	// ErrExtern marks a lower level failure of the output sink.
	ErrExtern = errors.New("external error")
)

func unsupported(what string) error {
	return errors.Mark(errors.Newf("cannot serialize %s", what), ErrUnsupported)
}

func extern(err error) error {
	return errors.Mark(err, ErrExtern)
}

// Custom builds a caller specific serialization error, for use inside
// SerializeParams implementations. The message is surfaced verbatim.
func Custom(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}
