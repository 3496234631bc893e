package urlparams

import "encoding/json"

// Option is an explicit optional: it distinguishes "not set" from the
// zero value, which pointers can only express at the cost of an extra
// allocation and `*bool`-style field types. A None option serializes
// to nothing; a Some option serializes exactly as its inner value
// would, under the same key.
type Option[T any] struct {
	value   T
	defined bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, defined: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the inner value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.defined
}

// SerializeParams implements Serializable.
func (o Option[T]) SerializeParams(s Serializer) error {
	if !o.defined {
		return s.SerializeNone()
	}
	return s.SerializeSome(Value(o.value))
}

// MarshalJSON implements the json.Marshaler interface.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.value)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	o.defined = true
	return nil
}
