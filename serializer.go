package urlparams

// Serializable is implemented by values that know how to drive
// themselves through a Serializer, invoking the method that matches
// their shape. Generated code, hand written methods and the built-in
// reflection driver all target this same contract.
type Serializable interface {
	SerializeParams(s Serializer) error
}

// Serializer is the shape-visit contract for one serialization pass.
// Scalar methods write a single key=value pair under the current key.
// Scope methods (seq, tuple, map, struct and their variant forms)
// return a narrower serializer that must be driven to completion with
// End before the pass continues.
//
// The same contract is implemented twice: by the full parameter
// serializer, and by the restricted serializer that reduces map keys
// to plain strings.
type Serializer interface {
	SerializeBool(v bool) error
	SerializeInt(v int64) error
	SerializeUint(v uint64) error
	SerializeFloat32(v float32) error
	SerializeFloat64(v float64) error
	SerializeRune(v rune) error
	SerializeString(v string) error
	SerializeBytes(v []byte) error

	// SerializeNone records an absent optional. SerializeSome unwraps
	// a present optional and recurses under the same key.
	SerializeNone() error
	SerializeSome(v Serializable) error

	SerializeUnit() error
	SerializeUnitStruct(name string) error
	SerializeUnitVariant(name, variant string) error

	// Newtype wrappers are transparent: the inner value recurses under
	// the same key and the wrapper contributes no key of its own.
	SerializeNewtypeStruct(name string, v Serializable) error
	SerializeNewtypeVariant(name, variant string, v Serializable) error

	SerializeSeq(length int) (SeqSerializer, error)
	SerializeTuple(length int) (SeqSerializer, error)
	SerializeTupleStruct(name string, length int) (SeqSerializer, error)
	SerializeTupleVariant(name, variant string, length int) (SeqSerializer, error)

	SerializeMap(length int) (MapSerializer, error)

	SerializeStruct(name string, length int) (StructSerializer, error)
	SerializeStructVariant(name, variant string, length int) (StructSerializer, error)
}

// SeqSerializer serializes the elements of a sequence or tuple. Every
// element repeats the key that was current when the scope opened.
type SeqSerializer interface {
	SerializeElement(v Serializable) error
	End() error
}

// MapSerializer serializes map entries. Each key must reduce to a
// string or rune; it then becomes the current key for the value that
// follows it.
type MapSerializer interface {
	SerializeKey(k Serializable) error
	SerializeValue(v Serializable) error
	End() error
}

// StructSerializer serializes the named fields of a struct or struct
// variant.
type StructSerializer interface {
	SerializeField(name string, v Serializable) error
	End() error
}
