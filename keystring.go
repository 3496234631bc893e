package urlparams

// keySerializer reduces a map key to a plain string. It accepts
// exactly the string and rune shapes; everything else has no sensible
// spelling as a parameter name and is rejected. The captured key is
// stored verbatim, without percent-encoding.
type keySerializer struct {
	key string
}

func (k *keySerializer) SerializeString(v string) error {
	k.key = v
	return nil
}

func (k *keySerializer) SerializeRune(v rune) error {
	k.key = string(v)
	return nil
}

func (k *keySerializer) SerializeBool(v bool) error {
	return unsupported("bool as map key")
}

func (k *keySerializer) SerializeInt(v int64) error {
	return unsupported("integer as map key")
}

func (k *keySerializer) SerializeUint(v uint64) error {
	return unsupported("integer as map key")
}

func (k *keySerializer) SerializeFloat32(v float32) error {
	return unsupported("float as map key")
}

func (k *keySerializer) SerializeFloat64(v float64) error {
	return unsupported("float as map key")
}

func (k *keySerializer) SerializeBytes(v []byte) error {
	return unsupported("bytes as map key")
}

func (k *keySerializer) SerializeNone() error {
	return unsupported("optional as map key")
}

func (k *keySerializer) SerializeSome(v Serializable) error {
	return unsupported("optional as map key")
}

func (k *keySerializer) SerializeUnit() error {
	return unsupported("unit as map key")
}

func (k *keySerializer) SerializeUnitStruct(name string) error {
	return unsupported("unit struct as map key")
}

func (k *keySerializer) SerializeUnitVariant(name, variant string) error {
	return unsupported("unit variant as map key")
}

func (k *keySerializer) SerializeNewtypeStruct(name string, v Serializable) error {
	return unsupported("newtype struct as map key")
}

func (k *keySerializer) SerializeNewtypeVariant(name, variant string, v Serializable) error {
	return unsupported("newtype variant as map key")
}

func (k *keySerializer) SerializeSeq(length int) (SeqSerializer, error) {
	return nil, unsupported("sequence as map key")
}

func (k *keySerializer) SerializeTuple(length int) (SeqSerializer, error) {
	return nil, unsupported("tuple as map key")
}

func (k *keySerializer) SerializeTupleStruct(name string, length int) (SeqSerializer, error) {
	return nil, unsupported("tuple struct as map key")
}

func (k *keySerializer) SerializeTupleVariant(name, variant string, length int) (SeqSerializer, error) {
	return nil, unsupported("tuple variant as map key")
}

func (k *keySerializer) SerializeMap(length int) (MapSerializer, error) {
	return nil, unsupported("map as map key")
}

func (k *keySerializer) SerializeStruct(name string, length int) (StructSerializer, error) {
	return nil, unsupported("struct as map key")
}

func (k *keySerializer) SerializeStructVariant(name, variant string, length int) (StructSerializer, error) {
	return nil, unsupported("struct variant as map key")
}
