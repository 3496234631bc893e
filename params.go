package urlparams

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
)

// paramSerializer walks one value and writes `&`-joined key=value
// pairs to w as it descends. It keeps exactly two pieces of state:
// the key of the field being visited (empty at top level, restored on
// struct scope exit) and whether the first pair is still pending, so
// it knows when a separator is due. One instance serves one pass.
type paramSerializer struct {
	w      io.Writer
	key    string
	hasKey bool
	first  bool
}

func newParamSerializer(w io.Writer) *paramSerializer {
	return &paramSerializer{w: w, first: true}
}

// writeKeyValue emits one pair under the current key. A scalar with
// no key in scope has no flat representation.
func (p *paramSerializer) writeKeyValue(value string) error {
	if !p.hasKey {
		return unsupported("top level value")
	}
	sep := "&"
	if p.first {
		sep = ""
	}
	if _, err := fmt.Fprintf(p.w, "%s%s=%s", sep, p.key, value); err != nil {
		return extern(err)
	}
	p.first = false
	return nil
}

func (p *paramSerializer) SerializeBool(v bool) error {
	return p.writeKeyValue(strconv.FormatBool(v))
}

func (p *paramSerializer) SerializeInt(v int64) error {
	return p.writeKeyValue(strconv.FormatInt(v, 10))
}

func (p *paramSerializer) SerializeUint(v uint64) error {
	return p.writeKeyValue(strconv.FormatUint(v, 10))
}

func (p *paramSerializer) SerializeFloat32(v float32) error {
	return p.writeKeyValue(strconv.FormatFloat(float64(v), 'g', -1, 32))
}

func (p *paramSerializer) SerializeFloat64(v float64) error {
	return p.writeKeyValue(strconv.FormatFloat(v, 'g', -1, 64))
}

// Runes render in their canonical text form, like the other scalars.
func (p *paramSerializer) SerializeRune(v rune) error {
	return p.writeKeyValue(string(v))
}

// Strings are the only scalars that get percent-encoded; space
// encodes as '+' per the net/url query convention.
func (p *paramSerializer) SerializeString(v string) error {
	return p.writeKeyValue(url.QueryEscape(v))
}

// Byte sequences repeat the current key once per byte, as decimal
// integers. They are not block-encoded.
func (p *paramSerializer) SerializeBytes(v []byte) error {
	seq, err := p.SerializeSeq(len(v))
	if err != nil {
		return err
	}
	for _, b := range v {
		if err := p.SerializeUint(uint64(b)); err != nil {
			return err
		}
	}
	return seq.End()
}

func (p *paramSerializer) SerializeNone() error {
	return nil
}

func (p *paramSerializer) SerializeSome(v Serializable) error {
	return v.SerializeParams(p)
}

func (p *paramSerializer) SerializeUnit() error {
	return nil
}

func (p *paramSerializer) SerializeUnitStruct(name string) error {
	return nil
}

// A data-less enum variant serializes as its name under the current
// key.
func (p *paramSerializer) SerializeUnitVariant(name, variant string) error {
	return p.SerializeString(variant)
}

func (p *paramSerializer) SerializeNewtypeStruct(name string, v Serializable) error {
	return v.SerializeParams(p)
}

func (p *paramSerializer) SerializeNewtypeVariant(name, variant string, v Serializable) error {
	return v.SerializeParams(p)
}

// Sequence scopes leave the current key untouched: every element
// produces its own pair under the same key.
func (p *paramSerializer) SerializeSeq(length int) (SeqSerializer, error) {
	return seqScope{p}, nil
}

func (p *paramSerializer) SerializeTuple(length int) (SeqSerializer, error) {
	return p.SerializeSeq(length)
}

func (p *paramSerializer) SerializeTupleStruct(name string, length int) (SeqSerializer, error) {
	return p.SerializeSeq(length)
}

func (p *paramSerializer) SerializeTupleVariant(name, variant string, length int) (SeqSerializer, error) {
	return p.SerializeSeq(length)
}

// Map scopes are allowed anywhere: each entry key replaces the
// current key after being reduced to a string by the restricted
// serializer.
func (p *paramSerializer) SerializeMap(length int) (MapSerializer, error) {
	return mapScope{p}, nil
}

// Struct scopes only open at the top level. A struct nested inside a
// field of another struct has no flat representation.
func (p *paramSerializer) SerializeStruct(name string, length int) (StructSerializer, error) {
	if p.hasKey {
		return nil, unsupported("nested struct " + name)
	}
	return structScope{p}, nil
}

func (p *paramSerializer) SerializeStructVariant(name, variant string, length int) (StructSerializer, error) {
	if p.hasKey {
		return nil, unsupported("nested struct variant " + variant)
	}
	return structScope{p}, nil
}

type seqScope struct {
	p *paramSerializer
}

func (s seqScope) SerializeElement(v Serializable) error {
	return v.SerializeParams(s.p)
}

func (s seqScope) End() error {
	return nil
}

type mapScope struct {
	p *paramSerializer
}

func (m mapScope) SerializeKey(k Serializable) error {
	ks := &keySerializer{}
	if err := k.SerializeParams(ks); err != nil {
		return err
	}
	m.p.key = ks.key
	m.p.hasKey = true
	return nil
}

func (m mapScope) SerializeValue(v Serializable) error {
	return v.SerializeParams(m.p)
}

func (m mapScope) End() error {
	m.p.key = ""
	m.p.hasKey = false
	return nil
}

type structScope struct {
	p *paramSerializer
}

func (s structScope) SerializeField(name string, v Serializable) error {
	s.p.key = name
	s.p.hasKey = true
	return v.SerializeParams(s.p)
}

func (s structScope) End() error {
	s.p.key = ""
	s.p.hasKey = false
	return nil
}
