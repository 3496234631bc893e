package urlparams

import (
	"encoding"
	"reflect"
	"sort"
	"strings"
)

// Value adapts an arbitrary Go value to the Serializable contract by
// walking it with reflection. Struct fields reuse the `url` tag, or
// the `json` tag when no `url` tag is present: the first tag element
// names the parameter, "-" skips the field, and "omitempty" drops
// zero values. Anonymous embedded structs are flattened, so their
// fields become parameters of the enclosing struct. Types that
// implement Serializable drive themselves, and types that implement
// encoding.TextMarshaler serialize as the text they produce.
func Value(v interface{}) Serializable {
	return reflectValue{rv: reflect.ValueOf(v)}
}

type reflectValue struct {
	rv reflect.Value
}

func (x reflectValue) SerializeParams(s Serializer) error {
	return serializeReflect(s, x.rv)
}

func serializeReflect(s Serializer, rv reflect.Value) error {
	if !rv.IsValid() {
		return s.SerializeNone()
	}
	kind := rv.Kind()
	if (kind == reflect.Ptr || kind == reflect.Interface) && rv.IsNil() {
		return s.SerializeNone()
	}
	if rv.CanInterface() {
		if sv, ok := rv.Interface().(Serializable); ok {
			return sv.SerializeParams(s)
		}
		if tm, ok := rv.Interface().(encoding.TextMarshaler); ok {
			text, err := tm.MarshalText()
			if err != nil {
				return err
			}
			return s.SerializeString(string(text))
		}
	}
	switch kind {
	case reflect.Ptr, reflect.Interface:
		return s.SerializeSome(reflectValue{rv.Elem()})
	case reflect.Bool:
		return s.SerializeBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.SerializeInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return s.SerializeUint(rv.Uint())
	case reflect.Float32:
		return s.SerializeFloat32(float32(rv.Float()))
	case reflect.Float64:
		return s.SerializeFloat64(rv.Float())
	case reflect.String:
		return s.SerializeString(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return s.SerializeBytes(rv.Bytes())
		}
		return serializeSeq(s, rv)
	case reflect.Array:
		return serializeSeq(s, rv)
	case reflect.Map:
		return serializeMap(s, rv)
	case reflect.Struct:
		return serializeStruct(s, rv)
	default:
		return unsupported(kind.String() + " value")
	}
}

func serializeSeq(s Serializer, rv reflect.Value) error {
	scope, err := s.SerializeSeq(rv.Len())
	if err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := scope.SerializeElement(reflectValue{rv.Index(i)}); err != nil {
			return err
		}
	}
	return scope.End()
}

func serializeMap(s Serializer, rv reflect.Value) error {
	scope, err := s.SerializeMap(rv.Len())
	if err != nil {
		return err
	}
	keys := rv.MapKeys()
	// String-keyed maps iterate in key order, so the output does not
	// change between runs.
	if rv.Type().Key().Kind() == reflect.String {
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].String() < keys[j].String()
		})
	}
	for _, k := range keys {
		if err := scope.SerializeKey(reflectValue{k}); err != nil {
			return err
		}
		if err := scope.SerializeValue(reflectValue{rv.MapIndex(k)}); err != nil {
			return err
		}
	}
	return scope.End()
}

func serializeStruct(s Serializer, rv reflect.Value) error {
	t := rv.Type()
	scope, err := s.SerializeStruct(t.Name(), t.NumField())
	if err != nil {
		return err
	}
	if err := serializeStructFields(scope, rv); err != nil {
		return err
	}
	return scope.End()
}

func serializeStructFields(scope StructSerializer, rv reflect.Value) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" && !f.Anonymous {
			continue
		}
		tagName, omitempty, skip := fieldTag(f)
		if skip {
			continue
		}
		fv := rv.Field(i)
		if f.Anonymous && tagName == "" {
			// Embedded field without an explicit name: flatten its
			// fields into the enclosing scope.
			ev := fv
			if ev.Kind() == reflect.Ptr {
				if ev.IsNil() {
					continue
				}
				ev = ev.Elem()
			}
			if ev.Kind() == reflect.Struct && !hasMarshaler(ev) {
				if err := serializeStructFields(scope, ev); err != nil {
					return err
				}
				continue
			}
		}
		if omitempty && isEmptyValue(fv) {
			continue
		}
		name := tagName
		if name == "" {
			name = f.Name
		}
		if err := scope.SerializeField(name, reflectValue{fv}); err != nil {
			return err
		}
	}
	return nil
}

func hasMarshaler(rv reflect.Value) bool {
	if !rv.CanInterface() {
		return false
	}
	switch rv.Interface().(type) {
	case Serializable, encoding.TextMarshaler:
		return true
	}
	return false
}

func fieldTag(f reflect.StructField) (name string, omitempty bool, skip bool) {
	tag := f.Tag.Get("url")
	if tag == "" {
		tag = f.Tag.Get("json")
	}
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
