package streamval

import (
	"fmt"
	"reflect"
	"sort"
)

// Of adapts a plain Go value into a Value by walking it with a type
// switch over a closed set of recognized kinds. It is meant for ad hoc
// values: config, test fixtures, a quick CLI argument, not as a
// substitute for a hand-written Emit method on a domain type, which
// will always be cheaper and won't need reflection for the struct case.
//
// Recognized inputs: nil, bool, the signed/unsigned/float numeric kinds,
// string, []byte, error (emitted as its Error() string), any Value
// (returned as-is), any slice/array (emitted as a seq), any map whose
// keys and values are themselves recognized (emitted as a map, keys
// sorted by their fmt.Sprint text for determinism), any struct (emitted
// as a record, one RecordValue pair per exported field, in declaration
// order), and any pointer (nil as Null, otherwise its target). Anything
// else is an error.
func Of(v any) Value {
	return ValueFunc(func(s Stream) error {
		return emitAny(s, v)
	})
}

func emitAny(s Stream, v any) error {
	switch x := v.(type) {
	case nil:
		return s.Null()
	case Value:
		return x.Emit(s)
	case bool:
		return s.Bool(x)
	case int:
		return s.I64(int64(x))
	case int8:
		return s.I8(x)
	case int16:
		return s.I16(x)
	case int32:
		return s.I32(x)
	case int64:
		return s.I64(x)
	case uint:
		return s.U64(uint64(x))
	case uint8:
		return s.U8(x)
	case uint16:
		return s.U16(x)
	case uint32:
		return s.U32(x)
	case uint64:
		return s.U64(x)
	case float32:
		return s.F32(x)
	case float64:
		return s.F64(x)
	case string:
		n := len(x)
		if err := s.TextBegin(&n); err != nil {
			return err
		}
		if err := s.TextFragmentComputed(x); err != nil {
			return err
		}
		return s.TextEnd()
	case []byte:
		n := len(x)
		if err := s.BinaryBegin(&n); err != nil {
			return err
		}
		if err := s.BinaryFragmentComputed(x); err != nil {
			return err
		}
		return s.BinaryEnd()
	case error:
		return emitAny(s, x.Error())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return emitSeq(s, rv)
	case reflect.Map:
		return emitMap(s, rv)
	case reflect.Struct:
		return emitStruct(s, rv)
	case reflect.Ptr:
		if rv.IsNil() {
			return s.Null()
		}
		return emitAny(s, rv.Elem().Interface())
	default:
		return fmt.Errorf("streamval: Of: unsupported type %T", v)
	}
}

func emitSeq(s Stream, rv reflect.Value) error {
	n := rv.Len()
	if err := s.SeqBegin(&n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := s.SeqValueBegin(); err != nil {
			return err
		}
		if err := emitAny(s, rv.Index(i).Interface()); err != nil {
			return err
		}
		if err := s.SeqValueEnd(); err != nil {
			return err
		}
	}
	return s.SeqEnd()
}

func emitMap(s Stream, rv reflect.Value) error {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	n := len(keys)
	if err := s.MapBegin(&n); err != nil {
		return err
	}
	for _, k := range keys {
		if err := s.MapKeyBegin(); err != nil {
			return err
		}
		if err := emitAny(s, k.Interface()); err != nil {
			return err
		}
		if err := s.MapKeyEnd(); err != nil {
			return err
		}
		if err := s.MapValueBegin(); err != nil {
			return err
		}
		if err := emitAny(s, rv.MapIndex(k).Interface()); err != nil {
			return err
		}
		if err := s.MapValueEnd(); err != nil {
			return err
		}
	}
	return s.MapEnd()
}

func emitStruct(s Stream, rv reflect.Value) error {
	rt := rv.Type()
	n := 0
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).IsExported() {
			n++
		}
	}
	if err := s.RecordBegin(nil, nil, nil, &n); err != nil {
		return err
	}
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		label := NewLabel(field.Name)
		if err := s.RecordValueBegin(nil, label); err != nil {
			return err
		}
		if err := emitAny(s, rv.Field(i).Interface()); err != nil {
			return err
		}
		if err := s.RecordValueEnd(nil, label); err != nil {
			return err
		}
	}
	return s.RecordEnd(nil, nil, nil)
}
