// Package jsonvalue is the abstract JSON value API the jsonpath matcher
// is written against (spec §6.1). It deliberately knows nothing about
// wire formats: Decode parses raw JSON preserving the source's field
// order, the same order the matcher is required to report matches in,
// while Wrap adapts an already-in-memory Go value (as produced by a
// caller's own encoding/json.Unmarshal into interface{}, or built by
// hand) the same way the teacher's canonical_types.go canonicalizes
// client-supplied maps and slices before matching.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// object is the canonical representation of a JSON object: an
// insertion-ordered map, since encoding/json's native
// map[string]interface{} discards field order and spec §8's property 2
// requires matches to be reported in document order.
type object = orderedmap.OrderedMap[string, interface{}]

// Kind tags the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindString
	KindArray
	KindObject
)

// Value is the read-only JSON value surface the matcher walks. A
// missing object key is represented by Field's second return value
// being false, never by a magic "empty" value -- present-and-null and
// absent are distinct, per spec §9's open-question recommendation.
type Value interface {
	Kind() Kind
	Bool() (bool, bool)
	Int() (int64, bool)
	Str() (string, bool)
	Len() int
	Index(i int) Value
	Field(key string) (Value, bool)
	Keys() []string
	Elems() []Value
}

var null = goValue{data: nil}

// Null is the canonical empty/absent Value.
func Null() Value { return null }

// Decode parses raw JSON bytes into a Value, preserving object field
// order via a token-by-token walk instead of handing the whole
// document to encoding/json.Unmarshal(&interface{}), which would
// collapse every object into an unordered map[string]interface{}.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("jsonvalue: trailing data after JSON value")
	}
	return Wrap(v), nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil // string, json.Number, bool, or nil
	}
	switch delim {
	case '{':
		obj := orderedmap.New[string, interface{}]()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(keyTok.(string), val)
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []interface{}{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("jsonvalue: unexpected delimiter %q", delim)
	}
}

// Wrap adapts a Go value into a Value. []interface{} and *object pass
// through unchanged; a plain map[string]interface{} (or any
// string-keyed map) is accepted for API convenience but, since a Go
// map has no iteration order of its own, its Field/Keys order is
// whatever Go's map iteration happens to produce -- callers that need
// document-order guarantees should build the tree with Decode instead.
func Wrap(data interface{}) Value {
	return goValue{data: canonicalize(data)}
}

type goValue struct {
	data interface{}
}

func canonicalize(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case *object:
		return v
	case []interface{}:
		return v
	}
	t := reflect.TypeOf(value)
	switch t.Kind() {
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return value
		}
		v := reflect.ValueOf(value)
		out := orderedmap.New[string, interface{}](v.Len())
		for _, key := range v.MapKeys() {
			out.Set(key.String(), v.MapIndex(key).Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		v := reflect.ValueOf(value)
		out := make([]interface{}, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}
		return out
	default:
		return value
	}
}

func (v goValue) Kind() Kind {
	switch t := v.data.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case *object:
		return KindObject
	case []interface{}:
		return KindArray
	default:
		if _, ok := asInt(t); ok {
			return KindInt
		}
		return KindNull
	}
}

func (v goValue) Bool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

func (v goValue) Int() (int64, bool) {
	return asInt(v.data)
}

func (v goValue) Str() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

func (v goValue) Len() int {
	switch t := v.data.(type) {
	case []interface{}:
		return len(t)
	case *object:
		return t.Len()
	default:
		return 0
	}
}

func (v goValue) Index(i int) Value {
	arr, ok := v.data.([]interface{})
	if !ok || i < 0 || i >= len(arr) {
		return null
	}
	return Wrap(arr[i])
}

func (v goValue) Field(key string) (Value, bool) {
	obj, ok := v.data.(*object)
	if !ok {
		return null, false
	}
	val, present := obj.Get(key)
	if !present {
		return null, false
	}
	return Wrap(val), true
}

func (v goValue) Keys() []string {
	obj, ok := v.data.(*object)
	if !ok {
		return nil
	}
	keys := make([]string, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (v goValue) Elems() []Value {
	arr, ok := v.data.([]interface{})
	if !ok {
		return nil
	}
	elems := make([]Value, len(arr))
	for i, e := range arr {
		elems[i] = Wrap(e)
	}
	return elems
}

// Raw unwraps a Value back to its canonicalized Go representation, for
// callers (e.g. the cmd/jsonpath CLI) that want to re-marshal a match
// result with encoding/json.
func Raw(v Value) interface{} {
	if gv, ok := v.(goValue); ok {
		return gv.data
	}
	return nil
}

// asInt coerces any of the numeric types encoding/json (or a caller)
// might produce into an int64, grounded on utils.go's floatFromValue
// but widened to ints since spec filter comparisons are integer-typed.
func asInt(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		return int64(t), true
	case float32:
		return int64(t), true
	case float64:
		return int64(t), true
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}
		if f, err := t.Float64(); err == nil {
			return int64(f), true
		}
	}
	return 0, false
}
