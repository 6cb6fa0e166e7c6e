package jsonvalue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePreservesObjectFieldOrder(t *testing.T) {
	v, err := Decode([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, v.Keys())
}

func TestDecodeNestedStructures(t *testing.T) {
	v, err := Decode([]byte(`{"a":[1,2,{"b":"c"}],"n":null,"t":true,"f":false}`))
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())

	a, ok := v.Field("a")
	require.True(t, ok)
	require.Equal(t, KindArray, a.Kind())
	require.Equal(t, 3, a.Len())

	third := a.Index(2)
	require.Equal(t, KindObject, third.Kind())
	b, ok := third.Field("b")
	require.True(t, ok)
	s, ok := b.Str()
	require.True(t, ok)
	assert.Equal(t, "c", s)

	n, ok := v.Field("n")
	require.True(t, ok)
	assert.Equal(t, KindNull, n.Kind())

	tr, ok := v.Field("t")
	require.True(t, ok)
	boolVal, ok := tr.Bool()
	require.True(t, ok)
	assert.True(t, boolVal)

	fl, ok := v.Field("f")
	require.True(t, ok)
	boolVal, ok = fl.Bool()
	require.True(t, ok)
	assert.False(t, boolVal)
}

func TestDecodeNumbersAreJSONNumber(t *testing.T) {
	v, err := Decode([]byte(`42`))
	require.NoError(t, err)
	assert.Equal(t, KindInt, v.Kind())
	i, ok := v.Int()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)
	assert.Equal(t, json.Number("42"), Raw(v))
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	_, err := Decode([]byte(`1 2`))
	assert.Error(t, err)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestFieldOnMissingKeyReturnsFalse(t *testing.T) {
	v, err := Decode([]byte(`{"a":1}`))
	require.NoError(t, err)
	_, ok := v.Field("missing")
	assert.False(t, ok)
}

func TestIndexOutOfBoundsReturnsNull(t *testing.T) {
	v, err := Decode([]byte(`[1,2,3]`))
	require.NoError(t, err)
	assert.Equal(t, KindNull, v.Index(5).Kind())
	assert.Equal(t, KindNull, v.Index(-1).Kind())
}

func TestElemsRoundTrip(t *testing.T) {
	v, err := Decode([]byte(`[1,2,3]`))
	require.NoError(t, err)
	elems := v.Elems()
	require.Len(t, elems, 3)
	for i, e := range elems {
		i64, ok := e.Int()
		require.True(t, ok)
		assert.Equal(t, int64(i+1), i64)
	}
}

func TestNullValue(t *testing.T) {
	n := Null()
	assert.Equal(t, KindNull, n.Kind())
	assert.Equal(t, 0, n.Len())
	assert.Nil(t, n.Elems())
	assert.Nil(t, n.Keys())
}

func TestWrapPlainMapIsUsableEvenThoughUnordered(t *testing.T) {
	v := Wrap(map[string]interface{}{"a": 1, "b": 2})
	require.Equal(t, KindObject, v.Kind())
	assert.ElementsMatch(t, []string{"a", "b"}, v.Keys())
	field, ok := v.Field("a")
	require.True(t, ok)
	i, ok := field.Int()
	require.True(t, ok)
	assert.Equal(t, int64(1), i)
}

func TestWrapPlainSlice(t *testing.T) {
	v := Wrap([]int{10, 20, 30})
	require.Equal(t, KindArray, v.Kind())
	require.Equal(t, 3, v.Len())
	i, ok := v.Index(1).Int()
	require.True(t, ok)
	assert.Equal(t, int64(20), i)
}

func TestWrapPassesThroughCanonicalTypesUnchanged(t *testing.T) {
	v, err := Decode([]byte(`{"a":1}`))
	require.NoError(t, err)
	rewrapped := Wrap(Raw(v))
	assert.Equal(t, []string{"a"}, rewrapped.Keys())
}

func TestRawOnNonGoValueReturnsNil(t *testing.T) {
	assert.Nil(t, Raw(nil))
}

func TestAsIntAcceptsAllNumericWidths(t *testing.T) {
	cases := []interface{}{
		int(7), int8(7), int16(7), int32(7), int64(7),
		uint(7), uint8(7), uint16(7), uint32(7), uint64(7),
		float32(7), float64(7), json.Number("7"),
	}
	for _, c := range cases {
		i, ok := asInt(c)
		require.True(t, ok, "%T should coerce to int64", c)
		assert.Equal(t, int64(7), i)
	}
}

func TestAsIntRejectsNonNumeric(t *testing.T) {
	_, ok := asInt("not a number")
	assert.False(t, ok)
	_, ok = asInt(json.Number("not a number"))
	assert.False(t, ok)
}
