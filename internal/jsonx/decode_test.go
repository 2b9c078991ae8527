package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_InquiryObject(t *testing.T) {
	v := Decode(`{"vid":"abc","title":"T","streams":[]}`)

	obj, ok := v.(*Object)
	require.True(t, ok, "expected *Object, got %T", v)
	assert.Equal(t, []string{"vid", "title", "streams"}, obj.Keys())
	assert.Equal(t, "T", obj.Text("title"))

	streams, ok := obj.Array("streams")
	require.True(t, ok)
	assert.Empty(t, streams)
}

func TestDecode_InvalidTextFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "not json", "not json"},
		{"embedded newlines", "line one\nline two\n", "line oneline two"},
		{"carriage returns kept", "a\r\nb", "a\rb"},
		{"truncated object", "{\"vid\":\n\"abc\"", "{\"vid\":\"abc\""},
		{"trailing garbage", "{}x", "{}x"},
		{"two values", "1 2", "1 2"},
		{"trailing comma", "[1,]", "[1,]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.expected, Decode(tt.input))
			})
		})
	}
}

func TestDecode_Scalars(t *testing.T) {
	assert.Nil(t, Decode(""))
	assert.Nil(t, Decode("null"))
	assert.Equal(t, true, Decode("true"))
	assert.Equal(t, 7.58, Decode("7.58"))
	assert.Equal(t, "quoted", Decode(`"quoted"`))
	assert.Equal(t, []any{1.0, "two", nil}, Decode(`[1, "two", null]`))
}

func TestDecode_NestedValues(t *testing.T) {
	v := Decode(`{"actives":[{"sid":"x|1","bytesdone":10,"total":20}],"meta":{"a":1}}`)
	obj, ok := v.(*Object)
	require.True(t, ok)

	actives, ok := obj.Array("actives")
	require.True(t, ok)
	require.Len(t, actives, 1)

	first, ok := actives[0].(*Object)
	require.True(t, ok)
	assert.Equal(t, "x|1", first.Text("sid"))
	total, ok := first.Float("total")
	assert.True(t, ok)
	assert.Equal(t, 20.0, total)

	meta, _ := obj.Get("meta")
	assert.True(t, IsObject(meta))
}

func TestDecode_DuplicateKeyKeepsPosition(t *testing.T) {
	obj := Decode(`{"a":1,"b":2,"a":3}`).(*Object)

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	a, _ := obj.Float("a")
	assert.Equal(t, 3.0, a)
}
