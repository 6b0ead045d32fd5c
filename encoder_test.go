// Copyright (c) 2026 jot authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package jot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyEncoder(t *testing.T) {
	require.Equal(t, "", NewEncoder().Result())
}

func TestObjectRendering(t *testing.T) {
	enc := NewEncoder()
	enc.StartObject()
	enc.StartField("a")
	enc.AppendInt64(1, false)
	enc.StartField("b")
	enc.AppendInt64(2, false)
	enc.EndObject()
	require.Equal(t, `{"a":1,"b":2}`, enc.Result())
}

func TestEmptyObject(t *testing.T) {
	enc := NewEncoder()
	enc.StartObject()
	enc.EndObject()
	require.Equal(t, "{}", enc.Result())
}

func TestFieldNameVerbatim(t *testing.T) {
	enc := NewEncoder()
	enc.StartObject()
	enc.StartField("snake_name.0")
	enc.AppendNull()
	enc.EndObject()
	require.Equal(t, `{"snake_name.0":null}`, enc.Result())
}

func TestNestedObjectSeparators(t *testing.T) {
	// Closing a nested value must not leak separator state into the
	// enclosing object: the field after the nested object still gets
	// exactly one comma, and an empty nested object adds none.
	enc := NewEncoder()
	enc.StartObject()
	enc.StartField("a")
	enc.StartObject()
	enc.EndObject()
	enc.StartField("b")
	enc.StartObject()
	enc.StartField("c")
	enc.AppendBool(true, false)
	enc.EndObject()
	enc.StartField("d")
	enc.AppendInt64(2, false)
	enc.EndObject()
	require.Equal(t, `{"a":{},"b":{"c":true},"d":2}`, enc.Result())
}

func TestEmptyObjectInArray(t *testing.T) {
	// The lone empty object inside an array is the classic separator
	// leak: no comma may appear anywhere.
	enc := NewEncoder()
	enc.AppendTokens(BeginArray())
	enc.StartObject()
	enc.EndObject()
	enc.AppendTokens(EndArray())
	require.Equal(t, "[{}]", enc.Result())
}

func TestTokenStream(t *testing.T) {
	enc := NewEncoder()
	enc.AppendTokens(
		BeginArray(),
		Bool(true),
		Comma(),
		Null(),
		Comma(),
		String("x"),
		EndArray(),
	)
	require.Equal(t, `[true,null,"x"]`, enc.Result())
}

func TestTokenNumbers(t *testing.T) {
	// Number tokens never apply the safe-integer quoting rule.
	enc := NewEncoder()
	enc.AppendTokens(
		BeginArray(),
		Int64(-9007199254740992),
		Comma(),
		Uint64(18446744073709551615),
		Comma(),
		Float64(2.5),
		Comma(),
		Float64(3.0),
		EndArray(),
	)
	require.Equal(t, "[-9007199254740992,18446744073709551615,2.5,3]", enc.Result())
}

func TestTokenObject(t *testing.T) {
	enc := NewEncoder()
	enc.AppendTokens(
		BeginObject(),
		String("k"),
		Colon(),
		Bool(false),
		EndObject(),
	)
	require.Equal(t, `{"k":false}`, enc.Result())
}

func TestTokenStringEscaped(t *testing.T) {
	enc := NewEncoder()
	enc.AppendTokens(String("a\"b\tc"))
	require.Equal(t, `"a\"b\tc"`, enc.Result())
}

func TestResultMidRender(t *testing.T) {
	enc := NewEncoder()
	enc.StartObject()
	enc.StartField("a")
	mid := enc.Result()
	require.Equal(t, `{"a":`, mid)

	enc.AppendInt64(1, false)
	enc.EndObject()
	require.True(t, strings.HasPrefix(enc.Result(), mid))
	require.Equal(t, `{"a":1}`, enc.Result())
}

func TestPooledEncoderReuse(t *testing.T) {
	enc := GetEncoder()
	enc.StartObject()
	enc.StartField("a")
	enc.AppendString("x")
	enc.EndObject()
	out := enc.Result()
	enc.Free()
	require.Equal(t, `{"a":"x"}`, out)

	enc = GetEncoder()
	defer enc.Free()
	require.Equal(t, "", enc.Result())
	enc.StartObject()
	enc.StartField("b")
	enc.AppendInt64(1, false)
	enc.EndObject()
	require.Equal(t, `{"b":1}`, enc.Result())
}

func TestMixedDocument(t *testing.T) {
	enc := NewEncoder()
	enc.StartObject()
	enc.StartField("id")
	enc.AppendUint64(9007199254740992, false)
	enc.StartField("name")
	enc.AppendString("héllo\n")
	enc.StartField("ratio")
	enc.AppendFloat64(0.25, false)
	enc.StartField("count")
	enc.AppendInt64(7, true)
	enc.StartField("blob")
	enc.AppendBytes([]byte{0xFF, 0x00, 0x10})
	enc.StartField("tags")
	enc.AppendTokens(BeginArray(), String("a"), Comma(), String("b"), EndArray())
	enc.StartField("gone")
	enc.AppendNull()
	enc.EndObject()
	require.Equal(t,
		`{"id":"9007199254740992","name":"héllo\n","ratio":0.25,"count":"7","blob":"/wAQ","tags":["a","b"],"gone":null}`,
		enc.Result())
}
