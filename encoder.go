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

// Package jot renders structured protocol values into a single JSON
// document. Schema-driven encoders own the field order and value types and
// drive the Encoder through primitive append operations; jot owns only the
// textual encoding rules of JSON syntax and scalar formatting.
package jot

import (
	"strconv"
	"sync"
)

// Encoder accumulates the JSON text of one document.
//
// It provides a low allocation alternative to the standard library's
// reflection heavy json package for callers that already know the type of
// every value they emit. An Encoder is not safe for concurrent use; the
// expected usage is one encoder per document render, owned by a single
// goroutine for its entire lifetime.
type Encoder struct {
	buf *buffer

	// members holds one flag per open object or array level, set once a
	// member has been written at that level. StartField consults the top
	// entry to decide whether a comma must precede the next field, so
	// closing a nested value never leaks separator state into the
	// enclosing level.
	members []bool
}

// NewEncoder constructs an empty Encoder.
//
// Callers rendering many documents should prefer GetEncoder/Free, which
// reuse encoders and their buffers through process-wide pools.
func NewEncoder() *Encoder {
	return &Encoder{
		buf:     &buffer{B: make([]byte, 0, 256)},
		members: make([]bool, 1, 8),
	}
}

var encoderPool = sync.Pool{
	New: func() any {
		return &Encoder{members: make([]bool, 1, 8)}
	},
}

// GetEncoder returns an empty Encoder backed by pooled storage.
func GetEncoder() *Encoder {
	enc := encoderPool.Get().(*Encoder)
	enc.buf = getBuffer()
	enc.members = enc.members[:1]
	enc.members[0] = false
	return enc
}

// Free releases the Encoder and its buffer back to their pools.
//
// The Encoder must not be used after Free; any string returned by Result
// remains valid.
func (enc *Encoder) Free() {
	putBuffer(enc.buf)
	enc.buf = nil
	encoderPool.Put(enc)
}

// Result returns the document text accumulated so far.
//
// It is a pure read and may be called at any point, not only after the last
// append; no separator state is ever written speculatively, so the returned
// text is always a prefix of the final document.
func (enc *Encoder) Result() string {
	return string(enc.buf.B)
}

func (enc *Encoder) push() {
	enc.members = append(enc.members, false)
}

func (enc *Encoder) pop() {
	if len(enc.members) > 1 {
		enc.members = enc.members[:len(enc.members)-1]
	}
}

// StartObject emits `{` and opens a fresh separator level.
func (enc *Encoder) StartObject() {
	enc.buf.WriteByte('{')
	enc.push()
}

// EndObject emits `}` and closes the current separator level.
func (enc *Encoder) EndObject() {
	enc.buf.WriteByte('}')
	enc.pop()
}

// StartField emits the separator (if a member was already written at this
// level) followed by the quoted member name and `:`.
//
// The name is written verbatim with no escaping; callers pass names that
// are already valid JSON member names.
func (enc *Encoder) StartField(name string) {
	top := len(enc.members) - 1
	if enc.members[top] {
		enc.buf.WriteByte(',')
	}
	enc.members[top] = true
	enc.buf.WriteByte('"')
	enc.buf.WriteString(name)
	enc.buf.WriteByte('"')
	enc.buf.WriteByte(':')
}

// AppendBool appends true or false, wrapped in quotes if quote is set.
func (enc *Encoder) AppendBool(v bool, quote bool) {
	appendBool(enc.buf, v, quote)
}

// AppendFloat32 widens v to float64 and appends it under the double
// formatting rules.
func (enc *Encoder) AppendFloat32(v float32, quote bool) {
	appendFloat(enc.buf, float64(v), quote)
}

// AppendFloat64 appends v under the double formatting rules: NaN and the
// infinities render as the JSON strings "NaN", "Infinity" and "-Infinity"
// regardless of quote; integral values inside the signed 64-bit range
// render as plain decimal integers; everything else renders as the
// shortest round-trip decimal text.
func (enc *Encoder) AppendFloat64(v float64, quote bool) {
	appendFloat(enc.buf, v, quote)
}

// AppendInt64 appends v as decimal text, wrapped in quotes if quote is set
// or if the magnitude exceeds 2^53-1. The quoting threshold protects
// consumers that parse JSON numbers as doubles from silent precision loss.
func (enc *Encoder) AppendInt64(v int64, quote bool) {
	appendInt(enc.buf, v, quote)
}

// AppendUint64 appends v as decimal text, wrapped in quotes if quote is
// set or if v exceeds 2^53-1.
func (enc *Encoder) AppendUint64(v uint64, quote bool) {
	appendUint(enc.buf, v, quote)
}

// AppendNull appends the literal null.
func (enc *Encoder) AppendNull() {
	enc.buf.WriteString("null")
}

// AppendString appends v escaped and wrapped in double quotes.
func (enc *Encoder) AppendString(v string) {
	appendEscapedString(enc.buf, v)
}

// AppendBytes appends v as a quoted standard-alphabet Base64 string.
func (enc *Encoder) AppendBytes(v []byte) {
	appendBase64(enc.buf, v)
}

// AppendTokens renders a token stream, one token at a time with no
// lookahead. It is total over the token set.
//
// Scalar number tokens always render unquoted; structural well-formedness
// of the stream is the caller's responsibility.
func (enc *Encoder) AppendTokens(tokens ...Token) {
	for i := range tokens {
		t := &tokens[i]
		switch t.Kind {
		case BeginArrayKind:
			enc.buf.WriteByte('[')
			enc.push()
		case EndArrayKind:
			enc.buf.WriteByte(']')
			enc.pop()
		case BeginObjectKind:
			enc.buf.WriteByte('{')
			enc.push()
		case EndObjectKind:
			enc.buf.WriteByte('}')
			enc.pop()
		case ColonKind:
			enc.buf.WriteByte(':')
		case CommaKind:
			enc.buf.WriteByte(',')
		case BoolKind:
			appendBool(enc.buf, t.Int == 1, false)
		case NullKind:
			enc.buf.WriteString("null")
		case Float64Kind:
			appendFloat(enc.buf, t.Num, false)
		case Int64Kind:
			enc.buf.B = strconv.AppendInt(enc.buf.B, t.Int, 10)
		case Uint64Kind:
			enc.buf.B = strconv.AppendUint(enc.buf.B, t.Uint, 10)
		case StringKind:
			appendEscapedString(enc.buf, t.Str)
		}
	}
}
