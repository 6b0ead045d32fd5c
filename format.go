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
	"encoding/base64"
	"math"
	"slices"
	"strconv"
	"unicode/utf8"
)

// maxSafeInteger is the largest integer magnitude a float64 represents
// exactly (2^53-1). Integers beyond it are quoted so that consumers parsing
// JSON numbers as doubles never lose precision silently.
const maxSafeInteger = 1<<53 - 1

// int64 range bounds as float64 values; 2^63 itself is excluded.
const (
	minInt64Float = -(1 << 63)
	maxInt64Float = 1 << 63
)

// _escape marks the ASCII bytes that cannot pass through a JSON string
// verbatim: the C0 controls, the quote, the backslash, and DEL (the first
// scalar of the C1 escape range).
var _escape [utf8.RuneSelf]bool

func init() {
	for i := 0; i < 0x20; i++ {
		_escape[i] = true
	}
	_escape['"'] = true
	_escape['\\'] = true
	_escape[0x7F] = true
}

var _hexUpper = "0123456789ABCDEF"

func appendBool(b *buffer, v bool, quote bool) {
	if quote {
		b.WriteByte('"')
	}
	b.B = strconv.AppendBool(b.B, v)
	if quote {
		b.WriteByte('"')
	}
}

func appendInt(b *buffer, v int64, quote bool) {
	quote = quote || v > maxSafeInteger || v < -maxSafeInteger
	if quote {
		b.WriteByte('"')
	}
	b.B = strconv.AppendInt(b.B, v, 10)
	if quote {
		b.WriteByte('"')
	}
}

func appendUint(b *buffer, v uint64, quote bool) {
	quote = quote || v > maxSafeInteger
	if quote {
		b.WriteByte('"')
	}
	b.B = strconv.AppendUint(b.B, v, 10)
	if quote {
		b.WriteByte('"')
	}
}

func appendFloat(b *buffer, v float64, quote bool) {
	// NaN and the infinities have no JSON number form; they are always
	// rendered as strings, independent of quote.
	switch {
	case math.IsNaN(v):
		b.WriteString(`"NaN"`)
		return
	case math.IsInf(v, 1):
		b.WriteString(`"Infinity"`)
		return
	case math.IsInf(v, -1):
		b.WriteString(`"-Infinity"`)
		return
	}
	if quote {
		b.WriteByte('"')
	}
	// An integral double inside the signed 64-bit range prints as a plain
	// integer, so 3.0 renders as 3 rather than 3.0 or 3e+00.
	if v >= minInt64Float && v < maxInt64Float {
		if i := int64(v); float64(i) == v {
			b.B = strconv.AppendInt(b.B, i, 10)
			if quote {
				b.WriteByte('"')
			}
			return
		}
	}
	b.B = strconv.AppendFloat(b.B, v, 'g', -1, 64)
	if quote {
		b.WriteByte('"')
	}
}

// appendEscapedString appends s wrapped in double quotes, escaping JSON
// significant characters without allocating memory.
//
// It copies unescaped spans in chunks and walks the input by Unicode scalar
// value: the C1 controls (U+0080-U+009F) are multi-byte in UTF-8, so a pure
// byte loop cannot classify them.
func appendEscapedString(b *buffer, s string) {
	b.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		if c := s[i]; c < utf8.RuneSelf {
			if !_escape[c] {
				i++
				continue
			}
			if start < i {
				b.WriteString(s[start:i])
			}
			switch c {
			case '\b':
				b.WriteString(`\b`)
			case '\t':
				b.WriteString(`\t`)
			case '\n':
				b.WriteString(`\n`)
			case '\f':
				b.WriteString(`\f`)
			case '\r':
				b.WriteString(`\r`)
			case '"':
				b.WriteString(`\"`)
			case '\\':
				b.WriteString(`\\`)
			default:
				appendHexEscape(b, c)
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r <= 0x9F {
			if start < i {
				b.WriteString(s[start:i])
			}
			appendHexEscape(b, byte(r))
			i += size
			start = i
			continue
		}
		i += size
	}
	if start < len(s) {
		b.WriteString(s[start:])
	}
	b.WriteByte('"')
}

func appendHexEscape(b *buffer, c byte) {
	b.WriteString(`\u00`)
	b.WriteByte(_hexUpper[c>>4])
	b.WriteByte(_hexUpper[c&0xF])
}

// appendBase64 appends v as a quoted standard-alphabet Base64 string with
// `=` padding. The alphabet contains no JSON significant characters, so the
// result needs no escaping.
func appendBase64(b *buffer, v []byte) {
	b.WriteByte('"')
	n := base64.StdEncoding.EncodedLen(len(v))
	b.B = slices.Grow(b.B, n)
	base64.StdEncoding.Encode(b.B[len(b.B):][:n], v)
	b.B = b.B[:len(b.B)+n]
	b.WriteByte('"')
}
