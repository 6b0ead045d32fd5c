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

// TokenKind identifies the lexical unit carried by a strongly typed Token.
//
// The set is closed: the Encoder dispatches over it exhaustively and every
// kind has a defined rendering, so token rendering never fails.
type TokenKind uint8

const (
	// BeginArrayKind indicates a `[` token.
	BeginArrayKind TokenKind = iota
	// EndArrayKind indicates a `]` token.
	EndArrayKind
	// BeginObjectKind indicates a `{` token.
	BeginObjectKind
	// EndObjectKind indicates a `}` token.
	EndObjectKind
	// ColonKind indicates a `:` token.
	ColonKind
	// CommaKind indicates a `,` token.
	CommaKind
	// BoolKind indicates a boolean scalar token.
	BoolKind
	// NullKind indicates the null literal token.
	NullKind
	// Float64Kind indicates a 64-bit floating point scalar token.
	Float64Kind
	// Int64Kind indicates a signed 64-bit integer scalar token.
	Int64Kind
	// Uint64Kind indicates an unsigned 64-bit integer scalar token.
	Uint64Kind
	// StringKind indicates a text scalar token.
	StringKind
)

// Token represents one atomic lexical unit of JSON output: a piece of
// structural punctuation or a scalar payload.
//
// It avoids the interface{} boxing overhead of an open-ended token
// hierarchy. The payload lives in the typed field selected by Kind; tokens
// are immutable values, produced by the caller and consumed once.
type Token struct {
	Str  string
	Num  float64
	Int  int64
	Uint uint64
	Kind TokenKind
}

// BeginArray constructs a `[` token.
func BeginArray() Token { return Token{Kind: BeginArrayKind} }

// EndArray constructs a `]` token.
func EndArray() Token { return Token{Kind: EndArrayKind} }

// BeginObject constructs a `{` token.
func BeginObject() Token { return Token{Kind: BeginObjectKind} }

// EndObject constructs a `}` token.
func EndObject() Token { return Token{Kind: EndObjectKind} }

// Colon constructs a `:` token.
func Colon() Token { return Token{Kind: ColonKind} }

// Comma constructs a `,` token.
func Comma() Token { return Token{Kind: CommaKind} }

// Bool constructs a boolean scalar token.
//
// Boolean tokens always render unquoted. A quoted boolean is represented at
// a higher level as a String token instead.
func Bool(v bool) Token {
	var i int64
	if v {
		i = 1
	}
	return Token{Kind: BoolKind, Int: i}
}

// Null constructs a null literal token.
func Null() Token { return Token{Kind: NullKind} }

// Float64 constructs a 64-bit floating point scalar token.
func Float64(v float64) Token { return Token{Kind: Float64Kind, Num: v} }

// Int64 constructs a signed 64-bit integer scalar token.
//
// Integer tokens always render as unquoted decimal; the safe-integer
// quoting rule applies only to the Encoder's direct append operations.
func Int64(v int64) Token { return Token{Kind: Int64Kind, Int: v} }

// Uint64 constructs an unsigned 64-bit integer scalar token.
func Uint64(v uint64) Token { return Token{Kind: Uint64Kind, Uint: v} }

// String constructs a text scalar token. The value is escaped and quoted
// when rendered.
func String(v string) Token { return Token{Kind: StringKind, Str: v} }
