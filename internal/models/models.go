// Package models holds the data types shared by the tokenizer, parser and
// formatter: lexical tokens and the parsed JSON value tree.
package models

import "strconv"

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	TokenLeftSquareBracket  TokenKind = iota // [
	TokenRightSquareBracket                  // ]
	TokenLeftCurlyBracket                    // {
	TokenRightCurlyBracket                   // }
	TokenColon                               // :
	TokenComma                               // ,
	TokenTrue
	TokenFalse
	TokenNull
	TokenString
	TokenNumber
)

// Token is a single lexical unit produced by the tokenizer. Tokens are
// immutable: Str is only set for TokenString and Num only for TokenNumber.
type Token struct {
	Kind TokenKind
	Str  string
	Num  float64
}

// String reproduces the token's original textual form: punctuation and
// literals as themselves, strings re-quoted, numbers in default decimal form.
// Parser diagnostics rely on this rendering.
func (t Token) String() string {
	switch t.Kind {
	case TokenLeftSquareBracket:
		return "["
	case TokenRightSquareBracket:
		return "]"
	case TokenLeftCurlyBracket:
		return "{"
	case TokenRightCurlyBracket:
		return "}"
	case TokenColon:
		return ":"
	case TokenComma:
		return ","
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenNull:
		return "null"
	case TokenString:
		return `"` + t.Str + `"`
	case TokenNumber:
		return FormatNumber(t.Num)
	}
	return "<invalid token>"
}

// FormatNumber renders a JSON number as the shortest decimal text that
// round-trips back to the same float64, without exponent notation.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Value is one node of a parsed JSON document. It is a closed set of
// variants: Null, Bool, Number, String, Array and Object. The tree is
// finite and acyclic; it is built only by the parser and read by the
// formatter.
type Value interface {
	isValue()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON true/false literal.
type Bool bool

// Number is a JSON number. All numbers are 64-bit floats.
type Number float64

// String is a JSON string with escapes already decoded.
type String string

// Array is an ordered sequence of values. It may be empty.
type Array []Value

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered sequence of members. Keys are not required to be
// unique; duplicates are preserved in insertion order and never merged.
type Object []Member

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}
