// Package tokenizer converts raw JSON text into an ordered sequence of
// lexical tokens. It validates escape sequences and numeric literals but
// knows nothing about JSON's grammar; that is the parser's job.
package tokenizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mcastle/jsonfmt/internal/models"
)

// ErrorKind classifies tokenization failures.
type ErrorKind int

const (
	// ErrUnexpectedLiteral is a bareword that is not true, false or null.
	ErrUnexpectedLiteral ErrorKind = iota
	// ErrUnexpectedCharacter is reserved for characters no scan branch
	// handles. The bareword branch is the catch-all, so this is defensive.
	ErrUnexpectedCharacter
	// ErrUnexpectedEndOfInput is input ending inside a string or escape.
	ErrUnexpectedEndOfInput
	// ErrInvalidEscapeCharacter is a malformed backslash escape.
	ErrInvalidEscapeCharacter
	// ErrInvalidNumberLiteral is a number that fails float parsing.
	ErrInvalidNumberLiteral
)

// Error reports why tokenization stopped. Text carries the offending
// literal, escape text or character where the kind has one.
type Error struct {
	Kind ErrorKind
	Text string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedLiteral:
		return fmt.Sprintf("Unexpected literal: '%s'", e.Text)
	case ErrUnexpectedCharacter:
		return fmt.Sprintf("Unexpected character: '%s'", e.Text)
	case ErrUnexpectedEndOfInput:
		return "Unexpected end of input"
	case ErrInvalidEscapeCharacter:
		return fmt.Sprintf("Invalid escape character: '%s'", e.Text)
	case ErrInvalidNumberLiteral:
		return fmt.Sprintf("Invalid number literal: '%s'", e.Text)
	}
	return "unknown tokenize error"
}

// scanner is a peekable cursor over the input runes: peek inspects the
// current rune without consuming it, next consumes and advances.
type scanner struct {
	runes []rune
	pos   int
}

func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	return s.runes[s.pos], true
}

func (s *scanner) next() (rune, bool) {
	c, ok := s.peek()
	if ok {
		s.pos++
	}
	return c, ok
}

// Tokenize scans input left to right and returns its tokens in order.
// Whitespace is skipped and never emitted. On the first lexical error the
// scan aborts and no partial token sequence is returned.
func Tokenize(input string) ([]models.Token, error) {
	s := &scanner{runes: []rune(input)}
	var tokens []models.Token

	for {
		c, ok := s.peek()
		if !ok {
			break
		}

		switch {
		case c == ' ' || c == '\n' || c == '\t' || c == '\r':
			s.next()
		case c == '[':
			s.next()
			tokens = append(tokens, models.Token{Kind: models.TokenLeftSquareBracket})
		case c == ']':
			s.next()
			tokens = append(tokens, models.Token{Kind: models.TokenRightSquareBracket})
		case c == '{':
			s.next()
			tokens = append(tokens, models.Token{Kind: models.TokenLeftCurlyBracket})
		case c == '}':
			s.next()
			tokens = append(tokens, models.Token{Kind: models.TokenRightCurlyBracket})
		case c == ':':
			s.next()
			tokens = append(tokens, models.Token{Kind: models.TokenColon})
		case c == ',':
			s.next()
			tokens = append(tokens, models.Token{Kind: models.TokenComma})
		case c == '"':
			tok, err := s.scanString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case c == '-' || (c >= '0' && c <= '9'):
			tok, err := s.scanNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			tok, err := s.scanLiteral()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		}
	}

	return tokens, nil
}

// scanString consumes a double-quoted string, decoding escapes as it goes.
// Reaching end of input before the closing quote is an error.
func (s *scanner) scanString() (models.Token, error) {
	s.next() // opening quote

	var b strings.Builder
	for {
		c, ok := s.next()
		if !ok {
			return models.Token{}, &Error{Kind: ErrUnexpectedEndOfInput}
		}

		switch c {
		case '"':
			return models.Token{Kind: models.TokenString, Str: b.String()}, nil
		case '\\':
			e, ok := s.next()
			if !ok {
				return models.Token{}, &Error{Kind: ErrUnexpectedEndOfInput}
			}
			switch e {
			case '"':
				b.WriteRune('"')
			case '\\':
				b.WriteRune('\\')
			case '/':
				b.WriteRune('/')
			case 'b':
				b.WriteRune('\b')
			case 'f':
				b.WriteRune('\f')
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			case 't':
				b.WriteRune('\t')
			case 'u':
				r, err := s.scanUnicodeEscape()
				if err != nil {
					return models.Token{}, err
				}
				b.WriteRune(r)
			default:
				return models.Token{}, &Error{Kind: ErrInvalidEscapeCharacter, Text: string(e)}
			}
		default:
			b.WriteRune(c)
		}
	}
}

// scanUnicodeEscape decodes the four hex digits of a \uXXXX escape as one
// UTF-16 code unit. Accumulation stops early at a closing quote so that a
// short escape reports exactly the digits seen. Each escape decodes
// independently; surrogate halves are not paired and fail as invalid
// scalar values.
func (s *scanner) scanUnicodeEscape() (rune, error) {
	var hex strings.Builder
	for hex.Len() < 4 {
		c, ok := s.peek()
		if !ok || c == '"' {
			break
		}
		hex.WriteRune(c)
		s.next()
	}

	text := hex.String()
	if len(text) != 4 {
		return 0, &Error{Kind: ErrInvalidEscapeCharacter, Text: text}
	}

	v, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return 0, &Error{Kind: ErrInvalidEscapeCharacter, Text: text}
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, &Error{Kind: ErrInvalidEscapeCharacter, Text: text}
	}
	return r, nil
}

// scanNumber greedily accumulates number characters without positional
// validation, then lets the float parser decide. Malformed sequences like
// 1.2.3 are only rejected here, at parse-to-float time.
func (s *scanner) scanNumber() (models.Token, error) {
	var b strings.Builder
	for {
		c, ok := s.peek()
		if !ok {
			break
		}
		if (c >= '0' && c <= '9') || c == '-' || c == '+' || c == 'e' || c == 'E' || c == '.' {
			b.WriteRune(c)
			s.next()
			continue
		}
		break
	}

	text := b.String()
	n, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Out-of-range values saturate to 0 or Inf; only syntax errors reject.
		return models.Token{}, &Error{Kind: ErrInvalidNumberLiteral, Text: text}
	}
	return models.Token{Kind: models.TokenNumber, Num: n}, nil
}

// scanLiteral accumulates a bareword until a structural character,
// whitespace or end of input, then matches it against the three JSON
// keyword literals.
func (s *scanner) scanLiteral() (models.Token, error) {
	var b strings.Builder
	for {
		c, ok := s.peek()
		if !ok || isLiteralBoundary(c) {
			break
		}
		s.next()
		b.WriteRune(c)
	}

	switch text := b.String(); text {
	case "true":
		return models.Token{Kind: models.TokenTrue}, nil
	case "false":
		return models.Token{Kind: models.TokenFalse}, nil
	case "null":
		return models.Token{Kind: models.TokenNull}, nil
	default:
		return models.Token{}, &Error{Kind: ErrUnexpectedLiteral, Text: text}
	}
}

func isLiteralBoundary(c rune) bool {
	switch c {
	case '[', ']', '{', '}', ':', ',', ' ', '\n', '\t', '\r':
		return true
	}
	return false
}
