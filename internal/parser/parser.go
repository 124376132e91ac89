// Package parser builds a JSON value tree from the tokenizer's output via
// recursive descent with one-token lookahead.
package parser

import (
	"fmt"

	"github.com/mcastle/jsonfmt/internal/errors"
	"github.com/mcastle/jsonfmt/internal/models"
	"github.com/mcastle/jsonfmt/internal/tokenizer"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// ErrUnexpectedToken is a token that no grammar rule accepts at the
	// current position.
	ErrUnexpectedToken ErrorKind = iota
	// ErrUnexpectedEndOfInput is the token sequence ending mid-grammar.
	ErrUnexpectedEndOfInput
)

// Error reports the first structural violation. Token carries the
// offending token for ErrUnexpectedToken.
type Error struct {
	Kind  ErrorKind
	Token models.Token
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		return fmt.Sprintf("Unexpected token: '%s'", e.Token)
	case ErrUnexpectedEndOfInput:
		return "Unexpected end of input"
	}
	return "unknown parse error"
}

// cursor is a peekable position into the token sequence.
type cursor struct {
	tokens []models.Token
	pos    int
}

func (c *cursor) peek() (models.Token, bool) {
	if c.pos >= len(c.tokens) {
		return models.Token{}, false
	}
	return c.tokens[c.pos], true
}

func (c *cursor) next() (models.Token, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// Parse consumes the token sequence and returns the value tree. The first
// grammar violation aborts parsing; no partial tree is returned.
func Parse(tokens []models.Token) (models.Value, error) {
	c := &cursor{tokens: tokens}
	return parseValue(c)
}

// parseValue dispatches on the current token:
//
//	value := null | true | false | number | string | array | object
func parseValue(c *cursor) (models.Value, error) {
	tok, ok := c.peek()
	if !ok {
		return nil, &Error{Kind: ErrUnexpectedEndOfInput}
	}

	switch tok.Kind {
	case models.TokenNull:
		c.next()
		return models.Null{}, nil
	case models.TokenTrue:
		c.next()
		return models.Bool(true), nil
	case models.TokenFalse:
		c.next()
		return models.Bool(false), nil
	case models.TokenNumber:
		c.next()
		return models.Number(tok.Num), nil
	case models.TokenString:
		c.next()
		return models.String(tok.Str), nil
	case models.TokenLeftSquareBracket:
		return parseArray(c)
	case models.TokenLeftCurlyBracket:
		return parseObject(c)
	default:
		return nil, &Error{Kind: ErrUnexpectedToken, Token: tok}
	}
}

// parseArray parses: array := '[' (value (',' value)*)? ']'
// A comma must always be followed by another value, so trailing commas are
// rejected as an unexpected ']'.
func parseArray(c *cursor) (models.Value, error) {
	c.next() // consume the [

	arr := models.Array{}

	if tok, ok := c.peek(); ok {
		if tok.Kind == models.TokenRightSquareBracket {
			c.next()
			return arr, nil
		}
		v, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}

	for {
		tok, ok := c.peek()
		if !ok {
			return nil, &Error{Kind: ErrUnexpectedEndOfInput}
		}
		switch tok.Kind {
		case models.TokenComma:
			c.next()
			v, err := parseValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		case models.TokenRightSquareBracket:
			c.next()
			return arr, nil
		default:
			return nil, &Error{Kind: ErrUnexpectedToken, Token: tok}
		}
	}
}

// parseObject parses: object := '{' (member (',' member)*)? '}'
// Keys must be string tokens. Duplicate keys are neither detected nor
// merged; members are kept in parse order.
func parseObject(c *cursor) (models.Value, error) {
	c.next() // consume the {

	obj := models.Object{}

	if tok, ok := c.peek(); ok {
		switch tok.Kind {
		case models.TokenRightCurlyBracket:
			c.next()
			return obj, nil
		case models.TokenString:
			m, err := parseMember(c)
			if err != nil {
				return nil, err
			}
			obj = append(obj, m)
		default:
			return nil, &Error{Kind: ErrUnexpectedToken, Token: tok}
		}
	}

	for {
		tok, ok := c.peek()
		if !ok {
			return nil, &Error{Kind: ErrUnexpectedEndOfInput}
		}
		switch tok.Kind {
		case models.TokenComma:
			c.next()
			next, ok := c.peek()
			if !ok {
				return nil, &Error{Kind: ErrUnexpectedEndOfInput}
			}
			if next.Kind != models.TokenString {
				return nil, &Error{Kind: ErrUnexpectedToken, Token: next}
			}
			m, err := parseMember(c)
			if err != nil {
				return nil, err
			}
			obj = append(obj, m)
		case models.TokenRightCurlyBracket:
			c.next()
			return obj, nil
		default:
			return nil, &Error{Kind: ErrUnexpectedToken, Token: tok}
		}
	}
}

// parseMember parses: member := string ':' value
// A missing colon reports end of input even when some other token sits
// there instead; the colon check does not distinguish the two.
func parseMember(c *cursor) (models.Member, error) {
	key, ok := c.next()
	if !ok {
		return models.Member{}, &Error{Kind: ErrUnexpectedEndOfInput}
	}
	if key.Kind != models.TokenString {
		return models.Member{}, &Error{Kind: ErrUnexpectedToken, Token: key}
	}

	colon, ok := c.next()
	if !ok || colon.Kind != models.TokenColon {
		return models.Member{}, &Error{Kind: ErrUnexpectedEndOfInput}
	}

	v, err := parseValue(c)
	if err != nil {
		return models.Member{}, err
	}
	return models.Member{Key: key.Str, Value: v}, nil
}

// ParseString tokenizes and parses raw JSON text in one step, wrapping
// pipeline failures in the application error taxonomy.
func ParseString(input string) (models.Value, error) {
	tokens, err := tokenizer.Tokenize(input)
	if err != nil {
		return nil, errors.NewTokenizeError("invalid JSON input", err)
	}
	value, err := Parse(tokens)
	if err != nil {
		return nil, errors.NewParseError("invalid JSON structure", err)
	}
	return value, nil
}
