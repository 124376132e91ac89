package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mcastle/jsonfmt/internal/errors"
	"github.com/mcastle/jsonfmt/internal/models"
)

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []models.Token
		expected models.Value
	}{
		{"null", []models.Token{{Kind: models.TokenNull}}, models.Null{}},
		{"true", []models.Token{{Kind: models.TokenTrue}}, models.Bool(true)},
		{"false", []models.Token{{Kind: models.TokenFalse}}, models.Bool(false)},
		{"number", []models.Token{{Kind: models.TokenNumber, Num: 42}}, models.Number(42)},
		{"string", []models.Token{{Kind: models.TokenString, Str: "hello"}}, models.String("hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Parse(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParse_EmptyTokens(t *testing.T) {
	_, err := Parse(nil)
	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrUnexpectedEndOfInput, parseErr.Kind)
	assert.EqualError(t, err, "Unexpected end of input")
}

func TestParse_EmptyArray(t *testing.T) {
	value, err := Parse([]models.Token{
		{Kind: models.TokenLeftSquareBracket},
		{Kind: models.TokenRightSquareBracket},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Array{}, value)
}

func TestParse_ArrayWithLiterals(t *testing.T) {
	value, err := ParseString(`[null, true, false, "hello", 42]`)
	require.NoError(t, err)
	assert.Equal(t, models.Array{
		models.Null{},
		models.Bool(true),
		models.Bool(false),
		models.String("hello"),
		models.Number(42),
	}, value)
}

func TestParse_EmptyObject(t *testing.T) {
	value, err := Parse([]models.Token{
		{Kind: models.TokenLeftCurlyBracket},
		{Kind: models.TokenRightCurlyBracket},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Object{}, value)
}

func TestParse_ObjectWithLiterals(t *testing.T) {
	value, err := ParseString(`{"null": null, "true": true, "false": false, "string": "hello", "number": 42}`)
	require.NoError(t, err)
	assert.Equal(t, models.Object{
		{Key: "null", Value: models.Null{}},
		{Key: "true", Value: models.Bool(true)},
		{Key: "false", Value: models.Bool(false)},
		{Key: "string", Value: models.String("hello")},
		{Key: "number", Value: models.Number(42)},
	}, value)
}

func TestParse_NestedStructure(t *testing.T) {
	value, err := ParseString(`{"true": true, "object": {"null": null, "array": [42]}}`)
	require.NoError(t, err)
	assert.Equal(t, models.Object{
		{Key: "true", Value: models.Bool(true)},
		{Key: "object", Value: models.Object{
			{Key: "null", Value: models.Null{}},
			{Key: "array", Value: models.Array{models.Number(42)}},
		}},
	}, value)
}

func TestParse_DuplicateKeysPreserved(t *testing.T) {
	value, err := ParseString(`{"a":1,"a":2}`)
	require.NoError(t, err)
	assert.Equal(t, models.Object{
		{Key: "a", Value: models.Number(1)},
		{Key: "a", Value: models.Number(2)},
	}, value)
}

func TestParse_TrailingCommaRejected(t *testing.T) {
	value, err := Parse([]models.Token{
		{Kind: models.TokenLeftSquareBracket},
		{Kind: models.TokenNumber, Num: 1},
		{Kind: models.TokenComma},
		{Kind: models.TokenRightSquareBracket},
	})
	assert.Nil(t, value)
	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrUnexpectedToken, parseErr.Kind)
	assert.Equal(t, models.TokenRightSquareBracket, parseErr.Token.Kind)
	assert.EqualError(t, err, "Unexpected token: ']'")
}

func TestParse_NonStringObjectKey(t *testing.T) {
	_, err := ParseString(`{1: 2}`)
	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrUnexpectedToken, parseErr.Kind)
	assert.Equal(t, models.TokenNumber, parseErr.Token.Kind)
}

func TestParse_MissingColon(t *testing.T) {
	// A wrong token where the colon belongs reports end of input; the
	// colon check does not distinguish the two cases.
	for _, input := range []string{`{"a" 1}`, `{"a"`} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseString(input)
			var parseErr *Error
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, ErrUnexpectedEndOfInput, parseErr.Kind)
		})
	}
}

func TestParse_UnclosedContainers(t *testing.T) {
	for _, input := range []string{`[1, 2`, `{"a": 1`, `{"a": 1,`} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseString(input)
			var parseErr *Error
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, ErrUnexpectedEndOfInput, parseErr.Kind)
		})
	}
}

func TestParse_ValueInObjectBody(t *testing.T) {
	_, err := ParseString(`{"a": 1 2}`)
	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrUnexpectedToken, parseErr.Kind)
	assert.EqualError(t, err, "Unexpected token: '2'")
}

func TestParseString_WrapsTokenizeErrors(t *testing.T) {
	_, err := ParseString("nulll")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeTokenize, appErr.Type)
	assert.Contains(t, err.Error(), "Unexpected literal: 'nulll'")
}

func TestParseString_WrapsParseErrors(t *testing.T) {
	_, err := ParseString("[1,]")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeParse, appErr.Type)
	assert.Contains(t, err.Error(), "Unexpected token: ']'")
}
