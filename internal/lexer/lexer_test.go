package lexer

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cthi/json-parse/internal/errors"
	"github.com/cthi/json-parse/internal/token"
)

func TestTokenize_StructuralCharacters(t *testing.T) {
	toks, err := Tokenize("{}[],:")
	require.NoError(t, err)

	expected := []token.Token{
		token.New(token.ObjectStart),
		token.New(token.ObjectEnd),
		token.New(token.ArrayStart),
		token.New(token.ArrayEnd),
		token.New(token.Comma),
		token.New(token.Colon),
	}
	assert.Equal(t, expected, toks)
}

func TestTokenize_Literals(t *testing.T) {
	toks, err := Tokenize("true false null")
	require.NoError(t, err)

	expected := []token.Token{
		token.New(token.True),
		token.New(token.Whitespace),
		token.New(token.False),
		token.New(token.Whitespace),
		token.New(token.Null),
	}
	assert.Equal(t, expected, toks)
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{"zero", "0", []token.Token{token.NewInteger(0)}},
		{"integer", "10", []token.Token{token.NewInteger(10)}},
		{"larger integer", "1234", []token.Token{token.NewInteger(1234)}},
		{"float", "1.5", []token.Token{token.NewFloat(1.5)}},
		{"float with long fraction", "3.25", []token.Token{token.NewFloat(3.25)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, toks)
		})
	}
}

// A lone '0' is a complete integer token, so further digits begin a second
// number token.
func TestTokenize_LeadingZeroIsPermissiveByDefault(t *testing.T) {
	toks, err := Tokenize("01")
	require.NoError(t, err)

	expected := []token.Token{
		token.NewInteger(0),
		token.NewInteger(1),
	}
	assert.Equal(t, expected, toks)
}

func TestTokenize_LeadingZeroRejectedInStrictMode(t *testing.T) {
	_, err := NewWithOptions("01", Options{RejectLeadingZeros: true}).Tokenize()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidToken))
}

func TestTokenize_Strings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", `"value"`, "value"},
		{"empty", `""`, ""},
		{"spaces kept verbatim", `"a b"`, "a b"},
		{"backslash kept verbatim", `"a\nb"`, `a\nb`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, toks, 1)
			assert.Equal(t, token.NewString(tt.expected), toks[0])
		})
	}
}

func TestTokenize_Whitespace(t *testing.T) {
	toks, err := Tokenize(" \n\t\r")
	require.NoError(t, err)

	expected := []token.Token{
		token.New(token.Whitespace),
		token.New(token.Whitespace),
		token.New(token.Whitespace),
		token.New(token.Whitespace),
	}
	assert.Equal(t, expected, toks)
}

func TestTokenize_SimpleDocument(t *testing.T) {
	toks, err := Tokenize(`{"key": 5}`)
	require.NoError(t, err)

	expected := []token.Token{
		token.New(token.ObjectStart),
		token.NewString("key"),
		token.New(token.Colon),
		token.New(token.Whitespace),
		token.NewInteger(5),
		token.New(token.ObjectEnd),
	}
	assert.Equal(t, expected, toks)
}

func TestTokenize_LexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unexpected character", "@"},
		{"unexpected letter", "x"},
		{"unterminated string", `{"a`},
		{"misspelled true", "tru"},
		{"misspelled false", "flase"},
		{"misspelled null", "nul"},
		{"interrupted literal", "tr,ue"},
		{"dot without fraction", "1."},
		{"dot with non-digit", "1.x"},
		{"fraction after lone zero", "0.5"},
		{"integer overflow", "9999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.Nil(t, toks, "no tokens on a lex failure")
			assert.True(t, stderrors.Is(err, errors.ErrInvalidToken), "lex failures wrap ErrInvalidToken")

			var appErr *errors.AppError
			require.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, errors.ErrorTypeLex, appErr.Type)
		})
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	toks, err := Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, toks, "the end-of-input sentinel is never appended")
}

func TestTokenize_SentinelNeverEmitted(t *testing.T) {
	toks, err := Tokenize(`{"a": [1, 2.5, true]}`)
	require.NoError(t, err)
	for _, tok := range toks {
		assert.NotEqual(t, token.EOF, tok.Kind)
	}
}
