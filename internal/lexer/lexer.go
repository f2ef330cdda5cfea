// Package lexer converts JSON text into the token sequence consumed by the
// parser. It scans the input once, left to right, with a single character
// of lookahead, and fails at the first invalid lexeme.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cthi/json-parse/internal/errors"
	"github.com/cthi/json-parse/internal/token"
)

// Options controls optional strictness of the lexer.
type Options struct {
	// RejectLeadingZeros makes a digit immediately following a lone '0' a
	// lex error. By default the '0' is emitted as a complete integer token
	// and the following digits are scanned as a separate token.
	RejectLeadingZeros bool
}

// Lexer scans a single in-memory input buffer. Each Lexer owns its own
// cursor; a Lexer is not safe for concurrent use and is consumed by one
// call to Tokenize.
type Lexer struct {
	input []rune
	pos   int
	opts  Options
}

// New creates a lexer for the given input with default options.
func New(input string) *Lexer {
	return NewWithOptions(input, Options{})
}

// NewWithOptions creates a lexer with explicit options.
func NewWithOptions(input string, opts Options) *Lexer {
	return &Lexer{input: []rune(input), opts: opts}
}

// peek returns the current character without consuming it.
func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

// next consumes and returns the current character.
func (l *Lexer) next() (rune, bool) {
	ch, ok := l.peek()
	if ok {
		l.pos++
	}
	return ch, ok
}

// Tokenize scans the whole input and returns its tokens in order, including
// whitespace tokens. The end-of-input sentinel terminates the scan without
// being appended. The first invalid lexeme aborts the scan with a lex error
// and no tokens.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.scan()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// scan produces the next token, or the EOF sentinel at end of input.
func (l *Lexer) scan() (token.Token, error) {
	ch, ok := l.peek()
	if !ok {
		return token.New(token.EOF), nil
	}

	switch ch {
	case '{':
		l.next()
		return token.New(token.ObjectStart), nil
	case '}':
		l.next()
		return token.New(token.ObjectEnd), nil
	case '[':
		l.next()
		return token.New(token.ArrayStart), nil
	case ']':
		l.next()
		return token.New(token.ArrayEnd), nil
	case ',':
		l.next()
		return token.New(token.Comma), nil
	case ':':
		l.next()
		return token.New(token.Colon), nil
	case '"':
		return l.scanString()
	case 't':
		return l.scanLiteral("true", token.True)
	case 'f':
		return l.scanLiteral("false", token.False)
	case 'n':
		return l.scanLiteral("null", token.Null)
	case ' ', '\n', '\t', '\r':
		l.next()
		return token.New(token.Whitespace), nil
	}
	if ch >= '0' && ch <= '9' {
		return l.scanNumber()
	}
	return token.Token{}, errors.NewLexError(
		fmt.Sprintf("unexpected character %q", ch),
		errors.ErrInvalidToken,
	)
}

// scanString consumes an opening quote and everything up to the next quote.
// Characters between the quotes are copied verbatim; backslash escapes are
// not decoded, so a backslash does not protect a following quote.
func (l *Lexer) scanString() (token.Token, error) {
	l.next() // opening quote

	var sb strings.Builder
	for {
		ch, ok := l.next()
		if !ok {
			return token.Token{}, errors.NewLexError("unterminated string", errors.ErrInvalidToken)
		}
		if ch == '"' {
			return token.NewString(sb.String()), nil
		}
		sb.WriteRune(ch)
	}
}

// scanLiteral matches the exact spelling of true, false or null. A mismatch
// at any position is an error; no partial literal token is ever emitted.
func (l *Lexer) scanLiteral(spelling string, kind token.Kind) (token.Token, error) {
	for _, want := range spelling {
		ch, ok := l.next()
		if !ok || ch != want {
			return token.Token{}, errors.NewLexError(
				fmt.Sprintf("malformed literal, expected %q", spelling),
				errors.ErrInvalidToken,
			)
		}
	}
	return token.New(kind), nil
}

// scanNumber consumes a run of decimal digits, optionally followed by '.'
// and a second run forming a float. A lone '0' is a complete integer token;
// further digits after it are left for the next scan unless
// RejectLeadingZeros is set.
func (l *Lexer) scanNumber() (token.Token, error) {
	ch, _ := l.peek()
	if ch == '0' {
		l.next()
		if next, ok := l.peek(); ok && next >= '0' && next <= '9' && l.opts.RejectLeadingZeros {
			return token.Token{}, errors.NewLexError("leading zero in number", errors.ErrInvalidToken)
		}
		return token.NewInteger(0), nil
	}

	whole := l.scanDigits()

	if ch, ok := l.peek(); !ok || ch != '.' {
		n, err := strconv.ParseInt(whole, 10, 32)
		if err != nil {
			return token.Token{}, errors.NewLexError(
				fmt.Sprintf("integer %s out of range", whole),
				errors.ErrInvalidToken,
			)
		}
		return token.NewInteger(int32(n)), nil
	}
	l.next() // decimal point

	frac := l.scanDigits()
	if frac == "" {
		return token.Token{}, errors.NewLexError("expected digit after decimal point", errors.ErrInvalidToken)
	}

	f, err := strconv.ParseFloat(whole+"."+frac, 64)
	if err != nil {
		return token.Token{}, errors.NewLexError(
			fmt.Sprintf("malformed number %s.%s", whole, frac),
			errors.ErrInvalidToken,
		)
	}
	return token.NewFloat(f), nil
}

// scanDigits consumes a run of consecutive decimal digits.
func (l *Lexer) scanDigits() string {
	var sb strings.Builder
	for {
		ch, ok := l.peek()
		if !ok || ch < '0' || ch > '9' {
			return sb.String()
		}
		l.next()
		sb.WriteRune(ch)
	}
}

// Tokenize scans input with default options in one call.
func Tokenize(input string) ([]token.Token, error) {
	return New(input).Tokenize()
}
