package token

import "fmt"

// Kind identifies the lexical class of a token.
type Kind int

const (
	// EOF is the end-of-input sentinel. It terminates the scan loop inside
	// the lexer and never appears in a token sequence handed to the parser.
	EOF Kind = iota

	// Structural tokens
	ObjectStart // {
	ObjectEnd   // }
	ArrayStart  // [
	ArrayEnd    // ]
	Comma       // ,
	Colon       // :

	// Literal tokens
	True  // true
	False // false
	Null  // null

	// Whitespace is emitted for each space, tab, carriage return or newline
	// and is stripped before the sequence reaches the parser.
	Whitespace

	// Payload-carrying tokens
	String  // raw text between quotes, escapes not decoded
	Integer // decimal integer
	Float   // decimal number with a fractional part
)

// String returns a readable name for the token kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case ObjectStart:
		return "OBJECT_START"
	case ObjectEnd:
		return "OBJECT_END"
	case ArrayStart:
		return "ARRAY_START"
	case ArrayEnd:
		return "ARRAY_END"
	case Comma:
		return "COMMA"
	case Colon:
		return "COLON"
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	case Null:
		return "NULL"
	case Whitespace:
		return "WHITESPACE"
	case String:
		return "STRING"
	case Integer:
		return "INTEGER"
	case Float:
		return "FLOAT"
	default:
		return "UNKNOWN"
	}
}

// Token is one indivisible lexical unit produced by the lexer. Only the
// payload field matching the kind is meaningful; tokens are immutable once
// produced.
type Token struct {
	Kind  Kind
	Str   string  // String kind
	Int   int32   // Integer kind
	Float float64 // Float kind
}

// New creates a payload-free token of the given kind.
func New(kind Kind) Token {
	return Token{Kind: kind}
}

// NewString creates a string token carrying the raw text between quotes.
func NewString(s string) Token {
	return Token{Kind: String, Str: s}
}

// NewInteger creates an integer token.
func NewInteger(n int32) Token {
	return Token{Kind: Integer, Int: n}
}

// NewFloat creates a floating-point token.
func NewFloat(f float64) Token {
	return Token{Kind: Float, Float: f}
}

// String returns a readable representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("STRING(%q)", t.Str)
	case Integer:
		return fmt.Sprintf("INTEGER(%d)", t.Int)
	case Float:
		return fmt.Sprintf("FLOAT(%g)", t.Float)
	default:
		return t.Kind.String()
	}
}

// StripWhitespace returns the sequence with all whitespace tokens removed,
// preserving the order of the remaining tokens. The parser expects its input
// to have been filtered this way.
func StripWhitespace(toks []Token) []Token {
	filtered := make([]Token, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == Whitespace {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}
