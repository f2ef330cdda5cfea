// Package parser turns a token sequence into a parse tree by recursive
// descent over the JSON object grammar:
//
//	Object   := '{' '}'  |  '{' Members '}'
//	Members  := Pair (',' Members)?
//	Pair     := String ':' Value
//	Value    := String | Number | Object | Array | True | False | Null
//	Array    := '[' ']'  |  '[' Elements ']'
//	Elements := Value (',' Elements)?
//
// Each production consumes tokens left to right with one token of lookahead
// and no backtracking. The first grammar violation aborts the whole parse;
// there is no partial tree and no recovery.
package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/cthi/json-parse/internal/ast"
	"github.com/cthi/json-parse/internal/errors"
	"github.com/cthi/json-parse/internal/lexer"
	"github.com/cthi/json-parse/internal/token"
)

// cursor is an explicit index into a token sequence. Nested productions
// share one cursor and advance it linearly; every token is consumed at most
// once.
type cursor struct {
	toks []token.Token
	pos  int
}

// peek returns the next token without consuming it.
func (c *cursor) peek() (token.Token, bool) {
	if c.pos >= len(c.toks) {
		return token.Token{}, false
	}
	return c.toks[c.pos], true
}

// next consumes and returns the next token.
func (c *cursor) next() (token.Token, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// ParseTokens parses a whitespace-free token sequence as a top-level
// object. Tokens past the end of that object are ignored.
func ParseTokens(toks []token.Token) (ast.Object, error) {
	return parseObject(&cursor{toks: toks})
}

// ParseString tokenizes the input, strips whitespace tokens and parses the
// remainder as a top-level object. A bare array, string or number at the
// top level is rejected.
func ParseString(input string) (ast.Object, error) {
	if strings.TrimSpace(input) == "" {
		return ast.Object{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	toks, err := lexer.Tokenize(input)
	if err != nil {
		return ast.Object{}, err
	}
	return ParseTokens(token.StripWhitespace(toks))
}

// ParseFile parses the JSON document in the named file.
func ParseFile(filePath string) (ast.Object, error) {
	if strings.TrimSpace(filePath) == "" {
		return ast.Object{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return ast.Object{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return ast.Object{}, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return ast.Object{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}
	return ParseString(string(data))
}

func parseObject(c *cursor) (ast.Object, error) {
	if tok, ok := c.next(); !ok || tok.Kind != token.ObjectStart {
		return ast.Object{}, errors.NewParseError("expected '{'", errors.ErrExpectedToken)
	}

	if tok, ok := c.peek(); ok && tok.Kind == token.ObjectEnd {
		c.next()
		return ast.Object{}, nil
	}

	members, err := parseMembers(c)
	if err != nil {
		return ast.Object{}, err
	}

	if tok, ok := c.next(); !ok || tok.Kind != token.ObjectEnd {
		return ast.Object{}, errors.NewParseError("expected '}'", errors.ErrExpectedToken)
	}
	return ast.Object{Members: members}, nil
}

// parseMembers parses one or more comma-separated pairs. A comma commits to
// a further pair, so a trailing comma fails inside parsePair.
func parseMembers(c *cursor) (*ast.Members, error) {
	var pairs []ast.Pair
	for {
		pair, err := parsePair(c)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)

		tok, ok := c.peek()
		if !ok || tok.Kind != token.Comma {
			return &ast.Members{Pairs: pairs}, nil
		}
		c.next()
	}
}

func parsePair(c *cursor) (ast.Pair, error) {
	key, ok := c.next()
	if !ok || key.Kind != token.String {
		return ast.Pair{}, errors.NewParseError("expected string key", errors.ErrExpectedToken)
	}
	if colon, ok := c.next(); !ok || colon.Kind != token.Colon {
		return ast.Pair{}, errors.NewParseError("expected ':'", errors.ErrExpectedToken)
	}
	value, err := parseValue(c)
	if err != nil {
		return ast.Pair{}, err
	}
	return ast.Pair{Key: key.Str, Value: value}, nil
}

// parseValue dispatches on the next token's kind. Literal kinds consume
// exactly one token; object and array starts recurse without consuming, as
// parseObject and parseArray expect to see their opening delimiter.
func parseValue(c *cursor) (ast.Value, error) {
	tok, ok := c.peek()
	if !ok {
		return nil, errors.NewParseError("expected value", errors.ErrExpectedToken)
	}

	switch tok.Kind {
	case token.String:
		c.next()
		return ast.String{Text: tok.Str}, nil
	case token.Integer:
		c.next()
		return ast.Integer{Value: tok.Int}, nil
	case token.Float:
		c.next()
		return ast.Float{Value: tok.Float}, nil
	case token.True:
		c.next()
		return ast.True{}, nil
	case token.False:
		c.next()
		return ast.False{}, nil
	case token.Null:
		c.next()
		return ast.Null{}, nil
	case token.ObjectStart:
		obj, err := parseObject(c)
		if err != nil {
			return nil, err
		}
		return obj, nil
	case token.ArrayStart:
		arr, err := parseArray(c)
		if err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, errors.NewParseError(
			fmt.Sprintf("expected value, found %s", tok),
			errors.ErrExpectedToken,
		)
	}
}

func parseArray(c *cursor) (ast.Array, error) {
	if tok, ok := c.next(); !ok || tok.Kind != token.ArrayStart {
		return ast.Array{}, errors.NewParseError("expected '['", errors.ErrExpectedToken)
	}

	if tok, ok := c.peek(); ok && tok.Kind == token.ArrayEnd {
		c.next()
		return ast.Array{}, nil
	}

	elements, err := parseElements(c)
	if err != nil {
		return ast.Array{}, err
	}

	if tok, ok := c.next(); !ok || tok.Kind != token.ArrayEnd {
		return ast.Array{}, errors.NewParseError("expected ']'", errors.ErrExpectedToken)
	}
	return ast.Array{Elements: elements}, nil
}

// parseElements parses one or more comma-separated values, mirroring
// parseMembers.
func parseElements(c *cursor) (*ast.Elements, error) {
	var values []ast.Value
	for {
		value, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		values = append(values, value)

		tok, ok := c.peek()
		if !ok || tok.Kind != token.Comma {
			return &ast.Elements{Values: values}, nil
		}
		c.next()
	}
}
