package expr

import (
	"github.com/cockroachdb/errors"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokOp
	tokName
	tokLiteral
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// lex splits source into tokens. Date literals are runs of digits, '-' and
// '.', so a '-' operator must be separated from a literal on its left by
// whitespace.
func lex(source string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(source); {
		c := source[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", offset: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", offset: i})
			i++
		case c == '+' || c == '|' || c == '&' || c == '-':
			tokens = append(tokens, token{kind: tokOp, text: string(c), offset: i})
			i++
		case isLetter(c):
			start := i
			for i < len(source) && (isLetter(source[i]) || isDigit(source[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokName, text: source[start:i], offset: start})
		case isDigit(c) || c == '.':
			start := i
			for i < len(source) && (isDigit(source[i]) || source[i] == '-' || source[i] == '.') {
				i++
			}
			tokens = append(tokens, token{kind: tokLiteral, text: source[start:i], offset: start})
		default:
			return nil, errors.Wrapf(ErrSyntax, "offset %d: unexpected character %q", i, c)
		}
	}
	return append(tokens, token{kind: tokEOF, offset: len(source)}), nil
}
