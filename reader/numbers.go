package reader

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schemer/scanner"
)

type exactness int8

const (
	unspecified exactness = iota
	exact
	inexact
)

// parseNumber converts a numeric token into an integer or float object.
func parseNumber(t scanner.Token) (*object.Object, error) {
	invalid := func() error {
		return schemer.Errorf(schemer.InvalidNumericConstant, t,
			"%d:%d: invalid numeric constant %s", t.Line, t.Column, t.Lexeme)
	}
	lexeme, radix, ex, ok := prefixes(t.Lexeme)
	if !ok || lexeme == "" || t.Type == scanner.Malformed {
		return nil, invalid()
	}
	if n, err := strconv.ParseInt(lexeme, radix, 64); err == nil {
		if ex == inexact {
			return object.Float(float64(n)), nil
		}
		return object.Integer(n), nil
	}
	if radix != 10 || !looksLikeFloat(lexeme) {
		return nil, invalid()
	}
	x, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return nil, invalid()
	}
	if ex == exact {
		if x != math.Trunc(x) || x > math.MaxInt64 || x < math.MinInt64 {
			return nil, invalid()
		}
		return object.Integer(int64(x)), nil
	}
	return object.Float(x), nil
}

// prefixes strips at most one radix and one exactness prefix, in any order.
func prefixes(lexeme string) (string, int, exactness, bool) {
	radix, ex := 0, unspecified
	for strings.HasPrefix(lexeme, "#") {
		if len(lexeme) < 2 {
			return lexeme, 10, ex, false
		}
		switch lexeme[1] {
		case 'x', 'X':
			if radix != 0 {
				return lexeme, 10, ex, false
			}
			radix = 16
		case 'b', 'B':
			if radix != 0 {
				return lexeme, 10, ex, false
			}
			radix = 2
		case 'o', 'O':
			if radix != 0 {
				return lexeme, 10, ex, false
			}
			radix = 8
		case 'd', 'D':
			if radix != 0 {
				return lexeme, 10, ex, false
			}
			radix = 10
		case 'e', 'E':
			if ex != unspecified {
				return lexeme, 10, ex, false
			}
			ex = exact
		case 'i', 'I':
			if ex != unspecified {
				return lexeme, 10, ex, false
			}
			ex = inexact
		default:
			return lexeme, 10, ex, false
		}
		lexeme = lexeme[2:]
	}
	if radix == 0 {
		radix = 10
	}
	return lexeme, radix, ex, true
}

func looksLikeFloat(s string) bool {
	if s == "" || strings.ContainsAny(s, "xXpP_") {
		return false // ParseFloat would accept hex floats and underscores
	}
	return strings.ContainsAny(s, ".eE")
}
