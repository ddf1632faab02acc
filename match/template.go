package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/scanner"
)

// Compile compiles a syntax template into a pattern.
//
// Templates use s-expression syntax. Symbol '_' is a wildcard, symbols
// starting with '?' are captures, other symbols, integers and strings
// are literals. A capture name may only occur once in a template.
//
//     (define (?name . ?params) ?body)
//
func Compile(template string) (Pattern, error) {
	toks, err := scanner.Tokenize(template)
	if err != nil {
		return nil, err
	}
	tc := &templateCompiler{toks: toks, captures: make(map[string]bool)}
	p, err := tc.pattern()
	if err != nil {
		return nil, err
	}
	if tc.pos < len(tc.toks) {
		return nil, tc.errorf("extra input after pattern: %s", tc.toks[tc.pos])
	}
	tracer().Debugf("compiled template %q -> %s", template, p)
	return p, nil
}

// MustCompile is like Compile, but panics on malformed templates.
func MustCompile(template string) Pattern {
	p, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return p
}

type templateCompiler struct {
	toks     []scanner.Token
	pos      int
	captures map[string]bool
}

func (tc *templateCompiler) errorf(format string, args ...interface{}) error {
	return schemer.Errorf(schemer.SyntaxError, nil, "template: "+format, args...)
}

func (tc *templateCompiler) next() (scanner.Token, bool) {
	if tc.pos >= len(tc.toks) {
		return scanner.Token{Type: scanner.EOF}, false
	}
	t := tc.toks[tc.pos]
	tc.pos++
	return t, true
}

func (tc *templateCompiler) peek() scanner.TokType {
	if tc.pos >= len(tc.toks) {
		return scanner.EOF
	}
	return tc.toks[tc.pos].Type
}

func (tc *templateCompiler) pattern() (Pattern, error) {
	t, ok := tc.next()
	if !ok {
		return nil, tc.errorf("unexpected end of template")
	}
	switch t.Type {
	case scanner.LParen:
		return tc.list()
	case scanner.Symbol:
		return tc.symbol(t.Lexeme)
	case scanner.Integer:
		n, err := strconv.ParseInt(t.Lexeme, 10, 64)
		if err != nil {
			return nil, tc.errorf("invalid integer %s", t.Lexeme)
		}
		return Literal(n), nil
	case scanner.String:
		s, err := strconv.Unquote(t.Lexeme)
		if err != nil {
			return nil, tc.errorf("invalid string %s", t.Lexeme)
		}
		return Literal(s), nil
	}
	return nil, tc.errorf("unexpected token %s", t)
}

func (tc *templateCompiler) symbol(name string) (Pattern, error) {
	if name == "_" {
		return Wildcard(), nil
	}
	if strings.HasPrefix(name, "?") && len(name) > 1 {
		name = name[1:]
		if tc.captures[name] {
			return nil, tc.errorf("duplicate capture ?%s", name)
		}
		tc.captures[name] = true
		return Capture(name), nil
	}
	return Symbol(name), nil
}

// list is called after the opening parenthesis has been consumed.
func (tc *templateCompiler) list() (Pattern, error) {
	var elems []Pattern
	for {
		switch tc.peek() {
		case scanner.EOF:
			return nil, tc.errorf("unbalanced parenthesis")
		case scanner.RParen:
			tc.pos++
			return List(elems...), nil
		case scanner.Dot:
			tc.pos++
			if len(elems) == 0 {
				return nil, tc.errorf("dot at start of list")
			}
			rest, err := tc.pattern()
			if err != nil {
				return nil, err
			}
			if t, _ := tc.next(); t.Type != scanner.RParen {
				return nil, tc.errorf("expected ) after dotted tail, have %s", t)
			}
			return ListRest(rest, elems...), nil
		}
		p, err := tc.pattern()
		if err != nil {
			return nil, err
		}
		elems = append(elems, p)
	}
}
