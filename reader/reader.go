/*
Package reader reads s-expressions from text into object trees.

The reader is a small recursive-descent parser on top of package scanner.
It understands lists, dotted pairs, the quote abbreviation, integers,
floats, R7RS number prefixes (radix and exactness), strings and symbols.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reader

import (
	"strconv"

	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schemer/runtime"
	"github.com/npillmayer/schemer/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'schemer.reader'.
func tracer() tracing.Trace {
	return tracing.Select("schemer.reader")
}

// Reader reads data, interning symbols in a symbol table.
type Reader struct {
	symtab *runtime.SymbolTable
	quote  runtime.Symbol
}

// New creates a reader for a symbol table.
func New(symtab *runtime.SymbolTable) *Reader {
	return &Reader{
		symtab: symtab,
		quote:  symtab.Intern("quote"),
	}
}

// Read reads exactly one datum from input. Input containing more than one
// datum, or none at all, is a syntax error.
func (r *Reader) Read(input string) (*object.Object, error) {
	data, err := r.ReadAll(input)
	if err != nil {
		return nil, err
	}
	if len(data) != 1 {
		return nil, schemer.Errorf(schemer.SyntaxError, nil,
			"expected exactly one datum, have %d", len(data))
	}
	return data[0], nil
}

// ReadAll reads all top-level data from input, in order.
func (r *Reader) ReadAll(input string) ([]*object.Object, error) {
	p, err := r.newParser(input)
	if err != nil {
		return nil, err
	}
	var data []*object.Object
	for p.lookahead.Type != scanner.EOF {
		d, err := p.datum()
		if err != nil {
			tracer().Errorf("read: %v", err)
			return nil, err
		}
		tracer().Debugf("read datum %s", d)
		data = append(data, d)
	}
	return data, nil
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	*Reader
	scan      *scanner.Scanner
	lookahead scanner.Token
}

func (r *Reader) newParser(input string) (*parser, error) {
	s, err := scanner.New(input)
	if err != nil {
		return nil, err
	}
	p := &parser{Reader: r, scan: s}
	if err = p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() (err error) {
	p.lookahead, err = p.scan.NextToken()
	return
}

func (p *parser) syntaxError(format string, args ...interface{}) error {
	t := p.lookahead
	return schemer.Errorf(schemer.SyntaxError, t, "%d:%d: "+format,
		append([]interface{}{t.Line, t.Column}, args...)...)
}

func (p *parser) datum() (*object.Object, error) {
	t := p.lookahead
	switch t.Type {
	case scanner.EOF:
		return nil, p.syntaxError("unexpected end of input")
	case scanner.RParen:
		return nil, p.syntaxError("unbalanced parenthesis")
	case scanner.Dot:
		return nil, p.syntaxError("unexpected dot")
	case scanner.LParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.list(t)
	case scanner.Quote:
		if err := p.advance(); err != nil {
			return nil, err
		}
		d, err := p.datum()
		if err != nil {
			return nil, err
		}
		return object.List(object.Symbol(p.quote), d), nil
	}
	d, err := p.atom(t)
	if err != nil {
		return nil, err
	}
	return d, p.advance()
}

// list is called with the opening parenthesis consumed.
func (p *parser) list(open scanner.Token) (*object.Object, error) {
	lb := object.NewListBuilder()
	for {
		switch p.lookahead.Type {
		case scanner.EOF:
			return nil, p.syntaxError("missing closing parenthesis for list %s",
				open.Span.Extend(p.lookahead.Span))
		case scanner.RParen:
			return lb.Build(), p.advance()
		case scanner.Dot:
			if lb.Len() == 0 {
				return nil, p.syntaxError("dot at start of list")
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			tail, err := p.datum()
			if err != nil {
				return nil, err
			}
			if p.lookahead.Type != scanner.RParen {
				return nil, p.syntaxError("expected ) after dotted tail, have %s", p.lookahead)
			}
			return lb.SetTail(tail).Build(), p.advance()
		}
		d, err := p.datum()
		if err != nil {
			return nil, err
		}
		lb.Append(d)
	}
}

func (p *parser) atom(t scanner.Token) (*object.Object, error) {
	switch t.Type {
	case scanner.Symbol:
		return object.Symbol(p.symtab.Intern(t.Lexeme)), nil
	case scanner.String:
		s, err := strconv.Unquote(t.Lexeme) // Go escapes ⊇ R7RS escapes in practice
		if err != nil {
			return nil, schemer.Errorf(schemer.SyntaxError, t, "malformed string %s", t.Lexeme)
		}
		return object.String(s), nil
	case scanner.Integer, scanner.Float, scanner.Prefixed, scanner.Malformed:
		return parseNumber(t)
	}
	return nil, p.syntaxError("unexpected token %s", t)
}
