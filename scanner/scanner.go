package scanner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/schemer"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokType is a category type for a Token.
type TokType int

// Token categories
const (
	EOF       TokType = iota // end of input
	LParen                   // (
	RParen                   // )
	Dot                      // .
	Quote                    // '
	Integer                  // 42, -7
	Float                    // 3.14, .5, 1e10
	Prefixed                 // #x1F, #b101, #e1.5, …
	Malformed                // looks like a number, but is not one
	String                   // "…"
	Symbol                   // lambda, x0, +, ?params
)

var tokTypeNames = []string{"EOF", "(", ")", ".", "'", "INT", "FLOAT", "PREFIXED",
	"MALFORMED", "STRING", "SYMBOL"}

func (t TokType) String() string {
	if int(t) < len(tokTypeNames) {
		return tokTypeNames[t]
	}
	return fmt.Sprintf("TOK(%d)", int(t))
}

// Token is the token type produced by the scanner.
type Token struct {
	Type   TokType
	Lexeme string
	Span   schemer.Span // byte offsets of the lexeme
	Line   int
	Column int
}

func (t Token) String() string {
	if t.Type == EOF {
		return "<eof>"
	}
	return fmt.Sprintf("%s %q @%d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}

// --- Lexer -----------------------------------------------------------------

// Character classes for symbols, following R7RS identifiers (roughly).
const (
	initial    = `a-zA-Z!$%&\*/:<=>\?\^_~\+\-`
	subsequent = initial + `0-9\.@\#`
)

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time compilation of the DFA

// Patterns are added in order of precedence: lexmachine will prefer the
// longest match, and for matches of equal length the first pattern added.
func initLexer() {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`;[^\n]*\n?`), skip) // skip comments
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`\(`), makeToken(LParen))
		lexer.Add([]byte(`\)`), makeToken(RParen))
		lexer.Add([]byte(`\.`), makeToken(Dot))
		lexer.Add([]byte(`'`), makeToken(Quote))
		lexer.Add([]byte(`[\+\-]?[0-9]+`), makeToken(Integer))
		lexer.Add([]byte(`[\+\-]?([0-9]+\.[0-9]*|\.[0-9]+)([eE][\+\-]?[0-9]+)?`), makeToken(Float))
		lexer.Add([]byte(`[\+\-]?[0-9]+[eE][\+\-]?[0-9]+`), makeToken(Float))
		lexer.Add([]byte(`\#[bBoOdDxXeEiI][\#a-zA-Z0-9\.\+\-]*`), makeToken(Prefixed))
		lexer.Add([]byte(`[\+\-]?[0-9][a-zA-Z0-9\.\+\-_]*`), makeToken(Malformed))
		lexer.Add([]byte(`"([^"\\]|\\.)*"`), makeToken(String))
		lexer.Add([]byte(`[`+initial+`][`+subsequent+`]*`), makeToken(Symbol))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
}

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a pre-defined action which wraps a scanned match into a token.
func makeToken(typ TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// --- Scanner ---------------------------------------------------------------

// Scanner is a scanner for one piece of input text.
type Scanner struct {
	scanner *lexmachine.Scanner
	input   string
	done    bool
}

// New creates a scanner for a given input.
func New(input string) (*Scanner, error) {
	initLexer()
	if lexerErr != nil {
		return nil, lexerErr
	}
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, input: input}, nil
}

// NextToken returns the next token of the input. At the end of input it will
// return a token of type EOF, for every subsequent call. Input which cannot be
// scanned results in a SyntaxError.
func (s *Scanner) NextToken() (Token, error) {
	if s.done {
		return s.eof(), nil
	}
	tok, err, eof := s.scanner.Next()
	if err != nil {
		s.done = true
		if ui, is := err.(*machines.UnconsumedInput); is {
			return Token{}, schemer.Errorf(schemer.SyntaxError, nil,
				"unexpected input at %d:%d: %q", ui.FailLine, ui.FailColumn, s.excerpt(ui.StartTC))
		}
		return Token{}, schemer.Errorf(schemer.SyntaxError, nil, "%v", err)
	}
	if eof {
		s.done = true
		return s.eof(), nil
	}
	token := tok.(*lexmachine.Token)
	t := Token{
		Type:   TokType(token.Type),
		Lexeme: string(token.Lexeme),
		Span:   schemer.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		Line:   token.StartLine,
		Column: token.StartColumn,
	}
	tracer().Debugf("token %s", t)
	return t, nil
}

func (s *Scanner) eof() Token {
	n := uint64(len(s.input))
	return Token{Type: EOF, Span: schemer.Span{n, n}}
}

func (s *Scanner) excerpt(tc int) string {
	if tc >= len(s.input) {
		return ""
	}
	end := tc + 10
	if end > len(s.input) {
		end = len(s.input)
	}
	return s.input[tc:end]
}

// Tokenize splits an input into tokens, up to and excluding EOF.
func Tokenize(input string) ([]Token, error) {
	s, err := New(input)
	if err != nil {
		return nil, err
	}
	var toks []Token
	for {
		t, err := s.NextToken()
		if err != nil {
			return toks, err
		}
		if t.Type == EOF {
			return toks, nil
		}
		toks = append(toks, t)
	}
}
