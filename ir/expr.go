package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schemer/runtime"
)

// Expression is a node of the IR.
type Expression interface {
	// IsAtomic is true for expressions denoting a value without further
	// evaluation.
	IsAtomic() bool
	String() string
	expression()
}

// Nil is the empty list.
type Nil struct{}

// Integer is an integer constant.
type Integer struct {
	Value int64
}

// Float is a floating point constant.
type Float struct {
	Value float64
}

// Variable is a reference to a variable.
type Variable struct {
	Symbol runtime.Symbol
}

// Lambda is a function with a single-expression body.
type Lambda struct {
	Params []runtime.Symbol
	Body   Expression
}

// Primitive marks the operator of an intrinsic call. Name may be empty.
type Primitive struct {
	Name string
}

// Let binds the value of Init to Var while evaluating Body.
type Let struct {
	Var  runtime.Symbol
	Init Expression
	Body Expression
}

// If is a conditional with two arms.
type If struct {
	Cond Expression
	Then Expression
	Else Expression
}

// Apply is a procedure call. If Proc is a Primitive, Apply denotes an intrinsic
// call.
type Apply struct {
	Proc Expression
	Args []Expression
}

// DefVar is a top-level variable definition.
type DefVar struct {
	Name runtime.Symbol
	Expr Expression
}

// DeFunc is a top-level function definition.
type DeFunc struct {
	Name   runtime.Symbol
	Params []runtime.Symbol
	Body   Expression
}

func (Nil) expression()       {}
func (Integer) expression()   {}
func (Float) expression()     {}
func (Variable) expression()  {}
func (Lambda) expression()    {}
func (Primitive) expression() {}
func (Let) expression()       {}
func (If) expression()        {}
func (Apply) expression()     {}
func (DefVar) expression()    {}
func (DeFunc) expression()    {}

// IsAtomic is false for Nil, as the empty list does not occur in operand
// position of the core language.
func (Nil) IsAtomic() bool       { return false }
func (Integer) IsAtomic() bool   { return true }
func (Float) IsAtomic() bool     { return true }
func (Variable) IsAtomic() bool  { return true }
func (Lambda) IsAtomic() bool    { return true }
func (Primitive) IsAtomic() bool { return true }
func (Let) IsAtomic() bool       { return false }
func (If) IsAtomic() bool        { return false }
func (Apply) IsAtomic() bool     { return false }
func (DefVar) IsAtomic() bool    { return false }
func (DeFunc) IsAtomic() bool    { return false }

// IsPrimitiveCall is a predicate: is e an Apply of a Primitive operator?
func IsPrimitiveCall(e Expression) bool {
	if app, ok := e.(Apply); ok {
		_, isprim := app.Proc.(Primitive)
		return isprim
	}
	return false
}

// --- Printing --------------------------------------------------------------

func (Nil) String() string { return "'()" }

func (e Integer) String() string { return strconv.FormatInt(e.Value, 10) }

func (e Float) String() string { return object.FormatFloat(e.Value) }

func (e Variable) String() string { return e.Symbol.Name() }

func (e Lambda) String() string {
	return fmt.Sprintf("(lambda (%s) %s)", symbols(e.Params), e.Body)
}

func (e Primitive) String() string {
	if e.Name == "" {
		return "<primitive>"
	}
	return "<primitive " + e.Name + ">"
}

func (e Let) String() string {
	return fmt.Sprintf("(let (%s %s) %s)", e.Var.Name(), e.Init, e.Body)
}

func (e If) String() string {
	return fmt.Sprintf("(if %s %s %s)", e.Cond, e.Then, e.Else)
}

func (e Apply) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(e.Proc.String())
	for _, a := range e.Args {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (e DefVar) String() string {
	return fmt.Sprintf("(define %s %s)", e.Name.Name(), e.Expr)
}

func (e DeFunc) String() string {
	if len(e.Params) == 0 {
		return fmt.Sprintf("(define (%s) %s)", e.Name.Name(), e.Body)
	}
	return fmt.Sprintf("(define (%s %s) %s)", e.Name.Name(), symbols(e.Params), e.Body)
}

func symbols(syms []runtime.Symbol) string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name()
	}
	return strings.Join(names, " ")
}
