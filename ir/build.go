package ir

import (
	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/match"
	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schemer/runtime"
)

// Builder converts object trees into expressions.
type Builder struct {
	primitives  map[string]bool
	definitions *match.Chain // top-level forms
	forms       *match.Chain // forms within expressions
}

// Option configures a builder.
type Option func(b *Builder)

// Primitives declares names of free variables which denote intrinsics.
// Calls to these names will be built as primitive calls. A lambda parameter
// with one of these names shadows the intrinsic only if the tree has been
// alphatized beforehand.
func Primitives(names ...string) Option {
	return func(b *Builder) {
		for _, n := range names {
			b.primitives[n] = true
		}
	}
}

// NewBuilder creates an IR builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{primitives: make(map[string]bool)}
	for _, opt := range opts {
		opt(b)
	}
	b.definitions = match.NewChain("ir-definitions").
		When("(define (?name . ?params) ?body)", b.defineFunction).
		When("(define ?name ?expr)", b.defineVariable).
		When("(define (_ . _) . ?body)", sequenceBody).
		When("(define . _)", malformed("define")).
		Case(match.Bind("form", match.Wildcard()), b.toplevelExpression)
	b.forms = match.NewChain("ir-forms").
		When("(define . _)", unsupported("definition within an expression")).
		When("(lambda ?params ?body)", b.lambda).
		When("(lambda ?params . ?body)", sequenceBody).
		When("(lambda . _)", malformed("lambda")).
		When("(if ?cond ?then ?else)", b.conditional).
		When("(if . _)", unsupported("if form without exactly two arms")).
		When("(quote . _)", unsupported("quoted data")).
		When("(?proc . ?args)", b.apply)
	return b
}

// Build converts a top-level form into an expression. Definitions are
// recognized at top level only; a define nested in an expression is an
// UnsupportedForm error.
func (b *Builder) Build(obj *object.Object) (Expression, error) {
	if !obj.IsPair() {
		return b.expression(obj)
	}
	return b.dispatch(b.definitions, obj)
}

func (b *Builder) expression(obj *object.Object) (Expression, error) {
	switch obj.Type() {
	case object.NilType:
		return Nil{}, nil
	case object.IntType:
		n, _ := obj.AsInteger()
		return Integer{Value: n}, nil
	case object.FloatType:
		x, _ := obj.AsFloat()
		return Float{Value: x}, nil
	case object.SymbolType:
		sym, _ := obj.AsSymbol()
		return Variable{Symbol: sym}, nil
	case object.StringType, object.FunctionType:
		return nil, schemer.Errorf(schemer.UnsupportedForm, obj, "%s atoms are not supported: %s",
			obj.Type(), obj)
	case object.ConsType:
		return b.dispatch(b.forms, obj)
	}
	return nil, schemer.Errorf(schemer.UnknownExpressionType, obj, "cannot build expression from %s", obj)
}

func (b *Builder) dispatch(chain *match.Chain, obj *object.Object) (Expression, error) {
	r, err := chain.Dispatch(obj)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("built %s", r)
	return r.(Expression), nil
}

// --- Forms -----------------------------------------------------------------

func (b *Builder) defineFunction(bnd match.Bindings) (interface{}, error) {
	name, err := symbolOf(object.Bound(bnd, "name"), "function name")
	if err != nil {
		return nil, err
	}
	params, err := parameters(object.Bound(bnd, "params"))
	if err != nil {
		return nil, err
	}
	body, err := b.expression(object.Bound(bnd, "body"))
	if err != nil {
		return nil, err
	}
	return DefVar{Name: name, Expr: Lambda{Params: params, Body: body}}, nil
}

func (b *Builder) defineVariable(bnd match.Bindings) (interface{}, error) {
	name, err := symbolOf(object.Bound(bnd, "name"), "variable name")
	if err != nil {
		return nil, err
	}
	expr, err := b.expression(object.Bound(bnd, "expr"))
	if err != nil {
		return nil, err
	}
	return DefVar{Name: name, Expr: expr}, nil
}

func (b *Builder) lambda(bnd match.Bindings) (interface{}, error) {
	params, err := parameters(object.Bound(bnd, "params"))
	if err != nil {
		return nil, err
	}
	body, err := b.expression(object.Bound(bnd, "body"))
	if err != nil {
		return nil, err
	}
	return Lambda{Params: params, Body: body}, nil
}

func (b *Builder) toplevelExpression(bnd match.Bindings) (interface{}, error) {
	return b.expression(object.Bound(bnd, "form"))
}

func sequenceBody(bnd match.Bindings) (interface{}, error) {
	body := object.Bound(bnd, "body")
	if body.IsNil() {
		return nil, schemer.Errorf(schemer.SyntaxError, body, "function without body")
	}
	return nil, schemer.Errorf(schemer.UnsupportedForm, body, "function with sequence body %s", body)
}

func (b *Builder) conditional(bnd match.Bindings) (interface{}, error) {
	var arms [3]Expression
	for i, name := range []string{"cond", "then", "else"} {
		e, err := b.expression(object.Bound(bnd, name))
		if err != nil {
			return nil, err
		}
		arms[i] = e
	}
	return If{Cond: arms[0], Then: arms[1], Else: arms[2]}, nil
}

func (b *Builder) apply(bnd match.Bindings) (interface{}, error) {
	proc, err := b.expression(object.Bound(bnd, "proc"))
	if err != nil {
		return nil, err
	}
	if v, ok := proc.(Variable); ok && b.primitives[v.Symbol.Name()] {
		proc = Primitive{Name: v.Symbol.Name()}
	}
	argl := object.Bound(bnd, "args")
	if _, ok := argl.ListLen(); !ok {
		return nil, schemer.Errorf(schemer.NotAPair, argl, "arguments must be a proper list: %s", argl)
	}
	args := make([]Expression, 0, len(argl.ListToVec()))
	for _, a := range argl.ListToVec() {
		arg, err := b.expression(a)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return Apply{Proc: proc, Args: args}, nil
}

func malformed(form string) match.Action {
	return func(match.Bindings) (interface{}, error) {
		return nil, schemer.Errorf(schemer.SyntaxError, nil, "malformed %s form", form)
	}
}

func unsupported(what string) match.Action {
	return func(match.Bindings) (interface{}, error) {
		return nil, schemer.Errorf(schemer.UnsupportedForm, nil, "%s not supported", what)
	}
}

// --- Helpers ---------------------------------------------------------------

func symbolOf(obj *object.Object, what string) (runtime.Symbol, error) {
	sym, ok := obj.AsSymbol()
	if !ok {
		return runtime.Symbol{}, schemer.Errorf(schemer.SyntaxError, obj, "%s must be a symbol: %s", what, obj)
	}
	return sym, nil
}

// parameters converts a parameter list. Parameter lists have to be proper
// lists of symbols.
func parameters(params *object.Object) ([]runtime.Symbol, error) {
	if _, ok := params.ListLen(); !ok {
		return nil, schemer.Errorf(schemer.SyntaxError, params,
			"parameters must be a proper list: %s", params)
	}
	var syms []runtime.Symbol
	for _, p := range params.ListToVec() {
		sym, err := symbolOf(p, "parameter")
		if err != nil {
			return nil, err
		}
		syms = append(syms, sym)
	}
	return syms, nil
}
