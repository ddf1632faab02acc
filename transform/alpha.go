package transform

import (
	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/match"
	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schemer/runtime"
)

// Alphatizer is a Transformer renaming bound variables.
//
// Fresh names are the original name suffixed with a counter. The counter is
// owned by the Alphatizer and increases for its lifetime, so variables from
// different lambdas never collide, even if they shadow the same name.
// An Alphatizer is not safe for concurrent use.
type Alphatizer struct {
	symtab       *runtime.SymbolTable
	counter      int
	avoidCapture bool
	scope        *runtime.Scope // current scope during a transformation
	chain        *match.Chain
}

var _ Transformer = (*Alphatizer)(nil)

// Option configures an Alphatizer.
type Option func(a *Alphatizer)

// AvoidCapture controls whether fresh names skip names already present in
// the symbol table. It defaults to true. If switched off, a renamed variable
// may capture a free variable of the same name.
func AvoidCapture(b bool) Option {
	return func(a *Alphatizer) {
		a.avoidCapture = b
	}
}

// NewAlphatizer creates an Alphatizer generating fresh symbols in symtab.
func NewAlphatizer(symtab *runtime.SymbolTable, opts ...Option) *Alphatizer {
	a := &Alphatizer{
		symtab:       symtab,
		avoidCapture: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.chain = match.NewChain("alphatize").
		Case(match.Bind("form", match.MustCompile("(lambda ?params . ?body)")), a.lambda).
		Case(match.Bind("form", match.MustCompile("(define (?name . ?params) . ?body)")), a.define).
		Case(match.Bind("form", match.MustCompile("(quote . _)")), unchanged).
		Case(match.Bind("form", match.Pred("pair", isPair)), a.pair).
		Case(match.Bind("form", match.Pred("symbol", isSymbol)), a.symbol).
		Case(match.Bind("form", match.Wildcard()), unchanged)
	return a
}

// Transform returns an alphatized copy of tree. Subtrees without bound
// variables may be shared between tree and the copy.
func (a *Alphatizer) Transform(tree *object.Object) (*object.Object, error) {
	a.scope = runtime.NewScope("top", nil, nil)
	defer func() { a.scope = nil }()
	return a.transform(tree)
}

// Counter returns the number of fresh names generated so far.
func (a *Alphatizer) Counter() int {
	return a.counter
}

func (a *Alphatizer) transform(tree *object.Object) (*object.Object, error) {
	r, err := a.chain.Dispatch(tree)
	if err != nil {
		return nil, err
	}
	return r.(*object.Object), nil
}

func (a *Alphatizer) lambda(b match.Bindings) (interface{}, error) {
	form := object.Bound(b, "form")
	params, body, err := a.binding(object.Bound(b, "params"), object.Bound(b, "body"))
	if err != nil {
		return nil, err
	}
	keyword, _ := form.Car()
	return object.Cons(keyword, object.Cons(params, body)), nil
}

// define handles function definitions, which bind their parameters
// the same way lambda does. The function name is a global variable and
// stays as it is.
func (a *Alphatizer) define(b match.Bindings) (interface{}, error) {
	form := object.Bound(b, "form")
	params, body, err := a.binding(object.Bound(b, "params"), object.Bound(b, "body"))
	if err != nil {
		return nil, err
	}
	keyword, _ := form.Car()
	signature := object.Cons(object.Bound(b, "name"), params)
	return object.Cons(keyword, object.Cons(signature, body)), nil
}

// binding renames a parameter list and transforms a body in a new scope
// holding the renamings.
func (a *Alphatizer) binding(params, body *object.Object) (*object.Object, *object.Object, error) {
	if _, ok := params.ListLen(); !ok {
		return nil, nil, schemer.Errorf(schemer.SyntaxError, params,
			"parameters must be a proper list: %s", params)
	}
	renames := make(map[runtime.Symbol]runtime.Symbol)
	lb := object.NewListBuilder()
	for _, p := range params.ListToVec() {
		sym, ok := p.AsSymbol()
		if !ok {
			return nil, nil, schemer.Errorf(schemer.SyntaxError, p, "parameter is not a symbol: %s", p)
		}
		if _, dup := renames[sym]; dup {
			return nil, nil, schemer.Errorf(schemer.SyntaxError, p, "duplicate parameter %s in %s", p, params)
		}
		fresh := a.symtab.Gensym(sym.Name(), &a.counter, a.avoidCapture)
		tracer().Debugf("renaming %s -> %s", sym, fresh)
		renames[sym] = fresh
		lb.Append(object.Symbol(fresh))
	}
	outer := a.scope
	a.scope = runtime.NewScope("lambda", outer, renames)
	newBody, err := a.elements(body)
	a.scope = outer
	if err != nil {
		return nil, nil, err
	}
	return lb.Build(), newBody, nil
}

func (a *Alphatizer) pair(b match.Bindings) (interface{}, error) {
	return a.elements(object.Bound(b, "form"))
}

// elements transforms the elements of a list one by one. A non-nil
// terminator of an improper list is transformed as well.
func (a *Alphatizer) elements(l *object.Object) (*object.Object, error) {
	lb := object.NewListBuilder()
	cur := l
	for ; cur.IsPair(); cur, _ = cur.Cdr() {
		car, _ := cur.Car()
		x, err := a.transform(car)
		if err != nil {
			return nil, err
		}
		lb.Append(x)
	}
	if !cur.IsNil() {
		tail, err := a.transform(cur)
		if err != nil {
			return nil, err
		}
		lb.SetTail(tail)
	}
	return lb.Build(), nil
}

func (a *Alphatizer) symbol(b match.Bindings) (interface{}, error) {
	form := object.Bound(b, "form")
	sym, _ := form.AsSymbol()
	renamed, scope := a.scope.Resolve(sym)
	if scope == nil || renamed == sym {
		return form, nil
	}
	return object.Symbol(renamed), nil
}

func unchanged(b match.Bindings) (interface{}, error) {
	return object.Bound(b, "form"), nil
}

func isPair(t match.Term) bool {
	_, ok := t.First()
	return ok
}

func isSymbol(t match.Term) bool {
	_, ok := t.SymbolName()
	return ok
}
