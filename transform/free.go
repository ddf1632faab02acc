package transform

import (
	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schemer/runtime"
)

// FreeVariables collects the symbols of tree which are not bound by an
// enclosing lambda. Quoted data does not contribute any variables, neither
// do the keywords of lambda and define forms or the name being defined.
// Malformed parameters are ignored.
func FreeVariables(tree *object.Object) *runtime.SymbolSet {
	free := runtime.NewSymbolSet()
	collectFree(tree, runtime.NewScope("top", nil, nil), free)
	return free
}

func collectFree(tree *object.Object, scope *runtime.Scope, free *runtime.SymbolSet) {
	switch {
	case tree.IsSymbol():
		sym, _ := tree.AsSymbol()
		if _, sc := scope.Resolve(sym); sc == nil {
			free.Add(sym)
		}
		return
	case !tree.IsPair():
		return
	}
	head, rest, _ := tree.Decons()
	second, ok := rest.GetRef(0)
	switch name, _ := head.SymbolName(); name {
	case "quote":
		return
	case "lambda":
		if ok {
			body, _ := rest.Cdr()
			collectElements(body, bindParams(second, scope), free)
			return
		}
	case "define":
		if ok && second.IsPair() { // (define (name . params) . body)
			params, _ := second.Cdr()
			body, _ := rest.Cdr()
			collectElements(body, bindParams(params, scope), free)
			return
		}
		if ok && second.IsSymbol() { // (define name expr)
			expr, _ := rest.Cdr()
			collectElements(expr, scope, free)
			return
		}
	}
	collectElements(tree, scope, free)
}

func bindParams(params *object.Object, scope *runtime.Scope) *runtime.Scope {
	bound := make(map[runtime.Symbol]runtime.Symbol)
	for _, p := range params.ListToVec() {
		if sym, ok := p.AsSymbol(); ok {
			bound[sym] = sym
		}
	}
	return runtime.NewScope("lambda", scope, bound)
}

func collectElements(l *object.Object, scope *runtime.Scope, free *runtime.SymbolSet) {
	cur := l
	for ; cur.IsPair(); cur, _ = cur.Cdr() {
		car, _ := cur.Car()
		collectFree(car, scope, free)
	}
	collectFree(cur, scope, free)
}
