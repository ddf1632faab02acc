/*
Package match implements a structural pattern matcher for Lisp-like trees.

Transformation passes rarely want to walk trees by hand. Instead they state
the shape of the forms they are interested in, as syntax templates:

    (lambda ?params . ?body)
    (define (?name . ?params) ?body)
    (quote . _)

Templates are compiled into patterns once, when a pass is set up. Matching a
pattern against a tree either fails or produces bindings for the captures
('?name') of the pattern. Patterns are:

    _           wildcard, matches anything and binds nothing
    ?x          capture, matches anything and binds the sub-tree to x
    lambda      literal symbol, matches a symbol with exactly this name
    42, "s"     literal atom, matches an equal atom
    (p q r)     list, matches a proper list of exactly three elements
    (p q . r)   list with rest, matches a list with at least two elements,
                matching r against the remaining tail (which may be improper)
    ()          matches nil only

Predicate patterns (Pred) and patterns binding the whole matched term (Bind)
have no template syntax; they are constructed in Go.

The matcher is not bound to a concrete tree type. It operates on anything
implementing interface Term, i.e. anything with car, cdr, nil-ness and symbol
names.

Clauses are grouped into chains. A chain tries its clauses top to bottom, and
the first matching clause wins. There is no backtracking between clauses. If
no clause matches, the chain fails with ErrUnmatched; authors of chains ensure
exhaustiveness by ending a chain with Else.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'schemer.core'.
func tracer() tracing.Trace {
	return tracing.Select("schemer.core")
}
