/*
Package anf converts expressions into A-normal form.

In A-normal form, every operator and operand of a call, and every
condition of an if-expression, is atomic: a constant, a variable, a
lambda or a primitive. Intermediate results are bound to fresh
temporaries with let-expressions, making evaluation order explicit:

    (f (g x) (h y))  =>  (let (newvar-0 (g x))
                           (let (newvar-1 (h y))
                             (f newvar-0 newvar-1)))

The Normalizer works in continuation-passing style: each step is given a
continuation which receives the normalized (sub-)expression and builds the
surrounding expression from it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package anf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'schemer.transform'.
func tracer() tracing.Trace {
	return tracing.Select("schemer.transform")
}
