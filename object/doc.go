/*
Package object implements the tagged value tree.

Objects represent both source syntax and data: atoms (integers, floats,
symbols, strings, external functions), the empty list and pairs. Pairs
own their children; trees are built bottom-up and treated as immutable
after construction.

Objects implement match.Term, so syntax templates may be matched against
them directly:

    p := match.MustCompile("(lambda ?params . ?body)")
    if b, ok := match.Matches(p, obj); ok {
        params := object.Bound(b, "params")
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package object

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'schemer.core'.
func tracer() tracing.Trace {
	return tracing.Select("schemer.core")
}
