/*
Package scanner implements a scanner for s-expressions, based on lexmachine.

It is used by the datum reader as well as by the template compiler of the
structural matcher. Both read the same surface syntax: parentheses, dots,
quotes, numbers, strings and symbols. Comments start with ';' and extend to
the end of the line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'schemer.reader'.
func tracer() tracing.Trace {
	return tracing.Select("schemer.reader")
}
