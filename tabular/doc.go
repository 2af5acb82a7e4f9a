/*
Package tabular parses, edits and regenerates LaTeX tabular environments.

A table environment (tabular, tabularx, longtable, array, tabulary) is
parsed into an abstract syntax tree of columns, rows, cells and horizontal
rules. Clients mutate the tree through the structural edit operations and
serialize it back to LaTeX markup with Generate. Regeneration recomputes
cell specs for merged cells from the column descriptors they replace, and
splits full-width rules around cells that span rows across them.

Parsing is deliberately permissive: input that is not recognizable as a
table environment yields nil, rows with too few cells are padded, and
structural oddities are reported by Validate instead of being rejected.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package tabular

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'latab.tabular'.
func tracer() tracing.Trace {
	return tracing.Select("latab.tabular")
}
