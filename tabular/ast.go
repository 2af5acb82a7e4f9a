package tabular

// Dialect identifies the table environment family a table was written in.
type Dialect int

// Supported table environments.
const (
	DialectUnknown   Dialect = iota
	DialectTabular           // fixed-width columns
	DialectTabularX          // columns stretch to a given total width
	DialectLongtable         // multi-page tables
	DialectArray             // math-mode arrays
	DialectTabulary          // legacy flexible-width columns
)

// Environment returns the LaTeX environment name for a dialect.
func (d Dialect) Environment() string {
	switch d {
	case DialectTabular:
		return "tabular"
	case DialectTabularX:
		return "tabularx"
	case DialectLongtable:
		return "longtable"
	case DialectArray:
		return "array"
	case DialectTabulary:
		return "tabulary"
	}
	return "?"
}

func (d Dialect) String() string {
	return d.Environment()
}

func dialectForName(env string) Dialect {
	switch env {
	case "tabular":
		return DialectTabular
	case "tabularx":
		return DialectTabularX
	case "longtable":
		return DialectLongtable
	case "array":
		return DialectArray
	case "tabulary":
		return DialectTabulary
	}
	return DialectUnknown
}

// Alignment is a horizontal cell or column alignment.
type Alignment int

const (
	AlignNone Alignment = iota // no explicit alignment
	AlignLeft
	AlignCenter
	AlignRight
)

// Letter returns the column-spec letter for an alignment.
func (a Alignment) Letter() string {
	switch a {
	case AlignLeft:
		return "l"
	case AlignCenter:
		return "c"
	case AlignRight:
		return "r"
	}
	return ""
}

// VAnchor is the vertical placement of a row-spanning cell's content.
type VAnchor int

const (
	AnchorNone VAnchor = iota
	AnchorTop
	AnchorMiddle
	AnchorBottom
)

// Letter returns the multirow placement tag for an anchor.
func (v VAnchor) Letter() string {
	switch v {
	case AnchorTop:
		return "t"
	case AnchorMiddle:
		return "c"
	case AnchorBottom:
		return "b"
	}
	return ""
}

// ColKind is the kind of a column descriptor.
type ColKind int

// Column kinds, mapped from column-spec letters.
const (
	ColLeft      ColKind = iota // l
	ColCenter                   // c
	ColRight                    // r
	ColAutoFill                 // X, stretches to fill the table width
	ColParTop                   // p{w}, fixed width, content top-aligned
	ColParMiddle                // m{w}
	ColParBottom                // b{w}
)

// Letter returns the column-spec letter for a column kind.
func (k ColKind) Letter() string {
	switch k {
	case ColLeft:
		return "l"
	case ColCenter:
		return "c"
	case ColRight:
		return "r"
	case ColAutoFill:
		return "X"
	case ColParTop:
		return "p"
	case ColParMiddle:
		return "m"
	case ColParBottom:
		return "b"
	}
	return "?"
}

// HasWidth returns true for column kinds carrying a width argument.
func (k ColKind) HasWidth() bool {
	return k == ColParTop || k == ColParMiddle || k == ColParBottom
}

// Align returns the base alignment of a column kind. Width-bearing kinds
// and auto-fill columns have no letter alignment and default to center
// when a spec has to be synthesized for them.
func (k ColKind) Align() Alignment {
	switch k {
	case ColLeft:
		return AlignLeft
	case ColCenter:
		return AlignCenter
	case ColRight:
		return AlignRight
	}
	return AlignCenter
}

// ColumnDescriptor describes one logical column: its kind, an optional
// width argument, and whether a vertical border is drawn on either side.
type ColumnDescriptor struct {
	Kind        ColKind
	Width       string // raw width argument for p/m/b columns
	BorderLeft  bool
	BorderRight bool
}

// Cell is one logical grid cell. A cell may span several columns and/or
// rows; grid positions consumed by another cell's span are represented by
// placeholder cells with Spanned set.
type Cell struct {
	Content      string
	ColSpan      int
	RowSpan      int
	Align        Alignment // explicit override, AlignNone = inherit from column
	Anchor       VAnchor   // vertical placement for row-spanning cells
	SpecOverride string    // verbatim multicolumn spec argument, if parsed from source
	Spanned      bool      // placeholder covered by another cell's span
}

// Width returns the number of grid columns the cell occupies.
// Spanned placeholders always occupy a single position.
func (c Cell) Width() int {
	if c.Spanned || c.ColSpan < 1 {
		return 1
	}
	return c.ColSpan
}

// RuleKind is the kind of a horizontal rule.
type RuleKind int

const (
	RuleFull       RuleKind = iota // \hline
	RulePartial                    // \cline{a-b}
	RuleTop                        // \toprule
	RuleMid                        // \midrule
	RuleBottom                     // \bottomrule
	RuleMidPartial                 // \cmidrule(trim){a-b}
)

// RowRule is a horizontal rule attached to a row. From/To are 1-indexed
// inclusive column bounds and only meaningful for the partial kinds.
type RowRule struct {
	Kind RuleKind
	From int
	To   int
	Trim string // cmidrule trim qualifier, e.g. "lr"
}

// Row is one table row plus the rules directly above and below it.
// A rule physically between two rows is stored as RulesBelow of the
// earlier row, never duplicated.
type Row struct {
	Cells      []Cell
	RulesAbove []RowRule
	RulesBelow []RowRule
}

// CaptionPos tells whether a float caption precedes or follows the table.
type CaptionPos int

const (
	CaptionNone CaptionPos = iota
	CaptionTop
	CaptionBottom
)

// Table is the abstract syntax tree of one table environment, possibly
// wrapped in a float. It is owned by the session that parsed it; the
// package never shares mutable state between Table instances.
type Table struct {
	Dialect       Dialect
	Columns       []ColumnDescriptor
	Rows          []Row
	TotalWidth    string   // tabularx total-width argument
	Position      string   // placement argument, e.g. "t" or "h!"
	ColSpecRaw    string   // column spec as written in the source
	Preamble      []string // longtable header/footer marker lines, verbatim
	Float         bool
	FloatPosition string // float placement argument, e.g. "htbp"
	Caption       string
	CaptionPos    CaptionPos
	Label         string
	SourceText    string // raw input the table was parsed from
}

// ColumnCount returns the number of logical columns, or 0 if the column
// spec was unparseable (count unknown).
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// occupiedColumns returns the number of grid positions covered by a row,
// counting spanned placeholders once and other cells at their span width.
func occupiedColumns(row Row) int {
	n := 0
	for _, c := range row.Cells {
		n += c.Width()
	}
	return n
}

// cellAt locates the cell covering grid column col in a row, returning its
// index within row.Cells and the grid column it starts at. Returns -1 if
// col lies beyond the row's occupied columns.
func cellAt(row Row, col int) (idx int, start int) {
	pos := 0
	for i, c := range row.Cells {
		w := c.Width()
		if col >= pos && col < pos+w {
			return i, pos
		}
		pos += w
	}
	return -1, 0
}
