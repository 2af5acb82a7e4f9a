package tabular

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Generate serializes a table back to LaTeX markup. Output depends on
// nothing but the AST, so repeated generation from an unchanged table is
// byte-identical. Validation findings never block generation.
func Generate(t *Table) string {
	var lines []string
	ind := ""
	if t.Float {
		open := `\begin{table}`
		if t.FloatPosition != "" {
			open += "[" + t.FloatPosition + "]"
		}
		lines = append(lines, open)
		ind = "  "
		lines = append(lines, ind+`\centering`)
		if t.Caption != "" && t.CaptionPos != CaptionBottom {
			lines = append(lines, ind+`\caption{`+t.Caption+`}`)
		}
	}
	lines = append(lines, tabularLines(t, ind)...)
	if t.Float {
		if t.Caption != "" && t.CaptionPos == CaptionBottom {
			lines = append(lines, ind+`\caption{`+t.Caption+`}`)
		}
		if t.Label != "" {
			lines = append(lines, ind+`\label{`+t.Label+`}`)
		}
		lines = append(lines, `\end{table}`)
	}
	return strings.Join(lines, "\n")
}

func tabularLines(t *Table, ind string) []string {
	env := t.Dialect.Environment()
	header := ind + `\begin{` + env + `}`
	if t.Dialect == DialectTabularX {
		width := t.TotalWidth
		if width == "" {
			width = `\textwidth`
		}
		header += "{" + width + "}"
	} else if t.Position != "" {
		header += "[" + t.Position + "]"
	}
	spec := colSpecString(t.Columns)
	if len(t.Columns) == 0 {
		// unparseable spec: pass the original through untouched
		spec = t.ColSpecRaw
	}
	header += "{" + spec + "}"

	lines := []string{header}
	rowInd := ind + "  "
	for _, p := range t.Preamble {
		lines = append(lines, rowInd+p)
	}
	for i, row := range t.Rows {
		for _, rule := range row.RulesAbove {
			lines = append(lines, ruleLines(t, rule, i, rowInd)...)
		}
		lines = append(lines, rowInd+cellLine(t, row))
		for _, rule := range row.RulesBelow {
			lines = append(lines, ruleLines(t, rule, i+1, rowInd)...)
		}
	}
	return append(lines, ind+`\end{`+env+`}`)
}

func cellLine(t *Table, row Row) string {
	parts := make([]string, 0, len(row.Cells))
	pos := 0
	for _, cell := range row.Cells {
		parts = append(parts, generateCell(t, cell, pos))
		pos += cell.Width()
	}
	return strings.Join(parts, " & ") + ` \\`
}

func generateCell(t *Table, cell Cell, start int) string {
	if cell.Spanned {
		return ""
	}
	inner := cell.Content
	if cell.RowSpan > 1 {
		tag := ""
		if cell.Anchor != AnchorNone {
			tag = "[" + cell.Anchor.Letter() + "]"
		}
		// row-span widths are always re-derived as auto-fill
		inner = fmt.Sprintf(`\multirow%s{%d}{*}{%s}`, tag, cell.RowSpan, inner)
	}
	if cell.ColSpan > 1 {
		spec := cell.SpecOverride
		if spec == "" {
			spec = inferSpanSpec(t, cell, start)
		}
		inner = fmt.Sprintf(`\multicolumn{%d}{%s}{%s}`, cell.ColSpan, spec, inner)
	}
	return inner
}

// inferSpanSpec computes the spec of a column-spanning cell from the
// descriptors of the columns it replaces: the left border of the span's
// first column, the right border of its last column, and the cell's
// alignment, falling back to the first column's base alignment. This way a
// merged cell visually continues the borders of the columns it covers.
func inferSpanSpec(t *Table, cell Cell, start int) string {
	end := start + cell.ColSpan - 1
	var sb strings.Builder
	if start < len(t.Columns) && t.Columns[start].BorderLeft {
		sb.WriteByte('|')
	}
	align := cell.Align
	if align == AlignNone {
		align = AlignCenter
		if start < len(t.Columns) {
			align = t.Columns[start].Kind.Align()
		}
	}
	sb.WriteString(align.Letter())
	if end < len(t.Columns) && t.Columns[end].BorderRight {
		sb.WriteByte('|')
	}
	return sb.String()
}

// ruleLines serializes one rule sitting at boundary p (the gap above row
// p). Full rules are split around row-spanning cells that cross the
// boundary; all other kinds are assumed author-controlled and pass through
// unchanged.
func ruleLines(t *Table, rule RowRule, p int, ind string) []string {
	if rule.Kind != RuleFull {
		return []string{ind + ruleText(rule)}
	}
	blocked := blockedColumns(t, p)
	if blocked.Empty() {
		return []string{ind + ruleText(rule)}
	}
	total := t.ColumnCount()
	if total == 0 {
		for _, row := range t.Rows {
			if n := occupiedColumns(row); n > total {
				total = n
			}
		}
	}
	var lines []string
	runStart := -1
	for col := 0; col <= total; col++ {
		if col < total && !blocked.Contains(col) {
			if runStart < 0 {
				runStart = col
			}
			continue
		}
		if runStart >= 0 {
			lines = append(lines, ind+fmt.Sprintf(`\cline{%d-%d}`, runStart+1, col))
			runStart = -1
		}
	}
	tracer().Debugf("full rule at boundary %d split into %d segments", p, len(lines))
	return lines
}

// blockedColumns returns the set of column indices covered by a
// row-spanning cell that starts above boundary p and extends past it.
func blockedColumns(t *Table, p int) *treeset.Set {
	blocked := treeset.NewWithIntComparator()
	for r := 0; r < p && r < len(t.Rows); r++ {
		pos := 0
		for _, c := range t.Rows[r].Cells {
			if !c.Spanned && c.RowSpan > 1 && r+c.RowSpan > p {
				for col := pos; col < pos+c.Width(); col++ {
					blocked.Add(col)
				}
			}
			pos += c.Width()
		}
	}
	return blocked
}
