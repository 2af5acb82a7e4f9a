package tabular

import (
	"strings"

	"github.com/npillmayer/latab/core"
)

// Structural edit operations. These are the only sanctioned way to change
// a table outside of the parser. Every operation validates its coordinates
// first and mutates only after all checks pass, so a rejected edit leaves
// the table untouched. Rejections are hard failures (contract violations),
// reported with core error codes.

// InsertRow inserts a row of empty cells so that it becomes row `at`
// (0-based; at == len(rows) appends). It is rejected when a row span
// crosses the insertion boundary.
func (t *Table) InsertRow(at int) error {
	if at < 0 || at > len(t.Rows) {
		return core.Error(core.EINVALID, "row index %d out of range", at)
	}
	if !blockedColumns(t, at).Empty() {
		return core.Error(core.EINVALID, "a row span crosses the insertion point")
	}
	ncols := t.ColumnCount()
	if ncols == 0 && len(t.Rows) > 0 {
		ncols = occupiedColumns(t.Rows[0])
	}
	cells := make([]Cell, ncols)
	for i := range cells {
		cells[i] = Cell{ColSpan: 1, RowSpan: 1}
	}
	t.Rows = append(t.Rows, Row{})
	copy(t.Rows[at+1:], t.Rows[at:])
	t.Rows[at] = Row{Cells: cells}
	return nil
}

// DeleteRow removes row `at`. Rows participating in a row span (as anchor
// or as covered position) cannot be deleted.
func (t *Table) DeleteRow(at int) error {
	if at < 0 || at >= len(t.Rows) {
		return core.Error(core.EINVALID, "row index %d out of range", at)
	}
	for _, cell := range t.Rows[at].Cells {
		if cell.Spanned || cell.RowSpan > 1 {
			return core.Error(core.EINVALID, "row %d participates in a row span", at)
		}
	}
	t.Rows = append(t.Rows[:at], t.Rows[at+1:]...)
	return nil
}

// InsertColumn inserts a column descriptor so that it becomes column `at`
// and gives every row an empty cell at that position. Inserting inside a
// column span widens the spanning cell instead.
func (t *Table) InsertColumn(at int, desc ColumnDescriptor) error {
	ncols := t.ColumnCount()
	if ncols == 0 {
		return core.Error(core.EINVALID, "column structure unknown")
	}
	if at < 0 || at > ncols {
		return core.Error(core.EINVALID, "column index %d out of range", at)
	}
	rects := spanRects(t)
	for r := range t.Rows {
		row := &t.Rows[r]
		if rect := coveringRect(rects, r, at); rect != nil {
			if r == rect.row {
				row.Cells[rect.idx].ColSpan++
			} else if idx, _ := cellAt(*row, at); idx >= 0 {
				insertCell(row, idx, Cell{ColSpan: 1, RowSpan: 1, Spanned: true})
			}
			continue
		}
		idx, _ := cellAt(*row, at)
		if idx < 0 {
			row.Cells = append(row.Cells, Cell{ColSpan: 1, RowSpan: 1})
		} else {
			insertCell(row, idx, Cell{ColSpan: 1, RowSpan: 1})
		}
	}
	t.Columns = append(t.Columns, ColumnDescriptor{})
	copy(t.Columns[at+1:], t.Columns[at:])
	t.Columns[at] = desc
	return nil
}

// DeleteColumn removes column `at`. Cells spanning the column shrink by
// one; cells confined to it are removed.
func (t *Table) DeleteColumn(at int) error {
	ncols := t.ColumnCount()
	if ncols == 0 {
		return core.Error(core.EINVALID, "column structure unknown")
	}
	if at < 0 || at >= ncols {
		return core.Error(core.EINVALID, "column index %d out of range", at)
	}
	for r := range t.Rows {
		row := &t.Rows[r]
		idx, _ := cellAt(*row, at)
		if idx < 0 {
			continue
		}
		if row.Cells[idx].Width() > 1 {
			row.Cells[idx].ColSpan--
		} else {
			row.Cells = append(row.Cells[:idx], row.Cells[idx+1:]...)
		}
	}
	t.Columns = append(t.Columns[:at], t.Columns[at+1:]...)
	return nil
}

// MergeCells merges the rectangle of nrows × ncols cells anchored at
// (row, col) into one spanning cell. Every covered position must hold a
// plain, unmerged cell; contents of the covered cells are joined.
func (t *Table) MergeCells(row, col, nrows, ncols int) error {
	if nrows < 1 || ncols < 1 || nrows*ncols < 2 {
		return core.Error(core.EINVALID, "merge range must cover at least two cells")
	}
	if row < 0 || row+nrows > len(t.Rows) {
		return core.Error(core.EINVALID, "row range %d..%d out of range", row, row+nrows-1)
	}
	var contents []string
	for r := row; r < row+nrows; r++ {
		for c := col; c < col+ncols; c++ {
			idx, _ := cellAt(t.Rows[r], c)
			if idx < 0 {
				return core.Error(core.EINVALID, "column %d out of range in row %d", c, r)
			}
			cell := t.Rows[r].Cells[idx]
			if cell.Spanned || cell.ColSpan > 1 || cell.RowSpan > 1 {
				return core.Error(core.EINVALID, "merge range intersects an existing span at (%d,%d)", r, c)
			}
			if s := strings.TrimSpace(cell.Content); s != "" {
				contents = append(contents, s)
			}
		}
	}
	anchorIdx, _ := cellAt(t.Rows[row], col)
	anchor := &t.Rows[row].Cells[anchorIdx]
	anchor.ColSpan = ncols
	anchor.RowSpan = nrows
	anchor.Content = strings.Join(contents, " ")
	anchor.SpecOverride = "" // regenerated from the covered columns
	rest := t.Rows[row].Cells[anchorIdx+1:]
	t.Rows[row].Cells = append(t.Rows[row].Cells[:anchorIdx+1], rest[ncols-1:]...)
	for r := row + 1; r < row+nrows; r++ {
		for c := col; c < col+ncols; c++ {
			idx, _ := cellAt(t.Rows[r], c)
			cell := &t.Rows[r].Cells[idx]
			cell.Spanned = true
			cell.Content = ""
			cell.ColSpan = 1
			cell.RowSpan = 1
		}
	}
	return nil
}

// SplitCell undoes a merge: the spanning cell covering (row, col) becomes
// a plain cell keeping its content, and the positions it covered become
// empty cells again.
func (t *Table) SplitCell(row, col int) error {
	if row < 0 || row >= len(t.Rows) {
		return core.Error(core.EINVALID, "row index %d out of range", row)
	}
	idx, start := cellAt(t.Rows[row], col)
	if idx < 0 {
		return core.Error(core.EINVALID, "column %d out of range in row %d", col, row)
	}
	cell := &t.Rows[row].Cells[idx]
	if cell.Spanned {
		return core.Error(core.EINVALID, "cell (%d,%d) is covered by a span; split its anchor", row, col)
	}
	if cell.ColSpan <= 1 && cell.RowSpan <= 1 {
		return core.Error(core.EINVALID, "cell (%d,%d) is not merged", row, col)
	}
	w, h := cell.ColSpan, cell.RowSpan
	cell.ColSpan = 1
	cell.RowSpan = 1
	cell.SpecOverride = ""
	cell.Anchor = AnchorNone
	for i := 1; i < w; i++ {
		insertCell(&t.Rows[row], idx+i, Cell{ColSpan: 1, RowSpan: 1})
	}
	for r := row + 1; r < row+h && r < len(t.Rows); r++ {
		for c := start; c < start+w; c++ {
			if i, _ := cellAt(t.Rows[r], c); i >= 0 && t.Rows[r].Cells[i].Spanned {
				t.Rows[r].Cells[i] = Cell{ColSpan: 1, RowSpan: 1}
			}
		}
	}
	return nil
}

// SetColumnAlignment changes the alignment letter of column `col`.
// Fixed-width columns have no letter alignment and are rejected.
func (t *Table) SetColumnAlignment(col int, align Alignment) error {
	if col < 0 || col >= t.ColumnCount() {
		return core.Error(core.EINVALID, "column index %d out of range", col)
	}
	if align == AlignNone {
		return core.Error(core.EINVALID, "no alignment given")
	}
	kind := t.Columns[col].Kind
	if kind.HasWidth() || kind == ColAutoFill {
		return core.Error(core.EINVALID, "column %d has no letter alignment", col)
	}
	switch align {
	case AlignLeft:
		t.Columns[col].Kind = ColLeft
	case AlignCenter:
		t.Columns[col].Kind = ColCenter
	case AlignRight:
		t.Columns[col].Kind = ColRight
	}
	return nil
}

// --- span rectangles ---------------------------------------------------------

type spanRect struct {
	row, col int // anchor position (grid coordinates)
	idx      int // anchor's index within its row's cell list
	w, h     int
}

// spanRects collects the span rectangle of every multi-column cell.
func spanRects(t *Table) []spanRect {
	var rects []spanRect
	for r, row := range t.Rows {
		pos := 0
		for i, cell := range row.Cells {
			if !cell.Spanned && cell.ColSpan > 1 {
				rects = append(rects, spanRect{row: r, col: pos, idx: i, w: cell.ColSpan, h: cell.RowSpan})
			}
			pos += cell.Width()
		}
	}
	return rects
}

// coveringRect finds a span rectangle such that inserting a column at
// grid position `at` would fall strictly inside it in row r.
func coveringRect(rects []spanRect, r, at int) *spanRect {
	for i := range rects {
		rect := &rects[i]
		if r >= rect.row && r < rect.row+rect.h && at > rect.col && at < rect.col+rect.w {
			return rect
		}
	}
	return nil
}

func insertCell(row *Row, idx int, c Cell) {
	row.Cells = append(row.Cells, Cell{})
	copy(row.Cells[idx+1:], row.Cells[idx:])
	row.Cells[idx] = c
}
