package tabular

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// assertStructurallyEqual compares the logical content of two tables:
// columns, cell grid and rules. Source text and generated whitespace are
// allowed to differ.
func assertStructurallyEqual(t *testing.T, want, have *Table) {
	t.Helper()
	assert.Equal(t, want.Dialect, have.Dialect)
	assert.Equal(t, want.Columns, have.Columns)
	assert.Equal(t, want.TotalWidth, have.TotalWidth)
	assert.Equal(t, want.Position, have.Position)
	assert.Equal(t, want.Preamble, have.Preamble)
	assert.Equal(t, want.Float, have.Float)
	assert.Equal(t, want.Caption, have.Caption)
	assert.Equal(t, want.CaptionPos, have.CaptionPos)
	assert.Equal(t, want.Label, have.Label)
	if len(want.Rows) != len(have.Rows) {
		t.Fatalf("row count differs: %d vs %d", len(want.Rows), len(have.Rows))
	}
	for r := range want.Rows {
		assert.Equal(t, want.Rows[r].RulesAbove, have.Rows[r].RulesAbove, "rules above row %d", r)
		assert.Equal(t, want.Rows[r].RulesBelow, have.Rows[r].RulesBelow, "rules below row %d", r)
		if len(want.Rows[r].Cells) != len(have.Rows[r].Cells) {
			t.Fatalf("cell count differs in row %d: %d vs %d", r,
				len(want.Rows[r].Cells), len(have.Rows[r].Cells))
		}
		for c := range want.Rows[r].Cells {
			w, h := want.Rows[r].Cells[c], have.Rows[r].Cells[c]
			assert.Equal(t, w.Content, h.Content, "cell (%d,%d)", r, c)
			assert.Equal(t, w.ColSpan, h.ColSpan, "cell (%d,%d)", r, c)
			assert.Equal(t, w.RowSpan, h.RowSpan, "cell (%d,%d)", r, c)
			assert.Equal(t, w.Spanned, h.Spanned, "cell (%d,%d)", r, c)
			assert.Equal(t, w.Align, h.Align, "cell (%d,%d)", r, c)
			assert.Equal(t, w.Anchor, h.Anchor, "cell (%d,%d)", r, c)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	fixtures := []string{
		simpleTable,
		`\begin{tabular}{|c|c|c|}
\hline
h1 & \multicolumn{2}{c|}{span} \\
\hline
1 & 2 & 3 \\
\hline
\end{tabular}`,
		`\begin{tabular}{|c|c|c|}
\multirow{2}{*}{tall} & x & y \\
\cline{2-3}
 & z & w \\
\end{tabular}`,
		`\begin{table}[ht]
\centering
\caption{Caption text}
\begin{tabular}{lr}
a & b \\
\end{tabular}
\label{tab:x}
\end{table}`,
		`\begin{longtable}{cc}
\endfirsthead
A & B \\
\midrule
1 & 2 \\
\end{longtable}`,
		`\begin{tabularx}{\textwidth}{|X|X|}
left & right \\
\end{tabularx}`,
	}
	for i, src := range fixtures {
		table := Parse(src)
		if table == nil {
			t.Fatalf("fixture %d did not parse", i)
		}
		regen := Parse(Generate(table))
		if regen == nil {
			t.Fatalf("fixture %d: generated text did not parse back:\n%s", i, Generate(table))
		}
		assertStructurallyEqual(t, table, regen)
	}
}

func TestRoundTripAfterEdit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	table := Parse(simpleTable)
	if table == nil {
		t.Fatal("expected a table, got nil")
	}
	if err := table.MergeCells(0, 0, 1, 2); err != nil {
		t.Fatal(err)
	}
	regen := Parse(Generate(table))
	if regen == nil {
		t.Fatal("generated text did not parse back")
	}
	// the merged cell keeps its computed borders through the round trip
	assert.Equal(t, 2, regen.Rows[0].Cells[0].ColSpan)
	assert.Equal(t, "|l|", regen.Rows[0].Cells[0].SpecOverride)
	assert.Equal(t, 3, occupiedColumns(regen.Rows[0]))
}
