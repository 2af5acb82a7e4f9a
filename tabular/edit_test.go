package tabular

import (
	"testing"

	"github.com/npillmayer/latab/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, src string) *Table {
	t.Helper()
	table := Parse(src)
	if table == nil {
		t.Fatalf("fixture did not parse:\n%s", src)
	}
	return table
}

func TestInsertAndDeleteRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	table := mustParse(t, simpleTable)
	if err := table.InsertRow(1); err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, have %d", len(table.Rows))
	}
	assert.Len(t, table.Rows[1].Cells, 3)
	assert.Equal(t, "", table.Rows[1].Cells[0].Content)
	assert.Equal(t, "1", table.Rows[2].Cells[0].Content)
	//
	if err := table.DeleteRow(1); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, "1", table.Rows[1].Cells[0].Content)
}

func TestRowEditRejections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	table := mustParse(t, `\begin{tabular}{cc}
\multirow{2}{*}{tall} & x \\
 & y \\
\end{tabular}`)
	err := table.InsertRow(1)
	if err == nil {
		t.Fatal("expected insertion inside a row span to be rejected")
	}
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Len(t, table.Rows, 2, "rejected edit must leave the table untouched")
	//
	err = table.DeleteRow(0)
	if err == nil {
		t.Fatal("expected deletion of a span anchor row to be rejected")
	}
	err = table.DeleteRow(1)
	if err == nil {
		t.Fatal("expected deletion of a spanned row to be rejected")
	}
	err = table.InsertRow(7)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestInsertAndDeleteColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	table := mustParse(t, simpleTable)
	if err := table.InsertColumn(1, ColumnDescriptor{Kind: ColCenter}); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 4, table.ColumnCount())
	assert.Len(t, table.Rows[0].Cells, 4)
	assert.Equal(t, "a", table.Rows[0].Cells[0].Content)
	assert.Equal(t, "", table.Rows[0].Cells[1].Content)
	assert.Equal(t, "b", table.Rows[0].Cells[2].Content)
	//
	if err := table.DeleteColumn(1); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 3, table.ColumnCount())
	assert.Equal(t, "b", table.Rows[0].Cells[1].Content)
}

func TestInsertColumnWidensSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	table := mustParse(t, `\begin{tabular}{ccc}
\multicolumn{2}{c}{wide} & x \\
a & b & c \\
\end{tabular}`)
	if err := table.InsertColumn(1, ColumnDescriptor{Kind: ColCenter}); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 4, table.ColumnCount())
	// the insertion point falls inside the span: the spanning cell widens
	assert.Equal(t, 3, table.Rows[0].Cells[0].ColSpan)
	assert.Len(t, table.Rows[0].Cells, 2)
	// the plain row gets a fresh cell instead
	assert.Len(t, table.Rows[1].Cells, 4)
}

func TestDeleteColumnShrinksSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	table := mustParse(t, `\begin{tabular}{ccc}
\multicolumn{2}{c}{wide} & x \\
a & b & c \\
\end{tabular}`)
	if err := table.DeleteColumn(0); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 2, table.ColumnCount())
	assert.Equal(t, 1, table.Rows[0].Cells[0].ColSpan)
	assert.Equal(t, "wide", table.Rows[0].Cells[0].Content)
	assert.Equal(t, "b", table.Rows[1].Cells[0].Content)
}

func TestMergeAndSplitCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	table := mustParse(t, `\begin{tabular}{ccc}
a & b & c \\
d & e & f \\
\end{tabular}`)
	if err := table.MergeCells(0, 0, 2, 2); err != nil {
		t.Fatal(err)
	}
	anchor := table.Rows[0].Cells[0]
	assert.Equal(t, 2, anchor.ColSpan)
	assert.Equal(t, 2, anchor.RowSpan)
	assert.Equal(t, "a b d e", anchor.Content)
	assert.True(t, table.Rows[1].Cells[0].Spanned)
	assert.True(t, table.Rows[1].Cells[1].Spanned)
	assert.False(t, table.Rows[1].Cells[2].Spanned)
	//
	if err := table.SplitCell(0, 0); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, table.Rows[0].Cells, 3)
	assert.Equal(t, 1, table.Rows[0].Cells[0].ColSpan)
	assert.Equal(t, 1, table.Rows[0].Cells[0].RowSpan)
	assert.False(t, table.Rows[1].Cells[0].Spanned)
	assert.False(t, table.Rows[1].Cells[1].Spanned)
}

func TestMergeRejections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	table := mustParse(t, `\begin{tabular}{ccc}
\multicolumn{2}{c}{wide} & x \\
a & b & c \\
\end{tabular}`)
	err := table.MergeCells(0, 0, 1, 2)
	if err == nil {
		t.Fatal("expected merge over an existing span to be rejected")
	}
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	err = table.MergeCells(1, 1, 1, 1)
	if err == nil {
		t.Fatal("expected single-cell merge to be rejected")
	}
	err = table.MergeCells(1, 1, 2, 1)
	if err == nil {
		t.Fatal("expected out-of-range merge to be rejected")
	}
}

func TestSplitCellRejections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	table := mustParse(t, `\begin{tabular}{cc}
a & b \\
\end{tabular}`)
	err := table.SplitCell(0, 0)
	if err == nil {
		t.Fatal("expected split of an unmerged cell to be rejected")
	}
	assert.Equal(t, core.EINVALID, core.Code(err))
	err = table.SplitCell(3, 0)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestSetColumnAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	table := mustParse(t, `\begin{tabular}{lp{3cm}}
a & b \\
\end{tabular}`)
	if err := table.SetColumnAlignment(0, AlignRight); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, ColRight, table.Columns[0].Kind)
	//
	err := table.SetColumnAlignment(1, AlignCenter)
	if err == nil {
		t.Fatal("expected alignment change on a fixed-width column to be rejected")
	}
	assert.Equal(t, core.EINVALID, core.Code(err))
	err = table.SetColumnAlignment(5, AlignLeft)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
