package tabular

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestColumnSpecBorders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	cols := ParseColumnSpec("|l|c|")
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, have %d", len(cols))
	}
	assert.True(t, cols[0].BorderLeft)
	assert.True(t, cols[0].BorderRight)
	assert.Equal(t, ColLeft, cols[0].Kind)
	assert.False(t, cols[1].BorderLeft)
	assert.True(t, cols[1].BorderRight)
	assert.Equal(t, ColCenter, cols[1].Kind)
}

func TestColumnSpecWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	cols := ParseColumnSpec("p{3cm}r m{0.4\\linewidth}")
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, have %d", len(cols))
	}
	assert.Equal(t, ColParTop, cols[0].Kind)
	assert.Equal(t, "3cm", cols[0].Width)
	assert.Equal(t, ColRight, cols[1].Kind)
	assert.Equal(t, ColParMiddle, cols[2].Kind)
	assert.Equal(t, "0.4\\linewidth", cols[2].Width)
}

func TestColumnSpecSeparators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	// custom separators affect generated text only, not the column count
	cols := ParseColumnSpec(`@{\hspace{1em}}lX!{\quad}c`)
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, have %d", len(cols))
	}
	assert.Equal(t, ColLeft, cols[0].Kind)
	assert.Equal(t, ColAutoFill, cols[1].Kind)
	assert.Equal(t, ColCenter, cols[2].Kind)
}

func TestColumnSpecMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	// unknown tokens are skipped; a spec without descriptors degrades to
	// an empty list, never an error
	assert.Empty(t, ParseColumnSpec("???"))
	assert.Empty(t, ParseColumnSpec(""))
	cols := ParseColumnSpec("?c?")
	assert.Len(t, cols, 1)
}

func TestColumnSpecRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "latab.tabular")
	defer teardown()
	//
	for _, spec := range []string{"|l|c|", "lcr", "|p{3cm}|X|", "c|c|c"} {
		cols := ParseColumnSpec(spec)
		if out := colSpecString(cols); out != spec {
			t.Errorf("spec %q regenerated as %q", spec, out)
		}
	}
}
