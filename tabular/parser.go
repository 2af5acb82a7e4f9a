package tabular

import (
	"regexp"
	"strings"
)

var beginEnvPattern = regexp.MustCompile(`\\begin\{(tabularx|tabulary|tabular|longtable|array)\}`)
var beginFloatPattern = regexp.MustCompile(`\\begin\{table\*?\}`)

// Parse turns the markup text of a table environment, optionally wrapped
// in a table float, into a Table. It returns nil if text holds no
// recognizable table block; malformed details inside a recognized block
// never fail the parse — they degrade and are left to the validator.
func Parse(text string) *Table {
	loc := beginEnvPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	env := text[loc[2]:loc[3]]
	dialect := dialectForName(env)
	t := &Table{
		Dialect:    dialect,
		SourceText: text,
	}
	parseFloatWrapper(t, text, loc[0])

	// dialect header arguments
	i := loc[1]
	if dialect == DialectTabularX {
		if w, next, ok := braceArg(text, skipSpace(text, i)); ok {
			t.TotalWidth = w
			i = next
		}
	} else if pos, next, ok := bracketArg(text, skipSpace(text, i)); ok {
		t.Position = pos
		i = next
	}
	spec, i, ok := braceArg(text, skipSpace(text, i))
	if !ok {
		tracer().Debugf("table block has no column spec")
		return nil
	}
	t.ColSpecRaw = spec
	t.Columns = ParseColumnSpec(spec)

	bodyEnd, _, ok := findEnvEnd(text, env, i)
	if !ok {
		return nil
	}
	t.Rows, t.Preamble = segmentRows(text[i:bodyEnd], len(t.Columns))
	markSpannedCells(t.Rows)
	tracer().Debugf("parsed %s table: %d columns, %d rows",
		t.Dialect, len(t.Columns), len(t.Rows))
	return t
}

// parseFloatWrapper detects an enclosing table float and extracts caption,
// label and placement. envStart is the offset of the inner environment.
func parseFloatWrapper(t *Table, text string, envStart int) {
	floc := beginFloatPattern.FindStringIndex(text)
	if floc == nil || floc[0] > envStart {
		return
	}
	fenv := "table"
	if strings.HasPrefix(text[floc[0]:], `\begin{table*}`) {
		fenv = "table*"
	}
	_, blockEnd, ok := findEnvEnd(text, fenv, floc[1])
	if !ok || blockEnd < envStart {
		return
	}
	t.Float = true
	if pos, _, ok := bracketArg(text, floc[1]); ok {
		t.FloatPosition = pos
	}
	if ci := strings.Index(text[floc[1]:], `\caption`); ci >= 0 && floc[1]+ci < blockEnd {
		ci += floc[1]
		j := ci + len(`\caption`)
		if _, next, ok := bracketArg(text, j); ok {
			j = next // short caption for the list of tables
		}
		if capt, _, ok := braceArg(text, skipSpace(text, j)); ok {
			t.Caption = capt
			if ci < envStart {
				t.CaptionPos = CaptionTop
			} else {
				t.CaptionPos = CaptionBottom
			}
		}
	}
	if li := strings.Index(text[floc[1]:], `\label`); li >= 0 && floc[1]+li < blockEnd {
		li += floc[1]
		if lab, _, ok := braceArg(text, skipSpace(text, li+len(`\label`))); ok {
			t.Label = lab
		}
	}
}

// findEnvEnd finds the \end matching the \begin of env whose body starts
// at bodyStart, honoring nested environments of the same name. It returns
// the offset of the \end token and the offset just past it.
func findEnvEnd(text, env string, bodyStart int) (bodyEnd, blockEnd int, ok bool) {
	begin := `\begin{` + env + `}`
	end := `\end{` + env + `}`
	depth := 1
	i := bodyStart
	for i <= len(text) {
		ei := strings.Index(text[i:], end)
		if ei < 0 {
			return 0, 0, false
		}
		bi := strings.Index(text[i:], begin)
		if bi >= 0 && bi < ei {
			depth++
			i += bi + len(begin)
			continue
		}
		depth--
		if depth == 0 {
			return i + ei, i + ei + len(end), true
		}
		i += ei + len(end)
	}
	return 0, 0, false
}

// markSpannedCells marks the grid positions consumed by row-spanning
// cells. The source rows hold empty cells at those positions; they become
// spanned placeholders.
func markSpannedCells(rows []Row) {
	for r, row := range rows {
		pos := 0
		for _, cell := range row.Cells {
			if !cell.Spanned && cell.RowSpan > 1 {
				for rr := r + 1; rr < r+cell.RowSpan && rr < len(rows); rr++ {
					for col := pos; col < pos+cell.Width(); col++ {
						if idx, _ := cellAt(rows[rr], col); idx >= 0 {
							rows[rr].Cells[idx].Spanned = true
						}
					}
				}
			}
			pos += cell.Width()
		}
	}
}

// --- Position lookup -------------------------------------------------------

// Region is a half-open byte range [Start,End) in a source document, plus
// the text it covers.
type Region struct {
	Start int
	End   int
	Text  string
}

// Locate finds the smallest table block enclosing the given byte offset in
// a document. If that block sits directly inside a table float, the float
// block is returned instead, so that caption and label travel with it.
// It returns nil if offset is not inside any table block.
func Locate(doc string, offset int) *Region {
	var best *Region
	for _, loc := range beginEnvPattern.FindAllStringSubmatchIndex(doc, -1) {
		env := doc[loc[2]:loc[3]]
		_, blockEnd, ok := findEnvEnd(doc, env, loc[1])
		if !ok {
			continue
		}
		if offset < loc[0] || offset >= blockEnd {
			continue
		}
		if best == nil || blockEnd-loc[0] < best.End-best.Start {
			best = &Region{Start: loc[0], End: blockEnd}
		}
	}
	if best == nil {
		return nil
	}
	// extend to an enclosing float, picking the tightest one
	var float *Region
	for _, floc := range beginFloatPattern.FindAllStringIndex(doc, -1) {
		env := "table"
		if strings.HasPrefix(doc[floc[0]:], `\begin{table*}`) {
			env = "table*"
		}
		_, blockEnd, ok := findEnvEnd(doc, env, floc[1])
		if !ok || floc[0] > best.Start || blockEnd < best.End {
			continue
		}
		if float == nil || blockEnd-floc[0] < float.End-float.Start {
			float = &Region{Start: floc[0], End: blockEnd}
		}
	}
	if float != nil {
		best = float
	}
	best.Text = doc[best.Start:best.End]
	return best
}
