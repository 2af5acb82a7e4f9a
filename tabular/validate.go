package tabular

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/latab/core/dimen"
)

// Severity grades a validation finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "info"
}

// Finding is one validation result. Row and Col are 0-based and -1 where
// the finding is not tied to a position.
type Finding struct {
	Severity Severity
	Row      int
	Col      int
	Message  string
}

// Advisory size thresholds. Tables beyond them are representable and
// generate fine, but tend to be unreadable in source form.
const (
	maxAdvisedColumns   = 12
	maxAdvisedRows      = 64
	maxAdvisedCellWidth = 60
)

// reserved characters that must be escaped inside cell content
const reservedChars = "&%#"

// Validate runs all structural checks over a table and reports findings.
// It never mutates the table and never fails for odd-but-representable
// input; callers decide severity policy. Running it twice on an unchanged
// table yields identical findings.
func Validate(t *Table) []Finding {
	var findings []Finding
	findings = append(findings, checkColumnCounts(t)...)
	findings = append(findings, checkReservedChars(t)...)
	findings = append(findings, checkSpanOverlap(t)...)
	findings = append(findings, checkCapabilities(t)...)
	findings = append(findings, checkEmptyCells(t)...)
	findings = append(findings, checkSize(t)...)
	findings = append(findings, checkColumnSpec(t)...)
	tracer().Debugf("validation: %d findings", len(findings))
	return findings
}

// checkColumnCounts compares each row's occupied grid positions against
// the declared column count. An unparseable column spec leaves the count
// unknown and disables this check.
func checkColumnCounts(t *Table) []Finding {
	ncols := t.ColumnCount()
	if ncols == 0 {
		return nil
	}
	var findings []Finding
	for r, row := range t.Rows {
		if n := occupiedColumns(row); n != ncols {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Row:      r,
				Col:      -1,
				Message:  fmt.Sprintf("row %d covers %d columns, table declares %d", r+1, n, ncols),
			})
		}
	}
	return findings
}

// checkReservedChars flags unescaped reserved characters in cell content,
// one warning per occurrence.
func checkReservedChars(t *Table) []Finding {
	var findings []Finding
	for r, row := range t.Rows {
		for col, cell := range row.Cells {
			if cell.Spanned {
				continue
			}
			s := cell.Content
			for i := 0; i < len(s); i++ {
				if s[i] == '\\' {
					i++ // escaped byte
					continue
				}
				if strings.IndexByte(reservedChars, s[i]) >= 0 {
					findings = append(findings, Finding{
						Severity: SeverityWarning,
						Row:      r,
						Col:      col,
						Message:  fmt.Sprintf("unescaped '%c' in cell (%d,%d)", s[i], r+1, col+1),
					})
				}
			}
		}
	}
	return findings
}

// checkSpanOverlap simulates grid occupancy: each non-spanned cell claims
// its full span rectangle, and any grid position claimed twice is an
// error.
func checkSpanOverlap(t *Table) []Finding {
	claims := make(map[[2]int]int)
	for r, row := range t.Rows {
		pos := 0
		for _, cell := range row.Cells {
			if !cell.Spanned {
				for rr := r; rr < r+cell.RowSpan; rr++ {
					for cc := pos; cc < pos+cell.Width(); cc++ {
						claims[[2]int{rr, cc}]++
					}
				}
			}
			pos += cell.Width()
		}
	}
	var findings []Finding
	for r, row := range t.Rows {
		pos := 0
		for _, cell := range row.Cells {
			if !cell.Spanned && claims[[2]int{r, pos}] > 1 {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Row:      r,
					Col:      pos,
					Message:  fmt.Sprintf("cell (%d,%d) overlaps another cell's span", r+1, pos+1),
				})
			}
			pos += cell.Width()
		}
	}
	return findings
}

// checkCapabilities infers which LaTeX packages the table requires and
// surfaces each requirement once.
func checkCapabilities(t *Table) []Finding {
	var caps []string
	switch t.Dialect {
	case DialectTabularX:
		caps = append(caps, "tabularx")
	case DialectLongtable:
		caps = append(caps, "longtable")
	case DialectTabulary:
		caps = append(caps, "tabulary")
	}
	multirow, booktabs := false, false
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			if !cell.Spanned && cell.RowSpan > 1 {
				multirow = true
			}
		}
		for _, rules := range [][]RowRule{row.RulesAbove, row.RulesBelow} {
			for _, rule := range rules {
				switch rule.Kind {
				case RuleTop, RuleMid, RuleBottom, RuleMidPartial:
					booktabs = true
				}
			}
		}
	}
	if multirow {
		caps = append(caps, "multirow")
	}
	if booktabs {
		caps = append(caps, "booktabs")
	}
	findings := make([]Finding, 0, len(caps))
	for _, c := range caps {
		findings = append(findings, Finding{
			Severity: SeverityInfo,
			Row:      -1,
			Col:      -1,
			Message:  fmt.Sprintf("table requires package %s", c),
		})
	}
	return findings
}

func checkEmptyCells(t *Table) []Finding {
	empty := 0
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			if !cell.Spanned && strings.TrimSpace(cell.Content) == "" {
				empty++
			}
		}
	}
	if empty == 0 {
		return nil
	}
	return []Finding{{
		Severity: SeverityInfo,
		Row:      -1,
		Col:      -1,
		Message:  fmt.Sprintf("table has %d empty cells", empty),
	}}
}

// checkSize emits advisory warnings for tables beyond the size
// thresholds and for very wide cell content.
func checkSize(t *Table) []Finding {
	var findings []Finding
	if n := t.ColumnCount(); n > maxAdvisedColumns {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Row:      -1,
			Col:      -1,
			Message:  fmt.Sprintf("%d columns; consider splitting the table", n),
		})
	}
	if n := len(t.Rows); n > maxAdvisedRows {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Row:      -1,
			Col:      -1,
			Message:  fmt.Sprintf("%d rows; consider a multi-page dialect", n),
		})
	}
	for r, row := range t.Rows {
		for col, cell := range row.Cells {
			if cell.Spanned {
				continue
			}
			if w := runewidth.StringWidth(cell.Content); w > maxAdvisedCellWidth {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Row:      r,
					Col:      col,
					Message:  fmt.Sprintf("cell (%d,%d) is %d columns wide; consider a fixed-width column", r+1, col+1, w),
				})
				return findings // one oversized-cell warning is enough
			}
		}
	}
	return findings
}

// checkColumnSpec reports details the permissive spec parser skipped:
// unknown tokens, and width arguments that are neither plain dimensions
// nor macro-relative lengths.
func checkColumnSpec(t *Table) []Finding {
	var findings []Finding
	if unknown := unknownSpecTokens(t.ColSpecRaw); unknown != "" {
		findings = append(findings, Finding{
			Severity: SeverityInfo,
			Row:      -1,
			Col:      -1,
			Message:  fmt.Sprintf("column spec contains unrecognized tokens %q", unknown),
		})
	}
	for i, col := range t.Columns {
		if !col.Kind.HasWidth() || col.Width == "" {
			continue
		}
		if strings.ContainsRune(col.Width, '\\') {
			continue // macro-relative length, fine
		}
		if _, err := dimen.ParseDimen(strings.TrimSpace(col.Width)); err != nil {
			findings = append(findings, Finding{
				Severity: SeverityInfo,
				Row:      -1,
				Col:      i,
				Message:  fmt.Sprintf("column %d width %q is not a dimension", i+1, col.Width),
			})
		}
	}
	return findings
}

// unknownSpecTokens collects the characters of a column spec that the
// parser skipped.
func unknownSpecTokens(spec string) string {
	var unknown []byte
	i := 0
	for i < len(spec) {
		ch := spec[i]
		if k, isCol := colKindForLetter(ch); isCol {
			i++
			if k.HasWidth() {
				if _, next, ok := braceArg(spec, skipSpace(spec, i)); ok {
					i = next
				}
			}
			continue
		}
		switch {
		case ch == '|' || ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '@' || ch == '!':
			if _, next, ok := braceArg(spec, skipSpace(spec, i+1)); ok {
				i = next
			} else {
				i++
			}
		case ch == '{':
			if _, next, ok := braceArg(spec, i); ok {
				i = next
			} else {
				i++
			}
		default:
			unknown = append(unknown, ch)
			i++
		}
	}
	return string(unknown)
}
