package tabular

import (
	"regexp"
	"strings"
)

// longtable header/footer markers; they terminate header/footer blocks and
// carry no cell content of their own.
var preambleMarkerPattern = regexp.MustCompile(`^\\end(?:firsthead|head|lastfoot|foot)$`)

// segmentRows splits a table body into row blocks on unescaped,
// brace-depth-zero row terminators, attaching rule lines to the proper
// row. ncols is the logical column count from the column spec; 0 means
// unknown and disables padding.
func segmentRows(body string, ncols int) (rows []Row, preamble []string) {
	var buf []string      // accumulated content of the open row
	var pending []RowRule // rules collected for the next row's RulesAbove
	closeRow := func() {
		text := strings.TrimSpace(strings.Join(buf, " "))
		buf = buf[:0]
		row := Row{Cells: parseRowCells(text, ncols), RulesAbove: pending}
		pending = nil
		rows = append(rows, row)
	}
	for _, line := range strings.Split(body, "\n") {
		chunk := line
		for {
			pre, rest, found := splitRowTerminator(chunk)
			if !found {
				break
			}
			if s := strings.TrimSpace(pre); s != "" {
				buf = append(buf, s)
			}
			closeRow()
			chunk = rest
		}
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			continue
		}
		if rule := ClassifyRule(trimmed); rule != nil {
			if len(buf) == 0 && len(rows) == 0 {
				pending = append(pending, *rule)
			} else if len(buf) == 0 {
				// between rows: the earlier row keeps the rule
				last := len(rows) - 1
				rows[last].RulesBelow = append(rows[last].RulesBelow, *rule)
			} else if len(rows) > 0 {
				last := len(rows) - 1
				rows[last].RulesBelow = append(rows[last].RulesBelow, *rule)
			} else {
				pending = append(pending, *rule)
			}
			continue
		}
		if len(rows) == 0 && len(buf) == 0 && preambleMarkerPattern.MatchString(trimmed) {
			preamble = append(preamble, trimmed)
			continue
		}
		buf = append(buf, trimmed)
	}
	// tolerate a missing trailing terminator
	if len(buf) > 0 {
		closeRow()
	}
	if len(pending) > 0 && len(rows) > 0 {
		last := len(rows) - 1
		rows[last].RulesBelow = append(rows[last].RulesBelow, pending...)
	}
	return rows, preamble
}

// splitRowTerminator splits a chunk at the first row terminator `\\` found
// at brace depth zero, consuming an optional spacing argument like
// `\\[2mm]`. found is false if the chunk holds no terminator.
func splitRowTerminator(s string) (pre, rest string, found bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if depth == 0 && i+1 < len(s) && s[i+1] == '\\' {
				pre = s[:i]
				rest = s[i+2:]
				if _, next, ok := bracketArg(rest, 0); ok {
					rest = rest[next:]
				}
				return pre, rest, true
			}
			i++ // escape sequence, skip the escaped byte
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return "", "", false
}

// parseRowCells splits and classifies a row's cells, padding with empty
// plain cells when the row covers fewer grid columns than declared.
// Excess cells are retained as-is; the validator reports them.
func parseRowCells(text string, ncols int) []Cell {
	parts := SplitCells(text)
	cells := make([]Cell, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, ParseCell(part))
	}
	// a lone empty substring means an empty row, not one empty cell
	if len(cells) == 1 && cells[0].Content == "" && ncols > 0 {
		cells = cells[:0]
	}
	occupied := 0
	for _, c := range cells {
		occupied += c.Width()
	}
	if ncols > 0 && occupied > ncols {
		tracer().Infof("row covers %d columns, %d declared", occupied, ncols)
	}
	for ncols > 0 && occupied < ncols {
		cells = append(cells, Cell{ColSpan: 1, RowSpan: 1})
		occupied++
	}
	return cells
}
