package tabular

// ParseColumnSpec parses a column-format string, e.g. "|l|p{3cm}|X|", into
// an ordered list of column descriptors. The scan is permissive: unknown
// tokens are skipped, custom separators (@{..}, !{..}) are consumed and
// dropped, and a malformed spec degrades to an empty descriptor list,
// which callers treat as "column count unknown".
func ParseColumnSpec(spec string) []ColumnDescriptor {
	var cols []ColumnDescriptor
	pendingLeft := false
	i := 0
	for i < len(spec) {
		ch := spec[i]
		switch {
		case ch == '|':
			if len(cols) > 0 && !pendingLeft {
				cols[len(cols)-1].BorderRight = true
			} else {
				pendingLeft = true
			}
			i++
		case ch == '@' || ch == '!':
			// custom separator: affects generated text only, not the
			// logical column count
			if _, next, ok := braceArg(spec, skipSpace(spec, i+1)); ok {
				i = next
			} else {
				i++
			}
		default:
			if kind, isCol := colKindForLetter(ch); isCol {
				col := ColumnDescriptor{Kind: kind, BorderLeft: pendingLeft}
				pendingLeft = false
				i++
				if kind.HasWidth() {
					if w, next, ok := braceArg(spec, skipSpace(spec, i)); ok {
						col.Width = w
						i = next
					}
				}
				cols = append(cols, col)
			} else if ch == '{' {
				// stray group, e.g. the arguments of an unsupported
				// *{n}{..} repetition: skip it wholly
				if _, next, ok := braceArg(spec, i); ok {
					i = next
				} else {
					i++
				}
			} else {
				i++ // unknown token or whitespace
			}
		}
	}
	tracer().Debugf("column spec %q yields %d columns", spec, len(cols))
	return cols
}

func colKindForLetter(ch byte) (ColKind, bool) {
	switch ch {
	case 'l', 'L', 'J': // tabulary's L and J map to left
		return ColLeft, true
	case 'c', 'C':
		return ColCenter, true
	case 'r', 'R':
		return ColRight, true
	case 'X':
		return ColAutoFill, true
	case 'p':
		return ColParTop, true
	case 'm':
		return ColParMiddle, true
	case 'b':
		return ColParBottom, true
	}
	return 0, false
}

// colSpecString is the inverse of ParseColumnSpec for well-formed
// descriptor lists. Shared borders between adjacent columns collapse to a
// single marker.
func colSpecString(cols []ColumnDescriptor) string {
	var sb []byte
	for i, col := range cols {
		if col.BorderLeft && (i == 0 || !cols[i-1].BorderRight) {
			sb = append(sb, '|')
		}
		sb = append(sb, col.Kind.Letter()...)
		if col.Kind.HasWidth() {
			sb = append(sb, '{')
			sb = append(sb, col.Width...)
			sb = append(sb, '}')
		}
		if col.BorderRight {
			sb = append(sb, '|')
		}
	}
	return string(sb)
}
