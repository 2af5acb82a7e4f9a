package tabular

// Low-level scanning helpers shared by the sub-parsers. All of them work
// on raw bytes: the markup's structural characters are ASCII, and anything
// multi-byte passes through inside content. Escape sequences (a backslash
// followed by any byte) are treated as opaque two-byte units.

// braceArg reads a balanced-brace group starting at s[i] (which must be
// '{') and returns the group's content and the index just past the closing
// brace. ok is false if s[i] is not '{' or the group never closes.
func braceArg(s string, i int) (arg string, next int, ok bool) {
	if i >= len(s) || s[i] != '{' {
		return "", i, false
	}
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++ // skip escaped byte
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[i+1 : j], j + 1, true
			}
		}
	}
	return "", i, false
}

// bracketArg reads an optional [..] group starting at s[i]. If s[i] is not
// '[', it returns ok=false with next unchanged; brackets do not nest.
func bracketArg(s string, i int) (arg string, next int, ok bool) {
	if i >= len(s) || s[i] != '[' {
		return "", i, false
	}
	for j := i + 1; j < len(s); j++ {
		if s[j] == '\\' {
			j++
			continue
		}
		if s[j] == ']' {
			return s[i+1 : j], j + 1, true
		}
	}
	return "", i, false
}

// skipSpace returns the first index ≥ i of a non-whitespace byte.
func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}
