package tabular

import (
	"strconv"
	"strings"
)

// SplitCells splits one row's text into cell substrings on every '&' that
// sits at brace depth zero and is not escaped. Multi-span cells nest the
// full column-spec string inside their own braces, so a plain
// strings.Split would tear them apart.
func SplitCells(text string) []string {
	var cells []string
	var buf strings.Builder
	depth := 0
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '\\' && i+1 < len(text):
			buf.WriteByte(ch)
			i++
			buf.WriteByte(text[i])
		case ch == '{':
			depth++
			buf.WriteByte(ch)
		case ch == '}':
			if depth > 0 {
				depth--
			}
			buf.WriteByte(ch)
		case ch == '&' && depth == 0:
			cells = append(cells, buf.String())
			buf.Reset()
		default:
			buf.WriteByte(ch)
		}
	}
	return append(cells, buf.String())
}

// ParseCell classifies a single cell substring as plain, column-spanning,
// row-spanning, or both combined. Anything not matching one of the span
// forms is a plain cell; content below cell granularity is kept verbatim.
func ParseCell(raw string) Cell {
	raw = strings.TrimSpace(raw)
	if n, spec, content, ok := parseMulticolumn(raw); ok {
		cell := Cell{
			Content:      content,
			ColSpan:      n,
			RowSpan:      1,
			Align:        alignFromSpec(spec),
			SpecOverride: spec,
		}
		if m, anchor, inner, ok := parseMultirow(strings.TrimSpace(content)); ok {
			// combined form: a multicolumn whose sole content is a multirow
			cell.RowSpan = m
			cell.Anchor = anchor
			cell.Content = inner
		}
		return cell
	}
	if n, anchor, content, ok := parseMultirow(raw); ok {
		return Cell{
			Content: content,
			ColSpan: 1,
			RowSpan: n,
			Anchor:  anchor,
		}
	}
	return Cell{Content: raw, ColSpan: 1, RowSpan: 1}
}

// parseMulticolumn matches \multicolumn{n}{spec}{content}, anchored over
// the whole string. Brace arguments are scanned, not matched by regexp,
// since spec and content may contain nested braces.
func parseMulticolumn(s string) (span int, spec, content string, ok bool) {
	const kw = `\multicolumn`
	if !strings.HasPrefix(s, kw) {
		return 0, "", "", false
	}
	i := skipSpace(s, len(kw))
	nArg, i, ok1 := braceArg(s, i)
	spec, i, ok2 := braceArg(s, skipSpace(s, i))
	content, i, ok3 := braceArg(s, skipSpace(s, i))
	if !ok1 || !ok2 || !ok3 || skipSpace(s, i) != len(s) {
		return 0, "", "", false
	}
	span, err := strconv.Atoi(strings.TrimSpace(nArg))
	if err != nil || span < 1 {
		return 0, "", "", false
	}
	return span, spec, content, true
}

// parseMultirow matches \multirow[anchor]{n}{width}[fixup]{content},
// anchored over the whole string. The width argument is dropped: widths of
// row-spanning cells are always regenerated as auto-fill.
func parseMultirow(s string) (span int, anchor VAnchor, content string, ok bool) {
	const kw = `\multirow`
	if !strings.HasPrefix(s, kw) {
		return 0, AnchorNone, "", false
	}
	i := skipSpace(s, len(kw))
	if tag, next, hasTag := bracketArg(s, i); hasTag {
		anchor = anchorForTag(strings.TrimSpace(tag))
		i = next
	}
	nArg, i, ok1 := braceArg(s, skipSpace(s, i))
	_, i, ok2 := braceArg(s, skipSpace(s, i)) // width, ignored
	i = skipSpace(s, i)
	if _, next, hasFixup := bracketArg(s, i); hasFixup {
		i = next // vertical fixup, ignored
	}
	content, i, ok3 := braceArg(s, skipSpace(s, i))
	if !ok1 || !ok2 || !ok3 || skipSpace(s, i) != len(s) {
		return 0, AnchorNone, "", false
	}
	span, err := strconv.Atoi(strings.TrimSpace(nArg))
	if err != nil || span < 1 {
		return 0, AnchorNone, "", false
	}
	return span, anchor, content, true
}

func anchorForTag(tag string) VAnchor {
	switch tag {
	case "t":
		return AnchorTop
	case "c":
		return AnchorMiddle
	case "b":
		return AnchorBottom
	}
	return AnchorNone
}

// alignFromSpec scans a multicolumn spec argument for an alignment letter.
func alignFromSpec(spec string) Alignment {
	for i := 0; i < len(spec); i++ {
		switch spec[i] {
		case 'l':
			return AlignLeft
		case 'c':
			return AlignCenter
		case 'r':
			return AlignRight
		case '{':
			if _, next, ok := braceArg(spec, i); ok {
				i = next - 1
			}
		}
	}
	return AlignNone
}
