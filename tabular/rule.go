package tabular

import (
	"fmt"
	"regexp"
	"strconv"
)

// The six recognized horizontal-rule shapes, each anchored over a whole
// trimmed line. Anything else is ordinary row content.
var (
	hlinePattern    = regexp.MustCompile(`^\\hline$`)
	clinePattern    = regexp.MustCompile(`^\\cline\s*\{\s*(\d+)\s*-\s*(\d+)\s*\}$`)
	topRulePattern  = regexp.MustCompile(`^\\toprule$`)
	midRulePattern  = regexp.MustCompile(`^\\midrule$`)
	botRulePattern  = regexp.MustCompile(`^\\bottomrule$`)
	cmidrulePattern = regexp.MustCompile(`^\\cmidrule\s*(?:\(([lr]+)\))?\s*\{\s*(\d+)\s*-\s*(\d+)\s*\}$`)
)

// ClassifyRule recognizes a horizontal-rule line and extracts its
// parameters. It returns nil if the line is not a rule.
func ClassifyRule(line string) *RowRule {
	switch {
	case hlinePattern.MatchString(line):
		return &RowRule{Kind: RuleFull}
	case topRulePattern.MatchString(line):
		return &RowRule{Kind: RuleTop}
	case midRulePattern.MatchString(line):
		return &RowRule{Kind: RuleMid}
	case botRulePattern.MatchString(line):
		return &RowRule{Kind: RuleBottom}
	}
	if m := clinePattern.FindStringSubmatch(line); m != nil {
		from, _ := strconv.Atoi(m[1])
		to, _ := strconv.Atoi(m[2])
		return &RowRule{Kind: RulePartial, From: from, To: to}
	}
	if m := cmidrulePattern.FindStringSubmatch(line); m != nil {
		from, _ := strconv.Atoi(m[2])
		to, _ := strconv.Atoi(m[3])
		return &RowRule{Kind: RuleMidPartial, From: from, To: to, Trim: m[1]}
	}
	return nil
}

// ruleText serializes a rule back to markup.
func ruleText(r RowRule) string {
	switch r.Kind {
	case RuleFull:
		return `\hline`
	case RulePartial:
		return fmt.Sprintf(`\cline{%d-%d}`, r.From, r.To)
	case RuleTop:
		return `\toprule`
	case RuleMid:
		return `\midrule`
	case RuleBottom:
		return `\bottomrule`
	case RuleMidPartial:
		if r.Trim != "" {
			return fmt.Sprintf(`\cmidrule(%s){%d-%d}`, r.Trim, r.From, r.To)
		}
		return fmt.Sprintf(`\cmidrule{%d-%d}`, r.From, r.To)
	}
	return ""
}
