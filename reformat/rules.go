// Package reformat rewrites informal answer text into markdown structure
// with an ordered list of pure text rules.
package reformat

import (
	"regexp"
	"strings"
)

// Rule is a named text transformation. Apply must be pure and idempotent.
type Rule struct {
	Name  string
	Apply func(string) string
}

var (
	emojiBullets = regexp.MustCompile(`[☑☝✌🤟✋👌🫱🫲🫳🫴👏🙌👉]\x{FE0F}?`)
	blankLines   = regexp.MustCompile(`\n\s*\n`)
)

// DefaultRules returns the rules applied by Reformat, in order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "emoji-bullets", Apply: func(s string) string {
			return emojiBullets.ReplaceAllLiteralString(s, "\n- ")
		}},
		{Name: "dot-bullets", Apply: func(s string) string {
			return strings.ReplaceAll(s, "•", "\n- ")
		}},
		{Name: "arrows", Apply: func(s string) string {
			return strings.ReplaceAll(s, "=>", ": ")
		}},
		{Name: "triple-stars", Apply: func(s string) string {
			return strings.ReplaceAll(s, "***", "\n\n### ")
		}},
		{Name: "blank-lines", Apply: func(s string) string {
			return blankLines.ReplaceAllLiteralString(s, "\n\n")
		}},
	}
}

// Apply runs rules over text in order.
func Apply(text string, rules []Rule) string {
	for _, r := range rules {
		text = r.Apply(text)
	}
	return text
}
