package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// Assistants mark confirmed cart additions with a hidden inline tag:
//
//	[ORDER: <item_id>, <quantity>]
//
// The grammar is fixed: bracketed, comma-separated, one directive per
// match. Text the pattern does not match is ignored.
var (
	directiveRe = regexp.MustCompile(`\[ORDER:\s*([^,]+),\s*(\d+)\]`)
	stripRe     = regexp.MustCompile(`\[ORDER:.*?\]`)
)

// Directive is one extracted order tag.
type Directive struct {
	ItemID   string
	Quantity int
}

// ParseDirectives extracts every order tag from an assistant reply.
func ParseDirectives(text string) []Directive {
	var out []Directive
	for _, m := range directiveRe.FindAllStringSubmatch(text, -1) {
		qty, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		out = append(out, Directive{
			ItemID:   strings.TrimSpace(m[1]),
			Quantity: qty,
		})
	}
	return out
}

// StripDirectives removes order tags from the reply shown to the
// customer.
func StripDirectives(text string) string {
	return strings.TrimSpace(stripRe.ReplaceAllString(text, ""))
}
