// Package validation runs field rules for form input and sanitises values
// before they are stored or echoed back into a page.
package validation

import (
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Violation is one failed rule on one form field.
type Violation struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// Rule pairs a validator tag with the message shown when it fails.
type Rule struct {
	Tag string
	Msg string
}

// Sanitize trims surrounding whitespace and escapes HTML metacharacters.
func Sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// Check runs every rule against value on its own so that all failures are
// reported, not just the first.
func Check(field, value string, rules ...Rule) []Violation {
	var out []Violation
	for _, r := range rules {
		if err := validate.Var(value, r.Tag); err != nil {
			out = append(out, Violation{Field: field, Msg: r.Msg})
		}
	}
	return out
}

// Messages flattens violations for logging and tests.
func Messages(vs []Violation) []string {
	msgs := make([]string, 0, len(vs))
	for _, v := range vs {
		msgs = append(msgs, v.Msg)
	}
	return msgs
}

// NormalizeIDs trims, drops blanks and removes duplicates while keeping order.
// The result is never nil.
func NormalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
