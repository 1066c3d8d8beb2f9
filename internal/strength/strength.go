// Package strength scores passwords against a fixed five-rule policy.
//
// Each satisfied rule is worth one point. Rules are checked in a fixed order and
// every failed rule contributes one suggestion, so the suggestion list is always
// ordered the same way for the same set of failures.
package strength

import (
	"unicode/utf8"

	"github.com/vaultpass/passmeter/internal/charset"
)

const (
	// MinLength is the character count required by the length rule.
	MinLength = 8
	// MaxScore is the score of a password that passes every rule.
	MaxScore = 5
)

// Rule identifies one policy check.
type Rule string

const (
	RuleLength    Rule = "length"
	RuleUppercase Rule = "uppercase"
	RuleLowercase Rule = "lowercase"
	RuleDigit     Rule = "digit"
	RuleSpecial   Rule = "special"
)

// Suggestion is the remediation message for one failed rule.
type Suggestion struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

type check struct {
	rule    Rule
	message string
	pass    func(string) bool
}

var checks = []check{
	{RuleLength, "Password should be at least 8 characters long.", func(s string) bool {
		return utf8.RuneCountInString(s) >= MinLength
	}},
	{RuleUppercase, "Include uppercase letters.", charset.HasUpper},
	{RuleLowercase, "Include lowercase letters.", charset.HasLower},
	{RuleDigit, "Add at least one number (0-9).", charset.HasDigit},
	{RuleSpecial, "Include at least one special character (!@#$%^&*).", charset.HasPunct},
}

// Report is the result of evaluating one password.
type Report struct {
	Score       int
	Suggestions []Suggestion
}

// Evaluate scores password. It never fails: the empty string scores 0 with one
// suggestion per rule.
func Evaluate(password string) Report {
	r := Report{Suggestions: []Suggestion{}}
	for _, c := range checks {
		if c.pass(password) {
			r.Score++
			continue
		}
		r.Suggestions = append(r.Suggestions, Suggestion{Rule: c.rule, Message: c.message})
	}
	return r
}

// Band returns the display band for the report's score.
func (r Report) Band() Band {
	return BandFor(r.Score)
}

// Progress returns the score as a fraction in [0, 1].
func (r Report) Progress() float64 {
	return float64(r.Score) / MaxScore
}

// Rules returns the rules in check order.
func Rules() []Rule {
	out := make([]Rule, len(checks))
	for i, c := range checks {
		out[i] = c.rule
	}
	return out
}
