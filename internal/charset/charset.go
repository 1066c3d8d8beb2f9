// Package charset defines the four character classes shared by the strength
// evaluator and the password generators.
package charset

import "strings"

const (
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Punctuation = "-!@#$%^&*()_+=;:,.<>?/~"

	// All is the union used to fill generated passwords past the mandatory characters.
	All = Lowercase + Uppercase + Digits + Punctuation
)

// Classes lists the mandatory classes in the order generators seed them.
var Classes = []string{Lowercase, Uppercase, Digits, Punctuation}

// HasLower reports whether s contains an ASCII lowercase letter.
func HasLower(s string) bool {
	return strings.ContainsAny(s, Lowercase)
}

// HasUpper reports whether s contains an ASCII uppercase letter.
func HasUpper(s string) bool {
	return strings.ContainsAny(s, Uppercase)
}

// HasDigit reports whether s contains an ASCII digit.
func HasDigit(s string) bool {
	return strings.ContainsAny(s, Digits)
}

// HasPunct reports whether s contains a character from Punctuation.
func HasPunct(s string) bool {
	return strings.ContainsAny(s, Punctuation)
}
