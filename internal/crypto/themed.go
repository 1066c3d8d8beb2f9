package crypto

import (
	"strconv"

	"github.com/vaultpass/passmeter/internal/charset"
)

// ThemeWords is the vocabulary used by GenerateThemed.
var ThemeWords = []string{
	"Secure", "Strong", "Shield", "Encrypt", "Key", "Safe", "Vault", "Fortress",
	"Guardian", "Cyber", "Lock", "Passcode", "Firewall", "Defense", "Privacy",
	"Cipher", "Stealth", "Protector", "Intrusion", "Secrecy", "Sentinel", "Safeguard",
}

// GenerateThemed builds a memorable password: a theme word with each letter's
// case flipped independently, a four digit number in [1000, 9999] and one
// punctuation character, in that order.
//
// Independent case flips can leave the word entirely upper or lower case, in
// which case the result misses one letter-case rule. Use GenerateThemedStrict
// when every result must score full marks.
func GenerateThemed(src Source) string {
	return themedSuffix(src, themedWord(src))
}

// GenerateThemedStrict is GenerateThemed with at least one uppercase and one
// lowercase letter forced into the word.
func GenerateThemedStrict(src Source) string {
	word := themedWord(src)

	s := string(word)
	switch {
	case !charset.HasUpper(s):
		i := src.IntN(len(word))
		word[i] = toUpper(word[i])
	case !charset.HasLower(s):
		i := src.IntN(len(word))
		word[i] = toLower(word[i])
	}

	return themedSuffix(src, word)
}

func themedWord(src Source) []byte {
	word := []byte(ThemeWords[src.IntN(len(ThemeWords))])
	for i, c := range word {
		if src.IntN(2) == 0 {
			word[i] = toUpper(c)
		} else {
			word[i] = toLower(c)
		}
	}
	return word
}

func themedSuffix(src Source, word []byte) string {
	out := make([]byte, 0, len(word)+5)
	out = append(out, word...)
	out = strconv.AppendInt(out, int64(1000+src.IntN(9000)), 10)
	out = append(out, randChar(src, charset.Punctuation))
	return string(out)
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
