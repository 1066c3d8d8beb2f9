package strength

// Band is the coarse classification shown next to a score.
type Band string

const (
	BandWeak     Band = "Weak"
	BandModerate Band = "Moderate"
	BandStrong   Band = "Strong"
)

// BandFor maps a score to its band: 2 or less is weak, 3 and 4 are moderate,
// anything higher is strong.
func BandFor(score int) Band {
	switch {
	case score <= 2:
		return BandWeak
	case score <= 4:
		return BandModerate
	default:
		return BandStrong
	}
}
