package crypto

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passmeter/internal/charset"
)

// MinGenerateLength is one character per mandatory class.
const MinGenerateLength = 4

// ErrInvalidLength is matched by every *InvalidLengthError.
var ErrInvalidLength = errors.New("invalid password length")

// InvalidLengthError reports a requested length below MinGenerateLength.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("password length must be at least %d, got %d", MinGenerateLength, e.Length)
}

// Is lets errors.Is(err, ErrInvalidLength) match.
func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// Generate creates a password of exactly length characters containing at least
// one lowercase letter, uppercase letter, digit and punctuation character.
// Passwords of 8 or more characters therefore pass every strength rule.
func Generate(length int, src Source) (string, error) {
	if length < MinGenerateLength {
		return "", &InvalidLengthError{Length: length}
	}

	result := make([]byte, length)

	// Guarantee at least one character from each class.
	for i, class := range charset.Classes {
		result[i] = randChar(src, class)
	}

	// Fill the remaining positions from the full pool.
	for i := len(charset.Classes); i < length; i++ {
		result[i] = randChar(src, charset.All)
	}

	shuffle(src, result)

	return string(result), nil
}

// randChar picks a random character from set.
func randChar(src Source, set string) byte {
	return set[src.IntN(len(set))]
}

// shuffle performs a Fisher-Yates shuffle driven by src.
func shuffle(src Source, data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
