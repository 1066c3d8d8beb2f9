package crypto

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source supplies uniformly distributed integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSeededSource returns a deterministic PCG source. Two sources built from
// the same seed produce the same sequence. It is not safe for concurrent use.
func NewSeededSource(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SecureSource draws from crypto/rand and is safe for concurrent use.
type SecureSource struct{}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (SecureSource) IntN(n int) int {
	if n <= 0 {
		panic("crypto: invalid argument to IntN")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic("crypto: reading random source: " + err.Error())
	}
	return int(v.Int64())
}

// LockedSource serializes access to a Source shared between goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src with a mutex.
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

// IntN implements Source.
func (l *LockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}
