// Package history keeps the capped, per-mode record of checked and generated
// passwords that the presentation layer displays. It is owned by the caller;
// the strength and generator code never read it.
package history

import (
	"errors"
	"time"
)

const (
	// DefaultCapacity is the number of entries kept per mode.
	DefaultCapacity = 10

	// MaxValueBytes bounds a recorded value in every store.
	MaxValueBytes = 256
)

var (
	ErrUnknownMode   = errors.New("unknown history mode")
	ErrValueTooLarge = errors.New("history value exceeds 256 bytes")
)

// Mode names the action that produced an entry.
type Mode string

const (
	ModeStrength Mode = "strength"
	ModeRandom   Mode = "random"
	ModeThemed   Mode = "themed"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeStrength, ModeRandom, ModeThemed}

// ParseMode validates s as a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", ErrUnknownMode
}

// Entry is one recorded password.
type Entry struct {
	Value     string
	CreatedAt time.Time
}

// Ring holds the most recent entries up to a fixed capacity.
// The zero value is not usable; call NewRing.
type Ring struct {
	buf  []Entry
	next int
	full bool
}

// NewRing returns a ring holding at most capacity entries.
// A capacity below 1 is treated as 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]Entry, capacity)}
}

// Push records e, evicting the oldest entry when full.
func (r *Ring) Push(e Entry) {
	r.buf[r.next] = e
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.full = true
	}
}

// Len returns the number of stored entries.
func (r *Ring) Len() int {
	if r.full {
		return len(r.buf)
	}
	return r.next
}

// Cap returns the ring's capacity.
func (r *Ring) Cap() int {
	return len(r.buf)
}

// Recent returns the stored entries, most recent first.
func (r *Ring) Recent() []Entry {
	n := r.Len()
	out := make([]Entry, 0, n)
	for i := 1; i <= n; i++ {
		idx := (r.next - i + len(r.buf)) % len(r.buf)
		out = append(out, r.buf[idx])
	}
	return out
}

// Log is one Ring per mode.
type Log struct {
	capacity int
	rings    map[Mode]*Ring
}

// NewLog returns an empty log with the given per-mode capacity.
func NewLog(capacity int) *Log {
	l := &Log{capacity: capacity, rings: make(map[Mode]*Ring, len(Modes))}
	for _, m := range Modes {
		l.rings[m] = NewRing(capacity)
	}
	return l
}

// Add records e under mode.
func (l *Log) Add(mode Mode, e Entry) error {
	r, ok := l.rings[mode]
	if !ok {
		return ErrUnknownMode
	}
	r.Push(e)
	return nil
}

// Recent returns the entries of mode, most recent first.
func (l *Log) Recent(mode Mode) ([]Entry, error) {
	r, ok := l.rings[mode]
	if !ok {
		return nil, ErrUnknownMode
	}
	return r.Recent(), nil
}
