package vector

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
)

// Source is the randomness used by Shuffle and RandomFill.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Uint64() uint64
	Uint64n(n uint64) uint64
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// TimeSource returns a source seeded from the current time.
func TimeSource() Source {
	return NewSource(uint64(time.Now().UnixNano()))
}

// Shuffle randomly permutes the elements in place.
func (v *Vector) Shuffle(src Source) {
	s := v.buf[:v.n]
	src.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// RandomFill appends count values drawn uniformly from [minVal, maxVal].
// On error v is left unchanged.
func (v *Vector) RandomFill(src Source, count, minVal, maxVal int) error {
	if count < 0 || count > math.MaxInt-v.n {
		return ErrInvalidCount
	}
	if minVal > maxVal {
		return ErrInvalidRange
	}
	v.ensureCapacity(v.n + count)
	span := uint64(maxVal-minVal) + 1
	for i := 0; i < count; i++ {
		var off uint64
		if span == 0 { // full 64-bit range
			off = src.Uint64()
		} else {
			off = src.Uint64n(span)
		}
		v.buf[v.n] = minVal + int(off)
		v.n++
	}
	return nil
}
