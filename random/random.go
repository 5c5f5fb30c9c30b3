// Package random provides the uniform integer source used for snake spawns and
// food placement. Games take a Source instead of calling math/rand directly so
// a seed or a scripted Sequence can make a session reproducible.
package random

import (
	"fmt"
	"math/rand"
	"time"
)

// Source draws uniform integers.
type Source interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int
}

// Range returns a uniform integer in [min, max).
func Range(src Source, min, max int) int {
	if max <= min {
		panic(fmt.Sprintf("random: empty range [%d, %d)", min, max))
	}
	return min + src.Intn(max-min)
}

type mathSource struct {
	r *rand.Rand
}

// New returns a Source seeded with seed. A zero seed is replaced with the
// current time.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathSource{r: rand.New(rand.NewSource(seed))}
}

func (s *mathSource) Intn(n int) int { return s.r.Intn(n) }

// Sequence replays scripted Intn results in order, wrapping around when it runs
// out. A scripted value outside [0, n) panics since the test driving it is
// wrong about what is being drawn.
type Sequence struct {
	values []int
	calls  int
}

// NewSequence returns a Sequence replaying values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value.
func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 {
		panic("random: empty sequence")
	}
	v := s.values[s.calls%len(s.values)]
	s.calls++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("random: scripted value %d outside [0, %d)", v, n))
	}
	return v
}

// Calls reports how many values have been drawn.
func (s *Sequence) Calls() int { return s.calls }
