// Package clock provides the production Clock and IDGenerator capabilities.
package clock

import (
	"strconv"
	"sync/atomic"
	"time"

	"smartcontract/internal/usecase/interfaces"
)

// SystemClock reads the wall clock.

type SystemClock struct{}

var _ interfaces.Clock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimestampIDGenerator derives ids from the millisecond creation timestamp.
// A monotonic counter breaks ties so two creations in the same millisecond
// still get distinct ids within the session.

type TimestampIDGenerator struct {
	last atomic.Int64
}

var _ interfaces.IDGenerator = (*TimestampIDGenerator)(nil)

func NewTimestampIDGenerator() *TimestampIDGenerator {
	return &TimestampIDGenerator{}
}

func (g *TimestampIDGenerator) Next() string {
	for {
		now := time.Now().UnixMilli()
		prev := g.last.Load()
		if now <= prev {
			now = prev + 1
		}
		if g.last.CompareAndSwap(prev, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
