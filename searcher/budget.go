package searcher

import (
	"math"
	"time"
)

// TimeLeft reports the time remaining in the current turn. It may go negative once the
// turn deadline has passed.
type TimeLeft func() time.Duration

// Budget is the wall-clock allowance of one turn. It is created when the turn starts and is
// the only source of truth for cancelling a search.
type Budget struct {
	start     time.Time
	deadline  time.Time
	unbounded bool
}

// NewBudget starts a budget expiring allotted from now. A non-positive allotment is
// already expired.
func NewBudget(allotted time.Duration) *Budget {
	now := time.Now()
	return &Budget{start: now, deadline: now.Add(allotted)}
}

// BudgetFrom starts a budget from the turn's time-left provider. A nil provider means no limit.
func BudgetFrom(timeLeft TimeLeft) *Budget {
	if timeLeft == nil {
		return Unbounded()
	}
	return NewBudget(timeLeft())
}

// Unbounded returns a budget that never expires.
func Unbounded() *Budget {
	return &Budget{start: time.Now(), unbounded: true}
}

// Remaining returns the time left before the deadline, negative after it.
func (b *Budget) Remaining() time.Duration {
	if b.unbounded {
		return math.MaxInt64
	}
	return time.Until(b.deadline)
}

// Expired reports whether no more than margin is left.
func (b *Budget) Expired(margin time.Duration) bool {
	return !b.unbounded && b.Remaining() <= margin
}

func (b *Budget) Elapsed() time.Duration {
	return time.Since(b.start)
}
