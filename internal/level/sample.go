package level

import (
	"context"
	"time"
)

// Budget bounds a rejection-sampling loop. A zero field means no limit on
// that axis, but at least one candidate is always drawn.
type Budget struct {
	Timeout     time.Duration
	MaxAttempts int
}

// DefaultBudget is the per-level generation budget.
var DefaultBudget = Budget{
	Timeout:     2 * time.Second,
	MaxAttempts: 200_000,
}

// Result is the outcome of Sample. Value is the accepted candidate or, when
// the budget ran out, the last candidate drawn.
type Result[T any] struct {
	Value    T
	Attempts int
	Valid    bool
}

// Sample draws candidates until accept returns true, the budget is exhausted
// or ctx is done. It never fails: an exhausted budget returns the last draw
// with Valid unset.
func Sample[T any](ctx context.Context, b Budget, draw func() T, accept func(T) bool) Result[T] {
	var deadline time.Time
	if b.Timeout > 0 {
		deadline = time.Now().Add(b.Timeout)
	}

	var res Result[T]
	for {
		res.Value = draw()
		res.Attempts++
		if accept(res.Value) {
			res.Valid = true
			return res
		}

		if b.MaxAttempts > 0 && res.Attempts >= b.MaxAttempts {
			return res
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return res
		}
		if ctx.Err() != nil {
			return res
		}
	}
}
