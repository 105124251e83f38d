// Package reserver hands out tokens from a fixed, priority-ordered set,
// falling back to a shared overflow token once the set is exhausted.
//
// It is used to give every loaded dataset a display color of its own while
// the nicer colors last:
//
//	r := reserver.New([]string{"blue", "green", "red"}, "yellow")
//	c := r.Allocate() // "blue"
//	_ = r.Release(c)
//
// A Reserver is NOT safe for concurrent use.
package reserver

import (
	"errors"
	"fmt"
)

// ErrUnknownToken is returned when releasing a token that is neither one of
// the preferred tokens nor the overflow token.
var ErrUnknownToken = errors.New("reserver: unknown token")

type Reserver[T comparable] struct {
	preferred []T
	assigned  []bool
	overflow  T
}

// New copies preferred; earlier tokens are handed out first.
func New[T comparable](preferred []T, overflow T) *Reserver[T] {
	return &Reserver[T]{
		preferred: append([]T(nil), preferred...),
		assigned:  make([]bool, len(preferred)),
		overflow:  overflow,
	}
}

// Allocate returns the most preferred free token and marks it assigned.
// When every preferred token is assigned it returns the overflow token,
// which is never tracked.
func (r *Reserver[T]) Allocate() T {
	for i, taken := range r.assigned {
		if !taken {
			r.assigned[i] = true
			return r.preferred[i]
		}
	}
	return r.overflow
}

// Release returns tok to the pool. Releasing the overflow token or a token
// that is already free is a no-op.
func (r *Reserver[T]) Release(tok T) error {
	if tok == r.overflow {
		return nil
	}

	found := false
	for i, p := range r.preferred {
		if p != tok {
			continue
		}
		found = true
		if r.assigned[i] {
			r.assigned[i] = false
			return nil
		}
	}
	if !found {
		return fmt.Errorf("%w: %v", ErrUnknownToken, tok)
	}
	return nil
}

// InUse reports whether tok is a currently assigned preferred token.
func (r *Reserver[T]) InUse(tok T) bool {
	for i, p := range r.preferred {
		if p == tok && r.assigned[i] {
			return true
		}
	}
	return false
}

// Available returns the number of preferred tokens not yet assigned.
func (r *Reserver[T]) Available() int {
	n := 0
	for _, taken := range r.assigned {
		if !taken {
			n++
		}
	}
	return n
}

func (r *Reserver[T]) Overflow() T { return r.overflow }
