package await

import (
	"context"
	"fmt"
	"sync"
)

// Awaitable is a unit of asynchronous work that settles exactly once.
// Done is closed on settlement; Err reports the failure, if any, and is only
// meaningful after Done is closed.
type Awaitable interface {
	Done() <-chan struct{}
	Err() error
}

// Future is a settle-once Awaitable. The zero value is not usable; construct
// with NewFuture.
type Future struct {
	done chan struct{}
	once sync.Once
	err  error
}

// NewFuture returns an unsettled Future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolved returns a Future that has already settled successfully.
func Resolved() *Future {
	f := NewFuture()
	f.Resolve()
	return f
}

// Rejected returns a Future that has already settled with err.
func Rejected(err error) *Future {
	f := NewFuture()
	f.Reject(err)
	return f
}

// Go runs fn on a new goroutine and returns a Future settled with its result.
// A panic in fn rejects the Future instead of crashing the process.
func Go(fn func() error) *Future {
	f := NewFuture()
	go func() {
		f.Settle(call(fn))
	}()
	return f
}

// Settle settles the Future with err (nil means success). Only the first call
// has an effect.
func (f *Future) Settle(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Resolve settles the Future successfully.
func (f *Future) Resolve() { f.Settle(nil) }

// Reject settles the Future with err. A nil err is replaced by ErrRejected so
// a rejection is never mistaken for success.
func (f *Future) Reject(err error) {
	if err == nil {
		err = ErrRejected
	}
	f.Settle(err)
}

// Done returns a channel closed once the Future settles.
func (f *Future) Done() <-chan struct{} { return f.done }

// Err returns the settlement error. It is nil while the Future is pending.
func (f *Future) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Settled reports whether the Future has settled.
func (f *Future) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the Future settles or ctx is cancelled.
func (f *Future) Wait(ctx context.Context) error {
	return Wait(ctx, f)
}

// ErrRejected is the settlement error of a Future rejected without a cause.
var ErrRejected = fmt.Errorf("await: rejected")

// Wait blocks until a settles or ctx is cancelled and returns a's error or the
// cancellation cause.
func Wait(ctx context.Context, a Awaitable) error {
	select {
	case <-a.Done():
		return a.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("await: continuation panicked: %v", r)
		}
	}()
	return fn()
}
