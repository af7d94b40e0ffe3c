package await

import (
	"context"
	"errors"
	"sync"
)

// WaitList is the ordered sequence of outstanding work an invocation must
// consider before it is settled. It is append-only and safe for concurrent
// use: continuations running on other goroutines may push entries while the
// owning invocation reads a snapshot.
type WaitList struct {
	mu    sync.Mutex
	items []Awaitable
}

// NewWaitList returns a WaitList seeded with items.
func NewWaitList(items ...Awaitable) *WaitList {
	w := &WaitList{}
	w.items = append(w.items, items...)
	return w
}

// Push appends a to the list. Nil entries are ignored.
func (w *WaitList) Push(a Awaitable) {
	if a == nil {
		return
	}
	w.mu.Lock()
	w.items = append(w.items, a)
	w.mu.Unlock()
}

// Snapshot returns a copy of the current entries. Entries pushed afterwards
// are not part of the returned slice.
func (w *WaitList) Snapshot() []Awaitable {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Awaitable, len(w.items))
	copy(out, w.items)

	return out
}

// Len returns the number of entries pushed so far.
func (w *WaitList) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.items)
}

// Settle blocks until every entry has settled, including entries appended
// while waiting, or until ctx is cancelled. It returns the joined errors of
// all rejected entries in list order.
func (w *WaitList) Settle(ctx context.Context) error {
	var (
		errs []error
		seen int
	)

	for {
		w.mu.Lock()
		batch := append([]Awaitable(nil), w.items[seen:]...)
		w.mu.Unlock()

		if len(batch) == 0 {
			return errors.Join(errs...)
		}

		for _, a := range batch {
			select {
			case <-a.Done():
			case <-ctx.Done():
				return ctx.Err()
			}
			if err := a.Err(); err != nil {
				errs = append(errs, err)
			}
		}

		seen += len(batch)
	}
}
