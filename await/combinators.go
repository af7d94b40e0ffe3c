package await

// AllSettled returns a Future that resolves once every entry of items has
// settled, whether it succeeded or failed. It never rejects. The slice is read
// once; later changes to the caller's backing array are not observed.
func AllSettled(items []Awaitable) *Future {
	pending := make([]Awaitable, 0, len(items))
	for _, a := range items {
		if a != nil {
			pending = append(pending, a)
		}
	}

	if len(pending) == 0 {
		return Resolved()
	}

	f := NewFuture()
	go func() {
		for _, a := range pending {
			<-a.Done()
		}
		f.Resolve()
	}()

	return f
}

// Then returns a Future that runs fn after a settles and settles with fn's
// result. a's own failure does not prevent fn from running.
func Then(a Awaitable, fn func() error) *Future {
	f := NewFuture()
	go func() {
		<-a.Done()
		f.Settle(call(fn))
	}()
	return f
}
