package core

import "github.com/hupe1980/invokectx/await"

// WaitAndRun queues fn to run after every entry currently on inv's wait-list
// has settled, successfully or not. The combinator is appended to the live
// wait-list, but only waits on the entries present before it was appended,
// so it never waits on itself and later pushes do not delay it.
func WaitAndRun(inv *Invocation, fn func() error) error {
	if inv == nil || inv.WaitOn == nil {
		return ErrMissingWaitList
	}

	previous := inv.WaitOn.Snapshot()
	inv.WaitOn.Push(await.Then(await.AllSettled(previous), fn))

	return nil
}
