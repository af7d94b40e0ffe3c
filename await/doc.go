// Package await provides the small set of asynchronous primitives an
// invocation needs to track outstanding work:
//
//   - Awaitable: anything that eventually settles (success or failure)
//   - Future: a settle-once Awaitable that producers resolve or reject
//   - AllSettled / Then: combinators that never short-circuit on failure
//   - WaitList: the ordered, append-only wait-list owned by an invocation
//
// A WaitList only grows. Entries are never removed; callers that need to know
// when an invocation is quiescent use Settle, which keeps waiting until no new
// entries appear.
package await
