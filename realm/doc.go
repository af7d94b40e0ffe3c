// Package realm implements the ambient invocation slot of an execution realm.
//
// A Realm holds at most one current *core.Invocation. Run installs an
// invocation for the dynamic extent of a function and restores the previous
// one on every exit path, so nested Runs behave like a stack even though only
// one cell exists. Deeply nested code discovers the invocation it runs on
// behalf of with TryCurrent or Current instead of receiving it as a parameter.
//
// When nothing is installed and the realm has a host document whose
// cold-start slot holds a serialized tuple, the first lookup materializes the
// tuple into an Invocation and caches it on the document.
//
// A Realm is meant to be driven by one goroutine at a time (the event loop of
// a page or a test). Its state is mutex-guarded, but the slot is attributed to
// call stacks, not goroutines: code that resumes after a suspension must look
// the invocation up again, or carry it in a context.Context via RunContext.
package realm
