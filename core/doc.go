// Package core provides the foundational types of invokectx: the Invocation
// record describing which document, element and event a unit of work runs on
// behalf of, and the pieces built directly on it:
//
//   - NewInvocation / NewInvocationFromTuple (construction, cold start)
//   - AsRenderInvocation (render-phase validation with named fields)
//   - WaitAndRun (continuations ordered after an invocation's wait-list)
//   - WithInvocation / FromContext (explicit passing via context.Context)
//
// DOM access is expressed through the small Element and Document interfaces;
// the package never mutates a document beyond its cold-start slot, and that
// write is performed by realms, not here.
package core
