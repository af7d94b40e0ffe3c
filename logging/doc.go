// Package logging provides a minimal logging interface and adapters for invokectx.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that realms use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - InvokeLogger with invocation-aware attributes and run/cold-start helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
//	r := realm.New(func(o *realm.Options) { o.Logger = logger })
//
// The interface stays minimal so callers can plug in any structured logger.
package logging
