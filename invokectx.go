// Package invokectx provides ambient invocation-context propagation: deeply
// nested event handlers, computed-value getters and lifecycle hooks discover
// which component, element and event they run on behalf of without the
// information being threaded through every call signature.
//
// Most applications interact with this package by:
//  1. Creating a Runtime via New() (optionally attaching a host document,
//     logger and metrics)
//  2. Dispatching units of work with Dispatch or Runtime.Realm().Run
//  3. Looking the invocation up from nested code with TryCurrent / Current /
//     UseRender
//
// Package-level functions operate on a process-wide default realm for hosts
// that have exactly one execution realm.
package invokectx

import (
	"net/url"

	"github.com/hupe1980/invokectx/core"
	"github.com/hupe1980/invokectx/logging"
	"github.com/hupe1980/invokectx/realm"
	"github.com/hupe1980/invokectx/telemetry"
)

// Options configures the Runtime.
type Options struct {
	// Document is the host document. Attach it when the page may have been
	// resumed from markup so the cold-start tuple can be materialized.
	Document core.Document

	// EnableMetrics creates OpenTelemetry instruments from the global
	// MeterProvider unless Metrics is set explicitly.
	EnableMetrics bool

	// Metrics overrides the instruments used when EnableMetrics is set.
	Metrics *telemetry.Metrics

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Runtime is the high-level façade over a Realm.
type Runtime struct {
	opts  Options
	realm *realm.Realm
}

// New creates a new Runtime with optional overrides.
func New(optFns ...func(o *Options)) (*Runtime, error) {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.EnableMetrics && opts.Metrics == nil {
		m, err := telemetry.NewMetrics()
		if err != nil {
			return nil, err
		}
		opts.Metrics = m
	}

	r := realm.New(func(o *realm.Options) {
		o.Document = opts.Document
		o.Logger = opts.Logger
		o.Metrics = opts.Metrics
	})

	return &Runtime{opts: opts, realm: r}, nil
}

// Realm returns the runtime's realm.
func (rt *Runtime) Realm() *realm.Realm { return rt.realm }

// Dispatch runs handler as an invocation of event on el. The invocation's
// document is el's owner; HostElement stays absent, it is owned by the
// render pipeline.
func (rt *Runtime) Dispatch(el core.Element, event any, u *url.URL, handler func() error) error {
	inv := core.NewInvocation(core.DocumentOf(el), nil, el, event, u)
	return rt.realm.Run(inv, handler)
}

var defaultRealm = realm.New()

// Default returns the process-wide default realm.
func Default() *realm.Realm { return defaultRealm }

// TryCurrent returns the current invocation of the default realm, if any.
func TryCurrent() (*core.Invocation, bool) { return defaultRealm.TryCurrent() }

// Current returns the current invocation of the default realm or
// core.ErrOutsideContext.
func Current() (*core.Invocation, error) { return defaultRealm.Current() }

// Invoke runs fn with inv installed in the default realm.
func Invoke(inv *core.Invocation, fn func() error) error { return defaultRealm.Run(inv, fn) }

// UseRender returns the default realm's current render invocation.
func UseRender() (*core.RenderInvocation, error) { return defaultRealm.RequireRender() }

// Bind binds cb to the default realm's current invocation.
func Bind(cb realm.Callback) (realm.Callback, error) { return defaultRealm.Bind(cb) }

// WaitAndRun queues fn after everything currently on inv's wait-list.
func WaitAndRun(inv *core.Invocation, fn func() error) error { return core.WaitAndRun(inv, fn) }

// NewInvocation constructs an invocation; see core.NewInvocation.
func NewInvocation(doc core.Document, host, el core.Element, event any, u *url.URL) *core.Invocation {
	return core.NewInvocation(doc, host, el, event, u)
}

// FindWrappingContainer returns el's nearest container boundary, or nil.
func FindWrappingContainer(el core.Element) core.Element { return core.FindWrappingContainer(el) }
