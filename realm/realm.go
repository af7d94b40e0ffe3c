package realm

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/invokectx/core"
	"github.com/hupe1980/invokectx/logging"
	"github.com/hupe1980/invokectx/telemetry"
)

// Options configures a Realm.
type Options struct {
	// Logger receives run, cold-start and guard diagnostics.
	// Defaults to NoOp logger if nil.
	Logger logging.Logger

	// Document is the host document consulted for a cold-start tuple when no
	// invocation is installed. Leave nil outside a document host.
	//
	// A document belongs to one realm. Realms sharing a document see the same
	// materialized invocation only when their first lookups do not overlap:
	// reading the tuple and publishing its invocation is not atomic across
	// realms.
	Document core.Document

	// Metrics records run and cold-start instruments. Nil disables metrics.
	Metrics *telemetry.Metrics
}

// Realm owns the single ambient invocation slot of an execution realm.
type Realm struct {
	mu      sync.Mutex
	current *core.Invocation
	doc     core.Document

	logger  logging.Logger
	metrics *telemetry.Metrics
}

// New creates a Realm with no current invocation.
func New(optFns ...func(o *Options)) *Realm {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Realm{
		doc:     opts.Document,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// SetDocument attaches (or, with nil, detaches) the host document.
func (r *Realm) SetDocument(doc core.Document) {
	r.mu.Lock()
	r.doc = doc
	r.mu.Unlock()
}

// Document returns the host document, if any.
func (r *Realm) Document() core.Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.doc
}

// TryCurrent returns the current invocation. With none installed it falls
// back to the host document's cold-start slot, materializing a serialized
// tuple on first use and caching the result on the document so repeated
// lookups return the same *core.Invocation. Absence is reported, not an error.
func (r *Realm) TryCurrent() (*core.Invocation, bool) {
	r.mu.Lock()
	cur, doc := r.current, r.doc
	r.mu.Unlock()

	if cur != nil {
		return cur, true
	}

	if doc == nil {
		return nil, false
	}

	return r.coldStart(doc)
}

// coldStart runs without r.mu held: the document, the tuple's element, the
// logger and the metrics may all call back into the realm.
func (r *Realm) coldStart(doc core.Document) (*core.Invocation, bool) {
	cs := doc.ColdStart()
	switch cs.Kind() {
	case core.ColdStartMaterialized:
		return cs.Invocation()
	case core.ColdStartTuple:
		t, _ := cs.Tuple()
		inv := core.NewInvocationFromTuple(t)

		// A nested lookup made while resolving the tuple may have published first.
		if cached, ok := doc.ColdStart().Invocation(); ok {
			return cached, true
		}
		doc.SetColdStart(core.MaterializedColdStart(inv))

		logging.LogColdStart(r.logger, inv.ID, inv.EventName())
		r.metrics.ColdStart(context.Background(), inv.EventName())

		return inv, true
	default:
		return nil, false
	}
}

// Current returns the current invocation or ErrOutsideContext.
func (r *Realm) Current() (*core.Invocation, error) {
	inv, ok := r.TryCurrent()
	if !ok {
		return nil, core.ErrOutsideContext
	}
	return inv, nil
}

// Run installs inv as the current invocation, calls fn, and restores the
// previous invocation (possibly none) before returning fn's error. The
// restore also happens when fn panics; the panic then continues unchanged.
// A nil inv runs fn with no invocation installed.
func (r *Realm) Run(inv *core.Invocation, fn func() error) error {
	return r.run(context.Background(), inv, fn)
}

// RunContext is Run for callers that also pass the invocation explicitly:
// fn receives ctx extended with inv (see core.FromContext), which stays
// correctly attributed across suspension points where the ambient slot may
// not.
func (r *Realm) RunContext(ctx context.Context, inv *core.Invocation, fn func(ctx context.Context) error) error {
	ictx := core.WithInvocation(ctx, inv)
	return r.run(ictx, inv, func() error { return fn(ictx) })
}

// RunWith is Run for functions returning a value.
func RunWith[T any](r *Realm, inv *core.Invocation, fn func() (T, error)) (T, error) {
	var out T
	err := r.Run(inv, func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}

func (r *Realm) run(ctx context.Context, inv *core.Invocation, fn func() error) (err error) {
	prev := r.swap(inv)

	event := "none"
	id := ""
	if inv != nil {
		event = inv.EventName()
		id = inv.ID
	}

	start := time.Now()
	r.metrics.RunStarted(ctx, event)

	defer func() {
		r.swap(prev)

		dur := time.Since(start)
		r.metrics.RunFinished(ctx, event, dur, err)
		logging.LogRun(r.logger, id, event, dur, err)
	}()

	return fn()
}

func (r *Realm) swap(inv *core.Invocation) *core.Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.current
	r.current = inv

	return prev
}
