package realm

import (
	"context"
	"errors"

	"github.com/hupe1980/invokectx/core"
	"github.com/hupe1980/invokectx/logging"
)

// RequireRender returns the current invocation narrowed to a render
// invocation. It fails with core.ErrOutsideContext when there is none, with
// core.ErrNotInRenderPhase when the current event is not core.RenderEvent,
// and with a *core.MissingFieldError naming the first missing field, checked
// in the order HostElement, WaitOn, RenderCtx, Doc, Subscriber.
func (r *Realm) RequireRender() (*core.RenderInvocation, error) {
	inv, err := r.Current()
	if err != nil {
		return nil, err
	}

	rinv, err := core.AsRenderInvocation(inv)
	if err != nil {
		reason := "not_render"
		var mf *core.MissingFieldError
		if errors.As(err, &mf) {
			reason = mf.Field
			logging.LogError(r.logger, err, "Render invocation is missing a field", "invocation_id", inv.ID, "field", mf.Field)
		}
		r.metrics.GuardRejected(context.Background(), reason)
		return nil, err
	}

	return rinv, nil
}
