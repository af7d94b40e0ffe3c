package core_test

import (
	"errors"
	"testing"

	"github.com/hupe1980/invokectx/core"
	"github.com/hupe1980/invokectx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRenderEvent(t *testing.T) {
	assert.True(t, core.IsRenderEvent(core.RenderEvent))
	assert.False(t, core.IsRenderEvent("qRender"))
	assert.False(t, core.IsRenderEvent(nil))
	assert.False(t, core.IsRenderEvent(map[string]any{}))
}

func TestAsRenderInvocation_NotRender(t *testing.T) {
	inv := testutil.NewInvocationBuilder().Event("click").Build()

	_, err := core.AsRenderInvocation(inv)
	assert.ErrorIs(t, err, core.ErrNotInRenderPhase)
}

func TestAsRenderInvocation_Nil(t *testing.T) {
	_, err := core.AsRenderInvocation(nil)
	assert.ErrorIs(t, err, core.ErrOutsideContext)
}

func TestAsRenderInvocation_FieldOrder(t *testing.T) {
	page := testutil.NewPage()

	tests := []struct {
		name  string
		inv   *core.Invocation
		field string
	}{
		{
			name:  "everything missing",
			inv:   testutil.NewInvocationBuilder().Event(core.RenderEvent).Build(),
			field: "HostElement",
		},
		{
			name:  "missing wait-list",
			inv:   testutil.NewInvocationBuilder().Event(core.RenderEvent).Host(page.Host).Build(),
			field: "WaitOn",
		},
		{
			name:  "missing render context and subscriber",
			inv:   testutil.NewInvocationBuilder().Event(core.RenderEvent).Host(page.Host).WaitOn().Doc(page.Doc).Build(),
			field: "RenderCtx",
		},
		{
			name: "missing doc",
			inv: testutil.NewInvocationBuilder().Event(core.RenderEvent).Host(page.Host).WaitOn().
				RenderCtx(&testutil.RenderContext{}).Build(),
			field: "Doc",
		},
		{
			name: "missing subscriber",
			inv: testutil.NewInvocationBuilder().Event(core.RenderEvent).Host(page.Host).WaitOn().
				RenderCtx(&testutil.RenderContext{}).Doc(page.Doc).Build(),
			field: "Subscriber",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.AsRenderInvocation(tt.inv)
			require.Error(t, err)

			var mf *core.MissingFieldError
			require.True(t, errors.As(err, &mf))
			assert.Equal(t, tt.field, mf.Field)
		})
	}
}

func TestAsRenderInvocation_NullSubscriberIsPresent(t *testing.T) {
	page := testutil.NewPage()
	inv := testutil.NewInvocationBuilder().Doc(page.Doc).Host(page.Host).Render().Build()
	require.Equal(t, core.SubscriberNone, inv.Subscriber.State())

	rinv, err := core.AsRenderInvocation(inv)
	require.NoError(t, err)
	assert.Same(t, inv, rinv.Invocation)
}
