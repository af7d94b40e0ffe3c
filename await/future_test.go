package await

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_SettleOnce(t *testing.T) {
	f := NewFuture()
	assert.False(t, f.Settled())
	assert.NoError(t, f.Err())

	boom := errors.New("boom")
	f.Reject(boom)
	f.Resolve()

	assert.True(t, f.Settled())
	assert.ErrorIs(t, f.Err(), boom)
}

func TestFuture_RejectNil(t *testing.T) {
	f := Rejected(nil)
	assert.ErrorIs(t, f.Err(), ErrRejected)
}

func TestFuture_WaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFuture().Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGo_RecoversPanic(t *testing.T) {
	f := Go(func() error { panic("kaboom") })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := f.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestAllSettled_DoesNotShortCircuit(t *testing.T) {
	failed := Rejected(errors.New("first failed"))
	pending := NewFuture()

	all := AllSettled([]Awaitable{failed, pending, nil})

	select {
	case <-all.Done():
		t.Fatal("AllSettled resolved before every entry settled")
	case <-time.After(20 * time.Millisecond):
	}

	pending.Resolve()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, all.Wait(ctx), "AllSettled never rejects")
}

func TestAllSettled_Empty(t *testing.T) {
	assert.True(t, AllSettled(nil).Settled())
}

func TestThen_RunsAfterFailure(t *testing.T) {
	ran := make(chan struct{})
	f := Then(Rejected(errors.New("upstream")), func() error {
		close(ran)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, f.Wait(ctx))
	select {
	case <-ran:
	default:
		t.Fatal("continuation did not run")
	}
}

func TestThen_PropagatesContinuationError(t *testing.T) {
	boom := errors.New("boom")
	f := Then(Resolved(), func() error { return boom })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.ErrorIs(t, f.Wait(ctx), boom)
}
