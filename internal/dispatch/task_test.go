package dispatch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"essentialfeed/backend/internal/dispatch"

	"github.com/stretchr/testify/require"
)

// capturedOperation records the completion callback so tests decide when it fires.
type capturedOperation[T any] struct {
	ctx      context.Context
	complete func(ctx context.Context, value T, err error)
	started  int
}

func (c *capturedOperation[T]) op() dispatch.AsyncOperation[T] {
	return func(ctx context.Context, complete func(ctx context.Context, value T, err error)) {
		c.started++
		c.ctx = ctx
		c.complete = complete
	}
}

func TestStart_DeliversSynchronousResultInline(t *testing.T) {
	op := dispatch.AsyncOperation[string](func(ctx context.Context, complete func(context.Context, string, error)) {
		complete(ctx, "value", nil)
	})

	var got []dispatch.Result[string]
	task := dispatch.Start(context.Background(), op, dispatch.Immediate, func(r dispatch.Result[string]) {
		got = append(got, r)
	})

	require.Equal(t, []dispatch.Result[string]{{Value: "value"}}, got)
	require.Equal(t, dispatch.StateDelivered, task.State())
}

func TestStart_DeliversFailure(t *testing.T) {
	boom := errors.New("boom")
	captured := &capturedOperation[int]{}

	var got []dispatch.Result[int]
	task := dispatch.Start(context.Background(), captured.op(), dispatch.Immediate, func(r dispatch.Result[int]) {
		got = append(got, r)
	})
	require.Equal(t, dispatch.StateRunning, task.State())
	require.Empty(t, got)

	captured.complete(captured.ctx, 0, boom)

	require.Len(t, got, 1)
	require.ErrorIs(t, got[0].Err, boom)
}

func TestStart_DeliversAtMostOnce(t *testing.T) {
	captured := &capturedOperation[int]{}

	deliveries := 0
	dispatch.Start(context.Background(), captured.op(), dispatch.Immediate, func(dispatch.Result[int]) {
		deliveries++
	})

	captured.complete(captured.ctx, 1, nil)
	captured.complete(captured.ctx, 2, nil)
	captured.complete(captured.ctx, 0, errors.New("late"))

	require.Equal(t, 1, deliveries)
}

func TestTask_CancelSuppressesDeliveryAndCancelsOperation(t *testing.T) {
	captured := &capturedOperation[int]{}

	delivered := false
	task := dispatch.Start(context.Background(), captured.op(), dispatch.Immediate, func(dispatch.Result[int]) {
		delivered = true
	})

	task.Cancel()
	require.ErrorIs(t, captured.ctx.Err(), context.Canceled)

	captured.complete(captured.ctx, 1, nil)

	require.False(t, delivered)
	require.Equal(t, dispatch.StateCancelled, task.State())
}

func TestTask_CancelBetweenCompletionAndDeliverySuppressesResult(t *testing.T) {
	captured := &capturedOperation[int]{}

	var pending func(context.Context)
	deferred := dispatch.SchedulerFunc(func(ctx context.Context, job func(context.Context)) {
		pending = job
	})

	delivered := false
	task := dispatch.Start(context.Background(), captured.op(), deferred, func(dispatch.Result[int]) {
		delivered = true
	})

	captured.complete(captured.ctx, 1, nil)
	require.NotNil(t, pending)

	task.Cancel()
	pending(context.Background())

	require.False(t, delivered)
	require.Equal(t, dispatch.StateCancelled, task.State())
}

func TestTask_CancelAfterDeliveryIsNoop(t *testing.T) {
	op := dispatch.AsyncOperation[int](func(ctx context.Context, complete func(context.Context, int, error)) {
		complete(ctx, 7, nil)
	})

	task := dispatch.Start(context.Background(), op, dispatch.Immediate, func(dispatch.Result[int]) {})
	task.Cancel()

	require.Equal(t, dispatch.StateDelivered, task.State())
}

func TestStart_SynchronousCompletionOnQueueIsDeliveredInline(t *testing.T) {
	q := dispatch.NewQueue("main")
	sched := dispatch.ImmediateWhenOnQueue(q)

	op := dispatch.AsyncOperation[int](func(ctx context.Context, complete func(context.Context, int, error)) {
		complete(ctx, 42, nil)
	})

	inline := make(chan bool, 1)
	q.Schedule(context.Background(), func(ctx context.Context) {
		delivered := false
		dispatch.Start(ctx, op, sched, func(dispatch.Result[int]) { delivered = true })
		inline <- delivered
	})
	q.Close()

	require.True(t, <-inline)
}

func TestStart_BackgroundCompletionHopsOntoQueue(t *testing.T) {
	q := dispatch.NewQueue("main")
	defer q.Close()
	sched := dispatch.ImmediateWhenOnQueue(q)

	var deliveredOnQueue atomic.Bool
	done := make(chan struct{})
	op := dispatch.Go(func(ctx context.Context) (int, error) {
		return 1, nil
	})

	dispatch.Start(context.Background(), op, dispatch.SchedulerFunc(func(ctx context.Context, job func(context.Context)) {
		sched.Schedule(ctx, func(ctx context.Context) {
			deliveredOnQueue.Store(q.IsCurrent(ctx))
			job(ctx)
		})
	}), func(dispatch.Result[int]) { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("result never delivered")
	}
	require.True(t, deliveredOnQueue.Load())
}

func TestAwait_ReturnsDeliveredValue(t *testing.T) {
	q := dispatch.NewQueue("main")
	defer q.Close()

	bridge := dispatch.NewBridge(dispatch.Go(func(ctx context.Context) ([]byte, error) {
		return []byte("data"), nil
	}), dispatch.ImmediateWhenOnQueue(q))

	data, err := dispatch.Await(context.Background(), bridge)
	require.NoError(t, err)
	require.Equal(t, []byte("data"), data)
}

func TestAwait_CancelledContextCancelsOperation(t *testing.T) {
	started := make(chan struct{})
	opErr := make(chan error, 1)
	bridge := dispatch.NewBridge(dispatch.Go(func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		opErr <- ctx.Err()
		return 0, ctx.Err()
	}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := dispatch.Await(ctx, bridge)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, <-opErr, context.Canceled)
}

func TestBridge_EachSubscriptionRunsFreshOperation(t *testing.T) {
	captured := &capturedOperation[int]{}
	bridge := dispatch.NewBridge(captured.op(), dispatch.Immediate)

	first := bridge.Subscribe(context.Background(), func(dispatch.Result[int]) {})
	second := bridge.Subscribe(context.Background(), func(dispatch.Result[int]) {})
	first.Cancel()

	require.Equal(t, 2, captured.started)
	require.Equal(t, dispatch.StateCancelled, first.State())
	require.Equal(t, dispatch.StateRunning, second.State())
}
