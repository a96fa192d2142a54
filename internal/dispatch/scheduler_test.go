package dispatch_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"essentialfeed/backend/internal/dispatch"

	"github.com/stretchr/testify/require"
)

func TestQueue_RunsJobsSeriallyInOrder(t *testing.T) {
	q := dispatch.NewQueue("main")

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 0; i < 20; i++ {
		q.Schedule(context.Background(), func(ctx context.Context) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	q.Close()

	require.Len(t, order, 20)
	for i, v := range order {
		require.Equal(t, i, v)
	}
}

func TestQueue_MarksJobContext(t *testing.T) {
	q := dispatch.NewQueue("main")
	other := dispatch.NewQueue("other")
	defer other.Close()

	result := make(chan [2]bool, 1)
	q.Schedule(context.Background(), func(ctx context.Context) {
		result <- [2]bool{q.IsCurrent(ctx), other.IsCurrent(ctx)}
	})
	q.Close()

	got := <-result
	require.True(t, got[0])
	require.False(t, got[1])
	require.False(t, q.IsCurrent(context.Background()))
}

func TestQueue_DropsJobsAfterClose(t *testing.T) {
	q := dispatch.NewQueue("main")
	q.Close()

	ran := make(chan struct{}, 1)
	q.Schedule(context.Background(), func(context.Context) { ran <- struct{}{} })

	select {
	case <-ran:
		t.Fatal("job ran after close")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestImmediateWhenOnQueue_RunsInlineWhenAlreadyOnQueue(t *testing.T) {
	q := dispatch.NewQueue("main")
	sched := dispatch.ImmediateWhenOnQueue(q)

	inline := make(chan bool, 1)
	q.Schedule(context.Background(), func(ctx context.Context) {
		ran := false
		sched.Schedule(ctx, func(context.Context) { ran = true })
		inline <- ran
	})
	q.Close()

	require.True(t, <-inline)
}

func TestImmediateWhenOnQueue_HopsOntoQueueFromElsewhere(t *testing.T) {
	q := dispatch.NewQueue("main")
	sched := dispatch.ImmediateWhenOnQueue(q)

	onQueue := make(chan bool, 1)
	sched.Schedule(context.Background(), func(ctx context.Context) {
		onQueue <- q.IsCurrent(ctx)
	})

	select {
	case got := <-onQueue:
		require.True(t, got)
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
	q.Close()
}

func TestDetach_ClearsQueueMarker(t *testing.T) {
	q := dispatch.NewQueue("main")

	detached := make(chan bool, 1)
	q.Schedule(context.Background(), func(ctx context.Context) {
		detached <- q.IsCurrent(dispatch.Detach(ctx))
	})
	q.Close()

	require.False(t, <-detached)
}
