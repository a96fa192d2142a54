package dispatch

import (
	"context"
	"sync/atomic"
)

// State is the lifecycle of a Task.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateDelivered
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDelivered:
		return "delivered"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the terminal outcome of a task.
type Result[T any] struct {
	Value T
	Err   error
}

// AsyncOperation starts work and reports its outcome by calling complete.
// complete may be called inline or from another goroutine; extra calls are ignored.
type AsyncOperation[T any] func(ctx context.Context, complete func(ctx context.Context, value T, err error))

// Go adapts a blocking operation into an AsyncOperation running on its own goroutine.
func Go[T any](op func(ctx context.Context) (T, error)) AsyncOperation[T] {
	return func(ctx context.Context, complete func(ctx context.Context, value T, err error)) {
		ctx = Detach(ctx)
		go func() {
			value, err := op(ctx)
			complete(ctx, value, err)
		}()
	}
}

// Task is the cancellation handle of one running operation.
type Task struct {
	state  atomic.Int32
	cancel context.CancelFunc
}

func (t *Task) State() State {
	return State(t.state.Load())
}

// Cancel stops the operation and suppresses delivery. It has no effect once a
// result was delivered.
func (t *Task) Cancel() {
	if t.state.CompareAndSwap(int32(StateRunning), int32(StateCancelled)) ||
		t.state.CompareAndSwap(int32(StateIdle), int32(StateCancelled)) {
		t.cancel()
	}
}

// Start runs op and hands its result to onResult through deliver, at most once.
func Start[T any](ctx context.Context, op AsyncOperation[T], deliver Scheduler, onResult func(Result[T])) *Task {
	opCtx, cancel := context.WithCancel(ctx)
	task := &Task{cancel: cancel}
	if !task.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		cancel()
		return task
	}

	var completed atomic.Bool
	op(opCtx, func(completeCtx context.Context, value T, err error) {
		if !completed.CompareAndSwap(false, true) || task.State() != StateRunning {
			return
		}
		deliver.Schedule(completeCtx, func(context.Context) {
			if task.state.CompareAndSwap(int32(StateRunning), int32(StateDelivered)) {
				cancel()
				onResult(Result[T]{Value: value, Err: err})
			}
		})
	})
	return task
}

// Bridge is a reusable description of an operation and its delivery context.
// Every Subscribe runs a fresh operation.
type Bridge[T any] struct {
	op      AsyncOperation[T]
	deliver Scheduler
}

func NewBridge[T any](op AsyncOperation[T], deliver Scheduler) *Bridge[T] {
	if deliver == nil {
		deliver = Immediate
	}
	return &Bridge[T]{op: op, deliver: deliver}
}

// Subscribe starts the operation and delivers its single result to onResult.
func (b *Bridge[T]) Subscribe(ctx context.Context, onResult func(Result[T])) *Task {
	return Start(ctx, b.op, b.deliver, onResult)
}

// Await subscribes and blocks until the result is delivered or ctx is done.
// It must not be called from a job on the bridge's delivery queue.
func Await[T any](ctx context.Context, b *Bridge[T]) (T, error) {
	results := make(chan Result[T], 1)
	task := b.Subscribe(ctx, func(r Result[T]) {
		results <- r
	})

	select {
	case r := <-results:
		return r.Value, r.Err
	case <-ctx.Done():
		task.Cancel()
		// A delivery may have won the race with the cancel.
		select {
		case r := <-results:
			return r.Value, r.Err
		default:
		}
		var zero T
		return zero, ctx.Err()
	}
}
