package dispatch

import (
	"context"
	"sync"
)

// Scheduler runs jobs on some execution context.
type Scheduler interface {
	Schedule(ctx context.Context, job func(ctx context.Context))
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(ctx context.Context, job func(ctx context.Context))

func (f SchedulerFunc) Schedule(ctx context.Context, job func(ctx context.Context)) {
	f(ctx, job)
}

// Immediate runs every job inline on the calling goroutine.
var Immediate Scheduler = SchedulerFunc(func(ctx context.Context, job func(ctx context.Context)) {
	job(ctx)
})

type queueKey struct{}

type queuedJob struct {
	ctx context.Context
	run func(ctx context.Context)
}

// Queue is a serial execution context: jobs run one at a time, in submission
// order, on a single goroutine. Jobs see a context marked as running on the queue.
type Queue struct {
	name   string
	mu     sync.Mutex
	cond   *sync.Cond
	jobs   []queuedJob
	closed bool
	done   chan struct{}
}

// NewQueue starts a queue goroutine. Call Close to stop it.
func NewQueue(name string) *Queue {
	q := &Queue{name: name, done: make(chan struct{})}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

func (q *Queue) Name() string {
	return q.name
}

// Schedule appends job to the queue. Jobs scheduled after Close are dropped.
func (q *Queue) Schedule(ctx context.Context, job func(ctx context.Context)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.jobs = append(q.jobs, queuedJob{ctx: ctx, run: job})
	q.cond.Signal()
}

// IsCurrent reports whether ctx belongs to a job running on q.
func (q *Queue) IsCurrent(ctx context.Context) bool {
	current, _ := ctx.Value(queueKey{}).(*Queue)
	return current == q
}

// Close stops accepting jobs, runs the ones already queued and waits for the
// queue goroutine to exit. It must not be called from a job on q.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.jobs) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.jobs) == 0 {
			q.mu.Unlock()
			return
		}
		job := q.jobs[0]
		q.jobs[0] = queuedJob{}
		q.jobs = q.jobs[1:]
		q.mu.Unlock()

		job.run(context.WithValue(job.ctx, queueKey{}, q))
	}
}

// Detach returns ctx without any queue marker, for work handed to another goroutine.
func Detach(ctx context.Context) context.Context {
	if _, ok := ctx.Value(queueKey{}).(*Queue); !ok {
		return ctx
	}
	return context.WithValue(ctx, queueKey{}, (*Queue)(nil))
}

type immediateWhenOnQueue struct {
	queue *Queue
}

// ImmediateWhenOnQueue runs jobs inline when the caller is already on q and
// schedules them onto q otherwise.
func ImmediateWhenOnQueue(q *Queue) Scheduler {
	return immediateWhenOnQueue{queue: q}
}

func (s immediateWhenOnQueue) Schedule(ctx context.Context, job func(ctx context.Context)) {
	if s.queue.IsCurrent(ctx) {
		job(ctx)
		return
	}
	s.queue.Schedule(ctx, job)
}
