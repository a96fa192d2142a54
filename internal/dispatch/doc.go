// Package dispatch adapts blocking or callback-style operations into cancelable
// single-result tasks and controls on which execution context results are delivered.
//
// A Task delivers at most one Result. Cancelling a task cancels the context of the
// running operation and suppresses any delivery that has not happened yet. Results
// are handed to a Scheduler; ImmediateWhenOnQueue runs the delivery inline when the
// completing caller already runs on the target Queue, and hops onto the Queue otherwise.
package dispatch
