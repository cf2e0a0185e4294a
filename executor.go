//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"sync"
	"sync/atomic"
)

// Future is a unit of work driven on the UI thread by Spawn.
//
// Poll advances the work as far as it can without blocking and reports
// whether it is finished. If it is not, it must arrange for w (or a clone of
// it) to be woken once progress is possible; nothing polls it otherwise.
type Future interface {
	Poll(w *Waker) bool
}

// FutureFunc adapts a function to the Future interface.
type FutureFunc func(w *Waker) bool

// Poll calls f(w).
func (f FutureFunc) Poll(w *Waker) bool {
	return f(w)
}

// task is the shared state of one spawned Future. Every queued poll and
// every owned Waker holds one reference; the task is freed when the count
// reaches zero.
type task struct {
	u       *UI
	fut     Future
	refs    atomic.Int64
	polling atomic.Bool
	done    atomic.Bool
}

// Spawn runs f on the UI thread. The first poll happens on a later step of
// the event loop; after that f is polled again each time its Waker is woken.
//
// Polls only ever happen through Queue, so they run one at a time on the UI
// thread and f needs no locking of its own. Spawn is safe to call from any
// goroutine. A panic in Poll propagates out of the EventLoop step that ran it.
//
// There is no cancellation: a task that is never woken again is freed once
// all of its Wakers are dropped.
func (u *UI) Spawn(f Future) {
	t := &task{u: u, fut: f}
	t.refs.Store(1)
	u.tasks.Add(1)
	t.schedule()
}

// LiveTasks returns the number of spawned tasks that have not been freed.
func (u *UI) LiveTasks() int {
	return int(u.tasks.Load())
}

// taskPoll is the queued box of one pending poll. It owns one reference to
// the task, which Close gives back if the poll never runs.
type taskPoll struct {
	t *task
}

// schedule queues a poll that takes over one reference.
func (t *task) schedule() {
	if !t.u.queue(taskPoll{t}) {
		t.release()
	}
}

func (t *task) poll() {
	defer t.release()

	if t.done.Load() {
		return
	}
	if !t.polling.CompareAndSwap(false, true) {
		panic("uigo: task polled while another poll is in flight")
	}
	defer t.polling.Store(false)

	if t.fut.Poll(&Waker{t: t, borrowed: true}) {
		t.done.Store(true)
		t.fut = nil
	}
}

func (t *task) release() {
	switch n := t.refs.Add(-1); {
	case n == 0:
		t.fut = nil
		t.u.tasks.Add(-1)
	case n < 0:
		panic("uigo: task reference count went negative")
	}
}

// wake queues a poll using a reference the caller already holds.
func (t *task) wake() {
	if t.done.Load() {
		t.release()
		return
	}
	t.schedule()
}

// Waker wakes a spawned task so it is polled again.
//
// The Waker passed to Poll is only valid during that call. To wake the task
// later, for example from another goroutine, Clone it. A cloned Waker holds a
// reference to the task and must be consumed by exactly one Wake or Drop.
// All methods are safe to call from any goroutine.
type Waker struct {
	t        *task
	borrowed bool
	used     atomic.Bool
}

// Clone returns a new owned Waker for the same task.
func (w *Waker) Clone() *Waker {
	w.t.refs.Add(1)
	return &Waker{t: w.t}
}

// Wake queues a poll of the task and consumes w. On the Waker passed to Poll
// it behaves like WakeByRef.
func (w *Waker) Wake() {
	if w.borrowed {
		w.WakeByRef()
		return
	}
	w.consume("Wake")
	w.t.wake()
}

// WakeByRef queues a poll of the task without consuming w.
func (w *Waker) WakeByRef() {
	w.t.refs.Add(1)
	w.t.wake()
}

// Drop releases w without waking the task. It is a no-op on the Waker
// passed to Poll.
func (w *Waker) Drop() {
	if w.borrowed {
		return
	}
	w.consume("Drop")
	w.t.release()
}

func (w *Waker) consume(op string) {
	if !w.used.CompareAndSwap(false, true) {
		panic("uigo: Waker." + op + " on a Waker that was already consumed")
	}
}

// WillWake reports whether w and other wake the same task.
func (w *Waker) WillWake(other *Waker) bool {
	return other != nil && w.t == other.t
}

// ChanFuture returns a Future that completes when ch delivers a value or is
// closed, calling fn on the UI thread with the result of the receive.
//
// While the channel is empty a helper goroutine waits on it, so the UI
// thread never blocks. Use it to hand results of background work back to
// the UI:
//
//	ch := make(chan string, 1)
//	go func() { ch <- fetch() }()
//	u.Spawn(uigo.ChanFuture(ch, func(s string, _ bool) { button.SetText(s) }))
func ChanFuture[T any](ch <-chan T, fn func(v T, ok bool)) Future {
	return &chanFuture[T]{ch: ch, fn: fn}
}

type received[T any] struct {
	v  T
	ok bool
}

type chanFuture[T any] struct {
	ch    <-chan T
	fn    func(T, bool)
	once  sync.Once
	relay chan received[T]
}

func (f *chanFuture[T]) Poll(w *Waker) bool {
	if f.relay == nil {
		select {
		case v, ok := <-f.ch:
			f.fn(v, ok)
			return true
		default:
		}
	}

	f.once.Do(func() {
		f.relay = make(chan received[T], 1)
		wk := w.Clone()
		go func() {
			v, ok := <-f.ch
			f.relay <- received[T]{v, ok}
			wk.Wake()
		}()
	})

	select {
	case r := <-f.relay:
		f.fn(r.v, r.ok)
		return true
	default:
		return false
	}
}
