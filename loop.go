//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"context"
	"time"

	"github.com/obinnaokechukwu/uigo/internal/foreign"
	"github.com/obinnaokechukwu/uigo/internal/handles"
)

// EventLoop gives step-by-step control over libui's event loop, for
// integrating other event sources or running code on every tick.
type EventLoop struct {
	u        *UI
	tick     func()
	stepping bool
}

// EventLoop prepares libui for stepping and returns the loop.
func (u *UI) EventLoop() *EventLoop {
	u.checkThread("EventLoop")
	u.rt.MainSteps()
	return &EventLoop{u: u}
}

// Main hands the calling thread to libui until Quit is called.
func (u *UI) Main() {
	u.EventLoop().Run()
}

// OnTick sets a function to run after every step of the loop.
func (l *EventLoop) OnTick(fn func()) {
	l.tick = fn
}

// Step lets libui process at most one event. With wait set it blocks until
// there is an event to process. The OnTick function runs afterwards.
//
// Step returns false once the application should quit.
//
// Events run on the calling thread; a panic in an event handler, queued
// callback or task propagates out of Step. Calling Step from inside an event
// handler panics.
func (l *EventLoop) Step(wait bool) bool {
	l.u.checkThread("Step")
	if l.stepping {
		panic("uigo: EventLoop.Step called re-entrantly")
	}
	l.stepping = true
	defer func() { l.stepping = false }()

	more := l.u.rt.MainStep(wait)
	if l.tick != nil {
		l.tick()
	}
	return more
}

// NextTick runs one step without waiting for an event.
func (l *EventLoop) NextTick() bool {
	return l.Step(false)
}

// NextEventTick waits for the next event and processes it.
func (l *EventLoop) NextEventTick() bool {
	return l.Step(true)
}

// Run steps the loop until Quit is called.
func (l *EventLoop) Run() {
	for l.Step(true) {
	}
}

// RunDelay polls the loop without blocking, sleeping delay between ticks so
// the OnTick function runs roughly every delay, until Quit is called.
func (l *EventLoop) RunDelay(delay time.Duration) {
	for l.Step(false) {
		time.Sleep(delay)
	}
}

// RunContext runs the loop until Quit is called or ctx is done. In the latter
// case it quits the loop and returns ctx.Err().
func (l *EventLoop) RunContext(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		l.u.Queue(l.u.Quit)
	})
	defer stop()

	l.Run()
	return ctx.Err()
}

// Queue schedules fn to run on the UI thread during a later step of the event
// loop and returns immediately. Callbacks run in the order they were queued.
//
// Queue is safe to call from any goroutine. Callbacks queued after the UI was
// closed are dropped.
func (u *UI) Queue(fn func()) {
	u.queue(dataFunc(fn))
}

// queue hands a one-shot box (a dataFunc or a taskPoll) to libui and reports
// whether it did. Close holds queueMu exclusively while it tears libui down,
// so a box is either queued on the live runtime or not registered at all.
func (u *UI) queue(box any) bool {
	queueMu.RLock()
	defer queueMu.RUnlock()

	if active.Load() != u {
		log().Debug("uigo: dropped callback queued on a closed UI")
		return false
	}
	id := handles.Register(box)
	u.rt.QueueMain(queueTrampoline, id)
	return true
}

// OnShouldQuit sets a function libui calls when the platform asks the
// application to quit, for example from the macOS application menu. If fn
// returns true the event loop stops.
func (u *UI) OnShouldQuit(fn func() bool) {
	u.checkThread("OnShouldQuit")
	bind(0, slotShouldQuit, dataIntFunc(fn), dataIntTrampoline,
		func(_ uintptr, t *foreign.Trampoline, data uintptr) {
			u.rt.OnShouldQuit(t, data)
		})
}
