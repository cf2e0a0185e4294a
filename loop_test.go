//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/obinnaokechukwu/uigo/internal/fakeui"
	"github.com/obinnaokechukwu/uigo/internal/foreign"
)

// drain steps the loop until nothing is queued.
func drain(loop *EventLoop, rt *fakeui.Runtime) {
	for rt.Pending() > 0 {
		loop.Step(false)
	}
}

func TestQueueRunsInFIFOOrder(t *testing.T) {
	u, rt := newTestUI(t)
	loop := u.EventLoop()

	var order []string
	u.Queue(func() { order = append(order, "A") })
	u.Queue(func() { order = append(order, "B") })
	u.Queue(func() { order = append(order, "C") })

	if len(order) != 0 {
		t.Fatal("queued callbacks ran before the loop stepped")
	}
	drain(loop, rt)

	if diff := cmp.Diff([]string{"A", "B", "C"}, order); diff != "" {
		t.Errorf("execution order mismatch (-want +got):\n%s", diff)
	}
	if n := CallbackCount(); n != 0 {
		t.Errorf("CallbackCount = %d after queued callbacks ran, want 0", n)
	}
}

func TestQueueFromGoroutines(t *testing.T) {
	u, rt := newTestUI(t)
	loop := u.EventLoop()

	const producers, perProducer = 8, 50
	var wg sync.WaitGroup
	wg.Add(producers)
	seen := make([][]int, producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				i := i
				u.Queue(func() { seen[p] = append(seen[p], i) })
			}
		}(p)
	}
	wg.Wait()
	drain(loop, rt)

	want := make([]int, perProducer)
	for i := range want {
		want[i] = i
	}
	for p := 0; p < producers; p++ {
		if diff := cmp.Diff(want, seen[p]); diff != "" {
			t.Errorf("producer %d order mismatch (-want +got):\n%s", p, diff)
		}
	}
}

func TestQueueAfterCloseIsDropped(t *testing.T) {
	u, rt := newTestUI(t)
	u.Close()

	u.Queue(func() { t.Error("callback ran on a closed UI") })
	if rt.Pending() != 0 {
		t.Error("callback reached the runtime")
	}
	if CallbackCount() != 0 {
		t.Error("callback was registered")
	}
}

// gatedRuntime holds the first QueueMain call until release is closed and
// records whether it reached the runtime after Uninit.
type gatedRuntime struct {
	*fakeui.Runtime
	entered chan struct{}
	release chan struct{}
	late    atomic.Bool
}

func (g *gatedRuntime) QueueMain(t *foreign.Trampoline, data uintptr) {
	close(g.entered)
	<-g.release
	if !g.Runtime.Initialized() {
		g.late.Store(true)
	}
	g.Runtime.QueueMain(t, data)
}

func TestQueueConcurrentWithClose(t *testing.T) {
	rt := &gatedRuntime{
		Runtime: fakeui.New(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	u, err := Init(withRuntime(rt))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	queued := make(chan struct{})
	go func() {
		u.Queue(func() { t.Error("callback ran after Close") })
		close(queued)
	}()
	<-rt.entered

	closed := make(chan struct{})
	go func() {
		u.Close()
		close(closed)
	}()
	select {
	case <-closed:
		t.Error("Close returned while a callback was being handed to the runtime")
	case <-time.After(20 * time.Millisecond):
	}

	close(rt.release)
	<-queued
	<-closed

	if rt.late.Load() {
		t.Error("callback reached the runtime after Uninit")
	}
	if n := CallbackCount(); n != 0 {
		t.Errorf("CallbackCount after Close = %d, want 0", n)
	}
	if rt.Pending() != 0 {
		t.Errorf("runtime still holds %d callbacks", rt.Pending())
	}
}

func TestStepWaitBlocksUntilQueued(t *testing.T) {
	u, _ := newTestUI(t)
	loop := u.EventLoop()

	ran := false
	go func() {
		time.Sleep(10 * time.Millisecond)
		u.Queue(func() { ran = true })
	}()

	if !loop.Step(true) {
		t.Error("Step reported quit")
	}
	if !ran {
		t.Error("Step(true) returned before the queued callback ran")
	}
}

func TestOnTick(t *testing.T) {
	u, _ := newTestUI(t)
	loop := u.EventLoop()

	ticks := 0
	loop.OnTick(func() { ticks++ })
	loop.NextTick()
	loop.NextTick()

	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}
}

func TestRunUntilQuitFromHandler(t *testing.T) {
	u, _ := newTestUI(t)
	loop := u.EventLoop()

	steps := 0
	loop.OnTick(func() { steps++ })
	u.Queue(func() {})
	u.Queue(u.Quit)
	loop.Run()

	if steps != 2 {
		t.Errorf("Run took %d steps, want 2", steps)
	}
	if loop.NextEventTick() {
		t.Error("loop continues after Quit")
	}
}

func TestMainReturnsAfterQuit(t *testing.T) {
	u, _ := newTestUI(t)
	u.Queue(u.Quit)

	done := make(chan struct{})
	go func() {
		defer close(done)
		u.Main()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Main did not return after Quit")
	}
}

func TestRunDelay(t *testing.T) {
	u, _ := newTestUI(t)
	loop := u.EventLoop()

	ticks := 0
	loop.OnTick(func() {
		ticks++
		if ticks == 3 {
			u.Quit()
		}
	})
	loop.RunDelay(time.Millisecond)

	// the step that observes the quit still ticks
	if ticks != 4 {
		t.Errorf("ticks = %d, want 4", ticks)
	}
}

func TestRunContextCancel(t *testing.T) {
	u, _ := newTestUI(t)
	loop := u.EventLoop()

	ctx, cancel := context.WithCancel(context.Background())
	u.Queue(cancel)

	err := loop.RunContext(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunContext = %v, want context.Canceled", err)
	}
}

func TestRunContextQuit(t *testing.T) {
	u, _ := newTestUI(t)
	loop := u.EventLoop()

	u.Queue(u.Quit)
	if err := loop.RunContext(context.Background()); err != nil {
		t.Errorf("RunContext = %v, want nil", err)
	}
}

func TestStepReentrantPanics(t *testing.T) {
	u, _ := newTestUI(t)
	loop := u.EventLoop()

	u.Queue(func() { loop.Step(false) })
	mustPanic(t, "re-entrant Step", func() { loop.Step(false) })

	// the loop is usable again afterwards
	loop.Step(false)
}

func TestOnShouldQuit(t *testing.T) {
	u, rt := newTestUI(t)
	loop := u.EventLoop()

	allow := false
	asked := 0
	u.OnShouldQuit(func() bool {
		asked++
		return allow
	})

	if rt.ShouldQuit() {
		t.Error("quit although the handler refused")
	}
	if !loop.NextTick() {
		t.Error("loop stopped although the handler refused")
	}

	allow = true
	if !rt.ShouldQuit() {
		t.Error("handler allowed quitting but the runtime did not quit")
	}
	if loop.NextTick() {
		t.Error("loop continues after quit was allowed")
	}
	if asked != 2 {
		t.Errorf("handler asked %d times, want 2", asked)
	}
}
