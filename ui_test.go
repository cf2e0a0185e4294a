//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"bytes"
	"errors"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/obinnaokechukwu/uigo/internal/fakeui"
	"github.com/obinnaokechukwu/uigo/internal/osthread"
)

// newTestUI initializes a UI backed by a fake runtime and closes it when the
// test ends, unless the test closed it already.
func newTestUI(t *testing.T, opts ...Option) (*UI, *fakeui.Runtime) {
	t.Helper()
	rt := fakeui.New()
	u, err := Init(append([]Option{withRuntime(rt)}, opts...)...)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() {
		if active.Load() == u {
			u.Close()
		}
	})
	return u, rt
}

// mustPanic runs fn and fails the test if it does not panic.
func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", what)
		}
	}()
	fn()
}

func TestInitSingleInstance(t *testing.T) {
	u, rt := newTestUI(t)

	if !IsInitialized() {
		t.Error("IsInitialized returned false after Init")
	}

	second, err := Init(withRuntime(fakeui.New()))
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Init error = %v, want ErrAlreadyInitialized", err)
	}
	if second != nil {
		t.Error("second Init returned a UI")
	}

	u.Close()
	if IsInitialized() {
		t.Error("IsInitialized returned true after Close")
	}
	if rt.Uninits() != 1 {
		t.Errorf("Uninit called %d times, want 1", rt.Uninits())
	}

	again, _ := newTestUI(t)
	if again == u {
		t.Error("re-initialization returned the closed UI")
	}
}

func TestInitConcurrent(t *testing.T) {
	const n = 16

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []*UI
		losers  int
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			u, err := Init(withRuntime(fakeui.New()))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, u)
			case errors.Is(err, ErrAlreadyInitialized):
				losers++
			default:
				t.Errorf("unexpected Init error: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(winners) != 1 || losers != n-1 {
		t.Fatalf("got %d successful and %d rejected Init calls, want 1 and %d", len(winners), losers, n-1)
	}
	winners[0].Close()
}

func TestInitFailureForwardsMessage(t *testing.T) {
	rt := fakeui.New()
	rt.FailInit("cannot open display :0")

	u, err := Init(withRuntime(rt))
	if u != nil {
		t.Fatal("Init returned a UI on failure")
	}

	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("Init error = %v, want *InitError", err)
	}
	if initErr.Message != "cannot open display :0" {
		t.Errorf("Message = %q", initErr.Message)
	}
	if !strings.Contains(err.Error(), "cannot open display :0") {
		t.Errorf("Error() = %q does not include the libui message", err.Error())
	}
	if IsInitialized() {
		t.Error("failed Init left the UI marked initialized")
	}

	rt.FailInit("")
	newTestUI(t)
}

func TestCloseInactiveUIPanics(t *testing.T) {
	u, _ := newTestUI(t)
	u.Close()

	mustPanic(t, "second Close", u.Close)

	if IsInitialized() {
		t.Error("panicking Close changed the initialized state")
	}
}

func TestCloseReleasesCallbacks(t *testing.T) {
	u, rt := newTestUI(t)

	b := u.NewButton("ok")
	b.OnClicked(func(Button) {})
	u.Queue(func() {})
	if CallbackCount() == 0 {
		t.Fatal("no callbacks registered")
	}

	u.Close()
	if n := CallbackCount(); n != 0 {
		t.Errorf("CallbackCount after Close = %d, want 0", n)
	}
	if rt.Initialized() {
		t.Error("runtime still initialized after Close")
	}
}

func TestUIOperationWithoutInitPanics(t *testing.T) {
	h := FromRaw(0x1234)

	defer func() {
		if r := recover(); r != ErrNotInitialized {
			t.Errorf("recovered %v, want ErrNotInitialized", r)
		}
	}()
	h.Show()
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { SetLogger(nil) })

	u, _ := newTestUI(t, WithLogger(l))
	u.NewWindow("main", 100, 100, NoMenubar)
	u.Close()

	out := buf.String()
	for _, want := range []string{"uigo: initialized", "uigo: destroyed remaining windows", "uigo: uninitialized"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestThreadCheck(t *testing.T) {
	if !osthread.Supported() {
		t.Skip("thread ids not available on " + runtime.GOOS)
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	u, _ := newTestUI(t, WithThreadCheck(true))
	defer u.Close()
	loop := u.EventLoop()

	recovered := make(chan any)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer func() { recovered <- recover() }()
		loop.Step(false)
	}()
	if r := <-recovered; r == nil {
		t.Error("Step from another OS thread did not panic")
	}

	// Queue is the one operation allowed off the UI thread
	done := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		u.Queue(func() {})
		close(done)
	}()
	<-done

	loop.Step(false)
}
