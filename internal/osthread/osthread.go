// Package osthread reports the identity of the calling OS thread.
//
// The UI toolkits behind libui require every UI call to happen on the thread
// that initialized them. Goroutines are not threads, so affinity checks need
// the kernel's thread id rather than anything the Go runtime exposes.
package osthread

// Unknown is returned by ID on platforms without a thread id source.
const Unknown = -1

// ID returns the id of the calling OS thread, or Unknown.
//
// The result is only stable while the calling goroutine is locked to its
// thread with runtime.LockOSThread.
func ID() int {
	return id()
}

// Supported reports whether ID returns real thread ids on this platform.
func Supported() bool {
	return id() != Unknown
}
