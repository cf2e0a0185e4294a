//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"errors"

	"github.com/obinnaokechukwu/uigo/internal/bindings"
)

// Common errors
var (
	// ErrAlreadyInitialized indicates Init was called while another UI is
	// live. Close the existing UI and retry.
	ErrAlreadyInitialized = errors.New("uigo: cannot initialize multiple instances of libui")

	// ErrNotInitialized is the panic value of UI operations made without a
	// live UI.
	ErrNotInitialized = errors.New("uigo: libui is not initialized")

	// ErrLibraryNotFound indicates the libui shared library could not be
	// located. See WithLibraryPath and the UIGO_LIB_DIR environment variable.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound
)

// InitError is returned by Init when libui itself refuses to start.
// Message is libui's own description, unmodified.
type InitError struct {
	Message string
}

func (e *InitError) Error() string {
	return "uigo: unable to initialize the underlying system bindings: " + e.Message
}
