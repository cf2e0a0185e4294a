//go:build !ios && !android && (amd64 || arm64)

// Package bindings handles loading the libui shared library and registering
// function bindings using purego.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/uigo/internal/platform"
)

// ErrLibraryNotFound is returned when libui cannot be found.
var ErrLibraryNotFound = errors.New("uigo: libui library not found")

// LibDirEnv names the environment variable searched before the system paths.
const LibDirEnv = "UIGO_LIB_DIR"

var (
	libUI    uintptr
	libPath  string
	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded returns true if libui has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Path returns the path libui was loaded from, or "" before Load.
func Path() string {
	return libPath
}

// Load loads libui from the search paths and registers all function bindings.
// If explicit is non-empty it is tried first.
// It is safe to call multiple times; subsequent calls are no-ops.
func Load(explicit string) error {
	loadOnce.Do(func() {
		loadErr = doLoad(explicit)
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad(explicit string) error {
	var err error
	if explicit != "" {
		libUI, err = tryOpen(explicit)
		if err != nil {
			return fmt.Errorf("loading %s: %w", explicit, err)
		}
		libPath = explicit
	} else {
		// libui-ng ships an unversioned soname; andlabs releases used .so.0
		libUI, libPath, err = loadLibrary("ui", []int{0})
		if err != nil {
			return fmt.Errorf("loading libui: %w", err)
		}
	}
	registerFuncs(libUI)
	return nil
}

// loadLibrary attempts to load a library by trying versioned names.
func loadLibrary(name string, versions []int) (uintptr, string, error) {
	var candidates []string
	for _, searchPath := range LibrarySearchPaths() {
		// Unversioned first; version 0 is treated as unversioned by
		// FormatLibraryName, so the explicit .so.0 is added by hand.
		candidates = append(candidates, filepath.Join(searchPath, platform.FormatLibraryName(name, 0)))
		for _, ver := range versions {
			if ver > 0 {
				candidates = append(candidates, filepath.Join(searchPath, platform.FormatLibraryName(name, ver)))
			}
		}
		if runtime.GOOS == "linux" {
			candidates = append(candidates, filepath.Join(searchPath, platform.FormatLibraryName(name, 0)+".0"))
		}
	}

	// Let the system loader search as a last resort
	candidates = append(candidates, platform.FormatLibraryName(name, 0))

	for _, path := range candidates {
		if lib, err := tryOpen(path); err == nil {
			return lib, path, nil
		}
	}
	return 0, "", fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for libui and returns its full path.
// This is useful for diagnostics.
func FindLibrary() (string, error) {
	for _, searchPath := range LibrarySearchPaths() {
		fullPath := filepath.Join(searchPath, platform.FormatLibraryName("ui", 0))
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: ui", ErrLibraryNotFound)
}

// LibrarySearchPaths returns platform-specific library search paths.
// The directory named by UIGO_LIB_DIR always comes first.
func LibrarySearchPaths() []string {
	var paths []string

	if dir := os.Getenv(LibDirEnv); dir != "" {
		paths = append(paths, dir)
	}

	switch runtime.GOOS {
	case "linux":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib", // Apple Silicon
			"/usr/local/lib",    // Intel
		)

	case "windows":
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}

	case "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	}

	// Next to the executable, where installers usually drop the DLL/dylib
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(exe))
	}

	return paths
}
