//go:build !linux && !windows

package osthread

func id() int {
	return Unknown
}
