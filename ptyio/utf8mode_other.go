//go:build !linux

package ptyio

import "fmt"

// SetUTF8Mode is a no-op returning an error on platforms without
// Linux's IUTF8 termios flag.
func (e *Endpoint) SetUTF8Mode(enabled bool) error {
	return fmt.Errorf("SetUTF8Mode not supported on this platform")
}
