//go:build linux

package ptyio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SetUTF8Mode toggles the IUTF8 input mode flag on the PTY, the kernel hint
// used when translating special characters (e.g. erase) in canonical
// mode so multi-byte UTF-8 sequences aren't split.
func (e *Endpoint) SetUTF8Mode(enabled bool) error {
	fd := e.Fd()
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("couldn't get termios: %v", err)
	}

	if enabled {
		t.Iflag |= unix.IUTF8
	} else {
		t.Iflag &^= unix.IUTF8
	}

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, t); err != nil {
		return fmt.Errorf("couldn't set termios: %v", err)
	}
	return nil
}
