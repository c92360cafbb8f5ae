// Package ptyio opens and manages a PTY master end for a spawned
// command, exposing it as the byte stream a vtparse.Parser consumes.
package ptyio

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// WindowSize mirrors struct winsize from <sys/ioctl.h>: rows and
// columns in character cells, width and height in pixels (both zero if
// unknown).
type WindowSize struct {
	Rows, Cols       uint16
	XPixels, YPixels uint16
}

func (w WindowSize) toPty() *pty.Winsize {
	return &pty.Winsize{Rows: w.Rows, Cols: w.Cols, X: w.XPixels, Y: w.YPixels}
}

// Endpoint is the PTY master end of a spawned command.
type Endpoint struct {
	f   *os.File
	cmd *exec.Cmd
}

// Create starts cmd attached to a freshly allocated PTY of the given
// initial size and returns the master end. utmpLabel is the session
// identity recorded via utempter (an empty string falls back to a bare
// pid tag); callers that care about their utmp/who(1) presence, like
// cmd/vtdump, pass something that names themselves and the spawned
// command rather than a name fixed at package build time.
func Create(cmd *exec.Cmd, size WindowSize, utmpLabel string) (*Endpoint, error) {
	f, err := pty.StartWithSize(cmd, size.toPty())
	if err != nil {
		return nil, fmt.Errorf("couldn't start pty: %v", err)
	}

	// Any use of Fd(), including indirectly via StartWithSize's
	// Setsize call, leaves the descriptor in non-blocking mode.
	if err := syscall.SetNonblock(int(f.Fd()), false); err != nil {
		f.Close()
		return nil, fmt.Errorf("couldn't clear pty non-blocking flag: %v", err)
	}

	syscall.CloseOnExec(int(f.Fd()))

	addUtmp(f, utmpLabel)

	return &Endpoint{f: f, cmd: cmd}, nil
}

// GetWindowSize reports the PTY's current size.
func (e *Endpoint) GetWindowSize() (WindowSize, error) {
	ws, err := pty.GetsizeFull(e.f)
	if err != nil {
		return WindowSize{}, fmt.Errorf("couldn't get pty size: %v", err)
	}
	return WindowSize{Rows: ws.Rows, Cols: ws.Cols, XPixels: ws.X, YPixels: ws.Y}, nil
}

// SetWindowSize resizes the PTY, which delivers SIGWINCH to the
// foreground process group of the attached command.
func (e *Endpoint) SetWindowSize(size WindowSize) error {
	if !term.IsTerminal(e.Fd()) {
		return nil
	}
	if err := pty.Setsize(e.f, size.toPty()); err != nil {
		return fmt.Errorf("couldn't set pty size: %v", err)
	}
	// Setsize's use of Fd() re-arms the non-blocking flag.
	return syscall.SetNonblock(int(e.f.Fd()), false)
}

// Read reads bytes from the PTY master.
func (e *Endpoint) Read(p []byte) (int, error) {
	return e.f.Read(p)
}

// Write writes bytes to the PTY master, delivering them to the
// attached command's stdin.
func (e *Endpoint) Write(p []byte) (int, error) {
	return e.f.Write(p)
}

// Wait blocks until the attached command exits.
func (e *Endpoint) Wait() error {
	return e.cmd.Wait()
}

// Close closes the PTY master and unregisters the utmp entry created
// by Create.
func (e *Endpoint) Close() error {
	rmUtmp(e.f)
	return e.f.Close()
}

// Fd returns the underlying file descriptor, for use by SetUTF8Mode and
// similar termios-level operations.
func (e *Endpoint) Fd() int {
	return int(e.f.Fd())
}
