//go:build linux

package ptyio

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

const utempter = "/usr/lib/x86_64-linux-gnu/utempter/utempter"

// addUtmp registers f's session under label, the caller-supplied utmp
// identity (see Endpoint.Create's utmpLabel parameter). An empty label
// falls back to a bare pid tag, since utempter requires some host string.
func addUtmp(f *os.File, label string) {
	if label == "" {
		label = fmt.Sprintf("ptyio[%d]", os.Getpid())
	}
	cmd := exec.Command(utempter, "add", label)
	cmd.Stdin = f
	if err := cmd.Run(); err != nil {
		slog.Debug("addUtmp error", "err", err)
	} else {
		slog.Debug("addUtmp", "host", label)
	}
}

func rmUtmp(f *os.File) {
	cmd := exec.Command(utempter, "del")
	cmd.Stdin = f
	if err := cmd.Run(); err != nil {
		slog.Debug("rmUtmp error", "err", err)
	} else {
		slog.Debug("rmUtmp")
	}
}
