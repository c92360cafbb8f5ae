//go:build !linux

package ptyio

import (
	"log/slog"
	"os"
)

func addUtmp(f *os.File, label string) {
	slog.Debug("addUtmp not implemented on this platform", "label", label)
}

func rmUtmp(f *os.File) {
	slog.Debug("rmUtmp not implemented on this platform")
}
