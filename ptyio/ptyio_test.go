package ptyio

import (
	"os/exec"
	"testing"
	"time"
)

func TestCreateAndWindowSize(t *testing.T) {
	cmd := exec.Command("cat")
	ep, err := Create(cmd, WindowSize{Rows: 24, Cols: 80}, "ptyio-test")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer ep.Close()

	got, err := ep.GetWindowSize()
	if err != nil {
		t.Fatalf("GetWindowSize: %v", err)
	}
	if got.Rows != 24 || got.Cols != 80 {
		t.Fatalf("GetWindowSize = %+v, want Rows=24 Cols=80", got)
	}

	if err := ep.SetWindowSize(WindowSize{Rows: 40, Cols: 120}); err != nil {
		t.Fatalf("SetWindowSize: %v", err)
	}
	got, err = ep.GetWindowSize()
	if err != nil {
		t.Fatalf("GetWindowSize after resize: %v", err)
	}
	if got.Rows != 40 || got.Cols != 120 {
		t.Fatalf("GetWindowSize after resize = %+v, want Rows=40 Cols=120", got)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	cmd := exec.Command("cat")
	ep, err := Create(cmd, WindowSize{Rows: 24, Cols: 80}, "ptyio-test")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer ep.Close()

	msg := []byte("hello\n")
	if _, err := ep.Write(msg); err != nil {
		t.Fatalf("Write: %v", err)
	}

	buf := make([]byte, 64)
	ep.f.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := ep.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != string(msg) {
		t.Fatalf("echoed %q, want %q", buf[:n], msg)
	}

	cmd.Process.Kill()
}
