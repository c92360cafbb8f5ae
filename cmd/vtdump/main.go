// vtdump spawns a command under a PTY, decodes its output as UTF-8,
// feeds every code point through a vtparse.Parser, and logs each
// decoded Sequence. It's the
// smallest possible consumer of the external-producer -> Feed ->
// Sequence data flow vtparse exposes.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/haileys/vte/ptyio"
	"github.com/haileys/vte/vtparse"
)

var (
	logfile = flag.String("logfile", "", "If set, the decoded sequence stream is written to this file instead of stderr.")
	verbose = flag.Bool("verbose", false, "Also log debug-level PTY/UTF-8-mode diagnostics alongside decoded sequences.")
	rows    = flag.Uint("rows", 24, "Initial PTY row count.")
	cols    = flag.Uint("cols", 80, "Initial PTY column count.")
)

// setupLogging points the default slog.Logger at logfile (or stderr when
// unset) and gates PTY/UTF-8-mode diagnostics behind verbose. Unlike a
// generic server log, vtdump's whole purpose is its decoded-sequence
// stream, so -- unlike a discard-by-default logger -- there's no quiet
// mode that drops it: verbose only widens what else rides alongside it.
func setupLogging(logfile string, verbose bool) error {
	w := io.Writer(os.Stderr)
	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0700)
		if err != nil {
			return fmt.Errorf("couldn't open logfile %q: %v", logfile, err)
		}
		w = f
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

func main() {
	flag.Parse()

	if err := setupLogging(*logfile, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "couldn't set up logging: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{os.Getenv("SHELL")}
		if args[0] == "" {
			args[0] = "/bin/sh"
		}
	}

	cmd := exec.Command(args[0], args[1:]...)
	utmpLabel := fmt.Sprintf("vtdump[%d]:%s", os.Getpid(), args[0])
	ep, err := ptyio.Create(cmd, ptyio.WindowSize{Rows: uint16(*rows), Cols: uint16(*cols)}, utmpLabel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't start %s under a pty: %v\n", args[0], err)
		os.Exit(1)
	}
	defer ep.Close()

	if err := ep.SetUTF8Mode(true); err != nil {
		slog.Debug("SetUTF8Mode failed", "err", err)
	}

	p := vtparse.New()
	r := bufio.NewReader(ep)

	for {
		c, sz, err := r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			slog.Error("ReadRune", "err", err)
			break
		}
		if c == utf8.RuneError && sz == 1 {
			r.UnreadRune()
			b, err := r.ReadByte()
			if err != nil {
				slog.Error("ReadByte", "err", err)
				break
			}
			c = rune(b)
		}

		typ, seq := p.Feed(c)
		if typ == vtparse.TypeNone {
			continue
		}
		logSequence(typ, seq)
	}

	if err := ep.Wait(); err != nil {
		slog.Debug("command exited", "err", err)
	}
}

func logSequence(typ vtparse.Type, seq *vtparse.Sequence) {
	attrs := []any{"type", typ.String(), "command", seq.Command, "terminator", describeRune(seq.Terminator)}

	if seq.NArgs > 0 {
		stored := seq.NArgs
		if stored > len(seq.Args) {
			stored = len(seq.Args)
		}
		args := make([]string, stored)
		for i := 0; i < stored; i++ {
			if seq.Args[i].Default() {
				args[i] = "-"
			} else {
				args[i] = fmt.Sprintf("%d", seq.Args[i].Value())
			}
		}
		attrs = append(attrs, "args", strings.Join(args, ";"))
	}
	if seq.Charset != vtparse.CharsetNONE {
		attrs = append(attrs, "charset", seq.Charset)
	}
	if len(seq.Data) > 0 {
		attrs = append(attrs, "data", string(seq.Data))
	}

	slog.Info("sequence", attrs...)
}

func describeRune(r rune) string {
	if r == 0 {
		return ""
	}
	if r >= 0x20 && r <= 0x7e {
		return string(r)
	}
	return fmt.Sprintf("%#x", r)
}
