package vtparse

import "testing"

func feedAll(t *testing.T, p *Parser, s string) (Type, *Sequence) {
	t.Helper()
	var typ Type
	var seq *Sequence
	for _, r := range s {
		typ, seq = p.Feed(r)
	}
	return typ, seq
}

func TestGroundGraphic(t *testing.T) {
	p := New()
	typ, seq := p.Feed('A')
	if typ != TypeGraphic || seq.Terminator != 'A' {
		t.Fatalf("got %v %v, want GRAPHIC 'A'", typ, seq.Terminator)
	}
}

func TestGroundC0(t *testing.T) {
	p := New()
	typ, seq := p.Feed(0x0d)
	if typ != TypeControl || seq.Command != CmdCR {
		t.Fatalf("got %v %v, want CONTROL CmdCR", typ, seq.Command)
	}
}

func TestBareControlsFromGround(t *testing.T) {
	cases := []struct {
		c   rune
		typ Type
		cmd Command
	}{
		{0x18, TypeIgnore, CmdNone},  // CAN
		{0x1a, TypeControl, CmdSUB}, // SUB
		{0x1b, TypeIgnore, CmdNone}, // ESC
		{0x90, TypeIgnore, CmdNone}, // DCS opener
		{0x98, TypeIgnore, CmdNone}, // SOS opener
		{0x9b, TypeIgnore, CmdNone}, // CSI opener
		{0x9c, TypeIgnore, CmdNone}, // ST, stray
		{0x9d, TypeIgnore, CmdNone}, // OSC opener
		{0x9e, TypeIgnore, CmdNone}, // PM opener
		{0x9f, TypeIgnore, CmdNone}, // APC opener
	}
	for _, tc := range cases {
		p := New()
		typ, seq := p.Feed(tc.c)
		if typ != tc.typ || seq.Command != tc.cmd {
			t.Errorf("Feed(%#x) = %v/%v, want %v/%v", tc.c, typ, seq.Command, tc.typ, tc.cmd)
		}
	}
}

func TestEscSimple(t *testing.T) {
	p := New()
	typ, _ := p.Feed(rESC)
	if typ != TypeIgnore {
		t.Fatalf("ESC byte itself: got %v, want IGNORE", typ)
	}
	typ, seq := p.Feed('c')
	if typ != TypeEscape || seq.Command != CmdRIS {
		t.Fatalf("ESC c: got %v/%v, want ESCAPE/CmdRIS", typ, seq.Command)
	}
}

func TestEscDoubleAborts(t *testing.T) {
	p := New()
	p.Feed(rESC)
	typ, _ := p.Feed(rESC)
	if typ != TypeIgnore {
		t.Fatalf("second ESC: got %v, want IGNORE", typ)
	}
	typ, seq := p.Feed('8')
	if typ != TypeEscape || seq.Command != CmdDECRC {
		t.Fatalf("ESC 8 after double ESC: got %v/%v", typ, seq.Command)
	}
}

func TestCSISimpleParams(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b[1;2m")
	if typ != TypeCSI || seq.Command != CmdSGR {
		t.Fatalf("got %v/%v, want CSI/CmdSGR", typ, seq.Command)
	}
	if seq.NArgs != 2 || seq.NFinalArgs != 2 {
		t.Fatalf("NArgs=%d NFinalArgs=%d, want 2/2", seq.NArgs, seq.NFinalArgs)
	}
	if seq.Args[0].Value() != 1 || seq.Args[1].Value() != 2 {
		t.Fatalf("args = %d,%d, want 1,2", seq.Args[0].Value(), seq.Args[1].Value())
	}
}

func TestCSIViaC1Introducer(t *testing.T) {
	p := New()
	p.Feed(rC1CSI)
	typ, seq := feedAll(t, p, "1;2m")
	if typ != TypeCSI || seq.Command != CmdSGR || seq.Args[0].Value() != 1 || seq.Args[1].Value() != 2 {
		t.Fatalf("8-bit CSI introducer mismatch: %v/%v args=%d,%d", typ, seq.Command, seq.Args[0].Value(), seq.Args[1].Value())
	}
}

func TestCSIDefaultArg(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b[m")
	if typ != TypeCSI {
		t.Fatalf("got %v, want CSI", typ)
	}
	if seq.NArgs != 0 {
		t.Fatalf("NArgs=%d, want 0 for bare final", seq.NArgs)
	}
}

func TestCSISubParameters(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b[38:2:255:0:0m")
	if typ != TypeCSI {
		t.Fatalf("got %v, want CSI", typ)
	}
	if seq.NArgs != 5 {
		t.Fatalf("NArgs=%d, want 5", seq.NArgs)
	}
	if seq.NFinalArgs != 1 {
		t.Fatalf("NFinalArgs=%d, want 1 (only the last slot is final)", seq.NFinalArgs)
	}
	if seq.Args[0].NonFinal() != true || seq.Args[4].NonFinal() != false {
		t.Fatalf("NonFinal flags wrong: first=%v last=%v", seq.Args[0].NonFinal(), seq.Args[4].NonFinal())
	}
}

func TestCSIParamOverflowClamps(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b[999999m")
	if typ != TypeCSI {
		t.Fatalf("got %v, want CSI", typ)
	}
	if seq.Args[0].Value() != argMaxValue {
		t.Fatalf("value=%d, want clamp at %d", seq.Args[0].Value(), argMaxValue)
	}
}

func TestCSIMoreThanSixteenParamsStillCountsTrue(t *testing.T) {
	p := New()
	// 20 semicolon-separated params: NArgs must report 20 even though
	// only 16 slots of storage exist.
	seq := "\x1b[" + "1;1;1;1;1;1;1;1;1;1;1;1;1;1;1;1;1;1;1;1" + "m"
	typ, s := feedAll(t, p, seq)
	if typ != TypeCSI {
		t.Fatalf("got %v, want CSI", typ)
	}
	if s.NArgs != 20 {
		t.Fatalf("NArgs=%d, want 20 (true count, B5)", s.NArgs)
	}
	if s.Args[MaxArgs-1].Value() != 1 {
		t.Fatalf("last storage slot should still hold the collapsed tail value")
	}
}

func TestCSIMalformedDoublePrefixIgnored(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b[?1?h")
	if typ != TypeIgnore {
		t.Fatalf("got %v, want IGNORE for malformed double prefix", typ)
	}
	if seq.Terminator != 'h' {
		t.Fatalf("terminator=%q, want 'h'", seq.Terminator)
	}
}

func TestCSIPrivateMode(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b[?25h")
	if typ != TypeCSI || seq.Command != CmdSM {
		t.Fatalf("got %v/%v, want CSI/CmdSM", typ, seq.Command)
	}
	if !intermediateBit(seq.Intermediates, '?') {
		t.Fatalf("expected '?' prefix bit set in Intermediates")
	}
	// A prefix byte precedes the first digit here, not a digit directly;
	// NArgs must still come out to 1, not 0.
	if seq.NArgs != 1 || seq.Args[0].Value() != 25 {
		t.Fatalf("NArgs=%d arg0=%d, want 1/25", seq.NArgs, seq.Args[0].Value())
	}
}

func TestC0ExecutedInsideCSIDoesNotAbort(t *testing.T) {
	p := New()
	p.Feed(rESC)
	p.Feed('[')
	p.Feed('1')
	typ, seq := p.Feed(0x0a) // LF mid-CSI
	if typ != TypeControl || seq.Command != CmdLF {
		t.Fatalf("mid-CSI LF: got %v/%v, want CONTROL/CmdLF", typ, seq.Command)
	}
	typ, seq = feedAll(t, p, ";2m")
	if typ != TypeCSI || seq.Args[0].Value() != 1 || seq.Args[1].Value() != 2 {
		t.Fatalf("CSI continued after inline C0: got %v args=%d,%d", typ, seq.Args[0].Value(), seq.Args[1].Value())
	}
}

func TestCANAbortsMidCSI(t *testing.T) {
	p := New()
	p.Feed(rESC)
	p.Feed('[')
	p.Feed('1')
	typ, _ := p.Feed(rCAN)
	if typ != TypeIgnore {
		t.Fatalf("got %v, want IGNORE", typ)
	}
	typ, seq := p.Feed('A')
	if typ != TypeGraphic || seq.Terminator != 'A' {
		t.Fatalf("after CAN abort: got %v/%v, want fresh GRAPHIC 'A'", typ, seq.Terminator)
	}
}

func TestSUBAbortsMidCSI(t *testing.T) {
	p := New()
	p.Feed(rESC)
	p.Feed('[')
	typ, seq := p.Feed(rSUB)
	if typ != TypeControl || seq.Command != CmdSUB {
		t.Fatalf("got %v/%v, want CONTROL/CmdSUB", typ, seq.Command)
	}
}

func TestOSCRoundTripBEL(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b]0;title\x07")
	if typ != TypeOSC {
		t.Fatalf("got %v, want OSC", typ)
	}
	if string(seq.Data) != "0;title" {
		t.Fatalf("data=%q, want %q", string(seq.Data), "0;title")
	}
	if seq.Terminator != rBEL {
		t.Fatalf("terminator=%#x, want BEL", seq.Terminator)
	}
}

func TestOSCRoundTripST(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b]8;;http://example\x1b\\")
	if typ != TypeOSC {
		t.Fatalf("got %v, want OSC", typ)
	}
	if string(seq.Data) != "8;;http://example" {
		t.Fatalf("data=%q", string(seq.Data))
	}
	if seq.Terminator != '\\' {
		t.Fatalf("terminator=%q, want backslash", seq.Terminator)
	}
}

func TestOSCRoundTrip8BitST(t *testing.T) {
	p := New()
	p.Feed(rC1OSC)
	feedAll(t, p, "2;hi")
	typ, seq := p.Feed(rC1ST)
	if typ != TypeOSC {
		t.Fatalf("got %v, want OSC", typ)
	}
	if string(seq.Data) != "2;hi" {
		t.Fatalf("data=%q, want %q", string(seq.Data), "2;hi")
	}
	if seq.Terminator != rC1ST {
		t.Fatalf("terminator=%#x, want ST", seq.Terminator)
	}
}

func TestDCSRoundTrip(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1bP1$q\"q\x1b\\")
	if typ != TypeDCS {
		t.Fatalf("got %v, want DCS", typ)
	}
	if seq.Terminator != 'q' {
		t.Fatalf("terminator=%q, want 'q' (the DCS hook final)", seq.Terminator)
	}
	if string(seq.Data) != "\"q" {
		t.Fatalf("data=%q, want %q", string(seq.Data), "\"q")
	}
	if seq.Args[0].Value() != 1 {
		t.Fatalf("arg=%d, want 1", seq.Args[0].Value())
	}
}

func TestDCSMalformedThenIgnoredUntilST(t *testing.T) {
	// A parameter-prefix byte after params have already started is
	// malformed; the rest of the DCS is silently discarded up to ST.
	p := New()
	typ, _ := feedAll(t, p, "\x1bP1?garbage!!!")
	if typ != TypeNone {
		t.Fatalf("mid-malformed-DCS: got %v, want NONE (still consuming)", typ)
	}
	typ, seq := feedAll(t, p, "\x1b\\")
	if typ != TypeIgnore {
		t.Fatalf("got %v, want IGNORE once ST closes malformed DCS", typ)
	}
	if len(seq.Data) != 0 {
		t.Fatalf("ignored DCS shouldn't expose any data, got %q", string(seq.Data))
	}
}

func TestSOSPMAPC(t *testing.T) {
	cases := []struct {
		open rune
		want Type
	}{
		{'X', TypeSOS},
		{'^', TypePM},
		{'_', TypeAPC},
	}
	for _, tc := range cases {
		p := New()
		p.Feed(rESC)
		p.Feed(tc.open)
		p.Feed('h')
		p.Feed('i')
		typ, seq := feedAll(t, p, "\x1b\\")
		if typ != tc.want {
			t.Errorf("ESC %c ... ST: got %v, want %v", tc.open, typ, tc.want)
		}
		if len(seq.Data) != 0 {
			t.Errorf("SOS/PM/APC payload should not be exposed, got %q", string(seq.Data))
		}
	}
}

func TestCharsetDesignationASCII(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b(B")
	if typ != TypeEscape || seq.Command != CmdGnDm || seq.Charset != CharsetASCII {
		t.Fatalf("got %v/%v/%v, want ESCAPE/CmdGnDm/CharsetASCII", typ, seq.Command, seq.Charset)
	}
}

func TestCharsetDesignationUTF8(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b%G")
	if typ != TypeEscape || seq.Command != CmdDOCS || seq.Charset != CharsetUTF8 {
		t.Fatalf("got %v/%v/%v, want ESCAPE/CmdDOCS/CharsetUTF8", typ, seq.Command, seq.Charset)
	}
}

func TestCharsetDesignation94N(t *testing.T) {
	p := New()
	typ, seq := feedAll(t, p, "\x1b$(B")
	if typ != TypeEscape || seq.Command != CmdGnDMm || seq.Charset != CharsetJISX0208_1983 {
		t.Fatalf("got %v/%v/%v", typ, seq.Command, seq.Charset)
	}
}

func TestResetDiscardsInProgress(t *testing.T) {
	p := New()
	p.Feed(rESC)
	p.Feed('[')
	p.Feed('1')
	p.Reset()
	typ, seq := p.Feed('A')
	if typ != TypeGraphic || seq.Terminator != 'A' {
		t.Fatalf("after Reset: got %v/%v, want fresh GRAPHIC 'A'", typ, seq.Terminator)
	}
}

func TestEndToEndScenarioEightBitEquivalence(t *testing.T) {
	p1 := New()
	_, seq1 := feedAll(t, p1, "\x1b[1;2m")
	p2 := New()
	p2.Feed(rC1CSI)
	_, seq2 := feedAll(t, p2, "1;2m")
	if seq1.Command != seq2.Command || seq1.Args[0].Value() != seq2.Args[0].Value() || seq1.Args[1].Value() != seq2.Args[1].Value() {
		t.Fatalf("7-bit/8-bit CSI introducers diverged: %+v vs %+v", seq1, seq2)
	}
}
