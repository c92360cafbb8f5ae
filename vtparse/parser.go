package vtparse

// Parser is a streaming, allocation-free decoder for ECMA-48/ISO-2022
// terminal control sequences. Feed one code point at a time; a Parser
// is not safe for concurrent use and is meant to be owned by a single
// goroutine per terminal session.
type Parser struct {
	state pState
	seq   Sequence

	im     []rune // intermediates, in arrival order
	prefix rune   // the CSI/DCS parameter-prefix byte, 0 if none seen

	argIdx   int  // current Args storage slot, saturates at MaxArgs-1
	nSeps    int  // separators seen so far, unbounded: NArgs = nSeps+1
	sawParam bool // true once a digit or separator (not just a prefix) has been seen

	// DCS hook state: the command final byte recorded at DCS_ENTRY/
	// PARAM/INT time, before the passthrough data phase begins.
	hookFinal rune
	hookCmd   Command

	// Which of SOS/PM/APC opened the current stSTIgnore phase.
	stKind Type

	pendingST bool
}

// New returns a Parser ready to Feed, starting in GROUND.
func New() *Parser {
	p := &Parser{}
	p.Reset()
	return p
}

// Reset returns the Parser to GROUND and discards any sequence in
// progress, without reporting it.
func (p *Parser) Reset() {
	p.state = stGround
	p.seq.clear()
	p.im = p.im[:0]
	p.prefix = 0
	p.argIdx = 0
	p.nSeps = 0
	p.sawParam = false
	p.hookFinal = 0
	p.hookCmd = CmdNone
	p.stKind = TypeNone
	p.pendingST = false
}

func isStringPhase(s pState) bool {
	switch s {
	case stOSCString, stDCSPass, stDCSIgnore, stSTIgnore:
		return true
	}
	return false
}

// Feed advances the state machine by exactly one code point and
// reports what, if anything, completed.
func (p *Parser) Feed(c rune) (Type, *Sequence) {
	switch c {
	case rCAN:
		return p.abortTo(stGround, TypeIgnore, CmdNone)
	case rSUB:
		return p.abortTo(stGround, TypeControl, CmdSUB)
	}

	if c == rC1ST {
		if isStringPhase(p.state) {
			return p.closeStringPhase(rC1ST)
		}
		return p.abortTo(stGround, TypeIgnore, CmdNone)
	}

	if c == rESC {
		if isStringPhase(p.state) {
			if p.pendingST {
				// A second ESC before the confirming backslash:
				// the first attempt never completed.
				return p.abortTo(stGround, TypeIgnore, CmdNone)
			}
			p.pendingST = true
			return TypeNone, &p.seq
		}
		return p.abortTo(stEsc, TypeIgnore, CmdNone)
	}

	switch c {
	case rC1DCS:
		return p.openC1(stDCSEntry, TypeNone)
	case rC1SOS:
		return p.openC1(stSTIgnore, TypeSOS)
	case rC1CSI:
		return p.openC1(stCSIEntry, TypeNone)
	case rC1OSC:
		return p.openC1(stOSCString, TypeNone)
	case rC1PM:
		return p.openC1(stSTIgnore, TypePM)
	case rC1APC:
		return p.openC1(stSTIgnore, TypeAPC)
	}

	if isStringPhase(p.state) {
		if p.pendingST {
			p.pendingST = false
			if c == '\\' {
				return p.closeStringPhase('\\')
			}
			return p.abortTo(stGround, TypeIgnore, CmdNone)
		}
		return p.feedStringPhase(c)
	}

	switch p.state {
	case stGround:
		return p.feedGround(c)
	case stEsc:
		return p.feedEsc(c)
	case stEscInt:
		return p.feedEscInt(c)
	case stCSIEntry:
		return p.feedCSIEntry(c)
	case stCSIParam:
		return p.feedCSIParam(c)
	case stCSIInt:
		return p.feedCSIInt(c)
	case stCSIIgnore:
		return p.feedCSIIgnore(c)
	case stDCSEntry:
		return p.feedDCSEntry(c)
	case stDCSParam:
		return p.feedDCSParam(c)
	case stDCSInt:
		return p.feedDCSInt(c)
	}
	return TypeNone, &p.seq
}

// abortTo clears whatever was in progress, emits (typ, cmd) as a
// completed unit, and lands in newState. Used for CAN/SUB/ESC/stray-ST,
// all of which discard any partial sequence unconditionally.
func (p *Parser) abortTo(newState pState, typ Type, cmd Command) (Type, *Sequence) {
	p.seq.clear()
	p.seq.Type = typ
	p.seq.Command = cmd
	p.im = p.im[:0]
	p.prefix = 0
	p.argIdx = 0
	p.nSeps = 0
	p.sawParam = false
	p.hookFinal = 0
	p.hookCmd = CmdNone
	p.pendingST = false
	p.state = newState
	return typ, &p.seq
}

// openC1 discards anything in progress (like abortTo) and opens a new
// phase via its 8-bit C1 introducer, which always reports IGNORE for
// this byte itself: the introducer both cancels whatever preceded it
// and opens the new phase in one code point.
func (p *Parser) openC1(newState pState, kind Type) (Type, *Sequence) {
	p.abortTo(newState, TypeIgnore, CmdNone)
	p.stKind = kind
	return TypeIgnore, &p.seq
}

func (p *Parser) beginIntroduced(newState pState, kind Type) (Type, *Sequence) {
	p.seq.clear()
	p.im = p.im[:0]
	p.prefix = 0
	p.argIdx = 0
	p.nSeps = 0
	p.sawParam = false
	p.hookFinal = 0
	p.hookCmd = CmdNone
	p.state = newState
	p.stKind = kind
	return TypeNone, &p.seq
}

func (p *Parser) addIntermediate(c rune) {
	if intermediateBit(p.seq.Intermediates, c) {
		return
	}
	p.seq.Intermediates |= 1 << uint32(c-0x20)
	p.im = append(p.im, c)
}

// --- GROUND ---

func (p *Parser) feedGround(c rune) (Type, *Sequence) {
	if isC0Executable(c) {
		return p.execC0(c)
	}
	if (c >= 0x20 && c <= 0x7f) || c >= 0xa0 {
		p.seq.clear()
		p.seq.Type = TypeGraphic
		p.seq.Command = CmdGRAPHIC
		p.seq.Terminator = c
		return TypeGraphic, &p.seq
	}
	// remaining C1 controls (0x80..0x9f) that aren't phase openers
	p.seq.clear()
	p.seq.Type = TypeControl
	p.seq.Command = c1Command(c)
	p.seq.Terminator = c
	return TypeControl, &p.seq
}

func (p *Parser) execC0(c rune) (Type, *Sequence) {
	// Inside a CSI or DCS introducer the control executes without
	// discarding the parameters and intermediates collected so far.
	switch p.state {
	case stCSIEntry, stCSIParam, stCSIInt, stCSIIgnore, stDCSEntry, stDCSParam, stDCSInt:
	default:
		p.seq.clear()
	}
	p.seq.Type = TypeControl
	p.seq.Command = c0Command(c)
	p.seq.Terminator = c
	return TypeControl, &p.seq
}

// --- ESC / ESC_INT ---

func (p *Parser) feedEsc(c rune) (Type, *Sequence) {
	switch c {
	case '[':
		return p.beginIntroduced(stCSIEntry, TypeNone)
	case 'P':
		return p.beginIntroduced(stDCSEntry, TypeNone)
	case 'X':
		return p.beginIntroduced(stSTIgnore, TypeSOS)
	case ']':
		return p.beginIntroduced(stOSCString, TypeNone)
	case '^':
		return p.beginIntroduced(stSTIgnore, TypePM)
	case '_':
		return p.beginIntroduced(stSTIgnore, TypeAPC)
	}
	if c == rDEL {
		return TypeNone, &p.seq
	}
	if isC0Executable(c) {
		typ, seq := p.execC0(c)
		p.state = stGround
		return typ, seq
	}
	if isIntermediate(c) {
		p.addIntermediate(c)
		p.state = stEscInt
		return TypeNone, &p.seq
	}
	if isEscFinal(c) {
		return p.finishEscape(c)
	}
	return p.abortTo(stGround, TypeIgnore, CmdNone)
}

func (p *Parser) feedEscInt(c rune) (Type, *Sequence) {
	if c == rDEL {
		return TypeNone, &p.seq
	}
	if isC0Executable(c) {
		typ, seq := p.execC0(c)
		p.state = stGround
		return typ, seq
	}
	if isIntermediate(c) {
		p.addIntermediate(c)
		return TypeNone, &p.seq
	}
	if isEscFinal(c) {
		return p.finishEscape(c)
	}
	return p.abortTo(stGround, TypeIgnore, CmdNone)
}

func (p *Parser) finishEscape(final rune) (Type, *Sequence) {
	var cmd Command
	var cs Charset
	if len(p.im) == 0 {
		cmd = escBareCommand(final)
	} else {
		cmd, cs = resolveEscape(p.im, final)
	}
	p.seq.Type = TypeEscape
	p.seq.Command = cmd
	p.seq.Terminator = final
	p.seq.Charset = cs
	p.state = stGround
	return TypeEscape, &p.seq
}

// --- CSI_ENTRY / CSI_PARAM / CSI_INT / CSI_IGNORE ---

func (p *Parser) feedCSIEntry(c rune) (Type, *Sequence) {
	switch {
	case isParamPrefix(c):
		p.prefix = c
		p.addIntermediate(c)
		p.state = stCSIParam
		return TypeNone, &p.seq
	case isDigit(c):
		p.seq.Args[p.argIdx] = p.seq.Args[p.argIdx].push(c)
		p.sawParam = true
		p.state = stCSIParam
		return TypeNone, &p.seq
	case c == ':':
		p.seq.Args[p.argIdx] = p.seq.Args[p.argIdx].markNonFinal()
		p.sawParam = true
		p.advanceArg()
		p.state = stCSIParam
		return TypeNone, &p.seq
	case c == ';':
		p.sawParam = true
		p.advanceArg()
		p.state = stCSIParam
		return TypeNone, &p.seq
	case isIntermediate(c):
		p.addIntermediate(c)
		p.state = stCSIInt
		return TypeNone, &p.seq
	case isCSIFinal(c):
		return p.finishCSI(c)
	case isC0Executable(c):
		return p.execC0(c)
	case c == rDEL:
		return TypeNone, &p.seq
	default:
		p.state = stCSIIgnore
		return TypeNone, &p.seq
	}
}

// advanceArg moves to the next Args storage slot on a ':' or ';'
// separator. Beyond MaxArgs, further parameters are folded into the
// last slot (which is reset so it holds the most recent of them) rather
// than tracked individually, but nSeps keeps counting so NArgs reports
// the true logical count per spec section 4.2/B5.
func (p *Parser) advanceArg() {
	p.nSeps++
	if p.argIdx < MaxArgs-1 {
		p.argIdx++
	} else {
		p.seq.Args[p.argIdx] = Arg(0)
	}
}

func (p *Parser) feedCSIParam(c rune) (Type, *Sequence) {
	switch {
	case isParamPrefix(c):
		p.state = stCSIIgnore
		return TypeNone, &p.seq
	case isDigit(c):
		p.seq.Args[p.argIdx] = p.seq.Args[p.argIdx].push(c)
		p.sawParam = true
		return TypeNone, &p.seq
	case c == ':':
		p.seq.Args[p.argIdx] = p.seq.Args[p.argIdx].markNonFinal()
		p.sawParam = true
		p.advanceArg()
		return TypeNone, &p.seq
	case c == ';':
		p.sawParam = true
		p.advanceArg()
		return TypeNone, &p.seq
	case isIntermediate(c):
		p.addIntermediate(c)
		p.state = stCSIInt
		return TypeNone, &p.seq
	case isCSIFinal(c):
		return p.finishCSI(c)
	case isC0Executable(c):
		return p.execC0(c)
	case c == rDEL:
		return TypeNone, &p.seq
	default:
		p.state = stCSIIgnore
		return TypeNone, &p.seq
	}
}

func (p *Parser) feedCSIInt(c rune) (Type, *Sequence) {
	switch {
	case isIntermediate(c):
		p.addIntermediate(c)
		return TypeNone, &p.seq
	case isCSIFinal(c):
		return p.finishCSI(c)
	case isC0Executable(c):
		return p.execC0(c)
	case c == rDEL:
		return TypeNone, &p.seq
	default:
		// includes stray digits/separators/prefixes after an
		// intermediate has already started: malformed, consume
		// silently until a real final arrives.
		p.state = stCSIIgnore
		return TypeNone, &p.seq
	}
}

func (p *Parser) feedCSIIgnore(c rune) (Type, *Sequence) {
	if isCSIFinal(c) {
		p.seq.clear()
		p.seq.Type = TypeIgnore
		p.seq.Terminator = c
		p.state = stGround
		return TypeIgnore, &p.seq
	}
	if isC0Executable(c) {
		return p.execC0(c)
	}
	return TypeNone, &p.seq
}

func (p *Parser) finishCSI(final rune) (Type, *Sequence) {
	p.finalizeArgs()
	p.seq.Type = TypeCSI
	p.seq.Command = csiCommand(final)
	p.seq.Terminator = final
	p.state = stGround
	return TypeCSI, &p.seq
}

// finalizeArgs sets NArgs/NFinalArgs once a sequence closes. A bare
// final with no digit, ':' or ';' ever seen (sawParam false) reports
// zero arguments even though argIdx still starts at its zero value.
// NArgs is the true logical count and may exceed MaxArgs (B5); the
// backing Args storage saturates at slot MaxArgs-1 regardless.
func (p *Parser) finalizeArgs() {
	if !p.sawParam {
		p.seq.NArgs = 0
		p.seq.NFinalArgs = 0
		return
	}
	p.seq.NArgs = p.nSeps + 1
	stored := p.seq.NArgs
	if stored > MaxArgs {
		stored = MaxArgs
	}
	for i := 0; i < stored; i++ {
		if !p.seq.Args[i].NonFinal() {
			p.seq.NFinalArgs++
		}
	}
}

// --- DCS_ENTRY / DCS_PARAM / DCS_INT ---
//
// These three mirror the CSI entry/param/int trio exactly, except that
// a final byte doesn't complete the sequence: it hooks a passthrough
// data phase that only closes on ST.

func (p *Parser) feedDCSEntry(c rune) (Type, *Sequence) {
	switch {
	case isParamPrefix(c):
		p.prefix = c
		p.addIntermediate(c)
		p.state = stDCSParam
		return TypeNone, &p.seq
	case isDigit(c):
		p.seq.Args[p.argIdx] = p.seq.Args[p.argIdx].push(c)
		p.sawParam = true
		p.state = stDCSParam
		return TypeNone, &p.seq
	case c == ':':
		p.seq.Args[p.argIdx] = p.seq.Args[p.argIdx].markNonFinal()
		p.sawParam = true
		p.advanceArg()
		p.state = stDCSParam
		return TypeNone, &p.seq
	case c == ';':
		p.sawParam = true
		p.advanceArg()
		p.state = stDCSParam
		return TypeNone, &p.seq
	case isIntermediate(c):
		p.addIntermediate(c)
		p.state = stDCSInt
		return TypeNone, &p.seq
	case isCSIFinal(c):
		return p.hookDCS(c)
	case isC0Executable(c):
		return p.execC0(c)
	case c == rDEL:
		return TypeNone, &p.seq
	default:
		p.state = stDCSIgnore
		return TypeNone, &p.seq
	}
}

func (p *Parser) feedDCSParam(c rune) (Type, *Sequence) {
	switch {
	case isParamPrefix(c):
		p.state = stDCSIgnore
		return TypeNone, &p.seq
	case isDigit(c):
		p.seq.Args[p.argIdx] = p.seq.Args[p.argIdx].push(c)
		p.sawParam = true
		return TypeNone, &p.seq
	case c == ':':
		p.seq.Args[p.argIdx] = p.seq.Args[p.argIdx].markNonFinal()
		p.sawParam = true
		p.advanceArg()
		return TypeNone, &p.seq
	case c == ';':
		p.sawParam = true
		p.advanceArg()
		return TypeNone, &p.seq
	case isIntermediate(c):
		p.addIntermediate(c)
		p.state = stDCSInt
		return TypeNone, &p.seq
	case isCSIFinal(c):
		return p.hookDCS(c)
	case isC0Executable(c):
		return p.execC0(c)
	case c == rDEL:
		return TypeNone, &p.seq
	default:
		p.state = stDCSIgnore
		return TypeNone, &p.seq
	}
}

func (p *Parser) feedDCSInt(c rune) (Type, *Sequence) {
	switch {
	case isIntermediate(c):
		p.addIntermediate(c)
		return TypeNone, &p.seq
	case isCSIFinal(c):
		return p.hookDCS(c)
	case isC0Executable(c):
		return p.execC0(c)
	case c == rDEL:
		return TypeNone, &p.seq
	default:
		p.state = stDCSIgnore
		return TypeNone, &p.seq
	}
}

func (p *Parser) hookDCS(final rune) (Type, *Sequence) {
	p.finalizeArgs()
	p.hookFinal = final
	p.hookCmd = CmdNone
	p.state = stDCSPass
	return TypeNone, &p.seq
}

// --- string phases: OSC_STRING, DCS_PASS, DCS_IGNORE, ST_IGNORE ---
//
// Universal CAN/SUB/ESC/ST handling is intercepted in Feed before this
// is reached; feedStringPhase only sees ordinary data bytes (plus BEL,
// which terminates OSC_STRING) for whichever phase is active.

func (p *Parser) feedStringPhase(c rune) (Type, *Sequence) {
	if p.state == stOSCString && c == rBEL {
		return p.closeStringPhase(rBEL)
	}
	if p.state == stOSCString || p.state == stDCSPass {
		p.seq.Data = append(p.seq.Data, c)
	}
	return TypeNone, &p.seq
}

func (p *Parser) closeStringPhase(term rune) (Type, *Sequence) {
	defer func() {
		p.state = stGround
		p.pendingST = false
	}()
	switch p.state {
	case stOSCString:
		p.seq.Type = TypeOSC
		p.seq.Command = CmdNone
		p.seq.Terminator = term
		return TypeOSC, &p.seq
	case stDCSPass:
		p.seq.Type = TypeDCS
		p.seq.Command = p.hookCmd
		p.seq.Terminator = p.hookFinal
		return TypeDCS, &p.seq
	case stDCSIgnore:
		p.seq.clear()
		p.seq.Type = TypeIgnore
		p.seq.Terminator = term
		return TypeIgnore, &p.seq
	case stSTIgnore:
		p.seq.clear()
		p.seq.Type = p.stKind
		p.seq.Terminator = term
		return p.stKind, &p.seq
	}
	return TypeNone, &p.seq
}
