package vtparse

// pState enumerates the parser's internal phases, mirroring the
// canonical VT500-style state diagram referenced in spec section 3. SOS,
// PM and APC share the stSTIgnore consume-until-terminator machinery;
// which of the three is open is tracked separately in Parser.stKind.
type pState uint8

const (
	stGround pState = iota
	stEsc
	stEscInt
	stCSIEntry
	stCSIParam
	stCSIInt
	stCSIIgnore
	stDCSEntry
	stDCSParam
	stDCSInt
	stDCSPass
	stDCSIgnore
	stOSCString
	stSTIgnore
)

// Control code points the state machine treats specially, independent
// of which phase is active.
const (
	rBEL = 0x07
	rCAN = 0x18
	rSUB = 0x1a
	rESC = 0x1b
	rDEL = 0x7f
	rC1DCS = 0x90
	rC1SOS = 0x98
	rC1CSI = 0x9b
	rC1ST  = 0x9c
	rC1OSC = 0x9d
	rC1PM  = 0x9e
	rC1APC = 0x9f
)

func isC0Executable(c rune) bool {
	return (c >= 0x00 && c <= 0x17) || c == 0x19 || (c >= 0x1c && c <= 0x1f)
}

func isIntermediate(c rune) bool {
	return c >= 0x20 && c <= 0x2f
}

func isParamPrefix(c rune) bool {
	return c >= 0x3c && c <= 0x3f
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isCSIFinal(c rune) bool {
	return c >= 0x40 && c <= 0x7e
}

func isEscFinal(c rune) bool {
	return c >= 0x30 && c <= 0x7e
}
