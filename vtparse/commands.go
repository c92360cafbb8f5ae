package vtparse

// c0Command classifies a C0 control code point (0x00..0x1F) into a
// Command. CAN (0x18), SUB (0x1A) and ESC (0x1B) are handled by the
// state machine directly rather than through this table: CAN/ESC abort
// an in-progress escape sequence and SUB additionally carries its own
// command when it executes as a plain control.
func c0Command(c rune) Command {
	switch c {
	case 0x00:
		return CmdNUL
	case 0x05:
		return CmdENQ
	case 0x07:
		return CmdBEL
	case 0x08:
		return CmdBS
	case 0x09:
		return CmdTAB
	case 0x0a:
		return CmdLF
	case 0x0b:
		return CmdVT
	case 0x0c:
		return CmdFF
	case 0x0d:
		return CmdCR
	case 0x0e:
		return CmdSO
	case 0x0f:
		return CmdSI
	case 0x11:
		return CmdDC1
	case 0x13:
		return CmdDC3
	case 0x1a:
		return CmdSUB
	default:
		return CmdNone
	}
}

// c1Command classifies a C1 control code point (0x80..0x9F) that maps
// directly to a named command. The seven phase-opening code points
// (DCS 0x90, SOS 0x98, CSI 0x9B, ST 0x9C, OSC 0x9D, PM 0x9E, APC 0x9F)
// are handled by the state machine, not through this table.
func c1Command(c rune) Command {
	switch c {
	case 0x84:
		return CmdIND
	case 0x85:
		return CmdNEL
	case 0x88:
		return CmdHTS
	case 0x8d:
		return CmdRI
	case 0x8e:
		return CmdSS2
	case 0x8f:
		return CmdSS3
	case 0x96:
		return CmdSPA
	case 0x97:
		return CmdEPA
	case 0x9a:
		return CmdDECID
	default:
		return CmdNone
	}
}

// escBareCommand classifies a bare ESC <final> sequence (no
// intermediates) into a Command. The six introducers that open another
// phase ('[', 'P', 'X', '_', ']', '^') are dispatched by the state
// machine before this function is ever consulted.
func escBareCommand(final rune) Command {
	switch final {
	case '7':
		return CmdDECSC
	case '8':
		return CmdDECRC
	case 'c':
		return CmdRIS
	case 'D':
		return CmdIND
	case 'E':
		return CmdNEL
	case 'H':
		return CmdHTS
	case 'M':
		return CmdRI
	case 'N':
		return CmdSS2
	case 'O':
		return CmdSS3
	case 'V':
		return CmdSPA
	case 'W':
		return CmdEPA
	case 'Z':
		return CmdDECID
	case '\\':
		return CmdST
	default:
		return CmdNone
	}
}

// csiCommand classifies a CSI final byte (0x40..0x7E) into a Command.
// Parameter-prefix bytes and intermediates are recorded in the
// Sequence's Intermediates mask but don't change which Command a given
// final resolves to here -- finer-grained dispatch (e.g. DECSET vs SM)
// is a downstream consumer's job, per spec section 1's scope.
func csiCommand(final rune) Command {
	switch final {
	case '@':
		return CmdICH
	case 'A':
		return CmdCUU
	case 'B':
		return CmdCUD
	case 'C':
		return CmdCUF
	case 'D':
		return CmdCUB
	case 'E':
		return CmdCNL
	case 'F':
		return CmdCPL
	case 'G':
		return CmdCHA
	case 'H':
		return CmdCUP
	case 'I':
		return CmdCHT
	case 'J':
		return CmdED
	case 'K':
		return CmdEL
	case 'M':
		return CmdDL
	case 'S':
		return CmdSU
	case 'T':
		return CmdSD
	case 'W':
		return CmdDECST8C
	case 'X':
		return CmdECH
	case 'Z':
		return CmdCBT
	case '`':
		return CmdHPA
	case 'a':
		return CmdHPR
	case 'c':
		return CmdDA
	case 'd':
		return CmdVPA
	case 'e':
		return CmdVPR
	case 'f':
		return CmdHVP
	case 'g':
		return CmdTBC
	case 'h':
		return CmdSM
	case 'l':
		return CmdRM
	case 'm':
		return CmdSGR
	case 'n':
		return CmdDSR
	case 'r':
		return CmdDECSTBM
	case 's':
		return CmdDECSLRM
	case 't':
		return CmdXTWINOPS
	default:
		return CmdNone
	}
}
