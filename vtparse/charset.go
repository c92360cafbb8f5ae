package vtparse

// resolveEscape implements the ISO-2022 designation logic of spec section
// 4.3: given the ordered intermediate bytes collected after ESC (all in
// 0x20..0x2F) and the final byte that closed the sequence, it returns the
// designation Command and, where applicable, the resolved Charset.
//
// Combinations this table doesn't recognize still close as a plain
// ESCAPE sequence (the caller always sets Type; this function only ever
// contributes Command/Charset). An unrecognized leading intermediate
// yields Command NONE and Charset NONE; a recognized leading
// intermediate followed by an unrecognized one keeps its designation
// Command with Charset NONE.
func resolveEscape(im []rune, final rune) (Command, Charset) {
	switch len(im) {
	case 1:
		return resolveEscape1(im[0], final)
	case 2:
		return resolveEscape2(im[0], im[1], final)
	case 3:
		return resolveEscape3(im[0], im[1], im[2], final)
	default:
		return CmdNone, CharsetNONE
	}
}

func isGnDmOpener(c rune) bool {
	return c == 0x28 || c == 0x29 || c == 0x2a || c == 0x2b
}

func is96SetOpener(c rune) bool {
	return c == 0x2d || c == 0x2e || c == 0x2f
}

func resolveEscape1(i0, final rune) (Command, Charset) {
	switch {
	case isGnDmOpener(i0):
		return CmdGnDm, lookupCharset(graphic94, final, CharsetNONE)
	case is96SetOpener(i0):
		return CmdGnDm, lookupCharset(graphic96, final, CharsetNONE)
	case i0 == 0x21:
		return CmdCnD, lookupCharset(controlC0, final, CharsetNONE)
	case i0 == 0x22:
		return CmdCnD, lookupCharset(controlC1, final, CharsetNONE)
	case i0 == 0x25:
		return CmdDOCS, lookupCharset(ocsWithReturn, final, CharsetNONE)
	case i0 == 0x24:
		// Special exception: ESC $ @/A/B designate 94^n sets directly,
		// with no second intermediate byte.
		if final == '@' || final == 'A' || final == 'B' {
			return CmdGnDMm, lookupCharset(graphic94N, final, CharsetNONE)
		}
		return CmdNone, CharsetNONE
	default:
		return CmdNone, CharsetNONE
	}
}

func resolveEscape2(i0, i1, final rune) (Command, Charset) {
	switch {
	case isGnDmOpener(i0):
		switch i1 {
		case 0x20:
			return CmdGnDm, CharsetDRCS
		case 0x21:
			return CmdGnDm, lookupCharset(graphic94With21, final, CharsetNONE)
		case 0x22:
			return CmdGnDm, lookupCharset(graphic94With22, final, CharsetNONE)
		case 0x25:
			return CmdGnDm, lookupCharset(graphic94With25, final, CharsetNONE)
		case 0x26:
			return CmdGnDm, lookupCharset(graphic94With26, final, CharsetNONE)
		default:
			return CmdGnDm, CharsetNONE
		}
	case is96SetOpener(i0):
		if i1 == 0x20 {
			return CmdGnDm, CharsetDRCS
		}
		return CmdGnDm, CharsetNONE
	case i0 == 0x24:
		switch {
		case isGnDmOpener(i1):
			return CmdGnDMm, lookupCharset(graphic94N, final, CharsetNONE)
		case is96SetOpener(i1):
			return CmdGnDMm, CharsetNONE
		default:
			return CmdGnDMm, CharsetNONE
		}
	case i0 == 0x25:
		if i1 == 0x2f {
			return CmdDOCS, lookupCharset(ocsWithoutReturn, final, CharsetNONE)
		}
		return CmdDOCS, CharsetNONE
	default:
		return CmdNone, CharsetNONE
	}
}

func resolveEscape3(i0, i1, i2, final rune) (Command, Charset) {
	if i0 != 0x24 {
		return CmdNone, CharsetNONE
	}
	if (isGnDmOpener(i1) || is96SetOpener(i1)) && i2 == 0x20 {
		return CmdGnDMm, CharsetDRCS
	}
	return CmdGnDMm, CharsetNONE
}
