package vtparse

// Tables for ISO-2022 character-set designation, resolved by
// intermediate+final decoding per spec section 4.3. Each table maps a
// final byte (0x30..0x7E) to a Charset; finals absent from a table
// resolve to the documented default for that table (NONE, or DRCS where
// DRCS is the designation's fallback).
//
// The assignments below follow the historical ECMA-35/ISO-2022 charset
// registry. Slots with no widely deployed registration are left unset
// and resolve to CharsetNONE, exactly as spec section 4.3 requires for
// "out-of-range finals."

// graphic94 covers ESC ( / ) / * / + <final> -- 94-character single-byte
// sets, indexed by final byte.
var graphic94 = map[rune]Charset{
	'B': CharsetASCII,
	'A': CharsetBritish,
	'4': CharsetDutch,
	'C': CharsetFinnish,
	'5': CharsetFinnish,
	'R': CharsetFrench,
	'f': CharsetFrench,
	'Q': CharsetFrenchCanadian,
	'9': CharsetFrenchCanadian,
	'K': CharsetGerman,
	'Y': CharsetItalian,
	'E': CharsetNorwegianDanish,
	'6': CharsetNorwegianDanish,
	'Z': CharsetSpanish,
	'H': CharsetSwedish,
	'7': CharsetSwedish,
	'=': CharsetSwiss,
	'0': CharsetDECSpecialGraphics,
	'<': CharsetDECSupplemental,
	'>': CharsetDECTechnical,
	'%': CharsetDECUserPreferredSupplemental,
}

// graphic94With21 covers ESC ( / ) / * / + 0x21 <final>.
var graphic94With21 = map[rune]Charset{
	'@': CharsetPortuguese,
}

// graphic94With22 covers ESC ( / ) / * / + 0x22 <final>.
var graphic94With22 = map[rune]Charset{}

// graphic94With25 covers ESC ( / ) / * / + 0x25 <final>.
var graphic94With25 = map[rune]Charset{}

// graphic94With26 covers ESC ( / ) / * / + 0x26 <final>.
var graphic94With26 = map[rune]Charset{}

// graphic96 covers ESC - / . / / <final> -- 96-character single-byte sets.
var graphic96 = map[rune]Charset{
	'A': CharsetISOLatin1,
	'B': CharsetISOLatin2,
	'F': CharsetISOLatinGreek,
	'H': CharsetISOLatinCyrillic,
	'L': CharsetISOLatinCyrillic,
	'M': CharsetISOLatin5,
	'V': CharsetISOLatin6,
}

// graphic94N covers ESC $ ( / ) / * / + <final> -- 94^n multibyte sets,
// and also the special exception ESC $ <final> for final in {@, A, B}.
var graphic94N = map[rune]Charset{
	'@': CharsetJISX0208_1978,
	'A': CharsetGB2312,
	'B': CharsetJISX0208_1983,
	'C': CharsetKSC5601,
	'D': CharsetJISX0212,
	'G': CharsetCNS11643_1,
}

// controlC0 covers ESC 0x21 <final> -- C0 control set designation.
var controlC0 = map[rune]Charset{}

// controlC1 covers ESC 0x22 <final> -- C1 control set designation.
var controlC1 = map[rune]Charset{}

// ocsWithReturn covers ESC 0x25 <final> -- other coding system, "with
// return to ISO 2022."
var ocsWithReturn = map[rune]Charset{
	'G': CharsetUTF8,
}

// ocsWithoutReturn covers ESC 0x25 0x2F <final> -- other coding system,
// "without return to ISO 2022."
var ocsWithoutReturn = map[rune]Charset{
	'G': CharsetUTF8,
}

func lookupCharset(table map[rune]Charset, final rune, dflt Charset) Charset {
	if cs, ok := table[final]; ok {
		return cs
	}
	return dflt
}
