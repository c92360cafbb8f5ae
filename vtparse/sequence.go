package vtparse

// Type classifies what a Feed call produced. It mirrors the VT500-style
// parser's output alphabet: either the parser is still accumulating
// (NONE) or it has a fully decoded unit to hand back.
type Type uint8

const (
	TypeNone Type = iota
	TypeIgnore
	TypeGraphic
	TypeControl
	TypeEscape
	TypeCSI
	TypeDCS
	TypeOSC
	TypeSOS
	TypePM
	TypeAPC
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "NONE"
	case TypeIgnore:
		return "IGNORE"
	case TypeGraphic:
		return "GRAPHIC"
	case TypeControl:
		return "CONTROL"
	case TypeEscape:
		return "ESCAPE"
	case TypeCSI:
		return "CSI"
	case TypeDCS:
		return "DCS"
	case TypeOSC:
		return "OSC"
	case TypeSOS:
		return "SOS"
	case TypePM:
		return "PM"
	case TypeAPC:
		return "APC"
	default:
		return "UNKNOWN"
	}
}

// Command is a symbolic identifier for a known control function. The
// zero value, CmdNone, means the classification matched a phase of the
// grammar but no specific function is assigned to it.
type Command uint16

const (
	CmdNone Command = iota

	// C0 controls
	CmdNUL
	CmdENQ
	CmdBEL
	CmdBS
	CmdTAB
	CmdLF
	CmdVT
	CmdFF
	CmdCR
	CmdSO
	CmdSI
	CmdDC1
	CmdDC3
	CmdCAN
	CmdSUB

	// C1 controls and their 7-bit ESC aliases
	CmdIND
	CmdNEL
	CmdHTS
	CmdRI
	CmdSS2
	CmdSS3
	CmdDECID
	CmdSPA
	CmdEPA
	CmdST

	// bare ESC Fp/Ft sequences
	CmdDECSC
	CmdDECRC
	CmdRIS

	// ISO-2022 designation commands
	CmdGnDm
	CmdGnDMm
	CmdCnD
	CmdDOCS

	// printable input
	CmdGRAPHIC

	// CSI commands
	CmdICH
	CmdCUU
	CmdCUD
	CmdCUF
	CmdCUB
	CmdCNL
	CmdCPL
	CmdCHA
	CmdCUP
	CmdCHT
	CmdED
	CmdEL
	CmdDL
	CmdSU
	CmdSD
	CmdDECST8C
	CmdECH
	CmdCBT
	CmdHPA
	CmdHPR
	CmdDA
	CmdVPA
	CmdVPR
	CmdHVP
	CmdTBC
	CmdSM
	CmdRM
	CmdSGR
	CmdDSR
	CmdDECSTBM
	CmdDECSLRM
	CmdXTWINOPS
)

// Charset is a closed enumeration of ISO-2022 designatable character
// sets. NONE means no specific charset is assigned to the (intermediates,
// final) pair; DRCS means the designation selects a dynamically
// redefinable (soft) font rather than a fixed set.
type Charset uint16

const (
	CharsetNONE Charset = iota
	CharsetDRCS

	// 94-character single-byte sets (graphic_94)
	CharsetASCII
	CharsetBritish
	CharsetDutch
	CharsetFinnish
	CharsetFrench
	CharsetFrenchCanadian
	CharsetGerman
	CharsetItalian
	CharsetNorwegianDanish
	CharsetPortuguese
	CharsetSpanish
	CharsetSwedish
	CharsetSwiss
	CharsetDECSpecialGraphics
	CharsetDECSupplemental
	CharsetDECTechnical
	CharsetDECUserPreferredSupplemental

	// 96-character single-byte sets (graphic_96)
	CharsetISOLatin1
	CharsetISOLatin2
	CharsetISOLatinCyrillic
	CharsetISOLatinGreek
	CharsetISOLatinHebrew
	CharsetISOLatin5
	CharsetISOLatin6

	// 94^n multibyte sets (graphic_94_n)
	CharsetJISX0208_1978
	CharsetGB2312
	CharsetJISX0208_1983
	CharsetKSC5601
	CharsetJISX0212
	CharsetCNS11643_1

	// other coding systems (DOCS)
	CharsetUTF8
)

// MaxArgs bounds the number of arguments tracked per sequence. Excess
// parameters beyond this still increment NArgs, but are folded into the
// last slot.
const MaxArgs = 16

// Sequence is the unit a Parser hands back on a non-NONE Feed call. The
// Parser owns exactly one Sequence buffer; its contents are valid only
// until the next Feed or Reset call.
type Sequence struct {
	Type       Type
	Command    Command
	Terminator rune

	// Intermediates is a bitmask over code points 0x20..0x2F: bit
	// (c - 0x20) is set iff c occurred between the introducer and the
	// terminator. A CSI parameter-prefix byte (0x3C..0x3F) also sets
	// a bit in this mask, at position (p - 0x20).
	Intermediates uint32

	Args       [MaxArgs]Arg
	NArgs      int
	NFinalArgs int

	Charset Charset

	// Data accumulates the string body of a DCS or OSC sequence while
	// Feed keeps returning TypeNone for each data byte. It is fully
	// populated by the time Feed returns TypeDCS or TypeOSC. Every
	// other Type leaves Data empty.
	Data []rune
}

func (s *Sequence) clear() {
	s.Type = TypeNone
	s.Command = CmdNone
	s.Terminator = 0
	s.Intermediates = 0
	for i := range s.Args {
		s.Args[i] = Arg(0)
	}
	s.NArgs = 0
	s.NFinalArgs = 0
	s.Charset = CharsetNONE
	s.Data = s.Data[:0]
}

// intermediateBit reports whether bit (c - 0x20) is set in mask, for c
// in 0x20..0x3F (covers both real intermediates and the CSI parameter
// prefix range).
func intermediateBit(mask uint32, c rune) bool {
	if c < 0x20 || c > 0x3f {
		return false
	}
	return mask&(1<<uint32(c-0x20)) != 0
}
