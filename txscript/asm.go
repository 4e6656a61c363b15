package txscript

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// AsmPosition is the position of a word within script ASM text. Both indices
// are zero-based; Word is incremented after every run of whitespace and
// restarts on every line.
type AsmPosition struct {
	Line int
	Word int
}

// AsmParseErrorKind describes the way parsing script ASM failed.
type AsmParseErrorKind int

// The kinds of ASM parse failure.
const (
	// AsmErrUnexpectedEOF means the ASM ended where another word was
	// required, e.g. after a push opcode that needs a data argument.
	AsmErrUnexpectedEOF AsmParseErrorKind = iota

	// AsmErrUnknownInstruction means the word could not be interpreted as
	// an opcode, a number, or hex data.
	AsmErrUnknownInstruction

	// AsmErrInvalidHex means a word that had to be hex data did not decode.
	AsmErrInvalidHex

	// AsmErrPushExceedsMaxSize means a byte push was larger than the
	// largest push any opcode can express.
	AsmErrPushExceedsMaxSize

	// AsmErrNonMinimalBytePush means the ASM requested a byte push with a
	// non-minimal length prefix. Such scripts are not necessarily invalid,
	// but this API cannot construct them, so the request is rejected
	// rather than silently reinterpreted.
	AsmErrNonMinimalBytePush
)

// Map of AsmParseErrorKind values to the short human-readable phrase used in
// error messages.
var asmParseErrorKindStrings = map[AsmParseErrorKind]string{
	AsmErrUnexpectedEOF:      "unexpected end of script",
	AsmErrUnknownInstruction: "unknown instruction",
	AsmErrInvalidHex:         "invalid hexadecimal bytes",
	AsmErrPushExceedsMaxSize: "byte push exceeding the maximum push size",
	AsmErrNonMinimalBytePush: "byte push with a non-minimal size prefix",
}

// String returns the AsmParseErrorKind as a short human-readable phrase.
func (k AsmParseErrorKind) String() string {
	if s := asmParseErrorKindStrings[k]; s != "" {
		return s
	}
	return fmt.Sprintf("unknown parse error kind (%d)", int(k))
}

// ParseAsmError describes a failure to parse script ASM. Position is the
// word where parsing diverged from a valid instruction; for errors that
// concern the data argument of a push opcode it is the argument's position
// rather than the opcode's.
type ParseAsmError struct {
	Position AsmPosition
	Kind     AsmParseErrorKind
}

// Error satisfies the error interface.
func (e ParseAsmError) Error() string {
	return fmt.Sprintf("%s at line %d word %d", e.Kind, e.Position.Line,
		e.Position.Word)
}

// OpcodeTable resolves ASM mnemonics for the assembler. It is an interface
// rather than a hard dependency on the package opcode table so that the
// table can be swapped or extended without touching push-size arithmetic.
type OpcodeTable interface {
	// FromName returns the opcode value for the given mnemonic.
	FromName(name string) (byte, bool)

	// IsPushBytes returns whether the opcode directly encodes the length
	// of the data it pushes.
	IsPushBytes(op byte) bool

	// IsPushData returns whether the opcode carries an explicit length
	// header before its data.
	IsPushData(op byte) bool
}

// standardTable adapts the package opcode table to the OpcodeTable interface.
type standardTable struct{}

func (standardTable) FromName(name string) (byte, bool) { return ParseOpcode(name) }
func (standardTable) IsPushBytes(op byte) bool          { return IsPushBytesOpcode(op) }
func (standardTable) IsPushData(op byte) bool           { return IsPushDataOpcode(op) }

// StandardOpcodeTable returns the OpcodeTable backed by the package opcode
// table.
func StandardOpcodeTable() OpcodeTable {
	return standardTable{}
}

// ParseAsm assembles script ASM text into its canonical binary script form
// using the standard opcode table. See ParseAsmWithTable for the dialect.
func ParseAsm(src string) ([]byte, error) {
	return ParseAsmWithTable(src, standardTable{})
}

// ParseAsmWithTable assembles script ASM text into its canonical binary
// script form. The text is newline-delimited; on every line anything from
// the first '#' or the first "//" onward is a comment. Each remaining
// whitespace-delimited word is, in order of priority:
//
//  1. "OP_0", which emits the empty-push opcode directly.
//  2. An opcode mnemonic known to the table. Push opcodes consume the next
//     word as raw hex data and must be the minimal opcode for the decoded
//     length; requesting a non-minimal length prefix is an error since the
//     builder cannot construct one.
//  3. A decimal int64, optionally wrapped in angle brackets, which emits a
//     minimal script number push.
//  4. Hex data, optionally wrapped in angle brackets and optionally "0x"
//     prefixed, which emits a minimal byte push.
//
// Assembly is atomic: either the whole text assembles or an error carrying
// the offending word's position is returned and all partial output is
// discarded.
func ParseAsmWithTable(src string, table OpcodeTable) ([]byte, error) {
	builder := NewScriptBuilder()
	buf := make([]byte, 0, 65)
	words := newAsmTokenizer(src)
	for {
		pos, word, ok := words.next()
		if !ok {
			break
		}

		// We have this special case in our formatter, and the name
		// table cannot resolve the alias uniquely.
		if word == "OP_0" {
			builder.AddOp(Op0)
			continue
		}

		if op, ok := table.FromName(word); ok {
			if !table.IsPushBytes(op) && !table.IsPushData(op) {
				builder.AddOp(op)
				continue
			}

			// The opcode is a byte push, so the next word is its
			// data argument.
			nextPos, push, ok := words.next()
			if !ok {
				return nil, ParseAsmError{pos, AsmErrUnexpectedEOF}
			}
			buf, ok = parseRawHex(push, buf)
			if !ok {
				return nil, ParseAsmError{nextPos, AsmErrInvalidHex}
			}

			// NB our API doesn't actually allow us to make byte
			// pushes with a non-minimal length prefix, so we can
			// only check and error if the user wants a
			// non-minimal push.
			expectedOp, ok := MinimalPushOpcode(len(buf))
			if !ok {
				return nil, ParseAsmError{nextPos, AsmErrPushExceedsMaxSize}
			}
			if op != expectedOp {
				return nil, ParseAsmError{pos, AsmErrNonMinimalBytePush}
			}
			builder.AddData(buf)
			continue
		}

		// Not an opcode, try to interpret as a number or a push.

		if strings.HasPrefix(word, "<") && strings.HasSuffix(word, ">") {
			word = word[1 : len(word)-1]
		}

		// Try a number.
		if i, err := strconv.ParseInt(word, 10, 64); err == nil {
			builder.AddInt64(i)
			continue
		}

		// Finally, try hex in various forms.
		word = strings.TrimPrefix(word, "0x")

		buf, ok = parseRawHex(word, buf)
		if !ok {
			return nil, ParseAsmError{pos, AsmErrUnknownInstruction}
		}
		if _, ok := MinimalPushOpcode(len(buf)); !ok {
			return nil, ParseAsmError{pos, AsmErrPushExceedsMaxSize}
		}
		builder.AddData(buf)
	}

	script, err := builder.Script()
	if err != nil {
		return nil, err
	}

	log.Tracef("assembled %d bytes of script: %s", len(script),
		newLogClosure(func() string {
			return hex.EncodeToString(script)
		}))
	return script, nil
}

// parseRawHex decodes word as raw hex bytes into buf, reusing its backing
// array across calls. It is strict: odd-length words and non-hex digits
// fail, and no prefixes are recognized.
func parseRawHex(word string, buf []byte) ([]byte, bool) {
	need := hex.DecodedLen(len(word))
	if cap(buf) < need {
		buf = make([]byte, need)
	}
	buf = buf[:need]

	n, err := hex.Decode(buf, []byte(word))
	if err != nil {
		return buf[:0], false
	}
	return buf[:n], true
}

// asmTokenizer yields the words of script ASM text along with their
// positions, lazily and in order. On every line the content from the first
// '#' and, independently, from the first "//" is dropped before the line is
// split on runs of whitespace. It is valid for a single pass only.
type asmTokenizer struct {
	rest    string // input not yet broken into lines
	line    string // remainder of the current line
	lineIdx int
	wordIdx int
	done    bool
}

func newAsmTokenizer(src string) *asmTokenizer {
	return &asmTokenizer{rest: src, lineIdx: -1}
}

// next returns the position and text of the next word. The second return is
// false once the input is exhausted.
func (t *asmTokenizer) next() (AsmPosition, string, bool) {
	for {
		t.line = strings.TrimLeftFunc(t.line, unicode.IsSpace)
		if t.line == "" {
			if !t.nextLine() {
				return AsmPosition{}, "", false
			}
			continue
		}

		word := t.line
		if end := strings.IndexFunc(t.line, unicode.IsSpace); end >= 0 {
			word = t.line[:end]
		}
		t.line = t.line[len(word):]

		pos := AsmPosition{Line: t.lineIdx, Word: t.wordIdx}
		t.wordIdx++
		return pos, word, true
	}
}

// nextLine advances to the next line of the input, strips comments and
// resets the word counter. It returns false once there are no lines left.
func (t *asmTokenizer) nextLine() bool {
	if t.done {
		return false
	}

	line := t.rest
	if idx := strings.IndexByte(t.rest, '\n'); idx >= 0 {
		line = t.rest[:idx]
		t.rest = t.rest[idx+1:]
	} else {
		t.rest = ""
		t.done = true
	}
	line = strings.TrimSuffix(line, "\r")

	// Both comment markers truncate independently; the effective content
	// is the prefix before whichever marker occurs first.
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	if idx := strings.Index(line, "//"); idx >= 0 {
		line = line[:idx]
	}

	t.line = line
	t.lineIdx++
	t.wordIdx = 0
	return true
}
