// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// parsedOpcode represents one instruction of a parsed script: the opcode and
// the data it pushes, if any.
type parsedOpcode struct {
	opcode *opcode
	data   []byte
}

// parseScript parses the binary script into its constituent instructions.
// When the script ends in the middle of a push, the instructions parsed up
// to that point are returned along with an ErrMalformedPush error.
func parseScript(script []byte) ([]parsedOpcode, error) {
	retScript := make([]parsedOpcode, 0, len(script))
	for i := 0; i < len(script); {
		instr := script[i]
		op := &opcodeArray[instr]
		pop := parsedOpcode{opcode: op}

		switch {
		// No additional data. Note that some of the opcodes, notably
		// OP_1NEGATE, OP_0, and OP_[1-16] represent the data
		// themselves.
		case op.length == 1:
			i++

		// Data pushes of specific lengths -- OP_PUSHBYTES_[1-75].
		case op.length > 1:
			if len(script[i:]) < op.length {
				str := fmt.Sprintf("opcode %s requires %d "+
					"bytes, but script only has %d remaining",
					op.name, op.length, len(script[i:]))
				return retScript, scriptError(ErrMalformedPush, str)
			}
			pop.data = script[i+1 : i+op.length]
			i += op.length

		// Data pushes with parsed lengths -- OP_PUSHDATA{1,2,4}.
		case op.length < 0:
			off := i + 1
			if len(script[off:]) < -op.length {
				str := fmt.Sprintf("opcode %s requires %d "+
					"bytes, but script only has %d remaining",
					op.name, -op.length, len(script[off:]))
				return retScript, scriptError(ErrMalformedPush, str)
			}

			// Next -length bytes are little endian length of data.
			var l int
			switch op.length {
			case -1:
				l = int(script[off])
			case -2:
				l = int(script[off]) | int(script[off+1])<<8
			case -4:
				l = int(script[off]) | int(script[off+1])<<8 |
					int(script[off+2])<<16 | int(script[off+3])<<24
			}

			off += -op.length
			if l < 0 || l > len(script[off:]) {
				str := fmt.Sprintf("opcode %s pushes %d bytes, "+
					"but script only has %d remaining",
					op.name, l, len(script[off:]))
				return retScript, scriptError(ErrMalformedPush, str)
			}
			pop.data = script[off : off+l]
			i = off + l
		}

		retScript = append(retScript, pop)
	}

	return retScript, nil
}

// DisasmString formats a disassembled script for one line printing. Byte
// pushes print as the push opcode's mnemonic followed by the data in hex, so
// the output reassembles through ParseAsm to the exact input bytes. When the
// script fails to parse, the returned string contains the disassembled
// script up to the point the failure occurred along with the string
// "[error]" appended, and the error is returned.
func DisasmString(script []byte) (string, error) {
	var disbuf strings.Builder
	instructions, err := parseScript(script)
	for _, pop := range instructions {
		disasmOpcode(&disbuf, pop)
		disbuf.WriteByte(' ')
	}
	if err != nil {
		disbuf.WriteString("[error]")
	}
	return strings.TrimRight(disbuf.String(), " "), err
}

// disasmOpcode writes a single instruction to buf in the same dialect
// ParseAsm consumes.
func disasmOpcode(buf *strings.Builder, pop parsedOpcode) {
	buf.WriteString(pop.opcode.name)
	if pop.data != nil {
		buf.WriteByte(' ')
		buf.WriteString(hex.EncodeToString(pop.data))
	}
}
