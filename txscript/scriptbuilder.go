// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

const (
	// defaultScriptAlloc is the default size used for the backing array
	// for a script being built by the ScriptBuilder. The array will
	// dynamically grow as needed, but this figure is intended to provide
	// enough space for the vast majority of scripts without needing to
	// grow the backing array multiple times.
	defaultScriptAlloc = 500

	// maxDataPushLen is the largest payload a single data push can carry.
	// OP_PUSHDATA4 encodes the length in four bytes, so anything larger
	// has no valid length-prefix form.
	maxDataPushLen = 0xffffffff
)

// ErrScriptNotCanonical identifies a non-canonical script. The caller can
// use a type assertion to detect this error type.
type ErrScriptNotCanonical string

// Error implements the error interface.
func (e ErrScriptNotCanonical) Error() string {
	return string(e)
}

// ScriptBuilder provides a facility for building custom scripts. It allows
// you to push opcodes, ints, and data while respecting minimal data-push
// encoding. It does not ensure the script will execute correctly; it only
// guarantees that every push it emits uses the shortest valid length-prefix
// form, since the API deliberately has no way to request a non-minimal one.
//
// For example, the following would build a 2-of-3 multisig script for usage
// in a pay-to-script-hash:
//
//	builder := txscript.NewScriptBuilder()
//	builder.AddOp(txscript.Op2).AddData(pubKey1).AddData(pubKey2)
//	builder.AddData(pubKey3).AddOp(txscript.Op3)
//	builder.AddOp(txscript.OpCheckMultiSig)
//	script, err := builder.Script()
//	if err != nil {
//		// Handle the error.
//		return
//	}
type ScriptBuilder struct {
	script []byte
	err    error
}

// NewScriptBuilder returns a new instance of a script builder. See
// ScriptBuilder for details.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{
		script: make([]byte, 0, defaultScriptAlloc),
	}
}

// AddOp pushes the passed opcode to the end of the script.
func (b *ScriptBuilder) AddOp(opcode byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	b.script = append(b.script, opcode)
	return b
}

// AddOps pushes the passed opcodes to the end of the script.
func (b *ScriptBuilder) AddOps(opcodes []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	b.script = append(b.script, opcodes...)
	return b
}

// MinimalPushOpcode returns the opcode of the shortest length-prefix form
// that pushes dataLen bytes of data: a direct OP_PUSHBYTES_# for anything
// under the OP_PUSHDATA1 threshold, then the smallest OP_PUSHDATA# whose
// length header fits. It returns false when dataLen cannot be expressed by
// any push opcode.
func MinimalPushOpcode(dataLen int) (byte, bool) {
	switch {
	case dataLen < OpPushData1:
		return byte(dataLen), true
	case dataLen <= 0xff:
		return OpPushData1, true
	case dataLen <= 0xffff:
		return OpPushData2, true
	case int64(dataLen) <= maxDataPushLen:
		return OpPushData4, true
	default:
		return 0, false
	}
}

// AddData pushes the passed data to the end of the script. It automatically
// chooses the minimal length-prefix form: zero bytes become the single empty
// push opcode, anything under the OP_PUSHDATA1 threshold uses the direct
// push opcode for its exact length, and larger payloads use the smallest
// OP_PUSHDATA# header that fits. Data that is too large for any push opcode
// poisons the builder and causes Script to return an error.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	dataLen := len(data)
	op, ok := MinimalPushOpcode(dataLen)
	if !ok {
		str := fmt.Sprintf("adding a data push of %d bytes exceeds "+
			"the maximum push size of %d", dataLen, maxDataPushLen)
		b.err = ErrScriptNotCanonical(str)
		return b
	}

	switch {
	case IsPushBytesOpcode(op):
		b.script = append(b.script, op)
	case op == OpPushData1:
		b.script = append(b.script, OpPushData1, byte(dataLen))
	case op == OpPushData2:
		b.script = append(b.script, OpPushData2, byte(dataLen),
			byte(dataLen>>8))
	default:
		b.script = append(b.script, OpPushData4, byte(dataLen),
			byte(dataLen>>8), byte(dataLen>>16), byte(dataLen>>24))
	}

	b.script = append(b.script, data...)
	return b
}

// AddInt64 pushes the passed integer to the end of the script using the
// shortest form: OP_0 for zero, the small integer opcodes OP_1NEGATE and
// OP_1 through OP_16 for the values they represent, and a minimal script
// number data push for everything else.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Fast path for small integers and Op1Negate.
	if val == 0 {
		return b.AddOp(Op0)
	}
	if val == -1 || (val >= 1 && val <= 16) {
		return b.AddOp(byte((Op1 - 1) + val))
	}

	return b.AddData(ScriptIntBytes(val))
}

// AddLockTime pushes the sequence-number form of the passed relative lock
// time to the end of the script, for use ahead of OP_CHECKSEQUENCEVERIFY.
func (b *ScriptBuilder) AddLockTime(lockTime LockTime) *ScriptBuilder {
	return b.AddInt64(int64(lockTime.Num()))
}

// Reset resets the script so it has no content.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.script = b.script[0:0]
	b.err = nil
	return b
}

// Script returns the currently built script. When any errors occurred while
// building the script, the script will be returned up the point of the first
// error along with the error.
func (b *ScriptBuilder) Script() ([]byte, error) {
	return b.script, b.err
}
