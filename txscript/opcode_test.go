// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
	"testing"
)

// TestOpcodeTableConsistency ensures every opcode array entry agrees with
// its index and that names resolve back to their values.
func TestOpcodeTableConsistency(t *testing.T) {
	t.Parallel()

	for i, op := range opcodeArray {
		if int(op.value) != i {
			t.Errorf("opcode entry %d has mismatched value %d", i,
				op.value)
		}
		if op.name == "" {
			t.Errorf("opcode entry %d has no name", i)
			continue
		}
		resolved, ok := ParseOpcode(op.name)
		if !ok || resolved != op.value {
			t.Errorf("name %q resolves to %d (%t), want %d", op.name,
				resolved, ok, op.value)
		}
	}
}

// TestOpcodeAliases ensures the registered mnemonic aliases resolve to the
// expected opcode values.
func TestOpcodeAliases(t *testing.T) {
	t.Parallel()

	aliases := map[string]byte{
		"OP_FALSE": Op0,
		"OP_TRUE":  Op1,
		"OP_NOP2":  OpCheckLockTimeVerify,
		"OP_NOP3":  OpCheckSequenceVerify,
	}
	for i := 1; i <= 75; i++ {
		aliases[fmt.Sprintf("OP_DATA_%d", i)] = byte(i)
	}

	for name, want := range aliases {
		got, ok := ParseOpcode(name)
		if !ok {
			t.Errorf("alias %q did not resolve", name)
			continue
		}
		if got != want {
			t.Errorf("alias %q resolved to %#x, want %#x", name, got,
				want)
		}
	}

	if _, ok := ParseOpcode("OP_BOGUS"); ok {
		t.Error("unknown mnemonic resolved")
	}
}

// TestPushOpcodePredicates ensures the push classification boundaries.
func TestPushOpcodePredicates(t *testing.T) {
	t.Parallel()

	for op := 0; op < 256; op++ {
		wantPushBytes := op <= OpData75
		if got := IsPushBytesOpcode(byte(op)); got != wantPushBytes {
			t.Errorf("IsPushBytesOpcode(%#x) = %t, want %t", op, got,
				wantPushBytes)
		}

		wantPushData := op == OpPushData1 || op == OpPushData2 ||
			op == OpPushData4
		if got := IsPushDataOpcode(byte(op)); got != wantPushData {
			t.Errorf("IsPushDataOpcode(%#x) = %t, want %t", op, got,
				wantPushData)
		}
	}
}

// TestMinimalPushOpcode ensures the minimal opcode derivation across the
// length class boundaries.
func TestMinimalPushOpcode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dataLen int
		op      byte
	}{
		{0, Op0},
		{1, OpData1},
		{75, OpData75},
		{76, OpPushData1},
		{255, OpPushData1},
		{256, OpPushData2},
		{65535, OpPushData2},
		{65536, OpPushData4},
	}
	for _, test := range tests {
		op, ok := MinimalPushOpcode(test.dataLen)
		if !ok {
			t.Errorf("MinimalPushOpcode(%d) unexpectedly failed",
				test.dataLen)
			continue
		}
		if op != test.op {
			t.Errorf("MinimalPushOpcode(%d) = %#x, want %#x",
				test.dataLen, op, test.op)
		}
	}
}
