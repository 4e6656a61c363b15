// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"
)

// TestScriptBuilderAddOp ensures pushing opcodes works as expected.
func TestScriptBuilderAddOp(t *testing.T) {
	t.Parallel()

	builder := NewScriptBuilder()
	builder.AddOp(OpDup).AddOp(OpHash160)
	script, err := builder.Script()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := hexToBytes("76a9"); !bytes.Equal(script, want) {
		t.Errorf("unexpected script - got %x, want %x", script, want)
	}

	builder.Reset().AddOps(hexToBytes("8887"))
	script, err = builder.Script()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := hexToBytes("8887"); !bytes.Equal(script, want) {
		t.Errorf("unexpected script after reset - got %x, want %x",
			script, want)
	}
}

// TestScriptBuilderAddInt64 ensures pushing signed integers to a script via
// the builder uses the shortest form.
func TestScriptBuilderAddInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		val      int64
		expected []byte
	}{
		{name: "push -1", val: -1, expected: []byte{Op1Negate}},
		{name: "push small int 0", val: 0, expected: []byte{Op0}},
		{name: "push small int 1", val: 1, expected: []byte{Op1}},
		{name: "push small int 16", val: 16, expected: []byte{Op16}},
		{name: "push 17", val: 17, expected: hexToBytes("0111")},
		{name: "push -2", val: -2, expected: hexToBytes("0182")},
		{name: "push 127", val: 127, expected: hexToBytes("017f")},
		{name: "push 128", val: 128, expected: hexToBytes("028000")},
		{name: "push 255", val: 255, expected: hexToBytes("02ff00")},
		{name: "push 256", val: 256, expected: hexToBytes("020001")},
		{name: "push -255", val: -255, expected: hexToBytes("02ff80")},
		{name: "push 32767", val: 32767, expected: hexToBytes("02ff7f")},
		{name: "push 65535", val: 65535, expected: hexToBytes("03ffff00")},
		{name: "push 2147483647", val: 2147483647,
			expected: hexToBytes("04ffffff7f")},
		{name: "push -2147483647", val: -2147483647,
			expected: hexToBytes("04ffffffff")},
	}

	builder := NewScriptBuilder()
	for _, test := range tests {
		builder.Reset().AddInt64(test.val)
		script, err := builder.Script()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if !bytes.Equal(script, test.expected) {
			t.Errorf("%s: unexpected script - got %x, want %x",
				test.name, script, test.expected)
		}
	}
}

// TestScriptBuilderAddData ensures data pushes use the minimal length-prefix
// form for every length class and never the small integer opcodes.
func TestScriptBuilderAddData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected []byte
	}{
		{name: "push empty", data: nil, expected: []byte{Op0}},
		// A length-prefix push, not OP_1: callers that want small int
		// opcodes use AddInt64.
		{name: "push 1 byte 0x01", data: hexToBytes("01"),
			expected: hexToBytes("0101")},
		{name: "push 1 byte 0xff", data: hexToBytes("ff"),
			expected: hexToBytes("01ff")},
		{name: "push 75 bytes", data: bytes.Repeat(hexToBytes("49"), 75),
			expected: append(hexToBytes("4b"),
				bytes.Repeat(hexToBytes("49"), 75)...)},
		{name: "push 76 bytes", data: bytes.Repeat(hexToBytes("49"), 76),
			expected: append(hexToBytes("4c4c"),
				bytes.Repeat(hexToBytes("49"), 76)...)},
		{name: "push 255 bytes", data: bytes.Repeat(hexToBytes("49"), 255),
			expected: append(hexToBytes("4cff"),
				bytes.Repeat(hexToBytes("49"), 255)...)},
		{name: "push 256 bytes", data: bytes.Repeat(hexToBytes("49"), 256),
			expected: append(hexToBytes("4d0001"),
				bytes.Repeat(hexToBytes("49"), 256)...)},
		{name: "push 65535 bytes", data: bytes.Repeat(hexToBytes("49"), 65535),
			expected: append(hexToBytes("4dffff"),
				bytes.Repeat(hexToBytes("49"), 65535)...)},
		{name: "push 65536 bytes", data: bytes.Repeat(hexToBytes("49"), 65536),
			expected: append(hexToBytes("4e00000100"),
				bytes.Repeat(hexToBytes("49"), 65536)...)},
	}

	builder := NewScriptBuilder()
	for _, test := range tests {
		builder.Reset().AddData(test.data)
		script, err := builder.Script()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if !bytes.Equal(script, test.expected) {
			t.Errorf("%s: unexpected script - got %x..., want %x...",
				test.name, script[:minInt(len(script), 10)],
				test.expected[:minInt(len(test.expected), 10)])
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// TestScriptBuilderAddLockTime ensures relative lock times push their
// sequence-number form.
func TestScriptBuilderAddLockTime(t *testing.T) {
	t.Parallel()

	heightLock, ok := LockTimeFromNum(144)
	if !ok {
		t.Fatal("failed to decode height lock time")
	}
	timeLock, ok := LockTimeFromNum(int64(SequenceLockTimeIsSeconds | 5))
	if !ok {
		t.Fatal("failed to decode time lock time")
	}

	script, err := NewScriptBuilder().
		AddLockTime(heightLock).
		AddOp(OpCheckSequenceVerify).
		Script()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := hexToBytes("029000b2"); !bytes.Equal(script, want) {
		t.Errorf("unexpected script - got %x, want %x", script, want)
	}

	script, err = NewScriptBuilder().AddLockTime(timeLock).Script()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 0x00400005 encodes as the 3-byte script number 05 00 40.
	if want := hexToBytes("03050040"); !bytes.Equal(script, want) {
		t.Errorf("unexpected script - got %x, want %x", script, want)
	}
}
