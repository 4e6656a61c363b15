// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error. This is only provided for the hard-coded constants so
// errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// TestWriteScriptInt ensures encoding integers into script number format
// produces the expected minimal bytes, including the extra sign byte around
// the sign-bit boundary.
func TestWriteScriptInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		num        int64
		serialized []byte
	}{
		{0, nil},
		{1, hexToBytes("01")},
		{-1, hexToBytes("81")},
		{127, hexToBytes("7f")},
		{-127, hexToBytes("ff")},
		{128, hexToBytes("8000")},
		{-128, hexToBytes("8080")},
		{129, hexToBytes("8100")},
		{-129, hexToBytes("8180")},
		{255, hexToBytes("ff00")},
		{-255, hexToBytes("ff80")},
		{256, hexToBytes("0001")},
		{-256, hexToBytes("0081")},
		{32767, hexToBytes("ff7f")},
		{-32767, hexToBytes("ffff")},
		{32768, hexToBytes("008000")},
		{-32768, hexToBytes("008080")},
		{65535, hexToBytes("ffff00")},
		{-65535, hexToBytes("ffff80")},
		{524288, hexToBytes("000008")},
		{-524288, hexToBytes("000088")},
		{7340032, hexToBytes("000070")},
		{-7340032, hexToBytes("0000f0")},
		{8388608, hexToBytes("00008000")},
		{-8388608, hexToBytes("00008080")},
		{2147483647, hexToBytes("ffffff7f")},
		{-2147483647, hexToBytes("ffffffff")},

		// Values that are out of range for data that is interpreted as
		// numbers by the default 4-byte cap, but are still valid to
		// serialize.
		{2147483648, hexToBytes("0000008000")},
		{-2147483648, hexToBytes("0000008080")},
		{2415919104, hexToBytes("0000009000")},
		{-2415919104, hexToBytes("0000009080")},
		{4294967295, hexToBytes("ffffffff00")},
		{-4294967295, hexToBytes("ffffffff80")},
		{4294967296, hexToBytes("0000000001")},
		{-4294967296, hexToBytes("0000000081")},
		{281474976710655, hexToBytes("ffffffffffff00")},
		{-281474976710655, hexToBytes("ffffffffffff80")},
		{72057594037927935, hexToBytes("ffffffffffffff00")},
		{-72057594037927935, hexToBytes("ffffffffffffff80")},
		{9223372036854775807, hexToBytes("ffffffffffffff7f")},
		{-9223372036854775807, hexToBytes("ffffffffffffffff")},
	}

	for _, test := range tests {
		var buf [8]byte
		n := WriteScriptInt(&buf, test.num)
		if !bytes.Equal(buf[:n], test.serialized) {
			t.Errorf("WriteScriptInt: did not get expected bytes "+
				"for %d - got %x, want %x", test.num, buf[:n],
				test.serialized)
			continue
		}

		gotVec := ScriptIntBytes(test.num)
		if !bytes.Equal(gotVec, test.serialized) {
			t.Errorf("ScriptIntBytes: did not get expected bytes "+
				"for %d - got %x, want %x", test.num, gotVec,
				test.serialized)
		}
	}
}

// TestWriteScriptIntDeterministic ensures the encoder is a pure function of
// its input.
func TestWriteScriptIntDeterministic(t *testing.T) {
	t.Parallel()

	for _, num := range []int64{0, 1, -1, 255, -255, 888888, -2147483647} {
		first := ScriptIntBytes(num)
		second := ScriptIntBytes(num)
		if !bytes.Equal(first, second) {
			t.Fatalf("encoding %d twice produced %x and %x", num,
				first, second)
		}
	}
}

// TestReadScriptIntSize ensures decoding data interpreted as script numbers
// works as expected across minimality and width policies.
func TestReadScriptIntSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		serialized []byte
		maxSize    int
		minimal    bool
		num        int64
		err        error
	}{
		// Minimally encoded valid values within the default 4-byte cap.
		{nil, DefaultScriptNumLen, true, 0, nil},
		{hexToBytes("01"), DefaultScriptNumLen, true, 1, nil},
		{hexToBytes("81"), DefaultScriptNumLen, true, -1, nil},
		{hexToBytes("7f"), DefaultScriptNumLen, true, 127, nil},
		{hexToBytes("8080"), DefaultScriptNumLen, true, -128, nil},
		{hexToBytes("ff00"), DefaultScriptNumLen, true, 255, nil},
		{hexToBytes("ff80"), DefaultScriptNumLen, true, -255, nil},
		{hexToBytes("0001"), DefaultScriptNumLen, true, 256, nil},
		{hexToBytes("ff7f"), DefaultScriptNumLen, true, 32767, nil},
		{hexToBytes("008000"), DefaultScriptNumLen, true, 32768, nil},
		{hexToBytes("ffffff7f"), DefaultScriptNumLen, true, 2147483647, nil},
		{hexToBytes("ffffffff"), DefaultScriptNumLen, true, -2147483647, nil},

		// Minimally encoded values exercising a non-default width cap.
		{hexToBytes("0000008000"), 5, true, 2147483648, nil},
		{hexToBytes("ffffffffffffff7f"), 8, true, 9223372036854775807, nil},
		{hexToBytes("ffffffffffffffff"), 8, true, -9223372036854775807, nil},

		// Values above the width cap.
		{hexToBytes("0000008000"), DefaultScriptNumLen, true, 0, ErrScriptNumOverflow},
		{hexToBytes("0000008080"), DefaultScriptNumLen, false, 0, ErrScriptNumOverflow},
		{hexToBytes("ffffffffffffff7fff"), 8, true, 0, ErrScriptNumOverflow},

		// Non-minimally encoded, but otherwise valid values with
		// minimal encoding required.
		{hexToBytes("00"), DefaultScriptNumLen, true, 0, ErrScriptNumMinimalData},
		{hexToBytes("80"), DefaultScriptNumLen, true, 0, ErrScriptNumMinimalData},
		{hexToBytes("0100"), DefaultScriptNumLen, true, 0, ErrScriptNumMinimalData},
		{hexToBytes("0180"), DefaultScriptNumLen, true, 0, ErrScriptNumMinimalData},
		{hexToBytes("010000"), DefaultScriptNumLen, true, 0, ErrScriptNumMinimalData},
		{hexToBytes("ff000000"), DefaultScriptNumLen, true, 0, ErrScriptNumMinimalData},

		// Non-minimally encoded values with minimal encoding not
		// required.
		{hexToBytes("00"), DefaultScriptNumLen, false, 0, nil},
		{hexToBytes("80"), DefaultScriptNumLen, false, 0, nil},
		{hexToBytes("0100"), DefaultScriptNumLen, false, 1, nil},
		{hexToBytes("0180"), DefaultScriptNumLen, false, -1, nil},
		{hexToBytes("ff000000"), DefaultScriptNumLen, false, 255, nil},
	}

	for _, test := range tests {
		num, err := ReadScriptIntSize(test.serialized, test.maxSize,
			test.minimal)
		if !errors.Is(err, test.err) {
			t.Errorf("ReadScriptIntSize(%x, %d, %t): unexpected "+
				"error - got %v, want %v", test.serialized,
				test.maxSize, test.minimal, err, test.err)
			continue
		}
		if err != nil {
			continue
		}

		if num != test.num {
			t.Errorf("ReadScriptIntSize(%x, %d, %t): did not get "+
				"expected number - got %d, want %d",
				test.serialized, test.maxSize, test.minimal,
				num, test.num)
		}
	}
}

// TestReadScriptIntSizePanics ensures width caps beyond what an int64 can
// hold are rejected outright.
func TestReadScriptIntSizePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("ReadScriptIntSize did not panic on maxSize 9")
		}
	}()
	_, _ = ReadScriptIntSize(hexToBytes("01"), 9, true)
}

// TestReadScriptIntErrorMapping ensures the boundary wrapper translates the
// codec's local errors into the script error taxonomy.
func TestReadScriptIntErrorMapping(t *testing.T) {
	t.Parallel()

	_, err := ReadScriptInt(hexToBytes("00"), DefaultScriptNumLen, true)
	if !IsErrorCode(err, ErrMinimalData) {
		t.Errorf("non-minimal push mapped to %v, want ErrMinimalData", err)
	}

	_, err = ReadScriptInt(hexToBytes("0000008000"), DefaultScriptNumLen, true)
	if !IsErrorCode(err, ErrNumberTooBig) {
		t.Errorf("oversized number mapped to %v, want ErrNumberTooBig", err)
	}

	num, err := ReadScriptIntNonMinimal(hexToBytes("0100"), DefaultScriptNumLen)
	if err != nil {
		t.Fatalf("ReadScriptIntNonMinimal: unexpected error %v", err)
	}
	if num != 1 {
		t.Errorf("ReadScriptIntNonMinimal: got %d, want 1", num)
	}
}

// TestScriptIntRoundTrip ensures every value within the 4-byte range
// round-trips through the codec. Values needing more than 4 bytes
// deliberately do not round-trip through the default entry point; that
// mirrors Bitcoin Core and is asserted separately.
func TestScriptIntRoundTrip(t *testing.T) {
	t.Parallel()

	values := []int64{
		0, 1, -1, 2, -2, 16, -16, 17, -17, 127, -127, 128, -128,
		255, -255, 256, -256, 32767, -32767, 32768, -32768,
		65535, -65535, 65536, -65536, 8388607, -8388607,
		8388608, -8388608, 2147483646, -2147483646,
		2147483647, -2147483647,
	}
	for _, num := range values {
		got, err := ReadScriptInt(ScriptIntBytes(num),
			DefaultScriptNumLen, true)
		if err != nil {
			t.Errorf("round trip of %d: unexpected error %v", num, err)
			continue
		}
		if got != num {
			t.Errorf("round trip of %d: got %d", num, got)
		}
	}

	// 2^31 needs 5 bytes, which the default cap rejects on the way back.
	_, err := ReadScriptInt(ScriptIntBytes(2147483648),
		DefaultScriptNumLen, true)
	if !IsErrorCode(err, ErrNumberTooBig) {
		t.Errorf("5-byte value read back with default cap: got %v, "+
			"want ErrNumberTooBig", err)
	}
}
