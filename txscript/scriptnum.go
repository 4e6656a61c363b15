// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"github.com/pkg/errors"
)

// DefaultScriptNumLen is the default maximum number of bytes data being
// interpreted as an integer may be for the majority of opcodes.
const DefaultScriptNumLen = 4

// maxScriptNumLen is the absolute maximum width ReadScriptIntSize accepts.
// Anything wider cannot be represented by an int64 magnitude plus sign bit.
const maxScriptNumLen = 8

// Errors returned by the scriptnum codec. They are deliberately narrower
// than the script Error taxonomy so that the codec stays usable outside a
// script-execution context; ReadScriptInt maps them at the boundary.
var (
	// ErrScriptNumMinimalData is returned when an encoding is not the
	// smallest possible representation of its value. For more information
	// see
	// https://github.com/bitcoin/bips/blob/master/bip-0062.mediawiki#push-operators
	ErrScriptNumMinimalData = errors.New("non-minimal datapush")

	// ErrScriptNumOverflow is returned when data being interpreted as a
	// number is wider than the allowed maximum.
	ErrScriptNumOverflow = errors.New("numeric overflow (number on stack " +
		"larger than max allowed size)")
)

// WriteScriptInt encodes n into out in script number format: the minimal
// little-endian representation of the magnitude with the sign carried in the
// high bit of the final byte. It returns the number of bytes written. Zero
// encodes as zero bytes.
//
// Note that WriteScriptInt/ReadScriptInt do not roundtrip if the value
// written requires more than 4 bytes. This is in line with Bitcoin Core's
// CScriptNum::serialize and is required for interoperability, so it must not
// be "fixed".
func WriteScriptInt(out *[8]byte, n int64) int {
	if n == 0 {
		return 0
	}

	isNegative := n < 0
	abs := uint64(n)
	if isNegative {
		abs = -abs
	}

	length := 0
	for abs > 0xff {
		out[length] = byte(abs & 0xff)
		length++
		abs >>= 8
	}

	// When the most significant byte already has the high bit set, an
	// additional byte is required to carry the sign, otherwise its high
	// bit would corrupt the value when decoding.
	if abs&0x80 != 0 {
		out[length] = byte(abs)
		length++
		if isNegative {
			out[length] = 0x80
		} else {
			out[length] = 0x00
		}
		length++
		return length
	}

	// Otherwise the sign bit rides on the last magnitude byte itself.
	if isNegative {
		abs |= 0x80
	}
	out[length] = byte(abs)
	length++
	return length
}

// ScriptIntBytes returns the minimal script number encoding of n as a freshly
// allocated byte slice.
func ScriptIntBytes(n int64) []byte {
	var buf [8]byte
	length := WriteScriptInt(&buf, n)
	out := make([]byte, length)
	copy(out, buf[:length])
	return out
}

// ReadScriptIntSize interprets v as a script number with a flexible size
// limit. When minimal is true, encodings that are not the smallest possible
// representation of their value are rejected with ErrScriptNumMinimalData.
// Data wider than maxSize bytes is rejected with ErrScriptNumOverflow. An
// empty slice decodes to zero.
//
// In the majority of cases callers want ReadScriptInt or
// ReadScriptIntNonMinimal instead.
//
// Panics if maxSize exceeds 8.
func ReadScriptIntSize(v []byte, maxSize int, minimal bool) (int64, error) {
	if maxSize > maxScriptNumLen {
		panic(fmt.Sprintf("invalid script number max size %d", maxSize))
	}

	if len(v) > maxSize {
		return 0, errors.WithStack(ErrScriptNumOverflow)
	}

	if len(v) == 0 {
		return 0, nil
	}

	if minimal {
		// Comment and check copied from Bitcoin Core: if the
		// most-significant-byte - excluding the sign bit - is zero
		// then the encoding is not minimal. Note how this test also
		// rejects the negative-zero encoding, [0x80].
		last := v[len(v)-1]
		if last&0x7f == 0 {
			// One exception: if there's more than one byte and the
			// most significant bit of the second-most-significant
			// byte is set it would conflict with the sign bit. An
			// example of this case is +-255, which encode to
			// [0xff, 0x00] and [0xff, 0x80] respectively.
			if len(v) <= 1 || v[len(v)-2]&0x80 == 0 {
				return 0, errors.WithStack(ErrScriptNumMinimalData)
			}
		}
	}

	return scriptIntParse(v), nil
}

// scriptIntParse decodes the little-endian magnitude and applies the sign
// carried by the high bit of the last byte. v must not be empty.
func scriptIntParse(v []byte) int64 {
	var result int64
	for i, b := range v {
		result |= int64(b) << uint(8*i)
	}

	// When the most significant byte of the input has the sign bit set,
	// the result is negative. Clear the sign bit from the result and make
	// it negative.
	if v[len(v)-1]&0x80 != 0 {
		result &= ^(int64(0x80) << uint(8*(len(v)-1)))
		return -result
	}
	return result
}

// ReadScriptInt interprets v as a script number of at most maxSize bytes,
// requiring minimal encoding when minimal is set. It is the entry point the
// script-execution engine uses: codec errors are mapped into the script
// Error taxonomy (ErrMinimalData and ErrNumberTooBig respectively).
func ReadScriptInt(v []byte, maxSize int, minimal bool) (int64, error) {
	result, err := ReadScriptIntSize(v, maxSize, minimal)
	switch {
	case errors.Is(err, ErrScriptNumMinimalData):
		str := fmt.Sprintf("numeric value encoded as %x is not "+
			"minimally encoded", v)
		return 0, scriptError(ErrMinimalData, str)
	case errors.Is(err, ErrScriptNumOverflow):
		str := fmt.Sprintf("numeric value encoded as %x is %d bytes "+
			"which exceeds the max allowed of %d", v, len(v), maxSize)
		return 0, scriptError(ErrNumberTooBig, str)
	}
	return result, nil
}

// ReadScriptIntNonMinimal is like ReadScriptInt without the minimality
// requirement.
func ReadScriptIntNonMinimal(v []byte, maxSize int) (int64, error) {
	return ReadScriptInt(v, maxSize, false)
}
