package txscript

import (
	"fmt"
	"math"
)

const (
	// SequenceLockTimeDisabled is a flag that if set on a transaction
	// input's sequence number, the sequence number will not be interpreted
	// as a relative lock time.
	SequenceLockTimeDisabled uint32 = 1 << 31

	// SequenceLockTimeIsSeconds is a flag that if set on a transaction
	// input's sequence number, the relative lock time has units of 512
	// seconds.
	SequenceLockTimeIsSeconds uint32 = 1 << 22

	// SequenceLockTimeMask is a mask that extracts the relative lock time
	// when masked against the transaction input sequence number.
	SequenceLockTimeMask uint32 = 0x0000ffff

	// SequenceLockTimeGranularity is the defined time based granularity
	// for seconds-based relative lock times. When converting from seconds
	// to a sequence number, the value is right shifted by this amount,
	// therefore the granularity of relative time locks is 512 or 2^9
	// seconds. Enforced relative lock times are multiples of 512 seconds.
	SequenceLockTimeGranularity = 9
)

// LockTime represents a decoded relative lock time: either a number of
// blocks or a number of 512-second intervals that must pass before a
// conditional input becomes spendable. Exactly one of the two
// interpretations applies per instance, selected once at construction by the
// type flag bit and fixed afterwards.
type LockTime struct {
	isSeconds bool
	value     uint16
}

// LockTimeFromNum interprets the given stack-decoded number as a relative
// lock time. It returns false when the number is negative, does not fit 32
// unsigned bits, or has the disable flag set. No further consensus-context
// validation is performed; that is up to the caller.
func LockTimeFromNum(num int64) (LockTime, bool) {
	if num < 0 || num > math.MaxUint32 {
		return LockTime{}, false
	}
	sequenceNum := uint32(num)

	if sequenceNum&SequenceLockTimeDisabled != 0 {
		return LockTime{}, false
	}

	return LockTime{
		isSeconds: sequenceNum&SequenceLockTimeIsSeconds != 0,
		value:     uint16(sequenceNum & SequenceLockTimeMask),
	}, true
}

// IsSeconds returns whether the lock time is time-based. When false, the
// lock time is a relative block count.
func (lt LockTime) IsSeconds() bool {
	return lt.isSeconds
}

// BlockHeight returns the relative number of blocks the lock represents. It
// is only meaningful when IsSeconds reports false.
func (lt LockTime) BlockHeight() uint16 {
	return lt.value
}

// Intervals returns the number of 512-second intervals the lock represents.
// It is only meaningful when IsSeconds reports true.
func (lt LockTime) Intervals() uint16 {
	return lt.value
}

// Seconds returns the lock duration in seconds. It is only meaningful when
// IsSeconds reports true.
func (lt LockTime) Seconds() uint32 {
	return uint32(lt.value) << SequenceLockTimeGranularity
}

// Num returns the sequence-number encoding of the lock time, suitable for
// re-encoding as a script number.
func (lt LockTime) Num() uint32 {
	num := uint32(lt.value)
	if lt.isSeconds {
		num |= SequenceLockTimeIsSeconds
	}
	return num
}

// String returns the lock time as a human-readable string.
func (lt LockTime) String() string {
	if lt.isSeconds {
		return fmt.Sprintf("%d seconds", lt.Seconds())
	}
	return fmt.Sprintf("%d blocks", lt.value)
}
