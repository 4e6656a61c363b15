package txscript

import "testing"

// TestLockTimeFromNum ensures decoding stack numbers into relative lock
// times honors the disable and type flag bits.
func TestLockTimeFromNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		num       int64
		ok        bool
		isSeconds bool
		value     uint16
	}{{
		name:  "height lock",
		num:   5,
		ok:    true,
		value: 5,
	}, {
		name:  "height lock at the mask boundary",
		num:   0x0000ffff,
		ok:    true,
		value: 0xffff,
	}, {
		name:      "time lock",
		num:       0x00400005,
		ok:        true,
		isSeconds: true,
		value:     5,
	}, {
		name: "disable flag set",
		num:  0x80000005,
		ok:   false,
	}, {
		name: "negative",
		num:  -1,
		ok:   false,
	}, {
		name: "wider than 32 bits",
		num:  0x100000000,
		ok:   false,
	}, {
		// Bits between the mask and the flags carry no meaning and
		// are dropped.
		name:  "garbage bits above the mask",
		num:   0x003f0005,
		ok:    true,
		value: 5,
	}}

	for _, test := range tests {
		lockTime, ok := LockTimeFromNum(test.num)
		if ok != test.ok {
			t.Errorf("%s: ok mismatch - got %t, want %t", test.name,
				ok, test.ok)
			continue
		}
		if !ok {
			continue
		}

		if lockTime.IsSeconds() != test.isSeconds {
			t.Errorf("%s: IsSeconds mismatch - got %t, want %t",
				test.name, lockTime.IsSeconds(), test.isSeconds)
		}
		if test.isSeconds {
			if lockTime.Intervals() != test.value {
				t.Errorf("%s: unexpected intervals - got %d, want %d",
					test.name, lockTime.Intervals(), test.value)
			}
			wantSeconds := uint32(test.value) << SequenceLockTimeGranularity
			if lockTime.Seconds() != wantSeconds {
				t.Errorf("%s: unexpected seconds - got %d, want %d",
					test.name, lockTime.Seconds(), wantSeconds)
			}
		} else if lockTime.BlockHeight() != test.value {
			t.Errorf("%s: unexpected height - got %d, want %d",
				test.name, lockTime.BlockHeight(), test.value)
		}
	}
}

// TestLockTimeNum ensures re-encoding a decoded lock time produces a
// sequence number that decodes back to the same lock time.
func TestLockTimeNum(t *testing.T) {
	t.Parallel()

	for _, num := range []int64{0, 5, 0xffff, 0x00400005, 0x0040ffff} {
		lockTime, ok := LockTimeFromNum(num)
		if !ok {
			t.Fatalf("failed to decode %#x", num)
		}
		again, ok := LockTimeFromNum(int64(lockTime.Num()))
		if !ok {
			t.Fatalf("failed to re-decode %#x", lockTime.Num())
		}
		if again != lockTime {
			t.Errorf("%#x did not round trip: %v != %v", num, again,
				lockTime)
		}
	}
}

// TestLockTimeString ensures the human-readable forms.
func TestLockTimeString(t *testing.T) {
	t.Parallel()

	heightLock, _ := LockTimeFromNum(144)
	if got, want := heightLock.String(), "144 blocks"; got != want {
		t.Errorf("unexpected string - got %q, want %q", got, want)
	}

	timeLock, _ := LockTimeFromNum(0x00400005)
	if got, want := timeLock.String(), "2560 seconds"; got != want {
		t.Errorf("unexpected string - got %q, want %q", got, want)
	}
}
