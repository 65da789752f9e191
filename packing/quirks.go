package packing

import (
	"fmt"
	"strings"
)

// Quirks selects the bit/byte addressing convention of a buffer.
// Flags are independent and may be combined.
type Quirks uint8

const (
	// QuirkMSBOnTheRight reverses the bit numbering inside every byte.
	QuirkMSBOnTheRight Quirks = 1 << iota
	// QuirkLittleEndian reverses the byte order inside every 32-bit word.
	QuirkLittleEndian
	// QuirkLSW32IsFirst stores the least significant 32-bit word first.
	QuirkLSW32IsFirst

	quirkMask = QuirkMSBOnTheRight | QuirkLittleEndian | QuirkLSW32IsFirst
)

var quirkNames = []struct {
	q    Quirks
	name string
}{
	{QuirkMSBOnTheRight, "msb-right"},
	{QuirkLittleEndian, "little-endian"},
	{QuirkLSW32IsFirst, "lsw32-first"},
}

// Has reports whether all flags in f are set.
func (q Quirks) Has(f Quirks) bool {
	return q&f == f
}

// wordAligned reports whether the quirks address the buffer in 32-bit groups.
func (q Quirks) wordAligned() bool {
	return q&(QuirkLittleEndian|QuirkLSW32IsFirst) != 0
}

func (q Quirks) String() string {
	if q&quirkMask == 0 {
		return "none"
	}

	parts := make([]string, 0, len(quirkNames))
	for _, n := range quirkNames {
		if q.Has(n.q) {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, ",")
}

// ParseQuirks parses a comma separated list of quirk names as produced by
// Quirks.String. "none" and the empty string yield no quirks.
func ParseQuirks(s string) (Quirks, error) {
	var q Quirks

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" || part == "none" {
			continue
		}

		found := false
		for _, n := range quirkNames {
			if n.name == part {
				q |= n.q
				found = true

				break
			}
		}

		if !found {
			return 0, fmt.Errorf("unknown quirk %q", part)
		}
	}

	return q, nil
}

// AllQuirkCombinations returns every combination of the quirk flags.
func AllQuirkCombinations() []Quirks {
	all := make([]Quirks, 0, quirkMask+1)
	for q := Quirks(0); q <= quirkMask; q++ {
		all = append(all, q)
	}

	return all
}
