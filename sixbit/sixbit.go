// Package sixbit converts between a bit sequence and the AIS 6-bit
// printable-ASCII payload armor used inside AIVDM/AIVDO NMEA sentences.
//
// Each 6-bit group maps to one ASCII character in one of two ranges:
// values 0..39 to '0'..'W', and values 40..63 to '`'..'w'. This mirrors
// the two-range alphabet used by the Direwolf AIS decoder's
// sextet_to_char/char_to_sextet, skipping the ASCII range between 'W'
// (87) and '`' (96) that a naive single-range mapping would hit.
package sixbit

import (
	"fmt"
	"strings"

	"github.com/rolker/noaadata/bitstream"
)

// InvalidArmorError reports an armor character outside the defined alphabet.
type InvalidArmorError struct {
	Char     byte
	Position int
}

func (e InvalidArmorError) Error() string {
	return fmt.Sprintf("sixbit: invalid armor character %q at position %d", e.Char, e.Position)
}

func sextetToChar(v uint64) byte {
	switch {
	case v <= 39:
		return byte(v) + 48
	default:
		return byte(v-40) + 96
	}
}

func charToSextet(ch byte, pos int) (uint64, error) {
	switch {
	case ch >= '0' && ch <= 'W':
		return uint64(ch - '0'), nil
	case ch >= '`' && ch <= 'w':
		return uint64(ch-'`') + 40, nil
	default:
		return 0, InvalidArmorError{Char: ch, Position: pos}
	}
}

// ToArmor packs bits into AIS payload armor, padding with up to 5 zero
// bits to reach a multiple of 6. It returns the armored text and the
// number of pad bits appended.
func ToArmor(bits *bitstream.Buffer) (string, int) {
	n := bits.Len()
	pad := (6 - n%6) % 6
	groups := (n + pad) / 6

	var sb strings.Builder
	sb.Grow(groups)
	for g := 0; g < groups; g++ {
		lo := g * 6
		hi := lo + 6
		var v uint64
		for i := lo; i < hi; i++ {
			v <<= 1
			if i < n && bits.Bit(i) {
				v |= 1
			}
		}
		sb.WriteByte(sextetToChar(v))
	}
	return sb.String(), pad
}

// FromArmor unpacks armored text back into bits, dropping the trailing
// pad bits announced by the envelope layer.
func FromArmor(text string, pad int) (*bitstream.Buffer, error) {
	total := 6*len(text) - pad
	if total < 0 {
		return nil, fmt.Errorf("sixbit: pad %d exceeds armor length %d", pad, 6*len(text))
	}

	out := bitstream.New()
	for i := 0; i < len(text); i++ {
		v, err := charToSextet(text[i], i)
		if err != nil {
			return nil, err
		}
		group, groupErr := bitstream.NewFromUint(v, 6)
		if groupErr != nil {
			return nil, groupErr
		}
		out.Append(group)
	}

	return out.Slice(0, total)
}
