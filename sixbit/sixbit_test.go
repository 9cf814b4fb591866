package sixbit

import (
	"strings"
	"testing"

	"github.com/rolker/noaadata/bitstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// S4: a 168-bit all-zero buffer armors to 28 '0' characters with no pad,
// and decodes back to 168 zero bits.
func TestArmorAllZeros(t *testing.T) {
	var zeros, err = bitstream.NewFromUint(0, 168)
	require.NoError(t, err)

	var text, pad = ToArmor(zeros)

	assert.Equal(t, 0, pad)
	assert.Equal(t, strings.Repeat("0", 28), text)

	var decoded, decErr = FromArmor(strings.Repeat("0", 28), 0)
	require.NoError(t, decErr)
	assert.Equal(t, 168, decoded.Len())
	assert.Equal(t, strings.Repeat("0", 168), decoded.String())
}

func TestArmorAlphabetGap(t *testing.T) {
	// value 39 -> 'W', value 40 -> '`': the armor alphabet skips the
	// ASCII range between them.
	var b, _ = bitstream.NewFromUint(39, 6)
	var text, _ = ToArmor(b)
	assert.Equal(t, "W", text)

	var b2, _ = bitstream.NewFromUint(40, 6)
	var text2, _ = ToArmor(b2)
	assert.Equal(t, "`", text2)
}

func TestFromArmorInvalidCharacter(t *testing.T) {
	var _, err = FromArmor("0#", 0)

	require.Error(t, err)
	var armorErr InvalidArmorError
	require.ErrorAs(t, err, &armorErr)
	assert.Equal(t, byte('#'), armorErr.Char)
}

func TestArmorNonMultipleOf6Pads(t *testing.T) {
	var b, _ = bitstream.NewFromUint(0b101, 3)

	var text, pad = ToArmor(b)

	assert.Equal(t, 3, pad)
	assert.Len(t, text, 1)
}

// P2: for every bit sequence b, from_armor(to_armor(b)) == b.
func TestArmorRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var s = rapid.StringMatching(`[01]{0,256}`).Draw(t, "bits")

		var b, err = bitstream.NewFromBits(s)
		require.NoError(t, err)

		var text, pad = ToArmor(b)
		var decoded, decErr = FromArmor(text, pad)
		require.NoError(t, decErr)

		assert.Equal(t, s, decoded.String())
	})
}
