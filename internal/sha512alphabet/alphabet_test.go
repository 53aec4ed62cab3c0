package sha512alphabet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeEmpty(t *testing.T) {
	require.Equal(t, "", string(Encode(nil, nil)))
}

func TestEncodeLength3k(t *testing.T) {
	for k := 0; k <= 8; k++ {
		src := make([]byte, 3*k)
		for i := range src {
			src[i] = byte(i * 7)
		}
		got := Encode(nil, src)
		require.Len(t, got, 4*k, "k=%d", k)
		require.Equal(t, EncodedLen(len(src)), len(got))
	}
}

func TestEncodeTailLengths(t *testing.T) {
	require.Len(t, Encode(nil, []byte{0xff}), 2)
	require.Len(t, Encode(nil, []byte{0xff, 0xff}), 3)
	require.Len(t, Encode(nil, []byte{0xff, 0xff, 0xff}), 4)
}

func TestEncodeOneByteHighBitsZero(t *testing.T) {
	// The second output character for a 1-byte tail only ever carries the
	// top two bits of the input byte, so it must land in the alphabet's
	// first 4 characters (sextet value 0..3).
	for _, b := range []byte{0x00, 0x3f, 0x40, 0xff} {
		out := Encode(nil, []byte{b})
		idx := indexOf(out[1])
		require.Less(t, idx, 4)
	}
}

func TestEncodeAllCharsInAlphabet(t *testing.T) {
	src := make([]byte, 255)
	for i := range src {
		src[i] = byte(i)
	}
	out := Encode(nil, src)
	for _, c := range out {
		require.Contains(t, Alphabet, string(c))
	}
}

func TestEncodePermutedPanicsOnWrongLength(t *testing.T) {
	require.Panics(t, func() {
		EncodePermuted(make([]byte, 10), make([]byte, 64))
	})
}

func TestEncodePermutedLength(t *testing.T) {
	digest := make([]byte, 64)
	for i := range digest {
		digest[i] = byte(i * 3)
	}
	perm := make([]byte, 64)
	for i := range perm {
		perm[i] = byte(63 - i)
	}
	out := EncodePermuted(digest, perm)
	require.Len(t, out, 86)
}

func indexOf(c byte) int {
	for i := 0; i < len(Alphabet); i++ {
		if Alphabet[i] == c {
			return i
		}
	}
	return -1
}
