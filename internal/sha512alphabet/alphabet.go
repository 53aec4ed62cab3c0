// Package sha512alphabet implements the custom base64-style byte-to-text
// encoding used by the SHA-crypt family of crypt(3) schemes: 6-bit groups
// over the alphabet "./0-9A-Za-z", packed little-endian within each 3-byte
// group with the most significant sextet emitted last.
//
// The encoder is parametric in the permutation table it is given, so the
// same code serves both id=6 (SHA-512, 64-byte digest) and, were it ever
// added, id=5 (SHA-256, 32-byte digest) — the two schemes differ only in
// digest size and permutation table, not in encoding mechanics.
package sha512alphabet

import "fmt"

// Alphabet is the 64-character SHA-crypt output alphabet, indexed 0..63.
const Alphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// EncodedLen returns the number of output characters Encode produces for n
// input bytes.
func EncodedLen(n int) int {
	full, rem := n/3, n%3
	length := full * 4
	switch rem {
	case 2:
		length += 3
	case 1:
		length += 2
	}
	return length
}

// Encode appends the SHA-crypt base64 encoding of src to dst and returns the
// extended slice. It is total: every byte sequence, including the empty one,
// has a well-defined encoding.
func Encode(dst, src []byte) []byte {
	n := len(src)
	i := 0
	for ; i+3 <= n; i += 3 {
		// Bytes are consumed in the order b2, b1, b0 and packed
		// little-endian: w = b0 | b1<<8 | b2<<16.
		b2, b1, b0 := uint32(src[i]), uint32(src[i+1]), uint32(src[i+2])
		w := b0 | b1<<8 | b2<<16
		dst = append(dst,
			Alphabet[w&63],
			Alphabet[(w>>6)&63],
			Alphabet[(w>>12)&63],
			Alphabet[(w>>18)&63],
		)
	}
	switch n - i {
	case 2:
		b1, b0 := uint32(src[i]), uint32(src[i+1])
		w := b0 | b1<<8
		dst = append(dst, Alphabet[w&63], Alphabet[(w>>6)&63], Alphabet[(w>>12)&63])
	case 1:
		b := src[i]
		dst = append(dst, Alphabet[b&63], Alphabet[b>>6])
	}
	return dst
}

// EncodePermuted reorders digest according to perm (perm[i] names the
// digest index consumed i-th) and encodes the result with Encode.
//
// It panics if len(digest) != len(perm): a mismatch here can only come from
// a caller passing the wrong digest size for a given scheme's permutation
// table, which is a programming error, never a condition reachable from
// untrusted input.
func EncodePermuted(digest []byte, perm []byte) string {
	if len(digest) != len(perm) {
		panic(fmt.Sprintf("sha512alphabet: EncodePermuted: digest has %d bytes, want %d", len(digest), len(perm)))
	}
	reordered := make([]byte, len(perm))
	for i, p := range perm {
		reordered[i] = digest[p]
	}
	out := Encode(make([]byte, 0, EncodedLen(len(perm))), reordered)
	return string(out)
}
