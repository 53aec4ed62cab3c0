package sha512crypt

import (
	"crypto/sha512"
	"hash"
)

// digestParams abstracts over the {init, update, finalize} hash primitive
// the mixing function is built on. The SHA-crypt structure is parametric in
// digest size and constants alone — the sister "$5$" scheme (SHA-256) would
// plug in sha256.New and its own 32-byte permutation table without touching
// the mixing logic below.
type digestParams struct {
	newHash func() hash.Hash
	size    int
}

var sha512Params = digestParams{newHash: sha512.New, size: sha512.Size}

// rawDigest runs the SHA-crypt mixing function (reference steps 1-21) on
// key, salt and rounds, returning the 64-byte raw digest C_rounds.
//
// salt must already be truncated to at most 16 bytes and rounds must
// already be clamped to [1000, 999999999]; both are the caller's
// responsibility (see salt.go).
func rawDigest(key, salt []byte, rounds uint32) []byte {
	return computeDigest(sha512Params, key, salt, rounds)
}

func computeDigest(p digestParams, key, salt []byte, rounds uint32) []byte {
	kl := len(key)

	// Digest B: SHA512(key || salt || key) — reference steps 4-8.
	hB := p.newHash()
	hB.Write(key)
	hB.Write(salt)
	hB.Write(key)
	B := hB.Sum(nil)

	// Digest A — reference steps 1-12.
	hA := p.newHash()
	hA.Write(key)
	hA.Write(salt)
	for i := kl; i > 0; i -= p.size {
		if i > p.size {
			hA.Write(B)
		} else {
			hA.Write(B[:i])
		}
	}
	for i := kl; i > 0; i >>= 1 {
		if i&1 != 0 {
			hA.Write(B)
		} else {
			hA.Write(key)
		}
	}
	A := hA.Sum(nil)
	zeroBytes(B)

	// Digest DP: SHA512(key repeated kl times) — reference steps 13-15.
	// The loop body never runs when kl == 0, so DP = SHA512("") as required.
	hDP := p.newHash()
	for i := 0; i < kl; i++ {
		hDP.Write(key)
	}
	DP := hDP.Sum(nil)

	// Byte sequence P, |P| == kl — reference step 16.
	P := make([]byte, 0, kl)
	for i := kl; i > 0; i -= p.size {
		if i > p.size {
			P = append(P, DP...)
		} else {
			P = append(P, DP[:i]...)
		}
	}
	zeroBytes(DP)

	// Digest DS: SHA512(salt repeated (16+A[0]) times) — reference steps 17-19.
	hDS := p.newHash()
	repeat := 16 + int(A[0])
	for i := 0; i < repeat; i++ {
		hDS.Write(salt)
	}
	DS := hDS.Sum(nil)

	// Byte sequence S, |S| == len(salt) — reference step 20.
	sl := len(salt)
	S := make([]byte, sl)
	copy(S, DS[:sl])
	zeroBytes(DS)

	// Iterative loop — reference step 21.
	C := A
	for i := uint32(0); i < rounds; i++ {
		hC := p.newHash()
		if i%2 == 1 {
			hC.Write(P)
		} else {
			hC.Write(C)
		}
		if i%3 != 0 {
			hC.Write(S)
		}
		if i%7 != 0 {
			hC.Write(P)
		}
		if i%2 == 1 {
			hC.Write(C)
		} else {
			hC.Write(P)
		}
		C = hC.Sum(nil)
	}

	zeroBytes(P)
	zeroBytes(S)
	return C
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
