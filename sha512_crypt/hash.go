package sha512crypt

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/phadej/crypt/internal/sha512alphabet"
)

// sumLength is the number of characters the permuted base64 encoder
// produces for a 64-byte digest.
const sumLength = 86

// DefaultSaltLength is the salt length, in characters, NewHash generates.
const DefaultSaltLength = MaxSaltLength

// Hash computes the crypt(3) SHA-512 hash of key using the rounds and salt
// recovered from saltString, a string beginning "$6$" (optionally a
// complete prior hash, in which case only its prefix is consulted).
//
// It returns an error — an UnsupportedSchemeError or MalformedSaltError —
// when saltString is not a recognisable "$6$" salt; per the specification
// this is a recoverable "absent result", not a programmer error.
func Hash(key []byte, saltString []byte) (string, error) {
	parsed, err := ParseSalt(saltString)
	if err != nil {
		return "", err
	}
	return hashRaw(key, parsed.Rounds, parsed.Salt), nil
}

// HashWithSalt computes the crypt(3) SHA-512 hash of key using rawSalt, raw
// entropy bytes that are first run through the general SHA-crypt base64
// encoder (§4.1) to produce printable salt characters, then truncated and
// used exactly as HashRaw would. rounds is nil to use DefaultRounds.
//
// Unlike Hash, this cannot fail: any byte sequence is a valid input to the
// base64 encoder and the resulting text is always an acceptable salt.
func HashWithSalt(key []byte, rounds *uint32, rawSalt []byte) string {
	saltText := sha512alphabet.Encode(nil, rawSalt)
	return hashRaw(key, rounds, TruncateSalt(saltText))
}

// HashRaw computes the crypt(3) SHA-512 hash of key and salt directly, with
// no encoding step: only the first 16 bytes of salt are significant. rounds
// is nil to use DefaultRounds; otherwise it is clamped to
// [MinRounds, MaxRounds] before use and the clamped value is what appears
// in the output string.
//
// This cannot fail: the mixing function is total on its domain.
func HashRaw(key []byte, rounds *uint32, salt []byte) string {
	return hashRaw(key, rounds, TruncateSalt(salt))
}

// hashRaw assumes salt is already truncated to at most MaxSaltLength bytes.
func hashRaw(key []byte, rounds *uint32, salt []byte) string {
	var effRounds uint32 = DefaultRounds
	if rounds != nil {
		clamped := ClampRounds(*rounds)
		rounds = &clamped
		effRounds = clamped
	}

	raw := rawDigest(key, salt, effRounds)
	suffix := sha512alphabet.EncodePermuted(raw, permFinal[:])
	zeroBytes(raw)

	out := formatPrefix(rounds, salt)
	out = append(out, suffix...)
	return string(out)
}

// NewHash generates a random DefaultSaltLength-character salt and returns
// the crypt(3) SHA-512 hash of key with the given rounds (nil for
// DefaultRounds).
func NewHash(key []byte, rounds *uint32) (string, error) {
	// 12 raw bytes encode to exactly 16 base64 characters
	// (sha512alphabet.EncodedLen(12) == 16 == DefaultSaltLength).
	entropy := make([]byte, 12)
	if _, err := rand.Read(entropy); err != nil {
		return "", err
	}
	return HashWithSalt(key, rounds, entropy), nil
}

// Params extracts the rounds and salt used to produce hash, without
// recomputing the digest.
func Params(hash []byte) (rounds uint32, salt []byte, err error) {
	parsed, err := ParseSalt(hash)
	if err != nil {
		return 0, nil, err
	}
	if parsed.Rounds != nil {
		rounds = *parsed.Rounds
	} else {
		rounds = DefaultRounds
	}
	return rounds, parsed.Salt, nil
}

// ErrPasswordMismatch is returned by Check and Verify when key does not
// reproduce hash.
var ErrPasswordMismatch = mismatchError{}

type mismatchError struct{}

func (mismatchError) Error() string { return "sha512crypt: password mismatch" }

// Check recomputes the SHA-512-crypt hash of key using the parameters
// embedded in hash and compares it against hash in constant time. It
// returns nil on a match, ErrPasswordMismatch on a mismatch, or a parse
// error if the "$6$[rounds=N$]salt" prefix of hash cannot be parsed. Only
// that prefix is parsed: a hash whose suffix is malformed (wrong length or
// characters) is reported as ErrPasswordMismatch.
func Check(hash []byte, key []byte) error {
	parsed, err := ParseSalt(hash)
	if err != nil {
		return err
	}
	want := []byte(hashRaw(key, parsed.Rounds, parsed.Salt))
	if subtle.ConstantTimeCompare(want, hash) == 0 {
		return ErrPasswordMismatch
	}
	return nil
}

// Verify reports whether key reproduces hash. It is a convenience wrapper
// around Check for callers that only care about the yes/no outcome.
func Verify(key []byte, hash []byte) bool {
	return Check(hash, key) == nil
}
