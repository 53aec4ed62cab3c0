package sha512crypt

import (
	"bytes"
	"strconv"
)

const (
	// Prefix is the scheme marker for SHA-512-crypt ("$6$").
	Prefix = "$6$"

	// MinRounds and MaxRounds bound the accepted rounds count; values
	// outside this range are clamped, never rejected.
	MinRounds = 1000
	MaxRounds = 999999999

	// DefaultRounds is used when a salt string omits the rounds= field.
	DefaultRounds = 5000

	// MaxSaltLength is the number of leading salt bytes that are
	// significant; anything beyond this is discarded.
	MaxSaltLength = 16
)

// ClampRounds clamps n to [MinRounds, MaxRounds].
func ClampRounds(n uint32) uint32 {
	switch {
	case n < MinRounds:
		return MinRounds
	case n > MaxRounds:
		return MaxRounds
	default:
		return n
	}
}

// TruncateSalt returns the first MaxSaltLength bytes of salt, or salt
// itself if it is already short enough.
func TruncateSalt(salt []byte) []byte {
	if len(salt) > MaxSaltLength {
		return salt[:MaxSaltLength]
	}
	return salt
}

// ParsedSalt is the structured form of a "$6$[rounds=N$]salt" prefix.
// Rounds is nil when the salt string omitted the rounds= field; callers
// should use DefaultRounds in that case. Rounds, when non-nil, is already
// clamped and Salt is already truncated to MaxSaltLength bytes.
type ParsedSalt struct {
	Rounds *uint32
	Salt   []byte
}

// ParseSalt recognises the "$6$[rounds=N$]salt[$...]" prefix of saltString
// and extracts the structured (rounds?, salt) tuple. Anything after the
// salt field (e.g. the hash suffix of a full, already-computed hash string)
// is ignored, so ParseSalt can be applied to a bare salt string or to a
// complete hash interchangeably.
//
// It returns UnsupportedSchemeError if saltString does not begin with the
// "$6$" prefix, and MalformedSaltError for any other malformed input (e.g.
// a rounds= field with no terminating "$"). Per the specification, both are
// the same "unrecognised" outcome from the caller's point of view.
func ParseSalt(saltString []byte) (ParsedSalt, error) {
	if !bytes.HasPrefix(saltString, []byte(Prefix)) {
		return ParsedSalt{}, UnsupportedSchemeError{Prefix: firstField(saltString)}
	}
	rest := saltString[len(Prefix):]

	var rounds *uint32
	const roundsField = "rounds="
	if bytes.HasPrefix(rest, []byte(roundsField)) {
		rest = rest[len(roundsField):]
		digitEnd := 0
		for digitEnd < len(rest) && rest[digitEnd] >= '0' && rest[digitEnd] <= '9' {
			digitEnd++
		}
		if digitEnd == 0 {
			return ParsedSalt{}, MalformedSaltError{Reason: "rounds= field has no digits"}
		}
		if digitEnd >= len(rest) || rest[digitEnd] != '$' {
			return ParsedSalt{}, MalformedSaltError{Reason: "rounds= field missing trailing '$'"}
		}
		var value uint64
		for _, d := range rest[:digitEnd] {
			// Clamp as we accumulate: any digit string, however long,
			// saturates at MaxRounds without risking overflow.
			if value > MaxRounds {
				continue
			}
			value = value*10 + uint64(d-'0')
		}
		if value > MaxRounds {
			value = MaxRounds
		}
		r := ClampRounds(uint32(value))
		rounds = &r
		rest = rest[digitEnd+1:]
	}

	salt := rest
	if end := bytes.IndexByte(rest, '$'); end >= 0 {
		salt = rest[:end]
	}
	return ParsedSalt{Rounds: rounds, Salt: TruncateSalt(salt)}, nil
}

// formatPrefix renders the canonical "$6$[rounds=N$]salt$" prefix. rounds
// is nil to omit the rounds= field (default rounds in effect); otherwise
// its clamped value is written verbatim, even when it equals DefaultRounds,
// matching reference crypt(3) behaviour.
func formatPrefix(rounds *uint32, salt []byte) []byte {
	buf := make([]byte, 0, len(Prefix)+len("rounds=999999999$")+len(salt)+1)
	buf = append(buf, Prefix...)
	if rounds != nil {
		buf = append(buf, "rounds="...)
		buf = strconv.AppendUint(buf, uint64(*rounds), 10)
		buf = append(buf, '$')
	}
	buf = append(buf, salt...)
	buf = append(buf, '$')
	return buf
}

// firstField returns the leading "$id$" marker of s, for use in error
// messages when s turns out not to begin with this scheme's own Prefix.
func firstField(s []byte) string {
	if len(s) == 0 || s[0] != '$' {
		return string(s)
	}
	if end := bytes.IndexByte(s[1:], '$'); end >= 0 {
		return string(s[:end+2])
	}
	return string(s)
}
