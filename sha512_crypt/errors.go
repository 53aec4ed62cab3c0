package sha512crypt

import "strconv"

// UnsupportedSchemeError reports a salt string that does not begin with the
// "$6$" scheme prefix. This is the "unrecognised scheme" outcome of the
// specification: recoverable, a caller may try a different scheme.
type UnsupportedSchemeError struct {
	Prefix string
}

func (e UnsupportedSchemeError) Error() string {
	return "sha512crypt: unsupported scheme prefix " + strconv.Quote(e.Prefix)
}

// MalformedSaltError reports a salt string that begins with "$6$" but is
// otherwise not well-formed, e.g. a "rounds=" field missing its trailing
// "$". Per the specification this collapses into the same "absent result"
// outcome as an unsupported scheme prefix.
type MalformedSaltError struct {
	Reason string
}

func (e MalformedSaltError) Error() string {
	return "sha512crypt: malformed salt string: " + e.Reason
}
