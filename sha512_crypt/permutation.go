package sha512crypt

// permFinal reorders a 64-byte SHA-512 digest before base64 encoding.
// permFinal[i] names the digest byte consumed i-th by the encoder; see
// internal/sha512alphabet.EncodePermuted.
var permFinal = [64]byte{
	0, 21, 42, 22, 43, 1, 44, 2, 23, 3, 24, 45, 25, 46, 4, 47, 5, 26,
	6, 27, 48, 28, 49, 7, 50, 8, 29, 9, 30, 51, 31, 52, 10, 53, 11, 32,
	12, 33, 54, 34, 55, 13, 56, 14, 35, 15, 36, 57, 37, 58, 16, 59, 17, 38,
	18, 39, 60, 40, 61, 19, 62, 20, 41, 63,
}
