// Package sha512crypt implements Ulrich Drepper's SHA-512-crypt password
// hashing algorithm, the id=6 scheme ("$6$") used by modern Unix crypt(3)
// implementations (glibc >= 2.17 and compatible libc variants).
//
// The specification for this algorithm can be found here:
// http://www.akkadia.org/drepper/SHA-crypt.txt
package sha512crypt
