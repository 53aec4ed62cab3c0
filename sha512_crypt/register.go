package sha512crypt

import "github.com/phadej/crypt"

func init() {
	crypt.RegisterHash(Prefix, func(hash, password []byte) error {
		switch err := Check(hash, password); err {
		case nil:
			return nil
		case ErrPasswordMismatch:
			return crypt.ErrPasswordMismatch
		default:
			return err
		}
	})
}
