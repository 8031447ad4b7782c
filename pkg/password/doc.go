// Package password hashes and verifies user credentials with bcrypt.
//
// Hasher wraps golang.org/x/crypto/bcrypt behind a small interface so services
// can swap the cost in tests:
//
//	h := password.NewHasher(password.WithCost(bcrypt.MinCost))
//	hash, err := h.Hash("secret")
//	if err := h.Compare(hash, "secret"); err != nil {
//		// password.ErrMismatch
//	}
//
// Passwords are SHA-256 digested before bcrypt, so inputs of any length are
// accepted and no suffix past 72 bytes is silently ignored.
package password
