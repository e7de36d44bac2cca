package signer

import (
	"fmt"

	"github.com/pkg/errors"
)

var errNilKey = errors.New("private key is nil")

// MalformedHashError reports a transaction hash that is not valid hex.
type MalformedHashError struct {
	Input string
	Err   error
}

func (e *MalformedHashError) Error() string {
	return fmt.Sprintf("malformed transaction hash %q: %v", e.Input, e.Err)
}

func (e *MalformedHashError) Unwrap() error { return e.Err }

// InvalidPrivateKeyError reports key material that is not a usable
// secp256k1 scalar. It never carries the key itself.
type InvalidPrivateKeyError struct {
	Err error
}

func (e *InvalidPrivateKeyError) Error() string {
	return fmt.Sprintf("invalid private key: %v", e.Err)
}

func (e *InvalidPrivateKeyError) Unwrap() error { return e.Err }

type InvalidDigestError struct {
	Length int
}

func (e *InvalidDigestError) Error() string {
	return fmt.Sprintf("invalid digest length: want %d bytes, got %d", DigestLength, e.Length)
}
