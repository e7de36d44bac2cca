package signer

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DigestLength is the size of the message digest fed to ECDSA.
const DigestLength = common.HashLength

type Signer interface {
	SignHash(h common.Hash) ([]byte, error)
}

type PrivateKeySigner struct {
	*ecdsa.PrivateKey
}

// NewPrivateKeySigner loads a secp256k1 key from its hex form. The 0x prefix
// is optional; the scalar must be 32 bytes, non-zero and below the curve order.
func NewPrivateKeySigner(hexKey string) (*PrivateKeySigner, error) {
	raw, err := decodeHex(hexKey)
	if err != nil {
		return nil, &InvalidPrivateKeyError{Err: err}
	}
	defer zeroBytes(raw)

	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, &InvalidPrivateKeyError{Err: err}
	}
	return &PrivateKeySigner{key}, nil
}

// SignHash returns R || S || V where V is the raw recovery id (0 or 1).
func (s *PrivateKeySigner) SignHash(h common.Hash) ([]byte, error) {
	return SignDigest(h[:], s.PrivateKey)
}

func (s *PrivateKeySigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.PublicKey)
}

// Zero wipes the private scalar. The signer is unusable afterwards.
func (s *PrivateKeySigner) Zero() {
	if s == nil || s.PrivateKey == nil {
		return
	}
	b := s.D.Bits()
	for i := range b {
		b[i] = 0
	}
	s.D.SetInt64(0)
	s.PrivateKey = nil
}

// SignDigest produces a recoverable secp256k1 signature over a 32 byte
// digest. Nonces are derived per RFC 6979 and S is normalized to the lower
// half of the curve order, so the output is deterministic for a given key.
func SignDigest(digest []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	if len(digest) != DigestLength {
		return nil, &InvalidDigestError{Length: len(digest)}
	}
	if key == nil {
		return nil, &InvalidPrivateKeyError{Err: errNilKey}
	}
	return crypto.Sign(digest, key)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
