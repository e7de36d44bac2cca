package signer

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const SignatureLength = crypto.SignatureLength

// Signature is R (32 bytes) || S (32 bytes) || V (1 byte recovery id).
type Signature [SignatureLength]byte

func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureLength {
		return sig, errors.Errorf("invalid signature length: want %d bytes, got %d", SignatureLength, len(b))
	}
	copy(sig[:], b)
	if v := sig.V(); v > 3 {
		return Signature{}, errors.Errorf("invalid recovery id %d", v)
	}
	return sig, nil
}

// ParseSignature decodes a hex signature, 0x prefix optional.
func ParseSignature(s string) (Signature, error) {
	b, err := decodeHex(s)
	if err != nil {
		return Signature{}, errors.Wrap(err, "invalid signature hex")
	}
	return SignatureFromBytes(b)
}

// EncodeSignature lays out r, s and the recovery id as 65 bytes and returns
// them as lower-case 0x-prefixed hex.
func EncodeSignature(r, s [32]byte, v byte) string {
	var sig Signature
	copy(sig[:32], r[:])
	copy(sig[32:64], s[:])
	sig[64] = v
	return sig.Hex()
}

func (sig Signature) R() (r [32]byte) {
	copy(r[:], sig[:32])
	return r
}

func (sig Signature) S() (s [32]byte) {
	copy(s[:], sig[32:64])
	return s
}

func (sig Signature) V() byte { return sig[64] }

func (sig Signature) Bytes() []byte {
	return append([]byte(nil), sig[:]...)
}

func (sig Signature) Hex() string { return hexutil.Encode(sig[:]) }

func (sig Signature) String() string { return sig.Hex() }

func (sig Signature) MarshalText() ([]byte, error) {
	return hexutil.Bytes(sig[:]).MarshalText()
}

func (sig *Signature) UnmarshalText(input []byte) error {
	parsed, err := ParseSignature(string(input))
	if err != nil {
		return err
	}
	*sig = parsed
	return nil
}

// RecoverPublicKey returns the key that produced sig over digest, using the
// recovery id to select the candidate point.
func (sig Signature) RecoverPublicKey(digest common.Hash) (*ecdsa.PublicKey, error) {
	pub, err := crypto.SigToPub(digest[:], sig[:])
	if err != nil {
		return nil, errors.Wrap(err, "failed to recover public key")
	}
	return pub, nil
}

func (sig Signature) RecoverAddress(digest common.Hash) (common.Address, error) {
	pub, err := sig.RecoverPublicKey(digest)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
