package signer

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Batch is an ordered list of raw transaction hashes. Order is part of what
// gets signed: permuting the batch changes its Hash.
type Batch []hexutil.Bytes

// ParseTransactionHash decodes a hex transaction hash with an optional 0x or
// 0X prefix. Any even-length hex string is accepted unless strict is set, in
// which case the hash must be exactly 32 bytes.
func ParseTransactionHash(s string, strict bool) (hexutil.Bytes, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, &MalformedHashError{Input: s, Err: err}
	}
	if strict && len(b) != common.HashLength {
		return nil, &MalformedHashError{
			Input: s,
			Err:   errors.Errorf("expected %d bytes, got %d", common.HashLength, len(b)),
		}
	}
	return b, nil
}

func ParseBatch(hashes []string, strict bool) (Batch, error) {
	batch := make(Batch, 0, len(hashes))
	for i, h := range hashes {
		b, err := ParseTransactionHash(h, strict)
		if err != nil {
			return nil, errors.Wrapf(err, "transaction hash at index %d", i)
		}
		batch = append(batch, b)
	}
	return batch, nil
}

// Digests returns keccak256 of every hash, in batch order.
func (b Batch) Digests() []common.Hash {
	digests := make([]common.Hash, len(b))
	for i, h := range b {
		digests[i] = crypto.Keccak256Hash(h)
	}
	return digests
}

// Hash is keccak256(keccak256(h0) || keccak256(h1) || ...). An empty batch
// hashes the empty byte string.
func (b Batch) Hash() common.Hash {
	packed := make([]byte, 0, len(b)*common.HashLength)
	for _, d := range b.Digests() {
		packed = append(packed, d[:]...)
	}
	return crypto.Keccak256Hash(packed)
}

func (b Batch) Sign(signer Signer) (Signature, error) {
	sig, err := signer.SignHash(b.Hash())
	if err != nil {
		return Signature{}, err
	}
	return SignatureFromBytes(sig)
}

// SignTransactionHashes signs an ordered list of hex transaction hashes with
// a hex private key and returns the 0x-prefixed 65 byte signature. The key is
// wiped before returning.
func SignTransactionHashes(hashes []string, privateKey string) (string, error) {
	batch, err := ParseBatch(hashes, false)
	if err != nil {
		return "", err
	}
	s, err := NewPrivateKeySigner(privateKey)
	if err != nil {
		return "", err
	}
	defer s.Zero()

	sig, err := batch.Sign(s)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign transaction batch")
	}
	return sig.Hex(), nil
}

func decodeHex(s string) ([]byte, error) {
	if !has0xPrefix(s) {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
