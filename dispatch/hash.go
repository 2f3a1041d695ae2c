// Package dispatch computes standard method numbers from method names, so
// that actors can agree on dispatch tables without a shared IDL. A method
// number is the first four bytes, interpreted big-endian, of the blake2b-256
// digest of the method name. "Constructor" is reserved as method 1.
package dispatch

import (
	"encoding/binary"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/minio/blake2b-simd"
	"golang.org/x/xerrors"
)

const (
	// ConstructorMethodName is the reserved name of the constructor method.
	ConstructorMethodName = "Constructor"
	// ConstructorMethodNum is the reserved number of the constructor method.
	ConstructorMethodNum = abi.MethodNum(1)

	digestPrefixLen = 4
)

// Hasher digests a method name. Digests must be at least four bytes long.
type Hasher interface {
	Hash(data []byte) []byte
}

// Blake2bHasher hashes with blake2b-256, the digest actors compute on chain.
type Blake2bHasher struct{}

func (Blake2bHasher) Hash(data []byte) []byte {
	digest := blake2b.Sum256(data)
	return digest[:]
}

// MethodNumber returns the method number for a method name.
func MethodNumber(name string) (abi.MethodNum, error) {
	return MethodNumberWithHasher(Blake2bHasher{}, name)
}

// MustMethodNumber is like MethodNumber but panics on invalid names. Use for
// static method names only.
func MustMethodNumber(name string) abi.MethodNum {
	num, err := MethodNumber(name)
	if err != nil {
		panic(err)
	}
	return num
}

// MethodNumberWithHasher computes a method number using the supplied hasher.
func MethodNumberWithHasher(h Hasher, name string) (abi.MethodNum, error) {
	if name == "" {
		return 0, xerrors.New("method name must not be empty")
	}
	if name == ConstructorMethodName {
		return ConstructorMethodNum, nil
	}
	digest := h.Hash([]byte(name))
	if len(digest) < digestPrefixLen {
		return 0, xerrors.Errorf("digest must be at least %d bytes, got %d", digestPrefixLen, len(digest))
	}
	return abi.MethodNum(binary.BigEndian.Uint32(digest[:digestPrefixLen])), nil
}
