package adt

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/multiformats/go-varint"
	"golang.org/x/xerrors"
)

type actorKey string

func (k actorKey) Key() string {
	return string(k)
}

// ActorKey returns the map key for an actor ID, an unsigned varint encoding of
// the ID.
func ActorKey(id abi.ActorID) abi.Keyer {
	return actorKey(varint.ToUvarint(uint64(id)))
}

// ParseActorKey recovers an actor ID from a map key produced by ActorKey.
func ParseActorKey(k string) (abi.ActorID, error) {
	id, read, err := varint.FromUvarint([]byte(k))
	if err != nil {
		return 0, xerrors.Errorf("invalid actor id key: %w", err)
	}
	if read != len(k) {
		return 0, xerrors.Errorf("invalid actor id key: %d trailing bytes", len(k)-read)
	}
	return abi.ActorID(id), nil
}
