package adt

import (
	"context"

	blockstore "github.com/ipfs/go-ipfs-blockstore"
	cbor "github.com/ipfs/go-ipld-cbor"
)

// Store defines an interface required to back the ADTs in this package.
type Store interface {
	Context() context.Context
	cbor.IpldStore
}

type wstore struct {
	ctx context.Context
	cbor.IpldStore
}

var _ Store = &wstore{}

// WrapStore adapts a vanilla IPLD store as an ADT store.
func WrapStore(ctx context.Context, store cbor.IpldStore) Store {
	return &wstore{
		ctx:       ctx,
		IpldStore: store,
	}
}

// WrapBlockstore adapts a raw blockstore as an ADT store.
func WrapBlockstore(ctx context.Context, bs blockstore.Blockstore) Store {
	return WrapStore(ctx, cbor.NewCborStore(bs))
}

func (s *wstore) Context() context.Context {
	return s.ctx
}
