package runtime

import (
	"context"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	blockstore "github.com/ipfs/go-ipfs-blockstore"
	cbor "github.com/ipfs/go-ipld-cbor"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actors-utils/actors/adt"
)

var log = logging.Logger("actors/runtime")

// ActorRuntime combines the syscall surface of an executing actor with a
// store over its IPLD state. It is the service dependency injected into the
// token handles.
type ActorRuntime struct {
	Syscalls
	store adt.Store
}

// NewActorRuntime wraps syscalls and an IPLD store into a runtime.
func NewActorRuntime(ctx context.Context, sys Syscalls, cst cbor.IpldStore) *ActorRuntime {
	return &ActorRuntime{
		Syscalls: sys,
		store:    adt.WrapStore(ctx, cst),
	}
}

// NewBlockstoreRuntime wraps syscalls and a raw blockstore into a runtime.
func NewBlockstoreRuntime(ctx context.Context, sys Syscalls, bs blockstore.Blockstore) *ActorRuntime {
	return NewActorRuntime(ctx, sys, cbor.NewCborStore(bs))
}

// Store returns the runtime's view of the state store.
func (rt *ActorRuntime) Store() adt.Store {
	return rt.store
}

// ActorID returns the ID of the executing (receiving) actor.
func (rt *ActorRuntime) ActorID() abi.ActorID {
	return rt.Receiver()
}

// ResolveID resolves an address to an actor ID, returning an
// AddressNotResolvedError if the address is not bound to one.
func (rt *ActorRuntime) ResolveID(ctx context.Context, addr address.Address) (abi.ActorID, error) {
	if id, ok := rt.ResolveAddress(ctx, addr); ok {
		return id, nil
	}
	return 0, &AddressNotResolvedError{Address: addr}
}

// InitializeAccount creates an account at a public-key address by sending it
// a zero-value message, then returns the ID it resolved to. Addresses that
// cannot bear accounts yield an AddressNotInitializedError.
func (rt *ActorRuntime) InitializeAccount(ctx context.Context, addr address.Address) (abi.ActorID, error) {
	if _, err := rt.Send(ctx, addr, MethodSend, nil, big.Zero()); err != nil {
		return 0, xerrors.Errorf("failed to initialize account at %s: %w", addr, err)
	}
	id, ok := rt.ResolveAddress(ctx, addr)
	if !ok {
		return 0, &AddressNotInitializedError{Address: addr}
	}
	log.Debugf("initialized account for %s as %d", addr, id)
	return id, nil
}

// ResolveOrInit resolves an address to an actor ID, initializing an account
// for it if no actor is bound to the address yet.
func (rt *ActorRuntime) ResolveOrInit(ctx context.Context, addr address.Address) (abi.ActorID, error) {
	id, err := rt.ResolveID(ctx, addr)
	if err != nil {
		var notResolved *AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return rt.InitializeAccount(ctx, addr)
		}
		return 0, err
	}
	return id, nil
}

// SameAddress reports whether two addresses refer to the same actor, without
// initializing accounts for either. Addresses of the same protocol are
// compared directly; otherwise both must resolve to actor IDs.
func (rt *ActorRuntime) SameAddress(ctx context.Context, a, b address.Address) bool {
	if a.Protocol() == b.Protocol() {
		return a == b
	}
	idA, ok := rt.ResolveAddress(ctx, a)
	if !ok {
		return false
	}
	idB, ok := rt.ResolveAddress(ctx, b)
	if !ok {
		return false
	}
	return idA == idB
}
