package runtime

import (
	"context"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"
)

// MethodSend is the method number of the bare value transfer used to spawn
// accounts at uninitialized public-key addresses.
const MethodSend = abi.MethodNum(0)

// Receipt is the result of a message send.
type Receipt struct {
	ExitCode   exitcode.ExitCode
	ReturnData []byte
	GasUsed    int64
}

// Syscalls is the set of services the execution environment provides to an
// actor. A production implementation forwards each call to the VM; tests use
// FakeSyscalls.
type Syscalls interface {
	// Root returns the cid of the receiving actor's state root.
	Root() (cid.Cid, error)
	// SetRoot commits a new state root for the receiving actor.
	SetRoot(c cid.Cid) error
	// Receiver returns the ID of the receiving actor.
	Receiver() abi.ActorID
	// Send dispatches a message to another actor and returns its receipt.
	Send(ctx context.Context, to address.Address, method abi.MethodNum, params []byte, value abi.TokenAmount) (Receipt, error)
	// ResolveAddress resolves an address to an actor ID, reporting whether
	// the address was bound to one.
	ResolveAddress(ctx context.Context, addr address.Address) (abi.ActorID, bool)
}
