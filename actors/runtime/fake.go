package runtime

import (
	"context"
	"sync"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"
	cbor "github.com/ipfs/go-ipld-cbor"
)

// FirstFakeActorID is the first ID a FakeSyscalls allocates to an
// instantiated account.
const FirstFakeActorID = abi.ActorID(100)

// TestMessage records the last message sent through a FakeSyscalls.
type TestMessage struct {
	To     address.Address
	Method abi.MethodNum
	Params []byte
	Value  abi.TokenAmount
}

// FakeSyscalls simulates the execution environment for tests. Sends are
// recorded rather than dispatched, and their receipts echo the message params
// as return data so callers can observe what a receiver would have been
// given.
type FakeSyscalls struct {
	// ID of the executing actor.
	ID abi.ActorID
	// AbortNextSend makes the next Send fail at the syscall level.
	AbortNextSend bool
	// NextSendExitCode is the exit code the next receipt carries. The zero
	// value is exitcode.Ok.
	NextSendExitCode exitcode.ExitCode
	// LastMessage is the most recent message passed to Send.
	LastMessage *TestMessage

	mu          sync.Mutex
	root        cid.Cid
	addresses   map[address.Address]abi.ActorID
	nextActorID abi.ActorID
}

var _ Syscalls = (*FakeSyscalls)(nil)

// NewFakeSyscalls creates fake syscalls for an executing actor with the given
// ID.
func NewFakeSyscalls(receiver abi.ActorID) *FakeSyscalls {
	return &FakeSyscalls{
		ID:          receiver,
		addresses:   map[address.Address]abi.ActorID{},
		nextActorID: FirstFakeActorID,
	}
}

// NewTestRuntime wires a FakeSyscalls into an ActorRuntime over an in-memory
// store. It returns both so tests can drive the syscall state directly.
func NewTestRuntime(ctx context.Context, receiver abi.ActorID) (*ActorRuntime, *FakeSyscalls) {
	sys := NewFakeSyscalls(receiver)
	return NewActorRuntime(ctx, sys, cbor.NewMemCborStore()), sys
}

func (f *FakeSyscalls) Root() (cid.Cid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.root, nil
}

func (f *FakeSyscalls) SetRoot(c cid.Cid) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.root = c
	return nil
}

func (f *FakeSyscalls) Receiver() abi.ActorID {
	return f.ID
}

func (f *FakeSyscalls) Send(ctx context.Context, to address.Address, method abi.MethodNum, params []byte, value abi.TokenAmount) (Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.AbortNextSend {
		f.AbortNextSend = false
		return Receipt{}, &SendAbortedError{To: to}
	}

	// sending to a public-key address instantiates an account there; actor
	// and ID addresses are assumed to exist but are never instantiated
	switch to.Protocol() {
	case address.SECP256K1, address.BLS:
		if _, ok := f.addresses[to]; !ok {
			f.addresses[to] = f.nextActorID
			f.nextActorID++
		}
	}

	f.LastMessage = &TestMessage{To: to, Method: method, Params: params, Value: value}

	code := f.NextSendExitCode
	f.NextSendExitCode = exitcode.Ok

	// echo the params back so tests can see what the receiver was given
	return Receipt{ExitCode: code, ReturnData: params}, nil
}

func (f *FakeSyscalls) ResolveAddress(ctx context.Context, addr address.Address) (abi.ActorID, bool) {
	if addr.Protocol() == address.ID {
		id, err := address.IDFromAddress(addr)
		if err != nil {
			return 0, false
		}
		return abi.ActorID(id), true
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.addresses[addr]
	return id, ok
}
