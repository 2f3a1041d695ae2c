// Package receiver implements the universal receiver hook protocol. Token
// operations that credit an account return a Hook which must be called
// exactly once before the operation's return value is built, giving the
// receiving actor the chance to reject the tokens.
package receiver

import (
	"context"
	"fmt"

	"github.com/filecoin-project/go-address"
	cborutil "github.com/filecoin-project/go-cbor-util"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actors-utils/actors/runtime"
	"github.com/filecoin-project/go-actors-utils/dispatch"
)

// MethodNum is the standard method number of the universal receiver hook.
var MethodNum = dispatch.MustMethodNumber("Receive")

// Type tags the payload of a universal receiver call so receivers can
// dispatch on the asset type being received.
type Type = uint32

// TypeOf derives a receiver payload type from a standard name, e.g. "FRC46".
func TypeOf(name string) Type {
	return Type(dispatch.MustMethodNumber(name))
}

// RecipientData accepts the raw data a receiver hook returned. Operation
// intermediates implement this so a hook call can thread the receiver's
// response into the operation's return value.
type RecipientData interface {
	SetRecipientData(data []byte)
}

// ErrHookAlreadyCalled is returned by Call on a hook that has fired.
var ErrHookAlreadyCalled = xerrors.New("receiver hook was already called")

// ReceiverError indicates a receiver hook that aborted, rejecting the tokens
// sent to it.
type ReceiverError struct {
	Address    address.Address
	ExitCode   exitcode.ExitCode
	ReturnData []byte
}

func (e *ReceiverError) Error() string {
	return fmt.Sprintf("receiver hook at %s aborted with code %v", e.Address, e.ExitCode)
}

// Hook is a pending call to the universal receiver of an account that was
// credited with tokens. The creator of a hook must call it exactly once and
// propagate any error, abandoning the containing transaction.
type Hook struct {
	to      address.Address
	typ     Type
	payload []byte
	result  RecipientData
	called  bool
}

// NewHook prepares a receiver hook call to the given address. The payload is
// serialized immediately so that a later Call cannot fail on the sender's
// data.
func NewHook(to address.Address, typ Type, payload cbor.Marshaler, result RecipientData) (*Hook, error) {
	raw, err := cborutil.Dump(payload)
	if err != nil {
		return nil, xerrors.Errorf("failed to serialize receiver hook payload: %w", err)
	}
	return &Hook{
		to:      to,
		typ:     typ,
		payload: raw,
		result:  result,
	}, nil
}

// Address returns the account whose receiver will be called.
func (h *Hook) Address() address.Address {
	return h.to
}

// Called reports whether the hook has fired.
func (h *Hook) Called() bool {
	return h.called
}

// Call invokes the receiver hook on the target actor. On success the
// receiver's return data is threaded into the hook's RecipientData. A
// non-zero exit code from the receiver is returned as a ReceiverError and
// the caller must abandon the operation that produced the hook.
func (h *Hook) Call(ctx context.Context, rt *runtime.ActorRuntime) error {
	if h.called {
		return ErrHookAlreadyCalled
	}
	h.called = true

	params, err := cborutil.Dump(&UniversalReceiverParams{
		Type:    h.typ,
		Payload: h.payload,
	})
	if err != nil {
		return xerrors.Errorf("failed to serialize receiver params: %w", err)
	}

	receipt, err := rt.Send(ctx, h.to, MethodNum, params, big.Zero())
	if err != nil {
		return xerrors.Errorf("receiver hook send to %s: %w", h.to, err)
	}
	if receipt.ExitCode != exitcode.Ok {
		return &ReceiverError{
			Address:    h.to,
			ExitCode:   receipt.ExitCode,
			ReturnData: receipt.ReturnData,
		}
	}

	h.result.SetRecipientData(receipt.ReturnData)
	return nil
}

// AssertCalled panics if the hook was dropped without being called. Actor
// code defers this immediately after creating a hook; failing to fire a hook
// is a programming error that must abort the calling message.
func (h *Hook) AssertCalled() {
	if !h.called {
		panic(fmt.Sprintf("receiver hook to %s was never called", h.to))
	}
}
