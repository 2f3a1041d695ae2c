package frc53

import (
	"fmt"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actors-utils/receiver"
)

// MissingStateError indicates a state root that resolved to no block in the
// store.
type MissingStateError struct {
	Cid cid.Cid
	Err error
}

func (e *MissingStateError) Error() string {
	return fmt.Sprintf("missing state at cid %s: %v", e.Cid, e.Err)
}

func (e *MissingStateError) Unwrap() error {
	return e.Err
}

// TokenNotFoundError indicates a token id with no entry in the collection,
// either never minted or already burned.
type TokenNotFoundError struct {
	TokenID TokenID
}

func (e *TokenNotFoundError) Error() string {
	return fmt.Sprintf("token id not found: %d", e.TokenID)
}

// NotOwnerError indicates an actor attempting an owner-only operation on a
// token it does not own.
type NotOwnerError struct {
	Actor   abi.ActorID
	TokenID TokenID
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("actor %d is not the owner of token %d", e.Actor, e.TokenID)
}

// NotAuthorizedError indicates an actor with neither account-level nor
// token-level approval for the token.
type NotAuthorizedError struct {
	Actor   abi.ActorID
	TokenID TokenID
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("actor %d is not authorized for token %d", e.Actor, e.TokenID)
}

// InvalidCursorError indicates an enumeration cursor that no longer matches
// the structure it was created against.
type InvalidCursorError struct{}

func (e *InvalidCursorError) Error() string {
	return "invalid cursor"
}

// ExitCodeForError translates a collection error into the exit code an
// actor should abort with when the error escapes to its boundary.
func ExitCodeForError(err error) exitcode.ExitCode {
	var (
		missingState  *MissingStateError
		tokenNotFound *TokenNotFoundError
		notOwner      *NotOwnerError
		notAuthorized *NotAuthorizedError
		invalidCursor *InvalidCursorError
		receiverErr   *receiver.ReceiverError
	)
	switch {
	case xerrors.As(err, &tokenNotFound):
		return exitcode.ErrNotFound
	case xerrors.As(err, &notOwner), xerrors.As(err, &notAuthorized):
		return exitcode.ErrForbidden
	case xerrors.As(err, &invalidCursor):
		return exitcode.ErrIllegalArgument
	case xerrors.As(err, &receiverErr):
		return receiverErr.ExitCode
	case xerrors.As(err, &missingState):
		return exitcode.ErrIllegalState
	default:
		return exitcode.ErrSerialization
	}
}
