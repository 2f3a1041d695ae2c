package runtime

import (
	"fmt"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"
	"golang.org/x/xerrors"
)

// AddressNotResolvedError indicates an address that is not bound to any actor
// ID.
type AddressNotResolvedError struct {
	Address address.Address
}

func (e *AddressNotResolvedError) Error() string {
	return fmt.Sprintf("address could not be resolved: %s", e.Address)
}

// AddressNotInitializedError indicates an address at which no account could be
// created.
type AddressNotInitializedError struct {
	Address address.Address
}

func (e *AddressNotInitializedError) Error() string {
	return fmt.Sprintf("address could not be initialized: %s", e.Address)
}

// SendAbortedError indicates a send that failed at the syscall level, before
// the target actor produced a receipt.
type SendAbortedError struct {
	To address.Address
}

func (e *SendAbortedError) Error() string {
	return fmt.Sprintf("send to %s aborted", e.To)
}

// ExitCodeForError translates a runtime error into the exit code an actor
// should abort with.
func ExitCodeForError(err error) exitcode.ExitCode {
	var notResolved *AddressNotResolvedError
	var notInitialized *AddressNotInitializedError
	var aborted *SendAbortedError
	switch {
	case xerrors.As(err, &notResolved), xerrors.As(err, &notInitialized):
		return exitcode.ErrNotFound
	case xerrors.As(err, &aborted):
		return exitcode.ErrIllegalState
	default:
		return exitcode.ErrIllegalState
	}
}
