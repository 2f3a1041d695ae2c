package frc46

import (
	"fmt"

	"github.com/filecoin-project/go-address"
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

// InsufficientBalanceError indicates a debit that would have taken a balance
// negative.
type InsufficientBalanceError struct {
	Owner   abi.ActorID
	Balance abi.TokenAmount
	Delta   abi.TokenAmount
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("negative balance caused by changing %d's balance of %s by %s", e.Owner, e.Balance, e.Delta)
}

// InsufficientAllowanceError indicates an operator that attempted to use more
// of an owner's balance than the owner had approved.
type InsufficientAllowanceError struct {
	Owner     address.Address
	Operator  address.Address
	Allowance abi.TokenAmount
	Delta     abi.TokenAmount
}

func (e *InsufficientAllowanceError) Error() string {
	return fmt.Sprintf("%s attempted to utilise %s of allowance %s set by %s", e.Operator, e.Delta, e.Allowance, e.Owner)
}

// NegativeTotalSupplyError indicates a supply change that would have taken
// the total supply negative.
type NegativeTotalSupplyError struct {
	Supply abi.TokenAmount
	Delta  abi.TokenAmount
}

func (e *NegativeTotalSupplyError) Error() string {
	return fmt.Sprintf("total supply cannot be negative, cannot apply delta of %s to %s", e.Delta, e.Supply)
}

// NegativeAllowanceError indicates an attempt to store a negative allowance.
type NegativeAllowanceError struct {
	Owner    abi.ActorID
	Operator abi.ActorID
	Amount   abi.TokenAmount
}

func (e *NegativeAllowanceError) Error() string {
	return fmt.Sprintf("allowance cannot be negative, cannot set allowance between %d and %d to %s", e.Owner, e.Operator, e.Amount)
}

// NegativeBalanceError indicates an attempt to store a negative balance.
type NegativeBalanceError struct {
	Owner  abi.ActorID
	Amount abi.TokenAmount
}

func (e *NegativeBalanceError) Error() string {
	return fmt.Sprintf("balance cannot be negative, cannot set balance of %d to %s", e.Owner, e.Amount)
}

// InvalidNegativeError indicates a caller-supplied amount that must be
// non-negative but was not.
type InvalidNegativeError struct {
	Name   string
	Amount abi.TokenAmount
}

func (e *InvalidNegativeError) Error() string {
	return fmt.Sprintf("%s amount %s must be non-negative", e.Name, e.Amount)
}

// InvalidGranularityError indicates a caller-supplied amount that is not a
// multiple of the token's granularity.
type InvalidGranularityError struct {
	Name        string
	Amount      abi.TokenAmount
	Granularity uint64
}

func (e *InvalidGranularityError) Error() string {
	return fmt.Sprintf("%s amount %s must be a multiple of %d", e.Name, e.Amount, e.Granularity)
}

// InvalidOperatorError indicates a delegated operation in which the operator
// is the owner itself.
type InvalidOperatorError struct {
	Operator address.Address
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("operator %s cannot be the same as the owner", e.Operator)
}

// idAddress builds the f0 form of an actor id. Actor ids always fit, so
// this cannot fail.
func idAddress(id abi.ActorID) address.Address {
	addr, err := address.NewIDAddress(uint64(id))
	if err != nil {
		panic(err)
	}
	return addr
}

// ExitCodeForError translates a token error into the exit code an actor
// should abort with when the error escapes to its boundary.
func ExitCodeForError(err error) exitcode.ExitCode {
	var (
		missingState          *MissingStateError
		insufficientBalance   *InsufficientBalanceError
		insufficientAllowance *InsufficientAllowanceError
		negativeSupply        *NegativeTotalSupplyError
		negativeAllowance     *NegativeAllowanceError
		negativeBalance       *NegativeBalanceError
		invalidNegative       *InvalidNegativeError
		invalidGranularity    *InvalidGranularityError
		invalidOperator       *InvalidOperatorError
		receiverErr           *receiver.ReceiverError
	)
	switch {
	case xerrors.As(err, &insufficientBalance), xerrors.As(err, &insufficientAllowance):
		return exitcode.ErrInsufficientFunds
	case xerrors.As(err, &invalidNegative), xerrors.As(err, &invalidGranularity), xerrors.As(err, &invalidOperator):
		return exitcode.ErrIllegalArgument
	case xerrors.As(err, &receiverErr):
		return receiverErr.ExitCode
	case xerrors.As(err, &missingState), xerrors.As(err, &negativeSupply),
		xerrors.As(err, &negativeAllowance), xerrors.As(err, &negativeBalance):
		return exitcode.ErrIllegalState
	default:
		return exitcode.ErrSerialization
	}
}
