package frc46

import (
	"context"
	gobig "math/big"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actors-utils/actors/adt"
	"github.com/filecoin-project/go-actors-utils/actors/runtime"
	"github.com/filecoin-project/go-actors-utils/receiver"
)

var log = logging.Logger("frc46")

// Token is a handle through which an actor manipulates its token state. The
// handle layers address resolution, amount validation, receiver hooks and
// transactional state updates over the raw state tree.
type Token struct {
	rt          *runtime.ActorRuntime
	state       *TokenState
	granularity uint64
}

// WrapToken wraps existing in-memory token state in a handle. Every amount
// accepted by the handle must be a multiple of the granularity, which must
// be at least one.
func WrapToken(rt *runtime.ActorRuntime, state *TokenState, granularity uint64) *Token {
	return &Token{rt: rt, state: state, granularity: granularity}
}

// CreateState constructs empty token state in the runtime's store and wraps
// it in a handle.
func CreateState(rt *runtime.ActorRuntime, granularity uint64) (*Token, error) {
	state, err := NewTokenState(rt.Store())
	if err != nil {
		return nil, err
	}
	return WrapToken(rt, state, granularity), nil
}

// LoadState reads token state from the actor's current state root and wraps
// it in a handle.
func LoadState(rt *runtime.ActorRuntime, granularity uint64) (*Token, error) {
	root, err := rt.Root()
	if err != nil {
		return nil, err
	}
	state, err := LoadTokenState(rt.Store(), root)
	if err != nil {
		return nil, err
	}
	return WrapToken(rt, state, granularity), nil
}

// State returns the live state the handle is wrapping.
func (t *Token) State() *TokenState {
	return t.state
}

// Granularity returns the smallest indivisible unit of the token.
func (t *Token) Granularity() uint64 {
	return t.granularity
}

// Flush writes the wrapped state to the store and returns its new root cid.
// The caller remains responsible for committing that root to the actor.
func (t *Token) Flush() (cid.Cid, error) {
	return t.state.Save(t.rt.Store())
}

// ReplaceState swaps the wrapped state for another, returning the old one.
func (t *Token) ReplaceState(state *TokenState) *TokenState {
	old := t.state
	t.state = state
	return old
}

// LoadReplace reads state from the given root and swaps it in, returning
// the previously wrapped state.
func (t *Token) LoadReplace(root cid.Cid) (*TokenState, error) {
	state, err := LoadTokenState(t.rt.Store(), root)
	if err != nil {
		return nil, err
	}
	return t.ReplaceState(state), nil
}

// ReloadIfChanged refreshes the wrapped state if the actor's state root has
// moved past the expected cid, as happens when a receiver hook re-enters the
// actor. It returns the stale state when a reload occurred, or nil.
func (t *Token) ReloadIfChanged(expected cid.Cid) (*TokenState, error) {
	current, err := t.rt.Root()
	if err != nil {
		return nil, err
	}
	if current.Equals(expected) {
		return nil, nil
	}
	log.Debugf("state root moved from %s to %s during hook, reloading", expected, current)
	return t.LoadReplace(current)
}

// transaction runs a mutation against a scratch copy of the state,
// committing it only on success. Amounts are never mutated in place so a
// shallow copy isolates the live state from a failed mutation.
func (t *Token) transaction(f func(*TokenState, adt.Store) error) error {
	scratch := *t.state
	if err := f(&scratch, t.rt.Store()); err != nil {
		return err
	}
	*t.state = scratch
	return nil
}

// Mint credits newly created tokens to an account and grows the total
// supply to match. Both the operator and the initial owner are initialized
// on chain if they do not yet exist. The returned hook must be called after
// the mutated state has been committed, and the intermediate converted to a
// MintReturn once the hook has run.
func (t *Token) Mint(ctx context.Context, operator, initialOwner address.Address, amount abi.TokenAmount, operatorData, tokenData []byte) (*receiver.Hook, *MintIntermediate, error) {
	if err := validateAmount(amount, "mint", t.granularity); err != nil {
		return nil, nil, err
	}
	operatorID, err := t.rt.ResolveOrInit(ctx, operator)
	if err != nil {
		return nil, nil, err
	}
	ownerID, err := t.rt.ResolveOrInit(ctx, initialOwner)
	if err != nil {
		return nil, nil, err
	}

	err = t.transaction(func(st *TokenState, store adt.Store) error {
		if _, err := st.ChangeBalanceBy(store, ownerID, amount); err != nil {
			return err
		}
		_, err := st.ChangeSupplyBy(amount)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	intermediate := &MintIntermediate{Recipient: initialOwner}
	hook, err := receiver.NewHook(initialOwner, TokenType, &FRC46TokenReceived{
		Operator:     operatorID,
		From:         t.rt.ActorID(),
		To:           ownerID,
		Amount:       amount,
		OperatorData: operatorData,
		TokenData:    tokenData,
	}, intermediate)
	if err != nil {
		return nil, nil, err
	}
	return hook, intermediate, nil
}

// MintReturn finalizes a mint, reading the recipient's balance and the
// supply from whatever state is current after the receiver hook ran.
func (t *Token) MintReturn(ctx context.Context, intermediate *MintIntermediate) (*MintReturn, error) {
	balance, err := t.BalanceOf(ctx, intermediate.Recipient)
	if err != nil {
		return nil, err
	}
	return &MintReturn{
		Balance:       balance,
		Supply:        t.TotalSupply(),
		RecipientData: intermediate.RecipientData,
	}, nil
}

// TotalSupply returns the sum of all balances.
func (t *Token) TotalSupply() abi.TokenAmount {
	return t.state.Supply
}

// BalanceOf returns the balance of an account. Addresses that do not
// resolve to an actor have an implicit zero balance.
func (t *Token) BalanceOf(ctx context.Context, owner address.Address) (abi.TokenAmount, error) {
	ownerID, err := t.rt.ResolveID(ctx, owner)
	if err != nil {
		var notResolved *runtime.AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return big.Zero(), nil
		}
		return big.Zero(), err
	}
	return t.state.GetBalance(t.rt.Store(), ownerID)
}

// Allowance returns the amount an operator may act on behalf of an owner.
// If either address does not resolve the allowance is implicitly zero.
func (t *Token) Allowance(ctx context.Context, owner, operator address.Address) (abi.TokenAmount, error) {
	ownerID, err := t.rt.ResolveID(ctx, owner)
	if err != nil {
		var notResolved *runtime.AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return big.Zero(), nil
		}
		return big.Zero(), err
	}
	operatorID, err := t.rt.ResolveID(ctx, operator)
	if err != nil {
		var notResolved *runtime.AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return big.Zero(), nil
		}
		return big.Zero(), err
	}
	return t.state.GetAllowance(t.rt.Store(), ownerID, operatorID)
}

// IncreaseAllowance grows the allowance between an owner and an operator,
// initializing either account on chain if needed, and returns the new
// allowance.
func (t *Token) IncreaseAllowance(ctx context.Context, owner, operator address.Address, increase abi.TokenAmount) (abi.TokenAmount, error) {
	if err := validateAllowance(increase, "increase"); err != nil {
		return big.Zero(), err
	}
	ownerID, err := t.rt.ResolveOrInit(ctx, owner)
	if err != nil {
		return big.Zero(), err
	}
	operatorID, err := t.rt.ResolveOrInit(ctx, operator)
	if err != nil {
		return big.Zero(), err
	}
	return t.state.ChangeAllowanceBy(t.rt.Store(), ownerID, operatorID, increase)
}

// DecreaseAllowance shrinks the allowance between an owner and an operator,
// clamping at zero, and returns the new allowance.
func (t *Token) DecreaseAllowance(ctx context.Context, owner, operator address.Address, decrease abi.TokenAmount) (abi.TokenAmount, error) {
	if err := validateAllowance(decrease, "decrease"); err != nil {
		return big.Zero(), err
	}
	ownerID, err := t.rt.ResolveOrInit(ctx, owner)
	if err != nil {
		return big.Zero(), err
	}
	operatorID, err := t.rt.ResolveOrInit(ctx, operator)
	if err != nil {
		return big.Zero(), err
	}
	return t.state.ChangeAllowanceBy(t.rt.Store(), ownerID, operatorID, big.Sub(big.Zero(), decrease))
}

// RevokeAllowance removes the allowance between an owner and an operator,
// returning the old allowance. Unresolvable addresses cannot hold an
// allowance so revoking against them is a no-op.
func (t *Token) RevokeAllowance(ctx context.Context, owner, operator address.Address) (abi.TokenAmount, error) {
	ownerID, err := t.rt.ResolveID(ctx, owner)
	if err != nil {
		var notResolved *runtime.AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return big.Zero(), nil
		}
		return big.Zero(), err
	}
	operatorID, err := t.rt.ResolveID(ctx, operator)
	if err != nil {
		var notResolved *runtime.AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return big.Zero(), nil
		}
		return big.Zero(), err
	}
	return t.state.RevokeAllowance(t.rt.Store(), ownerID, operatorID)
}

// SetAllowance overwrites the allowance between an owner and an operator,
// returning the old allowance. Setting zero behaves like a revocation.
func (t *Token) SetAllowance(ctx context.Context, owner, operator address.Address, amount abi.TokenAmount) (abi.TokenAmount, error) {
	if err := validateAllowance(amount, "allowance"); err != nil {
		return big.Zero(), err
	}
	if amount.Sign() == 0 {
		return t.RevokeAllowance(ctx, owner, operator)
	}
	ownerID, err := t.rt.ResolveOrInit(ctx, owner)
	if err != nil {
		return big.Zero(), err
	}
	operatorID, err := t.rt.ResolveOrInit(ctx, operator)
	if err != nil {
		return big.Zero(), err
	}
	return t.state.SetAllowance(t.rt.Store(), ownerID, operatorID, amount)
}

// Burn destroys tokens from an account and shrinks the total supply to
// match, returning the remaining balance.
func (t *Token) Burn(ctx context.Context, owner address.Address, amount abi.TokenAmount) (*BurnReturn, error) {
	if err := validateAmount(amount, "burn", t.granularity); err != nil {
		return nil, err
	}
	ownerID, err := t.rt.ResolveID(ctx, owner)
	if err != nil {
		return nil, err
	}

	var remaining abi.TokenAmount
	err = t.transaction(func(st *TokenState, store adt.Store) error {
		if remaining, err = st.ChangeBalanceBy(store, ownerID, big.Sub(big.Zero(), amount)); err != nil {
			return err
		}
		_, err := st.ChangeSupplyBy(big.Sub(big.Zero(), amount))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BurnReturn{Balance: remaining}, nil
}

// BurnFrom destroys tokens from an owner's account on behalf of an
// operator, consuming the operator's allowance. The operator must be a
// distinct account, and an unresolvable operator or owner necessarily has
// no allowance to spend.
func (t *Token) BurnFrom(ctx context.Context, operator, owner address.Address, amount abi.TokenAmount) (*BurnFromReturn, error) {
	if err := validateAmount(amount, "burn", t.granularity); err != nil {
		return nil, err
	}
	if t.rt.SameAddress(ctx, operator, owner) {
		return nil, &InvalidOperatorError{Operator: operator}
	}
	operatorID, err := t.rt.ResolveID(ctx, operator)
	if err != nil {
		return nil, insufficientAllowanceIfUnresolved(err, owner, operator, amount)
	}
	ownerID, err := t.rt.ResolveID(ctx, owner)
	if err != nil {
		return nil, insufficientAllowanceIfUnresolved(err, owner, operator, amount)
	}

	var remaining, allowance abi.TokenAmount
	err = t.transaction(func(st *TokenState, store adt.Store) error {
		if allowance, err = st.AttemptUseAllowance(store, operatorID, ownerID, amount); err != nil {
			return err
		}
		if remaining, err = st.ChangeBalanceBy(store, ownerID, big.Sub(big.Zero(), amount)); err != nil {
			return err
		}
		_, err := st.ChangeSupplyBy(big.Sub(big.Zero(), amount))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BurnFromReturn{Balance: remaining, Allowance: allowance}, nil
}

// Transfer moves tokens from the caller's account to another, initializing
// the receiving account on chain if needed. The returned hook must be
// called after the mutated state has been committed, and the intermediate
// converted to a TransferReturn once the hook has run.
func (t *Token) Transfer(ctx context.Context, from, to address.Address, amount abi.TokenAmount, operatorData, tokenData []byte) (*receiver.Hook, *TransferIntermediate, error) {
	if err := validateAmount(amount, "transfer", t.granularity); err != nil {
		return nil, nil, err
	}
	fromID, err := t.rt.ResolveOrInit(ctx, from)
	if err != nil {
		return nil, nil, err
	}
	toID, err := t.rt.ResolveOrInit(ctx, to)
	if err != nil {
		return nil, nil, err
	}

	err = t.transaction(func(st *TokenState, store adt.Store) error {
		return st.MakeTransfer(store, fromID, toID, amount)
	})
	if err != nil {
		return nil, nil, err
	}

	intermediate := &TransferIntermediate{From: from, To: to}
	hook, err := receiver.NewHook(to, TokenType, &FRC46TokenReceived{
		Operator:     fromID,
		From:         fromID,
		To:           toID,
		Amount:       amount,
		OperatorData: operatorData,
		TokenData:    tokenData,
	}, intermediate)
	if err != nil {
		return nil, nil, err
	}
	return hook, intermediate, nil
}

// TransferReturn finalizes a transfer, reading both balances from whatever
// state is current after the receiver hook ran.
func (t *Token) TransferReturn(ctx context.Context, intermediate *TransferIntermediate) (*TransferReturn, error) {
	fromBalance, err := t.BalanceOf(ctx, intermediate.From)
	if err != nil {
		return nil, err
	}
	toBalance, err := t.BalanceOf(ctx, intermediate.To)
	if err != nil {
		return nil, err
	}
	return &TransferReturn{
		FromBalance:   fromBalance,
		ToBalance:     toBalance,
		RecipientData: intermediate.RecipientData,
	}, nil
}

// TransferFrom moves tokens between two accounts on behalf of an operator,
// consuming the operator's allowance from the owner. The operator must be a
// distinct account, and an unresolvable operator or owner necessarily has
// no allowance to spend. The returned hook must be called after the mutated
// state has been committed.
func (t *Token) TransferFrom(ctx context.Context, operator, from, to address.Address, amount abi.TokenAmount, operatorData, tokenData []byte) (*receiver.Hook, *TransferFromIntermediate, error) {
	if err := validateAmount(amount, "transfer", t.granularity); err != nil {
		return nil, nil, err
	}
	if t.rt.SameAddress(ctx, operator, from) {
		return nil, nil, &InvalidOperatorError{Operator: operator}
	}
	operatorID, err := t.rt.ResolveID(ctx, operator)
	if err != nil {
		return nil, nil, insufficientAllowanceIfUnresolved(err, from, operator, amount)
	}
	fromID, err := t.rt.ResolveID(ctx, from)
	if err != nil {
		return nil, nil, insufficientAllowanceIfUnresolved(err, from, operator, amount)
	}
	toID, err := t.rt.ResolveOrInit(ctx, to)
	if err != nil {
		return nil, nil, err
	}

	err = t.transaction(func(st *TokenState, store adt.Store) error {
		if _, err := st.AttemptUseAllowance(store, operatorID, fromID, amount); err != nil {
			return err
		}
		return st.MakeTransfer(store, fromID, toID, amount)
	})
	if err != nil {
		return nil, nil, err
	}

	intermediate := &TransferFromIntermediate{Operator: operator, From: from, To: to}
	hook, err := receiver.NewHook(to, TokenType, &FRC46TokenReceived{
		Operator:     operatorID,
		From:         fromID,
		To:           toID,
		Amount:       amount,
		OperatorData: operatorData,
		TokenData:    tokenData,
	}, intermediate)
	if err != nil {
		return nil, nil, err
	}
	return hook, intermediate, nil
}

// TransferFromReturn finalizes a delegated transfer, reading balances and
// the remaining allowance from whatever state is current after the receiver
// hook ran.
func (t *Token) TransferFromReturn(ctx context.Context, intermediate *TransferFromIntermediate) (*TransferFromReturn, error) {
	fromBalance, err := t.BalanceOf(ctx, intermediate.From)
	if err != nil {
		return nil, err
	}
	toBalance, err := t.BalanceOf(ctx, intermediate.To)
	if err != nil {
		return nil, err
	}
	allowance, err := t.Allowance(ctx, intermediate.From, intermediate.Operator)
	if err != nil {
		return nil, err
	}
	return &TransferFromReturn{
		FromBalance:   fromBalance,
		ToBalance:     toBalance,
		Allowance:     allowance,
		RecipientData: intermediate.RecipientData,
	}, nil
}

// SetBalance overwrites an account's balance, adjusting the total supply by
// the difference, and returns the old balance. This bypasses transfer
// semantics and is intended for token actors with their own issuance rules.
func (t *Token) SetBalance(ctx context.Context, owner address.Address, amount abi.TokenAmount) (abi.TokenAmount, error) {
	if err := validateAmount(amount, "balance", t.granularity); err != nil {
		return big.Zero(), err
	}
	ownerID, err := t.rt.ResolveOrInit(ctx, owner)
	if err != nil {
		return big.Zero(), err
	}

	var oldBalance abi.TokenAmount
	err = t.transaction(func(st *TokenState, store adt.Store) error {
		if oldBalance, err = st.SetBalance(store, ownerID, amount); err != nil {
			return err
		}
		_, err := st.ChangeSupplyBy(big.Sub(amount, oldBalance))
		return err
	})
	if err != nil {
		return big.Zero(), err
	}
	return oldBalance, nil
}

// CheckInvariants walks the wrapped state and returns all accounting
// violations found.
func (t *Token) CheckInvariants() (*StateSummary, []error) {
	return t.state.CheckInvariants(t.rt.Store(), t.granularity)
}

// AssertInvariants returns an error if the wrapped state violates any
// accounting invariant.
func (t *Token) AssertInvariants() error {
	_, violations := t.CheckInvariants()
	if len(violations) > 0 {
		return xerrors.Errorf("token state invariants violated: %v", violations)
	}
	return nil
}

// insufficientAllowanceIfUnresolved maps an address resolution failure to
// the zero allowance it implies, passing other errors through.
func insufficientAllowanceIfUnresolved(err error, owner, operator address.Address, amount abi.TokenAmount) error {
	var notResolved *runtime.AddressNotResolvedError
	if xerrors.As(err, &notResolved) {
		return &InsufficientAllowanceError{
			Owner:     owner,
			Operator:  operator,
			Allowance: big.Zero(),
			Delta:     amount,
		}
	}
	return err
}

// validateAmount rejects negative amounts and amounts that are not a
// multiple of the granularity.
func validateAmount(amount abi.TokenAmount, name string, granularity uint64) error {
	if amount.Sign() < 0 {
		return &InvalidNegativeError{Name: name, Amount: amount}
	}
	if granularity > 1 {
		rem := new(gobig.Int).Mod(amount.Int, new(gobig.Int).SetUint64(granularity))
		if rem.Sign() != 0 {
			return &InvalidGranularityError{Name: name, Amount: amount, Granularity: granularity}
		}
	}
	return nil
}

// validateAllowance rejects negative amounts. Allowances are not subject to
// granularity.
func validateAllowance(amount abi.TokenAmount, name string) error {
	if amount.Sign() < 0 {
		return &InvalidNegativeError{Name: name, Amount: amount}
	}
	return nil
}
