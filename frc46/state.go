// Package frc46 implements the accounting core of a fungible token actor:
// an IPLD state tree of balances and allowances, invariant-preserving
// mutators over it, and a transactional handle that layers address
// resolution and receiver hooks on top.
package frc46

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/ipfs/go-cid"
	typegen "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actors-utils/actors/adt"
)

// DefaultHamtBitWidth is chosen to reduce gas costs when accessing the
// balances map. Non-standard use cases might find a different value more
// efficient.
const DefaultHamtBitWidth = 3

// TokenState is the IPLD structure of a fungible token's accounting state.
type TokenState struct {
	// Supply is the sum of all balances.
	Supply abi.TokenAmount
	// Balances is a Map[ActorID]TokenAmount of non-zero balances.
	Balances cid.Cid
	// Allowances is a Map[ActorID]Cid where each value links to a
	// Map[ActorID]TokenAmount of the non-zero allowances approved by that
	// owner, keyed by operator.
	Allowances cid.Cid
	// HamtBitWidth is the bit width used for all maps in this state tree.
	HamtBitWidth uint64
}

// NewTokenState constructs a token state tree with no balances and no
// allowances, writing its empty maps to the store.
func NewTokenState(store adt.Store) (*TokenState, error) {
	return NewTokenStateWithBitWidth(store, DefaultHamtBitWidth)
}

// NewTokenStateWithBitWidth constructs an empty token state tree whose maps
// use a custom HAMT bit width.
func NewTokenStateWithBitWidth(store adt.Store, bitWidth uint64) (*TokenState, error) {
	emptyBalances, err := adt.StoreEmptyMap(store, int(bitWidth))
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty balances map: %w", err)
	}
	emptyAllowances, err := adt.StoreEmptyMap(store, int(bitWidth))
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty allowances map: %w", err)
	}
	return &TokenState{
		Supply:       big.Zero(),
		Balances:     emptyBalances,
		Allowances:   emptyAllowances,
		HamtBitWidth: bitWidth,
	}, nil
}

// LoadTokenState reads a token state tree from the store.
func LoadTokenState(store adt.Store, root cid.Cid) (*TokenState, error) {
	var state TokenState
	if err := store.Get(store.Context(), root, &state); err != nil {
		return nil, &MissingStateError{Cid: root, Err: err}
	}
	return &state, nil
}

// Save writes the state tree to the store and returns its root cid.
func (st *TokenState) Save(store adt.Store) (cid.Cid, error) {
	root, err := store.Put(store.Context(), st)
	if err != nil {
		return cid.Undef, xerrors.Errorf("failed to save token state: %w", err)
	}
	return root, nil
}

func (st *TokenState) balanceMap(store adt.Store) (*adt.Map, error) {
	return adt.AsMap(store, st.Balances, int(st.HamtBitWidth))
}

func (st *TokenState) allowancesMap(store adt.Store) (*adt.Map, error) {
	return adt.AsMap(store, st.Allowances, int(st.HamtBitWidth))
}

// ownerAllowanceMap resolves the allowance map an owner has approved, or nil
// if the owner has no non-zero allowances.
func (st *TokenState) ownerAllowanceMap(store adt.Store, owner abi.ActorID) (*adt.Map, error) {
	allowances, err := st.allowancesMap(store)
	if err != nil {
		return nil, err
	}
	var mapCid typegen.CborCid
	found, err := allowances.Get(adt.ActorKey(owner), &mapCid)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return adt.AsMap(store, cid.Cid(mapCid), int(st.HamtBitWidth))
}

// GetBalance returns the balance of an account. Accounts with no entry have
// an implicit zero balance.
func (st *TokenState) GetBalance(store adt.Store, owner abi.ActorID) (abi.TokenAmount, error) {
	balances, err := st.balanceMap(store)
	if err != nil {
		return big.Zero(), err
	}
	balance := big.Zero()
	if _, err := balances.Get(adt.ActorKey(owner), &balance); err != nil {
		return big.Zero(), err
	}
	return balance, nil
}

// ChangeBalanceBy applies a delta to an account's balance, returning the new
// balance. The entry is removed when the balance reaches zero, and the
// change is rejected if it would take the balance negative.
func (st *TokenState) ChangeBalanceBy(store adt.Store, owner abi.ActorID, delta abi.TokenAmount) (abi.TokenAmount, error) {
	if delta.Sign() == 0 {
		// no-op as far as mutating state
		return st.GetBalance(store, owner)
	}

	balances, err := st.balanceMap(store)
	if err != nil {
		return big.Zero(), err
	}
	ownerKey := adt.ActorKey(owner)
	balance := big.Zero()
	if _, err := balances.Get(ownerKey, &balance); err != nil {
		return big.Zero(), err
	}

	newBalance := big.Add(balance, delta)
	if newBalance.Sign() < 0 {
		return big.Zero(), &InsufficientBalanceError{Owner: owner, Balance: balance, Delta: delta}
	}

	if newBalance.Sign() == 0 {
		if _, err := balances.TryDelete(ownerKey); err != nil {
			return big.Zero(), err
		}
	} else {
		if err := balances.Put(ownerKey, &newBalance); err != nil {
			return big.Zero(), err
		}
	}

	if st.Balances, err = balances.Root(); err != nil {
		return big.Zero(), err
	}
	return newBalance, nil
}

// SetBalance overwrites an account's balance with a non-negative amount,
// returning the old balance. A zero amount removes the entry.
func (st *TokenState) SetBalance(store adt.Store, owner abi.ActorID, amount abi.TokenAmount) (abi.TokenAmount, error) {
	if amount.Sign() < 0 {
		return big.Zero(), &NegativeBalanceError{Owner: owner, Amount: amount}
	}

	balances, err := st.balanceMap(store)
	if err != nil {
		return big.Zero(), err
	}
	ownerKey := adt.ActorKey(owner)
	oldBalance := big.Zero()
	if _, err := balances.Get(ownerKey, &oldBalance); err != nil {
		return big.Zero(), err
	}

	if amount.Sign() == 0 {
		if _, err := balances.TryDelete(ownerKey); err != nil {
			return big.Zero(), err
		}
	} else {
		if err := balances.Put(ownerKey, &amount); err != nil {
			return big.Zero(), err
		}
	}

	if st.Balances, err = balances.Root(); err != nil {
		return big.Zero(), err
	}
	return oldBalance, nil
}

// MakeTransfer debits one account and credits another by the same amount.
// A self-transfer leaves the balance untouched but still fails if the amount
// exceeds it. Allowance and granularity checks are the caller's
// responsibility.
func (st *TokenState) MakeTransfer(store adt.Store, from, to abi.ActorID, amount abi.TokenAmount) error {
	if from == to {
		balance, err := st.GetBalance(store, from)
		if err != nil {
			return err
		}
		if balance.LessThan(amount) {
			return &InsufficientBalanceError{Owner: from, Balance: balance, Delta: big.Sub(big.Zero(), amount)}
		}
		return nil
	}
	if _, err := st.ChangeBalanceBy(store, from, big.Sub(big.Zero(), amount)); err != nil {
		return err
	}
	if _, err := st.ChangeBalanceBy(store, to, amount); err != nil {
		return err
	}
	return nil
}

// CountBalances returns the number of accounts holding a non-zero balance.
// This iterates the entire balances map.
func (st *TokenState) CountBalances(store adt.Store) (int, error) {
	balances, err := st.balanceMap(store)
	if err != nil {
		return 0, err
	}
	count := 0
	err = balances.ForEach(nil, func(string) error {
		count++
		return nil
	})
	return count, err
}

// ChangeSupplyBy applies a delta to the total supply, returning the new
// supply. The change is rejected if it would take the supply negative.
func (st *TokenState) ChangeSupplyBy(delta abi.TokenAmount) (abi.TokenAmount, error) {
	newSupply := big.Add(st.Supply, delta)
	if newSupply.Sign() < 0 {
		return big.Zero(), &NegativeTotalSupplyError{Supply: st.Supply, Delta: delta}
	}
	st.Supply = newSupply
	return newSupply, nil
}

// GetAllowance returns the allowance an owner has approved for an operator.
// Absent entries are implicitly zero.
func (st *TokenState) GetAllowance(store adt.Store, owner, operator abi.ActorID) (abi.TokenAmount, error) {
	ownerAllowances, err := st.ownerAllowanceMap(store, owner)
	if err != nil {
		return big.Zero(), err
	}
	if ownerAllowances == nil {
		return big.Zero(), nil
	}
	allowance := big.Zero()
	if _, err := ownerAllowances.Get(adt.ActorKey(operator), &allowance); err != nil {
		return big.Zero(), err
	}
	return allowance, nil
}

// ChangeAllowanceBy applies a delta to the allowance between an owner and an
// operator, clamping at zero, and returns the new allowance. Zero allowances
// are removed, and an owner's allowance map is removed once it empties.
func (st *TokenState) ChangeAllowanceBy(store adt.Store, owner, operator abi.ActorID, delta abi.TokenAmount) (abi.TokenAmount, error) {
	if delta.Sign() == 0 {
		// no-op as far as mutating state
		return st.GetAllowance(store, owner, operator)
	}

	allowances, err := st.allowancesMap(store)
	if err != nil {
		return big.Zero(), err
	}

	ownerKey := adt.ActorKey(owner)
	var ownerAllowances *adt.Map
	var mapCid typegen.CborCid
	found, err := allowances.Get(ownerKey, &mapCid)
	if err != nil {
		return big.Zero(), err
	}
	if found {
		if ownerAllowances, err = adt.AsMap(store, cid.Cid(mapCid), int(st.HamtBitWidth)); err != nil {
			return big.Zero(), err
		}
	} else {
		// the owner has no allowances and the delta cannot reduce below zero
		if delta.Sign() < 0 {
			return big.Zero(), nil
		}
		if ownerAllowances, err = adt.MakeEmptyMap(store, int(st.HamtBitWidth)); err != nil {
			return big.Zero(), err
		}
	}

	operatorKey := adt.ActorKey(operator)
	allowance := big.Zero()
	if _, err := ownerAllowances.Get(operatorKey, &allowance); err != nil {
		return big.Zero(), err
	}
	newAllowance := big.Max(big.Add(allowance, delta), big.Zero())

	if newAllowance.Sign() == 0 {
		if _, err := ownerAllowances.TryDelete(operatorKey); err != nil {
			return big.Zero(), err
		}
	} else {
		if err := ownerAllowances.Put(operatorKey, &newAllowance); err != nil {
			return big.Zero(), err
		}
	}

	empty, err := ownerAllowances.IsEmpty()
	if err != nil {
		return big.Zero(), err
	}
	if empty {
		if _, err := allowances.TryDelete(ownerKey); err != nil {
			return big.Zero(), err
		}
	} else {
		newMapCid, err := ownerAllowances.Root()
		if err != nil {
			return big.Zero(), err
		}
		link := typegen.CborCid(newMapCid)
		if err := allowances.Put(ownerKey, &link); err != nil {
			return big.Zero(), err
		}
	}

	if st.Allowances, err = allowances.Root(); err != nil {
		return big.Zero(), err
	}
	return newAllowance, nil
}

// RevokeAllowance removes the allowance between an owner and an operator,
// returning the old allowance. The owner's allowance map is removed once it
// empties.
func (st *TokenState) RevokeAllowance(store adt.Store, owner, operator abi.ActorID) (abi.TokenAmount, error) {
	ownerAllowances, err := st.ownerAllowanceMap(store, owner)
	if err != nil {
		return big.Zero(), err
	}
	if ownerAllowances == nil {
		// no allowance map exists, there is nothing to do
		return big.Zero(), nil
	}

	operatorKey := adt.ActorKey(operator)
	oldAllowance := big.Zero()
	if _, err := ownerAllowances.Get(operatorKey, &oldAllowance); err != nil {
		return big.Zero(), err
	}
	if _, err := ownerAllowances.TryDelete(operatorKey); err != nil {
		return big.Zero(), err
	}

	allowances, err := st.allowancesMap(store)
	if err != nil {
		return big.Zero(), err
	}
	ownerKey := adt.ActorKey(owner)
	empty, err := ownerAllowances.IsEmpty()
	if err != nil {
		return big.Zero(), err
	}
	if empty {
		if _, err := allowances.TryDelete(ownerKey); err != nil {
			return big.Zero(), err
		}
	} else {
		newMapCid, err := ownerAllowances.Root()
		if err != nil {
			return big.Zero(), err
		}
		link := typegen.CborCid(newMapCid)
		if err := allowances.Put(ownerKey, &link); err != nil {
			return big.Zero(), err
		}
	}

	if st.Allowances, err = allowances.Root(); err != nil {
		return big.Zero(), err
	}
	return oldAllowance, nil
}

// SetAllowance overwrites the allowance between an owner and an operator
// with a non-negative amount, returning the old allowance. Setting zero is
// equivalent to revoking.
func (st *TokenState) SetAllowance(store adt.Store, owner, operator abi.ActorID, amount abi.TokenAmount) (abi.TokenAmount, error) {
	if amount.Sign() < 0 {
		return big.Zero(), &NegativeAllowanceError{Owner: owner, Operator: operator, Amount: amount}
	}
	if amount.Sign() == 0 {
		// zero allowances are never stored
		return st.RevokeAllowance(store, owner, operator)
	}

	allowances, err := st.allowancesMap(store)
	if err != nil {
		return big.Zero(), err
	}

	ownerKey := adt.ActorKey(owner)
	var ownerAllowances *adt.Map
	var mapCid typegen.CborCid
	found, err := allowances.Get(ownerKey, &mapCid)
	if err != nil {
		return big.Zero(), err
	}
	if found {
		if ownerAllowances, err = adt.AsMap(store, cid.Cid(mapCid), int(st.HamtBitWidth)); err != nil {
			return big.Zero(), err
		}
	} else {
		if ownerAllowances, err = adt.MakeEmptyMap(store, int(st.HamtBitWidth)); err != nil {
			return big.Zero(), err
		}
	}

	operatorKey := adt.ActorKey(operator)
	oldAllowance := big.Zero()
	if _, err := ownerAllowances.Get(operatorKey, &oldAllowance); err != nil {
		return big.Zero(), err
	}
	if err := ownerAllowances.Put(operatorKey, &amount); err != nil {
		return big.Zero(), err
	}

	newMapCid, err := ownerAllowances.Root()
	if err != nil {
		return big.Zero(), err
	}
	link := typegen.CborCid(newMapCid)
	if err := allowances.Put(ownerKey, &link); err != nil {
		return big.Zero(), err
	}

	if st.Allowances, err = allowances.Root(); err != nil {
		return big.Zero(), err
	}
	return oldAllowance, nil
}

// AttemptUseAllowance atomically checks that the operator's allowance covers
// the amount and deducts it, returning the new allowance. The state is
// unchanged on failure. A zero allowance always fails for a distinct
// operator, even for a zero amount.
func (st *TokenState) AttemptUseAllowance(store adt.Store, operator, owner abi.ActorID, amount abi.TokenAmount) (abi.TokenAmount, error) {
	allowance, err := st.GetAllowance(store, owner, operator)
	if err != nil {
		return big.Zero(), err
	}

	if (allowance.Sign() == 0 && operator != owner) || allowance.LessThan(amount) {
		ownerAddr := idAddress(owner)
		operatorAddr := idAddress(operator)
		return big.Zero(), &InsufficientAllowanceError{
			Owner:     ownerAddr,
			Operator:  operatorAddr,
			Allowance: allowance,
			Delta:     amount,
		}
	}

	if amount.Sign() == 0 {
		return allowance, nil
	}
	return st.ChangeAllowanceBy(store, owner, operator, big.Sub(big.Zero(), amount))
}
