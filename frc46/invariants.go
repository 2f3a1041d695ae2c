package frc46

import (
	gobig "math/big"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/ipfs/go-cid"
	typegen "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actors-utils/actors/adt"
)

// StateSummary is a decoded snapshot of a token state tree, produced as a
// side effect of invariant checking. It is valid only when the check
// reported no violations.
type StateSummary struct {
	Balances    map[abi.ActorID]abi.TokenAmount
	Allowances  map[abi.ActorID]map[abi.ActorID]abi.TokenAmount
	TotalSupply abi.TokenAmount
}

// CheckInvariants walks the entire state tree and verifies the accounting
// invariants hold: supply is non-negative and equal to the sum of balances,
// stored balances and allowances are strictly positive, balances are
// multiples of the granularity, no owner holds an allowance for themselves,
// and every map key parses as an actor id. All violations found are
// returned, not just the first.
func (st *TokenState) CheckInvariants(store adt.Store, granularity uint64) (*StateSummary, []error) {
	var violations []error

	if st.Supply.Sign() < 0 {
		violations = append(violations, xerrors.Errorf("total supply %s is negative", st.Supply))
	}

	summary := &StateSummary{
		Balances:    map[abi.ActorID]abi.TokenAmount{},
		Allowances:  map[abi.ActorID]map[abi.ActorID]abi.TokenAmount{},
		TotalSupply: st.Supply,
	}

	balances, err := st.balanceMap(store)
	if err != nil {
		return summary, append(violations, xerrors.Errorf("failed to load balances map: %w", err))
	}

	balanceSum := big.Zero()
	balance := big.Zero()
	err = balances.ForEach(&balance, func(key string) error {
		owner, err := adt.ParseActorKey(key)
		if err != nil {
			violations = append(violations, xerrors.Errorf("invalid balances key %x: %w", key, err))
			return nil
		}
		if balance.Sign() < 0 {
			violations = append(violations, xerrors.Errorf("balance of %d is negative: %s", owner, balance))
		}
		if balance.Sign() == 0 {
			violations = append(violations, xerrors.Errorf("explicit zero balance stored for %d", owner))
		}
		if !isMultipleOf(balance, granularity) {
			violations = append(violations, xerrors.Errorf("balance of %d is not a multiple of granularity %d: %s", owner, granularity, balance))
		}
		balanceSum = big.Add(balanceSum, balance)
		summary.Balances[owner] = big.Add(big.Zero(), balance)
		return nil
	})
	if err != nil {
		return summary, append(violations, xerrors.Errorf("failed to iterate balances map: %w", err))
	}

	if !balanceSum.Equals(st.Supply) {
		violations = append(violations, xerrors.Errorf("total supply %s does not match sum of balances %s", st.Supply, balanceSum))
	}

	allowances, err := st.allowancesMap(store)
	if err != nil {
		return summary, append(violations, xerrors.Errorf("failed to load allowances map: %w", err))
	}

	var mapCid typegen.CborCid
	err = allowances.ForEach(&mapCid, func(key string) error {
		owner, err := adt.ParseActorKey(key)
		if err != nil {
			violations = append(violations, xerrors.Errorf("invalid allowances key %x: %w", key, err))
			return nil
		}
		ownerAllowances, err := adt.AsMap(store, cid.Cid(mapCid), int(st.HamtBitWidth))
		if err != nil {
			violations = append(violations, xerrors.Errorf("failed to load allowance map of %d: %w", owner, err))
			return nil
		}

		entries := map[abi.ActorID]abi.TokenAmount{}
		allowance := big.Zero()
		err = ownerAllowances.ForEach(&allowance, func(innerKey string) error {
			operator, err := adt.ParseActorKey(innerKey)
			if err != nil {
				violations = append(violations, xerrors.Errorf("invalid allowance key %x under owner %d: %w", innerKey, owner, err))
				return nil
			}
			if operator == owner {
				violations = append(violations, xerrors.Errorf("owner %d holds an allowance for themselves", owner))
			}
			if allowance.Sign() < 0 {
				violations = append(violations, xerrors.Errorf("allowance of %d for operator %d is negative: %s", owner, operator, allowance))
			}
			if allowance.Sign() == 0 {
				violations = append(violations, xerrors.Errorf("explicit zero allowance stored for owner %d, operator %d", owner, operator))
			}
			entries[operator] = big.Add(big.Zero(), allowance)
			return nil
		})
		if err != nil {
			violations = append(violations, xerrors.Errorf("failed to iterate allowance map of %d: %w", owner, err))
			return nil
		}

		if len(entries) == 0 {
			violations = append(violations, xerrors.Errorf("empty allowance map stored for owner %d", owner))
		}
		summary.Allowances[owner] = entries
		return nil
	})
	if err != nil {
		return summary, append(violations, xerrors.Errorf("failed to iterate allowances map: %w", err))
	}

	return summary, violations
}

// isMultipleOf reports whether an amount is an integer multiple of the
// granularity. A granularity of one admits everything.
func isMultipleOf(amount abi.TokenAmount, granularity uint64) bool {
	if granularity <= 1 {
		return true
	}
	rem := new(gobig.Int).Mod(amount.Int, new(gobig.Int).SetUint64(granularity))
	return rem.Sign() == 0
}
