package frc53

import (
	"github.com/filecoin-project/go-state-types/abi"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actors-utils/actors/adt"
)

// StateSummary reports the fully-expanded contents of a collection state
// tree, gathered while checking its invariants.
type StateSummary struct {
	TotalSupply uint64
	OwnerData   map[abi.ActorID]OwnerData
	TokenData   map[TokenID]TokenData
}

// CheckInvariants walks the state tree and reports every violated
// accounting invariant. An empty slice means the state is consistent.
func (st *NFTState) CheckInvariants(store adt.Store) (*StateSummary, []error) {
	var violations []error

	summary := &StateSummary{
		TotalSupply: st.TotalSupply,
		OwnerData:   map[abi.ActorID]OwnerData{},
		TokenData:   map[TokenID]TokenData{},
	}

	tokens, err := st.tokenDataArray(store)
	if err != nil {
		return summary, append(violations, xerrors.Errorf("failed to load token array: %w", err))
	}
	owners, err := st.ownerDataMap(store)
	if err != nil {
		return summary, append(violations, xerrors.Errorf("failed to load owner map: %w", err))
	}

	if length := tokens.Length(); length != st.TotalSupply {
		violations = append(violations, xerrors.Errorf("total supply %d does not match %d live tokens", st.TotalSupply, length))
	}

	// Tally token ownership from the token records themselves.
	tallied := map[abi.ActorID]uint64{}
	var tokenData TokenData
	err = tokens.ForEach(&tokenData, func(i uint64) error {
		tallied[tokenData.Owner]++
		summary.TokenData[i] = TokenData{
			Owner:     tokenData.Owner,
			Operators: tokenData.Operators,
			Metadata:  tokenData.Metadata,
		}
		return nil
	})
	if err != nil {
		return summary, append(violations, xerrors.Errorf("failed to iterate tokens: %w", err))
	}

	var ownerData OwnerData
	err = owners.ForEach(&ownerData, func(key string) error {
		owner, err := adt.ParseActorKey(key)
		if err != nil {
			violations = append(violations, xerrors.Errorf("owner map contains invalid key %x", key))
			return nil
		}

		empty, err := ownerData.Operators.IsEmpty()
		if err != nil {
			violations = append(violations, xerrors.Errorf("failed to inspect operators of owner %d: %w", owner, err))
			return nil
		}
		if ownerData.Balance == 0 && empty {
			violations = append(violations, xerrors.Errorf("owner %d has an explicit entry with no balance and no operators", owner))
		}
		if tally := tallied[owner]; ownerData.Balance != tally {
			violations = append(violations, xerrors.Errorf("owner %d records a balance of %d but owns %d tokens", owner, ownerData.Balance, tally))
		}
		delete(tallied, owner)

		summary.OwnerData[owner] = OwnerData{
			Balance:   ownerData.Balance,
			Operators: ownerData.Operators,
		}
		return nil
	})
	if err != nil {
		return summary, append(violations, xerrors.Errorf("failed to iterate owners: %w", err))
	}

	// Anything left in the tally owns tokens but has no index entry.
	for owner, count := range tallied {
		violations = append(violations, xerrors.Errorf("owner %d owns %d tokens but has no entry", owner, count))
	}

	return summary, violations
}
