package frc53

import (
	"github.com/filecoin-project/go-bitfield"
	"github.com/filecoin-project/go-state-types/abi"
)

// Operator sets are rle+ bitfields where the index of each set bit is an
// actor id. Insertion and removal are idempotent.

// AddOperator marks an actor as a member of the set.
func AddOperator(set *bitfield.BitField, operator abi.ActorID) {
	set.Set(uint64(operator))
}

// RemoveOperator clears an actor's membership in the set.
func RemoveOperator(set *bitfield.BitField, operator abi.ActorID) {
	set.Unset(uint64(operator))
}

// ContainsActor checks an actor's membership in the set.
func ContainsActor(set *bitfield.BitField, operator abi.ActorID) (bool, error) {
	return set.IsSet(uint64(operator))
}

// slicePage copies a window of a set into a fresh bitfield, skipping the
// first start members and taking at most limit. A zero limit takes
// everything. Reports whether members remain beyond the window.
func slicePage(set *bitfield.BitField, start, limit uint64) (bitfield.BitField, bool, error) {
	page := bitfield.New()
	count, err := set.Count()
	if err != nil {
		return page, false, err
	}
	if start >= count {
		return page, false, nil
	}

	seen := uint64(0)
	taken := uint64(0)
	err = set.ForEach(func(member uint64) error {
		if seen >= start && (limit == 0 || taken < limit) {
			page.Set(member)
			taken++
		}
		seen++
		return nil
	})
	if err != nil {
		return page, false, err
	}

	hasMore := limit > 0 && count > start+limit
	return page, hasMore, nil
}
