package frc53

import (
	"context"
	"fmt"
	"testing"

	"github.com/filecoin-project/go-bitfield"
	"github.com/filecoin-project/go-state-types/abi"
	cbor "github.com/ipfs/go-ipld-cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-actors-utils/actors/adt"
)

const (
	alice abi.ActorID = 100
	bob   abi.ActorID = 101
	carol abi.ActorID = 102
)

func newTestState(t *testing.T) (*NFTState, adt.Store) {
	store := adt.WrapStore(context.Background(), cbor.NewMemCborStore())
	state, err := NewNFTState(store)
	require.NoError(t, err)
	return state, store
}

// mintBatch mints n tokens to the owner with generated metadata.
func mintBatch(t *testing.T, st *NFTState, store adt.Store, owner abi.ActorID, n int) []TokenID {
	metadata := make([]string, n)
	for i := range metadata {
		metadata[i] = fmt.Sprintf("metadata-%d", i)
	}
	intermediate, err := st.MintTokens(store, owner, metadata)
	require.NoError(t, err)
	return intermediate.TokenIDs
}

func ownsToken(owner abi.ActorID) TokenPredicate {
	return func(data *TokenData, tokenID TokenID) error {
		return assertOwnsToken(data, tokenID, owner)
	}
}

func assertSetEquals(t *testing.T, set bitfield.BitField, ids ...uint64) {
	count, err := set.Count()
	require.NoError(t, err)
	require.Equal(t, uint64(len(ids)), count)
	for _, id := range ids {
		ok, err := set.IsSet(id)
		require.NoError(t, err)
		assert.True(t, ok, "expected %d in set", id)
	}
}

func TestMintAssignsSequentialIDs(t *testing.T) {
	st, store := newTestState(t)

	ids := mintBatch(t, st, store, alice, 3)
	assert.Equal(t, []TokenID{0, 1, 2}, ids)
	assert.Equal(t, TokenID(3), st.NextToken)
	assert.Equal(t, uint64(3), st.TotalSupply)

	balance, err := st.GetBalance(store, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), balance)

	// a second mint continues where the first left off
	ids = mintBatch(t, st, store, bob, 2)
	assert.Equal(t, []TokenID{3, 4}, ids)
	assert.Equal(t, uint64(5), st.TotalSupply)
}

func TestMintedTokenData(t *testing.T) {
	st, store := newTestState(t)

	intermediate, err := st.MintTokens(store, alice, []string{"first", "second"})
	require.NoError(t, err)
	require.Equal(t, []TokenID{0, 1}, intermediate.TokenIDs)

	owner, err := st.GetOwner(store, 0)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)

	metadata, err := st.GetMetadata(store, 1)
	require.NoError(t, err)
	assert.Equal(t, "second", metadata)

	_, err = st.GetOwner(store, 2)
	var notFound *TokenNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, TokenID(2), notFound.TokenID)
}

func TestBurnTokens(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 4)

	balance, err := st.BurnTokens(store, alice, []TokenID{0, 2}, ownsToken(alice))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), balance)
	assert.Equal(t, uint64(2), st.TotalSupply)

	_, err = st.GetOwner(store, 0)
	var notFound *TokenNotFoundError
	require.ErrorAs(t, err, &notFound)

	// burned ids are never reassigned
	ids := mintBatch(t, st, store, alice, 1)
	assert.Equal(t, []TokenID{4}, ids)
}

func TestBurnMissingTokenFails(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 2)

	_, err := st.BurnTokens(store, alice, []TokenID{0, 99}, ownsToken(alice))
	var notFound *TokenNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, TokenID(99), notFound.TokenID)
}

func TestBurnRequiresOwnership(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 2)

	_, err := st.BurnTokens(store, bob, []TokenID{0}, ownsToken(bob))
	var notOwner *NotOwnerError
	require.ErrorAs(t, err, &notOwner)
	assert.Equal(t, bob, notOwner.Actor)
	assert.Equal(t, TokenID(0), notOwner.TokenID)
}

func TestBurnCollapsesOwnerEntry(t *testing.T) {
	st, store := newTestState(t)
	ids := mintBatch(t, st, store, alice, 2)

	_, err := st.BurnTokens(store, alice, ids, ownsToken(alice))
	require.NoError(t, err)

	emptyMap, err := adt.StoreEmptyMap(store, hamtBitWidth)
	require.NoError(t, err)
	assert.True(t, st.OwnerData.Equals(emptyMap))
}

func TestTransferReindexesOwners(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 3)

	intermediate, err := st.Transfer(store, []TokenID{0, 1}, alice, bob, ownsToken(alice))
	require.NoError(t, err)
	assert.Equal(t, alice, intermediate.From)
	assert.Equal(t, bob, intermediate.To)

	owner, err := st.GetOwner(store, 0)
	require.NoError(t, err)
	assert.Equal(t, bob, owner)

	aliceBalance, err := st.GetBalance(store, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), aliceBalance)

	bobBalance, err := st.GetBalance(store, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), bobBalance)

	// supply is unchanged by transfers
	assert.Equal(t, uint64(3), st.TotalSupply)
}

func TestTransferResetsTokenOperators(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 1)

	err := st.ApproveForTokens(store, carol, []TokenID{0}, ownsToken(alice))
	require.NoError(t, err)

	operators, _, err := st.ListTokenOperators(store, 0, nil, 0)
	require.NoError(t, err)
	assertSetEquals(t, operators, uint64(carol))

	_, err = st.Transfer(store, []TokenID{0}, alice, bob, ownsToken(alice))
	require.NoError(t, err)

	operators, _, err = st.ListTokenOperators(store, 0, nil, 0)
	require.NoError(t, err)
	assertSetEquals(t, operators)
}

func TestTransferRequiresOwnership(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 2)
	mintBatch(t, st, store, bob, 1)

	_, err := st.Transfer(store, []TokenID{0, 2}, alice, carol, ownsToken(alice))
	var notOwner *NotOwnerError
	require.ErrorAs(t, err, &notOwner)
	assert.Equal(t, TokenID(2), notOwner.TokenID)
}

func TestApproveAndRevokeForTokens(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 2)

	err := st.ApproveForTokens(store, bob, []TokenID{0, 1}, ownsToken(alice))
	require.NoError(t, err)

	operators, _, err := st.ListTokenOperators(store, 0, nil, 0)
	require.NoError(t, err)
	assertSetEquals(t, operators, uint64(bob))

	err = st.RevokeForTokens(store, bob, []TokenID{0}, ownsToken(alice))
	require.NoError(t, err)

	operators, _, err = st.ListTokenOperators(store, 0, nil, 0)
	require.NoError(t, err)
	assertSetEquals(t, operators)

	// token 1 retains the approval
	operators, _, err = st.ListTokenOperators(store, 1, nil, 0)
	require.NoError(t, err)
	assertSetEquals(t, operators, uint64(bob))
}

func TestApproveForOwner(t *testing.T) {
	st, store := newTestState(t)

	// approving on an account with no tokens creates its entry
	err := st.ApproveForOwner(store, alice, bob)
	require.NoError(t, err)

	ok, err := st.IsAccountOperator(store, alice, bob)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = st.IsAccountOperator(store, alice, carol)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRevokeForAllCollapsesEmptyEntry(t *testing.T) {
	st, store := newTestState(t)

	err := st.ApproveForOwner(store, alice, bob)
	require.NoError(t, err)
	err = st.RevokeForAll(store, alice, bob)
	require.NoError(t, err)

	emptyMap, err := adt.StoreEmptyMap(store, hamtBitWidth)
	require.NoError(t, err)
	assert.True(t, st.OwnerData.Equals(emptyMap))

	// revoking for an absent owner is a no-op
	err = st.RevokeForAll(store, carol, bob)
	require.NoError(t, err)
}

func TestIsAccountOperatorUnknownOwner(t *testing.T) {
	st, store := newTestState(t)

	_, err := st.IsAccountOperator(store, alice, bob)
	require.Error(t, err)
}

func TestListTokensPagination(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 10)

	var seen []uint64
	var cursor *Cursor
	for i := 0; i < 4; i++ {
		tokens, next, err := st.ListTokens(store, cursor, 3)
		require.NoError(t, err)
		err = tokens.ForEach(func(id uint64) error {
			seen = append(seen, id)
			return nil
		})
		require.NoError(t, err)
		cursor = next
		if cursor == nil {
			break
		}
	}
	assert.Nil(t, cursor)
	assert.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, seen)
}

func TestListTokensUnlimited(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 10)

	tokens, next, err := st.ListTokens(store, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, next)
	count, err := tokens.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(10), count)
}

func TestCursorInvalidatedByMutation(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 6)

	_, cursor, err := st.ListTokens(store, nil, 3)
	require.NoError(t, err)
	require.NotNil(t, cursor)

	// any mutation of the token array moves its root
	_, err = st.BurnTokens(store, alice, []TokenID{5}, ownsToken(alice))
	require.NoError(t, err)

	_, _, err = st.ListTokens(store, cursor, 3)
	var invalid *InvalidCursorError
	require.ErrorAs(t, err, &invalid)
}

func TestListOwnedTokens(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 2)
	mintBatch(t, st, store, bob, 2)
	mintBatch(t, st, store, alice, 1)

	tokens, next, err := st.ListOwnedTokens(store, alice, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, next)
	assertSetEquals(t, tokens, 0, 1, 4)
}

func TestListOperatorTokens(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 4)

	err := st.ApproveForTokens(store, bob, []TokenID{1, 3}, ownsToken(alice))
	require.NoError(t, err)

	tokens, next, err := st.ListOperatorTokens(store, bob, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, next)
	assertSetEquals(t, tokens, 1, 3)
}

func TestListAccountOperatorsPagination(t *testing.T) {
	st, store := newTestState(t)

	for id := abi.ActorID(200); id < 205; id++ {
		require.NoError(t, st.ApproveForOwner(store, alice, id))
	}

	operators, next, err := st.ListAccountOperators(store, alice, nil, 3)
	require.NoError(t, err)
	require.NotNil(t, next)
	assertSetEquals(t, operators, 200, 201, 202)

	operators, next, err = st.ListAccountOperators(store, alice, next, 3)
	require.NoError(t, err)
	assert.Nil(t, next)
	assertSetEquals(t, operators, 203, 204)

	// an owner with no entry has no operators
	operators, next, err = st.ListAccountOperators(store, bob, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, next)
	assertSetEquals(t, operators)
}

func TestAccountOperatorCursorInvalidatedByMutation(t *testing.T) {
	st, store := newTestState(t)
	for id := abi.ActorID(200); id < 204; id++ {
		require.NoError(t, st.ApproveForOwner(store, alice, id))
	}

	_, cursor, err := st.ListAccountOperators(store, alice, nil, 2)
	require.NoError(t, err)
	require.NotNil(t, cursor)

	require.NoError(t, st.ApproveForOwner(store, alice, 300))

	_, _, err = st.ListAccountOperators(store, alice, cursor, 2)
	var invalid *InvalidCursorError
	require.ErrorAs(t, err, &invalid)
}

func TestStateRoundTrip(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 3)
	require.NoError(t, st.ApproveForOwner(store, alice, bob))

	root, err := st.Save(store)
	require.NoError(t, err)

	loaded, err := LoadNFTState(store, root)
	require.NoError(t, err)
	assert.Equal(t, st.TotalSupply, loaded.TotalSupply)
	assert.Equal(t, st.NextToken, loaded.NextToken)
	assert.True(t, st.TokenData.Equals(loaded.TokenData))
	assert.True(t, st.OwnerData.Equals(loaded.OwnerData))
}

func TestLoadMissingStateFails(t *testing.T) {
	st, store := newTestState(t)
	otherStore := adt.WrapStore(context.Background(), cbor.NewMemCborStore())

	root, err := st.Save(otherStore)
	require.NoError(t, err)

	_, err = LoadNFTState(store, root)
	var missing *MissingStateError
	require.ErrorAs(t, err, &missing)
	assert.True(t, root.Equals(missing.Cid))
}

func TestCheckInvariantsCleanState(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 3)
	mintBatch(t, st, store, bob, 2)
	_, err := st.Transfer(store, []TokenID{0}, alice, carol, ownsToken(alice))
	require.NoError(t, err)
	_, err = st.BurnTokens(store, bob, []TokenID{3}, ownsToken(bob))
	require.NoError(t, err)

	summary, violations := st.CheckInvariants(store)
	assert.Empty(t, violations)
	assert.Equal(t, uint64(4), summary.TotalSupply)
	assert.Len(t, summary.TokenData, 4)
	assert.Equal(t, uint64(2), summary.OwnerData[alice].Balance)
	assert.Equal(t, uint64(1), summary.OwnerData[carol].Balance)
}

func TestCheckInvariantsDetectsSupplyMismatch(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 3)

	st.TotalSupply = 5
	_, violations := st.CheckInvariants(store)
	assert.NotEmpty(t, violations)
}

func TestCheckInvariantsDetectsBalanceMismatch(t *testing.T) {
	st, store := newTestState(t)
	mintBatch(t, st, store, alice, 2)

	owners, err := st.ownerDataMap(store)
	require.NoError(t, err)
	err = owners.Put(adt.ActorKey(alice), &OwnerData{Balance: 7, Operators: bitfield.New()})
	require.NoError(t, err)
	st.OwnerData, err = owners.Root()
	require.NoError(t, err)

	_, violations := st.CheckInvariants(store)
	assert.NotEmpty(t, violations)
}

func TestCheckInvariantsDetectsExplicitEmptyOwner(t *testing.T) {
	st, store := newTestState(t)

	owners, err := st.ownerDataMap(store)
	require.NoError(t, err)
	err = owners.Put(adt.ActorKey(alice), &OwnerData{Operators: bitfield.New()})
	require.NoError(t, err)
	st.OwnerData, err = owners.Root()
	require.NoError(t, err)

	_, violations := st.CheckInvariants(store)
	assert.NotEmpty(t, violations)
}
