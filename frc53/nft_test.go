package frc53

import (
	"bytes"
	"context"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-actors-utils/actors/runtime"
	"github.com/filecoin-project/go-actors-utils/receiver"
)

const collectionActor = abi.ActorID(1)

func newTestNFT(t *testing.T) (*NFT, *runtime.ActorRuntime, *runtime.FakeSyscalls) {
	rt, sys := runtime.NewTestRuntime(context.Background(), collectionActor)
	nft, err := CreateState(rt)
	require.NoError(t, err)
	return nft, rt, sys
}

func idAddr(t *testing.T, id abi.ActorID) address.Address {
	addr, err := address.NewIDAddress(uint64(id))
	require.NoError(t, err)
	return addr
}

func secpAddr(t *testing.T, seed byte) address.Address {
	key := make([]byte, 65)
	key[0] = seed
	addr, err := address.NewSecp256k1Address(key)
	require.NoError(t, err)
	return addr
}

// completeHook commits the mutated state, runs the receiver hook and
// refreshes the handle, the way an actor handles the tail of a mint or
// transfer.
func completeHook(t *testing.T, nft *NFT, rt *runtime.ActorRuntime, hook *receiver.Hook) {
	root, err := nft.Flush()
	require.NoError(t, err)
	require.NoError(t, rt.SetRoot(root))
	require.NoError(t, hook.Call(context.Background(), rt))
	_, err = nft.ReloadIfChanged(root)
	require.NoError(t, err)
}

// mintTo mints n tokens to the owner with empty metadata, completing the
// receiver hook.
func mintTo(t *testing.T, nft *NFT, rt *runtime.ActorRuntime, owner address.Address, n int) []TokenID {
	ctx := context.Background()
	hook, intermediate, err := nft.Mint(ctx, owner, owner, make([]string, n), nil, nil)
	require.NoError(t, err)
	completeHook(t, nft, rt, hook)
	return intermediate.TokenIDs
}

func TestMintDeliversHook(t *testing.T) {
	ctx := context.Background()
	nft, rt, sys := newTestNFT(t)
	operator := idAddr(t, 500)
	owner := idAddr(t, 501)

	hook, intermediate, err := nft.Mint(ctx, operator, owner, []string{"a", "b", "c"}, []byte("mint"), nil)
	require.NoError(t, err)
	completeHook(t, nft, rt, hook)

	ret, err := nft.MintReturn(intermediate)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), ret.Balance)
	assert.Equal(t, uint64(3), ret.Supply)
	assert.Equal(t, []TokenID{0, 1, 2}, ret.TokenIDs)

	// the hook was delivered to the initial owner
	require.NotNil(t, sys.LastMessage)
	assert.Equal(t, owner, sys.LastMessage.To)
	assert.Equal(t, receiver.MethodNum, sys.LastMessage.Method)

	var params receiver.UniversalReceiverParams
	require.NoError(t, params.UnmarshalCBOR(bytes.NewReader(sys.LastMessage.Params)))
	assert.Equal(t, TokenType, params.Type)

	var payload FRC53TokenReceived
	require.NoError(t, payload.UnmarshalCBOR(bytes.NewReader(params.Payload)))
	assert.Equal(t, abi.ActorID(501), payload.To)
	assert.Equal(t, abi.ActorID(500), payload.Operator)
	assert.Equal(t, []TokenID{0, 1, 2}, payload.TokenIDs)
	assert.Equal(t, []byte("mint"), payload.OperatorData)
}

func TestMintToUninitializedAccount(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := secpAddr(t, 1)

	hook, intermediate, err := nft.Mint(ctx, idAddr(t, 500), owner, []string{""}, nil, nil)
	require.NoError(t, err)
	completeHook(t, nft, rt, hook)

	ret, err := nft.MintReturn(intermediate)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ret.Balance)

	// the account was instantiated and now resolves
	balance, err := nft.BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)
}

func TestMintAbortRestoresPriorState(t *testing.T) {
	ctx := context.Background()
	nft, rt, sys := newTestNFT(t)
	owner := idAddr(t, 501)

	priorRoot, err := nft.Flush()
	require.NoError(t, err)
	require.NoError(t, rt.SetRoot(priorRoot))

	hook, _, err := nft.Mint(ctx, idAddr(t, 500), owner, []string{""}, nil, nil)
	require.NoError(t, err)
	root, err := nft.Flush()
	require.NoError(t, err)
	require.NoError(t, rt.SetRoot(root))

	sys.NextSendExitCode = exitcode.ErrForbidden
	err = hook.Call(ctx, rt)
	var receiverErr *receiver.ReceiverError
	require.ErrorAs(t, err, &receiverErr)
	assert.Equal(t, exitcode.ErrForbidden, receiverErr.ExitCode)

	// an aborting actor rolls back to the pre-mint state
	_, err = nft.LoadReplace(priorRoot)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nft.TotalSupply())
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	recipient := idAddr(t, 502)
	mintTo(t, nft, rt, owner, 3)

	hook, intermediate, err := nft.Transfer(ctx, owner, recipient, []TokenID{0, 2}, nil, nil)
	require.NoError(t, err)
	completeHook(t, nft, rt, hook)

	ret, err := nft.TransferReturn(intermediate)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ret.FromBalance)
	assert.Equal(t, uint64(2), ret.ToBalance)

	newOwner, err := nft.OwnerOf(0)
	require.NoError(t, err)
	assert.Equal(t, abi.ActorID(502), newOwner)
}

func TestTransferAtomicity(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	other := idAddr(t, 502)
	mintTo(t, nft, rt, owner, 2)
	mintTo(t, nft, rt, other, 1)

	// one bad token id fails the whole batch, leaving balances untouched
	_, _, err := nft.Transfer(ctx, owner, idAddr(t, 503), []TokenID{0, 2}, nil, nil)
	var notOwner *NotOwnerError
	require.ErrorAs(t, err, &notOwner)

	balance, err := nft.BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), balance)

	stillOwner, err := nft.OwnerOf(0)
	require.NoError(t, err)
	assert.Equal(t, abi.ActorID(501), stillOwner)
}

func TestTransferFromAccountOperator(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	operator := idAddr(t, 502)
	recipient := idAddr(t, 503)
	mintTo(t, nft, rt, owner, 2)

	require.NoError(t, nft.ApproveForOwner(ctx, owner, operator))

	hook, intermediate, err := nft.TransferFrom(ctx, owner, operator, recipient, []TokenID{0, 1}, nil, nil)
	require.NoError(t, err)
	completeHook(t, nft, rt, hook)

	ret, err := nft.TransferFromReturn(intermediate)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), ret.FromBalance)
	assert.Equal(t, uint64(2), ret.ToBalance)
}

func TestTransferFromTokenOperator(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	operator := idAddr(t, 502)
	mintTo(t, nft, rt, owner, 2)

	require.NoError(t, nft.Approve(ctx, owner, operator, []TokenID{0}))

	// approval covers token 0 only
	_, _, err := nft.TransferFrom(ctx, owner, operator, idAddr(t, 503), []TokenID{0, 1}, nil, nil)
	var notAuthorized *NotAuthorizedError
	require.ErrorAs(t, err, &notAuthorized)
	assert.Equal(t, TokenID(1), notAuthorized.TokenID)

	hook, _, err := nft.TransferFrom(ctx, owner, operator, idAddr(t, 503), []TokenID{0}, nil, nil)
	require.NoError(t, err)
	completeHook(t, nft, rt, hook)

	newOwner, err := nft.OwnerOf(0)
	require.NoError(t, err)
	assert.Equal(t, abi.ActorID(503), newOwner)
}

func TestTransferFromUnauthorized(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	mintTo(t, nft, rt, owner, 1)

	_, _, err := nft.TransferFrom(ctx, owner, idAddr(t, 502), idAddr(t, 503), []TokenID{0}, nil, nil)
	var notAuthorized *NotAuthorizedError
	require.ErrorAs(t, err, &notAuthorized)
	assert.Equal(t, abi.ActorID(502), notAuthorized.Actor)
}

func TestBurn(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	mintTo(t, nft, rt, owner, 3)

	balance, err := nft.Burn(ctx, owner, []TokenID{1})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), balance)
	assert.Equal(t, uint64(2), nft.TotalSupply())

	_, err = nft.OwnerOf(1)
	var notFound *TokenNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestBurnFromRequiresApproval(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	operator := idAddr(t, 502)
	mintTo(t, nft, rt, owner, 2)

	_, err := nft.BurnFrom(ctx, owner, operator, []TokenID{0})
	var notAuthorized *NotAuthorizedError
	require.ErrorAs(t, err, &notAuthorized)

	require.NoError(t, nft.Approve(ctx, owner, operator, []TokenID{0}))
	balance, err := nft.BurnFrom(ctx, owner, operator, []TokenID{0})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)
}

func TestRevokeUnresolvableOperatorIsNoop(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	mintTo(t, nft, rt, owner, 1)

	// a key address never instantiated cannot hold approvals
	require.NoError(t, nft.Revoke(ctx, owner, secpAddr(t, 9), []TokenID{0}))
	require.NoError(t, nft.RevokeForAll(ctx, owner, secpAddr(t, 9)))
}

func TestIsApprovedForAll(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	operator := idAddr(t, 502)
	mintTo(t, nft, rt, owner, 1)

	ok, err := nft.IsApprovedForAll(ctx, owner, operator)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, nft.ApproveForOwner(ctx, owner, operator))
	ok, err = nft.IsApprovedForAll(ctx, owner, operator)
	require.NoError(t, err)
	assert.True(t, ok)

	// unresolvable addresses hold no approvals
	ok, err = nft.IsApprovedForAll(ctx, secpAddr(t, 9), operator)
	require.NoError(t, err)
	assert.False(t, ok)

	// an owner with no index entry holds none either
	ok, err = nft.IsApprovedForAll(ctx, idAddr(t, 600), operator)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBalanceOfUnresolvedAddress(t *testing.T) {
	ctx := context.Background()
	nft, _, _ := newTestNFT(t)

	balance, err := nft.BalanceOf(ctx, secpAddr(t, 9))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
}

func TestListingsThroughHandle(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	operator := idAddr(t, 502)
	mintTo(t, nft, rt, owner, 5)
	require.NoError(t, nft.Approve(ctx, owner, operator, []TokenID{1, 4}))

	page, err := nft.ListTokens(nil, 3)
	require.NoError(t, err)
	require.NotNil(t, page.NextCursor)
	assertSetEquals(t, page.Tokens, 0, 1, 2)

	page, err = nft.ListTokens(page.NextCursor, 3)
	require.NoError(t, err)
	assert.Nil(t, page.NextCursor)
	assertSetEquals(t, page.Tokens, 3, 4)

	owned, err := nft.ListOwnedTokens(ctx, owner, nil, 0)
	require.NoError(t, err)
	assertSetEquals(t, owned.Tokens, 0, 1, 2, 3, 4)

	approved, err := nft.ListOperatorTokens(ctx, operator, nil, 0)
	require.NoError(t, err)
	assertSetEquals(t, approved.Tokens, 1, 4)

	operators, err := nft.ListTokenOperators(1, nil, 0)
	require.NoError(t, err)
	assertSetEquals(t, operators.Operators, 502)
}

func TestInvariantsHoldThroughOperations(t *testing.T) {
	ctx := context.Background()
	nft, rt, _ := newTestNFT(t)
	owner := idAddr(t, 501)
	recipient := idAddr(t, 502)
	mintTo(t, nft, rt, owner, 4)

	hook, _, err := nft.Transfer(ctx, owner, recipient, []TokenID{0, 1}, nil, nil)
	require.NoError(t, err)
	completeHook(t, nft, rt, hook)

	_, err = nft.Burn(ctx, owner, []TokenID{2})
	require.NoError(t, err)
	require.NoError(t, nft.ApproveForOwner(ctx, owner, idAddr(t, 503)))

	require.NoError(t, nft.AssertInvariants())
}
