package frc46

import (
	"bytes"
	"context"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-actors-utils/actors/runtime"
	"github.com/filecoin-project/go-actors-utils/receiver"
)

const tokenActor = abi.ActorID(1)

func newTestToken(t *testing.T, granularity uint64) (*Token, *runtime.ActorRuntime, *runtime.FakeSyscalls) {
	rt, sys := runtime.NewTestRuntime(context.Background(), tokenActor)
	token, err := CreateState(rt, granularity)
	require.NoError(t, err)
	return token, rt, sys
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
func completeHook(t *testing.T, token *Token, rt *runtime.ActorRuntime, hook *receiver.Hook) {
	root, err := token.Flush()
	require.NoError(t, err)
	require.NoError(t, rt.SetRoot(root))
	require.NoError(t, hook.Call(context.Background(), rt))
	_, err = token.ReloadIfChanged(root)
	require.NoError(t, err)
}

func TestMintCreditsRecipient(t *testing.T) {
	ctx := context.Background()
	token, rt, sys := newTestToken(t, 1)
	operator := idAddr(t, 500)
	owner := idAddr(t, 501)

	hook, intermediate, err := token.Mint(ctx, operator, owner, big.NewInt(1000), []byte("mint"), nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	ret, err := token.MintReturn(ctx, intermediate)
	require.NoError(t, err)
	assert.True(t, ret.Balance.Equals(big.NewInt(1000)))
	assert.True(t, ret.Supply.Equals(big.NewInt(1000)))

	// the hook was delivered to the initial owner
	require.NotNil(t, sys.LastMessage)
	assert.Equal(t, owner, sys.LastMessage.To)
	assert.Equal(t, receiver.MethodNum, sys.LastMessage.Method)

	var params receiver.UniversalReceiverParams
	require.NoError(t, params.UnmarshalCBOR(bytes.NewReader(sys.LastMessage.Params)))
	assert.Equal(t, TokenType, params.Type)

	var payload FRC46TokenReceived
	require.NoError(t, payload.UnmarshalCBOR(bytes.NewReader(params.Payload)))
	assert.Equal(t, tokenActor, payload.From)
	assert.Equal(t, abi.ActorID(501), payload.To)
	assert.Equal(t, abi.ActorID(500), payload.Operator)
	assert.Equal(t, []byte("mint"), payload.OperatorData)
}

func TestMintToUninitializedAccount(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	owner := secpAddr(t, 1)

	hook, intermediate, err := token.Mint(ctx, idAddr(t, 500), owner, big.NewInt(5), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	ret, err := token.MintReturn(ctx, intermediate)
	require.NoError(t, err)
	assert.True(t, ret.Balance.Equals(big.NewInt(5)))

	// the account was instantiated and now resolves
	balance, err := token.BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.True(t, balance.Equals(big.NewInt(5)))
}

func TestMintRejectsInvalidAmounts(t *testing.T) {
	ctx := context.Background()
	token, _, _ := newTestToken(t, 100)
	owner := idAddr(t, 501)

	_, _, err := token.Mint(ctx, idAddr(t, 500), owner, big.NewInt(-1), nil, nil)
	var negative *InvalidNegativeError
	require.ErrorAs(t, err, &negative)

	_, _, err = token.Mint(ctx, idAddr(t, 500), owner, big.NewInt(150), nil, nil)
	var granularity *InvalidGranularityError
	require.ErrorAs(t, err, &granularity)

	_, _, err = token.Mint(ctx, idAddr(t, 500), owner, big.NewInt(200), nil, nil)
	require.NoError(t, err)
}

func TestMintAbortRestoresPriorState(t *testing.T) {
	ctx := context.Background()
	token, rt, sys := newTestToken(t, 1)
	owner := idAddr(t, 501)

	priorRoot, err := token.Flush()
	require.NoError(t, err)
	require.NoError(t, rt.SetRoot(priorRoot))

	hook, _, err := token.Mint(ctx, idAddr(t, 500), owner, big.NewInt(1000), nil, nil)
	require.NoError(t, err)
	root, err := token.Flush()
	require.NoError(t, err)
	require.NoError(t, rt.SetRoot(root))

	sys.NextSendExitCode = exitcode.ErrForbidden
	err = hook.Call(ctx, rt)
	var receiverErr *receiver.ReceiverError
	require.ErrorAs(t, err, &receiverErr)
	assert.Equal(t, exitcode.ErrForbidden, receiverErr.ExitCode)

	// the actor aborts by restoring the pre-mint state
	_, err = token.LoadReplace(priorRoot)
	require.NoError(t, err)
	require.NoError(t, rt.SetRoot(priorRoot))

	balance, err := token.BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	supply := token.TotalSupply()
	assert.True(t, supply.IsZero())
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	from := idAddr(t, 501)
	to := idAddr(t, 502)

	hook, _, err := token.Mint(ctx, from, from, big.NewInt(100), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	hook, intermediate, err := token.Transfer(ctx, from, to, big.NewInt(60), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	ret, err := token.TransferReturn(ctx, intermediate)
	require.NoError(t, err)
	assert.True(t, ret.FromBalance.Equals(big.NewInt(40)))
	assert.True(t, ret.ToBalance.Equals(big.NewInt(60)))
	assert.True(t, token.TotalSupply().Equals(big.NewInt(100)))
}

func TestTransferReloadsAfterReentrantTransfer(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	alice := idAddr(t, 501)
	bob := idAddr(t, 502)
	carol := idAddr(t, 503)

	hook, _, err := token.Mint(ctx, alice, alice, big.NewInt(100), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	hook, intermediate, err := token.Transfer(ctx, alice, bob, big.NewInt(60), nil, nil)
	require.NoError(t, err)
	root, err := token.Flush()
	require.NoError(t, err)
	require.NoError(t, rt.SetRoot(root))
	require.NoError(t, hook.Call(ctx, rt))

	// bob's receiver forwards the tokens to carol through a fresh handle
	// before the outer transfer reconciles
	inner, err := LoadState(rt, 1)
	require.NoError(t, err)
	innerHook, innerIntermediate, err := inner.Transfer(ctx, bob, carol, big.NewInt(60), nil, nil)
	require.NoError(t, err)
	completeHook(t, inner, rt, innerHook)
	innerRet, err := inner.TransferReturn(ctx, innerIntermediate)
	require.NoError(t, err)
	assert.True(t, innerRet.ToBalance.Equals(big.NewInt(60)))

	// the outer handle must notice the moved root and reload
	stale, err := token.ReloadIfChanged(root)
	require.NoError(t, err)
	require.NotNil(t, stale)

	ret, err := token.TransferReturn(ctx, intermediate)
	require.NoError(t, err)
	assert.True(t, ret.FromBalance.Equals(big.NewInt(40)))
	assert.True(t, ret.ToBalance.Equals(big.Zero()))

	carolBalance, err := token.BalanceOf(ctx, carol)
	require.NoError(t, err)
	assert.True(t, carolBalance.Equals(big.NewInt(60)))
	assert.True(t, token.TotalSupply().Equals(big.NewInt(100)))
	require.NoError(t, token.AssertInvariants())
}

func TestTransferInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	from := idAddr(t, 501)
	to := idAddr(t, 502)

	hook, _, err := token.Mint(ctx, from, from, big.NewInt(50), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	_, _, err = token.Transfer(ctx, from, to, big.NewInt(51), nil, nil)
	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)

	// the failed transfer left no trace
	balance, err := token.BalanceOf(ctx, from)
	require.NoError(t, err)
	assert.True(t, balance.Equals(big.NewInt(50)))
}

func TestTransferToSelf(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	owner := idAddr(t, 501)

	hook, _, err := token.Mint(ctx, owner, owner, big.NewInt(10), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	hook, intermediate, err := token.Transfer(ctx, owner, owner, big.NewInt(10), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	ret, err := token.TransferReturn(ctx, intermediate)
	require.NoError(t, err)
	assert.True(t, ret.FromBalance.Equals(big.NewInt(10)))
	assert.True(t, ret.ToBalance.Equals(big.NewInt(10)))

	_, _, err = token.Transfer(ctx, owner, owner, big.NewInt(11), nil, nil)
	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
}

func TestTransferFrom(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	owner := idAddr(t, 501)
	operator := idAddr(t, 502)
	to := idAddr(t, 503)

	hook, _, err := token.Mint(ctx, owner, owner, big.NewInt(100), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	_, err = token.IncreaseAllowance(ctx, owner, operator, big.NewInt(70))
	require.NoError(t, err)

	hook, intermediate, err := token.TransferFrom(ctx, operator, owner, to, big.NewInt(30), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	ret, err := token.TransferFromReturn(ctx, intermediate)
	require.NoError(t, err)
	assert.True(t, ret.FromBalance.Equals(big.NewInt(70)))
	assert.True(t, ret.ToBalance.Equals(big.NewInt(30)))
	assert.True(t, ret.Allowance.Equals(big.NewInt(40)))
}

func TestTransferFromRejectsSelfOperator(t *testing.T) {
	ctx := context.Background()
	token, _, _ := newTestToken(t, 1)
	owner := idAddr(t, 501)

	_, _, err := token.TransferFrom(ctx, owner, owner, idAddr(t, 503), big.NewInt(1), nil, nil)
	var invalid *InvalidOperatorError
	require.ErrorAs(t, err, &invalid)
}

func TestTransferFromUnresolvedOperator(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	owner := idAddr(t, 501)

	hook, _, err := token.Mint(ctx, owner, owner, big.NewInt(100), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	// an address with no actor behind it cannot have been granted an allowance
	_, _, err = token.TransferFrom(ctx, secpAddr(t, 9), owner, idAddr(t, 503), big.NewInt(1), nil, nil)
	var insufficient *InsufficientAllowanceError
	require.ErrorAs(t, err, &insufficient)
}

func TestTransferFromExceedingAllowance(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	owner := idAddr(t, 501)
	operator := idAddr(t, 502)

	hook, _, err := token.Mint(ctx, owner, owner, big.NewInt(100), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	_, err = token.IncreaseAllowance(ctx, owner, operator, big.NewInt(10))
	require.NoError(t, err)

	_, _, err = token.TransferFrom(ctx, operator, owner, idAddr(t, 503), big.NewInt(11), nil, nil)
	var insufficient *InsufficientAllowanceError
	require.ErrorAs(t, err, &insufficient)

	// neither the balance nor the allowance moved
	balance, err := token.BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.True(t, balance.Equals(big.NewInt(100)))
	allowance, err := token.Allowance(ctx, owner, operator)
	require.NoError(t, err)
	assert.True(t, allowance.Equals(big.NewInt(10)))
}

func TestBurn(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	owner := idAddr(t, 501)

	hook, _, err := token.Mint(ctx, owner, owner, big.NewInt(100), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	ret, err := token.Burn(ctx, owner, big.NewInt(40))
	require.NoError(t, err)
	assert.True(t, ret.Balance.Equals(big.NewInt(60)))
	assert.True(t, token.TotalSupply().Equals(big.NewInt(60)))

	_, err = token.Burn(ctx, owner, big.NewInt(61))
	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, token.TotalSupply().Equals(big.NewInt(60)))
}

func TestBurnFrom(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	owner := idAddr(t, 501)
	operator := idAddr(t, 502)

	hook, _, err := token.Mint(ctx, owner, owner, big.NewInt(100), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	_, err = token.IncreaseAllowance(ctx, owner, operator, big.NewInt(50))
	require.NoError(t, err)

	ret, err := token.BurnFrom(ctx, operator, owner, big.NewInt(30))
	require.NoError(t, err)
	assert.True(t, ret.Balance.Equals(big.NewInt(70)))
	assert.True(t, ret.Allowance.Equals(big.NewInt(20)))
	assert.True(t, token.TotalSupply().Equals(big.NewInt(70)))

	// burning the rest of the allowance exhausts it exactly
	ret, err = token.BurnFrom(ctx, operator, owner, big.NewInt(20))
	require.NoError(t, err)
	assert.True(t, ret.Balance.Equals(big.NewInt(50)))
	assert.True(t, ret.Allowance.Equals(big.Zero()))

	_, err = token.BurnFrom(ctx, operator, owner, big.NewInt(1))
	var insufficient *InsufficientAllowanceError
	require.ErrorAs(t, err, &insufficient)

	// owners burn with Burn, not BurnFrom
	_, err = token.BurnFrom(ctx, owner, owner, big.NewInt(1))
	var invalid *InvalidOperatorError
	require.ErrorAs(t, err, &invalid)
}

func TestAllowanceOperations(t *testing.T) {
	ctx := context.Background()
	token, _, _ := newTestToken(t, 1)
	owner := idAddr(t, 501)
	operator := idAddr(t, 502)

	allowance, err := token.IncreaseAllowance(ctx, owner, operator, big.NewInt(30))
	require.NoError(t, err)
	assert.True(t, allowance.Equals(big.NewInt(30)))

	allowance, err = token.DecreaseAllowance(ctx, owner, operator, big.NewInt(40))
	require.NoError(t, err)
	assert.True(t, allowance.IsZero())

	old, err := token.SetAllowance(ctx, owner, operator, big.NewInt(12))
	require.NoError(t, err)
	assert.True(t, old.IsZero())

	old, err = token.RevokeAllowance(ctx, owner, operator)
	require.NoError(t, err)
	assert.True(t, old.Equals(big.NewInt(12)))

	allowance, err = token.Allowance(ctx, owner, operator)
	require.NoError(t, err)
	assert.True(t, allowance.IsZero())

	// unresolvable addresses have implicit zero allowances
	allowance, err = token.Allowance(ctx, secpAddr(t, 7), operator)
	require.NoError(t, err)
	assert.True(t, allowance.IsZero())
	old, err = token.RevokeAllowance(ctx, owner, secpAddr(t, 8))
	require.NoError(t, err)
	assert.True(t, old.IsZero())
}

func TestBalanceOfUnresolvedAddress(t *testing.T) {
	ctx := context.Background()
	token, _, _ := newTestToken(t, 1)

	balance, err := token.BalanceOf(ctx, secpAddr(t, 3))
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestSetBalanceAdjustsSupply(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	owner := idAddr(t, 501)

	hook, _, err := token.Mint(ctx, owner, owner, big.NewInt(100), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)

	old, err := token.SetBalance(ctx, owner, big.NewInt(30))
	require.NoError(t, err)
	assert.True(t, old.Equals(big.NewInt(100)))
	assert.True(t, token.TotalSupply().Equals(big.NewInt(30)))

	old, err = token.SetBalance(ctx, owner, big.NewInt(130))
	require.NoError(t, err)
	assert.True(t, old.Equals(big.NewInt(30)))
	assert.True(t, token.TotalSupply().Equals(big.NewInt(130)))

	require.NoError(t, token.AssertInvariants())
}

func TestInvariantsHoldThroughOperations(t *testing.T) {
	ctx := context.Background()
	token, rt, _ := newTestToken(t, 1)
	owner := idAddr(t, 501)
	operator := idAddr(t, 502)
	to := idAddr(t, 503)

	hook, _, err := token.Mint(ctx, owner, owner, big.NewInt(1000), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)
	require.NoError(t, token.AssertInvariants())

	_, err = token.IncreaseAllowance(ctx, owner, operator, big.NewInt(100))
	require.NoError(t, err)
	hook, _, err = token.TransferFrom(ctx, operator, owner, to, big.NewInt(100), nil, nil)
	require.NoError(t, err)
	completeHook(t, token, rt, hook)
	require.NoError(t, token.AssertInvariants())

	_, err = token.Burn(ctx, owner, big.NewInt(900))
	require.NoError(t, err)
	require.NoError(t, token.AssertInvariants())

	summary, violations := token.CheckInvariants()
	require.Empty(t, violations)
	assert.True(t, summary.TotalSupply.Equals(big.NewInt(100)))
}
