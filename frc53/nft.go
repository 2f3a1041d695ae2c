package frc53

import (
	"context"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actors-utils/actors/adt"
	"github.com/filecoin-project/go-actors-utils/actors/runtime"
	"github.com/filecoin-project/go-actors-utils/receiver"
)

var log = logging.Logger("frc53")

// NFT is a handle through which an actor manipulates its collection state.
// The handle layers address resolution, authorization predicates, receiver
// hooks and transactional state updates over the raw state tree.
type NFT struct {
	rt    *runtime.ActorRuntime
	state *NFTState
}

// WrapNFT wraps existing in-memory collection state in a handle.
func WrapNFT(rt *runtime.ActorRuntime, state *NFTState) *NFT {
	return &NFT{rt: rt, state: state}
}

// CreateState constructs empty collection state in the runtime's store and
// wraps it in a handle.
func CreateState(rt *runtime.ActorRuntime) (*NFT, error) {
	state, err := NewNFTState(rt.Store())
	if err != nil {
		return nil, err
	}
	return WrapNFT(rt, state), nil
}

// LoadState reads collection state from the actor's current state root and
// wraps it in a handle.
func LoadState(rt *runtime.ActorRuntime) (*NFT, error) {
	root, err := rt.Root()
	if err != nil {
		return nil, err
	}
	state, err := LoadNFTState(rt.Store(), root)
	if err != nil {
		return nil, err
	}
	return WrapNFT(rt, state), nil
}

// State returns the live state the handle is wrapping.
func (n *NFT) State() *NFTState {
	return n.state
}

// Flush writes the wrapped state to the store and returns its new root cid.
// The caller remains responsible for committing that root to the actor.
func (n *NFT) Flush() (cid.Cid, error) {
	return n.state.Save(n.rt.Store())
}

// ReplaceState swaps the wrapped state for another, returning the old one.
func (n *NFT) ReplaceState(state *NFTState) *NFTState {
	old := n.state
	n.state = state
	return old
}

// LoadReplace reads state from the given root and swaps it in, returning
// the previously wrapped state.
func (n *NFT) LoadReplace(root cid.Cid) (*NFTState, error) {
	state, err := LoadNFTState(n.rt.Store(), root)
	if err != nil {
		return nil, err
	}
	return n.ReplaceState(state), nil
}

// ReloadIfChanged refreshes the wrapped state if the actor's state root has
// moved past the expected cid, as happens when a receiver hook re-enters
// the actor. It returns the stale state when a reload occurred, or nil.
func (n *NFT) ReloadIfChanged(expected cid.Cid) (*NFTState, error) {
	current, err := n.rt.Root()
	if err != nil {
		return nil, err
	}
	if current.Equals(expected) {
		return nil, nil
	}
	log.Debugf("state root moved from %s to %s during hook, reloading", expected, current)
	return n.LoadReplace(current)
}

// transaction runs a mutation against a scratch copy of the state,
// committing it only on success.
func (n *NFT) transaction(f func(*NFTState, adt.Store) error) error {
	scratch := *n.state
	if err := f(&scratch, n.rt.Store()); err != nil {
		return err
	}
	*n.state = scratch
	return nil
}

// TotalSupply returns the number of tokens in circulation.
func (n *NFT) TotalSupply() uint64 {
	return n.state.TotalSupply
}

// BalanceOf returns the number of tokens held by an address. Addresses
// that do not resolve to an actor hold an implicit zero balance.
func (n *NFT) BalanceOf(ctx context.Context, owner address.Address) (uint64, error) {
	ownerID, err := n.rt.ResolveID(ctx, owner)
	if err != nil {
		var notResolved *runtime.AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return 0, nil
		}
		return 0, err
	}
	return n.state.GetBalance(n.rt.Store(), ownerID)
}

// OwnerOf returns the owner of a token.
func (n *NFT) OwnerOf(tokenID TokenID) (abi.ActorID, error) {
	return n.state.GetOwner(n.rt.Store(), tokenID)
}

// Metadata returns the metadata of a token.
func (n *NFT) Metadata(tokenID TokenID) (string, error) {
	return n.state.GetMetadata(n.rt.Store(), tokenID)
}

// Mint creates one token per metadata entry, all owned by initialOwner,
// who is initialized on chain if needed. The returned hook must be called
// after the mutated state has been committed, and the intermediate
// converted to a MintReturn once the hook has run.
func (n *NFT) Mint(ctx context.Context, operator, initialOwner address.Address, metadata []string, operatorData, tokenData []byte) (*receiver.Hook, *MintIntermediate, error) {
	operatorID, err := n.rt.ResolveID(ctx, operator)
	if err != nil {
		return nil, nil, err
	}
	ownerID, err := n.rt.ResolveOrInit(ctx, initialOwner)
	if err != nil {
		return nil, nil, err
	}

	var intermediate *MintIntermediate
	err = n.transaction(func(st *NFTState, store adt.Store) error {
		intermediate, err = st.MintTokens(store, ownerID, metadata)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	hook, err := receiver.NewHook(initialOwner, TokenType, &FRC53TokenReceived{
		To:           ownerID,
		Operator:     operatorID,
		TokenIDs:     intermediate.TokenIDs,
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
func (n *NFT) MintReturn(intermediate *MintIntermediate) (*MintReturn, error) {
	return n.state.MintReturn(n.rt.Store(), intermediate)
}

// Burn destroys a batch of the owner's tokens, returning the remaining
// balance. A burned token id is never minted again.
func (n *NFT) Burn(ctx context.Context, owner address.Address, tokenIDs []TokenID) (uint64, error) {
	ownerID, err := n.rt.ResolveID(ctx, owner)
	if err != nil {
		return 0, err
	}

	var balance uint64
	err = n.transaction(func(st *NFTState, store adt.Store) error {
		balance, err = st.BurnTokens(store, ownerID, tokenIDs, func(data *TokenData, tokenID TokenID) error {
			return assertOwnsToken(data, tokenID, ownerID)
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// BurnFrom destroys a batch of an owner's tokens on behalf of an operator.
// The operator must hold account-level authority over the owner or
// token-level approval on every token in the batch.
func (n *NFT) BurnFrom(ctx context.Context, owner, operator address.Address, tokenIDs []TokenID) (uint64, error) {
	operatorID, err := n.rt.ResolveID(ctx, operator)
	if err != nil {
		return 0, err
	}
	ownerID, err := n.rt.ResolveOrInit(ctx, owner)
	if err != nil {
		return 0, err
	}

	var balance uint64
	err = n.transaction(func(st *NFTState, store adt.Store) error {
		accountOperator, err := st.IsAccountOperator(store, ownerID, operatorID)
		if err != nil {
			return err
		}
		balance, err = st.BurnTokens(store, ownerID, tokenIDs, func(data *TokenData, tokenID TokenID) error {
			if err := assertOwnsToken(data, tokenID, ownerID); err != nil {
				return err
			}
			if accountOperator {
				return nil
			}
			return assertTokenLevelApproval(data, tokenID, operatorID)
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Approve grants an operator token-level approval on a batch of the
// caller's tokens. The operator is initialized on chain if needed.
func (n *NFT) Approve(ctx context.Context, caller, operator address.Address, tokenIDs []TokenID) error {
	callerID, err := n.rt.ResolveID(ctx, caller)
	if err != nil {
		return err
	}
	operatorID, err := n.rt.ResolveOrInit(ctx, operator)
	if err != nil {
		return err
	}

	return n.transaction(func(st *NFTState, store adt.Store) error {
		return st.ApproveForTokens(store, operatorID, tokenIDs, func(data *TokenData, tokenID TokenID) error {
			return assertOwnsToken(data, tokenID, callerID)
		})
	})
}

// Revoke withdraws an operator's token-level approval on a batch of the
// caller's tokens. Unresolvable addresses cannot hold approvals so
// revoking against them is a no-op.
func (n *NFT) Revoke(ctx context.Context, caller, operator address.Address, tokenIDs []TokenID) error {
	callerID, err := n.rt.ResolveID(ctx, caller)
	if err != nil {
		return err
	}
	operatorID, err := n.rt.ResolveID(ctx, operator)
	if err != nil {
		var notResolved *runtime.AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return nil
		}
		return err
	}

	return n.transaction(func(st *NFTState, store adt.Store) error {
		return st.RevokeForTokens(store, operatorID, tokenIDs, func(data *TokenData, tokenID TokenID) error {
			return assertOwnsToken(data, tokenID, callerID)
		})
	})
}

// ApproveForOwner grants an operator authority over all of the owner's
// tokens, present and future. The operator is initialized on chain if
// needed.
func (n *NFT) ApproveForOwner(ctx context.Context, owner, operator address.Address) error {
	ownerID, err := n.rt.ResolveID(ctx, owner)
	if err != nil {
		return err
	}
	operatorID, err := n.rt.ResolveOrInit(ctx, operator)
	if err != nil {
		return err
	}

	return n.transaction(func(st *NFTState, store adt.Store) error {
		return st.ApproveForOwner(store, ownerID, operatorID)
	})
}

// RevokeForAll withdraws an operator's account-level authority over the
// owner's tokens. Unresolvable addresses cannot hold approvals so revoking
// against them is a no-op.
func (n *NFT) RevokeForAll(ctx context.Context, owner, operator address.Address) error {
	ownerID, err := n.rt.ResolveID(ctx, owner)
	if err != nil {
		return err
	}
	operatorID, err := n.rt.ResolveID(ctx, operator)
	if err != nil {
		var notResolved *runtime.AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return nil
		}
		return err
	}

	return n.transaction(func(st *NFTState, store adt.Store) error {
		return st.RevokeForAll(store, ownerID, operatorID)
	})
}

// IsApprovedForAll checks account-level approval between an owner and an
// operator. Unresolvable addresses and owners with no index entry hold no
// approvals.
func (n *NFT) IsApprovedForAll(ctx context.Context, owner, operator address.Address) (bool, error) {
	ownerID, err := n.rt.ResolveID(ctx, owner)
	if err != nil {
		var notResolved *runtime.AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return false, nil
		}
		return false, err
	}
	operatorID, err := n.rt.ResolveID(ctx, operator)
	if err != nil {
		var notResolved *runtime.AddressNotResolvedError
		if xerrors.As(err, &notResolved) {
			return false, nil
		}
		return false, err
	}

	owners, err := n.state.ownerDataMap(n.rt.Store())
	if err != nil {
		return false, err
	}
	data, err := getOwner(owners, ownerID)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	return ContainsActor(&data.Operators, operatorID)
}

// Transfer moves a batch of the owner's tokens to a recipient, initializing
// both accounts on chain if needed. Token-level approvals are cleared on
// transfer. The returned hook must be called after the mutated state has
// been committed, and the intermediate converted to a TransferReturn once
// the hook has run.
func (n *NFT) Transfer(ctx context.Context, owner, recipient address.Address, tokenIDs []TokenID, operatorData, tokenData []byte) (*receiver.Hook, *TransferIntermediate, error) {
	ownerID, err := n.rt.ResolveOrInit(ctx, owner)
	if err != nil {
		return nil, nil, err
	}
	recipientID, err := n.rt.ResolveOrInit(ctx, recipient)
	if err != nil {
		return nil, nil, err
	}

	var intermediate *TransferIntermediate
	err = n.transaction(func(st *NFTState, store adt.Store) error {
		intermediate, err = st.Transfer(store, tokenIDs, ownerID, recipientID, func(data *TokenData, tokenID TokenID) error {
			return assertOwnsToken(data, tokenID, ownerID)
		})
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	hook, err := receiver.NewHook(recipient, TokenType, &FRC53TokenReceived{
		To:           recipientID,
		Operator:     ownerID,
		TokenIDs:     tokenIDs,
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
func (n *NFT) TransferReturn(intermediate *TransferIntermediate) (*TransferReturn, error) {
	return n.state.TransferReturn(n.rt.Store(), intermediate)
}

// TransferFrom moves a batch of an owner's tokens to a recipient on behalf
// of an operator. The operator must hold account-level authority over the
// owner or token-level approval on every token in the batch. The returned
// hook must be called after the mutated state has been committed.
func (n *NFT) TransferFrom(ctx context.Context, owner, operator, recipient address.Address, tokenIDs []TokenID, operatorData, tokenData []byte) (*receiver.Hook, *TransferIntermediate, error) {
	ownerID, err := n.rt.ResolveID(ctx, owner)
	if err != nil {
		return nil, nil, err
	}
	operatorID, err := n.rt.ResolveID(ctx, operator)
	if err != nil {
		return nil, nil, err
	}
	recipientID, err := n.rt.ResolveOrInit(ctx, recipient)
	if err != nil {
		return nil, nil, err
	}

	var intermediate *TransferIntermediate
	err = n.transaction(func(st *NFTState, store adt.Store) error {
		accountOperator, err := st.IsAccountOperator(store, ownerID, operatorID)
		if err != nil {
			return err
		}
		intermediate, err = st.Transfer(store, tokenIDs, ownerID, recipientID, func(data *TokenData, tokenID TokenID) error {
			if err := assertOwnsToken(data, tokenID, ownerID); err != nil {
				return err
			}
			if accountOperator {
				return nil
			}
			return assertTokenLevelApproval(data, tokenID, operatorID)
		})
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	hook, err := receiver.NewHook(recipient, TokenType, &FRC53TokenReceived{
		To:           recipientID,
		Operator:     operatorID,
		TokenIDs:     tokenIDs,
		OperatorData: operatorData,
		TokenData:    tokenData,
	}, intermediate)
	if err != nil {
		return nil, nil, err
	}
	return hook, intermediate, nil
}

// TransferFromReturn finalizes a delegated transfer, reading both balances
// from whatever state is current after the receiver hook ran.
func (n *NFT) TransferFromReturn(intermediate *TransferIntermediate) (*TransferReturn, error) {
	return n.state.TransferReturn(n.rt.Store(), intermediate)
}

// ListTokens enumerates a page of live token ids. A zero limit returns
// everything from the cursor onward.
func (n *NFT) ListTokens(cursor *Cursor, limit uint64) (*ListTokensReturn, error) {
	tokens, next, err := n.state.ListTokens(n.rt.Store(), cursor, limit)
	if err != nil {
		return nil, err
	}
	return &ListTokensReturn{Tokens: tokens, NextCursor: next}, nil
}

// ListOwnedTokens enumerates a page of the token ids held by an owner.
func (n *NFT) ListOwnedTokens(ctx context.Context, owner address.Address, cursor *Cursor, limit uint64) (*ListTokensReturn, error) {
	ownerID, err := n.rt.ResolveID(ctx, owner)
	if err != nil {
		return nil, err
	}
	tokens, next, err := n.state.ListOwnedTokens(n.rt.Store(), ownerID, cursor, limit)
	if err != nil {
		return nil, err
	}
	return &ListTokensReturn{Tokens: tokens, NextCursor: next}, nil
}

// ListTokenOperators enumerates a page of the operators approved on a
// single token.
func (n *NFT) ListTokenOperators(tokenID TokenID, cursor *Cursor, limit uint64) (*ListOperatorsReturn, error) {
	operators, next, err := n.state.ListTokenOperators(n.rt.Store(), tokenID, cursor, limit)
	if err != nil {
		return nil, err
	}
	return &ListOperatorsReturn{Operators: operators, NextCursor: next}, nil
}

// ListOperatorTokens enumerates a page of the token ids an operator holds
// token-level approval on.
func (n *NFT) ListOperatorTokens(ctx context.Context, operator address.Address, cursor *Cursor, limit uint64) (*ListTokensReturn, error) {
	operatorID, err := n.rt.ResolveID(ctx, operator)
	if err != nil {
		return nil, err
	}
	tokens, next, err := n.state.ListOperatorTokens(n.rt.Store(), operatorID, cursor, limit)
	if err != nil {
		return nil, err
	}
	return &ListTokensReturn{Tokens: tokens, NextCursor: next}, nil
}

// ListAccountOperators enumerates a page of an owner's account-level
// operators.
func (n *NFT) ListAccountOperators(ctx context.Context, owner address.Address, cursor *Cursor, limit uint64) (*ListOperatorsReturn, error) {
	ownerID, err := n.rt.ResolveID(ctx, owner)
	if err != nil {
		return nil, err
	}
	operators, next, err := n.state.ListAccountOperators(n.rt.Store(), ownerID, cursor, limit)
	if err != nil {
		return nil, err
	}
	return &ListOperatorsReturn{Operators: operators, NextCursor: next}, nil
}

// CheckInvariants walks the wrapped state and returns all accounting
// violations found.
func (n *NFT) CheckInvariants() (*StateSummary, []error) {
	return n.state.CheckInvariants(n.rt.Store())
}

// AssertInvariants returns an error if the wrapped state violates any
// accounting invariant.
func (n *NFT) AssertInvariants() error {
	_, violations := n.CheckInvariants()
	if len(violations) > 0 {
		return xerrors.Errorf("collection state invariants violated: %v", violations)
	}
	return nil
}
