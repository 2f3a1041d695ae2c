// Package frc53 implements the accounting core of a non-fungible token
// actor: an IPLD state tree of token records and per-owner indexes,
// batch mutators guarded by caller-supplied predicates, paged enumeration
// with self-invalidating cursors, and a transactional handle layering
// address resolution and receiver hooks on top.
package frc53

import (
	"github.com/filecoin-project/go-bitfield"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-actors-utils/actors/adt"
)

const (
	amtBitWidth  = 5
	hamtBitWidth = 3
)

// TokenData is the record stored per token.
type TokenData struct {
	// Owner of the token.
	Owner abi.ActorID
	// Operators approved for this specific token.
	Operators bitfield.BitField
	// Metadata is an uninterpreted string, typically a URI.
	Metadata string
}

// OwnerData is the per-owner index entry.
type OwnerData struct {
	// Balance is the number of tokens held.
	Balance uint64
	// Operators approved for all of this owner's tokens.
	Operators bitfield.BitField
}

// NFTState is the IPLD structure of a token collection's accounting state.
type NFTState struct {
	// TokenData is an Array[TokenID]TokenData of live tokens.
	TokenData cid.Cid
	// OwnerData is a Map[ActorID]OwnerData indexing the data queried by
	// owner.
	OwnerData cid.Cid
	// NextToken is the next id to assign at mint. Monotonic, never reused.
	NextToken TokenID
	// TotalSupply is the number of minted tokens less the number burned.
	TotalSupply uint64
}

// TokenPredicate authorizes an operation against a single token before it
// is applied. Returning an error aborts the entire batch.
type TokenPredicate func(*TokenData, TokenID) error

// NewNFTState constructs a collection state tree with no tokens, writing
// its empty structures to the store.
func NewNFTState(store adt.Store) (*NFTState, error) {
	emptyTokens, err := adt.StoreEmptyArray(store, amtBitWidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty token array: %w", err)
	}
	emptyOwners, err := adt.StoreEmptyMap(store, hamtBitWidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty owner map: %w", err)
	}
	return &NFTState{
		TokenData: emptyTokens,
		OwnerData: emptyOwners,
	}, nil
}

// LoadNFTState reads a collection state tree from the store.
func LoadNFTState(store adt.Store, root cid.Cid) (*NFTState, error) {
	var state NFTState
	if err := store.Get(store.Context(), root, &state); err != nil {
		return nil, &MissingStateError{Cid: root, Err: err}
	}
	return &state, nil
}

// Save writes the state tree to the store and returns its root cid.
func (st *NFTState) Save(store adt.Store) (cid.Cid, error) {
	root, err := store.Put(store.Context(), st)
	if err != nil {
		return cid.Undef, xerrors.Errorf("failed to save collection state: %w", err)
	}
	return root, nil
}

func (st *NFTState) tokenDataArray(store adt.Store) (*adt.Array, error) {
	return adt.AsArray(store, st.TokenData, amtBitWidth)
}

func (st *NFTState) ownerDataMap(store adt.Store) (*adt.Map, error) {
	return adt.AsMap(store, st.OwnerData, hamtBitWidth)
}

// tokenArrayForCursor resolves the token array, asserting that the cursor
// was created against the current version of it. A mutation between pages
// moves the root cid and invalidates outstanding cursors.
func (st *NFTState) tokenArrayForCursor(store adt.Store, cursor *Cursor) (*adt.Array, error) {
	if cursor != nil && !cursor.Root.Equals(st.TokenData) {
		return nil, &InvalidCursorError{}
	}
	return st.tokenDataArray(store)
}

// getToken reads a token record, failing if the token was never minted or
// has been burned.
func getToken(tokens *adt.Array, tokenID TokenID) (*TokenData, error) {
	var data TokenData
	found, err := tokens.Get(tokenID, &data)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &TokenNotFoundError{TokenID: tokenID}
	}
	return &data, nil
}

// getOwner reads an owner's index entry, or nil if the owner holds no
// tokens and has no operators.
func getOwner(owners *adt.Map, owner abi.ActorID) (*OwnerData, error) {
	var data OwnerData
	found, err := owners.Get(adt.ActorKey(owner), &data)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &data, nil
}

// putOrPruneOwner writes an owner's index entry, removing it entirely when
// it carries no information.
func putOrPruneOwner(owners *adt.Map, owner abi.ActorID, data *OwnerData) error {
	empty, err := data.Operators.IsEmpty()
	if err != nil {
		return err
	}
	if data.Balance == 0 && empty {
		_, err := owners.TryDelete(adt.ActorKey(owner))
		return err
	}
	return owners.Put(adt.ActorKey(owner), data)
}

// MintTokens assigns the next len(metadata) token ids to new tokens owned
// by initialOwner, one per metadata entry, and grows the total supply to
// match.
func (st *NFTState) MintTokens(store adt.Store, initialOwner abi.ActorID, metadata []string) (*MintIntermediate, error) {
	tokens, err := st.tokenDataArray(store)
	if err != nil {
		return nil, err
	}
	owners, err := st.ownerDataMap(store)
	if err != nil {
		return nil, err
	}

	ownerData, err := getOwner(owners, initialOwner)
	if err != nil {
		return nil, err
	}
	if ownerData == nil {
		ownerData = &OwnerData{Operators: bitfield.New()}
	}
	ownerData.Balance += uint64(len(metadata))
	if err := owners.Put(adt.ActorKey(initialOwner), ownerData); err != nil {
		return nil, err
	}

	tokenIDs := make([]TokenID, 0, len(metadata))
	for _, meta := range metadata {
		tokenID := st.NextToken
		err := tokens.Set(tokenID, &TokenData{
			Owner:     initialOwner,
			Operators: bitfield.New(),
			Metadata:  meta,
		})
		if err != nil {
			return nil, err
		}
		tokenIDs = append(tokenIDs, tokenID)
		st.NextToken++
	}

	st.TotalSupply += uint64(len(metadata))
	if st.TokenData, err = tokens.Root(); err != nil {
		return nil, err
	}
	if st.OwnerData, err = owners.Root(); err != nil {
		return nil, err
	}

	return &MintIntermediate{To: initialOwner, TokenIDs: tokenIDs}, nil
}

// GetBalance returns the number of tokens held by an owner. Owners with no
// entry hold nothing.
func (st *NFTState) GetBalance(store adt.Store, owner abi.ActorID) (uint64, error) {
	owners, err := st.ownerDataMap(store)
	if err != nil {
		return 0, err
	}
	data, err := getOwner(owners, owner)
	if err != nil {
		return 0, err
	}
	if data == nil {
		return 0, nil
	}
	return data.Balance, nil
}

// ApproveForTokens adds an operator to each listed token, running the
// predicate against each token first. The batch fails atomically.
func (st *NFTState) ApproveForTokens(store adt.Store, operator abi.ActorID, tokenIDs []TokenID, approve TokenPredicate) error {
	tokens, err := st.tokenDataArray(store)
	if err != nil {
		return err
	}

	for _, tokenID := range tokenIDs {
		data, err := getToken(tokens, tokenID)
		if err != nil {
			return err
		}
		if err := approve(data, tokenID); err != nil {
			return err
		}
		AddOperator(&data.Operators, operator)
		if err := tokens.Set(tokenID, data); err != nil {
			return err
		}
	}

	st.TokenData, err = tokens.Root()
	return err
}

// RevokeForTokens removes an operator from each listed token, running the
// predicate against each token first. The batch fails atomically.
func (st *NFTState) RevokeForTokens(store adt.Store, operator abi.ActorID, tokenIDs []TokenID, revoke TokenPredicate) error {
	tokens, err := st.tokenDataArray(store)
	if err != nil {
		return err
	}

	for _, tokenID := range tokenIDs {
		data, err := getToken(tokens, tokenID)
		if err != nil {
			return err
		}
		if err := revoke(data, tokenID); err != nil {
			return err
		}
		RemoveOperator(&data.Operators, operator)
		if err := tokens.Set(tokenID, data); err != nil {
			return err
		}
	}

	st.TokenData, err = tokens.Root()
	return err
}

// ApproveForOwner grants an operator authority over all of an owner's
// tokens, present and future.
func (st *NFTState) ApproveForOwner(store adt.Store, owner, operator abi.ActorID) error {
	owners, err := st.ownerDataMap(store)
	if err != nil {
		return err
	}

	data, err := getOwner(owners, owner)
	if err != nil {
		return err
	}
	if data == nil {
		data = &OwnerData{Operators: bitfield.New()}
	}
	AddOperator(&data.Operators, operator)
	if err := owners.Put(adt.ActorKey(owner), data); err != nil {
		return err
	}

	st.OwnerData, err = owners.Root()
	return err
}

// RevokeForAll withdraws an operator's account-level authority. The
// owner's index entry is removed once it holds no balance and no
// operators.
func (st *NFTState) RevokeForAll(store adt.Store, owner, operator abi.ActorID) error {
	owners, err := st.ownerDataMap(store)
	if err != nil {
		return err
	}

	data, err := getOwner(owners, owner)
	if err != nil {
		return err
	}
	if data != nil {
		RemoveOperator(&data.Operators, operator)
		if err := putOrPruneOwner(owners, owner, data); err != nil {
			return err
		}
	}

	st.OwnerData, err = owners.Root()
	return err
}

// BurnTokens removes each listed token from circulation, running the
// predicate against each token first. All tokens must belong to the given
// owner and the batch fails atomically. Returns the owner's remaining
// balance. A burned id is never minted again.
func (st *NFTState) BurnTokens(store adt.Store, owner abi.ActorID, tokenIDs []TokenID, burn TokenPredicate) (uint64, error) {
	tokens, err := st.tokenDataArray(store)
	if err != nil {
		return 0, err
	}
	owners, err := st.ownerDataMap(store)
	if err != nil {
		return 0, err
	}

	for _, tokenID := range tokenIDs {
		data, err := getToken(tokens, tokenID)
		if err != nil {
			return 0, err
		}
		if err := burn(data, tokenID); err != nil {
			return 0, err
		}
		if _, err := tokens.TryDelete(tokenID); err != nil {
			return 0, err
		}
	}

	ownerData, err := getOwner(owners, owner)
	if err != nil {
		return 0, err
	}
	if ownerData == nil {
		return 0, xerrors.Errorf("owner %d of burned tokens not found", owner)
	}
	newBalance := ownerData.Balance - uint64(len(tokenIDs))
	ownerData.Balance = newBalance
	if err := putOrPruneOwner(owners, owner, ownerData); err != nil {
		return 0, err
	}

	st.TotalSupply -= uint64(len(tokenIDs))
	if st.TokenData, err = tokens.Root(); err != nil {
		return 0, err
	}
	if st.OwnerData, err = owners.Root(); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Transfer reassigns each listed token to the receiver, running the
// predicate against each token first. Token-level operators are cleared on
// transfer. The batch fails atomically.
func (st *NFTState) Transfer(store adt.Store, tokenIDs []TokenID, owner, receiver abi.ActorID, transfer TokenPredicate) (*TransferIntermediate, error) {
	tokens, err := st.tokenDataArray(store)
	if err != nil {
		return nil, err
	}
	owners, err := st.ownerDataMap(store)
	if err != nil {
		return nil, err
	}

	for _, tokenID := range tokenIDs {
		if err := st.makeTransfer(tokens, owners, tokenID, receiver, transfer); err != nil {
			return nil, err
		}
	}

	return &TransferIntermediate{
		TokenIDs: tokenIDs,
		From:     owner,
		To:       receiver,
	}, nil
}

// makeTransfer reassigns one token to the receiver and reindexes both
// owners. The caller must verify such a transfer is allowed.
func (st *NFTState) makeTransfer(tokens *adt.Array, owners *adt.Map, tokenID TokenID, receiver abi.ActorID, transfer TokenPredicate) error {
	data, err := getToken(tokens, tokenID)
	if err != nil {
		return err
	}
	if err := transfer(data, tokenID); err != nil {
		return err
	}

	previousOwner := data.Owner
	data.Owner = receiver
	data.Operators = bitfield.New()
	if err := tokens.Set(tokenID, data); err != nil {
		return err
	}

	previousData, err := getOwner(owners, previousOwner)
	if err != nil {
		return err
	}
	if previousData == nil {
		return xerrors.Errorf("owner of token %d not found", tokenID)
	}
	previousData.Balance--
	if err := putOrPruneOwner(owners, previousOwner, previousData); err != nil {
		return err
	}

	receiverData, err := getOwner(owners, receiver)
	if err != nil {
		return err
	}
	if receiverData == nil {
		receiverData = &OwnerData{Operators: bitfield.New()}
	}
	receiverData.Balance++
	if err := owners.Put(adt.ActorKey(receiver), receiverData); err != nil {
		return err
	}

	if st.TokenData, err = tokens.Root(); err != nil {
		return err
	}
	st.OwnerData, err = owners.Root()
	return err
}

// IsAccountOperator checks account-level approval between an owner and an
// operator.
func (st *NFTState) IsAccountOperator(store adt.Store, owner, operator abi.ActorID) (bool, error) {
	owners, err := st.ownerDataMap(store)
	if err != nil {
		return false, err
	}
	return isAccountOperator(owners, owner, operator)
}

func isAccountOperator(owners *adt.Map, owner, operator abi.ActorID) (bool, error) {
	data, err := getOwner(owners, owner)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, xerrors.Errorf("owner %d not found", owner)
	}
	return ContainsActor(&data.Operators, operator)
}

// assertOwnsToken requires that the actor owns the token.
func assertOwnsToken(data *TokenData, tokenID TokenID, actor abi.ActorID) error {
	if data.Owner != actor {
		return &NotOwnerError{Actor: actor, TokenID: tokenID}
	}
	return nil
}

// assertTokenLevelApproval requires that the operator is approved on the
// token itself.
func assertTokenLevelApproval(data *TokenData, tokenID TokenID, operator abi.ActorID) error {
	approved, err := ContainsActor(&data.Operators, operator)
	if err != nil {
		return err
	}
	if !approved {
		return &NotAuthorizedError{Actor: operator, TokenID: tokenID}
	}
	return nil
}

// MintReturn finalizes a mint from the current state. Call on a freshly
// loaded or known-up-to-date state.
func (st *NFTState) MintReturn(store adt.Store, intermediate *MintIntermediate) (*MintReturn, error) {
	balance, err := st.GetBalance(store, intermediate.To)
	if err != nil {
		return nil, err
	}
	return &MintReturn{
		Balance:       balance,
		Supply:        st.TotalSupply,
		TokenIDs:      intermediate.TokenIDs,
		RecipientData: intermediate.RecipientData,
	}, nil
}

// TransferReturn finalizes a transfer from the current state. Call on a
// freshly loaded or known-up-to-date state.
func (st *NFTState) TransferReturn(store adt.Store, intermediate *TransferIntermediate) (*TransferReturn, error) {
	fromBalance, err := st.GetBalance(store, intermediate.From)
	if err != nil {
		return nil, err
	}
	toBalance, err := st.GetBalance(store, intermediate.To)
	if err != nil {
		return nil, err
	}
	return &TransferReturn{
		FromBalance: fromBalance,
		ToBalance:   toBalance,
		TokenIDs:    intermediate.TokenIDs,
	}, nil
}

// GetMetadata returns the metadata of a token.
func (st *NFTState) GetMetadata(store adt.Store, tokenID TokenID) (string, error) {
	tokens, err := st.tokenDataArray(store)
	if err != nil {
		return "", err
	}
	data, err := getToken(tokens, tokenID)
	if err != nil {
		return "", err
	}
	return data.Metadata, nil
}

// GetOwner returns the owner of a token.
func (st *NFTState) GetOwner(store adt.Store, tokenID TokenID) (abi.ActorID, error) {
	tokens, err := st.tokenDataArray(store)
	if err != nil {
		return 0, err
	}
	data, err := getToken(tokens, tokenID)
	if err != nil {
		return 0, err
	}
	return data.Owner, nil
}

// ListTokens enumerates a page of live token ids. A zero limit returns
// everything from the cursor onward.
func (st *NFTState) ListTokens(store adt.Store, cursor *Cursor, limit uint64) (TokenSet, *Cursor, error) {
	tokens, err := st.tokenArrayForCursor(store, cursor)
	if err != nil {
		return bitfield.New(), nil, err
	}

	tokenIDs := bitfield.New()
	next, hasMore, err := tokens.ForEachRanged(cursorIndex(cursor), limit, nil, func(i uint64) error {
		tokenIDs.Set(i)
		return nil
	})
	if err != nil {
		return bitfield.New(), nil, err
	}
	return tokenIDs, st.nextTokenCursor(next, hasMore), nil
}

// ListOwnedTokens enumerates a page of token ids held by an owner. This
// walks the token array, so the page cost is proportional to the range
// scanned rather than the owner's balance.
func (st *NFTState) ListOwnedTokens(store adt.Store, owner abi.ActorID, cursor *Cursor, limit uint64) (TokenSet, *Cursor, error) {
	tokens, err := st.tokenArrayForCursor(store, cursor)
	if err != nil {
		return bitfield.New(), nil, err
	}

	tokenIDs := bitfield.New()
	var data TokenData
	next, hasMore, err := tokens.ForEachRanged(cursorIndex(cursor), limit, &data, func(i uint64) error {
		if data.Owner == owner {
			tokenIDs.Set(i)
		}
		return nil
	})
	if err != nil {
		return bitfield.New(), nil, err
	}
	return tokenIDs, st.nextTokenCursor(next, hasMore), nil
}

// ListTokenOperators enumerates a page of the operators approved on a
// single token.
func (st *NFTState) ListTokenOperators(store adt.Store, tokenID TokenID, cursor *Cursor, limit uint64) (ActorIDSet, *Cursor, error) {
	tokens, err := st.tokenArrayForCursor(store, cursor)
	if err != nil {
		return bitfield.New(), nil, err
	}
	data, err := getToken(tokens, tokenID)
	if err != nil {
		return bitfield.New(), nil, err
	}

	start := cursorIndex(cursor)
	page, hasMore, err := slicePage(&data.Operators, start, limit)
	if err != nil {
		return bitfield.New(), nil, err
	}
	return page, st.nextTokenCursor(start+limit, hasMore), nil
}

// ListOperatorTokens enumerates a page of the token ids an operator is
// approved on at token level.
func (st *NFTState) ListOperatorTokens(store adt.Store, operator abi.ActorID, cursor *Cursor, limit uint64) (TokenSet, *Cursor, error) {
	tokens, err := st.tokenArrayForCursor(store, cursor)
	if err != nil {
		return bitfield.New(), nil, err
	}

	tokenIDs := bitfield.New()
	var data TokenData
	next, hasMore, err := tokens.ForEachRanged(cursorIndex(cursor), limit, &data, func(i uint64) error {
		approved, err := ContainsActor(&data.Operators, operator)
		if err != nil {
			return err
		}
		if approved {
			tokenIDs.Set(i)
		}
		return nil
	})
	if err != nil {
		return bitfield.New(), nil, err
	}
	return tokenIDs, st.nextTokenCursor(next, hasMore), nil
}

// ListAccountOperators enumerates a page of an owner's account-level
// operators. An owner with no index entry has none.
func (st *NFTState) ListAccountOperators(store adt.Store, owner abi.ActorID, cursor *Cursor, limit uint64) (ActorIDSet, *Cursor, error) {
	if cursor != nil && !cursor.Root.Equals(st.OwnerData) {
		return bitfield.New(), nil, &InvalidCursorError{}
	}
	owners, err := st.ownerDataMap(store)
	if err != nil {
		return bitfield.New(), nil, err
	}
	data, err := getOwner(owners, owner)
	if err != nil {
		return bitfield.New(), nil, err
	}
	if data == nil {
		return bitfield.New(), nil, nil
	}

	start := cursorIndex(cursor)
	page, hasMore, err := slicePage(&data.Operators, start, limit)
	if err != nil {
		return bitfield.New(), nil, err
	}
	var next *Cursor
	if hasMore {
		next = &Cursor{Root: st.OwnerData, Index: start + limit}
	}
	return page, next, nil
}

func cursorIndex(cursor *Cursor) uint64 {
	if cursor == nil {
		return 0
	}
	return cursor.Index
}

func (st *NFTState) nextTokenCursor(index uint64, hasMore bool) *Cursor {
	if !hasMore {
		return nil
	}
	return &Cursor{Root: st.TokenData, Index: index}
}
