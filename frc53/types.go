package frc53

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-bitfield"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"

	"github.com/filecoin-project/go-actors-utils/receiver"
)

// TokenID identifies a single token within a collection. Ids are assigned
// sequentially at mint and never reused, even after a burn.
type TokenID = uint64

// TokenSet is a set of token ids encoded as an rle+ bitfield.
type TokenSet = bitfield.BitField

// ActorIDSet is a set of actor ids encoded as an rle+ bitfield.
type ActorIDSet = bitfield.BitField

// TokenType tags receiver hook payloads produced by this package.
var TokenType = receiver.TypeOf("FRC53")

// FRC53TokenReceived is the payload a receiving actor is given when tokens
// are credited to it by a mint or transfer.
type FRC53TokenReceived struct {
	// To is the account credited, i.e. the actor receiving this payload.
	To abi.ActorID
	// Operator is the account that initiated the operation.
	Operator abi.ActorID
	// TokenIDs being credited.
	TokenIDs []TokenID
	// OperatorData is passed through from the operator.
	OperatorData []byte
	// TokenData is passed through from the token actor.
	TokenData []byte
}

// Cursor is an opaque position in an enumeration. It remembers the root of
// the structure being enumerated so that a mutation invalidates it.
type Cursor struct {
	Root  cid.Cid
	Index uint64
}

// TransferParams moves tokens from the caller to another account.
type TransferParams struct {
	To           address.Address
	TokenIDs     []TokenID
	OperatorData []byte
}

// TransferReturn is the result of a completed transfer.
type TransferReturn struct {
	FromBalance uint64
	ToBalance   uint64
	TokenIDs    []TokenID
}

// TransferFromParams moves tokens between two third-party accounts on the
// authority of the caller's operator status.
type TransferFromParams struct {
	From         address.Address
	To           address.Address
	TokenIDs     []TokenID
	OperatorData []byte
}

// BurnFromParams destroys third-party tokens on the authority of the
// caller's operator status.
type BurnFromParams struct {
	From     address.Address
	TokenIDs []TokenID
}

// ApproveParams authorizes an operator for specific tokens owned by the
// caller.
type ApproveParams struct {
	Operator address.Address
	TokenIDs []TokenID
}

// ApproveForAllParams authorizes an operator for all of the caller's
// tokens, present and future.
type ApproveForAllParams struct {
	Operator address.Address
}

// IsApprovedForAllParams queries account-level operator status.
type IsApprovedForAllParams struct {
	Owner    address.Address
	Operator address.Address
}

// RevokeParams withdraws an operator's authorization for specific tokens.
type RevokeParams struct {
	Operator address.Address
	TokenIDs []TokenID
}

// RevokeForAllParams withdraws an operator's account-level authorization.
type RevokeForAllParams struct {
	Operator address.Address
}

// MintReturn is the result of a completed mint.
type MintReturn struct {
	// Balance of the owner address after the mint.
	Balance uint64
	// Supply of the collection after the mint.
	Supply uint64
	// TokenIDs that were minted.
	TokenIDs []TokenID
	// RecipientData returned by the recipient's receiver hook.
	RecipientData []byte
}

// MintIntermediate carries mint state between the receiver hook call and
// the construction of the MintReturn.
type MintIntermediate struct {
	To            abi.ActorID
	TokenIDs      []TokenID
	RecipientData []byte
}

// SetRecipientData makes MintIntermediate a receiver.RecipientData sink.
func (m *MintIntermediate) SetRecipientData(data []byte) {
	m.RecipientData = data
}

// TransferIntermediate carries transfer state between the receiver hook
// call and the construction of the TransferReturn.
type TransferIntermediate struct {
	TokenIDs      []TokenID
	From          abi.ActorID
	To            abi.ActorID
	RecipientData []byte
}

func (t *TransferIntermediate) SetRecipientData(data []byte) {
	t.RecipientData = data
}

// ListTokensReturn is a page of token ids.
type ListTokensReturn struct {
	Tokens TokenSet
	// NextCursor resumes the enumeration, or is absent on the last page.
	NextCursor *Cursor
}

// ListOperatorsReturn is a page of operator actor ids.
type ListOperatorsReturn struct {
	Operators ActorIDSet
	// NextCursor resumes the enumeration, or is absent on the last page.
	NextCursor *Cursor
}
