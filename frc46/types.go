package frc46

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/go-actors-utils/receiver"
)

// TokenType tags receiver hook payloads produced by this package.
var TokenType = receiver.TypeOf("FRC46")

// FRC46TokenReceived is the payload a receiving actor is given when tokens
// are credited to it by a mint or transfer.
type FRC46TokenReceived struct {
	// From is the account the tokens were debited from. For mints this is
	// the token actor itself.
	From abi.ActorID
	// To is the account credited, i.e. the actor receiving this payload.
	To abi.ActorID
	// Operator is the account that initiated the operation.
	Operator abi.ActorID
	// Amount of tokens credited.
	Amount abi.TokenAmount
	// OperatorData is passed through from the operator.
	OperatorData []byte
	// TokenData is passed through from the token actor.
	TokenData []byte
}

// MintParams instructs a token actor to credit freshly minted tokens.
type MintParams struct {
	InitialOwner address.Address
	Amount       abi.TokenAmount
	OperatorData []byte
}

// TransferParams moves tokens from the caller to another account.
type TransferParams struct {
	To           address.Address
	Amount       abi.TokenAmount
	OperatorData []byte
}

// TransferFromParams moves tokens between two third-party accounts, debiting
// the caller's allowance on the source account.
type TransferFromParams struct {
	From         address.Address
	To           address.Address
	Amount       abi.TokenAmount
	OperatorData []byte
}

// IncreaseAllowanceParams raises the caller's approval for an operator.
type IncreaseAllowanceParams struct {
	Operator address.Address
	Increase abi.TokenAmount
}

// DecreaseAllowanceParams lowers the caller's approval for an operator.
type DecreaseAllowanceParams struct {
	Operator address.Address
	Decrease abi.TokenAmount
}

// RevokeAllowanceParams clears the caller's approval for an operator.
type RevokeAllowanceParams struct {
	Operator address.Address
}

// GetAllowanceParams queries the approval between an owner and an operator.
type GetAllowanceParams struct {
	Owner    address.Address
	Operator address.Address
}

// BurnParams destroys tokens from the caller's balance.
type BurnParams struct {
	Amount abi.TokenAmount
}

// BurnFromParams destroys tokens from a third-party balance, debiting the
// caller's allowance.
type BurnFromParams struct {
	Owner  address.Address
	Amount abi.TokenAmount
}

// MintReturn is the result of a completed mint.
type MintReturn struct {
	// Balance is the recipient's balance after the mint.
	Balance abi.TokenAmount
	// Supply is the total supply after the mint.
	Supply abi.TokenAmount
	// RecipientData is the data returned by the recipient's receiver hook.
	RecipientData []byte
}

// TransferReturn is the result of a completed transfer.
type TransferReturn struct {
	FromBalance   abi.TokenAmount
	ToBalance     abi.TokenAmount
	RecipientData []byte
}

// TransferFromReturn is the result of a completed delegated transfer.
type TransferFromReturn struct {
	FromBalance   abi.TokenAmount
	ToBalance     abi.TokenAmount
	Allowance     abi.TokenAmount
	RecipientData []byte
}

// BurnReturn is the result of a completed burn.
type BurnReturn struct {
	Balance abi.TokenAmount
}

// BurnFromReturn is the result of a completed delegated burn.
type BurnFromReturn struct {
	Balance   abi.TokenAmount
	Allowance abi.TokenAmount
}

// MintIntermediate carries mint state between the receiver hook call and the
// construction of the MintReturn.
type MintIntermediate struct {
	Recipient     address.Address
	RecipientData []byte
}

// SetRecipientData makes MintIntermediate a receiver.RecipientData sink.
func (m *MintIntermediate) SetRecipientData(data []byte) {
	m.RecipientData = data
}

// TransferIntermediate carries transfer state between the receiver hook call
// and the construction of the TransferReturn.
type TransferIntermediate struct {
	From          address.Address
	To            address.Address
	RecipientData []byte
}

func (t *TransferIntermediate) SetRecipientData(data []byte) {
	t.RecipientData = data
}

// TransferFromIntermediate carries delegated-transfer state between the
// receiver hook call and the construction of the TransferFromReturn.
type TransferFromIntermediate struct {
	Operator      address.Address
	From          address.Address
	To            address.Address
	RecipientData []byte
}

func (t *TransferFromIntermediate) SetRecipientData(data []byte) {
	t.RecipientData = data
}
