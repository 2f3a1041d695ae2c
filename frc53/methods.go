package frc53

import (
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/go-actors-utils/dispatch"
)

// Standard method numbers of the non-fungible token interface, derived from
// the method names so that callers need no shared IDL. Mint is not part of
// the standard surface; collection actors expose issuance however they see
// fit.
var (
	MethodBalanceOf            abi.MethodNum = dispatch.MustMethodNumber("BalanceOf")
	MethodTotalSupply          abi.MethodNum = dispatch.MustMethodNumber("TotalSupply")
	MethodOwnerOf              abi.MethodNum = dispatch.MustMethodNumber("OwnerOf")
	MethodMetadata             abi.MethodNum = dispatch.MustMethodNumber("Metadata")
	MethodTransfer             abi.MethodNum = dispatch.MustMethodNumber("Transfer")
	MethodTransferFrom         abi.MethodNum = dispatch.MustMethodNumber("TransferFrom")
	MethodBurn                 abi.MethodNum = dispatch.MustMethodNumber("Burn")
	MethodBurnFrom             abi.MethodNum = dispatch.MustMethodNumber("BurnFrom")
	MethodApprove              abi.MethodNum = dispatch.MustMethodNumber("Approve")
	MethodRevoke               abi.MethodNum = dispatch.MustMethodNumber("Revoke")
	MethodSetApprovalForAll    abi.MethodNum = dispatch.MustMethodNumber("SetApprovalForAll")
	MethodRevokeApprovalForAll abi.MethodNum = dispatch.MustMethodNumber("RevokeApprovalForAll")
	MethodIsApprovedForAll     abi.MethodNum = dispatch.MustMethodNumber("IsApprovedForAll")
	MethodListTokens           abi.MethodNum = dispatch.MustMethodNumber("ListTokens")
	MethodListOwnedTokens      abi.MethodNum = dispatch.MustMethodNumber("ListOwnedTokens")
)
