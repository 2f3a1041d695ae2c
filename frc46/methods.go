package frc46

import (
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/go-actors-utils/dispatch"
)

// Standard method numbers of the fungible token interface, derived from the
// method names so that callers need no shared IDL. Mint is not part of the
// standard surface; token actors expose issuance however they see fit.
var (
	MethodName              abi.MethodNum = dispatch.MustMethodNumber("Name")
	MethodSymbol            abi.MethodNum = dispatch.MustMethodNumber("Symbol")
	MethodGranularity       abi.MethodNum = dispatch.MustMethodNumber("GranularityExported")
	MethodTotalSupply       abi.MethodNum = dispatch.MustMethodNumber("TotalSupply")
	MethodBalanceOf         abi.MethodNum = dispatch.MustMethodNumber("BalanceOf")
	MethodAllowance         abi.MethodNum = dispatch.MustMethodNumber("Allowance")
	MethodIncreaseAllowance abi.MethodNum = dispatch.MustMethodNumber("IncreaseAllowance")
	MethodDecreaseAllowance abi.MethodNum = dispatch.MustMethodNumber("DecreaseAllowance")
	MethodRevokeAllowance   abi.MethodNum = dispatch.MustMethodNumber("RevokeAllowance")
	MethodBurn              abi.MethodNum = dispatch.MustMethodNumber("Burn")
	MethodBurnFrom          abi.MethodNum = dispatch.MustMethodNumber("BurnFrom")
	MethodTransfer          abi.MethodNum = dispatch.MustMethodNumber("Transfer")
	MethodTransferFrom      abi.MethodNum = dispatch.MustMethodNumber("TransferFrom")
)
