// Package precompile resolves and runs the small set of built-in contracts
// living at addresses 0x01-0x09, whose implementations (elliptic-curve
// recovery, hashing, modular exponentiation, pairing checks) this
// interpreter treats as opaque primitives supplied by go-ethereum rather
// than reimplementing.
package precompile

import (
	"github.com/ethereum/go-ethereum/common"
	gethvm "github.com/ethereum/go-ethereum/core/vm"

	"github.com/palladium-chain/corevm/go/vmcore"
)

// tableFor returns the address->contract table matching revision's
// precompile set: Frontier through SpuriousDragon ship ECRECOVER/SHA256/
// RIPEMD160/IDENTITY; Byzantium adds MODEXP/ECADD/ECMUL/ECPAIRING;
// Istanbul re-prices the EC* contracts (EIP-1108) and adds BLAKE2F
// (EIP-152); Berlin keeps Istanbul's set (EIP-2929's cold/warm surcharge on
// precompile calls is applied by the CALL-family opcode handler, not here).
func tableFor(revision vmcore.Revision) map[common.Address]gethvm.PrecompiledContract {
	switch {
	case revision >= vmcore.Istanbul:
		return gethvm.PrecompiledContractsIstanbul
	case revision >= vmcore.Byzantium:
		return gethvm.PrecompiledContractsByzantium
	default:
		return gethvm.PrecompiledContractsHomestead
	}
}

// Lookup reports whether addr names a precompile at revision, and if so
// returns it.
func Lookup(addr vmcore.Address, revision vmcore.Revision) (gethvm.PrecompiledContract, bool) {
	contract, ok := tableFor(revision)[common.Address(addr)]
	return contract, ok
}

// Run executes a precompile call: RequiredGas prices the call before any
// work is done, matching the interpreter's charge-then-execute discipline.
// A gas value too small to cover RequiredGas fails without running the
// contract at all; an input the contract itself rejects fails and consumes
// all of gas, per the standard precompile-failure convention.
func Run(contract gethvm.PrecompiledContract, input []byte, gas vmcore.Gas) (output []byte, gasLeft vmcore.Gas, status vmcore.StatusCode) {
	cost := vmcore.Gas(contract.RequiredGas(input))
	if cost > gas {
		return nil, 0, vmcore.OutOfGas
	}
	out, err := contract.Run(input)
	if err != nil {
		return nil, 0, vmcore.PrecompileFailure
	}
	return out, gas - cost, vmcore.Success
}
