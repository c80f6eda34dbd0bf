package interpreter

import "github.com/palladium-chain/corevm/go/opcode"

// applyHomesteadDiff adds DELEGATECALL, Homestead's sole opcode-level
// change.
func applyHomesteadDiff(t *Table) {
	set(t, opcode.DELEGATECALL, Handler{MinStack: 6, Execute: makeOpDelegatecall(callAccessCostFrontier)})
}

// applyTangerineWhistleDiff applies EIP-150: repricing every opcode that
// touches another account's state or forwards gas to a sub-call, and
// introducing the 63/64 gas-forwarding rule (folded into callGas, used
// unconditionally by every CALL-family handler in this table already).
func applyTangerineWhistleDiff(t *Table) {
	set(t, opcode.BALANCE, Handler{MinStack: 1, Execute: makeOpBalance(gasBalanceEIP150)})
	set(t, opcode.EXTCODESIZE, Handler{MinStack: 1, Execute: makeOpExtcodesize(gasExtCodeEIP150)})
	set(t, opcode.EXTCODECOPY, Handler{MinStack: 4, Execute: makeOpExtcodecopy(gasExtCodeEIP150)})
	set(t, opcode.SLOAD, Handler{MinStack: 1, Execute: makeOpSload(gasSload)})
	set(t, opcode.CALL, Handler{MinStack: 7, Execute: makeOpCall(callAccessCostEIP150)})
	set(t, opcode.CALLCODE, Handler{MinStack: 7, Execute: makeOpCallcode(callAccessCostEIP150)})
	set(t, opcode.DELEGATECALL, Handler{MinStack: 6, Execute: makeOpDelegatecall(callAccessCostEIP150)})
	set(t, opcode.SELFDESTRUCT, Handler{MinStack: 1, StateModifying: true, Execute: makeOpSelfdestruct(gasSelfdestructEIP150, true)})
}

// applySpuriousDragonDiff applies EIP-160: repricing EXP from 10 to 50 gas
// per exponent byte.
func applySpuriousDragonDiff(t *Table) {
	set(t, opcode.EXP, Handler{MinStack: 2, Execute: makeOpExp(gasExpByteEIP160)})
}

// applyByzantiumDiff adds REVERT, RETURNDATASIZE, RETURNDATACOPY, and
// STATICCALL.
func applyByzantiumDiff(t *Table) {
	set(t, opcode.REVERT, Handler{MinStack: 2, Execute: opRevert})
	set(t, opcode.RETURNDATASIZE, Handler{Execute: opReturndatasize})
	set(t, opcode.RETURNDATACOPY, Handler{MinStack: 3, Execute: opReturndatacopy})
	set(t, opcode.STATICCALL, Handler{MinStack: 6, Execute: makeOpStaticcall(callAccessCostEIP150)})
}

// applyConstantinopleDiff adds the bitwise shift instructions, EXTCODEHASH,
// and CREATE2, and switches SSTORE to net-gas metering. Constantinople's
// mainnet-never-shipped EIP-1283 formula and Petersburg's temporary revert
// to flat pricing are collapsed into a single transition straight to the
// EIP-2200 (Istanbul) formula, the resolved simplification recorded for
// this interpreter's SSTORE schedule.
func applyConstantinopleDiff(t *Table) {
	set(t, opcode.SHL, Handler{MinStack: 2, Execute: opShl})
	set(t, opcode.SHR, Handler{MinStack: 2, Execute: opShr})
	set(t, opcode.SAR, Handler{MinStack: 2, Execute: opSar})
	set(t, opcode.EXTCODEHASH, Handler{MinStack: 1, Execute: opExtcodehashConstantinople})
	set(t, opcode.CREATE2, Handler{MinStack: 4, StateModifying: true, Execute: opCreate2})
	set(t, opcode.SSTORE, Handler{MinStack: 2, StateModifying: true, Execute: opSstoreEIP2200})
}

// applyIstanbulDiff adds CHAINID and SELFBALANCE and reprices SLOAD under
// EIP-1884.
func applyIstanbulDiff(t *Table) {
	set(t, opcode.CHAINID, Handler{Execute: opChainid})
	set(t, opcode.SELFBALANCE, Handler{Execute: opSelfbalance})
	set(t, opcode.SLOAD, Handler{MinStack: 1, Execute: makeOpSload(sloadGasEIP2200)})
}

// applyBerlinDiff applies EIP-2929: every opcode that touches an account or
// storage slot for the first time in a transaction pays a cold-access
// surcharge, and pays only the warm rate on every subsequent touch. EIP-2930
// access lists (which let a transaction pre-warm addresses) are not handled
// anywhere in this module; this table only carries the warm/cold pricing
// functions themselves.
func applyBerlinDiff(t *Table) {
	set(t, opcode.BALANCE, Handler{MinStack: 1, Execute: opBalanceEIP2929})
	set(t, opcode.EXTCODESIZE, Handler{MinStack: 1, Execute: opExtcodesizeEIP2929})
	set(t, opcode.EXTCODECOPY, Handler{MinStack: 4, Execute: opExtcodecopyEIP2929})
	set(t, opcode.EXTCODEHASH, Handler{MinStack: 1, Execute: opExtcodehashEIP2929})
	set(t, opcode.SLOAD, Handler{MinStack: 1, Execute: opSloadEIP2929})
	set(t, opcode.SSTORE, Handler{MinStack: 2, StateModifying: true, Execute: opSstoreEIP2929})
	set(t, opcode.CALL, Handler{MinStack: 7, Execute: makeOpCall(callAccessCostEIP2929)})
	set(t, opcode.CALLCODE, Handler{MinStack: 7, Execute: makeOpCallcode(callAccessCostEIP2929)})
	set(t, opcode.DELEGATECALL, Handler{MinStack: 6, Execute: makeOpDelegatecall(callAccessCostEIP2929)})
	set(t, opcode.STATICCALL, Handler{MinStack: 6, Execute: makeOpStaticcall(callAccessCostEIP2929)})
	set(t, opcode.SELFDESTRUCT, Handler{MinStack: 1, StateModifying: true, Execute: opSelfdestructEIP2929})
}
