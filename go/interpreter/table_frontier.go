package interpreter

import "github.com/palladium-chain/corevm/go/opcode"

// buildFrontierTable constructs the complete opcode table as it stood at
// genesis. Every later fork's table is derived from this one by applying
// only the opcodes a given hard fork actually added, repriced, or changed
// the behavior of.
func buildFrontierTable() *Table {
	t := &Table{}
	for i := range t {
		t[i] = undefinedHandler
	}

	set(t, opcode.STOP, Handler{Execute: opStop})
	set(t, opcode.ADD, Handler{MinStack: 2, Execute: opAdd})
	set(t, opcode.MUL, Handler{MinStack: 2, Execute: opMul})
	set(t, opcode.SUB, Handler{MinStack: 2, Execute: opSub})
	set(t, opcode.DIV, Handler{MinStack: 2, Execute: opDiv})
	set(t, opcode.SDIV, Handler{MinStack: 2, Execute: opSdiv})
	set(t, opcode.MOD, Handler{MinStack: 2, Execute: opMod})
	set(t, opcode.SMOD, Handler{MinStack: 2, Execute: opSmod})
	set(t, opcode.ADDMOD, Handler{MinStack: 3, Execute: opAddmod})
	set(t, opcode.MULMOD, Handler{MinStack: 3, Execute: opMulmod})
	set(t, opcode.EXP, Handler{MinStack: 2, Execute: makeOpExp(gasExpByteFrontier)})
	set(t, opcode.SIGNEXTEND, Handler{MinStack: 2, Execute: opSignextend})

	set(t, opcode.LT, Handler{MinStack: 2, Execute: opLt})
	set(t, opcode.GT, Handler{MinStack: 2, Execute: opGt})
	set(t, opcode.SLT, Handler{MinStack: 2, Execute: opSlt})
	set(t, opcode.SGT, Handler{MinStack: 2, Execute: opSgt})
	set(t, opcode.EQ, Handler{MinStack: 2, Execute: opEq})
	set(t, opcode.ISZERO, Handler{MinStack: 1, Execute: opIszero})
	set(t, opcode.AND, Handler{MinStack: 2, Execute: opAnd})
	set(t, opcode.OR, Handler{MinStack: 2, Execute: opOr})
	set(t, opcode.XOR, Handler{MinStack: 2, Execute: opXor})
	set(t, opcode.NOT, Handler{MinStack: 1, Execute: opNot})
	set(t, opcode.BYTE, Handler{MinStack: 2, Execute: opByte})

	set(t, opcode.SHA3, Handler{MinStack: 2, Execute: opSha3})

	set(t, opcode.ADDRESS, Handler{Execute: opAddress})
	set(t, opcode.BALANCE, Handler{MinStack: 1, Execute: makeOpBalance(20)})
	set(t, opcode.ORIGIN, Handler{Execute: opOrigin})
	set(t, opcode.CALLER, Handler{Execute: opCaller})
	set(t, opcode.CALLVALUE, Handler{Execute: opCallvalue})
	set(t, opcode.CALLDATALOAD, Handler{MinStack: 1, Execute: opCalldataload})
	set(t, opcode.CALLDATASIZE, Handler{Execute: opCalldatasize})
	set(t, opcode.CALLDATACOPY, Handler{MinStack: 3, Execute: opCalldatacopy})
	set(t, opcode.CODESIZE, Handler{Execute: opCodesize})
	set(t, opcode.CODECOPY, Handler{MinStack: 3, Execute: opCodecopy})
	set(t, opcode.GASPRICE, Handler{Execute: opGasprice})
	set(t, opcode.EXTCODESIZE, Handler{MinStack: 1, Execute: makeOpExtcodesize(20)})
	set(t, opcode.EXTCODECOPY, Handler{MinStack: 4, Execute: makeOpExtcodecopy(20)})

	set(t, opcode.BLOCKHASH, Handler{MinStack: 1, Execute: opBlockhash})
	set(t, opcode.COINBASE, Handler{Execute: opCoinbase})
	set(t, opcode.TIMESTAMP, Handler{Execute: opTimestamp})
	set(t, opcode.NUMBER, Handler{Execute: opNumber})
	set(t, opcode.DIFFICULTY, Handler{Execute: opDifficulty})
	set(t, opcode.GASLIMIT, Handler{Execute: opGaslimit})

	set(t, opcode.POP, Handler{MinStack: 1, Execute: opPop})
	set(t, opcode.MLOAD, Handler{MinStack: 1, Execute: opMload})
	set(t, opcode.MSTORE, Handler{MinStack: 2, Execute: opMstore})
	set(t, opcode.MSTORE8, Handler{MinStack: 2, Execute: opMstore8})
	set(t, opcode.SLOAD, Handler{MinStack: 1, Execute: makeOpSload(50)})
	set(t, opcode.SSTORE, Handler{MinStack: 2, StateModifying: true, Execute: opSstoreFrontier})
	set(t, opcode.JUMP, Handler{MinStack: 1, Execute: opJump})
	set(t, opcode.JUMPI, Handler{MinStack: 2, Execute: opJumpi})
	set(t, opcode.PC, Handler{Execute: opPc})
	set(t, opcode.MSIZE, Handler{Execute: opMsize})
	set(t, opcode.GAS, Handler{Execute: opGas})
	set(t, opcode.JUMPDEST, Handler{Execute: opJumpdest})

	for i := 0; i < 32; i++ {
		op := opcode.Code(int(opcode.PUSH1) + i)
		set(t, op, Handler{Execute: makePush(i + 1)})
	}
	for i := 1; i <= 16; i++ {
		op := opcode.Code(int(opcode.DUP1) + i - 1)
		set(t, op, Handler{MinStack: i, Execute: makeDup(i)})
	}
	for i := 1; i <= 16; i++ {
		op := opcode.Code(int(opcode.SWAP1) + i - 1)
		set(t, op, Handler{MinStack: i + 1, Execute: makeSwap(i)})
	}

	set(t, opcode.LOG0, Handler{MinStack: 2, StateModifying: true, Execute: makeOpLog(0)})
	set(t, opcode.LOG1, Handler{MinStack: 3, StateModifying: true, Execute: makeOpLog(1)})
	set(t, opcode.LOG2, Handler{MinStack: 4, StateModifying: true, Execute: makeOpLog(2)})
	set(t, opcode.LOG3, Handler{MinStack: 5, StateModifying: true, Execute: makeOpLog(3)})
	set(t, opcode.LOG4, Handler{MinStack: 6, StateModifying: true, Execute: makeOpLog(4)})

	set(t, opcode.CREATE, Handler{MinStack: 3, StateModifying: true, Execute: opCreate})
	set(t, opcode.CALL, Handler{MinStack: 7, Execute: makeOpCall(callAccessCostFrontier)})
	set(t, opcode.CALLCODE, Handler{MinStack: 7, Execute: makeOpCallcode(callAccessCostFrontier)})
	set(t, opcode.RETURN, Handler{MinStack: 2, Execute: opReturn})
	set(t, opcode.INVALID, Handler{Execute: opInvalid})
	set(t, opcode.SELFDESTRUCT, Handler{StateModifying: true, MinStack: 1, Execute: makeOpSelfdestruct(gasSelfdestructFrontier, false)})

	return t
}
