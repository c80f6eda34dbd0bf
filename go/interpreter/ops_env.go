package interpreter

import (
	"github.com/holiman/uint256"

	"github.com/palladium-chain/corevm/go/vmcore"
)

// uint256Int is a local alias kept short for the many literal
// new(uint256Int) constructions in this file.
type uint256Int = uint256.Int

// mustPop pops the top of the stack; callers only ever use it after the
// table's MinStack check has already guaranteed the pop is safe.
func mustPop(f *Frame) uint256.Int {
	return f.stack.pop()
}

// mustPopPtr is mustPop for call sites that need to pass the popped value
// by pointer; Go does not allow taking the address of a function call
// result directly.
func mustPopPtr(f *Frame) *uint256.Int {
	v := f.stack.pop()
	return &v
}

func opAddress(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := uint256FromAddress(f.message.Recipient)
	f.stack.push(&v)
	return Continue()
}

// makeOpBalance returns a BALANCE handler charging a fixed cost, used for
// Frontier through Istanbul (the cost itself changes at EIP-150, but
// the access is always unconditional before EIP-2929).
func makeOpBalance(cost vmcore.Gas) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		if err := f.gas.charge(cost); err != nil {
			return outOfGas()
		}
		addrWord := f.stack.peek()
		addr := addressFromUint256(addrWord)
		bal := uint256FromValue(f.host.GetBalance(addr))
		*addrWord = bal
		return Continue()
	}
}

// opBalanceEIP2929 prices BALANCE by the address's warm/cold status (Berlin).
func opBalanceEIP2929(f *Frame) StepOutcome {
	addrWord := f.stack.peek()
	addr := addressFromUint256(addrWord)
	cost := warmStorageReadCost
	if wasCold := f.host.WarmUpAccount(addr); wasCold {
		cost = coldAccountAccessCost
	}
	if err := f.gas.charge(cost); err != nil {
		return outOfGas()
	}
	bal := uint256FromValue(f.host.GetBalance(addr))
	*addrWord = bal
	return Continue()
}

func opOrigin(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := uint256FromAddress(f.host.GetTxContext().Origin)
	f.stack.push(&v)
	return Continue()
}

func opCaller(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := uint256FromAddress(f.message.Sender)
	f.stack.push(&v)
	return Continue()
}

func opCallvalue(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := uint256FromValue(f.message.Value)
	f.stack.push(&v)
	return Continue()
}

func opCalldataload(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	offsetWord := f.stack.peek()
	offset := toUint64Saturating(offsetWord)
	var buf [32]byte
	copyOut(f.message.Input, offset, buf[:])
	offsetWord.SetBytes32(buf[:])
	return Continue()
}

func opCalldatasize(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := new(uint256Int).SetUint64(uint64(len(f.message.Input)))
	f.stack.push(v)
	return Continue()
}

func opCalldatacopy(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	destOffset := toUint64Saturating(mustPopPtr(f))
	offset := toUint64Saturating(mustPopPtr(f))
	size := toUint64Saturating(mustPopPtr(f))
	if err := f.gas.charge(memoryCopyCost(size)); err != nil {
		return outOfGas()
	}
	dst, err := f.memory.slice(destOffset, size, f.gas)
	if err != nil {
		return outOfGas()
	}
	copyOut(f.message.Input, offset, dst)
	return Continue()
}

func opCodesize(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := new(uint256Int).SetUint64(uint64(len(f.code)))
	f.stack.push(v)
	return Continue()
}

func opCodecopy(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	destOffset := toUint64Saturating(mustPopPtr(f))
	offset := toUint64Saturating(mustPopPtr(f))
	size := toUint64Saturating(mustPopPtr(f))
	if err := f.gas.charge(memoryCopyCost(size)); err != nil {
		return outOfGas()
	}
	dst, err := f.memory.slice(destOffset, size, f.gas)
	if err != nil {
		return outOfGas()
	}
	copyOut(f.code, offset, dst)
	return Continue()
}

func opGasprice(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := uint256FromValue(f.host.GetTxContext().GasPrice)
	f.stack.push(&v)
	return Continue()
}

func makeOpExtcodesize(cost vmcore.Gas) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		if err := f.gas.charge(cost); err != nil {
			return outOfGas()
		}
		addrWord := f.stack.peek()
		addr := addressFromUint256(addrWord)
		size := new(uint256Int).SetUint64(uint64(len(f.host.GetCode(addr))))
		*addrWord = *size
		return Continue()
	}
}

func opExtcodesizeEIP2929(f *Frame) StepOutcome {
	addrWord := f.stack.peek()
	addr := addressFromUint256(addrWord)
	cost := warmStorageReadCost
	if wasCold := f.host.WarmUpAccount(addr); wasCold {
		cost = coldAccountAccessCost
	}
	if err := f.gas.charge(cost); err != nil {
		return outOfGas()
	}
	size := new(uint256Int).SetUint64(uint64(len(f.host.GetCode(addr))))
	*addrWord = *size
	return Continue()
}

func makeOpExtcodecopy(cost vmcore.Gas) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		addr := addressFromUint256(mustPopPtr(f))
		if err := f.gas.charge(cost); err != nil {
			return outOfGas()
		}
		return extcodecopyBody(f, addr)
	}
}

func opExtcodecopyEIP2929(f *Frame) StepOutcome {
	addr := addressFromUint256(mustPopPtr(f))
	cost := warmStorageReadCost
	if wasCold := f.host.WarmUpAccount(addr); wasCold {
		cost = coldAccountAccessCost
	}
	if err := f.gas.charge(cost); err != nil {
		return outOfGas()
	}
	return extcodecopyBody(f, addr)
}

func extcodecopyBody(f *Frame, addr vmcore.Address) StepOutcome {
	destOffset := toUint64Saturating(mustPopPtr(f))
	offset := toUint64Saturating(mustPopPtr(f))
	size := toUint64Saturating(mustPopPtr(f))
	if err := f.gas.charge(memoryCopyCost(size)); err != nil {
		return outOfGas()
	}
	dst, err := f.memory.slice(destOffset, size, f.gas)
	if err != nil {
		return outOfGas()
	}
	copyOut(f.host.GetCode(addr), offset, dst)
	return Continue()
}

func opReturndatasize(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := new(uint256Int).SetUint64(uint64(len(f.returnData)))
	f.stack.push(v)
	return Continue()
}

func opReturndatacopy(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	destOffset := toUint64Saturating(mustPopPtr(f))
	offset := toUint64Saturating(mustPopPtr(f))
	size := toUint64Saturating(mustPopPtr(f))
	if offset+size > uint64(len(f.returnData)) || offset+size < offset {
		return Halt(vmcore.InvalidMemoryAccess, nil)
	}
	if err := f.gas.charge(memoryCopyCost(size)); err != nil {
		return outOfGas()
	}
	dst, err := f.memory.slice(destOffset, size, f.gas)
	if err != nil {
		return outOfGas()
	}
	copy(dst, f.returnData[offset:offset+size])
	return Continue()
}

func opExtcodehashConstantinople(f *Frame) StepOutcome {
	if err := f.gas.charge(gasExtCodeHashConstantinople); err != nil {
		return outOfGas()
	}
	return extcodehashBody(f)
}

func opExtcodehashEIP2929(f *Frame) StepOutcome {
	addrWord := f.stack.peek()
	addr := addressFromUint256(addrWord)
	cost := warmStorageReadCost
	if wasCold := f.host.WarmUpAccount(addr); wasCold {
		cost = coldAccountAccessCost
	}
	if err := f.gas.charge(cost); err != nil {
		return outOfGas()
	}
	return extcodehashBody(f)
}

func extcodehashBody(f *Frame) StepOutcome {
	addrWord := f.stack.peek()
	addr := addressFromUint256(addrWord)
	if !f.host.AccountExists(addr) {
		addrWord.Clear()
		return Continue()
	}
	hash := f.host.GetCodeHash(addr)
	addrWord.SetBytes32(hash[:])
	return Continue()
}

func opBlockhash(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBlockhash); err != nil {
		return outOfGas()
	}
	numWord := f.stack.peek()
	number := toUint64Saturating(numWord)
	hash := f.host.GetBlockHash(int64(number))
	numWord.SetBytes32(hash[:])
	return Continue()
}

func opCoinbase(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := uint256FromAddress(f.host.GetTxContext().Coinbase)
	f.stack.push(&v)
	return Continue()
}

func opTimestamp(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := new(uint256Int).SetUint64(uint64(f.host.GetTxContext().Timestamp))
	f.stack.push(v)
	return Continue()
}

func opNumber(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := new(uint256Int).SetUint64(uint64(f.host.GetTxContext().BlockNumber))
	f.stack.push(v)
	return Continue()
}

func opDifficulty(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := uint256FromValue(f.host.GetTxContext().Difficulty)
	f.stack.push(&v)
	return Continue()
}

func opGaslimit(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := new(uint256Int).SetUint64(uint64(f.host.GetTxContext().GasLimit))
	f.stack.push(v)
	return Continue()
}

func opChainid(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := uint256FromValue(f.host.GetTxContext().ChainID)
	f.stack.push(&v)
	return Continue()
}

func opSelfbalance(f *Frame) StepOutcome {
	if err := f.gas.charge(gasLow); err != nil {
		return outOfGas()
	}
	v := uint256FromValue(f.host.GetBalance(f.message.Recipient))
	f.stack.push(&v)
	return Continue()
}
