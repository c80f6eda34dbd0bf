package interpreter

import "github.com/palladium-chain/corevm/go/vmcore"

func opStop(f *Frame) StepOutcome {
	return Halt(vmcore.Success, nil)
}

func opJump(f *Frame) StepOutcome {
	if err := f.gas.charge(gasMid); err != nil {
		return outOfGas()
	}
	dest := int64(toUint64Saturating(mustPopPtr(f)))
	if !f.jumps.isValid(dest) {
		return Halt(vmcore.BadJumpDestination, nil)
	}
	return Jump(dest)
}

func opJumpi(f *Frame) StepOutcome {
	if err := f.gas.charge(gasHigh); err != nil {
		return outOfGas()
	}
	dest := int64(toUint64Saturating(mustPopPtr(f)))
	cond := mustPop(f)
	if cond.IsZero() {
		return Continue()
	}
	if !f.jumps.isValid(dest) {
		return Halt(vmcore.BadJumpDestination, nil)
	}
	return Jump(dest)
}

func opReturn(f *Frame) StepOutcome {
	offset := toUint64Saturating(mustPopPtr(f))
	size := toUint64Saturating(mustPopPtr(f))
	data, err := f.memory.slice(offset, size, f.gas)
	if err != nil {
		return outOfGas()
	}
	out := make([]byte, len(data))
	copy(out, data)
	return Halt(vmcore.Success, out)
}

func opRevert(f *Frame) StepOutcome {
	offset := toUint64Saturating(mustPopPtr(f))
	size := toUint64Saturating(mustPopPtr(f))
	data, err := f.memory.slice(offset, size, f.gas)
	if err != nil {
		return outOfGas()
	}
	out := make([]byte, len(data))
	copy(out, data)
	return Halt(vmcore.Revert, out)
}

func opInvalid(f *Frame) StepOutcome {
	return Halt(vmcore.InvalidInstruction, nil)
}
