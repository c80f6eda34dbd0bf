package interpreter

import (
	"github.com/holiman/uint256"

	"github.com/palladium-chain/corevm/go/vmcore"
)

func opAdd(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x := f.stack.pop()
	y := f.stack.peek()
	y.Add(&x, y)
	return Continue()
}

func opMul(f *Frame) StepOutcome {
	if err := f.gas.charge(gasLow); err != nil {
		return outOfGas()
	}
	x := f.stack.pop()
	y := f.stack.peek()
	y.Mul(&x, y)
	return Continue()
}

func opSub(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x := f.stack.pop()
	y := f.stack.peek()
	y.Sub(&x, y)
	return Continue()
}

func opDiv(f *Frame) StepOutcome {
	if err := f.gas.charge(gasLow); err != nil {
		return outOfGas()
	}
	x := f.stack.pop()
	y := f.stack.peek()
	y.Div(&x, y)
	return Continue()
}

func opSdiv(f *Frame) StepOutcome {
	if err := f.gas.charge(gasLow); err != nil {
		return outOfGas()
	}
	x := f.stack.pop()
	y := f.stack.peek()
	y.SDiv(&x, y)
	return Continue()
}

func opMod(f *Frame) StepOutcome {
	if err := f.gas.charge(gasLow); err != nil {
		return outOfGas()
	}
	x := f.stack.pop()
	y := f.stack.peek()
	y.Mod(&x, y)
	return Continue()
}

func opSmod(f *Frame) StepOutcome {
	if err := f.gas.charge(gasLow); err != nil {
		return outOfGas()
	}
	x := f.stack.pop()
	y := f.stack.peek()
	y.SMod(&x, y)
	return Continue()
}

func opAddmod(f *Frame) StepOutcome {
	if err := f.gas.charge(gasMid); err != nil {
		return outOfGas()
	}
	x, y := f.stack.pop(), f.stack.pop()
	z := f.stack.peek()
	z.AddMod(&x, &y, z)
	return Continue()
}

func opMulmod(f *Frame) StepOutcome {
	if err := f.gas.charge(gasMid); err != nil {
		return outOfGas()
	}
	x, y := f.stack.pop(), f.stack.pop()
	z := f.stack.peek()
	z.MulMod(&x, &y, z)
	return Continue()
}

// expGas returns 10 gas plus expByte gas per byte of the exponent operand's
// big-endian length (up to and including its highest non-zero byte), per-fork via expByte (10 pre-EIP-160, 50 from SpuriousDragon on).
func expGas(exponent *uint256.Int, expByte vmcore.Gas) vmcore.Gas {
	bitlen := exponent.BitLen()
	if bitlen == 0 {
		return gasHigh
	}
	byteLen := (bitlen + 7) / 8
	return gasHigh + expByte*vmcore.Gas(byteLen)
}

func makeOpExp(expByte vmcore.Gas) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		base := f.stack.pop()
		exponent := f.stack.peek()
		if err := f.gas.charge(expGas(exponent, expByte)); err != nil {
			return outOfGas()
		}
		exponent.Exp(&base, exponent)
		return Continue()
	}
}

func opSignextend(f *Frame) StepOutcome {
	if err := f.gas.charge(gasLow); err != nil {
		return outOfGas()
	}
	back := f.stack.pop()
	num := f.stack.peek()
	num.ExtendSign(num, &back)
	return Continue()
}

func opLt(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x, y := f.stack.pop(), f.stack.peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return Continue()
}

func opGt(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x, y := f.stack.pop(), f.stack.peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return Continue()
}

func opSlt(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x, y := f.stack.pop(), f.stack.peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return Continue()
}

func opSgt(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x, y := f.stack.pop(), f.stack.peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return Continue()
}

func opEq(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x, y := f.stack.pop(), f.stack.peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return Continue()
}

func opIszero(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x := f.stack.peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return Continue()
}

func opAnd(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x, y := f.stack.pop(), f.stack.peek()
	y.And(&x, y)
	return Continue()
}

func opOr(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x, y := f.stack.pop(), f.stack.peek()
	y.Or(&x, y)
	return Continue()
}

func opXor(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x, y := f.stack.pop(), f.stack.peek()
	y.Xor(&x, y)
	return Continue()
}

func opNot(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	x := f.stack.peek()
	x.Not(x)
	return Continue()
}

func opByte(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	th := f.stack.pop()
	val := f.stack.peek()
	val.Byte(&th)
	return Continue()
}

func opShl(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	shift, value := f.stack.pop(), f.stack.peek()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return Continue()
}

func opShr(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	shift, value := f.stack.pop(), f.stack.peek()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return Continue()
}

func opSar(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	shift, value := f.stack.pop(), f.stack.peek()
	if shift.GtUint64(256) {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return Continue()
	}
	value.SRsh(value, uint(shift.Uint64()))
	return Continue()
}
