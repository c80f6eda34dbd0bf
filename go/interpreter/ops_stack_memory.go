package interpreter

import "github.com/palladium-chain/corevm/go/vmcore"

func opPop(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	f.stack.pop()
	return Continue()
}

func opMload(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	offsetWord := f.stack.peek()
	offset := toUint64Saturating(offsetWord)
	if err := f.memory.readWord(offset, offsetWord, f.gas); err != nil {
		return outOfGas()
	}
	return Continue()
}

func opMstore(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	offset := toUint64Saturating(mustPopPtr(f))
	value := mustPop(f)
	if err := f.memory.setWord(offset, &value, f.gas); err != nil {
		return outOfGas()
	}
	return Continue()
}

func opMstore8(f *Frame) StepOutcome {
	if err := f.gas.charge(gasVeryLow); err != nil {
		return outOfGas()
	}
	offset := toUint64Saturating(mustPopPtr(f))
	value := mustPop(f)
	if err := f.memory.setByte(offset, byte(value.Uint64()), f.gas); err != nil {
		return outOfGas()
	}
	return Continue()
}

// makeOpSload returns an SLOAD handler charging a fixed cost, used for every
// revision before EIP-2929 (Berlin) makes the cost depend on warm/cold
// access.
func makeOpSload(cost vmcore.Gas) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		if err := f.gas.charge(cost); err != nil {
			return outOfGas()
		}
		keyWord := f.stack.peek()
		key := keyFromUint256(keyWord)
		value := f.host.GetStorage(f.message.Recipient, key)
		keyWord.SetBytes32(value[:])
		return Continue()
	}
}

func opSloadEIP2929(f *Frame) StepOutcome {
	keyWord := f.stack.peek()
	key := keyFromUint256(keyWord)
	cost := warmStorageReadCost
	if wasCold := f.host.WarmUpStorage(f.message.Recipient, key); wasCold {
		cost = coldSloadCost
	}
	if err := f.gas.charge(cost); err != nil {
		return outOfGas()
	}
	value := f.host.GetStorage(f.message.Recipient, key)
	keyWord.SetBytes32(value[:])
	return Continue()
}

// opSstoreFrontier implements the flat pre-Constantinople SSTORE pricing:
// writing a non-zero value into a zero slot costs SSTORE_SET, clearing a
// non-zero slot to zero costs SSTORE_CLEAR and refunds
// SSTORE_REFUND_FRONTIER, and any other change costs SSTORE_RESET.
func opSstoreFrontier(f *Frame) StepOutcome {
	key := keyFromUint256(mustPopPtr(f))
	value := wordFromUint256(mustPopPtr(f))
	current := f.host.GetStorage(f.message.Recipient, key)
	var cost vmcore.Gas
	switch {
	case current.IsZero() && !value.IsZero():
		cost = sstoreSetGasFrontier
	case !current.IsZero() && value.IsZero():
		cost = sstoreClearGasFrontier
	default:
		cost = sstoreResetGasFrontier
	}
	if err := f.gas.charge(cost); err != nil {
		return outOfGas()
	}
	if !current.IsZero() && value.IsZero() {
		f.gas.addRefund(sstoreRefundGasFrontier)
	}
	f.host.SetStorage(f.message.Recipient, key, value)
	return Continue()
}

// sstoreNetGasCost prices and refunds one EIP-2200 SSTORE directly from the
// (original, current, new) triple, parameterized on the cost of a no-op
// access (SLOAD_GAS pre-Berlin, WARM_STORAGE_READ_COST from Berlin on) so
// the same function serves both.
//
// This mirrors the reference implementation's branching (not a single
// classification enum) because two of its adjustments are independent: a
// dirty slot that is both un-deleted (current zero, new non-zero, original
// non-zero) and simultaneously restored to its original value needs both
// the clears-schedule reversal AND the reset bonus applied to the same
// SSTORE. Collapsing the eight cases into one classify-then-lookup step
// loses that combination, since "un-deleted" and "restored to original"
// are not mutually exclusive.
func sstoreNetGasCost(original, current, value vmcore.Word, noopCost vmcore.Gas) (cost, refundDelta vmcore.Gas) {
	zero := vmcore.Word{}
	if current == value {
		return noopCost, 0
	}
	if original == current {
		if original == zero {
			return sstoreSetGas, 0
		}
		if value == zero {
			refundDelta += sstoreClearsScheduleRefund
		}
		return sstoreResetGas, refundDelta
	}
	if original != zero {
		if current == zero {
			refundDelta -= sstoreClearsScheduleRefund
		} else if value == zero {
			refundDelta += sstoreClearsScheduleRefund
		}
	}
	if original == value {
		if original == zero {
			refundDelta += sstoreSetGas - noopCost
		} else {
			refundDelta += sstoreResetGas - noopCost
		}
	}
	return noopCost, refundDelta
}

// opSstoreEIP2200 implements the Constantinople/Petersburg/Istanbul net-gas
// metered SSTORE: a reentrancy sentry blocks the call unless more than
// SSTORE_SENTRY_GAS remains, and cost/refund are computed by sstoreNetGasCost
// from the (original, current, new) triple rather than the value alone.
func opSstoreEIP2200(f *Frame) StepOutcome {
	if f.gas.remaining <= sstoreSentryGas {
		return outOfGas()
	}
	key := keyFromUint256(mustPopPtr(f))
	value := wordFromUint256(mustPopPtr(f))
	original := f.host.GetCommittedStorage(f.message.Recipient, key)
	current := f.host.GetStorage(f.message.Recipient, key)
	f.host.SetStorage(f.message.Recipient, key, value)
	cost, refundDelta := sstoreNetGasCost(original, current, value, sloadGasEIP2200)
	if err := f.gas.charge(cost); err != nil {
		return outOfGas()
	}
	applyRefundDelta(f.gas, refundDelta)
	return Continue()
}

// sstoreCostBerlin folds the EIP-2929 cold-storage surcharge into the
// EIP-2200 net-gas schedule, computed the same way as sstoreNetGasCost:
// directly from the (original, current, new) triple rather than a single
// classification enum, since the un-delete and restore-to-original refund
// adjustments are independent and can both apply to one SSTORE. A cold
// access pays an extra COLD_SLOAD_COST on top of (and, for the clean-slot
// dirty-update cases, in place of part of) the warm-case cost.
func sstoreCostBerlin(original, current, value vmcore.Word, wasCold bool) (cost, refundDelta vmcore.Gas) {
	var coldSurcharge vmcore.Gas
	if wasCold {
		coldSurcharge = coldSloadCost
	}

	zero := vmcore.Word{}
	if current == value {
		return coldSurcharge + warmStorageReadCost, 0
	}
	if original == current {
		if original == zero {
			return coldSurcharge + sstoreSetGas, 0
		}
		if value == zero {
			refundDelta += sstoreClearsScheduleRefund
		}
		return coldSurcharge + (sstoreResetGas - coldSloadCost), refundDelta
	}
	if original != zero {
		if current == zero {
			refundDelta -= sstoreClearsScheduleRefund
		} else if value == zero {
			refundDelta += sstoreClearsScheduleRefund
		}
	}
	if original == value {
		if original == zero {
			refundDelta += sstoreSetGas - warmStorageReadCost
		} else {
			refundDelta += sstoreResetGas - coldSloadCost - warmStorageReadCost
		}
	}
	return coldSurcharge + warmStorageReadCost, refundDelta
}

func opSstoreEIP2929(f *Frame) StepOutcome {
	if f.gas.remaining <= sstoreSentryGas {
		return outOfGas()
	}
	key := keyFromUint256(mustPopPtr(f))
	value := wordFromUint256(mustPopPtr(f))
	wasCold := f.host.WarmUpStorage(f.message.Recipient, key)
	original := f.host.GetCommittedStorage(f.message.Recipient, key)
	current := f.host.GetStorage(f.message.Recipient, key)
	f.host.SetStorage(f.message.Recipient, key, value)
	cost, refundDelta := sstoreCostBerlin(original, current, value, wasCold)
	if err := f.gas.charge(cost); err != nil {
		return outOfGas()
	}
	applyRefundDelta(f.gas, refundDelta)
	return Continue()
}

func applyRefundDelta(g *gasMeter, delta vmcore.Gas) {
	if delta >= 0 {
		g.addRefund(delta)
	} else {
		g.subRefund(-delta)
	}
}

func opPc(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := new(uint256Int).SetUint64(uint64(f.pc))
	f.stack.push(v)
	return Continue()
}

func opMsize(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := new(uint256Int).SetUint64(f.memory.len())
	f.stack.push(v)
	return Continue()
}

func opGas(f *Frame) StepOutcome {
	if err := f.gas.charge(gasBase); err != nil {
		return outOfGas()
	}
	v := new(uint256Int).SetUint64(uint64(f.gas.remaining))
	f.stack.push(v)
	return Continue()
}

func opJumpdest(f *Frame) StepOutcome {
	if err := f.gas.charge(gasJumpdest); err != nil {
		return outOfGas()
	}
	return Continue()
}

// makePush returns a PUSHn handler reading n immediate bytes following the
// opcode, zero-padded if code ends early.
func makePush(n int) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		if err := f.gas.charge(gasVeryLow); err != nil {
			return outOfGas()
		}
		var buf [32]byte
		start := f.pc + 1
		end := start + int64(n)
		if end > int64(len(f.code)) {
			end = int64(len(f.code))
		}
		if start < int64(len(f.code)) {
			copy(buf[32-n:], f.code[start:end])
		}
		v := new(uint256Int).SetBytes32(buf[:])
		f.stack.push(v)
		return Continue()
	}
}

func makeDup(n int) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		if err := f.gas.charge(gasVeryLow); err != nil {
			return outOfGas()
		}
		f.stack.dup(n)
		return Continue()
	}
}

func makeSwap(n int) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		if err := f.gas.charge(gasVeryLow); err != nil {
			return outOfGas()
		}
		f.stack.swap(n)
		return Continue()
	}
}
