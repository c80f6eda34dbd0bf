package interpreter

func opSha3(f *Frame) StepOutcome {
	offset := toUint64Saturating(mustPopPtr(f))
	size := toUint64Saturating(mustPopPtr(f))
	if err := f.gas.charge(sha3Cost(size)); err != nil {
		return outOfGas()
	}
	data, err := f.memory.slice(offset, size, f.gas)
	if err != nil {
		return outOfGas()
	}
	digest := keccak256(data)
	v := new(uint256Int).SetBytes32(digest[:])
	f.stack.push(v)
	return Continue()
}
