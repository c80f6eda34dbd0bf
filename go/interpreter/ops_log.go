package interpreter

import "github.com/palladium-chain/corevm/go/vmcore"

// makeOpLog returns a LOGn handler: pop the memory range and n topics, price
// the operation, and emit it through the host.
func makeOpLog(n int) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		offset := toUint64Saturating(mustPopPtr(f))
		size := toUint64Saturating(mustPopPtr(f))
		topics := make([]vmcore.Word, n)
		for i := 0; i < n; i++ {
			topics[i] = wordFromUint256(mustPopPtr(f))
		}
		if err := f.gas.charge(logCost(n, size)); err != nil {
			return outOfGas()
		}
		data, err := f.memory.slice(offset, size, f.gas)
		if err != nil {
			return outOfGas()
		}
		out := make([]byte, len(data))
		copy(out, data)
		f.host.EmitLog(f.message.Recipient, topics, out)
		return Continue()
	}
}
