package interpreter

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/palladium-chain/corevm/go/vmcore"
)

// toCommonAddress adapts our Address to go-ethereum's, the boundary this
// package crosses to treat CREATE/CREATE2 address derivation as the opaque,
// externally-defined function it is.
func toCommonAddress(addr vmcore.Address) common.Address {
	return common.Address(addr)
}

func outOfGas() StepOutcome {
	return Halt(vmcore.OutOfGas, nil)
}

func addressFromUint256(v *uint256.Int) vmcore.Address {
	var addr vmcore.Address
	b := v.Bytes20()
	copy(addr[:], b[:])
	return addr
}

func uint256FromAddress(addr vmcore.Address) uint256.Int {
	var v uint256.Int
	var padded [32]byte
	copy(padded[12:], addr[:])
	v.SetBytes32(padded[:])
	return v
}

func uint256FromValue(val vmcore.Value) uint256.Int {
	var v uint256.Int
	v.SetBytes32(val[:])
	return v
}

func valueFromUint256(v *uint256.Int) vmcore.Value {
	var out vmcore.Value
	v.WriteToSlice(out[:])
	return out
}

func wordFromUint256(v *uint256.Int) vmcore.Word {
	var w vmcore.Word
	v.WriteToSlice(w[:])
	return w
}

func uint256FromWord(w vmcore.Word) uint256.Int {
	var v uint256.Int
	v.SetBytes32(w[:])
	return v
}

func keyFromUint256(v *uint256.Int) vmcore.Key {
	var k vmcore.Key
	v.WriteToSlice(k[:])
	return k
}

// toUint64Saturating converts a uint256 word to a uint64, saturating rather than
// wrapping when the value exceeds a valid gas quantity: a stack argument
// this large can never be affordable and is reported as out-of-gas the
// moment it is charged.
func toUint64Saturating(v *uint256.Int) uint64 {
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}
