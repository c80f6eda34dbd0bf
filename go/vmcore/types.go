// Package vmcore defines the value types, world-state contract, and result
// vocabulary shared by the opcode table, the interpreter, and everything
// that drives it. It has no dependency on the interpreter itself so that
// alternative front ends (a transaction processor, a reference-test runner,
// a fuzzer) can depend on it without pulling in execution machinery.
package vmcore

import (
	"encoding/hex"
	"fmt"

	"github.com/holiman/uint256"
)

// Address is a 20-byte account identifier.
type Address [20]byte

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Hash is a 32-byte, general purpose digest or root value.
type Hash [32]byte

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// Key identifies a storage slot within an account's storage space.
type Key [32]byte

// Word is a 32-byte, big-endian encoded unsigned integer, the value type
// pushed and popped from the Stack and read from and written to Memory and
// storage.
type Word [32]byte

func (w Word) String() string {
	return "0x" + hex.EncodeToString(w[:])
}

// IsZero reports whether every byte of the word is zero.
func (w Word) IsZero() bool {
	return w == Word{}
}

// Value is a Wei amount, represented with the same width as a Word.
type Value [32]byte

func (v Value) String() string {
	return "0x" + hex.EncodeToString(v[:])
}

// Code is a contract's immutable bytecode.
type Code []byte

// Add returns a+b using wrapping 256-bit unsigned arithmetic, matching the
// semantics of the EVM's balance and value arithmetic.
func Add(a, b Value) Value {
	x, y := new(uint256.Int).SetBytes32(a[:]), new(uint256.Int).SetBytes32(b[:])
	var res Value
	x.Add(x, y).WriteToSlice(res[:])
	return res
}

// Sub returns a-b using wrapping 256-bit unsigned arithmetic.
func Sub(a, b Value) Value {
	x, y := new(uint256.Int).SetBytes32(a[:]), new(uint256.Int).SetBytes32(b[:])
	var res Value
	x.Sub(x, y).WriteToSlice(res[:])
	return res
}

// Cmp compares two Values as big-endian unsigned integers, returning -1, 0
// or 1.
func Cmp(a, b Value) int {
	x, y := new(uint256.Int).SetBytes32(a[:]), new(uint256.Int).SetBytes32(b[:])
	return x.Cmp(y)
}

// CallKind identifies which EVM instruction created a call frame.
type CallKind int

const (
	Call CallKind = iota
	CallCode
	DelegateCall
	StaticCall
	Create
	Create2
)

func (k CallKind) String() string {
	switch k {
	case Call:
		return "call"
	case CallCode:
		return "callcode"
	case DelegateCall:
		return "delegatecall"
	case StaticCall:
		return "staticcall"
	case Create:
		return "create"
	case Create2:
		return "create2"
	default:
		return fmt.Sprintf("CallKind(%d)", int(k))
	}
}

// IsCreate reports whether the call kind constructs a new contract account.
func (k CallKind) IsCreate() bool {
	return k == Create || k == Create2
}

// Log is a single event emitted by LOG0-LOG4, recorded in the frame's
// overlay and only made durable once that overlay is committed.
type Log struct {
	Address Address
	Topics  []Word
	Data    []byte
}
