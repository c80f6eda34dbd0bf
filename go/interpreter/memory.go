package interpreter

import (
	"math"

	"github.com/holiman/uint256"

	"github.com/palladium-chain/corevm/go/vmcore"
)

// maxMemoryExpansionSize bounds the size memory is ever allowed to grow to,
// beyond which the expansion cost computation itself would overflow.
const maxMemoryExpansionSize = 0x1FFFFFFFE0

// memory is the byte-addressable, word-granular expandable buffer backing
// MLOAD/MSTORE/MSTORE8 and the memory-slice-consuming opcodes (SHA3,
// CALLDATACOPY, CODECOPY, RETURN, LOG*, and the CALL family). Its size is
// always a multiple of 32 bytes.
type memory struct {
	store       []byte
	currentCost vmcore.Gas
}

func newMemory() *memory {
	return &memory{}
}

func (m *memory) len() uint64 {
	return uint64(len(m.store))
}

// wordAlignedSize rounds size up to a multiple of 32, saturating at
// maxUint64 rather than overflowing.
func wordAlignedSize(size uint64) uint64 {
	words := vmcore.SizeInWords(size)
	aligned := words * 32
	if size != 0 && aligned < size {
		return math.MaxUint64
	}
	return aligned
}

// expansionCost returns the additional gas needed to grow memory to cover
// size bytes, given the current size and the cost already paid for it. It
// implements C(x) = 3*(x/32) + (x/32)^2/512, charged incrementally.
func (m *memory) expansionCost(size uint64) vmcore.Gas {
	if m.len() >= size {
		return 0
	}
	size = wordAlignedSize(size)
	if size > maxMemoryExpansionSize {
		return vmcore.Gas(math.MaxInt64)
	}
	words := vmcore.SizeInWords(size)
	total := vmcore.Gas((words*words)/512 + 3*words)
	return total - m.currentCost
}

// grow charges gas for and performs any expansion needed to cover
// [offset, offset+size). A zero-length access never grows memory or
// charges gas, matching the spec's explicit exemption.
func (m *memory) grow(offset, size uint64, meter *gasMeter) error {
	if size == 0 {
		return nil
	}
	needed := offset + size
	if needed < offset {
		return errGasUintOverflow
	}
	if m.len() >= needed {
		return nil
	}
	fee := m.expansionCost(needed)
	if err := meter.charge(fee); err != nil {
		return err
	}
	aligned := wordAlignedSize(needed)
	m.currentCost += m.expansionCost(needed)
	m.store = append(m.store, make([]byte, aligned-m.len())...)
	return nil
}

// setByte writes a single byte, growing memory first.
func (m *memory) setByte(offset uint64, value byte, meter *gasMeter) error {
	if err := m.grow(offset, 1, meter); err != nil {
		return err
	}
	m.store[offset] = value
	return nil
}

// setWord writes a 32-byte word at offset, growing memory first.
func (m *memory) setWord(offset uint64, value *uint256.Int, meter *gasMeter) error {
	if err := m.grow(offset, 32, meter); err != nil {
		return err
	}
	value.WriteToSlice(m.store[offset : offset+32])
	return nil
}

// set copies value into memory at [offset, offset+len(value)), which must
// already have been grown to cover that range.
func (m *memory) set(offset uint64, value []byte) {
	if len(value) > 0 {
		copy(m.store[offset:offset+uint64(len(value))], value)
	}
}

// setWithGrowth grows memory to cover size bytes at offset, then writes
// value into the first len(value) bytes of that range (matching CODECOPY's
// contract, where value may be shorter than size and the remainder stays
// zeroed from expansion).
func (m *memory) setWithGrowth(offset, size uint64, value []byte, meter *gasMeter) error {
	if err := m.grow(offset, size, meter); err != nil {
		return err
	}
	m.set(offset, value)
	return nil
}

// slice returns a size-byte slice of memory at offset, growing (and
// charging for) memory first. The returned slice aliases the memory's
// backing array and is invalidated by any subsequent growth.
func (m *memory) slice(offset, size uint64, meter *gasMeter) ([]byte, error) {
	if err := m.grow(offset, size, meter); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	return m.store[offset : offset+size], nil
}

// readWord reads a 32-byte word at offset into target, growing memory
// first.
func (m *memory) readWord(offset uint64, target *uint256.Int, meter *gasMeter) error {
	data, err := m.slice(offset, 32, meter)
	if err != nil {
		return err
	}
	target.SetBytes32(data)
	return nil
}

// copyOut copies min(len(target), memory available) bytes starting at
// offset into target, zero-padding the remainder. It does not grow memory
// and charges no gas: used by RETURNDATACOPY-like reads of already-sized
// buffers is handled elsewhere; this helper serves reads that must not
// trigger growth (e.g. copying data recorded from a completed child call).
func copyOut(src []byte, offset uint64, target []byte) {
	if uint64(len(src)) <= offset {
		clearBytes(target)
		return
	}
	n := copy(target, src[offset:])
	if n < len(target) {
		clearBytes(target[n:])
	}
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
