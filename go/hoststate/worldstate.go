// Package hoststate implements the vmcore.HostContext contract: an
// in-memory authoritative WorldState plus a transactional Overlay that
// buffers every mutation a running frame makes and only exposes it to the
// account/storage layer beneath it once explicitly committed.
package hoststate

import (
	"golang.org/x/crypto/sha3"

	"github.com/palladium-chain/corevm/go/vmcore"
)

// MemoryWorldState is a minimal in-memory implementation of
// vmcore.WorldState: a durable account/storage store with no on-disk
// backing and no Merkle-Patricia trie, matching the interpreter core's
// explicit non-goal of persistent storage.
type MemoryWorldState struct {
	balances map[vmcore.Address]vmcore.Value
	nonces   map[vmcore.Address]uint64
	codes    map[vmcore.Address]vmcore.Code
	storage  map[vmcore.Address]map[vmcore.Key]vmcore.Word
}

// NewMemoryWorldState returns an empty world state; every account starts
// non-existent, with zero balance, zero nonce, no code, and zero-valued
// storage.
func NewMemoryWorldState() *MemoryWorldState {
	return &MemoryWorldState{
		balances: make(map[vmcore.Address]vmcore.Value),
		nonces:   make(map[vmcore.Address]uint64),
		codes:    make(map[vmcore.Address]vmcore.Code),
		storage:  make(map[vmcore.Address]map[vmcore.Key]vmcore.Word),
	}
}

func (w *MemoryWorldState) AccountExists(addr vmcore.Address) bool {
	if _, ok := w.balances[addr]; ok {
		return true
	}
	if _, ok := w.nonces[addr]; ok {
		return true
	}
	_, ok := w.codes[addr]
	return ok
}

func (w *MemoryWorldState) GetBalance(addr vmcore.Address) vmcore.Value {
	return w.balances[addr]
}

func (w *MemoryWorldState) SetBalance(addr vmcore.Address, v vmcore.Value) {
	w.balances[addr] = v
}

func (w *MemoryWorldState) GetNonce(addr vmcore.Address) uint64 {
	return w.nonces[addr]
}

func (w *MemoryWorldState) SetNonce(addr vmcore.Address, n uint64) {
	w.nonces[addr] = n
}

func (w *MemoryWorldState) GetCode(addr vmcore.Address) vmcore.Code {
	return w.codes[addr]
}

func (w *MemoryWorldState) SetCode(addr vmcore.Address, code vmcore.Code) {
	if len(code) == 0 {
		delete(w.codes, addr)
		return
	}
	w.codes[addr] = code
}

func (w *MemoryWorldState) GetCodeHash(addr vmcore.Address) vmcore.Hash {
	code := w.codes[addr]
	if len(code) == 0 {
		return vmcore.Hash{}
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(code)
	var out vmcore.Hash
	h.Sum(out[:0])
	return out
}

func (w *MemoryWorldState) GetStorage(addr vmcore.Address, key vmcore.Key) vmcore.Word {
	return w.storage[addr][key]
}

func (w *MemoryWorldState) SetStorage(addr vmcore.Address, key vmcore.Key, value vmcore.Word) {
	slots, ok := w.storage[addr]
	if !ok {
		if value.IsZero() {
			return
		}
		slots = make(map[vmcore.Key]vmcore.Word)
		w.storage[addr] = slots
	}
	if value.IsZero() {
		delete(slots, key)
		return
	}
	slots[key] = value
}

// GetCommittedStorage is identical to GetStorage here: this world state has
// no separate per-transaction journal, so its notion of "committed" is
// simply whatever an Overlay last flushed into it via Commit.
func (w *MemoryWorldState) GetCommittedStorage(addr vmcore.Address, key vmcore.Key) vmcore.Word {
	return w.storage[addr][key]
}
