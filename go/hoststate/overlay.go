package hoststate

import (
	"golang.org/x/exp/maps"

	"github.com/palladium-chain/corevm/go/vmcore"
)

// Overlay is the transactional, read-through/write-buffered HostContext
// every Interpreter frame in one transaction shares. It sits directly on
// top of a WorldState: every read falls through to the world state when the
// overlay itself has no dirty entry, and every write lands only in the
// overlay until Commit copies it down.
//
// Nested CALL/CREATE atomicity is realized as a stack of full map clones:
// Snapshot pushes a clone of every mutable map, RevertToSnapshot pops back
// to (and restores) a prior clone, and Commit simply drops the whole stack,
// accepting the overlay's current contents as final and flushing them into
// the WorldState.
type Overlay struct {
	world vmcore.WorldState

	balances       map[vmcore.Address]vmcore.Value
	nonces         map[vmcore.Address]uint64
	codes          map[vmcore.Address]vmcore.Code
	storage        map[vmcore.Address]map[vmcore.Key]vmcore.Word
	selfDestructed map[vmcore.Address]vmcore.Address
	warmAddresses  map[vmcore.Address]struct{}
	warmStorage    map[vmcore.Address]map[vmcore.Key]struct{}
	logs           []vmcore.Log

	tx          vmcore.TxContext
	blockHashes map[int64]vmcore.Hash

	snapshots []overlaySnapshot
}

type overlaySnapshot struct {
	balances       map[vmcore.Address]vmcore.Value
	nonces         map[vmcore.Address]uint64
	codes          map[vmcore.Address]vmcore.Code
	storage        map[vmcore.Address]map[vmcore.Key]vmcore.Word
	selfDestructed map[vmcore.Address]vmcore.Address
	warmAddresses  map[vmcore.Address]struct{}
	warmStorage    map[vmcore.Address]map[vmcore.Key]struct{}
	logCount       int
}

// NewOverlay opens a fresh transactional overlay over world, scoped to the
// given transaction context. blockHashes supplies the answers to BLOCKHASH,
// keyed by block number; a lookup miss returns the zero hash, matching a
// block outside the 256-block window a real chain would expose.
func NewOverlay(world vmcore.WorldState, tx vmcore.TxContext, blockHashes map[int64]vmcore.Hash) *Overlay {
	return &Overlay{
		world:          world,
		balances:       make(map[vmcore.Address]vmcore.Value),
		nonces:         make(map[vmcore.Address]uint64),
		codes:          make(map[vmcore.Address]vmcore.Code),
		storage:        make(map[vmcore.Address]map[vmcore.Key]vmcore.Word),
		selfDestructed: make(map[vmcore.Address]vmcore.Address),
		warmAddresses:  make(map[vmcore.Address]struct{}),
		warmStorage:    make(map[vmcore.Address]map[vmcore.Key]struct{}),
		tx:             tx,
		blockHashes:    blockHashes,
	}
}

func cloneNestedMap[K1, K2 comparable, V any](src map[K1]map[K2]V) map[K1]map[K2]V {
	dst := make(map[K1]map[K2]V, len(src))
	for k, inner := range src {
		dst[k] = maps.Clone(inner)
	}
	return dst
}

func (o *Overlay) AccountExists(addr vmcore.Address) bool {
	if _, ok := o.codes[addr]; ok {
		return true
	}
	if _, ok := o.balances[addr]; ok {
		return true
	}
	if _, ok := o.nonces[addr]; ok {
		return true
	}
	return o.world.AccountExists(addr)
}

func (o *Overlay) GetBalance(addr vmcore.Address) vmcore.Value {
	if v, ok := o.balances[addr]; ok {
		return v
	}
	return o.world.GetBalance(addr)
}

func (o *Overlay) SetBalance(addr vmcore.Address, v vmcore.Value) {
	o.balances[addr] = v
}

func (o *Overlay) AddBalance(addr vmcore.Address, v vmcore.Value) {
	o.balances[addr] = vmcore.Add(o.GetBalance(addr), v)
}

func (o *Overlay) GetNonce(addr vmcore.Address) uint64 {
	if n, ok := o.nonces[addr]; ok {
		return n
	}
	return o.world.GetNonce(addr)
}

func (o *Overlay) IncrementNonce(addr vmcore.Address) {
	o.nonces[addr] = o.GetNonce(addr) + 1
}

func (o *Overlay) GetCode(addr vmcore.Address) vmcore.Code {
	if c, ok := o.codes[addr]; ok {
		return c
	}
	return o.world.GetCode(addr)
}

func (o *Overlay) SetCode(addr vmcore.Address, code vmcore.Code) {
	o.codes[addr] = code
}

func (o *Overlay) GetCodeHash(addr vmcore.Address) vmcore.Hash {
	if _, ok := o.codes[addr]; !ok {
		return o.world.GetCodeHash(addr)
	}
	// The overlay only needs the hash of code it holds itself, which never
	// happens on the hot path (EXTCODEHASH of an address this same
	// transaction just deployed to); hash it through a throwaway
	// MemoryWorldState so the hash matches the world state's own rule.
	tmp := NewMemoryWorldState()
	tmp.SetCode(addr, o.codes[addr])
	return tmp.GetCodeHash(addr)
}

func (o *Overlay) GetStorage(addr vmcore.Address, key vmcore.Key) vmcore.Word {
	if slots, ok := o.storage[addr]; ok {
		if v, ok := slots[key]; ok {
			return v
		}
	}
	return o.world.GetStorage(addr, key)
}

func (o *Overlay) SetStorage(addr vmcore.Address, key vmcore.Key, value vmcore.Word) vmcore.StorageStatus {
	original := o.world.GetCommittedStorage(addr, key)
	current := o.GetStorage(addr, key)
	status := vmcore.GetStorageStatus(original, current, value)

	slots, ok := o.storage[addr]
	if !ok {
		slots = make(map[vmcore.Key]vmcore.Word)
		o.storage[addr] = slots
	}
	slots[key] = value
	return status
}

func (o *Overlay) GetCommittedStorage(addr vmcore.Address, key vmcore.Key) vmcore.Word {
	return o.world.GetCommittedStorage(addr, key)
}

func (o *Overlay) Selfdestruct(addr, beneficiary vmcore.Address) bool {
	_, already := o.selfDestructed[addr]
	o.selfDestructed[addr] = beneficiary
	return !already
}

func (o *Overlay) HasSelfDestructed(addr vmcore.Address) bool {
	_, ok := o.selfDestructed[addr]
	return ok
}

func (o *Overlay) WarmUpAccount(addr vmcore.Address) bool {
	if _, warm := o.warmAddresses[addr]; warm {
		return false
	}
	o.warmAddresses[addr] = struct{}{}
	return true
}

func (o *Overlay) WarmUpStorage(addr vmcore.Address, key vmcore.Key) bool {
	slots, ok := o.warmStorage[addr]
	if !ok {
		slots = make(map[vmcore.Key]struct{})
		o.warmStorage[addr] = slots
	}
	if _, warm := slots[key]; warm {
		return false
	}
	slots[key] = struct{}{}
	return true
}

func (o *Overlay) IsAddressWarm(addr vmcore.Address) bool {
	_, warm := o.warmAddresses[addr]
	return warm
}

func (o *Overlay) IsStorageWarm(addr vmcore.Address, key vmcore.Key) bool {
	slots, ok := o.warmStorage[addr]
	if !ok {
		return false
	}
	_, warm := slots[key]
	return warm
}

func (o *Overlay) GetTxContext() vmcore.TxContext {
	return o.tx
}

func (o *Overlay) GetBlockHash(number int64) vmcore.Hash {
	return o.blockHashes[number]
}

func (o *Overlay) EmitLog(addr vmcore.Address, topics []vmcore.Word, data []byte) {
	o.logs = append(o.logs, vmcore.Log{Address: addr, Topics: topics, Data: data})
}

// Logs returns every log emitted so far, in emission order. Logs from a
// reverted child call are removed by RevertToSnapshot along with everything
// else that call did.
func (o *Overlay) Logs() []vmcore.Log {
	return o.logs
}

func (o *Overlay) Snapshot() vmcore.SnapshotHandle {
	o.snapshots = append(o.snapshots, overlaySnapshot{
		balances:       maps.Clone(o.balances),
		nonces:         maps.Clone(o.nonces),
		codes:          maps.Clone(o.codes),
		storage:        cloneNestedMap(o.storage),
		selfDestructed: maps.Clone(o.selfDestructed),
		warmAddresses:  maps.Clone(o.warmAddresses),
		warmStorage:    cloneNestedMap(o.warmStorage),
		logCount:       len(o.logs),
	})
	return vmcore.SnapshotHandle(len(o.snapshots) - 1)
}

func (o *Overlay) RevertToSnapshot(handle vmcore.SnapshotHandle) {
	idx := int(handle)
	if idx < 0 || idx >= len(o.snapshots) {
		return
	}
	snap := o.snapshots[idx]
	o.balances = snap.balances
	o.nonces = snap.nonces
	o.codes = snap.codes
	o.storage = snap.storage
	o.selfDestructed = snap.selfDestructed
	o.warmAddresses = snap.warmAddresses
	o.warmStorage = snap.warmStorage
	o.logs = o.logs[:snap.logCount]
	o.snapshots = o.snapshots[:idx]
}

// Commit drops every open snapshot (accepting the overlay's current
// contents as final) and flushes every buffered write down into the
// underlying WorldState. It is called once, by the Processor or the VM test
// runner, after the top-level frame has completed successfully.
func (o *Overlay) Commit() {
	o.snapshots = o.snapshots[:0]

	for addr, v := range o.balances {
		o.world.SetBalance(addr, v)
	}
	for addr, n := range o.nonces {
		o.world.SetNonce(addr, n)
	}
	for addr, code := range o.codes {
		o.world.SetCode(addr, code)
	}
	for addr, slots := range o.storage {
		for key, value := range slots {
			o.world.SetStorage(addr, key, value)
		}
	}
	for addr := range o.selfDestructed {
		o.world.SetBalance(addr, vmcore.Value{})
		o.world.SetCode(addr, nil)
	}
}
