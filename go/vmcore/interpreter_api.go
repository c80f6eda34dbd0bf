package vmcore

// Message describes one call or contract-creation frame: the inputs an
// Interpreter needs to run a single piece of code, independent of how that
// frame was reached (top-level transaction, or a nested CALL/CREATE).
type Message struct {
	Kind      CallKind
	Depth     int
	Static    bool
	Gas       Gas
	Sender    Address
	Recipient Address
	CodeAddr  Address // account whose code is executing (differs from Recipient under DELEGATECALL/CALLCODE)
	Value     Value
	Input     []byte
	Salt      Word // only meaningful for CREATE2
}

// SnapshotHandle identifies a point a HostContext overlay can be reverted
// to. It is opaque to callers; only the HostContext implementation that
// issued it can interpret it.
type SnapshotHandle int

// HostContext is the read-through, write-buffered surface the Interpreter
// mediates all world-state access through. Every mutating method lands in
// the topmost overlay frame; snapshot/revertTo/commit make nested CALL and
// CREATE execution atomic. See the transactional overlay implementation in
// package hoststate for the concrete realization of this contract.
type HostContext interface {
	AccountExists(addr Address) bool

	GetBalance(addr Address) Value
	SetBalance(addr Address, v Value)
	AddBalance(addr Address, v Value)

	GetNonce(addr Address) uint64
	IncrementNonce(addr Address)

	GetCode(addr Address) Code
	GetCodeHash(addr Address) Hash
	SetCode(addr Address, code Code)

	GetStorage(addr Address, key Key) Word
	SetStorage(addr Address, key Key, value Word) StorageStatus
	GetCommittedStorage(addr Address, key Key) Word

	Selfdestruct(addr, beneficiary Address) bool
	HasSelfDestructed(addr Address) bool

	WarmUpAccount(addr Address) (wasCold bool)
	WarmUpStorage(addr Address, key Key) (wasCold bool)
	IsAddressWarm(addr Address) bool
	IsStorageWarm(addr Address, key Key) bool

	GetTxContext() TxContext
	GetBlockHash(number int64) Hash
	EmitLog(addr Address, topics []Word, data []byte)

	Snapshot() SnapshotHandle
	RevertToSnapshot(handle SnapshotHandle)
	Commit()
}

// StepListener is invoked by the Interpreter after every executed
// instruction when tracing is enabled. Returning Halt==true terminates the
// current frame immediately with StatusCode Halted. A nil StepListener
// must impose no overhead on the fetch-decode-execute loop.
type StepListener interface {
	OnStep(pc int, opcode byte, gasLeft Gas, stackSize int) (halt bool)
}

// Interpreter runs a single frame of EVM bytecode to completion.
type Interpreter interface {
	Run(host HostContext, revision Revision, message Message, code Code) (ExecutionResult, error)
}
