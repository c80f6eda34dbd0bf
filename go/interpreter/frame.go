package interpreter

import (
	"github.com/palladium-chain/corevm/go/vmcore"
)

// Frame is the complete, exclusively-owned execution state of one
// Interpreter.Run call: its own Stack, Memory, GasMeter, program counter,
// and the read/write surface (HostContext) it mediates world-state access
// through. Frames are never shared between sibling or parent/child calls;
// a CALL/CREATE opcode handler constructs a wholly new Frame for its child
// and only observes the child's ExecutionResult.
type Frame struct {
	host     vmcore.HostContext
	revision vmcore.Revision
	message  vmcore.Message
	code     []byte
	jumps    jumpTargets
	table    *Table

	pc     int64
	gas    *gasMeter
	stack  *stack
	memory *memory

	// returnData holds the output of the most recently completed nested
	// call, exposed to RETURNDATASIZE/RETURNDATACOPY; it is cleared at the
	// start of every new call made from this frame.
	returnData []byte

	// createdAddress is set by a CREATE/CREATE2 handler once construction
	// succeeds, primarily for tests and tracing.
	createdAddress vmcore.Address

	listener vmcore.StepListener

	// runner lets a CALL/CREATE handler recurse into a child frame by value,
	// not by storing a reference from the host back to the interpreter: the
	// handler calls runner.Run(...) directly with the child's own Message.
	runner *Interp
}

func (f *Frame) isStatic() bool {
	return f.message.Static
}

func (f *Frame) depth() int {
	return f.message.Depth
}
