// Package interpreter implements the EVM fetch-decode-execute loop: the
// Stack, Memory, GasMeter, and fork-indexed OpcodeTable described by the
// core specification, wired together by Run.
package interpreter

import (
	"github.com/palladium-chain/corevm/go/opcode"
	"github.com/palladium-chain/corevm/go/vmcore"
)

// MaxCallDepth is the deepest a chain of nested CALL/CREATE frames may
// reach; a message arriving at this depth that attempts to go deeper
// receives a zero result rather than executing its child.
const MaxCallDepth = 1024

// Interp is the concrete, stateless Interpreter. It holds no per-run state
// of its own; every field needed to run one frame lives in that frame's
// Frame value, so a single Interp value may be shared and invoked
// concurrently across independent HostContext trees.
type Interp struct {
	// Listener, if set, is invoked after every instruction of every frame
	// run through this Interp. It is nil in the hot path built by
	// production callers, at which point the per-step listener check
	// compiles down to a single nil comparison per instruction rather than
	// a virtual dispatch.
	Listener vmcore.StepListener
}

// New returns an Interp with no step listener attached.
func New() *Interp {
	return &Interp{}
}

// Run executes message's code as one frame: pre-analyzing jump
// destinations, initializing stack/memory/gas, and looping fetch-decode-
// execute until the frame halts. It never itself recurses for CALL/CREATE
// content beyond invoking Run again for the child frame; the caller's
// world-state relationship is entirely mediated through host, so no
// back-reference from host to interpreter is ever required.
func (in *Interp) Run(host vmcore.HostContext, revision vmcore.Revision, message vmcore.Message, code vmcore.Code) (vmcore.ExecutionResult, error) {
	if len(code) == 0 {
		return vmcore.ExecutionResult{Status: vmcore.Success, GasLeft: message.Gas}, nil
	}

	table, err := TableFor(revision)
	if err != nil {
		return vmcore.ExecutionResult{}, err
	}

	frame := &Frame{
		host:     host,
		revision: revision,
		message:  message,
		code:     code,
		jumps:    analyzeJumpDests(code),
		table:    table,
		gas:      newGasMeter(message.Gas),
		stack:    acquireStack(),
		memory:   newMemory(),
		listener: in.Listener,
		runner:   in,
	}
	defer releaseStack(frame.stack)

	status, output := runLoop(frame)

	switch status {
	case vmcore.Success:
		return vmcore.ExecutionResult{
			Status:    vmcore.Success,
			GasLeft:   frame.gas.remaining,
			GasRefund: frame.gas.refund,
			Output:    output,
		}, nil
	case vmcore.Revert:
		return vmcore.ExecutionResult{
			Status:  vmcore.Revert,
			GasLeft: frame.gas.remaining,
			Output:  output,
		}, nil
	case vmcore.Halted:
		return vmcore.ExecutionResult{
			Status:  vmcore.Halted,
			GasLeft: frame.gas.remaining,
		}, nil
	default:
		// every other status consumes all remaining gas and yields no output.
		return vmcore.ExecutionResult{Status: status}, nil
	}
}

// runLoop is the fetch-decode-execute loop described in the core design:
// fetch a byte, validate it, meter it, execute it, apply its StepOutcome,
// repeat until a Halt (explicit or by running off the end of code, which
// is equivalent to STOP).
func runLoop(f *Frame) (vmcore.StatusCode, []byte) {
	for {
		if f.pc >= int64(len(f.code)) {
			return vmcore.Success, nil
		}

		op := opcode.Code(f.code[f.pc])
		handler := f.table[op]

		if err := checkStack(f.stack.size(), handler.MinStack, op); err != nil {
			return statusForStackError(err), nil
		}

		if handler.StateModifying && f.isStatic() {
			return vmcore.StaticModeViolation, nil
		}

		outcome := handler.Execute(f)

		if f.listener != nil {
			if f.listener.OnStep(int(f.pc), byte(op), f.gas.remaining, f.stack.size()) {
				return vmcore.Halted, nil
			}
		}

		switch outcome.kind {
		case stepContinue:
			f.pc += int64(op.Width())
		case stepJump:
			f.pc = outcome.target
		case stepHalt:
			return outcome.status, outcome.output
		}
	}
}

// checkStack validates an opcode's minimum stack depth requirement and the
// hard 1024-word ceiling every push implicitly respects (a handler that
// pushes is only reachable once room for its push has been confirmed by
// its own MinStack accounting relative to maxStackDepth).
func checkStack(size, minRequired int, op opcode.Code) error {
	if size < minRequired {
		return errStackUnderflow
	}
	if size >= maxStackDepth && pushesOne(op) {
		return errStackOverflow
	}
	return nil
}

// pushesOne reports whether op unconditionally pushes exactly one word
// without a matching pop, the case the fixed 1024-word ceiling must guard
// against. All other opcodes either pop at least as much as they push, or
// are excluded by MinStack already requiring room.
func pushesOne(op opcode.Code) bool {
	switch {
	case op.IsPush():
		return true
	case op >= opcode.DUP1 && op <= opcode.DUP16:
		return true
	}
	switch op {
	case opcode.ADDRESS, opcode.ORIGIN, opcode.CALLER, opcode.CALLVALUE,
		opcode.CALLDATASIZE, opcode.CODESIZE, opcode.GASPRICE,
		opcode.RETURNDATASIZE,
		opcode.COINBASE, opcode.TIMESTAMP, opcode.NUMBER,
		opcode.DIFFICULTY, opcode.GASLIMIT, opcode.CHAINID, opcode.SELFBALANCE,
		opcode.MSIZE, opcode.GAS, opcode.PC:
		return true
	}
	return false
}

func statusForStackError(err error) vmcore.StatusCode {
	if err == errStackUnderflow {
		return vmcore.StackUnderflow
	}
	return vmcore.StackOverflow
}
