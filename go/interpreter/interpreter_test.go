package interpreter

import (
	"bytes"
	"testing"

	"github.com/palladium-chain/corevm/go/hoststate"
	"github.com/palladium-chain/corevm/go/opcode"
	"github.com/palladium-chain/corevm/go/vmcore"
)

func newTestHost() *hoststate.Overlay {
	world := hoststate.NewMemoryWorldState()
	return hoststate.NewOverlay(world, vmcore.TxContext{}, nil)
}

func runCode(t *testing.T, revision vmcore.Revision, code []byte, gas vmcore.Gas) vmcore.ExecutionResult {
	t.Helper()
	in := New()
	host := newTestHost()
	message := vmcore.Message{Gas: gas, Recipient: vmcore.Address{1}, Sender: vmcore.Address{2}}
	result, err := in.Run(host, revision, message, code)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	return result
}

func TestInterpreter_SimpleAdd(t *testing.T) {
	code := []byte{
		byte(opcode.PUSH1), 0x02,
		byte(opcode.PUSH1), 0x03,
		byte(opcode.ADD),
		byte(opcode.PUSH1), 0x00,
		byte(opcode.MSTORE),
		byte(opcode.PUSH1), 0x20,
		byte(opcode.PUSH1), 0x00,
		byte(opcode.RETURN),
	}
	result := runCode(t, vmcore.Istanbul, code, 100000)
	if result.Status != vmcore.Success {
		t.Fatalf("want SUCCESS, got %v", result.Status)
	}
	want := make([]byte, 32)
	want[31] = 5
	if !bytes.Equal(result.Output, want) {
		t.Errorf("want output %x, got %x", want, result.Output)
	}
}

func TestInterpreter_OutOfGasOnPush(t *testing.T) {
	code := []byte{byte(opcode.PUSH1), 0x01}
	result := runCode(t, vmcore.Istanbul, code, 2)
	if result.Status != vmcore.OutOfGas {
		t.Fatalf("want OUT_OF_GAS, got %v", result.Status)
	}
}

func TestInterpreter_StackUnderflowOnPop(t *testing.T) {
	code := []byte{byte(opcode.POP)}
	result := runCode(t, vmcore.Istanbul, code, 100000)
	if result.Status != vmcore.StackUnderflow {
		t.Fatalf("want STACK_UNDERFLOW, got %v", result.Status)
	}
}

func TestInterpreter_UndefinedInstruction(t *testing.T) {
	code := []byte{0x0C} // unassigned in every revision
	result := runCode(t, vmcore.Istanbul, code, 100000)
	if result.Status != vmcore.UndefinedInstruction {
		t.Fatalf("want UNDEFINED_INSTRUCTION, got %v", result.Status)
	}
}

func TestInterpreter_JumpIntoPushDataIsRejected(t *testing.T) {
	code := []byte{
		byte(opcode.PUSH1), 0x04, // jump target 4 is the next PUSH1's immediate byte
		byte(opcode.JUMP),
		byte(opcode.PUSH1), 0x5B, // a 0x5B byte inside push data is not a valid JUMPDEST
		byte(opcode.JUMPDEST),
	}
	result := runCode(t, vmcore.Istanbul, code, 100000)
	if result.Status != vmcore.BadJumpDestination {
		t.Fatalf("want BAD_JUMP_DESTINATION, got %v", result.Status)
	}
}

func TestInterpreter_MemoryExpansionChargesGas(t *testing.T) {
	code := []byte{
		byte(opcode.PUSH1), 0x01,
		byte(opcode.PUSH2), 0x10, 0x00, // offset 4096: forces multi-word expansion
		byte(opcode.MSTORE),
	}
	cheap := runCode(t, vmcore.Istanbul, code, 100000)
	if cheap.Status != vmcore.Success {
		t.Fatalf("want SUCCESS, got %v", cheap.Status)
	}
	expensive := runCode(t, vmcore.Istanbul, code, 200)
	if expensive.Status != vmcore.OutOfGas {
		t.Fatalf("want OUT_OF_GAS for the same code under a tight limit, got %v", expensive.Status)
	}
}

func TestInterpreter_RevertPreservesOutputAndRollsBackStorage(t *testing.T) {
	// SSTORE(0, 1); PUSH1 0x20 PUSH1 0 REVERT returning 32 bytes of memory.
	code := []byte{
		byte(opcode.PUSH1), 0x01,
		byte(opcode.PUSH1), 0x00,
		byte(opcode.SSTORE),
		byte(opcode.PUSH1), 0x20,
		byte(opcode.PUSH1), 0x00,
		byte(opcode.REVERT),
	}
	in := New()
	world := hoststate.NewMemoryWorldState()
	host := hoststate.NewOverlay(world, vmcore.TxContext{}, nil)
	addr := vmcore.Address{1}
	message := vmcore.Message{Gas: 100000, Recipient: addr, Sender: vmcore.Address{2}}
	result, err := in.Run(host, vmcore.Istanbul, message, code)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if result.Status != vmcore.Revert {
		t.Fatalf("want REVERT, got %v", result.Status)
	}
	if !bytes.Equal(result.Output, make([]byte, 32)) {
		t.Errorf("want 32 zero bytes of output, got %x", result.Output)
	}
	// The overlay buffered the SSTORE write; a reverted frame is never
	// Commit()ed by its caller, so the world state the overlay sits on
	// must still hold the slot's original zero value.
	if got := world.GetStorage(addr, vmcore.Key{}); got != (vmcore.Word{}) {
		t.Errorf("world state must be untouched by a reverted, uncommitted overlay")
	}
}

func TestInterpreter_EmptyCodeIsImmediateSuccess(t *testing.T) {
	result := runCode(t, vmcore.Istanbul, nil, 21000)
	if result.Status != vmcore.Success {
		t.Fatalf("want SUCCESS, got %v", result.Status)
	}
	if result.GasLeft != 21000 {
		t.Errorf("want all gas returned, got %d left", result.GasLeft)
	}
}

func TestInterpreter_UnsupportedRevisionIsAnError(t *testing.T) {
	in := New()
	host := newTestHost()
	_, err := in.Run(host, vmcore.Revision(999), vmcore.Message{Gas: 100}, []byte{byte(opcode.STOP)})
	if err == nil {
		t.Fatalf("want an error for an out-of-range revision")
	}
}
