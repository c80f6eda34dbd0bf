package vmtest

import (
	"fmt"

	"github.com/palladium-chain/corevm/go/hoststate"
	"github.com/palladium-chain/corevm/go/vmcore"
)

// Interpreter is the single method the runner drives; satisfied by
// *interpreter.Interp without this package importing it directly.
type Interpreter interface {
	Run(host vmcore.HostContext, revision vmcore.Revision, message vmcore.Message, code vmcore.Code) (vmcore.ExecutionResult, error)
}

// Result is one fixture's outcome: the raw ExecutionResult plus every
// mismatch found against the fixture's expectations. Passed is Diffs == 0.
type Result struct {
	Status  vmcore.ExecutionResult
	Diffs   []string
}

// Passed reports whether the fixture ran with no expectation mismatches.
func (r Result) Passed() bool {
	return len(r.Diffs) == 0
}

// Run replays one fixture: builds a MemoryWorldState from Pre, runs a
// single Interpreter frame at Fork with a message and code taken directly
// from Exec (matching the "single-call path" the VM test format expects,
// as opposed to the Processor's full transaction path), and compares the
// result's gas-left, output, and post-state against whatever expectations
// the fixture carries.
func Run(interp Interpreter, fixture Fixture) (Result, error) {
	world := hoststate.NewMemoryWorldState()
	for addr, acct := range fixture.Pre {
		world.SetBalance(addr, acct.Balance)
		world.SetNonce(addr, acct.Nonce)
		world.SetCode(addr, acct.Code)
		for key, val := range acct.Storage {
			world.SetStorage(addr, key, val)
		}
	}

	tx := vmcore.TxContext{
		Origin:      fixture.Exec.Origin,
		GasPrice:    fixture.Exec.GasPrice,
		Coinbase:    fixture.Env.Coinbase,
		BlockNumber: fixture.Env.Number,
		Timestamp:   fixture.Env.Timestamp,
		GasLimit:    fixture.Env.GasLimit,
		Difficulty:  fixture.Env.Difficulty,
	}
	overlay := hoststate.NewOverlay(world, tx, nil)

	message := vmcore.Message{
		Kind:      vmcore.Call,
		Depth:     0,
		Gas:       fixture.Exec.Gas,
		Sender:    fixture.Exec.Caller,
		Recipient: fixture.Exec.Address,
		CodeAddr:  fixture.Exec.Address,
		Value:     fixture.Exec.Value,
		Input:     fixture.Exec.Data,
	}

	result, err := interp.Run(overlay, fixture.Fork, message, fixture.Exec.Code)
	if err != nil {
		return Result{}, fmt.Errorf("vmtest: run fixture: %w", err)
	}
	if result.Status.IsSuccess() {
		overlay.Commit()
	}

	out := Result{Status: result}

	if !fixture.HasPost && fixture.Gas == nil {
		if result.Status.IsSuccess() {
			out.Diffs = append(out.Diffs, "expected failure, got success")
		}
		return out, nil
	}

	if fixture.Gas != nil && result.GasLeft != *fixture.Gas {
		out.Diffs = append(out.Diffs, fmt.Sprintf("gas left: want %d, got %d", *fixture.Gas, result.GasLeft))
	}
	if fixture.Out != nil && !bytesEqual(fixture.Out, result.Output) {
		out.Diffs = append(out.Diffs, fmt.Sprintf("output: want %x, got %x", fixture.Out, result.Output))
	}
	if fixture.HasPost {
		out.Diffs = append(out.Diffs, comparePostState(world, fixture.Post)...)
	}

	return out, nil
}

func comparePostState(world *hoststate.MemoryWorldState, want map[vmcore.Address]Account) []string {
	var diffs []string
	for addr, expect := range want {
		if got := world.GetBalance(addr); got != expect.Balance {
			diffs = append(diffs, fmt.Sprintf("account %s balance: want %x, got %x", addr, expect.Balance, got))
		}
		if got := world.GetNonce(addr); got != expect.Nonce {
			diffs = append(diffs, fmt.Sprintf("account %s nonce: want %d, got %d", addr, expect.Nonce, got))
		}
		if got := world.GetCode(addr); !bytesEqual(expect.Code, got) {
			diffs = append(diffs, fmt.Sprintf("account %s code: want %x, got %x", addr, expect.Code, got))
		}
		for key, expectVal := range expect.Storage {
			if got := world.GetStorage(addr, key); got != expectVal {
				diffs = append(diffs, fmt.Sprintf("account %s storage %x: want %s, got %s", addr, key, expectVal, got))
			}
		}
	}
	return diffs
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
