package processor

import (
	"testing"

	"github.com/palladium-chain/corevm/go/hoststate"
	"github.com/palladium-chain/corevm/go/opcode"
	"github.com/palladium-chain/corevm/go/vmcore"
)

func newTestHost() *hoststate.Overlay {
	return hoststate.NewOverlay(hoststate.NewMemoryWorldState(), vmcore.TxContext{}, nil)
}

// fakeInterp is a hand-rolled stand-in for *interpreter.Interp, letting
// each test fix the ExecutionResult the Processor reacts to without
// running real bytecode.
type fakeInterp struct {
	result vmcore.ExecutionResult
	err    error
}

func (f fakeInterp) Run(host vmcore.HostContext, revision vmcore.Revision, message vmcore.Message, code vmcore.Code) (vmcore.ExecutionResult, error) {
	return f.result, f.err
}

func TestIntrinsicGas_ChargesPerCalldataByte(t *testing.T) {
	zeroOnly := IntrinsicGas(vmcore.Istanbul, false, []byte{0, 0, 0})
	if want := txGas + 3*txDataZeroGas; zeroOnly != want {
		t.Errorf("want %d, got %d", want, zeroOnly)
	}

	nonZero := IntrinsicGas(vmcore.Istanbul, false, []byte{1, 2, 3})
	if want := txGas + 3*txDataNonZeroGasEIP2028; nonZero != want {
		t.Errorf("want %d, got %d", want, nonZero)
	}

	// Pre-Istanbul, non-zero bytes cost more (68, not EIP-2028's 16).
	preIstanbul := IntrinsicGas(vmcore.Byzantium, false, []byte{1})
	if want := txGas + txDataNonZeroGas; preIstanbul != want {
		t.Errorf("want %d, got %d", want, preIstanbul)
	}

	create := IntrinsicGas(vmcore.Istanbul, true, nil)
	if create != txGasContractCreation {
		t.Errorf("want the contract-creation base charge %d, got %d", txGasContractCreation, create)
	}
}

func TestRun_InsufficientBalanceRejectsBeforeRunning(t *testing.T) {
	host := newTestHost()
	sender := vmcore.Address{1}
	recipient := vmcore.Address{2}
	host.SetBalance(sender, vmcore.Value{31: 5})

	tx := Transaction{Sender: sender, Recipient: &recipient, Value: vmcore.Value{31: 10}, GasLimit: 100000}
	receipt, err := Run(fakeInterp{}, host, vmcore.Istanbul, tx)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if receipt.Status != vmcore.Rejected {
		t.Errorf("want REJECTED, got %v", receipt.Status)
	}
}

func TestRun_GasBelowIntrinsicIsOutOfGas(t *testing.T) {
	host := newTestHost()
	recipient := vmcore.Address{2}
	tx := Transaction{Sender: vmcore.Address{1}, Recipient: &recipient, GasLimit: 100}
	receipt, err := Run(fakeInterp{}, host, vmcore.Istanbul, tx)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if receipt.Status != vmcore.OutOfGas {
		t.Errorf("want OUT_OF_GAS, got %v", receipt.Status)
	}
}

func TestRun_SuccessfulCallTransfersValueAndCommits(t *testing.T) {
	host := newTestHost()
	sender := vmcore.Address{1}
	recipient := vmcore.Address{2}
	host.SetBalance(sender, vmcore.Value{31: 100})

	interp := fakeInterp{result: vmcore.ExecutionResult{Status: vmcore.Success, GasLeft: 50000}}
	tx := Transaction{Sender: sender, Recipient: &recipient, Value: vmcore.Value{31: 10}, GasLimit: 100000}

	receipt, err := Run(interp, host, vmcore.Istanbul, tx)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if receipt.Status != vmcore.Success {
		t.Fatalf("want SUCCESS, got %v", receipt.Status)
	}
	if got := host.GetBalance(sender); got != (vmcore.Value{31: 90}) {
		t.Errorf("want sender debited by the transferred value, got %x", got)
	}
	if got := host.GetBalance(recipient); got != (vmcore.Value{31: 10}) {
		t.Errorf("want recipient credited, got %x", got)
	}
}

func TestRun_FailedCallRevertsValueTransfer(t *testing.T) {
	host := newTestHost()
	sender := vmcore.Address{1}
	recipient := vmcore.Address{2}
	host.SetBalance(sender, vmcore.Value{31: 100})

	interp := fakeInterp{result: vmcore.ExecutionResult{Status: vmcore.Revert, GasLeft: 50000}}
	tx := Transaction{Sender: sender, Recipient: &recipient, Value: vmcore.Value{31: 10}, GasLimit: 100000}

	_, err := Run(interp, host, vmcore.Istanbul, tx)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if got := host.GetBalance(sender); got != (vmcore.Value{31: 100}) {
		t.Errorf("want the value transfer rolled back on REVERT, got sender balance %x", got)
	}
}

func TestRun_ContractCreationStoresCodeOnSuccess(t *testing.T) {
	host := newTestHost()
	sender := vmcore.Address{1}
	host.SetBalance(sender, vmcore.Value{31: 100})

	code := []byte{byte(opcode.STOP)}
	interp := fakeInterp{result: vmcore.ExecutionResult{Status: vmcore.Success, GasLeft: 90000, Output: code}}
	tx := Transaction{Sender: sender, Recipient: nil, Input: []byte{0x60, 0x00}, GasLimit: 100000}

	receipt, err := Run(interp, host, vmcore.Istanbul, tx)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if receipt.Status != vmcore.Success {
		t.Fatalf("want SUCCESS, got %v", receipt.Status)
	}
	if got := host.GetCode(receipt.ContractAddr); string(got) != string(code) {
		t.Errorf("want the returned output stored as code, got %x", got)
	}
}

func TestRun_RefundIsCappedAtHalfGasUsed(t *testing.T) {
	host := newTestHost()
	sender := vmcore.Address{1}
	recipient := vmcore.Address{2}

	// gasUsed = 100000-40000 = 60000; refund requested 50000, capped at 30000.
	interp := fakeInterp{result: vmcore.ExecutionResult{Status: vmcore.Success, GasLeft: 40000, GasRefund: 50000}}
	tx := Transaction{Sender: sender, Recipient: &recipient, GasLimit: 100000}

	receipt, err := Run(interp, host, vmcore.Berlin, tx)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if want := vmcore.Gas(30000); receipt.GasUsed != want {
		t.Errorf("want gas used %d after the capped refund, got %d", want, receipt.GasUsed)
	}
}
