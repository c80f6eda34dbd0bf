// Package processor drives whole-transaction execution: intrinsic gas,
// value transfer, nonce management, contract-creation address derivation,
// and the refund cap, wired around a single Interpreter.Run call at
// depth 0.
package processor

import (
	gethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/palladium-chain/corevm/go/interpreter"
	"github.com/palladium-chain/corevm/go/vmcore"
)

// Intrinsic gas costs charged before any code runs, per the Yellow Paper's
// transaction fee schedule.
const (
	txGas             vmcore.Gas = 21000
	txGasContractCreation vmcore.Gas = 53000
	txDataZeroGas     vmcore.Gas = 4
	txDataNonZeroGas  vmcore.Gas = 68

	// EIP-2028 (Istanbul) reprices non-zero calldata bytes.
	txDataNonZeroGasEIP2028 vmcore.Gas = 16

	// createDataGas prices the deposit of a newly created contract's
	// returned code, per byte, matching the interpreter's own CREATE
	// pricing constant.
	createDataGas vmcore.Gas = 200
)

// Interpreter is the single method the Processor drives; declared locally
// so a fake can stand in for *interpreter.Interp in tests.
type Interpreter interface {
	Run(host vmcore.HostContext, revision vmcore.Revision, message vmcore.Message, code vmcore.Code) (vmcore.ExecutionResult, error)
}

// Transaction is the top-level unit the Processor executes: either a call
// (Recipient set) or a contract creation (Recipient nil, Input holds init
// code).
type Transaction struct {
	Sender    vmcore.Address
	Recipient *vmcore.Address
	Value     vmcore.Value
	Input     []byte
	GasLimit  vmcore.Gas
}

// Receipt is everything the Processor reports about one executed
// transaction.
type Receipt struct {
	Status        vmcore.StatusCode
	GasUsed       vmcore.Gas
	ContractAddr  vmcore.Address
	Output        []byte
	Logs          []vmcore.Log
}

// LogSource is implemented by a HostContext that also exposes the logs it
// accumulated, letting the Processor report them without widening
// vmcore.HostContext itself.
type LogSource interface {
	Logs() []vmcore.Log
}

// IntrinsicGas computes the flat per-transaction charge plus the
// per-input-byte charge, at revision's schedule.
func IntrinsicGas(revision vmcore.Revision, isCreate bool, input []byte) vmcore.Gas {
	gas := txGas
	if isCreate {
		gas = txGasContractCreation
	}
	nonZeroGas := txDataNonZeroGas
	if revision.AtLeast(vmcore.Istanbul) {
		nonZeroGas = txDataNonZeroGasEIP2028
	}
	for _, b := range input {
		if b == 0 {
			gas += txDataZeroGas
		} else {
			gas += nonZeroGas
		}
	}
	return gas
}

// Run executes tx against host at revision: charges intrinsic gas, opens
// the root snapshot, transfers value, invokes interp at depth 0 (via a
// synthetic CALL or CREATE message), and applies the accumulated gas
// refund capped at gasUsed/2 once the top frame halts.
func Run(interp Interpreter, host vmcore.HostContext, revision vmcore.Revision, tx Transaction) (Receipt, error) {
	isCreate := tx.Recipient == nil
	intrinsic := IntrinsicGas(revision, isCreate, tx.Input)
	if tx.GasLimit < intrinsic {
		return Receipt{Status: vmcore.OutOfGas}, nil
	}
	gasAvailable := tx.GasLimit - intrinsic

	snapshot := host.Snapshot()

	senderBalance := host.GetBalance(tx.Sender)
	if vmcore.Cmp(senderBalance, tx.Value) < 0 {
		host.RevertToSnapshot(snapshot)
		return Receipt{Status: vmcore.Rejected}, nil
	}

	var recipient vmcore.Address
	var code vmcore.Code
	var kind vmcore.CallKind

	if isCreate {
		nonce := host.GetNonce(tx.Sender)
		recipient = vmcore.Address(gethcrypto.CreateAddress(toCommon(tx.Sender), nonce))
		host.IncrementNonce(tx.Sender)
		code = tx.Input
		kind = vmcore.Create
	} else {
		recipient = *tx.Recipient
		host.IncrementNonce(tx.Sender)
		code = host.GetCode(recipient)
		kind = vmcore.Call
	}

	if tx.Value != (vmcore.Value{}) {
		host.AddBalance(tx.Sender, vmcore.Sub(vmcore.Value{}, tx.Value))
		host.AddBalance(recipient, tx.Value)
	}

	message := vmcore.Message{
		Kind:      kind,
		Depth:     0,
		Gas:       gasAvailable,
		Sender:    tx.Sender,
		Recipient: recipient,
		CodeAddr:  recipient,
		Value:     tx.Value,
	}
	if !isCreate {
		message.Input = tx.Input
	}

	result, err := interp.Run(host, revision, message, code)
	if err != nil {
		host.RevertToSnapshot(snapshot)
		return Receipt{}, err
	}

	if !result.Status.IsSuccess() {
		host.RevertToSnapshot(snapshot)
	} else if isCreate {
		depositCost := createDataGas * vmcore.Gas(len(result.Output))
		if depositCost > result.GasLeft {
			host.RevertToSnapshot(snapshot)
			result.Status = vmcore.OutOfGas
			result.GasLeft = 0
		} else {
			result.GasLeft -= depositCost
			host.SetCode(recipient, result.Output)
		}
	}

	gasUsed := tx.GasLimit - result.GasLeft
	gasUsed -= interpreter.ApplyRefundCap(result.GasRefund, gasUsed)

	receipt := Receipt{
		Status:       result.Status,
		GasUsed:      gasUsed,
		ContractAddr: recipient,
		Output:       result.Output,
	}
	if src, ok := host.(LogSource); ok && result.Status.IsSuccess() {
		receipt.Logs = src.Logs()
	}

	if result.Status.IsSuccess() {
		host.Commit()
	}

	return receipt, nil
}

func toCommon(addr vmcore.Address) [20]byte {
	return [20]byte(addr)
}
