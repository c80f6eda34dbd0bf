package interpreter

import (
	gethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/palladium-chain/corevm/go/precompile"
	"github.com/palladium-chain/corevm/go/vmcore"
)

// childCallSpec is what the four CALL-family opcodes disagree about: who
// pays and receives value, which address's code runs, which address the
// child's storage/balance operations target, and whether it inherits the
// parent's static flag or forces one of its own.
type childCallSpec struct {
	kind      vmcore.CallKind
	sender    vmcore.Address
	recipient vmcore.Address
	codeAddr  vmcore.Address
	value     vmcore.Value
	transfersValue bool
	static    bool
}

// runChildCall implements the shared tail of CALL/CALLCODE/DELEGATECALL/
// STATICCALL once each opcode has popped its own operands and built a
// childCallSpec: memory accounting, the access-cost and value-transfer gas
// charges, the 63/64 forwarding rule, depth and balance checks, the actual
// recursive Run, and writing the child's output back into memory.
func runChildCall(f *Frame, spec childCallSpec, gasArg *uint256Int, argsOffset, argsSize, retOffset, retSize uint64, accessCost vmcore.Gas) StepOutcome {
	if _, err := f.memory.slice(argsOffset, argsSize, f.gas); err != nil {
		return outOfGas()
	}
	if _, err := f.memory.slice(retOffset, retSize, f.gas); err != nil {
		return outOfGas()
	}

	if err := f.gas.charge(accessCost); err != nil {
		return outOfGas()
	}

	valueIsZero := spec.value == vmcore.Value{}
	if spec.transfersValue && !valueIsZero {
		if err := f.gas.charge(callValueTransferGas); err != nil {
			return outOfGas()
		}
		if spec.kind == vmcore.Call && !f.host.AccountExists(spec.recipient) {
			if err := f.gas.charge(callNewAccountGas); err != nil {
				return outOfGas()
			}
		}
	}

	requested := vmcore.Gas(toUint64Saturating(gasArg))
	sendGas := callGas(f.gas.remaining, requested, true)
	if err := f.gas.charge(sendGas); err != nil {
		return outOfGas()
	}
	childGas := sendGas
	if spec.transfersValue && !valueIsZero {
		childGas += callStipend
	}

	failWithoutRunning := func() StepOutcome {
		f.gas.remaining += sendGas
		f.returnData = nil
		v := new(uint256Int)
		f.stack.push(v)
		return Continue()
	}

	if f.depth() >= MaxCallDepth {
		return failWithoutRunning()
	}
	if spec.transfersValue && !valueIsZero {
		if vmcore.Cmp(f.host.GetBalance(f.message.Recipient), spec.value) < 0 {
			return failWithoutRunning()
		}
	}

	childMessage := vmcore.Message{
		Kind:      spec.kind,
		Depth:     f.depth() + 1,
		Static:    spec.static,
		Gas:       childGas,
		Sender:    spec.sender,
		Recipient: spec.recipient,
		CodeAddr:  spec.codeAddr,
		Value:     spec.value,
		Input:     sliceCopy(mustSlice(f, argsOffset, argsSize)),
	}

	snapshot := f.host.Snapshot()
	if spec.transfersValue && !valueIsZero {
		f.host.AddBalance(f.message.Recipient, negate(spec.value))
		f.host.AddBalance(spec.recipient, spec.value)
	}

	var result vmcore.ExecutionResult
	if contract, ok := precompile.Lookup(spec.codeAddr, f.revision); ok {
		output, gasLeft, status := precompile.Run(contract, childMessage.Input, childGas)
		result = vmcore.ExecutionResult{Status: status, GasLeft: gasLeft, Output: output}
	} else {
		code := f.host.GetCode(spec.codeAddr)
		var err error
		result, err = f.runner.Run(f.host, f.revision, childMessage, code)
		if err != nil {
			f.host.RevertToSnapshot(snapshot)
			return failWithoutRunning()
		}
	}

	f.returnData = result.Output
	unspent := result.GasLeft
	if unspent > childGas {
		unspent = childGas
	}
	f.gas.remaining += unspent
	if result.Status.IsSuccess() {
		f.gas.addRefund(result.GasRefund)
	} else {
		f.host.RevertToSnapshot(snapshot)
	}

	if retSize > 0 {
		dst, dstErr := f.memory.slice(retOffset, retSize, f.gas)
		if dstErr != nil {
			return outOfGas()
		}
		copyOut(result.Output, 0, dst)
	}

	success := new(uint256Int)
	if result.Status.IsSuccess() {
		success.SetOne()
	}
	f.stack.push(success)
	return Continue()
}

func mustSlice(f *Frame, offset, size uint64) []byte {
	data, err := f.memory.slice(offset, size, f.gas)
	if err != nil {
		return nil
	}
	return data
}

func sliceCopy(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func negate(v vmcore.Value) vmcore.Value {
	var zero vmcore.Value
	return vmcore.Sub(zero, v)
}

// makeOpCall returns the CALL handler for a given fork's account-access
// pricing (fixed pre-Tangerine, EIP-150 fixed, or EIP-2929 warm/cold).
func makeOpCall(accessCost func(f *Frame, addr vmcore.Address) vmcore.Gas) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		gasArg := mustPop(f)
		addr := addressFromUint256(mustPopPtr(f))
		value := valueFromUint256(mustPopPtr(f))
		argsOffset := toUint64Saturating(mustPopPtr(f))
		argsSize := toUint64Saturating(mustPopPtr(f))
		retOffset := toUint64Saturating(mustPopPtr(f))
		retSize := toUint64Saturating(mustPopPtr(f))

		if f.isStatic() && value != (vmcore.Value{}) {
			return Halt(vmcore.StaticModeViolation, nil)
		}

		spec := childCallSpec{
			kind:           vmcore.Call,
			sender:         f.message.Recipient,
			recipient:      addr,
			codeAddr:       addr,
			value:          value,
			transfersValue: true,
			static:         f.isStatic(),
		}
		return runChildCall(f, spec, &gasArg, argsOffset, argsSize, retOffset, retSize, accessCost(f, addr))
	}
}

func makeOpCallcode(accessCost func(f *Frame, addr vmcore.Address) vmcore.Gas) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		gasArg := mustPop(f)
		addr := addressFromUint256(mustPopPtr(f))
		value := valueFromUint256(mustPopPtr(f))
		argsOffset := toUint64Saturating(mustPopPtr(f))
		argsSize := toUint64Saturating(mustPopPtr(f))
		retOffset := toUint64Saturating(mustPopPtr(f))
		retSize := toUint64Saturating(mustPopPtr(f))

		if f.isStatic() && value != (vmcore.Value{}) {
			return Halt(vmcore.StaticModeViolation, nil)
		}

		spec := childCallSpec{
			kind:           vmcore.CallCode,
			sender:         f.message.Recipient,
			recipient:      f.message.Recipient,
			codeAddr:       addr,
			value:          value,
			transfersValue: true,
			static:         f.isStatic(),
		}
		return runChildCall(f, spec, &gasArg, argsOffset, argsSize, retOffset, retSize, accessCost(f, addr))
	}
}

func makeOpDelegatecall(accessCost func(f *Frame, addr vmcore.Address) vmcore.Gas) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		gasArg := mustPop(f)
		addr := addressFromUint256(mustPopPtr(f))
		argsOffset := toUint64Saturating(mustPopPtr(f))
		argsSize := toUint64Saturating(mustPopPtr(f))
		retOffset := toUint64Saturating(mustPopPtr(f))
		retSize := toUint64Saturating(mustPopPtr(f))

		spec := childCallSpec{
			kind:           vmcore.DelegateCall,
			sender:         f.message.Sender,
			recipient:      f.message.Recipient,
			codeAddr:       addr,
			value:          f.message.Value,
			transfersValue: false,
			static:         f.isStatic(),
		}
		return runChildCall(f, spec, &gasArg, argsOffset, argsSize, retOffset, retSize, accessCost(f, addr))
	}
}

func makeOpStaticcall(accessCost func(f *Frame, addr vmcore.Address) vmcore.Gas) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		gasArg := mustPop(f)
		addr := addressFromUint256(mustPopPtr(f))
		argsOffset := toUint64Saturating(mustPopPtr(f))
		argsSize := toUint64Saturating(mustPopPtr(f))
		retOffset := toUint64Saturating(mustPopPtr(f))
		retSize := toUint64Saturating(mustPopPtr(f))

		spec := childCallSpec{
			kind:           vmcore.StaticCall,
			sender:         f.message.Recipient,
			recipient:      addr,
			codeAddr:       addr,
			transfersValue: false,
			static:         true,
		}
		return runChildCall(f, spec, &gasArg, argsOffset, argsSize, retOffset, retSize, accessCost(f, addr))
	}
}

func callAccessCostFrontier(f *Frame, addr vmcore.Address) vmcore.Gas {
	return gasCallFrontier
}

func callAccessCostEIP150(f *Frame, addr vmcore.Address) vmcore.Gas {
	return gasCallEIP150
}

func callAccessCostEIP2929(f *Frame, addr vmcore.Address) vmcore.Gas {
	if wasCold := f.host.WarmUpAccount(addr); wasCold {
		return coldAccountAccessCost
	}
	return warmStorageReadCost
}

// runCreate implements CREATE and CREATE2's shared body once the address has
// been computed and the caller has charged the base and hashing costs:
// snapshot, transfer value, run the init code as a Create message, and on
// success charge per-byte deposit gas and install the returned bytes as the
// new account's code.
func runCreate(f *Frame, kind vmcore.CallKind, newAddr vmcore.Address, value vmcore.Value, initCode []byte) StepOutcome {
	f.returnData = nil
	if f.depth() >= MaxCallDepth {
		v := new(uint256Int)
		f.stack.push(v)
		return Continue()
	}
	if vmcore.Cmp(f.host.GetBalance(f.message.Recipient), value) < 0 {
		v := new(uint256Int)
		f.stack.push(v)
		return Continue()
	}

	snapshot := f.host.Snapshot()
	f.host.IncrementNonce(f.message.Recipient)
	if value != (vmcore.Value{}) {
		f.host.AddBalance(f.message.Recipient, negate(value))
		f.host.AddBalance(newAddr, value)
	}

	childMessage := vmcore.Message{
		Kind:      kind,
		Depth:     f.depth() + 1,
		Static:    f.isStatic(),
		Gas:       callGas(f.gas.remaining, 0, false),
		Sender:    f.message.Recipient,
		Recipient: newAddr,
		CodeAddr:  newAddr,
		Value:     value,
		Input:     nil,
	}
	if err := f.gas.charge(childMessage.Gas); err != nil {
		f.host.RevertToSnapshot(snapshot)
		return outOfGas()
	}

	result, err := f.runner.Run(f.host, f.revision, childMessage, initCode)
	if err != nil || !result.Status.IsSuccess() {
		f.host.RevertToSnapshot(snapshot)
		f.gas.remaining += result.GasLeft
		f.returnData = result.Output
		v := new(uint256Int)
		f.stack.push(v)
		return Continue()
	}

	depositCost := createDataGas * vmcore.Gas(len(result.Output))
	if chargeErr := f.gas.charge(depositCost); chargeErr != nil {
		f.host.RevertToSnapshot(snapshot)
		v := new(uint256Int)
		f.stack.push(v)
		return Continue()
	}

	f.host.SetCode(newAddr, result.Output)
	f.gas.remaining += result.GasLeft
	f.gas.addRefund(result.GasRefund)
	f.returnData = nil

	addrWord := uint256FromAddress(newAddr)
	f.stack.push(&addrWord)
	return Continue()
}

func opCreate(f *Frame) StepOutcome {
	if err := f.gas.charge(gasCreate); err != nil {
		return outOfGas()
	}
	value := valueFromUint256(mustPopPtr(f))
	offset := toUint64Saturating(mustPopPtr(f))
	size := toUint64Saturating(mustPopPtr(f))
	initCode, err := f.memory.slice(offset, size, f.gas)
	if err != nil {
		return outOfGas()
	}
	nonce := f.host.GetNonce(f.message.Recipient)
	newAddr := vmcore.Address(gethcrypto.CreateAddress(toCommonAddress(f.message.Recipient), nonce))
	return runCreate(f, vmcore.Create, newAddr, value, sliceCopy(initCode))
}

func opCreate2(f *Frame) StepOutcome {
	value := valueFromUint256(mustPopPtr(f))
	offset := toUint64Saturating(mustPopPtr(f))
	size := toUint64Saturating(mustPopPtr(f))
	salt := wordFromUint256(mustPopPtr(f))
	if err := f.gas.charge(gasCreate + sha3Cost(size) - gasSha3); err != nil {
		return outOfGas()
	}
	initCode, err := f.memory.slice(offset, size, f.gas)
	if err != nil {
		return outOfGas()
	}
	initHash := keccak256(initCode)
	newAddr := vmcore.Address(gethcrypto.CreateAddress2(toCommonAddress(f.message.Recipient), [32]byte(salt), initHash[:]))
	return runCreate(f, vmcore.Create2, newAddr, value, sliceCopy(initCode))
}

func makeOpSelfdestruct(cost vmcore.Gas, chargeNewAccount bool) func(f *Frame) StepOutcome {
	return func(f *Frame) StepOutcome {
		beneficiary := addressFromUint256(mustPopPtr(f))
		total := cost
		if chargeNewAccount && !f.host.AccountExists(beneficiary) && f.host.GetBalance(f.message.Recipient) != (vmcore.Value{}) {
			total += createBySelfdestructGas
		}
		if err := f.gas.charge(total); err != nil {
			return outOfGas()
		}
		if !f.host.HasSelfDestructed(f.message.Recipient) {
			f.gas.addRefund(selfdestructRefundGas)
		}
		f.host.AddBalance(beneficiary, f.host.GetBalance(f.message.Recipient))
		f.host.SetBalance(f.message.Recipient, vmcore.Value{})
		f.host.Selfdestruct(f.message.Recipient, beneficiary)
		return Halt(vmcore.Success, nil)
	}
}

func opSelfdestructEIP2929(f *Frame) StepOutcome {
	beneficiary := addressFromUint256(mustPopPtr(f))
	total := gasSelfdestructEIP150
	if wasCold := f.host.WarmUpAccount(beneficiary); wasCold {
		total += coldAccountAccessCost
	}
	if !f.host.AccountExists(beneficiary) && f.host.GetBalance(f.message.Recipient) != (vmcore.Value{}) {
		total += createBySelfdestructGas
	}
	if err := f.gas.charge(total); err != nil {
		return outOfGas()
	}
	if !f.host.HasSelfDestructed(f.message.Recipient) {
		f.gas.addRefund(selfdestructRefundGas)
	}
	f.host.AddBalance(beneficiary, f.host.GetBalance(f.message.Recipient))
	f.host.SetBalance(f.message.Recipient, vmcore.Value{})
	f.host.Selfdestruct(f.message.Recipient, beneficiary)
	return Halt(vmcore.Success, nil)
}
