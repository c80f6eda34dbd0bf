package interpreter

import "github.com/palladium-chain/corevm/go/vmcore"

// gasMeter is the single-counter resource meter each frame owns
// exclusively. Charging never lets remaining go negative: a charge that
// would exceed remaining is rejected in full and remaining is left
// unchanged, leaving the caller to translate that into an OUT_OF_GAS halt.
type gasMeter struct {
	remaining vmcore.Gas
	lastCost  vmcore.Gas
	refund    vmcore.Gas
}

func newGasMeter(limit vmcore.Gas) *gasMeter {
	return &gasMeter{remaining: limit}
}

// charge deducts amount from remaining. It returns errOutOfGas without
// mutating remaining if amount exceeds it.
func (g *gasMeter) charge(amount vmcore.Gas) error {
	if amount < 0 || amount > g.remaining {
		return errOutOfGas
	}
	g.remaining -= amount
	g.lastCost = amount
	return nil
}

func (g *gasMeter) addRefund(amount vmcore.Gas) {
	g.refund += amount
}

func (g *gasMeter) subRefund(amount vmcore.Gas) {
	g.refund -= amount
}

// Fixed opcode gas tiers, per the Yellow Paper's fee schedule.
const (
	gasZero     vmcore.Gas = 0
	gasBase     vmcore.Gas = 2
	gasVeryLow  vmcore.Gas = 3
	gasLow      vmcore.Gas = 5
	gasMid      vmcore.Gas = 8
	gasHigh     vmcore.Gas = 10
	gasExtCode  vmcore.Gas = 700
	gasBalance  vmcore.Gas = 400
	gasSload    vmcore.Gas = 200
	gasJumpdest vmcore.Gas = 1
	gasSha3     vmcore.Gas = 30
	gasSha3Word vmcore.Gas = 6
	gasCopyWord vmcore.Gas = 3
	gasLog      vmcore.Gas = 375
	gasLogTopic vmcore.Gas = 375
	gasLogData  vmcore.Gas = 8

	// EIP-150 (TangerineWhistle) repricing of external-account touching ops.
	gasExtCodeEIP150 vmcore.Gas = 700
	gasBalanceEIP150 vmcore.Gas = 400
	gasSelfdestructEIP150 vmcore.Gas = 5000

	// EIP-2929 (Berlin) cold/warm access pricing.
	coldAccountAccessCost vmcore.Gas = 2600
	coldSloadCost         vmcore.Gas = 2100
	warmStorageReadCost   vmcore.Gas = 100

	// SSTORE net-gas metering (EIP-2200, Constantinople/Petersburg/Istanbul).
	sstoreSetGas               vmcore.Gas = 20000
	sstoreResetGas             vmcore.Gas = 5000
	sstoreClearsScheduleRefund vmcore.Gas = 15000
	sstoreSentryGas            vmcore.Gas = 2300
	sloadGasEIP2200            vmcore.Gas = 800

	// Pre-Constantinople flat SSTORE pricing.
	sstoreSetGasFrontier      vmcore.Gas = 20000
	sstoreClearGasFrontier    vmcore.Gas = 5000
	sstoreResetGasFrontier    vmcore.Gas = 5000
	sstoreRefundGasFrontier   vmcore.Gas = 15000

	callStipend          vmcore.Gas = 2300
	callValueTransferGas vmcore.Gas = 9000
	callNewAccountGas    vmcore.Gas = 25000
	createDataGas        vmcore.Gas = 200

	selfdestructRefundGas   vmcore.Gas = 24000
	createBySelfdestructGas vmcore.Gas = 25000

	// Berlin caps refunds at gasUsed/2 (the London gasUsed/5 cap, EIP-3529,
	// is out of this interpreter's fork range).
	maxRefundDivisor vmcore.Gas = 2

	// EXP's per-byte-of-exponent cost, repriced by EIP-160 (SpuriousDragon).
	gasExpByteFrontier vmcore.Gas = 10
	gasExpByteEIP160   vmcore.Gas = 50

	gasCreate vmcore.Gas = 32000

	// CALL family base cost, repriced by EIP-150 (TangerineWhistle).
	gasCallFrontier vmcore.Gas = 40
	gasCallEIP150   vmcore.Gas = 700

	gasSelfdestructFrontier vmcore.Gas = 0

	gasExtCodeHashConstantinople vmcore.Gas = 400

	gasBlockhash vmcore.Gas = 20
)

// callGas implements the 63/64 forwarding rule (EIP-150): of the gas
// remaining after paying the call's base cost, at most all-but-one-64th may
// be forwarded to the child, further capped by the amount requested.
func callGas(available vmcore.Gas, requested vmcore.Gas, requestedIsDefined bool) vmcore.Gas {
	capped := available - available/64
	if !requestedIsDefined || requested > capped {
		return capped
	}
	return requested
}

// memoryCopyCost prices a memory-copy family opcode (CALLDATACOPY, CODECOPY,
// RETURNDATACOPY, EXTCODECOPY): 3 gas per word copied, in addition to any
// memory-expansion cost charged separately.
func memoryCopyCost(size uint64) vmcore.Gas {
	return gasCopyWord * vmcore.Gas(vmcore.SizeInWords(size))
}

// sha3Cost prices SHA3: a base fee plus 6 gas per word hashed.
func sha3Cost(size uint64) vmcore.Gas {
	return gasSha3 + gasSha3Word*vmcore.Gas(vmcore.SizeInWords(size))
}

// logCost prices LOGn: a base fee, a per-topic fee, and a per-byte-of-data
// fee.
func logCost(topics int, dataLen uint64) vmcore.Gas {
	return gasLog + gasLogTopic*vmcore.Gas(topics) + gasLogData*vmcore.Gas(dataLen)
}

// ApplyRefundCap caps the accumulated refund at gasUsed/maxRefundDivisor,
// the rule the Processor applies once at the transaction boundary (never
// inside a single frame). Exported for package processor, which applies it
// after the Interpreter's top frame halts.
func ApplyRefundCap(refund, gasUsed vmcore.Gas) vmcore.Gas {
	cap := gasUsed / maxRefundDivisor
	if refund > cap {
		return cap
	}
	if refund < 0 {
		return 0
	}
	return refund
}
