package interpreter

import (
	"github.com/palladium-chain/corevm/go/opcode"
	"github.com/palladium-chain/corevm/go/vmcore"
)

// stepKind tags the three ways a Handler can end an instruction: keep
// running at the next PC, jump to an explicit target, or halt the frame.
type stepKind int

const (
	stepContinue stepKind = iota
	stepJump
	stepHalt
)

// StepOutcome is the tagged-variant result every opcode Handler produces,
// replacing the polymorphic per-opcode dispatch of the interpreter this
// design is drawn from with an explicit, inspectable value.
type StepOutcome struct {
	kind   stepKind
	target int64
	status vmcore.StatusCode
	output []byte
}

// Continue advances the program counter by the instruction's own width and
// keeps the frame running.
func Continue() StepOutcome { return StepOutcome{kind: stepContinue} }

// Jump moves the program counter directly to target (already validated
// against the jump-destination set by the caller) and keeps the frame
// running.
func Jump(target int64) StepOutcome { return StepOutcome{kind: stepJump, target: target} }

// Halt ends the frame with the given status and optional output.
func Halt(status vmcore.StatusCode, output []byte) StepOutcome {
	return StepOutcome{kind: stepHalt, status: status, output: output}
}

// Handler is one opcode's complete behavioral contract at a given
// revision: how deep the stack must be before it runs, whether it mutates
// world state (and is therefore forbidden in a STATIC frame), and the
// function implementing its semantics.
type Handler struct {
	MinStack       int
	StateModifying bool
	Execute        func(f *Frame) StepOutcome
}

// Table is a complete byte -> Handler mapping for one revision, covering
// 0x00-0xFF. Unassigned bytes hold the table's undefinedHandler.
type Table [256]Handler

var undefinedHandler = Handler{
	Execute: func(f *Frame) StepOutcome {
		return Halt(vmcore.UndefinedInstruction, nil)
	},
}

// tablesByRevision holds one complete, pre-built Table per Revision. Each
// table is derived from the previous fork's table plus that fork's diffs,
// so a handler shared across many forks is defined once and copied forward
// rather than re-declared per revision.
var tablesByRevision [9]*Table

func init() {
	frontier := buildFrontierTable()
	tablesByRevision[vmcore.Frontier] = frontier

	homestead := cloneTable(frontier)
	applyHomesteadDiff(homestead)
	tablesByRevision[vmcore.Homestead] = homestead

	tangerine := cloneTable(homestead)
	applyTangerineWhistleDiff(tangerine)
	tablesByRevision[vmcore.TangerineWhistle] = tangerine

	spurious := cloneTable(tangerine)
	applySpuriousDragonDiff(spurious)
	tablesByRevision[vmcore.SpuriousDragon] = spurious

	byzantium := cloneTable(spurious)
	applyByzantiumDiff(byzantium)
	tablesByRevision[vmcore.Byzantium] = byzantium

	constantinople := cloneTable(byzantium)
	applyConstantinopleDiff(constantinople)
	tablesByRevision[vmcore.Constantinople] = constantinople

	// Petersburg re-enables exactly Constantinople's table (EIP-1283's
	// SSTORE metering was disabled for a reentrancy concern between
	// Constantinople and Petersburg, then restored unchanged).
	petersburg := cloneTable(constantinople)
	tablesByRevision[vmcore.Petersburg] = petersburg

	istanbul := cloneTable(petersburg)
	applyIstanbulDiff(istanbul)
	tablesByRevision[vmcore.Istanbul] = istanbul

	berlin := cloneTable(istanbul)
	applyBerlinDiff(berlin)
	tablesByRevision[vmcore.Berlin] = berlin
}

func cloneTable(src *Table) *Table {
	dst := *src
	return &dst
}

// TableFor returns the complete opcode table for revision, or
// ErrUnsupportedRevision if revision is out of range.
func TableFor(revision vmcore.Revision) (*Table, error) {
	if !revision.IsValid() {
		return nil, vmcore.ErrUnsupportedRevision
	}
	return tablesByRevision[revision], nil
}

func set(t *Table, op opcode.Code, h Handler) {
	t[op] = h
}
