package interpreter

import "github.com/palladium-chain/corevm/go/opcode"

// jumpTargets is the pre-analyzed set of valid JUMP/JUMPI destinations for
// one piece of code: byte offsets holding a JUMPDEST opcode that are not
// themselves inside a PUSH instruction's immediate data.
type jumpTargets struct {
	valid []bool
}

// analyzeJumpDests performs the single forward scan the interpreter runs
// once per frame before execution: walk the code linearly, skipping over
// PUSH immediates, and mark every JUMPDEST byte encountered outside of
// immediate data as a valid jump target. A 0x5B byte that only appears
// because it happens to fall inside a preceding PUSH's operand is not a
// valid destination.
func analyzeJumpDests(code []byte) jumpTargets {
	valid := make([]bool, len(code))
	for pc := 0; pc < len(code); {
		op := opcode.Code(code[pc])
		if op == opcode.JUMPDEST {
			valid[pc] = true
			pc++
			continue
		}
		pc += op.Width()
	}
	return jumpTargets{valid: valid}
}

func (j jumpTargets) isValid(dest int64) bool {
	if dest < 0 || dest >= int64(len(j.valid)) {
		return false
	}
	return j.valid[dest]
}
