package vmcore

import (
	"encoding/json"
	"fmt"
)

// Revision identifies a hard fork, pinning the opcode set and gas schedule
// an Interpreter.Run call is evaluated against.
type Revision int

const (
	Frontier Revision = iota
	Homestead
	TangerineWhistle
	SpuriousDragon
	Byzantium
	Constantinople
	Petersburg
	Istanbul
	Berlin

	numRevisions
)

func (r Revision) String() string {
	switch r {
	case Frontier:
		return "Frontier"
	case Homestead:
		return "Homestead"
	case TangerineWhistle:
		return "TangerineWhistle"
	case SpuriousDragon:
		return "SpuriousDragon"
	case Byzantium:
		return "Byzantium"
	case Constantinople:
		return "Constantinople"
	case Petersburg:
		return "Petersburg"
	case Istanbul:
		return "Istanbul"
	case Berlin:
		return "Berlin"
	default:
		return fmt.Sprintf("Revision(%d)", int(r))
	}
}

// IsValid reports whether r is one of the revisions this package knows an
// opcode table for.
func (r Revision) IsValid() bool {
	return r >= Frontier && r < numRevisions
}

// AtLeast reports whether r is the same as, or a later fork than, other.
func (r Revision) AtLeast(other Revision) bool {
	return r >= other
}

func (r Revision) MarshalJSON() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid revision %d", int(r))
	}
	return json.Marshal(r.String())
}

func (r *Revision) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	revisionsByName := map[string]Revision{
		"Frontier":         Frontier,
		"Homestead":        Homestead,
		"TangerineWhistle": TangerineWhistle,
		"EIP150":           TangerineWhistle,
		"SpuriousDragon":   SpuriousDragon,
		"EIP158":           SpuriousDragon,
		"Byzantium":        Byzantium,
		"Constantinople":   Constantinople,
		"ConstantinopleFix": Petersburg,
		"Petersburg":       Petersburg,
		"Istanbul":         Istanbul,
		"Berlin":           Berlin,
	}
	rev, ok := revisionsByName[s]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedRevision, s)
	}
	*r = rev
	return nil
}
