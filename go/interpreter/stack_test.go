package interpreter

import (
	"testing"

	"github.com/holiman/uint256"
	"pgregory.net/rand"
)

func TestStack_PushPopIsLIFO(t *testing.T) {
	s := newStack()
	s.push(uint256.NewInt(1))
	s.push(uint256.NewInt(2))
	s.push(uint256.NewInt(3))

	if got := s.pop(); got.Uint64() != 3 {
		t.Fatalf("want 3, got %d", got.Uint64())
	}
	if got := s.pop(); got.Uint64() != 2 {
		t.Fatalf("want 2, got %d", got.Uint64())
	}
	if got := s.pop(); got.Uint64() != 1 {
		t.Fatalf("want 1, got %d", got.Uint64())
	}
	if s.size() != 0 {
		t.Errorf("want an empty stack, got size %d", s.size())
	}
}

func TestStack_DupCopiesWithoutConsuming(t *testing.T) {
	s := newStack()
	s.push(uint256.NewInt(10))
	s.push(uint256.NewInt(20))
	s.dup(2) // DUP2: copy the 2nd-from-top (10) onto the top

	if s.size() != 3 {
		t.Fatalf("want size 3 after dup, got %d", s.size())
	}
	if got := s.pop(); got.Uint64() != 10 {
		t.Errorf("want the duplicated value 10 on top, got %d", got.Uint64())
	}
}

func TestStack_SwapExchangesTopAndNth(t *testing.T) {
	s := newStack()
	s.push(uint256.NewInt(1))
	s.push(uint256.NewInt(2))
	s.push(uint256.NewInt(3))
	s.swap(2) // SWAP2: exchange top with the 3rd-from-top

	if got := s.pop(); got.Uint64() != 1 {
		t.Errorf("want 1 on top after SWAP2, got %d", got.Uint64())
	}
	if got := s.pop(); got.Uint64() != 2 {
		t.Errorf("want 2 unaffected in the middle, got %d", got.Uint64())
	}
	if got := s.pop(); got.Uint64() != 3 {
		t.Errorf("want 3 swapped to the bottom, got %d", got.Uint64())
	}
}

// TestStack_RandomPushPopSequencePreservesLIFOOrder drives the stack through
// many random push/pop/dup/swap sequences seeded from pgregory.net/rand,
// checking after every operation that size tracks exactly what was pushed
// minus what was popped and that values round-trip through the array
// untouched — the invariant every opcode handler relies on when it trusts
// peek/peekN to see what it just pushed.
func TestStack_RandomPushPopSequencePreservesLIFOOrder(t *testing.T) {
	rnd := rand.New(0)

	for trial := 0; trial < 200; trial++ {
		s := newStack()
		var model []uint64

		ops := 1 + rnd.Intn(64)
		for i := 0; i < ops; i++ {
			switch {
			case len(model) == 0 || rnd.Intn(2) == 0:
				v := rnd.Uint64()
				s.push(uint256.NewInt(v))
				model = append(model, v)

			case rnd.Intn(3) == 0 && len(model) >= 1:
				n := 1 + rnd.Intn(len(model))
				s.dup(n)
				model = append(model, model[len(model)-n])

			case rnd.Intn(3) == 0 && len(model) >= 2:
				n := 1 + rnd.Intn(len(model)-1)
				top := len(model) - 1
				model[top], model[top-n] = model[top-n], model[top]
				s.swap(n)

			default:
				want := model[len(model)-1]
				model = model[:len(model)-1]
				popped := s.pop()
				if got := popped.Uint64(); got != want {
					t.Fatalf("trial %d op %d: want %d, got %d", trial, i, want, got)
				}
			}

			if s.size() != len(model) {
				t.Fatalf("trial %d op %d: want size %d, got %d", trial, i, len(model), s.size())
			}
		}

		for i := len(model) - 1; i >= 0; i-- {
			popped := s.pop()
			if got := popped.Uint64(); got != model[i] {
				t.Fatalf("trial %d final drain: want %d, got %d", trial, model[i], got)
			}
		}
	}
}
