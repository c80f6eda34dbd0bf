package hoststate

import (
	"testing"

	"github.com/palladium-chain/corevm/go/vmcore"
)

func TestMemoryWorldState_AccountExistsAfterAnyField(t *testing.T) {
	w := NewMemoryWorldState()
	addr := vmcore.Address{1}
	if w.AccountExists(addr) {
		t.Fatalf("fresh account must not exist")
	}
	w.SetNonce(addr, 1)
	if !w.AccountExists(addr) {
		t.Errorf("setting nonce must make the account exist")
	}
}

func TestMemoryWorldState_SetStorageZeroDeletesSlot(t *testing.T) {
	w := NewMemoryWorldState()
	addr := vmcore.Address{1}
	key := vmcore.Key{}

	w.SetStorage(addr, key, vmcore.Word{31: 1})
	if got := w.GetStorage(addr, key); got == (vmcore.Word{}) {
		t.Fatalf("expected the value to be stored")
	}
	w.SetStorage(addr, key, vmcore.Word{})
	if got := w.GetStorage(addr, key); got != (vmcore.Word{}) {
		t.Errorf("want slot cleared after a zero write, got %x", got)
	}
}

func TestMemoryWorldState_GetCodeHashOfEmptyCodeIsZeroHash(t *testing.T) {
	w := NewMemoryWorldState()
	if got := w.GetCodeHash(vmcore.Address{1}); got != (vmcore.Hash{}) {
		t.Errorf("want the zero hash for an account with no code, got %x", got)
	}
}

func TestMemoryWorldState_GetCodeHashIsDeterministic(t *testing.T) {
	w := NewMemoryWorldState()
	addr := vmcore.Address{1}
	w.SetCode(addr, []byte{0x60, 0x00})

	h1 := w.GetCodeHash(addr)
	h2 := w.GetCodeHash(addr)
	if h1 != h2 {
		t.Errorf("want a stable hash for the same code, got %x then %x", h1, h2)
	}
	if h1 == (vmcore.Hash{}) {
		t.Errorf("want a non-zero hash for non-empty code")
	}
}
