package hoststate

import (
	"testing"

	"github.com/palladium-chain/corevm/go/vmcore"
)

func TestOverlay_ReadsFallThroughToWorldState(t *testing.T) {
	world := NewMemoryWorldState()
	addr := vmcore.Address{1}
	world.SetBalance(addr, vmcore.Value{31: 5})

	overlay := NewOverlay(world, vmcore.TxContext{}, nil)
	if got := overlay.GetBalance(addr); got != (vmcore.Value{31: 5}) {
		t.Errorf("want balance to read through to world state, got %x", got)
	}
}

func TestOverlay_WritesAreBufferedUntilCommit(t *testing.T) {
	world := NewMemoryWorldState()
	addr := vmcore.Address{1}
	overlay := NewOverlay(world, vmcore.TxContext{}, nil)

	overlay.SetBalance(addr, vmcore.Value{31: 9})
	if got := world.GetBalance(addr); got != (vmcore.Value{}) {
		t.Errorf("write must not reach world state before Commit, got %x", got)
	}
	overlay.Commit()
	if got := world.GetBalance(addr); got != (vmcore.Value{31: 9}) {
		t.Errorf("want %x after Commit, got %x", vmcore.Value{31: 9}, got)
	}
}

func TestOverlay_RevertToSnapshotUndoesLaterWrites(t *testing.T) {
	world := NewMemoryWorldState()
	addr := vmcore.Address{1}
	overlay := NewOverlay(world, vmcore.TxContext{}, nil)

	overlay.SetBalance(addr, vmcore.Value{31: 1})
	snap := overlay.Snapshot()
	overlay.SetBalance(addr, vmcore.Value{31: 2})
	overlay.SetStorage(addr, vmcore.Key{}, vmcore.Word{31: 7})

	overlay.RevertToSnapshot(snap)

	if got := overlay.GetBalance(addr); got != (vmcore.Value{31: 1}) {
		t.Errorf("want balance rolled back to %x, got %x", vmcore.Value{31: 1}, got)
	}
	if got := overlay.GetStorage(addr, vmcore.Key{}); got != (vmcore.Word{}) {
		t.Errorf("want storage write rolled back, got %x", got)
	}
}

func TestOverlay_RevertUndoesWarmSets(t *testing.T) {
	overlay := NewOverlay(NewMemoryWorldState(), vmcore.TxContext{}, nil)
	addr := vmcore.Address{1}

	snap := overlay.Snapshot()
	if !overlay.WarmUpAccount(addr) {
		t.Fatalf("first WarmUpAccount call must report cold")
	}
	if !overlay.IsAddressWarm(addr) {
		t.Fatalf("account must be warm immediately after WarmUpAccount")
	}
	overlay.RevertToSnapshot(snap)

	if overlay.IsAddressWarm(addr) {
		t.Errorf("warm-access sets must revert with their enclosing snapshot")
	}
}

func TestOverlay_WarmUpAccountReportsColdOnlyOnce(t *testing.T) {
	overlay := NewOverlay(NewMemoryWorldState(), vmcore.TxContext{}, nil)
	addr := vmcore.Address{1}

	if !overlay.WarmUpAccount(addr) {
		t.Errorf("first access must report cold")
	}
	if overlay.WarmUpAccount(addr) {
		t.Errorf("second access must report warm (return false)")
	}
}

func TestOverlay_SetStorageClassifiesStatus(t *testing.T) {
	overlay := NewOverlay(NewMemoryWorldState(), vmcore.TxContext{}, nil)
	addr := vmcore.Address{1}
	key := vmcore.Key{}

	status := overlay.SetStorage(addr, key, vmcore.Word{31: 1})
	if status != vmcore.StorageAdded {
		t.Errorf("want StorageAdded on a zero->nonzero write, got %v", status)
	}

	status = overlay.SetStorage(addr, key, vmcore.Word{})
	if status != vmcore.StorageDeletedRestored {
		t.Errorf("want StorageDeletedRestored on a dirty write back to the zero original, got %v", status)
	}
}

func TestOverlay_SelfdestructReportsFirstCallOnly(t *testing.T) {
	overlay := NewOverlay(NewMemoryWorldState(), vmcore.TxContext{}, nil)
	addr, beneficiary := vmcore.Address{1}, vmcore.Address{2}

	if !overlay.Selfdestruct(addr, beneficiary) {
		t.Errorf("first Selfdestruct call must report true")
	}
	if overlay.Selfdestruct(addr, beneficiary) {
		t.Errorf("second Selfdestruct call on the same address must report false")
	}
	if !overlay.HasSelfDestructed(addr) {
		t.Errorf("HasSelfDestructed must be true after Selfdestruct")
	}
}

func TestOverlay_EmitLogRevertsWithSnapshot(t *testing.T) {
	overlay := NewOverlay(NewMemoryWorldState(), vmcore.TxContext{}, nil)
	addr := vmcore.Address{1}

	overlay.EmitLog(addr, nil, []byte("kept"))
	snap := overlay.Snapshot()
	overlay.EmitLog(addr, nil, []byte("reverted"))
	overlay.RevertToSnapshot(snap)

	logs := overlay.Logs()
	if len(logs) != 1 || string(logs[0].Data) != "kept" {
		t.Errorf("want only the pre-snapshot log to survive, got %v", logs)
	}
}
