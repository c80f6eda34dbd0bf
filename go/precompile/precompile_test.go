package precompile

import (
	"testing"

	"github.com/palladium-chain/corevm/go/vmcore"
)

var identityAddr = vmcore.Address{19: 4}

func TestLookup_IdentityIsAvailableFromFrontier(t *testing.T) {
	if _, ok := Lookup(identityAddr, vmcore.Frontier); !ok {
		t.Fatalf("want the IDENTITY precompile at 0x04 available from Frontier")
	}
}

func TestLookup_UnassignedAddressIsAbsent(t *testing.T) {
	if _, ok := Lookup(vmcore.Address{0xFF}, vmcore.Berlin); ok {
		t.Errorf("want no precompile at an address outside 0x01-0x09")
	}
}

func TestLookup_ModexpOnlyFromByzantium(t *testing.T) {
	modexpAddr := vmcore.Address{19: 5}
	if _, ok := Lookup(modexpAddr, vmcore.Homestead); ok {
		t.Errorf("MODEXP must not be available before Byzantium")
	}
	if _, ok := Lookup(modexpAddr, vmcore.Byzantium); !ok {
		t.Errorf("MODEXP must be available from Byzantium onward")
	}
}

func TestRun_IdentityReturnsInputAndChargesGas(t *testing.T) {
	contract, ok := Lookup(identityAddr, vmcore.Istanbul)
	if !ok {
		t.Fatalf("expected IDENTITY to be found")
	}
	input := []byte("hello")
	output, gasLeft, status := Run(contract, input, 1000)
	if status != vmcore.Success {
		t.Fatalf("want SUCCESS, got %v", status)
	}
	if string(output) != "hello" {
		t.Errorf("want IDENTITY to echo its input, got %q", output)
	}
	if gasLeft >= 1000 {
		t.Errorf("want some gas charged, got %d left of 1000", gasLeft)
	}
}

func TestRun_InsufficientGasFailsWithoutRunning(t *testing.T) {
	contract, ok := Lookup(identityAddr, vmcore.Istanbul)
	if !ok {
		t.Fatalf("expected IDENTITY to be found")
	}
	_, gasLeft, status := Run(contract, []byte("x"), 1)
	if status != vmcore.OutOfGas {
		t.Fatalf("want OUT_OF_GAS, got %v", status)
	}
	if gasLeft != 0 {
		t.Errorf("want no gas left after a failed precompile call, got %d", gasLeft)
	}
}
