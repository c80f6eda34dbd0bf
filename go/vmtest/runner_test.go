package vmtest

import (
	"testing"

	"github.com/palladium-chain/corevm/go/interpreter"
	"github.com/palladium-chain/corevm/go/vmcore"
)

func TestRun_MatchingExpectationsPass(t *testing.T) {
	fixture, err := Decode(vmcore.Istanbul, []byte(sampleFixture))
	if err != nil {
		t.Fatalf("Decode returned an error: %v", err)
	}

	result, err := Run(interpreter.New(), fixture)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if !result.Passed() {
		t.Errorf("want the fixture to pass, got diffs: %v", result.Diffs)
	}
}

func TestRun_WrongExpectedGasIsReportedAsADiff(t *testing.T) {
	fixture, err := Decode(vmcore.Istanbul, []byte(sampleFixture))
	if err != nil {
		t.Fatalf("Decode returned an error: %v", err)
	}
	wrong := vmcore.Gas(1)
	fixture.Gas = &wrong

	result, err := Run(interpreter.New(), fixture)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if result.Passed() {
		t.Fatalf("want a gas mismatch to be reported")
	}
}

func TestRun_PostStateMismatchIsReportedAsADiff(t *testing.T) {
	fixture, err := Decode(vmcore.Istanbul, []byte(sampleFixture))
	if err != nil {
		t.Fatalf("Decode returned an error: %v", err)
	}
	fixture.HasPost = true
	fixture.Post = map[vmcore.Address]Account{
		fixture.Exec.Address: {Balance: vmcore.Value{31: 99}},
	}

	result, err := Run(interpreter.New(), fixture)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if result.Passed() {
		t.Fatalf("want a post-state balance mismatch to be reported")
	}
}
