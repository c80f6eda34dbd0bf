package vmtest

import (
	"testing"

	"github.com/palladium-chain/corevm/go/vmcore"
)

const sampleFixture = `{
  "env": {
    "currentCoinbase": "0x2adc25665018aa1fe0e6bc666dac8fc2697ff9ba",
    "currentNumber": "0x01",
    "currentTimestamp": "0x03e8",
    "currentGasLimit": "0x0f4240",
    "currentDifficulty": "0x0100"
  },
  "exec": {
    "address": "0x0f572e5295c57f15886f9b263e2f6d2d6c7b5ec6",
    "caller": "0xcd1722f2947def4cf144679da39c4c32bdc35681",
    "origin": "0xcd1722f2947def4cf144679da39c4c32bdc35681",
    "value": "0x00",
    "data": "0x",
    "code": "0x600160020160005260206000f3",
    "gas": "0x0186a0",
    "gasPrice": "0x01"
  },
  "pre": {
    "0x0f572e5295c57f15886f9b263e2f6d2d6c7b5ec6": {
      "balance": "0x00",
      "nonce": "0x00",
      "code": "0x600160020160005260206000f3",
      "storage": {}
    }
  },
  "gas": "0x018688",
  "out": "0x0000000000000000000000000000000000000000000000000000000000000003"
}`

func TestDecode_ParsesEnvAndExec(t *testing.T) {
	fixture, err := Decode(vmcore.Istanbul, []byte(sampleFixture))
	if err != nil {
		t.Fatalf("Decode returned an error: %v", err)
	}
	if fixture.Env.Number != 1 {
		t.Errorf("want block number 1, got %d", fixture.Env.Number)
	}
	if fixture.Env.Timestamp != 1000 {
		t.Errorf("want timestamp 1000, got %d", fixture.Env.Timestamp)
	}
	if fixture.Exec.Gas != 100000 {
		t.Errorf("want gas 100000, got %d", fixture.Exec.Gas)
	}
	if len(fixture.Exec.Code) == 0 {
		t.Errorf("want non-empty code")
	}
	if fixture.Gas == nil || *fixture.Gas != 99976 {
		t.Errorf("want expected gas 99976, got %v", fixture.Gas)
	}
	if len(fixture.Out) != 32 || fixture.Out[31] != 3 {
		t.Errorf("want expected output ending in 0x03, got %x", fixture.Out)
	}
	if len(fixture.Pre) != 1 {
		t.Errorf("want one pre-state account, got %d", len(fixture.Pre))
	}
}

func TestDecode_MalformedJSONFails(t *testing.T) {
	if _, err := Decode(vmcore.Istanbul, []byte("not json")); err == nil {
		t.Fatalf("want an error decoding malformed JSON")
	}
}

func TestDecode_OversizedWordFails(t *testing.T) {
	bad := `{"env":{"currentCoinbase":"0x00","currentNumber":"0x0","currentTimestamp":"0x0","currentGasLimit":"0x0","currentDifficulty":"0x0"},"exec":{"address":"0x00","caller":"0x00","origin":"0x00","value":"0x` +
		"010000000000000000000000000000000000000000000000000000000000000000" +
		`","data":"0x","code":"0x","gas":"0x0","gasPrice":"0x0"},"pre":{}}`
	if _, err := Decode(vmcore.Istanbul, []byte(bad)); err == nil {
		t.Fatalf("want an error decoding a value wider than 32 bytes")
	}
}
