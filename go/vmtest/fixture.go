// Package vmtest decodes Ethereum VMTests-format JSON fixtures and replays
// them through a single Interpreter frame, comparing the resulting gas
// left, output, and post-state against the fixture's own expectations. It
// is a test-only consumer of the interpreter core: it introduces no new
// core semantics, only a decoding and comparison harness around them.
package vmtest

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/palladium-chain/corevm/go/vmcore"
)

// Fixture is one named VMTests entry: an environment, the message to
// execute, the pre-state every account starts in, and either an expected
// post-state (success case) or the fixture's absence of `post`/`gas`/`out`
// entirely (an expected-failure case, where the test only asserts the call
// did not succeed).
type Fixture struct {
	Env     Env
	Exec    Exec
	Pre     map[vmcore.Address]Account
	Post    map[vmcore.Address]Account
	Gas     *vmcore.Gas
	Out     []byte
	HasPost bool
	Fork    vmcore.Revision
}

// Env mirrors VMTests' `env` block: the block context every opcode that
// reads block info (COINBASE, TIMESTAMP, NUMBER, DIFFICULTY, GASLIMIT,
// BLOCKHASH) sees.
type Env struct {
	Coinbase   vmcore.Address
	Number     int64
	Timestamp  int64
	GasLimit   vmcore.Gas
	Difficulty vmcore.Value
}

// Exec mirrors VMTests' `exec` block: the inputs to a single Message.
type Exec struct {
	Address  vmcore.Address
	Caller   vmcore.Address
	Origin   vmcore.Address
	Value    vmcore.Value
	Data     []byte
	Code     vmcore.Code
	Gas      vmcore.Gas
	GasPrice vmcore.Value
}

// Account mirrors one entry of VMTests' `pre`/`post` account maps.
type Account struct {
	Balance vmcore.Value
	Nonce   uint64
	Code    vmcore.Code
	Storage map[vmcore.Key]vmcore.Word
}

// rawFixture matches the on-disk JSON shape exactly (hex strings, string
// keys); Decode converts every field into the fixed-width core types
// before the runner ever sees it, so nothing downstream deals with hex
// parsing.
type rawFixture struct {
	Env  rawEnv                    `json:"env"`
	Exec rawExec                   `json:"exec"`
	Pre  map[string]rawAccount     `json:"pre"`
	Post map[string]rawAccount     `json:"post"`
	Gas  *string                   `json:"gas"`
	Out  *string                   `json:"out"`
}

type rawEnv struct {
	CurrentCoinbase   string `json:"currentCoinbase"`
	CurrentNumber     string `json:"currentNumber"`
	CurrentTimestamp  string `json:"currentTimestamp"`
	CurrentGasLimit   string `json:"currentGasLimit"`
	CurrentDifficulty string `json:"currentDifficulty"`
}

type rawExec struct {
	Address  string `json:"address"`
	Caller   string `json:"caller"`
	Origin   string `json:"origin"`
	Value    string `json:"value"`
	Data     string `json:"data"`
	Code     string `json:"code"`
	Gas      string `json:"gas"`
	GasPrice string `json:"gasPrice"`
}

type rawAccount struct {
	Balance string            `json:"balance"`
	Nonce   string            `json:"nonce"`
	Code    string            `json:"code"`
	Storage map[string]string `json:"storage"`
}

// Decode parses one fixture's raw JSON bytes at the given fork. VMTests
// files bundle several named fixtures under one JSON object keyed by test
// name; splitting that object into individual case payloads is the
// caller's job (see cmd/runvmtests), so Decode itself only ever sees one
// already-split case.
func Decode(fork vmcore.Revision, data []byte) (Fixture, error) {
	var raw rawFixture
	if err := json.Unmarshal(data, &raw); err != nil {
		return Fixture{}, fmt.Errorf("vmtest: decode fixture: %w: %w", vmcore.ErrMalformedFixture, err)
	}

	env, err := decodeEnv(raw.Env)
	if err != nil {
		return Fixture{}, fmt.Errorf("%w: %w", vmcore.ErrMalformedFixture, err)
	}
	exec, err := decodeExec(raw.Exec)
	if err != nil {
		return Fixture{}, fmt.Errorf("%w: %w", vmcore.ErrMalformedFixture, err)
	}
	pre, err := decodeAccounts(raw.Pre)
	if err != nil {
		return Fixture{}, fmt.Errorf("%w: %w", vmcore.ErrMalformedFixture, err)
	}

	fixture := Fixture{Env: env, Exec: exec, Pre: pre, Fork: fork}

	if raw.Post != nil {
		post, err := decodeAccounts(raw.Post)
		if err != nil {
			return Fixture{}, fmt.Errorf("%w: %w", vmcore.ErrMalformedFixture, err)
		}
		fixture.Post = post
		fixture.HasPost = true
	}
	if raw.Gas != nil {
		g, err := parseGas(*raw.Gas)
		if err != nil {
			return Fixture{}, fmt.Errorf("%w: %w", vmcore.ErrMalformedFixture, err)
		}
		fixture.Gas = &g
	}
	if raw.Out != nil {
		out, err := parseHexBytes(*raw.Out)
		if err != nil {
			return Fixture{}, fmt.Errorf("%w: %w", vmcore.ErrMalformedFixture, err)
		}
		fixture.Out = out
	}

	return fixture, nil
}

func decodeEnv(raw rawEnv) (Env, error) {
	number, err := parseInt64(raw.CurrentNumber)
	if err != nil {
		return Env{}, fmt.Errorf("vmtest: env.currentNumber: %w", err)
	}
	timestamp, err := parseInt64(raw.CurrentTimestamp)
	if err != nil {
		return Env{}, fmt.Errorf("vmtest: env.currentTimestamp: %w", err)
	}
	gasLimit, err := parseGas(raw.CurrentGasLimit)
	if err != nil {
		return Env{}, fmt.Errorf("vmtest: env.currentGasLimit: %w", err)
	}
	difficulty, err := parseValue(raw.CurrentDifficulty)
	if err != nil {
		return Env{}, fmt.Errorf("vmtest: env.currentDifficulty: %w", err)
	}
	coinbase, err := parseAddress(raw.CurrentCoinbase)
	if err != nil {
		return Env{}, fmt.Errorf("vmtest: env.currentCoinbase: %w", err)
	}
	return Env{
		Coinbase:   coinbase,
		Number:     number,
		Timestamp:  timestamp,
		GasLimit:   gasLimit,
		Difficulty: difficulty,
	}, nil
}

func decodeExec(raw rawExec) (Exec, error) {
	addr, err := parseAddress(raw.Address)
	if err != nil {
		return Exec{}, fmt.Errorf("vmtest: exec.address: %w", err)
	}
	caller, err := parseAddress(raw.Caller)
	if err != nil {
		return Exec{}, fmt.Errorf("vmtest: exec.caller: %w", err)
	}
	origin, err := parseAddress(raw.Origin)
	if err != nil {
		return Exec{}, fmt.Errorf("vmtest: exec.origin: %w", err)
	}
	value, err := parseValue(raw.Value)
	if err != nil {
		return Exec{}, fmt.Errorf("vmtest: exec.value: %w", err)
	}
	data, err := parseHexBytes(raw.Data)
	if err != nil {
		return Exec{}, fmt.Errorf("vmtest: exec.data: %w", err)
	}
	code, err := parseHexBytes(raw.Code)
	if err != nil {
		return Exec{}, fmt.Errorf("vmtest: exec.code: %w", err)
	}
	gas, err := parseGas(raw.Gas)
	if err != nil {
		return Exec{}, fmt.Errorf("vmtest: exec.gas: %w", err)
	}
	gasPrice, err := parseValue(raw.GasPrice)
	if err != nil {
		return Exec{}, fmt.Errorf("vmtest: exec.gasPrice: %w", err)
	}
	return Exec{
		Address:  addr,
		Caller:   caller,
		Origin:   origin,
		Value:    value,
		Data:     data,
		Code:     vmcore.Code(code),
		Gas:      gas,
		GasPrice: gasPrice,
	}, nil
}

func decodeAccounts(raw map[string]rawAccount) (map[vmcore.Address]Account, error) {
	out := make(map[vmcore.Address]Account, len(raw))
	for addrStr, ra := range raw {
		addr, err := parseAddress(addrStr)
		if err != nil {
			return nil, fmt.Errorf("vmtest: account address %q: %w", addrStr, err)
		}
		balance, err := parseValue(ra.Balance)
		if err != nil {
			return nil, fmt.Errorf("vmtest: account %s balance: %w", addrStr, err)
		}
		nonce, err := parseUint64(ra.Nonce)
		if err != nil {
			return nil, fmt.Errorf("vmtest: account %s nonce: %w", addrStr, err)
		}
		code, err := parseHexBytes(ra.Code)
		if err != nil {
			return nil, fmt.Errorf("vmtest: account %s code: %w", addrStr, err)
		}
		storage := make(map[vmcore.Key]vmcore.Word, len(ra.Storage))
		for keyStr, valStr := range ra.Storage {
			key, err := parseKey(keyStr)
			if err != nil {
				return nil, fmt.Errorf("vmtest: account %s storage key %q: %w", addrStr, keyStr, err)
			}
			val, err := parseWord(valStr)
			if err != nil {
				return nil, fmt.Errorf("vmtest: account %s storage value %q: %w", addrStr, keyStr, err)
			}
			storage[key] = val
		}
		out[addr] = Account{Balance: balance, Nonce: nonce, Code: vmcore.Code(code), Storage: storage}
	}
	return out, nil
}

func stripHexPrefix(s string) string {
	return strings.TrimPrefix(s, "0x")
}

func parseHexBytes(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(stripHexPrefix(s))
}

func parseAddress(s string) (vmcore.Address, error) {
	b, err := parseHexBytes(s)
	if err != nil {
		return vmcore.Address{}, err
	}
	var addr vmcore.Address
	if len(b) != len(addr) {
		return vmcore.Address{}, fmt.Errorf("address %q: want %d bytes, got %d", s, len(addr), len(b))
	}
	copy(addr[:], b)
	return addr, nil
}

func parseKey(s string) (vmcore.Key, error) {
	w, err := parseWord(s)
	return vmcore.Key(w), err
}

func parseWord(s string) (vmcore.Word, error) {
	b, err := parseHexBytes(s)
	if err != nil {
		return vmcore.Word{}, err
	}
	var w vmcore.Word
	if len(b) > len(w) {
		return vmcore.Word{}, fmt.Errorf("word %q overflows 32 bytes", s)
	}
	copy(w[len(w)-len(b):], b)
	return w, nil
}

func parseValue(s string) (vmcore.Value, error) {
	w, err := parseWord(s)
	return vmcore.Value(w), err
}

// parseInt64/parseUint64 accept both VMTests' "0x"-prefixed hex and plain
// decimal encodings via strconv's base-0 detection.
func parseInt64(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 0, 64)
}

func parseUint64(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 0, 64)
}

func parseGas(s string) (vmcore.Gas, error) {
	n, err := parseInt64(s)
	return vmcore.Gas(n), err
}
