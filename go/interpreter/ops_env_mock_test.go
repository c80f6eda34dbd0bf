package interpreter

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/palladium-chain/corevm/go/vmcore"
)

// newMockFrame builds a Frame around a mock HostContext, isolating a single
// opcode handler from any real backing store. Used for handlers whose gas
// cost or output depends only on a handful of HostContext calls, where
// asserting exact call counts and arguments matters more than exercising a
// full transactional overlay.
func newMockFrame(host vmcore.HostContext, revision vmcore.Revision, gasLimit vmcore.Gas) *Frame {
	return &Frame{
		host:     host,
		revision: revision,
		gas:      newGasMeter(gasLimit),
		stack:    newStack(),
		memory:   newMemory(),
	}
}

func TestOpBalanceEIP2929_ColdAccessChargesColdCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vmcore.NewMockHostContext(ctrl)

	addr := vmcore.Address{9}
	host.EXPECT().WarmUpAccount(addr).Return(true)
	host.EXPECT().GetBalance(addr).Return(vmcore.Value{31: 42})

	limit := vmcore.Gas(10000)
	f := newMockFrame(host, vmcore.Berlin, limit)
	v := uint256FromAddress(addr)
	f.stack.push(&v)

	if outcome := opBalanceEIP2929(f); outcome.kind != stepContinue {
		t.Fatalf("want the handler to continue, got kind %v", outcome.kind)
	}
	if got := limit - f.gas.remaining; got != coldAccountAccessCost {
		t.Errorf("want the cold access cost %d charged, got %d", coldAccountAccessCost, got)
	}
	if got := f.stack.peek(); got.Uint64() != 42 {
		t.Errorf("want the balance pushed back onto the stack, got %d", got.Uint64())
	}
}

func TestOpBalanceEIP2929_WarmAccessChargesWarmCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vmcore.NewMockHostContext(ctrl)

	addr := vmcore.Address{9}
	host.EXPECT().WarmUpAccount(addr).Return(false)
	host.EXPECT().GetBalance(addr).Return(vmcore.Value{31: 7})

	limit := vmcore.Gas(10000)
	f := newMockFrame(host, vmcore.Berlin, limit)
	v := uint256FromAddress(addr)
	f.stack.push(&v)

	opBalanceEIP2929(f)
	if got := limit - f.gas.remaining; got != warmStorageReadCost {
		t.Errorf("want the warm access cost %d charged, got %d", warmStorageReadCost, got)
	}
}

func TestOpExtcodesizeEIP2929_UsesHostCodeLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := vmcore.NewMockHostContext(ctrl)

	addr := vmcore.Address{3}
	host.EXPECT().WarmUpAccount(addr).Return(true)
	host.EXPECT().GetCode(addr).Return(vmcore.Code{1, 2, 3, 4, 5})

	f := newMockFrame(host, vmcore.Berlin, 10000)
	v := uint256FromAddress(addr)
	f.stack.push(&v)

	opExtcodesizeEIP2929(f)
	if got := f.stack.peek().Uint64(); got != 5 {
		t.Errorf("want code length 5 pushed, got %d", got)
	}
}
