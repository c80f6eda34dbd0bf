package interpreter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/holiman/uint256"

	"github.com/palladium-chain/corevm/go/vmcore"
)

// maxStackDepth is the maximum number of words the operand stack may hold.
const maxStackDepth = 1024

// stack is the 1024-word operand stack. It is backed by a fixed array to
// avoid reallocation during a run; callers must respect the bounds
// established by an opcode's declared minimum stack depth before calling
// pop/peek/swap/dup, since the stack itself performs no bounds checking.
//
// Each stack instance is 1024*32 bytes = 32KB. Under sustained interpreter
// use that is significant allocation churn, so instances are recycled
// through a sync.Pool: acquireStack/releaseStack.
type stack struct {
	data []uint256.Int
}

func newStack() *stack {
	return &stack{data: make([]uint256.Int, 0, maxStackDepth)}
}

func (s *stack) push(v *uint256.Int) {
	s.data = append(s.data, *v)
}

func (s *stack) pushWord(w vmcore.Word) {
	var v uint256.Int
	v.SetBytes32(w[:])
	s.data = append(s.data, v)
}

func (s *stack) pop() uint256.Int {
	n := len(s.data) - 1
	v := s.data[n]
	s.data = s.data[:n]
	return v
}

func (s *stack) peek() *uint256.Int {
	return &s.data[len(s.data)-1]
}

// peekN returns a pointer to the n-th element from the top, 0 = top.
func (s *stack) peekN(n int) *uint256.Int {
	return &s.data[len(s.data)-1-n]
}

func (s *stack) size() int {
	return len(s.data)
}

func (s *stack) swap(n int) {
	top := len(s.data) - 1
	s.data[top], s.data[top-n] = s.data[top-n], s.data[top]
}

func (s *stack) dup(n int) {
	v := s.data[len(s.data)-n]
	s.data = append(s.data, v)
}

func (s *stack) reset() {
	s.data = s.data[:0]
}

func (s *stack) String() string {
	var b strings.Builder
	for i := 0; i < s.size(); i++ {
		fmt.Fprintf(&b, "    [%4d] 0x%x\n", s.size()-i-1, s.peekN(i).Bytes32())
	}
	return b.String()
}

var stackPool = sync.Pool{
	New: func() any { return newStack() },
}

// acquireStack obtains an empty stack from the shared pool. It is safe to
// call concurrently from independent Interpreter.Run invocations.
func acquireStack() *stack {
	return stackPool.Get().(*stack)
}

// releaseStack returns s to the shared pool. Every stack acquired via
// acquireStack must be released exactly once.
func releaseStack(s *stack) {
	s.reset()
	stackPool.Put(s)
}
