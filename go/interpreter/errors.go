package interpreter

import "github.com/palladium-chain/corevm/go/vmcore"

const (
	errOutOfGas              = vmcore.ConstError("out of gas")
	errGasUintOverflow       = vmcore.ConstError("gas uint64 overflow")
	errStackOverflow         = vmcore.ConstError("stack overflow")
	errStackUnderflow        = vmcore.ConstError("stack underflow")
	errInvalidJump           = vmcore.ConstError("invalid jump destination")
	errWriteProtection       = vmcore.ConstError("write protection")
	errReturnDataOutOfBounds = vmcore.ConstError("return data out of bounds")
	errDepthExceeded         = vmcore.ConstError("max call depth exceeded")
)
