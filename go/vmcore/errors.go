package vmcore

// ConstError is a string-backed error usable as a package-level constant,
// so sentinel errors can be compared with errors.Is / == without allocating
// at init time. Modeled on the pattern used throughout the fork this
// interpreter was built from, where every internal control-flow error is a
// typed constant rather than a dynamically constructed one.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

const (
	// ErrUnsupportedRevision is returned when a caller selects a fork the
	// opcode table has no entry for.
	ErrUnsupportedRevision = ConstError("unsupported revision")
	// ErrMalformedFixture is returned by the VM test driver when a fixture
	// file cannot be decoded into a runnable case.
	ErrMalformedFixture = ConstError("malformed vm test fixture")
	// ErrNilRecipient names a CALL-family message that is missing a
	// recipient address. Message.Recipient is a value-typed Address, so no
	// function in this module returns it.
	ErrNilRecipient = ConstError("call message missing recipient")
)
