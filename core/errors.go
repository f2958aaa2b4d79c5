package core

import "errors"

// Sentinel errors for Context construction and use. All are precondition
// violations by the caller: they are surfaced immediately and never retried.
var (
	// ErrShapeMismatch is returned at construction when the object-major and
	// attribute-major tables are not mutual transposes, when their widths are
	// inconsistent, or when either universe is empty.
	ErrShapeMismatch = errors.New("core: context tables are not mutual transposes")

	// ErrIndexOutOfRange is returned when a description or object set refers
	// to an index outside the declared universe (its vector has the wrong
	// width for this context).
	ErrIndexOutOfRange = errors.New("core: vector width does not match context universe")

	// ErrNilContext is returned when a nil *Context is passed to an operation.
	ErrNilContext = errors.New("core: context is nil")
)
