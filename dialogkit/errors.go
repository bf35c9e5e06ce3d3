package dialogkit

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the category of a dialog error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfiguration indicates a dialog that is missing required state.
	KindConfiguration
	// KindStructure indicates an attempt to break the parent/child tree.
	KindStructure
	// KindCapacity indicates a Simple dialog asked to hold more than two children.
	KindCapacity
	// KindUnsupported indicates an operation the dialog variant cannot perform.
	KindUnsupported
	// KindNotImplemented indicates a dialog built without its required hooks.
	KindNotImplemented
	// KindClone indicates an attempt to copy a singleton.
	KindClone
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindStructure:
		return "structure"
	case KindCapacity:
		return "capacity"
	case KindUnsupported:
		return "unsupported"
	case KindNotImplemented:
		return "not-implemented"
	case KindClone:
		return "clone"
	default:
		return "unknown"
	}
}

var (
	ErrNilChild        = errors.New("child dialog is nil")
	ErrNotInitialized  = errors.New("dialog is not initialized")
	ErrAlreadyAttached = errors.New("dialog already has a parent")
	ErrCycle           = errors.New("dialog cannot contain one of its ancestors")
	ErrForeignNode     = errors.New("dialog belongs to another arena")
	ErrCapacity        = errors.New("a Simple dialog holds at most two children")
	ErrNotResizable    = errors.New("only factory-created Simple dialogs can be resized")
	ErrMissingBehavior = errors.New("dialog behavior must implement validate, save, clean and message hooks")
	ErrNotCloneable    = errors.New("singleton cannot be cloned")
	ErrUnknownKind     = errors.New("unknown dialog kind")
)

// Error is the structured error returned by dialog operations.
type Error struct {
	// Op is the operation that failed (e.g. "Simple.AddChild").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Dialog is the caption of the dialog the operation ran on, if any.
	Dialog string
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Dialog != "" {
		return fmt.Sprintf("%s [%s] dialog=%q: %v", e.Op, e.Kind, e.Dialog, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

func newError(op string, kind ErrorKind, n *Node, err error) *Error {
	e := &Error{Op: op, Kind: kind, Err: err}
	if n != nil {
		e.Dialog = n.String()
	}
	return e
}
