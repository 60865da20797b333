// Package serrors defines the semantic error kinds produced while resolving a
// theme declaration, and a wrapper type that carries a kind together with a
// message and an optional cause.
//
// A kind is matched with errors.Is, and recovered from any wrapped chain with
// KindOf:
//
//	err := serrors.With(serrors.ErrReference, "palette %q is not defined", name)
//	errors.Is(err, serrors.ErrReference) // true
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error sentinel created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind string

func (k kind) Error() string { return string(k) }
func (kind) isKind()         {}

// NewKind creates a kind whose Error text, and wire code, is name.
func NewKind(name string) Kind { return kind(name) }

var (
	// ErrValidation indicates a malformed declaration: a missing or empty
	// required option, a value of the wrong shape, or an invalid pattern.
	ErrValidation = NewKind("VALIDATION")
	// ErrReference indicates a name that does not resolve: an unknown base
	// palette, an unknown referenced role or an undeclared dark theme.
	ErrReference = NewKind("REFERENCE")
	// ErrOverrideConflict indicates an override of a role the base palette
	// does not define, when unknown roles are rejected.
	ErrOverrideConflict = NewKind("OVERRIDE_CONFLICT")
	ErrNotFound         = NewKind("NOT_FOUND")
	// ErrBadRequest indicates a request that could not be read at all.
	ErrBadRequest   = NewKind("BAD_REQUEST")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	ErrInternal     = NewKind("INTERNAL")
)

var kinds = []Kind{
	ErrValidation, ErrReference, ErrOverrideConflict, ErrNotFound, ErrBadRequest, ErrUnauthorized, ErrInternal,
}

// ParseKind returns the kind named code, as written by Kind.Error.
func ParseKind(code string) (Kind, bool) {
	for _, k := range kinds {
		if k.Error() == code {
			return k, true
		}
	}

	return nil, false
}

// Error is a kind with a message and an optional cause. Both the kind and
// the cause are reachable with errors.Is and errors.As.
//
// Its text is "<msg>: <cause>", "<msg>" or "<cause>", whichever parts are
// set, and the kind name when neither is.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// With creates an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap creates an error of kind k wrapping cause, with a formatted message.
func Wrap(k Kind, cause error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...), cause: cause}
}

// KindOnly creates an error of kind k with no message.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

// Unwrap returns the kind followed by the cause.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.kind != nil {
		out = append(out, e.kind)
	}
	if e.cause != nil {
		out = append(out, e.cause)
	}

	return out
}

// Kind returns the kind of e.
func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the first kind found in err's chain, or ErrInternal when
// err carries none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}
