// Package gferrors provides the standardized failure taxonomy shared by
// every container in grafalgo.
package gferrors

import "fmt"

// Kind is one of the four failure variants spec.md §7 names.
type Kind string

const (
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindOutOfSpace      Kind = "OUT_OF_SPACE"
	KindInconsistent    Kind = "INCONSISTENT"
	KindInputFormat     Kind = "INPUT_FORMAT"
)

// Failure is the error type every container in this module returns.
type Failure struct {
	Kind    Kind
	Op      string
	Message string
	Context map[string]any
}

func (f *Failure) Error() string {
	if len(f.Context) == 0 {
		return fmt.Sprintf("%s: %s: %s", f.Op, f.Kind, f.Message)
	}
	return fmt.Sprintf("%s: %s: %s %v", f.Op, f.Kind, f.Message, f.Context)
}

// Is lets errors.Is match on Kind alone, via a zero-value sentinel of the
// same Kind (errors.Is(err, gferrors.Sentinel(KindOutOfSpace))).
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return t.Kind == f.Kind
}

// Sentinel returns a comparison-only Failure of the given kind, for use
// with errors.Is.
func Sentinel(k Kind) *Failure { return &Failure{Kind: k} }

func newf(k Kind, op, msg string, ctx map[string]any) *Failure {
	return &Failure{Kind: k, Op: op, Message: msg, Context: ctx}
}

// InvalidArgument reports a handle out of range, a duplicate key, or a
// precondition violation (e.g. DjSets.Link on a non-canonical argument).
func InvalidArgument(op, msg string, ctx map[string]any) *Failure {
	return newf(KindInvalidArgument, op, msg, ctx)
}

// OutOfSpace reports that an allocation request cannot be satisfied.
func OutOfSpace(op, msg string, ctx map[string]any) *Failure {
	return newf(KindOutOfSpace, op, msg, ctx)
}

// Inconsistent reports an internal invariant violation found by an
// isConsistent() audit.
func Inconsistent(op, msg string, ctx map[string]any) *Failure {
	return newf(KindInconsistent, op, msg, ctx)
}

// InputFormat reports malformed textual input during a parse.
func InputFormat(op, msg string, ctx map[string]any) *Failure {
	return newf(KindInputFormat, op, msg, ctx)
}
