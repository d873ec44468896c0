// Package adt provides the handle-space capability shared by every
// container in grafalgo: a bounded range 1..n of integer handles, with 0
// reserved as the null handle (spec.md §3.1).
package adt

import (
	"strconv"
	"strings"

	"github.com/jtalgo/grafalgo/internal/gferrors"
)

// Handle names a stored item. 0 is the null handle.
type Handle = int32

// NilHandle is the universal "none" handle.
const NilHandle Handle = 0

// Base tracks the current handle capacity n. Containers embed it and
// reuse its Valid/CheckValid/SetN bookkeeping rather than
// reimplementing the n/valid contract of spec.md §4.1.
type Base struct {
	n Handle
}

// NewBase constructs a Base with capacity n. n must be >= 0.
func NewBase(n int) Base {
	if n < 0 {
		panic("adt: negative capacity")
	}
	return Base{n: Handle(n)}
}

// N returns the current handle capacity.
func (b *Base) N() int { return int(b.n) }

// Valid reports whether h is a live handle, 1 <= h <= n.
func (b *Base) Valid(h Handle) bool { return h >= 1 && h <= b.n }

// ValidOrNil reports whether h is a live handle or the null handle.
func (b *Base) ValidOrNil(h Handle) bool { return h == NilHandle || b.Valid(h) }

// CheckValid returns an InvalidArgument failure if h is out of range.
func (b *Base) CheckValid(op string, h Handle) error {
	if !b.Valid(h) {
		return gferrors.InvalidArgument(op, "handle out of range",
			map[string]any{"handle": h, "n": b.n})
	}
	return nil
}

// CheckValidOrNil is CheckValid but also accepts the null handle.
func (b *Base) CheckValidOrNil(op string, h Handle) error {
	if h == NilHandle {
		return nil
	}
	return b.CheckValid(op, h)
}

// SetN sets the raw capacity field. Used by Resize/Expand implementations
// in each container, which must also reallocate their own backing arrays.
func (b *Base) SetN(n int) { b.n = Handle(n) }

// ToChar renders handle i as described in spec.md §6.1: for n<=26,
// handle i maps to the lower-case letter ('a'+i-1); it is the caller's
// job to fall back to the decimal form when n>26.
func ToChar(i Handle) byte { return byte('a' + i - 1) }

// RenderHandle renders a single handle per the n<=26 rule of spec.md §6.1.
func RenderHandle(h Handle, n int) string {
	if h == NilHandle {
		return "-"
	}
	if n <= 26 {
		return string(ToChar(h))
	}
	return strconv.Itoa(int(h))
}

// ParseHandle parses a handle rendered by RenderHandle, accepting either
// the lower-case-letter or decimal form regardless of n (spec.md §6.1:
// "input parsers must accept either form").
func ParseHandle(tok string) (Handle, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, gferrors.InputFormat("ParseHandle", "empty token", nil)
	}
	if len(tok) == 1 && tok[0] >= 'a' && tok[0] <= 'z' {
		return Handle(tok[0]-'a') + 1, nil
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, gferrors.InputFormat("ParseHandle", "not a handle", map[string]any{"token": tok})
	}
	return Handle(v), nil
}
