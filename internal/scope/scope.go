// ==============================================================================================
// FILE: internal/scope/scope.go
// ==============================================================================================
// PACKAGE: scope
// PURPOSE: The scope stack of §3.4/§4.5 — an ordered sequence of open
//          compounds, bottom is the file's root, top is whatever compound
//          is currently being populated. Grounded on
//          amoghasbhardwaj-Eloquence/object/environment.go's outer-chain
//          Environment, rewritten as an explicit slice-backed stack (per
//          spec invariant: "mutations are strictly LIFO and paired") rather
//          than a parent-linked map, since dotted-path lookup here walks
//          whole compounds, not individual variable bindings.
// ==============================================================================================

package scope

import (
	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/value"
)

// Stack is a cooperative, single-threaded stack of compound references.
// The zero value is an empty stack, the same as Empty(); New builds one
// with a root frame already pushed.
type Stack struct {
	frames []*value.Value
}

// New builds a scope stack whose only frame is root.
func New(root *value.Value) *Stack {
	return &Stack{frames: []*value.Value{root}}
}

// Empty builds a scope stack with no open frames, for a top-level parse
// whose first act is to push the file's own root compound (§4.4.1).
func Empty() *Stack {
	return &Stack{}
}

// FromFrames wraps an existing frame slice (typically a declared
// function's captured frames) as a Stack, so calls can push their
// argument-binding compound on top of it without mutating the capture.
func FromFrames(frames []*value.Value) *Stack {
	cp := make([]*value.Value, len(frames))
	copy(cp, frames)
	return &Stack{frames: cp}
}

// Push opens a new compound frame on top of the stack.
func (s *Stack) Push(c *value.Value) { s.frames = append(s.frames, c) }

// Pop closes the top frame and returns it. It is a Fatal-class invariant
// violation (§7) to pop an empty stack; callers are expected to have kept
// pushes and pops balanced. Since that invariant is internal (no source
// position to anchor a diagnostic at), a violation panics with a
// *diag.Diagnostic rather than a bare string, so the parser's top-level
// recover can emit it through the sink in the standard "[fatal] ..."
// form instead of a raw Go stack trace reaching the CLI user.
func (s *Stack) Pop() *value.Value {
	if len(s.frames) == 0 {
		panic(&diag.Diagnostic{Kind: diag.Fatal, Message: "scope: pop of empty stack"})
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top
}

// Top returns the innermost open compound — the frame currently being
// populated.
func (s *Stack) Top() *value.Value {
	return s.frames[len(s.frames)-1]
}

// At returns the frame n below the top (At(0) == Top()). Used by `use`
// (§6.4) to reach the compound one frame below the native's own
// argument-binding compound.
func (s *Stack) At(n int) *value.Value {
	i := len(s.frames) - 1 - n
	if i < 0 {
		return nil
	}
	return s.frames[i]
}

// Len reports the number of open frames.
func (s *Stack) Len() int { return len(s.frames) }

// Frames returns a shallow copy of the current frame slice, suitable for
// a declared function's capture (§3.4: "captures ... a clone of
// references", not a deep copy of the compounds themselves).
func (s *Stack) Frames() []*value.Value {
	cp := make([]*value.Value, len(s.frames))
	copy(cp, s.frames)
	return cp
}

// Resolve walks the stack from innermost to outermost and returns the
// value at path in the first frame whose GetByPath succeeds (§4.4.4 point
// 3: "no parent-scope shadowing of partial paths").
func (s *Stack) Resolve(path []string) (*value.Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].GetByPath(path); ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name in the innermost frame to val, replacing any existing
// direct member (§4.6's `set` builtin).
func (s *Stack) Set(name string, val *value.Value) {
	val.Key = name
	s.Top().Add(val)
}
