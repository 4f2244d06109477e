// Package env implements the lexical environment frames the
// evaluator binds names in. A Frame maps a name to a mutable value
// cell and optionally chains to an outer frame; set inserts or
// overwrites in the current frame only, lookup walks outward until
// found. Names are case-sensitive, backed by a plain map rather than
// a case-folding lookup.
package env

import (
	"fmt"

	"github.com/cwbudde/go-mal/internal/values"
)

// Frame is one lexical scope: a name→value table plus an optional
// outer frame. Frames are shared — a closure captures its defining
// frame by reference, and def mutates a frame's table in place so the
// change is visible to every holder.
type Frame struct {
	store map[string]values.Value
	outer *Frame
}

// New creates a root-level frame with no outer scope.
func New() *Frame {
	return &Frame{store: make(map[string]values.Value)}
}

// NewEnclosed creates a frame enclosed by outer, used for let*,
// function calls, and try* catch clauses.
func NewEnclosed(outer *Frame) *Frame {
	return &Frame{store: make(map[string]values.Value), outer: outer}
}

// Set inserts or overwrites name in this frame only — never searches
// outer frames. This is the binding form def/let*/function-entry all
// use; there is no separate "assignment" operation in this language.
func (f *Frame) Set(name string, v values.Value) {
	f.store[name] = v
}

// LookupError is returned by Lookup when name is unbound anywhere in
// the frame chain.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("Cannot find '%s' in current context", e.Name)
}

// Lookup walks this frame and then each outer frame in turn, returning
// the first binding found.
func (f *Frame) Lookup(name string) (values.Value, error) {
	for cur := f; cur != nil; cur = cur.outer {
		if v, ok := cur.store[name]; ok {
			return v, nil
		}
	}
	return nil, &LookupError{Name: name}
}

// Outer returns the enclosing frame, or nil at the root.
func (f *Frame) Outer() *Frame { return f.outer }
