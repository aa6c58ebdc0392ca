/*
File    : magnet/scope/scope.go
*/

// Package scope implements the environment chain that models lexical
// scope: a mapping from names to runtime objects plus an optional parent
// frame. Lookup walks the chain outward; bindings always land in the
// innermost frame, so rebinding a name shadows outer frames rather than
// mutating them.
package scope

import "github.com/magnet-lang/magnet/objects"

// Scope is one frame of the environment chain. Each function call
// creates a fresh frame whose parent is the function's captured scope,
// which is what makes closures work: the frame a function was defined in
// outlives the call that created it for as long as the function value is
// reachable.
type Scope struct {
	// Variables maps names to their current values in this frame
	Variables map[string]objects.Object

	// Parent points to the enclosing frame, forming the scope chain.
	// nil indicates this is a root frame.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent.
//
// Parameters:
//   - parent: The enclosing scope, or nil for a root scope
//
// Returns:
//   - *Scope: A fresh frame with no bindings of its own
//
// Example usage:
//
//	global := NewScope(nil)        // Root frame
//	callFrame := NewScope(global)  // Frame for a function call
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Object),
		Parent:    parent,
	}
}

// LookUp searches for a name in this frame and all parent frames. The
// first binding found wins, which makes inner bindings shadow outer
// ones.
//
// Parameters:
//   - name: The name to look up
//
// Returns:
//   - objects.Object: The bound value, if found
//   - bool: true if the name was found in this frame or any parent
func (s *Scope) LookUp(name string) (objects.Object, bool) {
	obj, ok := s.Variables[name]
	if !ok && s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return obj, ok
}

// Bind creates or replaces a binding in this frame only. Parent frames
// are never written: declaring a name that exists in an outer frame
// shadows it for the lifetime of this frame.
//
// Parameters:
//   - name: The name to bind
//   - obj: The value to bind it to
func (s *Scope) Bind(name string, obj objects.Object) {
	s.Variables[name] = obj
}
