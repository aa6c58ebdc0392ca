/*
File    : magnet/scope/scope_test.go
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magnet-lang/magnet/objects"
)

// TestScope_BindAndLookUp verifies bindings in a single frame
func TestScope_BindAndLookUp(t *testing.T) {

	scp := NewScope(nil)

	_, ok := scp.LookUp("x")
	assert.False(t, ok)

	scp.Bind("x", &objects.Integer{Value: 10})
	obj, ok := scp.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, int64(10), obj.(*objects.Integer).Value)

	// Rebinding replaces the value in place
	scp.Bind("x", &objects.Integer{Value: 20})
	obj, _ = scp.LookUp("x")
	assert.Equal(t, int64(20), obj.(*objects.Integer).Value)
}

// TestScope_ChainLookUp verifies that lookup walks outward through
// parent frames
func TestScope_ChainLookUp(t *testing.T) {

	global := NewScope(nil)
	global.Bind("x", &objects.Integer{Value: 1})

	inner := NewScope(global)
	obj, ok := inner.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), obj.(*objects.Integer).Value)

	deepest := NewScope(inner)
	obj, ok = deepest.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), obj.(*objects.Integer).Value)

	_, ok = deepest.LookUp("missing")
	assert.False(t, ok)
}

// TestScope_ShadowingNeverWritesOutward verifies that binding in an
// inner frame shadows the outer binding without mutating it
func TestScope_ShadowingNeverWritesOutward(t *testing.T) {

	global := NewScope(nil)
	global.Bind("x", &objects.Integer{Value: 1})

	inner := NewScope(global)
	inner.Bind("x", &objects.Integer{Value: 2})

	obj, _ := inner.LookUp("x")
	assert.Equal(t, int64(2), obj.(*objects.Integer).Value)

	// The outer frame still holds its own binding
	obj, _ = global.LookUp("x")
	assert.Equal(t, int64(1), obj.(*objects.Integer).Value)
}
