package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPermissions_ViewOnly(t *testing.T) {
	p := DefaultPermissions()
	assert.True(t, p.View)
	assert.False(t, p.Add)
	assert.False(t, p.Edit)
	assert.False(t, p.Delete)
}

func TestApply_GrantForcesViewOn(t *testing.T) {
	for _, field := range []string{PermAdd, PermEdit, PermDelete} {
		next, ok := Permissions{}.Apply(field, true)
		require.True(t, ok, "granting %s should apply", field)
		assert.True(t, next.View, "granting %s must force view on", field)
	}
}

func TestApply_ViewLockedWhileMutationGranted(t *testing.T) {
	cases := []Permissions{
		{View: true, Add: true},
		{View: true, Edit: true},
		{View: true, Delete: true},
		{View: true, Add: true, Edit: true, Delete: true},
	}
	for _, p := range cases {
		next, ok := p.Apply(PermView, false)
		assert.False(t, ok, "view revoke must be rejected for %+v", p)
		assert.Equal(t, p, next, "rejected toggle must leave matrix unchanged")
	}
}

func TestApply_ViewRevocableWhenNoMutationGranted(t *testing.T) {
	next, ok := Permissions{View: true}.Apply(PermView, false)
	require.True(t, ok)
	assert.Equal(t, Permissions{}, next)
}

func TestApply_RevokeMutationKeepsView(t *testing.T) {
	p := Permissions{View: true, Add: true, Edit: true}

	p, ok := p.Apply(PermAdd, false)
	require.True(t, ok)
	assert.True(t, p.View)
	assert.True(t, p.Edit)

	p, ok = p.Apply(PermEdit, false)
	require.True(t, ok)
	assert.True(t, p.View, "revoking the last mutation grant does not revoke view")
}

func TestApply_UnknownFieldRejected(t *testing.T) {
	p := DefaultPermissions()
	next, ok := p.Apply("export", true)
	assert.False(t, ok)
	assert.Equal(t, p, next)
}

// The dependency implication must hold after every toggle of every sequence,
// not just the final state.
func TestApply_InvariantHoldsAcrossSequences(t *testing.T) {
	type step struct {
		field string
		value bool
	}
	sequences := [][]step{
		{{PermAdd, true}, {PermView, false}, {PermAdd, false}, {PermView, false}},
		{{PermDelete, true}, {PermEdit, true}, {PermDelete, false}, {PermView, false}},
		{{PermView, false}, {PermEdit, true}, {PermEdit, false}, {PermAdd, true}},
	}
	for _, seq := range sequences {
		p := DefaultPermissions()
		for _, s := range seq {
			p, _ = p.Apply(s.field, s.value)
			if p.Add || p.Edit || p.Delete {
				assert.True(t, p.View, "invariant broken at %+v after %+v", p, s)
			}
		}
	}
}

func TestEffectivePermissions_DefaultsWhenUnassigned(t *testing.T) {
	u := User{ID: 1, Role: RoleUser}
	assert.Equal(t, DefaultPermissions(), u.EffectivePermissions())

	granted := Permissions{View: true, Add: true}
	u.ActivityPermissions = &granted
	assert.Equal(t, granted, u.EffectivePermissions())
}
