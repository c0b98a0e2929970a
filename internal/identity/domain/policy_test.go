package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/backoffice/internal/apperr"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		role     Role
		action   Action
		resource Resource
		want     bool
	}{
		{RoleUser, ActionCreate, ResourceCar, true},
		{RoleUser, ActionDelete, ResourceCar, false},
		{RoleMember, ActionUpdate, ResourceCar, false},
		{RoleModerator, ActionDelete, ResourceCar, true},
		{RoleAdmin, ActionCreate, ResourceCompany, true},
		{RoleModerator, ActionCreate, ResourceCompany, false},
		{RoleMember, ActionRead, ResourceCompany, true},
		{RoleUser, ActionRead, ResourceCompany, false},
		{RoleModerator, ActionCreate, ResourceCrate, true},
		{RoleMember, ActionCreate, ResourceCrate, false},
		{RoleUser, ActionCreate, ResourceCustomer, true},
		{RoleMember, ActionRead, ResourceSeller, false},
		{RoleModerator, ActionCreate, ResourceProductSelling, true},
		{RoleMember, ActionCreate, ResourceProductSelling, false},
		{RoleAdmin, ActionUpdate, ResourceProductSelling, false},
		{RoleMember, ActionCreate, ResourceInvoice, true},
		{RoleUser, ActionCreate, ResourceInvoice, false},
		{RoleMember, ActionCreate, ResourceReminder, true},
		{RoleUser, ActionCreate, ResourceReminder, false},
		{RoleUser, ActionUpdate, ResourceNotification, true},
		{RoleMember, ActionDelete, ResourceNotification, false},
		{RoleAdmin, ActionCreate, ResourceNotification, false},
		{RoleModerator, ActionUpdate, ResourceUser, false},
		{RoleAdmin, ActionUpdate, ResourceUser, true},
		{RoleModerator, ActionRead, ResourceUserDirectory, false},
		{Role("ROOT"), ActionRead, ResourceCar, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"_"+string(tt.action)+"_"+string(tt.resource), func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.action, tt.resource))
		})
	}
}

func TestAuthorize(t *testing.T) {
	admin := &User{ExternalRef: "user_a", Role: RoleAdmin}
	plain := &User{ExternalRef: "user_u", Role: RoleUser}

	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(Authorize("", nil, ActionRead, ResourceCar)))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(Authorize("user_x", nil, ActionRead, ResourceCar)))
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(Authorize("user_u", plain, ActionDelete, ResourceCar)))
	assert.NoError(t, Authorize("user_a", admin, ActionDelete, ResourceCar))
}

func TestScopeFor(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleModerator, RoleMember} {
		assert.True(t, ScopeFor(role, "user_1").Global(), role)
	}

	s := ScopeFor(RoleUser, "user_1")
	assert.False(t, s.Global())
	assert.Equal(t, "user_1", s.OwnerRef)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleMember.Valid())
	assert.False(t, Role("admin").Valid())
}
