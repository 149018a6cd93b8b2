package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		user     Role
		required Role
		want     bool
	}{
		{"admin reaches specialist route", RoleAdmin, RoleTaxAuditor, true},
		{"admin reaches hierarchy route", RoleAdmin, RoleSupervisor, true},
		{"supervisor reaches auditor route", RoleSupervisor, RoleAuditor, true},
		{"auditor blocked from supervisor route", RoleAuditor, RoleSupervisor, false},
		{"user reaches user route", RoleUser, RoleUser, true},
		{"user blocked from auditor route", RoleUser, RoleAuditor, false},
		{"exact specialist match", RoleRiskAnalyst, RoleRiskAnalyst, true},
		{"other specialist blocked", RoleTaxAuditor, RoleRiskAnalyst, false},
		{"supervisor blocked from specialist route", RoleSupervisor, RoleTransferPricingSpecialist, false},
		{"specialist reaches user route", RoleTaxAuditor, RoleUser, true},
		{"specialist blocked from auditor route", RoleTaxAuditor, RoleAuditor, false},
		{"unknown user role denied", Role("ROOT"), RoleUser, false},
		{"no role denied", RoleNone, RoleUser, false},
		{"unknown requirement denied even for admin", RoleAdmin, Role("ROOT"), false},
		{"lowercase label is not normalized by the gate", Role("admin"), RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.user, tt.required))
		})
	}
}

func TestAuthorizeIsMonotonic(t *testing.T) {
	roles := append(AllRoles(), RoleNone, Role("GUEST"))
	for _, a := range roles {
		for _, b := range roles {
			if !Outranks(a, b) {
				continue
			}
			for _, required := range roles {
				if Authorize(b, required) {
					assert.Truef(t, Authorize(a, required),
						"%s outranks %s but cannot reach %s", a, b, required)
				}
			}
		}
	}
}

func TestOutranks(t *testing.T) {
	assert.True(t, Outranks(RoleAdmin, RoleRiskAnalyst))
	assert.True(t, Outranks(RoleSupervisor, RoleUser))
	assert.True(t, Outranks(RoleTaxAuditor, RoleUser))
	assert.False(t, Outranks(RoleSupervisor, RoleTaxAuditor))
	assert.False(t, Outranks(RoleUser, RoleUser))
	assert.False(t, Outranks(RoleAdmin, RoleNone))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" tax_auditor ")
	assert.True(t, ok)
	assert.Equal(t, RoleTaxAuditor, r)

	r, ok = ParseRole("superuser")
	assert.False(t, ok)
	assert.Equal(t, RoleNone, r)

	_, ok = ParseRole("")
	assert.False(t, ok)
}
