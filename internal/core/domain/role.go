package domain

import "strings"

// Role is the single role taxonomy used for every gated route.
type Role string

const (
	// RoleNone is carried by anonymous callers and by unparsable labels.
	RoleNone Role = ""

	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleAuditor    Role = "AUDITOR"
	RoleUser       Role = "USER"

	RoleTaxAuditor                Role = "TAX_AUDITOR"
	RoleRiskAnalyst               Role = "RISK_ANALYST"
	RoleTransferPricingSpecialist Role = "TRANSFER_PRICING_SPECIALIST"
)

// hierarchy ranks the ordered roles. Specialist roles have no rank.
var hierarchy = map[Role]int{
	RoleAdmin:      4,
	RoleSupervisor: 3,
	RoleAuditor:    2,
	RoleUser:       1,
}

var specialists = map[Role]struct{}{
	RoleTaxAuditor:                {},
	RoleRiskAnalyst:               {},
	RoleTransferPricingSpecialist: {},
}

// AllRoles lists every known role, highest rank first.
func AllRoles() []Role {
	return []Role{
		RoleAdmin, RoleSupervisor, RoleAuditor, RoleUser,
		RoleTaxAuditor, RoleRiskAnalyst, RoleTransferPricingSpecialist,
	}
}

// ParseRole normalizes a label. Unknown labels yield RoleNone and false.
func ParseRole(label string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(label)))
	if !r.IsKnown() {
		return RoleNone, false
	}
	return r, true
}

// IsKnown reports whether r belongs to the taxonomy.
func (r Role) IsKnown() bool {
	if _, ok := hierarchy[r]; ok {
		return true
	}
	_, ok := specialists[r]
	return ok
}

// IsSpecialist reports whether r is a label-matched role.
func (r Role) IsSpecialist() bool {
	_, ok := specialists[r]
	return ok
}

// Authorize decides whether a caller holding userRole may reach a route
// requiring required. It fails closed on unknown roles.
func Authorize(userRole, required Role) bool {
	if !userRole.IsKnown() || !required.IsKnown() {
		return false
	}
	if userRole == RoleAdmin {
		return true
	}
	if required.IsSpecialist() {
		return userRole == required
	}
	if userRole.IsSpecialist() {
		return required == RoleUser
	}
	return hierarchy[userRole] >= hierarchy[required]
}

// Outranks reports whether a strictly dominates b: every route b may reach,
// a may reach too.
func Outranks(a, b Role) bool {
	if !a.IsKnown() || !b.IsKnown() || a == b {
		return false
	}
	if a == RoleAdmin {
		return true
	}
	if a.IsSpecialist() {
		return b == RoleUser
	}
	if b.IsSpecialist() {
		return false
	}
	return hierarchy[a] > hierarchy[b]
}
