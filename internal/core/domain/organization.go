package domain

// Organization is an isolated tenant: it owns a chart of accounts and a
// journal, and shares no mutable state with any other organization.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary key (UUID)
	Name           string `json:"name"`
	Currency       string `json:"currency"` // Default currency code, e.g. "SAR"
	AuditFields
}

// MembershipRole defines the possible roles a user can have within an organization.
type MembershipRole string

const (
	RoleOwner      MembershipRole = "owner"
	RoleAdmin      MembershipRole = "admin"
	RoleAccountant MembershipRole = "accountant"
	RoleViewer     MembershipRole = "viewer"
)

// rank orders roles by privilege for HasAtLeast comparisons.
func (r MembershipRole) rank() int {
	switch r {
	case RoleOwner:
		return 4
	case RoleAdmin:
		return 3
	case RoleAccountant:
		return 2
	case RoleViewer:
		return 1
	default:
		return 0
	}
}

// HasAtLeast reports whether the role grants at least the privileges of required.
func (r MembershipRole) HasAtLeast(required MembershipRole) bool {
	return r.rank() >= required.rank()
}

// Membership links a user to an organization with a role.
type Membership struct {
	MembershipID   string         `json:"membershipID"`
	UserID         string         `json:"userID"`
	OrganizationID string         `json:"organizationID"`
	Role           MembershipRole `json:"role"`
	AuditFields
}
