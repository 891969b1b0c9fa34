package domain

// Role identifies a party's function on a case. Values match the assignment
// records written by the intake workflow.
type Role string

const (
	RoleClient      Role = "CLIENT"
	RoleAttorney    Role = "ATTORNEY"
	RoleCareManager Role = "RN_CCM"
)

// IsValid returns true if the role is a known valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleAttorney, RoleCareManager:
		return true
	}
	return false
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// CareTeam reports whether the role belongs to the clinical care team and may
// therefore see internal-scope alert detail.
func (r Role) CareTeam() bool {
	return r == RoleCareManager
}
