package user

// supervisorRoles maps a target role to the roles allowed to supervise it.
// Roles missing from the table are not filtered.
var supervisorRoles = map[Role][]Role{
	RoleManager:   {RoleManager},
	RoleBSE:       {RoleManager, RoleBSE},
	RoleLeader:    {RoleManager, RoleBSE, RoleLeader},
	RoleSubLeader: {RoleManager, RoleBSE, RoleLeader, RoleSubLeader},
}

// EligibleSupervisorRoles returns the supervisor roles for role and whether
// the role is restricted at all.
func EligibleSupervisorRoles(role Role) ([]Role, bool) {
	roles, ok := supervisorRoles[role]
	if !ok {
		return nil, false
	}
	out := make([]Role, len(roles))
	copy(out, roles)
	return out, true
}

// IsEligibleSupervisor reports whether a user with supervisorRole may supervise a user with role.
func IsEligibleSupervisor(role, supervisorRole Role) bool {
	roles, ok := supervisorRoles[role]
	if !ok {
		return true
	}
	for _, r := range roles {
		if r == supervisorRole {
			return true
		}
	}
	return false
}

// FilterCandidatesForRole returns the users that can be picked as supervisor
// for a user holding role. For member and unknown roles users is returned as is.
func FilterCandidatesForRole(role Role, users []User) []User {
	if _, ok := supervisorRoles[role]; !ok {
		return users
	}

	candidates := make([]User, 0, len(users))
	for _, u := range users {
		if IsEligibleSupervisor(role, u.Role) {
			candidates = append(candidates, u)
		}
	}
	return candidates
}
