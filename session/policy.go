package session

// IsAuthenticated reports whether r represents a logged-in subject: the
// identity ID is present and non-empty. Pure and total; the anonymous record
// yields false.
func (r Record) IsAuthenticated() bool {
	return r.IdentityID != ""
}

// HasElevatedRole reports whether r carries the privileged role. The match is
// an exact, case-sensitive string comparison against [RoleSuperadmin]. Pure
// and total; the anonymous record yields false.
func (r Record) HasElevatedRole() bool {
	return r.Role == RoleSuperadmin
}
