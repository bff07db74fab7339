package session

// RoleSuperadmin is the designated privileged role. HasElevatedRole matches it
// exactly and case-sensitively.
const RoleSuperadmin = "superadmin"

// Record defines a public type used by goSession APIs.
//
// Record instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// All fields are optional. The zero value is the anonymous record: it is what
// every failed or missing cookie decodes to, and logging out is expressed by
// sealing it (or simply clearing the cookie).
type Record struct {
	IdentityID    string
	IdentityEmail string
	Role          string
}

// IsAnonymous reports whether r carries no session state at all.
func (r Record) IsAnonymous() bool {
	return r == Record{}
}
