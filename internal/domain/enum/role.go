package enum

// Role is a user's access level
type Role string

const (
	RoleAdmin      Role = "admin"
	RolePharmacist Role = "pharmacist"
)

// Valid checks if the role is a known value
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePharmacist:
		return true
	}
	return false
}
