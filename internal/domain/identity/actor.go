package identity

type Role string

const (
	RoleAdmin         Role = "Admin"
	RoleRecruiter     Role = "Recruiter"
	RoleHiringManager Role = "HiringManager"
	RolePanelist      Role = "Panelist"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor may act on a resource owned by userID.
func (a Actor) Owns(userID uint) bool {
	return a.IsAdmin() || a.UserID == userID
}

// CanDecide reports whether the actor may move an application through
// the hiring pipeline.
func (a Actor) CanDecide() bool {
	switch a.Role {
	case RoleAdmin, RoleRecruiter, RoleHiringManager:
		return true
	}
	return false
}
