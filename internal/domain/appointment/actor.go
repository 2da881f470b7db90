package appointment

// Role is the closed set of actor roles. The request layer resolves it
// from the JWT before anything reaches the engine.
type Role string

const (
	RoleClient Role = "client"
	RoleBarber Role = "barber"
	RoleAdmin  Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleBarber, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Actor is whoever is asking: their user id plus role. Repositories scope
// appointment lookups by it — barbers see their own appointments, clients
// theirs, admins everything.
type Actor struct {
	UserID uint
	Role   Role
}
