package user

type Role string

const (
	// RoleFoodie places and pays for orders.
	RoleFoodie Role = "foodie"
	// RoleChef fulfils orders and receives earnings.
	RoleChef Role = "chef"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleFoodie, RoleChef:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
