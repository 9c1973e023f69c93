package user

import "strings"

type Role string

const (
	RoleStudent         Role = "STUDENT"
	RoleCompany         Role = "COMPANY"
	RoleMentor          Role = "MENTOR"
	RoleUniversityAdmin Role = "UNIVERSITY_ADMIN"
	RoleSuperAdmin      Role = "SUPER_ADMIN"
)

func (r Role) Known() bool {
	switch r {
	case RoleStudent, RoleCompany, RoleMentor, RoleUniversityAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// SignupRoles maps the public registration choices to role values.
// SUPER_ADMIN is intentionally absent: it is never self-assignable.
var SignupRoles = map[string]Role{
	"student":    RoleStudent,
	"company":    RoleCompany,
	"mentor":     RoleMentor,
	"university": RoleUniversityAdmin,
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}
