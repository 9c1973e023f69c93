// Package routes fixes the client-side route table and the role-aware
// navigation rules of the original single-page app.
package routes

import "talentia/internal/domain/user"

const (
	Landing             = "/"
	Auth                = "/auth"
	Dashboard           = "/dashboard"
	CompanyDashboard    = "/company-dashboard"
	MentorDashboard     = "/mentor-dashboard"
	UniversityDashboard = "/university-dashboard"
	AdminDashboard      = "/admin-dashboard"
	Marketplace         = "/marketplace"
	Training            = "/training"
	Opportunities       = "/opportunities"
	Library             = "/library"
	Mentorship          = "/mentorship"
	Messages            = "/messages"
)

// Home maps a role to its post-login landing route. Total over any input:
// an empty or unrecognized role lands on the public landing page, the
// remaining roles each get their own dashboard, and students get the
// generic one.
func Home(role user.Role) string {
	switch role {
	case user.RoleCompany:
		return CompanyDashboard
	case user.RoleMentor:
		return MentorDashboard
	case user.RoleUniversityAdmin:
		return UniversityDashboard
	case user.RoleSuperAdmin:
		return AdminDashboard
	case user.RoleStudent:
		return Dashboard
	default:
		return Landing
	}
}
