package routes

import (
	"testing"

	"talentia/internal/domain/user"
)

func TestHome(t *testing.T) {
	cases := []struct {
		name string
		role user.Role
		want string
	}{
		{"student", user.RoleStudent, Dashboard},
		{"company", user.RoleCompany, CompanyDashboard},
		{"mentor", user.RoleMentor, MentorDashboard},
		{"university admin", user.RoleUniversityAdmin, UniversityDashboard},
		{"super admin", user.RoleSuperAdmin, AdminDashboard},
		{"empty", user.Role(""), Landing},
		{"unknown", user.Role("INTERN"), Landing},
		{"lowercase is not a known role", user.Role("student"), Landing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Home(tc.role); got != tc.want {
				t.Fatalf("Home(%q) = %q, want %q", tc.role, got, tc.want)
			}
		})
	}
}

func TestHomeIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Home(user.RoleCompany); got != CompanyDashboard {
			t.Fatalf("run %d: got %q", i, got)
		}
	}
}
