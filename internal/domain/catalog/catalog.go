// Package catalog holds the read-only directory shapes: talents, courses,
// library resources, mentors and the portfolio overview. All of them are
// fetched fresh per page and never mutated client-side.
package catalog

import "time"

type Talent struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Skill      string   `json:"skill,omitempty"`
	University string   `json:"university,omitempty"`
	Rating     float64  `json:"rating"`
	Reviews    int      `json:"reviews"`
	Gigs       int      `json:"gigs"`
	HourlyRate string   `json:"hourlyRate,omitempty"`
	AvatarURL  string   `json:"avatarUrl,omitempty"`
	Skills     []string `json:"skills"`
}

type Lesson struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Type            string `json:"type"`
	ContentURL      string `json:"content_url,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

type CourseModule struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Order   int      `json:"order"`
	Lessons []Lesson `json:"lessons"`
}

type CourseSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Level       string `json:"level,omitempty"`
	CoverImage  string `json:"cover_image,omitempty"`
	IsPremium   bool   `json:"is_premium"`
}

type CourseDetail struct {
	CourseSummary
	CreatedAt time.Time      `json:"created_at"`
	Modules   []CourseModule `json:"modules"`
}

type LibraryCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LibraryResource struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Type         string    `json:"type"`
	FileURL      string    `json:"file_url"`
	SizeLabel    string    `json:"size_label,omitempty"`
	IsPremium    bool      `json:"is_premium"`
	AllowedRoles string    `json:"allowed_roles,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Mentor struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	FullName      string  `json:"full_name"`
	Headline      string  `json:"headline,omitempty"`
	Company       string  `json:"company,omitempty"`
	HourlyRate    float64 `json:"hourly_rate,omitempty"`
	ExpertiseTags string  `json:"expertise_tags,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
}

type PortfolioOverview struct {
	ID                  string `json:"id"`
	Headline            string `json:"headline,omitempty"`
	Bio                 string `json:"bio,omitempty"`
	ProjectsCount       int    `json:"projects_count"`
	CertificationsCount int    `json:"certifications_count"`
	TestimonialsCount   int    `json:"testimonials_count"`
}
